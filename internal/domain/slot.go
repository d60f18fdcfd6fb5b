package domain

import "github.com/salonmobile/booking-engine/pkg/types"

// TimeSlot is a candidate start/end pair for a service on a given date.
// Ephemeral, recomputed on every query and never persisted.
type TimeSlot struct {
	Start     types.TimeString
	End       types.TimeString
	Available bool
}
