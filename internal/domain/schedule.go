package domain

import (
	"fmt"

	"github.com/salonmobile/booking-engine/pkg/types"
)

// BusinessHours describes the provider's daily schedule: opening hours
// and the lunch break. Immutable configuration, identical for every day.
type BusinessHours struct {
	Open       types.TimeString
	Close      types.TimeString
	BreakStart types.TimeString
	BreakEnd   types.TimeString
}

// Validate checks that every bound parses and that the windows are ordered:
// open < breakStart < breakEnd < close
func (h BusinessHours) Validate() error {
	for _, ts := range []types.TimeString{h.Open, h.Close, h.BreakStart, h.BreakEnd} {
		if err := ts.Validate(); err != nil {
			return err
		}
	}

	if !h.Open.IsBefore(h.BreakStart) {
		return fmt.Errorf("business hours: open %s must precede break start %s", h.Open, h.BreakStart)
	}
	if !h.BreakStart.IsBefore(h.BreakEnd) {
		return fmt.Errorf("business hours: break start %s must precede break end %s", h.BreakStart, h.BreakEnd)
	}
	if !h.BreakEnd.IsBefore(h.Close) {
		return fmt.Errorf("business hours: break end %s must precede close %s", h.BreakEnd, h.Close)
	}

	return nil
}
