package reservation

import (
	"github.com/salonmobile/booking-engine/pkg/txmanager"
)

// Переиспользуем интерфейс исполнителя запросов из txmanager,
// чтобы репозиторий одинаково работал с *sql.DB и *sql.Tx
type DBExecutor = txmanager.Executor
