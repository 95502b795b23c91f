package amortize

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/Avishkar-Lokhande/Loan-Payoff-Calculator/pkg/cache"
)

// Memo wraps Generate with a cache so repeated analysis of the same loan
// inputs reuses the computed schedule. Cache failures are logged at debug
// and otherwise ignored; results never depend on the backend.
type Memo struct {
	backend cache.Cache
	logger  *zap.Logger
}

// NewMemo returns a Memo over the given backend. A nil backend falls back
// to an in-memory cache and a nil logger to a no-op logger.
func NewMemo(backend cache.Cache, logger *zap.Logger) *Memo {
	if backend == nil {
		backend = cache.NewMemory()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Memo{backend: backend, logger: logger}
}

// Generate returns the schedule for the inputs, serving it from the cache
// when an identical computation was stored before.
func (m *Memo) Generate(principal, annualRate, payment float64, extras ExtraPayments) Schedule {
	key := scheduleKey(principal, annualRate, payment, extras)

	if raw, ok := m.backend.Get(key); ok {
		var schedule Schedule
		if err := json.Unmarshal([]byte(raw), &schedule); err == nil {
			return schedule
		}
		m.logger.Debug("discarding undecodable cached schedule",
			zap.String("op", "amortize.Memo.Generate"),
			zap.String("key", key),
		)
	}

	schedule := Generate(principal, annualRate, payment, extras)

	if raw, err := json.Marshal(schedule); err == nil {
		if err := m.backend.Set(key, string(raw)); err != nil {
			m.logger.Debug("schedule cache store failed",
				zap.String("op", "amortize.Memo.Generate"),
				zap.String("key", key),
				zap.Error(err),
			)
		}
	}

	return schedule
}

func scheduleKey(principal, annualRate, payment float64, extras ExtraPayments) string {
	return fmt.Sprintf("schedule:%g:%g:%g:%g:%d:%g:%d",
		principal, annualRate, payment,
		extras.Monthly, extras.MonthlyMonths,
		extras.LumpSum, extras.LumpSumMonth)
}
