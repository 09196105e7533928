// Package trace adds forcing observability to lazy cells.
//
// The one observable event in a deferred value's life is the moment it is
// forced. Wrapping a cell with a Tracer keeps its value and memoization
// untouched while logging when forcing begins, how long the producer ran
// (as a time span), and whether it failed. Each wrap gets its own cell id
// so repeated forces of the same wrap correlate in the logs.
package trace

import (
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/BlueGhostGH/moonad/lazy"
)

// Tracer wraps lazy cells with structured force-event logging.
type Tracer struct {
	logger *zap.Logger
}

// New returns a Tracer emitting through logger.
func New(logger *zap.Logger) *Tracer {
	return &Tracer{logger: logger}
}

// NewDevelopment returns a Tracer with a console logger at debug level,
// suitable for tests and examples.
func NewDevelopment() *Tracer {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	return New(zap.New(consoleCore))
}

// Wrap returns a cell that forces l and logs the force as it happens. The
// wrap is built on lazy.Extend: the logging producer receives the cell
// itself, so it can tell an already-forced cell (served from cache) apart
// from a first force before deciding to read it.
//
// The returned cell memoizes independently, so the log carries at most one
// force event per wrap; a panicking producer is logged and re-panics,
// leaving both cells retryable.
func Wrap[T any](tr *Tracer, name string, l *lazy.Lazy[T]) *lazy.Lazy[T] {
	cellID := uuid.New().String()
	return lazy.Extend(l, func(cell *lazy.Lazy[T]) T {
		if cell.Forced() {
			tr.logger.Debug("deferred value served from cache",
				zap.String("cell_id", cellID),
				zap.String("name", name),
			)
			return cell.Get()
		}

		tr.logger.Debug("forcing deferred value",
			zap.String("cell_id", cellID),
			zap.String("name", name),
		)
		from := time.Now()
		defer func() {
			if r := recover(); r != nil {
				tr.logger.Error("forcing panicked",
					zap.String("cell_id", cellID),
					zap.String("name", name),
					zap.Any("cause", r),
					zap.Stringer("window", timespan.BetweenTimes(from, time.Now())),
				)
				panic(r)
			}
		}()
		v := cell.Get()
		tr.logger.Info("deferred value forced",
			zap.String("cell_id", cellID),
			zap.String("name", name),
			zap.Stringer("window", timespan.BetweenTimes(from, time.Now())),
		)
		return v
	})
}

// WrapTry is Wrap for fallible cells. A failed force is logged at error
// level with the producer's error; the error itself propagates unwrapped.
func WrapTry[T any](tr *Tracer, name string, t *lazy.Try[T]) *lazy.Try[T] {
	cellID := uuid.New().String()
	return lazy.NewTry(func() (T, error) {
		if t.Forced() {
			tr.logger.Debug("deferred value served from cache",
				zap.String("cell_id", cellID),
				zap.String("name", name),
			)
			return t.Get()
		}

		tr.logger.Debug("forcing deferred value",
			zap.String("cell_id", cellID),
			zap.String("name", name),
		)
		from := time.Now()
		v, err := t.Get()
		span := timespan.BetweenTimes(from, time.Now())
		if err != nil {
			tr.logger.Error("forcing failed",
				zap.String("cell_id", cellID),
				zap.String("name", name),
				zap.Error(err),
				zap.Stringer("window", span),
			)
			return v, err
		}
		tr.logger.Info("deferred value forced",
			zap.String("cell_id", cellID),
			zap.String("name", name),
			zap.Stringer("window", span),
		)
		return v, nil
	})
}
