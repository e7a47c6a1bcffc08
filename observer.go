package ttlcache

import (
	"time"

	"github.com/rs/zerolog"
)

// Op names a cache operation reported to observers.
type Op string

const (
	OpInitialize Op = "initialize"
	OpSet        Op = "set"
	OpGet        Op = "get"
	OpExpire     Op = "expire"
	OpDelete     Op = "delete"
	OpClear      Op = "clear"
	OpSweep      Op = "sweep"
	OpRemember   Op = "remember"
)

// Observer receives events for cache operations.
// It is called after each operation completes, outside the cache lock.
type Observer interface {
	OnCacheOp(op Op, key string, hit bool, err error, dur time.Duration)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(op Op, key string, hit bool, err error, dur time.Duration)

// OnCacheOp implements Observer.
func (f ObserverFunc) OnCacheOp(op Op, key string, hit bool, err error, dur time.Duration) {
	if f == nil {
		return
	}
	f(op, key, hit, err, dur)
}

// MultiObserver fans events out to every non-nil observer in order.
func MultiObserver(observers ...Observer) Observer {
	out := make([]Observer, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			out = append(out, o)
		}
	}
	return multiObserver(out)
}

type multiObserver []Observer

func (m multiObserver) OnCacheOp(op Op, key string, hit bool, err error, dur time.Duration) {
	for _, o := range m {
		o.OnCacheOp(op, key, hit, err, dur)
	}
}

// LogObserver writes one debug event per operation, or a warning when it failed.
func LogObserver(logger zerolog.Logger) Observer {
	return ObserverFunc(func(op Op, key string, hit bool, err error, dur time.Duration) {
		ev := logger.Debug()
		if err != nil {
			ev = logger.Warn().Err(err)
		}
		ev.Str("op", string(op)).
			Str("key", key).
			Bool("hit", hit).
			Dur("duration", dur).
			Msg("ttlcache operation")
	})
}
