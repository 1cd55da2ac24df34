package audit

import (
	"log/slog"
	"sync"
)

type Event struct {
	UserID    *uint
	Action    string
	Entity    string
	EntityID  *uint
	RequestID string
	Metadata  map[string]any
}

// Writer persists a single audit entry. *Logger is the gorm-backed one.
type Writer interface {
	Log(userID *uint, action, entity string, entityID *uint, metadata any) error
}

type Dispatcher struct {
	logger Writer
	queue  chan Event
	done   sync.WaitGroup
}

func NewDispatcher(logger Writer) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	d.done.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.done.Done()

	for ev := range d.queue {
		meta := ev.Metadata
		if ev.RequestID != "" {
			if meta == nil {
				meta = map[string]any{}
			}
			meta["request_id"] = ev.RequestID
		}

		if err := d.logger.Log(
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			meta,
		); err != nil {
			slog.Error("audit write failed", "action", ev.Action, "err", err)
		}
	}
}

// Close stops accepting events and waits until every queued event has
// been written.
func (d *Dispatcher) Close() {
	close(d.queue)
	d.done.Wait()
}

// Dispatch is non-blocking and safe on a nil dispatcher, so callers can
// run with auditing disabled.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		// full queue drops audit, never the request
		slog.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}
