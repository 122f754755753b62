package feed

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/devfeed/internal/logging"
)

var (
	// ErrInFlight rejects a toggle while another one on the same item is
	// waiting for the server.
	ErrInFlight = errors.New("update already in progress")
	// ErrNotFound is returned for toggles on items the view does not hold.
	ErrNotFound = errors.New("item not in view")
)

// Toggle is a flag together with the counter it drives, such as is_liked and
// likes_count.
type Toggle struct {
	Active bool
	Count  int
}

// Flip returns the pair as it looks after the user's action.
func (t Toggle) Flip() Toggle {
	if t.Active {
		return Toggle{Active: false, Count: t.Count - 1}
	}
	return Toggle{Active: true, Count: t.Count + 1}
}

// State is where a toggle ended up.
type State int

const (
	Idle State = iota
	Applied
	Confirmed
	RolledBack
)

func (s State) String() string {
	switch s {
	case Applied:
		return "applied"
	case Confirmed:
		return "confirmed"
	case RolledBack:
		return "rolled back"
	default:
		return "idle"
	}
}

// Tracker remembers which items have a toggle waiting for the server.
type Tracker struct {
	mu      sync.Mutex
	pending map[string]struct{}
}

// Begin marks key as in flight, or fails with ErrInFlight.
func (t *Tracker) Begin(key string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.pending == nil {
		t.pending = make(map[string]struct{})
	}
	if _, busy := t.pending[key]; busy {
		return ErrInFlight
	}
	t.pending[key] = struct{}{}
	return nil
}

func (t *Tracker) End(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.pending, key)
}

func (t *Tracker) Pending(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, busy := t.pending[key]
	return busy
}

type options struct {
	logger logging.Logger
}

// Option configures a view.
type Option func(*options)

// WithLogger logs every toggle transition at debug level.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: logging.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// toggleOp describes one optimistic update. read and write run under the
// owning view's lock; call runs without it.
type toggleOp struct {
	key   string
	read  func() (Toggle, bool)
	write func(Toggle)
	call  func(ctx context.Context, wasActive bool) error
}

// run applies the flipped pair at once, asks the server, and restores the
// previous pair if the server refuses.
func run(ctx context.Context, tr *Tracker, log logging.Logger, op toggleOp) (State, error) {
	if err := tr.Begin(op.key); err != nil {
		return Idle, err
	}
	defer tr.End(op.key)

	prev, ok := op.read()
	if !ok {
		return Idle, ErrNotFound
	}
	op.write(prev.Flip())
	log.Debug(ctx, "toggle", "key", op.key, "state", Applied, "active", !prev.Active)

	if err := op.call(ctx, prev.Active); err != nil {
		op.write(prev)
		log.Debug(ctx, "toggle", "key", op.key, "state", RolledBack, "error", err)
		return RolledBack, err
	}

	log.Debug(ctx, "toggle", "key", op.key, "state", Confirmed)
	return Confirmed, nil
}
