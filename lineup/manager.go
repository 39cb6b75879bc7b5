// Package lineup owns the working and saved batting orders and their persistence.
package lineup

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/milk9111/battingorder/logging"
	"github.com/milk9111/battingorder/order"
	"github.com/milk9111/battingorder/prefs"
	"github.com/milk9111/battingorder/roster"
	"go.uber.org/zap"
)

// DefaultKey is the prefs key the order is saved under.
const DefaultKey = "BattingOrder_v1"

var ErrNotLoaded = errors.New("lineup: order not loaded")

type State int

const (
	StateUninitialized State = iota
	StateLoaded
	StateEdited
	StateSaved
	StateDiscarded
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoaded:
		return "loaded"
	case StateEdited:
		return "edited"
	case StateSaved:
		return "saved"
	case StateDiscarded:
		return "discarded"
	default:
		return "unknown"
	}
}

// Source says where the saved order came from on the last load.
type Source int

const (
	SourceNone Source = iota
	SourceDefault
	SourcePersisted
)

func (s Source) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourcePersisted:
		return "persisted"
	default:
		return "none"
	}
}

type Option func(*Manager)

func WithKey(key string) Option {
	return func(m *Manager) {
		if key != "" {
			m.key = key
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) { m.logger = logging.OrNop(l) }
}

func WithRand(rng *rand.Rand) Option {
	return func(m *Manager) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// Manager is not safe for concurrent use; the game drives it from Update.
type Manager struct {
	roster *roster.Roster
	store  prefs.Store
	key    string
	logger *zap.Logger
	rng    *rand.Rand

	current order.Order
	saved   order.Order
	state   State
	source  Source

	observers []func(Event)
}

func NewManager(r *roster.Roster, store prefs.Store, opts ...Option) *Manager {
	m := &Manager{
		roster: r,
		store:  store,
		key:    DefaultKey,
		logger: zap.NewNop(),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Load reads the saved order. A missing or invalid record falls back to the
// default order; only a store failure is returned as an error.
func (m *Manager) Load(ctx context.Context) error {
	if err := m.load(ctx); err != nil {
		return err
	}
	m.notify(EventLoaded)
	return nil
}

// Reload re-reads the store, discarding unsaved edits.
func (m *Manager) Reload(ctx context.Context) error {
	return m.Load(ctx)
}

func (m *Manager) load(ctx context.Context) error {
	loaded, source, err := m.readStored(ctx, true)
	if err != nil {
		return err
	}

	m.current = loaded
	m.saved = loaded.Clone()
	m.state = StateLoaded
	m.source = source
	m.logger.Debug("order loaded", zap.Stringer("source", source), zap.Stringer("order", m.current))
	return nil
}

// readStored returns the order Load would produce from the store right now.
func (m *Manager) readStored(ctx context.Context, warn bool) (order.Order, Source, error) {
	raw, ok, err := m.store.Get(ctx, m.key)
	if err != nil {
		return order.Order{}, SourceNone, fmt.Errorf("lineup: load %q: %w", m.key, err)
	}
	if !ok {
		return order.Default(m.roster), SourceDefault, nil
	}
	o, err := order.Decode([]byte(raw), m.roster)
	if err != nil {
		if warn {
			m.logger.Warn("saved order rejected, using default", zap.String("key", m.key), zap.Error(err))
		}
		return order.Default(m.roster), SourceDefault, nil
	}
	return o, SourcePersisted, nil
}

// Stale reports whether a Reload would change the saved order or its source,
// for example after another process wrote the store. A manager that has not
// been loaded is always stale.
func (m *Manager) Stale(ctx context.Context) (bool, error) {
	if m.state == StateUninitialized {
		return true, nil
	}
	stored, source, err := m.readStored(ctx, false)
	if err != nil {
		return false, err
	}
	return source != m.source || !stored.Equal(m.saved), nil
}

// Shuffle replaces the working order with a random permutation of the default order.
func (m *Manager) Shuffle() error {
	if m.state == StateUninitialized {
		return ErrNotLoaded
	}
	next := order.Default(m.roster)
	next.Shuffle(m.rng)
	m.current = next
	m.state = StateEdited
	m.logger.Debug("order shuffled", zap.Stringer("order", m.current))
	m.notify(EventShuffled)
	return nil
}

// MoveUp swaps batting position i with i-1. It reports whether anything moved.
func (m *Manager) MoveUp(i int) bool {
	if m.state == StateUninitialized || !m.current.MoveUp(i) {
		return false
	}
	m.moved(i, i-1)
	return true
}

// MoveDown swaps batting position i with i+1. It reports whether anything moved.
func (m *Manager) MoveDown(i int) bool {
	if m.state == StateUninitialized || !m.current.MoveDown(i) {
		return false
	}
	m.moved(i, i+1)
	return true
}

func (m *Manager) moved(from, to int) {
	m.state = StateEdited
	m.logger.Debug("player moved", zap.Int("from", from), zap.Int("to", to))
	m.notifyMove(from, to)
}

// Save persists the working order and makes it the saved order.
func (m *Manager) Save(ctx context.Context) error {
	if m.state == StateUninitialized {
		return ErrNotLoaded
	}
	data, err := order.Encode(m.current)
	if err != nil {
		return fmt.Errorf("lineup: save: %w", err)
	}
	if err := m.store.Set(ctx, m.key, string(data)); err != nil {
		return fmt.Errorf("lineup: save %q: %w", m.key, err)
	}
	m.saved = m.current.Clone()
	m.source = SourcePersisted
	m.state = StateSaved
	m.logger.Info("order saved", zap.String("key", m.key), zap.Stringer("order", m.saved))
	m.notify(EventSaved)
	return nil
}

// Discard reverts to the default order and erases the saved record.
func (m *Manager) Discard(ctx context.Context) error {
	if m.state == StateUninitialized {
		return ErrNotLoaded
	}
	if err := m.store.Delete(ctx, m.key); err != nil {
		return fmt.Errorf("lineup: discard %q: %w", m.key, err)
	}
	m.current = order.Default(m.roster)
	m.saved = m.current.Clone()
	m.source = SourceDefault
	m.state = StateDiscarded
	m.logger.Info("order discarded", zap.String("key", m.key))
	m.notify(EventDiscarded)
	return nil
}

func (m *Manager) Current() order.Order { return m.current.Clone() }
func (m *Manager) Saved() order.Order   { return m.saved.Clone() }
func (m *Manager) State() State         { return m.state }
func (m *Manager) Source() Source       { return m.source }
func (m *Manager) Roster() *roster.Roster {
	return m.roster
}
func (m *Manager) Key() string { return m.key }

// Dirty reports whether the working order differs from the saved one.
func (m *Manager) Dirty() bool {
	return m.state != StateUninitialized && !m.current.Equal(m.saved)
}

// PlayerAt returns the player batting at 0-based position i.
func (m *Manager) PlayerAt(i int) (roster.Player, bool) {
	return m.roster.Lookup(m.current.At(i))
}
