package engine

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"
)

// SnapshotKey is the fixed storage key the whole-state document lives under.
const SnapshotKey = "mythos_nexus_state"

// ErrNoSnapshot is returned by a Gateway when nothing has been persisted yet.
var ErrNoSnapshot = errors.New("no snapshot")

// Gateway durably stores and loads whole-state snapshots. Writes are
// best-effort: the Store logs failures and never retries.
type Gateway interface {
	SaveSnapshot(ctx context.Context, key string, version int, payload []byte) error
	LoadSnapshot(ctx context.Context, key string) ([]byte, error)
}

// Mirror is an optional remote copy of the snapshot. It may lag or diverge
// from local state without that being an error.
type Mirror interface {
	SaveSnapshot(ctx context.Context, payload []byte) error
}

// deferredXPDelay separates a completion's state write from the follow-up
// experience grant so they are two observable mutations.
const deferredXPDelay = 300 * time.Millisecond

const mirrorWriteTimeout = 5 * time.Second

// Store owns the single mutable state aggregate. All mutation operations are
// serialized; callers only ever receive copies of the state.
type Store struct {
	mu    sync.Mutex
	state State

	gateway Gateway
	mirror  Mirror
	logger  *log.Logger

	clock    func() time.Time
	schedule func(d time.Duration, fn func())
	newID    func() string

	// Snapshot writes happen off the caller's goroutine; writeSeq (under mu)
	// and writtenSeq (under writeMu) keep them landing in mutation order.
	persistWG  sync.WaitGroup
	writeMu    sync.Mutex
	writeSeq   uint64
	writtenSeq uint64

	grantMu sync.Mutex
	grants  map[*pendingGrant]struct{}
}

// pendingGrant is a scheduled experience grant that has not executed yet.
// The once guard makes the grant at-most-once whether the timer fires or
// Close runs it first.
type pendingGrant struct {
	amount int
	once   sync.Once
}

// Option configures a Store.
type Option func(*Store)

// WithMirror attaches a best-effort remote mirror.
func WithMirror(m Mirror) Option {
	return func(s *Store) { s.mirror = m }
}

// WithLogger sets the logger used for best-effort failures.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithClock overrides the time source (tests).
func WithClock(clock func() time.Time) Option {
	return func(s *Store) { s.clock = clock }
}

// WithScheduler overrides how deferred effects are scheduled (tests).
func WithScheduler(schedule func(d time.Duration, fn func())) Option {
	return func(s *Store) { s.schedule = schedule }
}

// WithIDFunc overrides id generation (tests).
func WithIDFunc(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// Open loads the persisted snapshot through the gateway, merges it with the
// compiled-in defaults and returns a ready Store. A missing or corrupt
// snapshot falls back to the defaults; Open never fails.
func Open(ctx context.Context, gateway Gateway, defaults State, opts ...Option) *Store {
	s := &Store{
		gateway:  gateway,
		logger:   log.Default(),
		clock:    time.Now,
		newID:    defaultID,
		schedule: func(d time.Duration, fn func()) { time.AfterFunc(d, fn) },
		grants:   map[*pendingGrant]struct{}{},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.state = s.loadState(ctx, defaults)
	return s
}

func (s *Store) loadState(ctx context.Context, defaults State) State {
	defaults = cloneState(defaults)
	defaults.Version = SnapshotVersion
	ensureCollections(&defaults)

	if s.gateway == nil {
		return defaults
	}

	payload, err := s.gateway.LoadSnapshot(ctx, SnapshotKey)
	if errors.Is(err, ErrNoSnapshot) {
		return defaults
	}
	if err != nil {
		s.logger.Printf("load snapshot: %v (seeding defaults)", err)
		return defaults
	}

	var persisted State
	if err := json.Unmarshal(payload, &persisted); err != nil {
		s.logger.Printf("corrupt snapshot discarded: %v", err)
		return defaults
	}

	merged := MergeWithDefaults(persisted, defaults)
	merged.Version = SnapshotVersion
	return merged
}

// Snapshot returns a read-only copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneState(s.state)
}

// persist writes the current state through the gateway and mirror without
// blocking the caller. Writes are serialized on writeMu and a stale payload
// is dropped when a newer snapshot already landed, so the durable document
// never regresses. Must be called with the lock held.
func (s *Store) persist() {
	payload, err := json.Marshal(s.state)
	if err != nil {
		s.logger.Printf("marshal snapshot: %v", err)
		return
	}
	s.writeSeq++
	seq := s.writeSeq

	s.persistWG.Add(1)
	go func() {
		defer s.persistWG.Done()

		s.writeMu.Lock()
		defer s.writeMu.Unlock()
		if seq <= s.writtenSeq {
			return
		}

		if s.gateway != nil {
			if err := s.gateway.SaveSnapshot(context.Background(), SnapshotKey, SnapshotVersion, payload); err != nil {
				s.logger.Printf("save snapshot: %v", err)
			}
		}
		if s.mirror != nil {
			ctx, cancel := context.WithTimeout(context.Background(), mirrorWriteTimeout)
			defer cancel()
			if err := s.mirror.SaveSnapshot(ctx, payload); err != nil {
				s.logger.Printf("mirror snapshot: %v", err)
			}
		}
		s.writtenSeq = seq
	}()
}

// deferAddExperience schedules the follow-up experience grant after a
// completion. The grant fires at-most-once: either from the timer or from
// Close, whichever comes first.
func (s *Store) deferAddExperience(amount int) {
	g := &pendingGrant{amount: amount}
	s.grantMu.Lock()
	s.grants[g] = struct{}{}
	s.grantMu.Unlock()

	s.schedule(deferredXPDelay, func() { s.runGrant(g) })
}

func (s *Store) runGrant(g *pendingGrant) {
	g.once.Do(func() { s.AddExperience(g.amount) })

	s.grantMu.Lock()
	delete(s.grants, g)
	s.grantMu.Unlock()
}

// Close runs any deferred grants whose timer has not fired yet and blocks
// until all in-flight snapshot writes have landed. Short-lived processes must
// call it before exit or completion experience and the final write are lost.
// The store stays usable after Close.
func (s *Store) Close() {
	s.grantMu.Lock()
	pending := make([]*pendingGrant, 0, len(s.grants))
	for g := range s.grants {
		pending = append(pending, g)
	}
	s.grantMu.Unlock()

	for _, g := range pending {
		s.runGrant(g)
	}
	s.persistWG.Wait()
}

// cloneState deep-copies a state through its JSON form. State is always
// marshalable, so errors here cannot occur in practice.
func cloneState(in State) State {
	payload, err := json.Marshal(in)
	if err != nil {
		return in
	}
	var out State
	if err := json.Unmarshal(payload, &out); err != nil {
		return in
	}
	return out
}
