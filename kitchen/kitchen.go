// Package kitchen is the application context: it owns the timer registry and
// the current conversation, routes utterances, drives the clock and fans
// changes out to the renderer, notifier, synthesizer and store
package kitchen

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/panasi/panasi/dialog"
	"github.com/panasi/panasi/internal/apperr"
	"github.com/panasi/panasi/timer"
	"github.com/panasi/panasi/voice"
)

var errLoadSnapshot = &apperr.Error{
	Message: "loading saved timers failed",
}

// Options holds the timing settings of a Kitchen.
type Options struct {
	// Retention is how long a completed timer stays listed
	Retention time.Duration
	// TickInterval is the period of the countdown updates
	TickInterval time.Duration
	// ResortInterval is the period of display re-sorting and eviction
	ResortInterval time.Duration
	// RestartDelay is the minimum spacing between recognizer sessions
	RestartDelay time.Duration
	// MaxRestarts bounds consecutive recognizer sessions that end in a
	// recoverable failure without hearing anything
	MaxRestarts int
}

// DefaultOptions returns the standard timing settings.
func DefaultOptions() Options {
	return Options{
		Retention:      10 * time.Minute,
		TickInterval:   time.Second,
		ResortInterval: time.Minute,
		RestartDelay:   2 * time.Second,
		MaxRestarts:    5,
	}
}

// warnSpacing is the distance between urgent warnings in the last minute.
const warnSpacing = 10

// Kitchen serializes every change to the timers and the conversation.
type Kitchen struct {
	renderer  Renderer
	notifier  Notifier
	synth     Synthesizer
	store     Persister
	router    *voice.Router
	registry  *timer.Registry
	log       *slog.Logger
	now       func() time.Time
	warned    map[int]int
	conv      dialog.Conversation
	opts      Options
	mu        sync.Mutex
	listening atomic.Bool
}

// Option configures a Kitchen.
type Option func(*Kitchen)

// WithStore sets where snapshots are loaded from and saved to. Without it
// timers only live in memory.
func WithStore(p Persister) Option {
	return func(k *Kitchen) {
		k.store = p
	}
}

// WithRenderer sets the renderer.
func WithRenderer(r Renderer) Option {
	return func(k *Kitchen) {
		k.renderer = r
	}
}

// WithNotifier sets the notifier.
func WithNotifier(n Notifier) Option {
	return func(k *Kitchen) {
		k.notifier = n
	}
}

// WithSynthesizer sets the synthesizer.
func WithSynthesizer(s Synthesizer) Option {
	return func(k *Kitchen) {
		k.synth = s
	}
}

// WithRouter replaces the default command router.
func WithRouter(r *voice.Router) Option {
	return func(k *Kitchen) {
		k.router = r
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(k *Kitchen) {
		k.now = now
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(k *Kitchen) {
		k.log = l
	}
}

// WithOptions sets the timing settings.
func WithOptions(o Options) Option {
	return func(k *Kitchen) {
		k.opts = o
	}
}

// New returns a Kitchen with the saved timers and conversation restored.
// Timers that ran out while nothing was ticking complete on the first Tick.
func New(opts ...Option) (*Kitchen, error) {
	k := &Kitchen{
		renderer: nopRenderer{},
		notifier: nopNotifier{},
		synth:    nopSynthesizer{},
		store:    &memoryStore{},
		registry: timer.NewRegistry(),
		log:      slog.Default(),
		now:      time.Now,
		warned:   make(map[int]int),
		opts:     DefaultOptions(),
	}

	for _, opt := range opts {
		opt(k)
	}

	if k.router == nil {
		k.router = voice.NewRouter(voice.WithLogger(k.log))
	}

	snap, err := k.store.Load()
	if err != nil {
		return nil, errLoadSnapshot.Wrap(err)
	}

	if snap != nil {
		reg, err := timer.Restore(*snap)
		if err != nil {
			return nil, errLoadSnapshot.Wrap(err)
		}

		k.registry = reg
	}

	if cs, ok := k.store.(ConversationStore); ok {
		conv, err := cs.LoadConversation()
		if err != nil {
			k.log.Warn("loading conversation failed", slog.Any("error", err))
		} else {
			k.conv = conv
		}
	}

	k.log.Info(
		"kitchen ready",
		slog.Int("timers", k.registry.Len()),
		slog.Bool("dialog_active", k.conv.Active()),
	)

	return k, nil
}

// Attach applies opts to a running kitchen. It is used for renderers and
// synthesizers that can only be built once the kitchen exists.
func (k *Kitchen) Attach(opts ...Option) {
	k.mu.Lock()
	defer k.mu.Unlock()

	for _, opt := range opts {
		opt(k)
	}
}

// Now returns the kitchen's current time.
func (k *Kitchen) Now() time.Time {
	return k.now()
}

// Listening reports whether a recognizer is attached.
func (k *Kitchen) Listening() bool {
	return k.listening.Load()
}

// Conversation returns the current creation dialog.
func (k *Kitchen) Conversation() dialog.Conversation {
	k.mu.Lock()
	defer k.mu.Unlock()

	return k.conv
}

// Timers returns every timer in display order.
func (k *Kitchen) Timers() []timer.View {
	k.mu.Lock()
	defer k.mu.Unlock()

	return k.registry.Views(k.now())
}

// Snapshot returns the persisted form of the current timers.
func (k *Kitchen) Snapshot() timer.Snapshot {
	k.mu.Lock()
	defer k.mu.Unlock()

	return k.registry.Snapshot(k.now())
}

// HandleUtterance interprets one final utterance, applies its effects and
// returns what should be shown and spoken.
func (k *Kitchen) HandleUtterance(text string) voice.Outcome {
	k.mu.Lock()
	defer k.mu.Unlock()

	s := k.session()
	prev := k.conv

	res := k.router.Route(s, k.conv, text)
	k.conv = res.Conversation

	if k.log.Enabled(context.Background(), slog.LevelDebug) {
		k.log.Debug("utterance handled", slog.String("result", spew.Sdump(res)))
	}

	if s.changed {
		_ = k.persistLocked()
	}

	if k.conv != prev {
		k.saveConversationLocked()
	}

	if res.SpokenText != "" {
		k.synth.Cancel()

		if err := k.synth.Speak(res.SpokenText); err != nil {
			k.log.Warn("speaking failed", slog.Any("error", err))
		}
	}

	if fr, ok := k.renderer.(FeedbackRenderer); ok && (res.Matched || res.IsError) {
		fr.Feedback(res.Outcome)
	}

	return res.Outcome
}

// CreateTimer adds a timer that started at start.
func (k *Kitchen) CreateTimer(
	breadName, processName string,
	minutes int,
	start time.Time,
) (timer.View, error) {
	var v timer.View

	err := k.update(func(s *session) error {
		s.now = start

		var err error

		v, err = s.Create(breadName, processName, minutes)

		return err
	})
	if err != nil {
		return v, err
	}

	// a backdated timer may already be over
	k.Tick()

	return v, nil
}

// Pause pauses the timer with the given ID.
func (k *Kitchen) Pause(id int) error {
	return k.update(func(s *session) error {
		return s.Pause(id)
	})
}

// Resume resumes the timer with the given ID.
func (k *Kitchen) Resume(id int) error {
	return k.update(func(s *session) error {
		return s.Resume(id)
	})
}

// Reset restarts the timer with the given ID from its full duration.
func (k *Kitchen) Reset(id int) error {
	return k.update(func(s *session) error {
		return s.Reset(id)
	})
}

// Delete removes the timer with the given ID.
func (k *Kitchen) Delete(id int) error {
	return k.update(func(s *session) error {
		return s.Delete(id)
	})
}

// ClearAll removes every timer and returns how many there were.
func (k *Kitchen) ClearAll() int {
	var n int

	_ = k.update(func(s *session) error {
		n = s.DeleteAll()
		return nil
	})

	return n
}

func (k *Kitchen) update(fn func(s *session) error) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	s := k.session()

	err := fn(s)

	if s.changed {
		_ = k.persistLocked()
	}

	return err
}

// Tick advances every timer. Completions are announced once, and running
// timers in their final minute trigger a warning every ten seconds.
func (k *Kitchen) Tick() {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	done := k.registry.Tick(now)
	running := false

	for _, t := range k.registry.All() {
		if t.Status != timer.Running {
			continue
		}

		running = true
		v := t.View(now)

		k.renderer.TimerUpdated(v)
		k.warnLocked(v)
	}

	for _, t := range done {
		v := t.View(now)

		delete(k.warned, t.ID)

		k.renderer.TimerUpdated(v)
		k.notifier.TimerCompleted(v)

		k.log.Info(
			"timer completed",
			slog.Int("id", t.ID),
			slog.String("bread", t.BreadName),
			slog.String("process", t.ProcessName),
		)
	}

	if len(done) > 0 {
		k.renderer.DisplayOrderChanged(k.registry.DisplayOrder())
	}

	if running || len(done) > 0 {
		_ = k.persistLocked()
	}
}

func (k *Kitchen) warnLocked(v timer.View) {
	w, ok := k.notifier.(Warner)
	if !ok || !v.Urgent() {
		return
	}

	secs := int(v.Remaining / time.Second)
	if secs == 0 || secs%warnSpacing != 0 || k.warned[v.ID] == secs {
		return
	}

	k.warned[v.ID] = secs

	w.TimerUrgent(v)
}

// Resort evicts timers that completed longer than the retention period ago
// and restores the standard display order.
func (k *Kitchen) Resort() {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	stale := k.registry.EvictStaleCompleted(now, k.opts.Retention)

	for _, t := range stale {
		k.renderer.TimerDeleted(t.View(now))

		k.log.Info(
			"completed timer removed",
			slog.Int("id", t.ID),
			slog.String("bread", t.BreadName),
		)
	}

	k.renderer.DisplayOrderChanged(k.registry.Resort())

	if len(stale) > 0 {
		_ = k.persistLocked()
	}
}

// Run drives Tick and Resort until ctx is cancelled, then saves the final
// state.
func (k *Kitchen) Run(ctx context.Context) error {
	k.Tick()

	tick := time.NewTicker(k.opts.TickInterval)
	defer tick.Stop()

	resort := time.NewTicker(k.opts.ResortInterval)
	defer resort.Stop()

	for {
		select {
		case <-ctx.Done():
			return k.Flush()
		case <-tick.C:
			k.Tick()
		case <-resort.C:
			k.Resort()
		}
	}
}

// Flush saves the current state.
func (k *Kitchen) Flush() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	return k.persistLocked()
}

func (k *Kitchen) persistLocked() error {
	err := k.store.Save(k.registry.Snapshot(k.now()))
	if err != nil {
		k.log.Error("saving timers failed", slog.Any("error", err))
	}

	return err
}

func (k *Kitchen) saveConversationLocked() {
	cs, ok := k.store.(ConversationStore)
	if !ok {
		return
	}

	if err := cs.SaveConversation(k.conv); err != nil {
		k.log.Error("saving conversation failed", slog.Any("error", err))
	}
}

func (k *Kitchen) feedback(out voice.Outcome) {
	k.mu.Lock()
	r := k.renderer
	k.mu.Unlock()

	if fr, ok := r.(FeedbackRenderer); ok {
		fr.Feedback(out)
	}
}

func (k *Kitchen) interim(text string) {
	k.mu.Lock()
	r := k.renderer
	k.mu.Unlock()

	if ir, ok := r.(InterimRenderer); ok {
		ir.Interim(text)
	}
}
