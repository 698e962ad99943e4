package kitchen

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panasi/panasi/dialog"
	"github.com/panasi/panasi/speech"
	"github.com/panasi/panasi/timer"
	"github.com/panasi/panasi/voice"
)

var epoch = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

type clock struct {
	t  time.Time
	mu sync.Mutex
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.t = c.t.Add(d)
}

// recorder captures every outbound event of the kitchen.
type recorder struct {
	created   []timer.View
	updated   []timer.View
	deleted   []timer.View
	orders    [][]int
	feedback  []voice.Outcome
	interim   []string
	completed []timer.View
	urgent    []timer.View
	spoken    []string
	cancels   int
	mu        sync.Mutex
}

func (r *recorder) TimerCreated(v timer.View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, v)
}

func (r *recorder) TimerUpdated(v timer.View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updated = append(r.updated, v)
}

func (r *recorder) TimerDeleted(v timer.View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleted = append(r.deleted, v)
}

func (r *recorder) DisplayOrderChanged(ids []int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, ids)
}

func (r *recorder) Feedback(out voice.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.feedback = append(r.feedback, out)
}

func (r *recorder) Interim(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.interim = append(r.interim, text)
}

func (r *recorder) TimerCompleted(v timer.View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completed = append(r.completed, v)
}

func (r *recorder) TimerUrgent(v timer.View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.urgent = append(r.urgent, v)
}

func (r *recorder) Speak(text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spoken = append(r.spoken, text)

	return nil
}

func (r *recorder) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancels++
}

type convStore struct {
	memoryStore
	conv  dialog.Conversation
	saves int
}

func (c *convStore) SaveConversation(conv dialog.Conversation) error {
	c.conv = conv
	c.saves++

	return nil
}

func (c *convStore) LoadConversation() (dialog.Conversation, error) {
	return c.conv, nil
}

type fixture struct {
	k     *Kitchen
	clock *clock
	rec   *recorder
	store *convStore
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()

	f := &fixture{
		clock: &clock{t: epoch},
		rec:   &recorder{},
		store: &convStore{},
	}

	o := DefaultOptions()
	o.RestartDelay = time.Millisecond

	base := []Option{
		WithClock(f.clock.Now),
		WithRenderer(f.rec),
		WithNotifier(f.rec),
		WithSynthesizer(f.rec),
		WithStore(f.store),
		WithOptions(o),
	}

	k, err := New(append(base, opts...)...)
	require.NoError(t, err)

	f.k = k

	return f
}

func TestHandleUtteranceCreatesAndPersists(t *testing.T) {
	f := newFixture(t)

	out := f.k.HandleUtterance("食パン一次発酵40分スタート")

	assert.True(t, out.Matched)
	assert.False(t, out.IsError)
	assert.Equal(t, "食パンの一次発酵を40分でスタートしました", out.DisplayText)

	require.Len(t, f.rec.created, 1)
	assert.Equal(t, "食パン", f.rec.created[0].BreadName)
	assert.Equal(t, []int{1}, f.rec.orders[len(f.rec.orders)-1])
	assert.Equal(t, []voice.Outcome{out}, f.rec.feedback)

	require.NotNil(t, f.store.snap)
	require.Len(t, f.store.snap.Timers, 1)
	assert.Equal(t, 2, f.store.snap.NextID)
	assert.Equal(t, 2400.0, f.store.snap.Timers[0].RemainingTime)
}

func TestHandleUtteranceSpeaksQueries(t *testing.T) {
	f := newFixture(t)

	f.k.HandleUtterance("食パン一次発酵40分")
	f.clock.Advance(10 * time.Minute)

	out := f.k.HandleUtterance("食パンの残り時間")

	assert.Equal(t, "食パンの一次発酵はあと30分です", out.SpokenText)
	assert.Equal(t, []string{out.SpokenText}, f.rec.spoken)
	assert.Equal(t, 1, f.rec.cancels)
}

func TestUnrecognizedUtteranceChangesNothing(t *testing.T) {
	f := newFixture(t)

	out := f.k.HandleUtterance("こんにちは")

	assert.False(t, out.Matched)
	assert.True(t, out.IsError)
	assert.Nil(t, f.store.snap)
	assert.Empty(t, f.rec.created)
	assert.Len(t, f.rec.feedback, 1)
}

func TestDialogEndToEnd(t *testing.T) {
	t.Run("confirm", func(t *testing.T) {
		f := newFixture(t)

		for _, u := range []string{"タイマー設定", "食パン", "一次発酵", "40"} {
			out := f.k.HandleUtterance(u)
			require.True(t, out.Matched, u)
		}

		assert.Equal(t, dialog.WaitingConfirmation, f.k.Conversation().State)
		assert.Equal(t, dialog.WaitingConfirmation, f.store.conv.State)

		out := f.k.HandleUtterance("はい")

		assert.Equal(t, "食パンの一次発酵、40分のタイマーを開始しました！", out.SpokenText)
		assert.False(t, f.k.Conversation().Active())
		assert.False(t, f.store.conv.Active())

		views := f.k.Timers()
		require.Len(t, views, 1)
		assert.Equal(t, "食パン", views[0].BreadName)
		assert.Equal(t, "一次発酵", views[0].ProcessName)
		assert.Equal(t, 40, views[0].Duration)

		// every prompt interrupts the previous one
		assert.Len(t, f.rec.spoken, 5)
		assert.Equal(t, 5, f.rec.cancels)
	})

	t.Run("cancel", func(t *testing.T) {
		f := newFixture(t)

		for _, u := range []string{"タイマー設定", "食パン", "一次発酵", "40", "いいえ"} {
			f.k.HandleUtterance(u)
		}

		assert.Empty(t, f.k.Timers())
		assert.False(t, f.k.Conversation().Active())
	})
}

func TestConversationSurvivesRestart(t *testing.T) {
	f := newFixture(t)

	f.k.HandleUtterance("タイマー設定")
	f.k.HandleUtterance("バゲット")

	k, err := New(WithStore(f.store), WithClock(f.clock.Now))
	require.NoError(t, err)

	assert.Equal(t, dialog.WaitingProcess, k.Conversation().State)
	assert.Equal(t, "バゲット", k.Conversation().Data.BreadName)
}

func TestOversizedTimerIsRejected(t *testing.T) {
	f := newFixture(t)

	out := f.k.HandleUtterance("食パン一次発酵200000000分")

	assert.True(t, out.IsError)
	assert.Equal(t, timer.ErrInvalidTimer.Message, out.DisplayText)
	assert.Empty(t, f.k.Timers())

	f.clock.Advance(time.Second)
	f.k.Tick()

	assert.Empty(t, f.rec.completed)
	assert.Empty(t, f.rec.created)
}

func TestTickCompletesOnce(t *testing.T) {
	f := newFixture(t)

	_, err := f.k.CreateTimer("クロワッサン", "焼成", 1, f.clock.Now())
	require.NoError(t, err)

	f.clock.Advance(61 * time.Second)
	f.k.Tick()
	f.k.Tick()

	require.Len(t, f.rec.completed, 1)
	assert.Equal(t, timer.Completed, f.rec.completed[0].Status)
	assert.Equal(t, timer.Completed, f.store.snap.Timers[0].Status)
	assert.NotNil(t, f.store.snap.Timers[0].CompletedTime)
}

func TestUrgentWarnings(t *testing.T) {
	f := newFixture(t)

	_, err := f.k.CreateTimer("ロールパン", "焼成", 1, f.clock.Now())
	require.NoError(t, err)

	for range 60 {
		f.k.Tick()
		f.k.Tick()
		f.clock.Advance(time.Second)
	}

	var left []time.Duration
	for _, v := range f.rec.urgent {
		left = append(left, v.Remaining)
	}

	assert.Equal(t, []time.Duration{
		60 * time.Second,
		50 * time.Second,
		40 * time.Second,
		30 * time.Second,
		20 * time.Second,
		10 * time.Second,
	}, left)
	assert.Empty(t, f.rec.completed)

	f.k.Tick()
	assert.Len(t, f.rec.completed, 1)
}

func TestCreateTimerInThePast(t *testing.T) {
	f := newFixture(t)

	v, err := f.k.CreateTimer("食パン", "二次発酵", 30, epoch.Add(-45*time.Minute))
	require.NoError(t, err)

	assert.Equal(t, 1, v.ID)
	require.Len(t, f.rec.completed, 1)
	assert.Equal(t, timer.Completed, f.k.Timers()[0].Status)
}

func TestResortEvictsStaleTimers(t *testing.T) {
	f := newFixture(t)

	_, err := f.k.CreateTimer("メロンパン", "焼成", 1, f.clock.Now())
	require.NoError(t, err)

	_, err = f.k.CreateTimer("食パン", "一次発酵", 60, f.clock.Now())
	require.NoError(t, err)

	f.clock.Advance(time.Minute)
	f.k.Tick()

	f.clock.Advance(5 * time.Minute)
	f.k.Resort()
	assert.Len(t, f.k.Timers(), 2)
	assert.Equal(t, []int{2, 1}, f.rec.orders[len(f.rec.orders)-1])

	f.clock.Advance(5*time.Minute + time.Second)
	f.k.Resort()

	views := f.k.Timers()
	require.Len(t, views, 1)
	assert.Equal(t, 2, views[0].ID)
	require.Len(t, f.rec.deleted, 1)
	assert.Equal(t, 1, f.rec.deleted[0].ID)
	assert.Len(t, f.store.snap.Timers, 1)
}

func TestRestoreCompletesRetroactively(t *testing.T) {
	reg := timer.NewRegistry()

	_, err := reg.Create("バゲット", "焼成", 25, epoch)
	require.NoError(t, err)

	store := &convStore{}
	require.NoError(t, store.Save(reg.Snapshot(epoch)))

	f := newFixture(t, WithStore(store))
	f.clock.Advance(2 * time.Hour)

	assert.Equal(t, timer.Running, f.k.Timers()[0].Status)

	f.k.Tick()

	require.Len(t, f.rec.completed, 1)
	assert.Equal(t, "バゲット", f.rec.completed[0].BreadName)
}

func TestManualOperations(t *testing.T) {
	f := newFixture(t)

	v, err := f.k.CreateTimer("食パン", "一次発酵", 40, f.clock.Now())
	require.NoError(t, err)

	f.clock.Advance(10 * time.Minute)
	require.NoError(t, f.k.Pause(v.ID))

	f.clock.Advance(5 * time.Minute)
	assert.Equal(t, 30*time.Minute, f.k.Timers()[0].Remaining)

	require.NoError(t, f.k.Resume(v.ID))
	f.clock.Advance(time.Minute)
	assert.Equal(t, 29*time.Minute, f.k.Timers()[0].Remaining)

	require.NoError(t, f.k.Reset(v.ID))
	assert.Equal(t, 40*time.Minute, f.k.Timers()[0].Remaining)

	assert.ErrorIs(t, f.k.Pause(99), timer.ErrNotFound)
	assert.ErrorIs(t, f.k.Delete(99), timer.ErrNotFound)

	_, err = f.k.CreateTimer("", "焼成", 10, f.clock.Now())
	assert.ErrorIs(t, err, timer.ErrInvalidTimer)

	require.NoError(t, f.k.Delete(v.ID))
	assert.Empty(t, f.k.Timers())
	assert.Equal(t, 0, f.k.ClearAll())
}

// scripted plays one function per recognizer session.
type scripted struct {
	sessions []func(deliver func(speech.Result)) error
	calls    int
}

func (s *scripted) Listen(_ context.Context, deliver func(speech.Result)) error {
	if s.calls >= len(s.sessions) {
		return speech.ErrClosed
	}

	fn := s.sessions[s.calls]
	s.calls++

	return fn(deliver)
}

func fail(err error) func(func(speech.Result)) error {
	return func(func(speech.Result)) error {
		return err
	}
}

func TestListenRestartsUntilClosed(t *testing.T) {
	f := newFixture(t)

	rec := &scripted{
		sessions: []func(func(speech.Result)) error{
			func(deliver func(speech.Result)) error {
				deliver(speech.Result{Text: "食パン一次"})
				deliver(speech.Result{Text: "食パン一次発酵40分", Final: true})

				return speech.ErrNoSpeech
			},
			fail(speech.ErrNetwork.Wrap(errors.New("offline"))),
			fail(nil),
		},
	}

	err := f.k.Listen(context.Background(), rec)

	require.NoError(t, err)
	assert.Equal(t, 4, rec.calls)
	assert.Len(t, f.k.Timers(), 1)
	assert.Equal(t, []string{"食パン一次"}, f.rec.interim)
	assert.False(t, f.k.Listening())

	var shown []string
	for _, out := range f.rec.feedback {
		shown = append(shown, out.DisplayText)
	}

	assert.Contains(t, shown, "音声が検出されませんでした")
	assert.Contains(t, shown, "ネットワークエラーが発生しました")
}

func TestListenGivesUp(t *testing.T) {
	o := DefaultOptions()
	o.RestartDelay = time.Millisecond
	o.MaxRestarts = 2

	f := newFixture(t, WithOptions(o))

	rec := &scripted{
		sessions: []func(func(speech.Result)) error{
			fail(speech.ErrNoSpeech),
			fail(speech.ErrAborted),
			fail(speech.ErrNoSpeech),
			fail(speech.ErrNoSpeech),
		},
	}

	err := f.k.Listen(context.Background(), rec)

	assert.ErrorIs(t, err, errListenGaveUp)
	assert.ErrorIs(t, err, speech.ErrNoSpeech)
	assert.Equal(t, 3, rec.calls)
}

func TestListenStopsWhenDenied(t *testing.T) {
	f := newFixture(t)

	rec := &scripted{
		sessions: []func(func(speech.Result)) error{
			fail(speech.ErrNotAllowed),
			fail(nil),
		},
	}

	err := f.k.Listen(context.Background(), rec)

	assert.ErrorIs(t, err, speech.ErrNotAllowed)
	assert.Equal(t, 1, rec.calls)
	require.NotEmpty(t, f.rec.feedback)
	assert.Equal(t, "マイクへのアクセスが拒否されました", f.rec.feedback[0].DisplayText)
}

func TestRunStopsOnCancel(t *testing.T) {
	f := newFixture(t)

	_, err := f.k.CreateTimer("食パン", "焼成", 30, f.clock.Now())
	require.NoError(t, err)

	f.store.snap = nil

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, f.k.Run(ctx))
	require.NotNil(t, f.store.snap)
	assert.Len(t, f.store.snap.Timers, 1)
}

func TestAttachReplacesOutputs(t *testing.T) {
	f := newFixture(t)

	late := &recorder{}
	f.k.Attach(WithRenderer(late), WithSynthesizer(late))

	f.k.HandleUtterance("食パン一次発酵40分")
	f.k.HandleUtterance("食パンの残り時間")

	assert.Empty(t, f.rec.created)
	assert.Empty(t, f.rec.spoken)
	assert.Len(t, late.created, 1)
	assert.Len(t, late.spoken, 1)
	assert.Len(t, f.k.Timers(), 1)
}
