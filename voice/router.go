package voice

import (
	"fmt"
	"log/slog"

	"github.com/panasi/panasi/dialog"
	"github.com/panasi/panasi/timer"
)

// Outcome is what the user sees and hears after an utterance.
type Outcome struct {
	SpokenText  string `json:"spokenText,omitempty"`
	DisplayText string `json:"displayText,omitempty"`
	Matched     bool   `json:"matched"`
	IsError     bool   `json:"isError"`
}

// Timers is the view of the timer collection that commands act on. Every
// method is applied at the caller's notion of the current time.
type Timers interface {
	// All returns the timers in creation order
	All() []timer.View
	// Find resolves a spoken name fragment to a timer
	Find(name string) (timer.View, bool)
	Create(breadName, processName string, minutes int) (timer.View, error)
	Pause(id int) error
	Resume(id int) error
	Delete(id int) error
	PauseAll() (int, error)
	DeleteAll() int
	MoveToTop(id int) error
}

// Result is the outcome of routing one utterance together with the
// conversation that should be in effect afterwards.
type Result struct {
	Outcome
	Conversation dialog.Conversation
	// Stage names the stage that handled the utterance
	Stage string
}

type request struct {
	timers Timers
	conv   *dialog.Conversation
	u      Utterance
}

// stage handles an utterance or declines it. Side effects only happen when
// it reports a match.
type stage struct {
	run  func(r *Router, req *request) (Outcome, bool)
	name string
}

// Router evaluates stages in priority order and stops at the first match.
type Router struct {
	parser    *Parser
	log       *slog.Logger
	breads    []string
	processes []string
	stages    []stage
}

// Option configures a Router.
type Option func(*Router)

// WithVocabulary sets the bread and process names accepted on their own as
// partial commands.
func WithVocabulary(breads, processes []string) Option {
	return func(r *Router) {
		if len(breads) > 0 {
			r.breads = breads
		}

		if len(processes) > 0 {
			r.processes = processes
		}
	}
}

// WithParser replaces the default parser.
func WithParser(p *Parser) Option {
	return func(r *Router) {
		r.parser = p
	}
}

// WithLogger sets the logger used for routing decisions.
func WithLogger(l *slog.Logger) Option {
	return func(r *Router) {
		r.log = l
	}
}

// NewRouter returns a router with the standard stage order.
func NewRouter(opts ...Option) *Router {
	r := &Router{
		parser:    NewParser(),
		log:       slog.Default(),
		breads:    DefaultBreads,
		processes: DefaultProcesses,
	}

	for _, opt := range opts {
		opt(r)
	}

	r.stages = []stage{
		{name: "bulk", run: (*Router).bulk},
		{name: "dialog", run: (*Router).continueDialog},
		{name: "setup", run: (*Router).setup},
		{name: "move", run: (*Router).move},
		{name: "query", run: (*Router).query},
		{name: "create", run: (*Router).create},
		{name: "operation", run: (*Router).operation},
		{name: "partial", run: (*Router).partial},
	}

	return r
}

// Route interprets text against the given conversation and timers.
func (r *Router) Route(
	timers Timers,
	conv dialog.Conversation,
	text string,
) Result {
	req := &request{
		timers: timers,
		conv:   &conv,
		u:      NewUtterance(text),
	}

	if req.u.Compact == "" {
		return Result{Conversation: conv}
	}

	for _, s := range r.stages {
		out, ok := s.run(r, req)
		if !ok {
			continue
		}

		out.Matched = true

		r.log.Debug(
			"utterance routed",
			slog.String("stage", s.name),
			slog.String("utterance", req.u.Raw),
			slog.String("dialog_id", conv.ID),
			slog.String("dialog_state", string(conv.State)),
			slog.Bool("error", out.IsError),
		)

		return Result{
			Outcome:      out,
			Conversation: *req.conv,
			Stage:        s.name,
		}
	}

	r.log.Debug("utterance not understood", slog.String("utterance", req.u.Raw))

	return Result{
		Outcome: Outcome{
			DisplayText: fmt.Sprintf(msgNotUnderstood, req.u.Raw),
			IsError:     true,
		},
		Conversation: conv,
	}
}

func failure(format string, args ...any) Outcome {
	return Outcome{
		DisplayText: fmt.Sprintf(format, args...),
		IsError:     true,
	}
}

func success(format string, args ...any) Outcome {
	return Outcome{
		DisplayText: fmt.Sprintf(format, args...),
	}
}
