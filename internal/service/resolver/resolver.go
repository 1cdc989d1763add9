package resolver

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/littlemoneyschool/tutor/backend/internal/analysis/keyword"
	"github.com/littlemoneyschool/tutor/backend/internal/model/chat"
	"github.com/littlemoneyschool/tutor/backend/internal/service/ai"
)

const (
	defaultMaxOutput     = 200
	defaultHistoryWindow = 6
	defaultTimeout       = 8 * time.Second
)

// Options bound every provider call.
type Options struct {
	SystemPrompt    string
	MaxOutput       int
	HistoryWindow   int
	Timeout         time.Duration
	RequireProvider bool
}

func (o Options) withDefaults() Options {
	if o.MaxOutput <= 0 {
		o.MaxOutput = defaultMaxOutput
	}
	if o.HistoryWindow <= 0 {
		o.HistoryWindow = defaultHistoryWindow
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return o
}

// Request is one user message plus the conversation so far.
type Request struct {
	Message string
	History []chat.Turn
}

// Reply is the resolved answer. Source names the strategy that produced it.
type Reply struct {
	Text   string
	Source string
	Notice string
}

// Resolver turns a user message into exactly one reply by running its strategies
// in order and stopping at the first success.
type Resolver struct {
	strategies      []Strategy
	hasProvider     bool
	requireProvider bool
}

// New builds the standard chain: each provider in order, then the keyword table,
// then its default reply. providers may be empty.
func New(providers []ai.Provider, table *keyword.Table, opts Options) *Resolver {
	opts = opts.withDefaults()

	strategies := make([]Strategy, 0, len(providers)+2)
	for _, p := range providers {
		if p == nil {
			continue
		}
		strategies = append(strategies, NewProviderStrategy(p, opts))
	}
	hasProvider := len(strategies) > 0
	strategies = append(strategies, NewKeywordStrategy(table), NewDefaultStrategy(table))

	return &Resolver{
		strategies:      strategies,
		hasProvider:     hasProvider,
		requireProvider: opts.RequireProvider,
	}
}

// NewWithStrategies builds a resolver over an explicit strategy list.
func NewWithStrategies(strategies ...Strategy) *Resolver {
	r := &Resolver{strategies: strategies}
	for _, s := range strategies {
		if _, ok := s.(*ProviderStrategy); ok {
			r.hasProvider = true
		}
	}
	return r
}

// AIEnabled reports whether any provider strategy is wired.
func (r *Resolver) AIEnabled() bool {
	return r.hasProvider
}

// StrategyNames lists the strategies in the order they are tried.
func (r *Resolver) StrategyNames() []string {
	names := make([]string, 0, len(r.strategies))
	for _, s := range r.strategies {
		names = append(names, s.Name())
	}
	return names
}

// Resolve returns the reply for req. A non-nil error is always a *Error and the
// returned Reply still carries a user-safe text.
func (r *Resolver) Resolve(ctx context.Context, req Request) (reply Reply, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[resolver] unexpected panic: %v", rec)
			reply = Reply{Text: ApologyReply}
			err = newError(ErrorServerFault, "panic", nil)
		}
	}()

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		return Reply{Text: ValidationReply}, newError(ErrorValidation, "empty_message", nil)
	}

	if r.requireProvider && !r.hasProvider {
		log.Printf("[resolver] provider required but no credential configured")
		return Reply{Text: ApologyReply}, newError(ErrorServerFault, "provider_required", ErrProviderRequired)
	}

	providerFailed := false
	for _, s := range r.strategies {
		res := s.Try(ctx, req)
		if res.OK {
			out := Reply{Text: res.Text, Source: s.Name()}
			if _, isProvider := s.(*ProviderStrategy); !isProvider && providerFailed {
				out.Notice = FallbackNotice
			}
			return out, nil
		}
		if _, isProvider := s.(*ProviderStrategy); isProvider {
			providerFailed = true
		}
	}

	log.Printf("[resolver] no strategy produced a reply")
	return Reply{Text: ApologyReply}, newError(ErrorServerFault, "no_reply", nil)
}
