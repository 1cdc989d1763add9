package resolver

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/littlemoneyschool/tutor/backend/internal/analysis/keyword"
	"github.com/littlemoneyschool/tutor/backend/internal/model/chat"
	"github.com/littlemoneyschool/tutor/backend/internal/service/ai"
)

// Result is the outcome of one strategy. OK=false means "try the next one";
// Reason says why, for logs only.
type Result struct {
	Text   string
	OK     bool
	Reason string
}

func success(text string) Result { return Result{Text: text, OK: true} }

func failure(reason string) Result { return Result{Reason: reason} }

// Strategy produces a reply or reports that the next strategy should run.
type Strategy interface {
	Name() string
	Try(ctx context.Context, req Request) Result
}

// ProviderStrategy asks a model provider for the reply.
type ProviderStrategy struct {
	provider     ai.Provider
	systemPrompt string
	maxOutput    int
	window       int
	timeout      time.Duration
}

// NewProviderStrategy wraps provider with the call bounds from opts.
func NewProviderStrategy(provider ai.Provider, opts Options) *ProviderStrategy {
	opts = opts.withDefaults()
	return &ProviderStrategy{
		provider:     provider,
		systemPrompt: opts.SystemPrompt,
		maxOutput:    opts.MaxOutput,
		window:       opts.HistoryWindow,
		timeout:      opts.Timeout,
	}
}

func (s *ProviderStrategy) Name() string { return s.provider.Name() }

// Turns returns what is sent to the provider: the newest window of history plus the message.
func (s *ProviderStrategy) Turns(req Request) []chat.Turn {
	turns := chat.LastTurns(req.History, s.window)
	return append(turns, chat.Turn{Role: chat.RoleUser, Content: req.Message})
}

// Try implements Strategy. Errors, empty text and panics all become failures.
func (s *ProviderStrategy) Try(ctx context.Context, req Request) (res Result) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[resolver] provider %s panicked: %v", s.Name(), rec)
			res = failure("panic")
		}
	}()

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	started := time.Now()
	text, err := s.provider.GenerateReply(callCtx, s.systemPrompt, s.Turns(req), s.maxOutput)
	if err != nil {
		reason := "error"
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			reason = "timeout"
		}
		log.Printf("[resolver] provider %s failed after %s: %v", s.Name(), time.Since(started).Round(time.Millisecond), newError(ErrorProviderFailure, reason, err))
		return failure(reason)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		log.Printf("[resolver] provider %s returned empty text", s.Name())
		return failure("empty")
	}

	log.Printf("[resolver] provider %s answered in %s, length=%d", s.Name(), time.Since(started).Round(time.Millisecond), len(text))
	return success(text)
}

// KeywordStrategy answers from the keyword table when a key matches.
type KeywordStrategy struct {
	table *keyword.Table
}

func NewKeywordStrategy(table *keyword.Table) *KeywordStrategy {
	return &KeywordStrategy{table: table}
}

func (s *KeywordStrategy) Name() string { return "keyword" }

func (s *KeywordStrategy) Try(_ context.Context, req Request) Result {
	entry, ok := s.table.Match(req.Message)
	if !ok {
		return failure("no_match")
	}
	return success(entry.Reply)
}

// DefaultStrategy always answers with the table's default reply.
type DefaultStrategy struct {
	table *keyword.Table
}

func NewDefaultStrategy(table *keyword.Table) *DefaultStrategy {
	return &DefaultStrategy{table: table}
}

func (s *DefaultStrategy) Name() string { return keyword.DefaultKey }

func (s *DefaultStrategy) Try(_ context.Context, _ Request) Result {
	return success(s.table.Default())
}
