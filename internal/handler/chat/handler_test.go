package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/littlemoneyschool/tutor/backend/internal/analysis/keyword"
	chatmodel "github.com/littlemoneyschool/tutor/backend/internal/model/chat"
	"github.com/littlemoneyschool/tutor/backend/internal/service/ai"
	"github.com/littlemoneyschool/tutor/backend/internal/service/resolver"
)

type stubResolver struct {
	reply resolver.Reply
	err   error
	panic bool
	got   *resolver.Request
}

func (s *stubResolver) Resolve(_ context.Context, req resolver.Request) (resolver.Reply, error) {
	s.got = &req
	if s.panic {
		panic("boom")
	}
	return s.reply, s.err
}

type failingProvider struct{}

func (failingProvider) Name() string { return "failing" }

func (failingProvider) GenerateReply(context.Context, string, []chatmodel.Turn, int) (string, error) {
	return "", errors.New("upstream down")
}

func setupRouter(r Resolver) *chi.Mux {
	mux := chi.NewRouter()
	New(r, nil).RegisterRoutes(mux)
	return mux
}

func post(t *testing.T, mux http.Handler, body string) (*httptest.ResponseRecorder, chatmodel.Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/ai-chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	mux.ServeHTTP(resp, req)

	var payload chatmodel.Response
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v (%s)", err, resp.Body.String())
	}
	return resp, payload
}

func TestChatKeywordReplyWithoutProvider(t *testing.T) {
	table := keyword.Seed()
	mux := setupRouter(resolver.New(nil, table, resolver.Options{}))

	resp, payload := post(t, mux, `{"message":"ما هي الأسهم؟"}`)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if payload.Response != table.Reply("ما هي الأسهم") {
		t.Fatalf("unexpected reply: %s", payload.Response)
	}
	if payload.Error != "" {
		t.Fatalf("expected no error notice, got %q", payload.Error)
	}
}

func TestChatProviderFailureFallsBack(t *testing.T) {
	table := keyword.Seed()
	mux := setupRouter(resolver.New([]ai.Provider{failingProvider{}}, table, resolver.Options{}))

	resp, payload := post(t, mux, `{"message":"كيف أوفر المال","conversationHistory":[{"role":"user","content":"مرحبا"}]}`)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if payload.Response != table.Reply("كيف أوفر المال") {
		t.Fatalf("expected keyword reply, got %s", payload.Response)
	}
	if payload.Error != resolver.FallbackNotice {
		t.Fatalf("expected fallback notice, got %q", payload.Error)
	}
}

func TestChatRejectsInvalidMessages(t *testing.T) {
	cases := map[string]string{
		"empty string":  `{"message":""}`,
		"whitespace":    `{"message":"   "}`,
		"missing":       `{}`,
		"null":          `{"message":null}`,
		"number":        `{"message":42}`,
		"object":        `{"message":{"text":"hi"}}`,
		"invalid json":  `{"message":`,
		"not an object": `"hello"`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			stub := &stubResolver{reply: resolver.Reply{Text: "never"}}
			if name == "whitespace" || name == "empty string" {
				stub.reply = resolver.Reply{Text: resolver.ValidationReply}
				stub.err = &resolver.Error{Code: resolver.ErrorValidation, Reason: "empty_message"}
			}
			resp, payload := post(t, setupRouter(stub), body)

			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.Code)
			}
			if payload.Error != resolver.ValidationError || payload.Response != resolver.ValidationReply {
				t.Fatalf("unexpected payload: %+v", payload)
			}
		})
	}
}

func TestChatServerFault(t *testing.T) {
	stub := &stubResolver{
		reply: resolver.Reply{Text: resolver.ApologyReply},
		err:   &resolver.Error{Code: resolver.ErrorServerFault, Reason: "provider_required"},
	}
	resp, payload := post(t, setupRouter(stub), `{"message":"مرحبا"}`)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if payload.Error != resolver.ServerError || payload.Response != resolver.ApologyReply {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestChatRecoversPanic(t *testing.T) {
	resp, payload := post(t, setupRouter(&stubResolver{panic: true}), `{"message":"مرحبا"}`)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if payload.Response != resolver.ApologyReply {
		t.Fatalf("expected apology, got %s", payload.Response)
	}
}

func TestChatPassesHistory(t *testing.T) {
	stub := &stubResolver{reply: resolver.Reply{Text: "ok"}}
	_, _ = post(t, setupRouter(stub), `{"message":"ثم؟","conversationHistory":[{"role":"user","content":"أ"},{"role":"assistant","content":"ب"}]}`)

	if stub.got == nil {
		t.Fatalf("resolver not called")
	}
	if stub.got.Message != "ثم؟" {
		t.Fatalf("unexpected message %q", stub.got.Message)
	}
	if len(stub.got.History) != 2 || stub.got.History[1].Role != chatmodel.RoleAssistant {
		t.Fatalf("unexpected history %+v", stub.got.History)
	}
}

func historyBody(message string, turns int, content string) string {
	history := make([]chatmodel.Turn, 0, turns)
	for i := 0; i < turns; i++ {
		role := chatmodel.RoleUser
		if i%2 == 1 {
			role = chatmodel.RoleAssistant
		}
		history = append(history, chatmodel.Turn{Role: role, Content: content})
	}
	body, _ := json.Marshal(chatmodel.ClientRequest{Message: message, ConversationHistory: history})
	return string(body)
}

func TestChatAnswersLongHistory(t *testing.T) {
	table := keyword.Seed()
	mux := setupRouter(resolver.New(nil, table, resolver.Options{}))

	for _, turns := range []int{100, 2500} {
		body := historyBody("كيف أوفر المال", turns, strings.Repeat("ا", 400))
		resp, payload := post(t, mux, body)

		if resp.Code != http.StatusOK {
			t.Fatalf("turns=%d bytes=%d: expected 200, got %d", turns, len(body), resp.Code)
		}
		if payload.Response != table.Reply("كيف أوفر المال") {
			t.Fatalf("turns=%d: unexpected reply %s", turns, payload.Response)
		}
	}
}

func TestChatKeepsNewestHistoryOfLongBody(t *testing.T) {
	stub := &stubResolver{reply: resolver.Reply{Text: "ok"}}
	resp, _ := post(t, setupRouter(stub), historyBody("سؤال", 120, "دور"))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if len(stub.got.History) != maxHistoryTurns {
		t.Fatalf("expected %d turns, got %d", maxHistoryTurns, len(stub.got.History))
	}
}

func TestChatSkipsMalformedHistory(t *testing.T) {
	cases := map[string]struct {
		body string
		want int
	}{
		"non-string content": {`{"message":"كيف أوفر المال","conversationHistory":[{"role":"user","content":5}]}`, 0},
		"mixed entries":      {`{"message":"كيف أوفر المال","conversationHistory":[{"role":"user","content":"مرحبا"},7,"x",{"role":"system","content":"y"},{"role":"assistant","content":"أهلاً"}]}`, 2},
		"string history":     {`{"message":"كيف أوفر المال","conversationHistory":"nope"}`, 0},
		"object history":     {`{"message":"كيف أوفر المال","conversationHistory":{"role":"user"}}`, 0},
		"null history":       {`{"message":"كيف أوفر المال","conversationHistory":null}`, 0},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			stub := &stubResolver{reply: resolver.Reply{Text: "ok"}}
			resp, payload := post(t, setupRouter(stub), tc.body)

			if resp.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d (%+v)", resp.Code, payload)
			}
			if stub.got == nil || stub.got.Message != "كيف أوفر المال" {
				t.Fatalf("unexpected request %+v", stub.got)
			}
			if len(stub.got.History) != tc.want {
				t.Fatalf("expected %d turns, got %+v", tc.want, stub.got.History)
			}
		})
	}
}
