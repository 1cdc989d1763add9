package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/littlemoneyschool/tutor/backend/internal/model/chat"
	"github.com/littlemoneyschool/tutor/backend/internal/model/tutor"
)

func TestResolveSendsHistory(t *testing.T) {
	var got chat.ClientRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ai-chat", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(chat.Response{Response: "أهلاً!"})
	}))
	defer srv.Close()

	c := New(srv.URL+"/", time.Second)
	history := []chat.Turn{{Role: chat.RoleUser, Content: "مرحبا"}, {Role: chat.RoleAssistant, Content: "أهلاً"}}
	reply, err := c.Resolve(context.Background(), "ما هي الأسهم؟", history)

	require.NoError(t, err)
	assert.Equal(t, "أهلاً!", reply)
	assert.Equal(t, "ما هي الأسهم؟", got.Message)
	assert.Equal(t, history, got.ConversationHistory)
}

func TestResolveNon200CarriesReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(chat.Response{Error: "خطأ في الخادم", Response: "عذراً"})
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second).Resolve(context.Background(), "x", nil)

	var serr *StatusError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, http.StatusInternalServerError, serr.Status)
	assert.Equal(t, "عذراً", serr.Reply)
	assert.Equal(t, "خطأ في الخادم", serr.Reason)
}

func TestResolveEmptyReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"response":"  "}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second).Resolve(context.Background(), "x", nil)
	assert.ErrorIs(t, err, ErrEmptyReply)
}

func TestResolveTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New(url, time.Second).Resolve(context.Background(), "x", nil)
	assert.Error(t, err)
}

func TestFetchTutor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tutor", r.URL.Path)
		_ = json.NewEncoder(w).Encode(tutor.Default())
	}))
	defer srv.Close()

	profile, err := New(srv.URL, time.Second).FetchTutor(context.Background())
	require.NoError(t, err)
	assert.Equal(t, tutor.Default().Name, profile.Name)
	assert.Equal(t, tutor.Default().Welcome, profile.Welcome)
}
