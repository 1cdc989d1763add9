package chat

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/littlemoneyschool/tutor/backend/internal/analysis/keyword"
	"github.com/littlemoneyschool/tutor/backend/internal/service/resolver"
)

func TestWebSocketOneReplyPerFrame(t *testing.T) {
	table := keyword.Seed()
	srv := httptest.NewServer(setupRouter(resolver.New(nil, table, resolver.Options{})))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ai-chat/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"message":"ما هي البورصة؟"}`)))
	var first outgoingFrame
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, "reply", first.Type)
	assert.Equal(t, http.StatusOK, first.Status)
	assert.Equal(t, table.Reply("ما هي البورصة"), first.Response)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"message":42}`)))
	var second outgoingFrame
	require.NoError(t, conn.ReadJSON(&second))
	assert.Equal(t, "error", second.Type)
	assert.Equal(t, http.StatusBadRequest, second.Status)
	assert.Equal(t, resolver.ValidationReply, second.Response)
	assert.Equal(t, resolver.ValidationError, second.Error)
}
