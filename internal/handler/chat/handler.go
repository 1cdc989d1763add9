package chat

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	chatmodel "github.com/littlemoneyschool/tutor/backend/internal/model/chat"
	"github.com/littlemoneyschool/tutor/backend/internal/service/resolver"
	"github.com/littlemoneyschool/tutor/backend/pkg/utils"
)

// Resolver produces the reply for one message.
type Resolver interface {
	Resolve(ctx context.Context, req resolver.Request) (resolver.Reply, error)
}

// Handler serves the tutor chat endpoints.
type Handler struct {
	resolver Resolver
	upgrader websocket.Upgrader
}

// New creates the chat handler.
func New(r Resolver, allowOrigin func(*http.Request) bool) *Handler {
	if allowOrigin == nil {
		allowOrigin = func(*http.Request) bool { return true }
	}
	return &Handler{
		resolver: r,
		upgrader: websocket.Upgrader{
			CheckOrigin:     allowOrigin,
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes mounts POST /ai-chat and its WebSocket twin.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/ai-chat", h.handleChat)
	r.Get("/ai-chat/ws", h.handleWebSocket)
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	status, payload := h.reply(r.Context(), &req, ok)
	utils.RespondJSON(w, status, payload)
}

// reply resolves a decoded request and maps the outcome to a status and body.
// ok=false means the request was rejected during decoding.
func (h *Handler) reply(ctx context.Context, req *resolver.Request, ok bool) (status int, payload chatmodel.Response) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[chat] recovered panic: %v", rec)
			status, payload = serverFault()
		}
	}()

	if !ok || req == nil {
		return validationFault()
	}

	reply, err := h.resolver.Resolve(ctx, *req)
	if err == nil {
		return http.StatusOK, chatmodel.Response{Response: reply.Text, Error: reply.Notice}
	}

	var rerr *resolver.Error
	if errors.As(err, &rerr) && rerr.Code == resolver.ErrorValidation {
		return validationFault()
	}

	log.Printf("[chat] resolve failed: %v", err)
	return serverFault()
}

func validationFault() (int, chatmodel.Response) {
	return http.StatusBadRequest, chatmodel.Response{
		Error:    resolver.ValidationError,
		Response: resolver.ValidationReply,
	}
}

func serverFault() (int, chatmodel.Response) {
	return http.StatusInternalServerError, chatmodel.Response{
		Error:    resolver.ServerError,
		Response: resolver.ApologyReply,
	}
}
