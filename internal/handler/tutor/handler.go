package tutor

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/littlemoneyschool/tutor/backend/internal/model/tutor"
	"github.com/littlemoneyschool/tutor/backend/pkg/utils"
)

// Handler exposes the tutor profile to chat clients.
type Handler struct {
	profile   tutor.Profile
	aiEnabled bool
}

// New creates the tutor handler.
func New(profile tutor.Profile, aiEnabled bool) *Handler {
	return &Handler{profile: profile, aiEnabled: aiEnabled}
}

// RegisterRoutes mounts GET /tutor.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/tutor", h.handleGetTutor)
}

type profileResponse struct {
	tutor.Profile
	AIEnabled bool `json:"aiEnabled"`
}

func (h *Handler) handleGetTutor(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, profileResponse{Profile: h.profile, AIEnabled: h.aiEnabled})
}
