package handlers

import (
	"net/http"

	"github.com/onamfest/scorekeeper/services"
)

type ScoreboardHandler struct {
	scoreboardService services.ScoreboardService
}

func NewScoreboardHandler(scoreboardService services.ScoreboardService) *ScoreboardHandler {
	return &ScoreboardHandler{scoreboardService: scoreboardService}
}

func (h *ScoreboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	entries, err := h.scoreboardService.Build(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, entries, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
