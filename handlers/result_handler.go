package handlers

import (
	"net/http"

	"github.com/onamfest/scorekeeper/models"
	"github.com/onamfest/scorekeeper/repositories"
	"github.com/onamfest/scorekeeper/services"
)

type ResultHandler struct {
	settlementService services.SettlementService
	resultRepo        repositories.ResultRepository
}

func NewResultHandler(settlementService services.SettlementService, resultRepo repositories.ResultRepository) *ResultHandler {
	return &ResultHandler{
		settlementService: settlementService,
		resultRepo:        resultRepo,
	}
}

func (h *ResultHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		results []models.Result
		err     error
	)

	if winnerTeamID := r.URL.Query().Get("winner_team_id"); winnerTeamID != "" {
		results, err = h.resultRepo.ListByWinnerTeamID(r.Context(), winnerTeamID)
	} else {
		results, err = h.resultRepo.List(r.Context())
	}
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, results, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ResultHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.SettleInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.settlementService.Settle(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, result, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
