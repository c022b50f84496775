package handlers

import (
	"net/http"

	"github.com/onamfest/scorekeeper/models"
	"github.com/onamfest/scorekeeper/services"
)

type PointsConfigHandler struct {
	configService services.PointsConfigService
}

func NewPointsConfigHandler(configService services.PointsConfigService) *PointsConfigHandler {
	return &PointsConfigHandler{configService: configService}
}

func (h *PointsConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	config, err := h.configService.Get(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, config, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PointsConfigHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input models.PointsConfig
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	config, err := h.configService.Set(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, config, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
