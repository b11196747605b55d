package http

import (
	"net/http"

	"github.com/vidora/accounts/internal/utils"
	"github.com/vidora/accounts/models"
)

func (h *Handler) appVersion(w http.ResponseWriter, r *http.Request) {
	payload := map[string]string{"version": h.version}
	utils.WriteJSON(w, models.NewAPIResponse(http.StatusOK, payload, "OK"), http.StatusOK)
}
