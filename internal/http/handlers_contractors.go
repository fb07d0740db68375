package httpx

import (
	"errors"
	"net/http"

	"github.com/mirdanish6594/Rentr/internal/data"
	"github.com/mirdanish6594/Rentr/internal/service"
)

// ContractorHandlers provides HTTP handlers for contractor profiles.
type ContractorHandlers struct {
	Svc *service.ContractorService
}

// GetByID handles HTTP requests to fetch a contractor profile.
func (h *ContractorHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDPath(w, r)
	if !ok {
		return
	}

	contractor, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, data.ErrContractorNotFound) {
			WriteError(
				w,
				ErrorParams{Code: http.StatusNotFound, ErrCode: "contractor_not_found", Err: err},
			)
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "get_contractor_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, contractor)
}
