package http

import (
	"net/http"

	"github.com/monetahq/moneta/internal/service"
	"github.com/monetahq/moneta/pkg/httpx"
	"github.com/monetahq/moneta/pkg/monetasdk"
	"github.com/monetahq/moneta/pkg/slogx"
)

type LiabilitiesHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Liabilities Endpoint
//	@Description	Fetch the caller's debt obligations across every linked institution.
//	@Tags			Financial Data
//	@Produce		json
//	@Success		200	{array}		monetasdk.LiabilityInfo	"liabilities"
//	@Failure		401	{object}	monetasdk.ErrorResponse	"error, message"
//	@Failure		500	{object}	monetasdk.ErrorResponse	"error, message"
//	@Security		BearerAuth
//	@Router			/v1/liabilities [get].
func (h *LiabilitiesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, monetasdk.ErrCodeUnauthorized, "authentication required")
		return
	}

	liabilities, err := h.AccountService.Liabilities(ctx, userID)
	if err != nil {
		if writeAggregatorError(w, err) {
			return
		}
		log.Error("failed to fetch liabilities", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, monetasdk.ErrCodeServer, "failed to fetch liabilities")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, liabilities)
}
