package http

import (
	"errors"
	"net/http"

	"github.com/monetahq/moneta/internal/aggregator"
	"github.com/monetahq/moneta/internal/service"
	"github.com/monetahq/moneta/pkg/httpx"
	"github.com/monetahq/moneta/pkg/monetasdk"
	"github.com/monetahq/moneta/pkg/slogx"
)

type AccountsHandler struct {
	AccountService *service.AccountService
}

// writeAggregatorError maps an upstream failure to a 500 with the
// aggregator's error code, per the no-retry policy: the failure is
// surfaced to the caller as-is.
func writeAggregatorError(w http.ResponseWriter, err error) bool {
	var apiErr *aggregator.APIError
	if errors.As(err, &apiErr) {
		httpx.WriteError(w, http.StatusInternalServerError, monetasdk.ErrCodeUpstream, apiErr.Error())
		return true
	}
	return false
}

// ServeHTTP godoc
//
//	@Summary		Accounts Endpoint
//	@Description	Fetch the caller's accounts across every linked institution. Data is fetched
//	@Description	fresh from the aggregator on every request; nothing is cached.
//	@Tags			Financial Data
//	@Produce		json
//	@Success		200	{array}		monetasdk.AccountInfo	"accounts"
//	@Failure		401	{object}	monetasdk.ErrorResponse	"error, message"
//	@Failure		500	{object}	monetasdk.ErrorResponse	"error, message"
//	@Security		BearerAuth
//	@Router			/v1/accounts [get].
func (h *AccountsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, monetasdk.ErrCodeUnauthorized, "authentication required")
		return
	}

	accounts, err := h.AccountService.Accounts(ctx, userID)
	if err != nil {
		if writeAggregatorError(w, err) {
			return
		}
		log.Error("failed to fetch accounts", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, monetasdk.ErrCodeServer, "failed to fetch accounts")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accounts)
}
