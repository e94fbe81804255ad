package http

import (
	"net/http"
	"time"

	"github.com/monetahq/moneta/internal/service"
	"github.com/monetahq/moneta/pkg/httpx"
	"github.com/monetahq/moneta/pkg/monetasdk"
	"github.com/monetahq/moneta/pkg/slogx"
)

type TransactionsHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Transactions Endpoint
//	@Description	Fetch the caller's transactions across every linked institution for a date
//	@Description	range (inclusive, YYYY-MM-DD). Defaults to the trailing 30 days.
//	@Tags			Financial Data
//	@Produce		json
//	@Param			start_date	query		string					false	"Range start (YYYY-MM-DD)"
//	@Param			end_date	query		string					false	"Range end (YYYY-MM-DD)"
//	@Success		200			{array}		monetasdk.TransactionInfo	"transactions"
//	@Failure		400			{object}	monetasdk.ErrorResponse		"error, message"
//	@Failure		401			{object}	monetasdk.ErrorResponse		"error, message"
//	@Failure		500			{object}	monetasdk.ErrorResponse		"error, message"
//	@Security		BearerAuth
//	@Router			/v1/transactions [get].
func (h *TransactionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, monetasdk.ErrCodeUnauthorized, "authentication required")
		return
	}

	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")
	for _, d := range []string{startDate, endDate} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(time.DateOnly, d); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, monetasdk.ErrCodeInvalidRequest, "dates must be YYYY-MM-DD")
			return
		}
	}

	txns, err := h.AccountService.Transactions(ctx, userID, startDate, endDate)
	if err != nil {
		if writeAggregatorError(w, err) {
			return
		}
		log.Error("failed to fetch transactions", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, monetasdk.ErrCodeServer, "failed to fetch transactions")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, txns)
}
