package http

import (
	"net/http"

	"github.com/monetahq/moneta/internal/service"
	"github.com/monetahq/moneta/pkg/httpx"
	"github.com/monetahq/moneta/pkg/monetasdk"
	"github.com/monetahq/moneta/pkg/slogx"
)

type LinkHandler struct {
	AccountService *service.AccountService
}

// HandleCreateToken godoc
//
//	@Summary		Create Link Token Endpoint
//	@Description	Start the institution-linking handshake. The returned token is handed to the
//	@Description	aggregator's link widget on the frontend.
//	@Tags			Link
//	@Produce		json
//	@Success		200	{object}	monetasdk.LinkTokenResponse	"link_token, expiration"
//	@Failure		401	{object}	monetasdk.ErrorResponse		"error, message"
//	@Failure		500	{object}	monetasdk.ErrorResponse		"error, message"
//	@Security		BearerAuth
//	@Router			/v1/link/token [post].
func (h *LinkHandler) HandleCreateToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, monetasdk.ErrCodeUnauthorized, "authentication required")
		return
	}

	lt, err := h.AccountService.CreateLinkToken(ctx, userID)
	if err != nil {
		log.Error("failed to create link token", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, monetasdk.ErrCodeUpstream, "failed to create link token")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, monetasdk.LinkTokenResponse{
		LinkToken:  lt.LinkToken,
		Expiration: lt.Expiration,
	})
}

// HandleExchange godoc
//
//	@Summary		Exchange Public Token Endpoint
//	@Description	Complete a link flow: trade the public token from the link widget for a
//	@Description	permanent access token, stored server-side against the user.
//	@Tags			Link
//	@Accept			json
//	@Produce		json
//	@Param			request	body		monetasdk.ExchangeTokenRequest	true	"Exchange request"
//	@Success		201		{object}	monetasdk.LinkedAccountInfo		"linked account"
//	@Failure		400		{object}	monetasdk.ErrorResponse			"error, message"
//	@Failure		401		{object}	monetasdk.ErrorResponse			"error, message"
//	@Failure		500		{object}	monetasdk.ErrorResponse			"error, message"
//	@Security		BearerAuth
//	@Router			/v1/link/exchange [post].
func (h *LinkHandler) HandleExchange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, monetasdk.ErrCodeUnauthorized, "authentication required")
		return
	}

	var req monetasdk.ExchangeTokenRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, monetasdk.ErrCodeInvalidRequest, err.Error())
		return
	}

	la, err := h.AccountService.ExchangePublicToken(ctx, userID, req.PublicToken, req.InstitutionName)
	if err != nil {
		log.Error("public token exchange failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, monetasdk.ErrCodeUpstream, "failed to link institution")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, monetasdk.LinkedAccountInfo{
		ID:              la.ID,
		ItemID:          la.ItemID,
		InstitutionName: la.InstitutionName,
		CreatedAt:       la.CreatedAt,
	})
}
