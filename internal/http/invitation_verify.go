package http

import (
	"errors"
	"net/http"

	"github.com/monetahq/moneta/internal/service"
	"github.com/monetahq/moneta/pkg/httpx"
	"github.com/monetahq/moneta/pkg/monetasdk"
	"github.com/monetahq/moneta/pkg/slogx"
)

type InvitationVerifyHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Invitation Verification Endpoint
//	@Description	Check whether an invitation code is currently redeemable, before the user
//	@Description	fills in the registration form. Reveals only the domain of the bound email.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		monetasdk.VerifyInvitationRequest	true	"Invitation code"
//	@Success		200		{object}	monetasdk.VerifyInvitationResponse	"valid, email_domain"
//	@Failure		400		{object}	monetasdk.ErrorResponse				"error, message"
//	@Failure		404		{object}	monetasdk.VerifyInvitationResponse	"valid=false, error"
//	@Failure		409		{object}	monetasdk.VerifyInvitationResponse	"valid=false, error"
//	@Failure		410		{object}	monetasdk.VerifyInvitationResponse	"valid=false, error"
//	@Router			/v1/invitations/verify [post].
func (h *InvitationVerifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req monetasdk.VerifyInvitationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, monetasdk.ErrCodeInvalidRequest, err.Error())
		return
	}

	inv, err := h.InvitationService.Verify(ctx, req.InvitationCode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvitationNotFound):
			writeInvalidInvitation(w, http.StatusNotFound, monetasdk.ErrCodeInvalidInvitation)
		case errors.Is(err, service.ErrInvitationUsed):
			writeInvalidInvitation(w, http.StatusConflict, monetasdk.ErrCodeInvitationUsed)
		case errors.Is(err, service.ErrInvitationExpired):
			writeInvalidInvitation(w, http.StatusGone, monetasdk.ErrCodeInvitationExpired)
		default:
			log.Error("invitation verification failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, monetasdk.ErrCodeServer, "failed to verify invitation")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, monetasdk.VerifyInvitationResponse{
		Valid:       true,
		EmailDomain: service.EmailDomain(inv.Email),
	})
}

func writeInvalidInvitation(w http.ResponseWriter, status int, code string) {
	httpx.WriteJSON(w, status, monetasdk.VerifyInvitationResponse{
		Valid: false,
		Error: code,
	})
}
