package http

import (
	"errors"
	"net/http"

	"github.com/monetahq/moneta/internal/domain"
	"github.com/monetahq/moneta/internal/service"
	"github.com/monetahq/moneta/pkg/httpx"
	"github.com/monetahq/moneta/pkg/monetasdk"
	"github.com/monetahq/moneta/pkg/slogx"
)

type RegisterHandler struct {
	RegistrationService *service.RegistrationService
}

func toUserInfo(u domain.User) monetasdk.UserInfo {
	return monetasdk.UserInfo{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// ServeHTTP godoc
//
//	@Summary		Registration Endpoint
//	@Description	Create an account by redeeming a single-use, email-bound invitation code.
//	@Description	On success the invitation is consumed and a session token is returned.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		monetasdk.RegisterRequest	true	"Registration request"
//	@Success		201		{object}	monetasdk.AuthResponse		"token, user"
//	@Failure		400		{object}	monetasdk.ErrorResponse		"error, message"
//	@Failure		500		{object}	monetasdk.ErrorResponse		"error, message"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req monetasdk.RegisterRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, monetasdk.ErrCodeInvalidRequest, err.Error())
		return
	}

	user, token, err := h.RegistrationService.Register(ctx, req.Email, req.Password, req.InvitationCode)
	if err != nil {
		// Every invitation failure is a 400 here; the dedicated verify
		// endpoint is the one that distinguishes 404/409/410.
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			httpx.WriteError(w, http.StatusBadRequest, monetasdk.ErrCodeInvalidRequest, "email and invitation code are required")
		case errors.Is(err, service.ErrWeakPassword):
			httpx.WriteError(w, http.StatusBadRequest, monetasdk.ErrCodeWeakPassword, "password must be at least 8 characters")
		case errors.Is(err, service.ErrInvitationNotFound):
			httpx.WriteError(w, http.StatusBadRequest, monetasdk.ErrCodeInvalidInvitation, "invitation code is not valid")
		case errors.Is(err, service.ErrInvitationUsed):
			httpx.WriteError(w, http.StatusBadRequest, monetasdk.ErrCodeInvitationUsed, "invitation code has already been used")
		case errors.Is(err, service.ErrInvitationExpired):
			httpx.WriteError(w, http.StatusBadRequest, monetasdk.ErrCodeInvitationExpired, "invitation code has expired")
		case errors.Is(err, service.ErrInvitationEmailMismatch):
			httpx.WriteError(w, http.StatusBadRequest, monetasdk.ErrCodeEmailMismatch, "invitation code was issued to a different email address")
		case errors.Is(err, service.ErrEmailTaken):
			httpx.WriteError(w, http.StatusBadRequest, monetasdk.ErrCodeEmailTaken, "an account with this email already exists")
		default:
			log.Error("registration failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, monetasdk.ErrCodeServer, "failed to register")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, monetasdk.AuthResponse{
		Token: token,
		User:  toUserInfo(user),
	})
}
