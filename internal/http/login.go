package http

import (
	"errors"
	"net/http"

	"github.com/monetahq/moneta/internal/service"
	"github.com/monetahq/moneta/pkg/httpx"
	"github.com/monetahq/moneta/pkg/monetasdk"
	"github.com/monetahq/moneta/pkg/slogx"
)

type LoginHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Authenticate with email and password and receive a session token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		monetasdk.LoginRequest	true	"Login request"
//	@Success		200		{object}	monetasdk.AuthResponse	"token, user"
//	@Failure		400		{object}	monetasdk.ErrorResponse	"error, message"
//	@Failure		401		{object}	monetasdk.ErrorResponse	"error, message"
//	@Failure		500		{object}	monetasdk.ErrorResponse	"error, message"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req monetasdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, monetasdk.ErrCodeInvalidRequest, err.Error())
		return
	}

	user, token, err := h.UserService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteError(w, http.StatusUnauthorized, monetasdk.ErrCodeInvalidCredentials, "invalid email or password")
			return
		}
		log.Error("login failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, monetasdk.ErrCodeServer, "failed to log in")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, monetasdk.AuthResponse{
		Token: token,
		User:  toUserInfo(user),
	})
}
