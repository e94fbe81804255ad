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

type AdminInvitationsHandler struct {
	InvitationService *service.InvitationService
}

func toInvitationInfo(inv domain.Invitation) monetasdk.InvitationInfo {
	return monetasdk.InvitationInfo{
		ID:        inv.ID,
		Code:      inv.Code,
		Email:     inv.Email,
		Used:      inv.Used,
		UsedBy:    inv.UsedBy,
		UsedAt:    inv.UsedAt,
		ExpiresAt: inv.ExpiresAt,
		CreatedAt: inv.CreatedAt,
	}
}

// HandleCreate godoc
//
//	@Summary		Create Invitation Endpoint
//	@Description	Issue a new invitation code bound to an email. The code may be supplied or
//	@Description	generated; expiry defaults to 30 days.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		monetasdk.CreateInvitationRequest	true	"Invitation request"
//	@Success		201		{object}	monetasdk.InvitationInfo			"invitation"
//	@Failure		400		{object}	monetasdk.ErrorResponse				"error, message"
//	@Failure		401		{object}	monetasdk.ErrorResponse				"error, message"
//	@Failure		409		{object}	monetasdk.ErrorResponse				"error, message"
//	@Failure		500		{object}	monetasdk.ErrorResponse				"error, message"
//	@Security		AdminKey
//	@Router			/v1/admin/invitations [post].
func (h *AdminInvitationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req monetasdk.CreateInvitationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, monetasdk.ErrCodeInvalidRequest, err.Error())
		return
	}

	inv, err := h.InvitationService.Issue(ctx, req.Code, req.Email, req.ExpiresInDays)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			httpx.WriteError(w, http.StatusBadRequest, monetasdk.ErrCodeInvalidRequest, "email is required")
		case errors.Is(err, service.ErrDuplicateCode):
			httpx.WriteError(w, http.StatusConflict, monetasdk.ErrCodeDuplicateCode, "invitation code already exists")
		default:
			log.Error("failed to create invitation", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, monetasdk.ErrCodeServer, "failed to create invitation")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toInvitationInfo(inv))
}

// HandleList godoc
//
//	@Summary		List Invitations Endpoint
//	@Description	List every invitation, consumed ones included; the ledger doubles as the
//	@Description	audit trail of who was invited and who redeemed.
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{array}		monetasdk.InvitationInfo	"invitations"
//	@Failure		401	{object}	monetasdk.ErrorResponse		"error, message"
//	@Failure		500	{object}	monetasdk.ErrorResponse		"error, message"
//	@Security		AdminKey
//	@Router			/v1/admin/invitations [get].
func (h *AdminInvitationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	invs, err := h.InvitationService.List(ctx)
	if err != nil {
		log.Error("failed to list invitations", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, monetasdk.ErrCodeServer, "failed to list invitations")
		return
	}

	out := make([]monetasdk.InvitationInfo, 0, len(invs))
	for _, inv := range invs {
		out = append(out, toInvitationInfo(inv))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
