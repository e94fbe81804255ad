package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/monetahq/moneta/internal/domain"
	"github.com/monetahq/moneta/internal/store"
)

type invitationsRepo struct {
	q dbtx
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO invitation_codes (id, code, email, used, used_by, used_at, expires_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.Code, inv.Email, inv.Used,
		mapStringNull(inv.UsedBy), mapOptionalTime(inv.UsedAt),
		mapOptionalTime(inv.ExpiresAt), inv.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *invitationsRepo) GetInvitationByCode(ctx context.Context, code string) (domain.Invitation, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, code, email, used, used_by, used_at, expires_at, created_at
		FROM invitation_codes WHERE code = ?`, code)
	return scanInvitation(row)
}

func (r *invitationsRepo) ListInvitations(ctx context.Context) ([]domain.Invitation, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, code, email, used, used_by, used_at, expires_at, created_at
		FROM invitation_codes ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

// MarkInvitationUsed flips used 0 -> 1 with a guarded UPDATE. The "AND
// used = 0" predicate is what keeps two registrations racing on the same
// code from both succeeding: the loser updates zero rows.
func (r *invitationsRepo) MarkInvitationUsed(ctx context.Context, invitationID, usedByUserID string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE invitation_codes
		SET used = 1, used_by = ?, used_at = ?
		WHERE id = ? AND used = 0`,
		usedByUserID, time.Now().UTC(), invitationID,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrAlreadyExists
	}
	return nil
}

func scanInvitation(row rowScanner) (domain.Invitation, error) {
	var (
		inv       domain.Invitation
		usedBy    sql.NullString
		usedAt    sql.NullTime
		expiresAt sql.NullTime
	)
	err := row.Scan(&inv.ID, &inv.Code, &inv.Email, &inv.Used,
		&usedBy, &usedAt, &expiresAt, &inv.CreatedAt)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}

	inv.UsedBy = mapNullString(usedBy)
	inv.UsedAt = mapNullTimePtr(usedAt)
	inv.ExpiresAt = mapNullTimePtr(expiresAt)
	return inv, nil
}
