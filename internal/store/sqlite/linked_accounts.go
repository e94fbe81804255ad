package sqlite

import (
	"context"

	"github.com/monetahq/moneta/internal/domain"
)

type linkedAccountsRepo struct {
	q dbtx
}

func (r *linkedAccountsRepo) CreateLinkedAccount(ctx context.Context, la domain.LinkedAccount) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO linked_accounts (id, user_id, access_token, item_id, institution_name, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		la.ID, la.UserID, la.AccessToken, la.ItemID, la.InstitutionName, la.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *linkedAccountsRepo) ListLinkedAccountsByUser(ctx context.Context, userID string) ([]domain.LinkedAccount, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, user_id, access_token, item_id, institution_name, created_at
		FROM linked_accounts WHERE user_id = ? ORDER BY created_at ASC, id ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.LinkedAccount
	for rows.Next() {
		var la domain.LinkedAccount
		if err := rows.Scan(&la.ID, &la.UserID, &la.AccessToken,
			&la.ItemID, &la.InstitutionName, &la.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, la)
	}
	return out, rows.Err()
}
