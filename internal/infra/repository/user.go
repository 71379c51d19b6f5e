package repository

import (
	"context"

	"tablebook/internal/infra"

	"github.com/google/uuid"
)

const updateLastLoginSQL = `
UPDATE staff_users
SET last_login = now(), updated_at = now()
WHERE id = $1
`

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, db infra.DBTX, id uuid.UUID) error {
	tag, err := db.Exec(ctx, updateLastLoginSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
