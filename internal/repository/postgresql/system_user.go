package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/datasynergy/asistencia-backend-go/internal/domain/auth"
	"github.com/datasynergy/asistencia-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type systemUserRepositoryImpl struct {
	db *database.DB
}

func NewSystemUserRepository(db *database.DB) auth.SystemUserRepository {
	return &systemUserRepositoryImpl{db: db}
}

// GetByUsername implements auth.SystemUserRepository.
func (r *systemUserRepositoryImpl) GetByUsername(ctx context.Context, username string) (auth.SystemUser, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, usuario, password_hash, nombre
		FROM usuarios_sistema
		WHERE usuario = $1
		LIMIT 1
	`

	var user auth.SystemUser
	err := q.QueryRow(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.DisplayName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.SystemUser{}, auth.ErrUserNotFound
		}
		return auth.SystemUser{}, fmt.Errorf("failed to get system user: %w", err)
	}
	return user, nil
}

// GetByID implements auth.SystemUserRepository.
func (r *systemUserRepositoryImpl) GetByID(ctx context.Context, id int64) (auth.SystemUser, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, usuario, password_hash, nombre
		FROM usuarios_sistema
		WHERE id = $1
	`

	var user auth.SystemUser
	err := q.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.DisplayName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.SystemUser{}, auth.ErrUserNotFound
		}
		return auth.SystemUser{}, fmt.Errorf("failed to get system user: %w", err)
	}
	return user, nil
}
