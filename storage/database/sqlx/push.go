package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/absedu/campus/core/push"
)

type pushTokenRepository struct {
	db *sqlx.DB
}

var _ push.Repository = (*pushTokenRepository)(nil) // interface compliance check

// NewPushTokenRepository wraps db; driverName selects the bind variable style.
func NewPushTokenRepository(db *sql.DB, driverName string) *pushTokenRepository {
	return &pushTokenRepository{db: sqlx.NewDb(db, driverName)}
}

const pushTokenColumns = "id, token, number, created_at, updated_at"

func (repo *pushTokenRepository) SaveToken(ctx context.Context, tkn push.Token) (push.Token, error) {
	q := repo.db.Rebind(`
		INSERT INTO push_token (` + pushTokenColumns + `)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (token) DO UPDATE SET number = excluded.number, updated_at = excluded.updated_at`)
	_, err := repo.db.ExecContext(ctx, q, tkn.ID, tkn.Token, tkn.Number, tkn.CreatedAt.UTC(), tkn.UpdatedAt.UTC())
	if err != nil {
		return push.Token{}, errors.Wrap(err, "saving push token")
	}
	return repo.GetToken(ctx, tkn.Token)
}

func (repo *pushTokenRepository) GetToken(ctx context.Context, token string) (push.Token, error) {
	var tkn push.Token
	q := repo.db.Rebind(`SELECT ` + pushTokenColumns + ` FROM push_token WHERE token = ?`)
	if err := repo.db.GetContext(ctx, &tkn, q, token); err != nil {
		if err == sql.ErrNoRows {
			return push.Token{}, push.ErrNotFound
		}
		return push.Token{}, errors.Wrap(err, "getting push token")
	}
	tkn.CreatedAt = tkn.CreatedAt.UTC()
	tkn.UpdatedAt = tkn.UpdatedAt.UTC()
	return tkn, nil
}

func (repo *pushTokenRepository) TokensByNumber(ctx context.Context, number string) ([]push.Token, error) {
	tokens := make([]push.Token, 0)
	q := repo.db.Rebind(`SELECT ` + pushTokenColumns + ` FROM push_token WHERE number = ? ORDER BY created_at, id`)
	if err := repo.db.SelectContext(ctx, &tokens, q, number); err != nil {
		return nil, errors.Wrap(err, "listing push tokens")
	}
	for i := range tokens {
		tokens[i].CreatedAt = tokens[i].CreatedAt.UTC()
		tokens[i].UpdatedAt = tokens[i].UpdatedAt.UTC()
	}
	return tokens, nil
}

func (repo *pushTokenRepository) DeleteToken(ctx context.Context, token string) error {
	res, err := repo.db.ExecContext(ctx, repo.db.Rebind(`DELETE FROM push_token WHERE token = ?`), token)
	if err != nil {
		return errors.Wrap(err, "deleting push token")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return push.ErrNotFound
	}
	return nil
}
