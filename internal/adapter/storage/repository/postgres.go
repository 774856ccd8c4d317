package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/lunchorder/internal/adapter/storage"
	"github.com/MikeRez0/lunchorder/internal/core/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

func (r *Repository) Get(ctx context.Context, key string) (string, error) {
	statement := r.db.QueryBuilder.
		Select("value").
		From("settings").
		Where(sq.Eq{"key": key})

	sql, args, err := statement.ToSql()
	if err != nil {
		return "", err
	}

	var value string
	err = r.db.QueryRow(ctx, sql, args...).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrDataNotFound
		}
		return "", classify(err)
	}

	return value, nil
}

func (r *Repository) Set(ctx context.Context, key string, value string) error {
	statement := r.db.QueryBuilder.Insert("settings").
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("now()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		return classify(err)
	}
	return nil
}

func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UndefinedTable {
		return domain.ErrStorageNotReady
	}
	return err
}
