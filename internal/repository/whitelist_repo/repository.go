package whitelist_repo

import (
	"context"

	"spinner_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table     = "whitelist"
	colUserID = "user_id"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewWhitelistRepository(dbc *pgxpool.Pool) repository.WhitelistRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Add - добавляет пользователя в вайтлист. Повторное добавление не ошибка
func (r *repo) Add(ctx context.Context, telegramID int64) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colUserID).
		Values(telegramID).
		Suffix("ON CONFLICT (" + colUserID + ") DO NOTHING").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// Remove - убирает пользователя из вайтлиста
func (r *repo) Remove(ctx context.Context, telegramID int64) error {
	// Формируем запрос
	query := sq.Delete(table).
		Where(sq.Eq{colUserID: telegramID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// Exists - проверка членства в вайтлисте
func (r *repo) Exists(ctx context.Context, telegramID int64) (bool, error) {
	// Формируем запрос
	query := sq.Select("1").
		From(table).
		Where(sq.Eq{colUserID: telegramID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	return rows.Next(), rows.Err()
}

// List - все участники вайтлиста
func (r *repo) List(ctx context.Context) ([]int64, error) {
	// Формируем запрос
	query := sq.Select(colUserID).
		From(table).
		OrderBy(colUserID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
