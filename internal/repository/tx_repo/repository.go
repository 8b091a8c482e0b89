package tx_repo

import (
	"context"

	"spinner_backend/internal/model"
	"spinner_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table         = "transactions"
	colID         = "id"
	colTelegramID = "telegram_id"
	colAction     = "action"
	colAmount     = "amount"
	colTimestamp  = "timestamp"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewTransactionRepository(dbc *pgxpool.Pool) repository.TransactionRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateRecord - добавляет запись в журнал. Журнал append-only,
// обновлений и удалений по этой таблице нет
func (r *repo) CreateRecord(ctx context.Context, record *model.TransactionRecord) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colTelegramID, colAction, colAmount).
		Values(record.TelegramID, record.Action, record.Amount).
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

// ListByUser - история операций пользователя от новых к старым
func (r *repo) ListByUser(ctx context.Context, telegramID int64) ([]model.TransactionRecord, error) {
	// Формируем запрос
	query := sq.Select(colID, colTelegramID, colAction, colAmount, colTimestamp).
		From(table).
		Where(sq.Eq{colTelegramID: telegramID}).
		OrderBy(colTimestamp + " DESC").
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

	var records []model.TransactionRecord
	for rows.Next() {
		var rec model.TransactionRecord
		err = rows.Scan(&rec.ID, &rec.TelegramID, &rec.Action, &rec.Amount, &rec.Timestamp)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
