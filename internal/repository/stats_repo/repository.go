package stats_repo

import (
	"context"
	"errors"

	"spinner_backend/internal/model"
	"spinner_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	table                = "game_stats"
	colID                = "id"
	colGameAddress       = "game_address"
	colGamePrivateKey    = "game_private_key"
	colGamePublicKey     = "game_public_key"
	colTotalSpins        = "total_spins"
	colTotalWinningsPaid = "total_winnings_paid"
	colLastUpdated       = "last_updated"

	// ID единственной строки казны
	gameStatsID = 1
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewStatsRepository(dbc *pgxpool.Pool) repository.StatsRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// GetGameAccount - возвращает запись казны с ключами и счётчиками.
// Запись должна существовать до первого спина
func (r *repo) GetGameAccount(ctx context.Context) (*model.GameStats, error) {
	// Формируем запрос
	query := sq.Select(colID, colGameAddress, colGamePrivateKey, colGamePublicKey,
		colTotalSpins, colTotalWinningsPaid, colLastUpdated).
		From(table).
		Where(sq.Eq{colID: gameStatsID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var stats model.GameStats
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&stats.ID, &stats.Address, &stats.PrivateKey, &stats.PublicKey,
			&stats.TotalSpins, &stats.TotalWinningsPaid, &stats.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &stats, nil
}

// AddWinningsPaid - увеличивает накопленные выплаты казны одним
// относительным UPDATE, без чтения перед записью
func (r *repo) AddWinningsPaid(ctx context.Context, amount decimal.Decimal) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colTotalWinningsPaid, sq.Expr(colTotalWinningsPaid+" + ?", amount)).
		Set(colLastUpdated, sq.Expr("NOW()")).
		Where(sq.Eq{colID: gameStatsID}).
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

// AddSpins - увеличивает счётчик сыгранных спинов
func (r *repo) AddSpins(ctx context.Context, count int) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colTotalSpins, sq.Expr(colTotalSpins+" + ?", count)).
		Set(colLastUpdated, sq.Expr("NOW()")).
		Where(sq.Eq{colID: gameStatsID}).
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
