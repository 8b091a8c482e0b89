package user_repo

import (
	"context"
	"errors"

	"spinner_backend/internal/model"
	"spinner_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table         = "users"
	colTelegramID = "telegram_id"
	colAddress    = "radix_address"
	colPrivateKey = "private_key"
	colPublicKey  = "public_key"
	colCreatedAt  = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserRepository(dbc *pgxpool.Pool) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateUser - создает аккаунт игрока в БД.
// Ограничения уникальности telegram_id и адреса держит сама БД
func (r *repo) CreateUser(ctx context.Context, user *model.User) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colTelegramID, colAddress, colPrivateKey, colPublicKey).
		Values(user.TelegramID, user.Address, user.PrivateKey, user.PublicKey).
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

// GetUser - возвращает аккаунт игрока (адрес и ключи) по telegram ID
func (r *repo) GetUser(ctx context.Context, telegramID int64) (*model.User, error) {
	// Формируем запрос
	query := sq.Select(colTelegramID, colAddress, colPrivateKey, colPublicKey, colCreatedAt).
		From(table).
		Where(sq.Eq{colTelegramID: telegramID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user model.User
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&user.TelegramID, &user.Address, &user.PrivateKey, &user.PublicKey, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}
