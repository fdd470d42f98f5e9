package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-gamestore/internal/domain"
	"github.com/fsdevblog/groph-gamestore/internal/repository/repoargs"
	"github.com/fsdevblog/groph-gamestore/pkg/uow"
)

type BanRepository struct {
	db uow.DBTX
}

func NewBanRepository(db uow.DBTX) *BanRepository {
	return &BanRepository{db: db}
}

const banColumns = `id, created_at, updated_at, username, expires_at`

// Upsert создает бан или перезаписывает существующий для того же юзера:
// на одного юзера хранится не более одной записи.
func (b *BanRepository) Upsert(ctx context.Context, args repoargs.BanUpsert) (*domain.Ban, error) {
	row := b.db.QueryRow(ctx, `
		INSERT INTO bans (username, expires_at)
		VALUES ($1, $2)
		ON CONFLICT (username) DO UPDATE SET expires_at = EXCLUDED.expires_at, updated_at = now()
		RETURNING `+banColumns,
		args.Username, args.ExpiresAt,
	)
	ban, err := scanBan(row)
	if err != nil {
		return nil, convertErr(err, "upserting ban for user `%s`", args.Username)
	}
	return ban, nil
}

func (b *BanRepository) FindByUsername(ctx context.Context, username string) (*domain.Ban, error) {
	row := b.db.QueryRow(ctx,
		`SELECT `+banColumns+` FROM bans WHERE username = $1`, username,
	)
	ban, err := scanBan(row)
	if err != nil {
		return nil, convertErr(err, "finding ban for user `%s`", username)
	}
	return ban, nil
}

func scanBan(row pgx.Row) (*domain.Ban, error) {
	var ban domain.Ban
	err := row.Scan(&ban.ID, &ban.CreatedAt, &ban.UpdatedAt, &ban.Username, &ban.ExpiresAt)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &ban, nil
}
