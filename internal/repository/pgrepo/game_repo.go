package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-gamestore/internal/domain"
	"github.com/fsdevblog/groph-gamestore/pkg/uow"
)

// GameRepository каталог игр. Ядро сервиса пользуется им только на чтение,
// наполнение каталога - забота миграций/админки.
type GameRepository struct {
	db uow.DBTX
}

func NewGameRepository(db uow.DBTX) *GameRepository {
	return &GameRepository{db: db}
}

const gameColumns = `id, created_at, updated_at, alias, name, price`

func (g *GameRepository) FindByAlias(ctx context.Context, alias string) (*domain.Game, error) {
	row := g.db.QueryRow(ctx,
		`SELECT `+gameColumns+` FROM games WHERE alias = $1`, alias,
	)
	game, err := scanGame(row)
	if err != nil {
		return nil, convertErr(err, "finding game by alias `%s`", alias)
	}
	return game, nil
}

func (g *GameRepository) GetAll(ctx context.Context) ([]domain.Game, error) {
	rows, err := g.db.Query(ctx,
		`SELECT `+gameColumns+` FROM games ORDER BY name`,
	)
	if err != nil {
		return nil, convertErr(err, "getting games")
	}
	defer rows.Close()

	var games []domain.Game
	for rows.Next() {
		game, scanErr := scanGame(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "getting games")
		}
		games = append(games, *game)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting games")
	}
	return games, nil
}

func scanGame(row pgx.Row) (*domain.Game, error) {
	var game domain.Game
	err := row.Scan(&game.ID, &game.CreatedAt, &game.UpdatedAt, &game.Alias, &game.Name, &game.Price)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &game, nil
}
