package service

import (
	"context"

	"github.com/fsdevblog/groph-gamestore/internal/domain"
	"github.com/fsdevblog/groph-gamestore/internal/repository/repoargs"
	"github.com/fsdevblog/groph-gamestore/pkg/uow"
)

// GameService каталог только на чтение. Жизненный цикл игр (жанры, платформы,
// издатели) вне ядра сервиса.
type GameService struct {
	gameRepo GameRepository
}

func NewGameService(u uow.UOW) (*GameService, error) {
	gameRepo, gameRepoErr := uow.GetRepositoryAs[GameRepository](u, uow.RepositoryName(repoargs.GameRepoName))
	if gameRepoErr != nil {
		return nil, gameRepoErr
	}
	return &GameService{gameRepo: gameRepo}, nil
}

func (g *GameService) GetAll(ctx context.Context) ([]domain.Game, error) {
	games, err := g.gameRepo.GetAll(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return games, nil
}

func (g *GameService) GetByAlias(ctx context.Context, alias string) (*domain.Game, error) {
	game, err := g.gameRepo.FindByAlias(ctx, alias)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return game, nil
}
