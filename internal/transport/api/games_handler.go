package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/groph-gamestore/internal/domain"
	"github.com/gin-gonic/gin"
)

type GamesHandler struct {
	gameSvs GameServicer
}

func NewGamesHandler(gameSvs GameServicer) *GamesHandler {
	return &GamesHandler{
		gameSvs: gameSvs,
	}
}

type GameResponse struct {
	Alias string  `json:"key"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func newGameResponse(game *domain.Game) GameResponse {
	return GameResponse{
		Alias: game.Alias,
		Name:  game.Name,
		Price: game.Price.InexactFloat64(),
	}
}

// Index GET RouteGroup + GamesRoute.
func (g *GamesHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	games, err := g.gameSvs.GetAll(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]GameResponse, len(games))
	for i, game := range games {
		response[i] = newGameResponse(&game)
	}
	c.JSON(http.StatusOK, response)
}

// Show GET RouteGroup + GameRoute.
func (g *GamesHandler) Show(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	game, err := g.gameSvs.GetByAlias(reqCtx, c.Param("alias"))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, newGameResponse(game))
}
