package service

import (
	"context"

	"github.com/fsdevblog/groph-gamestore/internal/domain"
	"github.com/fsdevblog/groph-gamestore/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

type UserRepository interface {
	CreateUser(ctx context.Context, user repoargs.CreateUser) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

type GameRepository interface {
	FindByAlias(ctx context.Context, alias string) (*domain.Game, error)
	GetAll(ctx context.Context) ([]domain.Game, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, userID int64) (*domain.Order, error)
	FindOpenByUserID(ctx context.Context, userID int64) (*domain.Order, error)
	FindByID(ctx context.Context, orderID int64) (*domain.Order, error)
	FindLine(ctx context.Context, orderID, gameID int64) (*domain.OrderLine, error)
	CreateLine(ctx context.Context, args repoargs.OrderLineCreate) (*domain.OrderLine, error)
	UpdateLineQuantity(ctx context.Context, lineID int64, quantity int32) error
	DeleteLine(ctx context.Context, orderID, gameID int64) error
	BumpVersion(ctx context.Context, orderID int64, version int32) error
	UpdateStatus(ctx context.Context, args repoargs.OrderStatusUpdate) (*domain.Order, error)
}

type CommentRepository interface {
	Create(ctx context.Context, args repoargs.CommentCreate) (*domain.Comment, error)
	FindByID(ctx context.Context, commentID int64) (*domain.Comment, error)
	GetByGameID(ctx context.Context, gameID int64) ([]domain.Comment, error)
	MarkDeleted(ctx context.Context, commentID int64, placeholder string) (*domain.Comment, error)
}

type BanRepository interface {
	Upsert(ctx context.Context, args repoargs.BanUpsert) (*domain.Ban, error)
	FindByUsername(ctx context.Context, username string) (*domain.Ban, error)
}

// CardGateway внешний платежный шлюз. Реализация живет в transport/gateway,
// здесь интерфейс ради моков и чистоты сервисного слоя.
type CardGateway interface {
	Charge(ctx context.Context, args domain.CardChargeArgs) (*domain.CardChargeResult, error)
}
