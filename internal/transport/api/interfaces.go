package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-gamestore/internal/domain"
	"github.com/fsdevblog/groph-gamestore/internal/service"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
}

type GameServicer interface {
	GetAll(ctx context.Context) ([]domain.Game, error)
	GetByAlias(ctx context.Context, alias string) (*domain.Game, error)
}

type OrderServicer interface {
	GetOrCreateOpenOrder(ctx context.Context, userID int64) (*domain.Order, error)
	AddLine(ctx context.Context, userID int64, gameAlias string, quantity int32) (*domain.Order, error)
	RemoveLine(ctx context.Context, userID int64, gameAlias string) (*domain.Order, error)
	Cancel(ctx context.Context, userID int64) (*domain.Order, error)
}

type PaymentServicer interface {
	Methods() []service.PaymentMethodInfo
	OpenOrder(ctx context.Context, userID int64) (*domain.Order, error)
	Pay(
		ctx context.Context,
		userID int64,
		method domain.PaymentMethodType,
		card *domain.CardDetails,
	) (*service.PaymentOutcome, error)
}

type CommentServicer interface {
	Post(ctx context.Context, args service.PostCommentArgs) (*domain.Comment, error)
	Delete(ctx context.Context, commentID int64) (*domain.Comment, error)
	GetThreaded(ctx context.Context, gameAlias string) ([]*service.CommentNode, error)
	Ban(ctx context.Context, username, durationToken string) (*domain.Ban, error)
	BanDurationOptions() []string
}
