package api

import (
	"time"

	"github.com/fsdevblog/groph-gamestore/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup        = "/api"
	RegisterRoute     = "/user/register"
	LoginRoute        = "/user/login"
	GamesRoute        = "/games"
	GameRoute         = "/games/:alias"
	GameCartRoute     = "/games/:alias/cart"
	GameCommentsRoute = "/games/:alias/comments"
	CartRoute         = "/user/cart"
	CheckoutRoute     = "/user/cart/checkout"
	PayRoute          = "/user/cart/pay"
	InvoiceRoute      = "/user/cart/invoice"
	CommentRoute      = "/comments/:id"
	BanDurationsRoute = "/comments/ban/durations"
	BanRoute          = "/comments/ban"
)

type RouterArgs struct {
	Logger         *logrus.Logger
	UserService    UserServicer
	GameService    GameServicer
	OrderService   OrderServicer
	PaymentService PaymentServicer
	CommentService CommentServicer
	JWTSecretKey   []byte
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService)
	gamesHandler := NewGamesHandler(args.GameService)
	cartHandler := NewCartHandler(args.OrderService)
	paymentHandler := NewPaymentHandler(args.PaymentService)
	commentsHandler := NewCommentsHandler(args.CommentService)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)

	api.GET(GamesRoute, gamesHandler.Index)
	api.GET(GameRoute, gamesHandler.Show)

	api.GET(GameCommentsRoute, commentsHandler.Index)
	api.POST(GameCommentsRoute, commentsHandler.Create)
	api.GET(BanDurationsRoute, commentsHandler.BanDurations)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.GET(CartRoute, cartHandler.Show)
	api.DELETE(CartRoute, cartHandler.Cancel)
	api.POST(GameCartRoute, cartHandler.AddGame)
	api.DELETE(GameCartRoute, cartHandler.RemoveGame)

	api.GET(CheckoutRoute, paymentHandler.Checkout)
	api.POST(PayRoute, paymentHandler.Pay)
	api.GET(InvoiceRoute, paymentHandler.Invoice)

	api.DELETE(CommentRoute, commentsHandler.Delete)
	api.POST(BanRoute, commentsHandler.Ban)
	return r, nil
}
