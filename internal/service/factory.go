package service

import (
	"fmt"

	"github.com/fsdevblog/groph-gamestore/internal/service/psswd"
	"github.com/fsdevblog/groph-gamestore/pkg/uow"
)

type AppServices struct {
	UserService    *UserService
	GameService    *GameService
	OrderService   *OrderService
	PaymentService *PaymentService
	CommentService *CommentService
}

func Factory(unitOfWork uow.UOW, jwtSecret []byte, gateway CardGateway) (*AppServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork, jwtSecret, psswd.PasswordHash(""))
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	gameService, gameServiceErr := NewGameService(unitOfWork)
	if gameServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", gameServiceErr.Error())
	}

	orderService, orderServiceErr := NewOrderService(unitOfWork)
	if orderServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", orderServiceErr.Error())
	}

	paymentService, paymentServiceErr := NewPaymentService(unitOfWork, orderService, gateway)
	if paymentServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", paymentServiceErr.Error())
	}

	commentService, commentServiceErr := NewCommentService(unitOfWork)
	if commentServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", commentServiceErr.Error())
	}

	return &AppServices{
		UserService:    userService,
		GameService:    gameService,
		OrderService:   orderService,
		PaymentService: paymentService,
		CommentService: commentService,
	}, nil
}
