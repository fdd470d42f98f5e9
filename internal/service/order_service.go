package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/groph-gamestore/internal/repository/repoargs"

	"github.com/fsdevblog/groph-gamestore/pkg/uow"

	"github.com/fsdevblog/groph-gamestore/internal/domain"
)

type OrderService struct {
	uow       uow.UOW
	orderRepo OrderRepository
	gameRepo  GameRepository
}

func NewOrderService(u uow.UOW) (*OrderService, error) {
	orderRepo, orderRepoErr := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if orderRepoErr != nil {
		return nil, orderRepoErr
	}
	gameRepo, gameRepoErr := uow.GetRepositoryAs[GameRepository](u, uow.RepositoryName(repoargs.GameRepoName))
	if gameRepoErr != nil {
		return nil, gameRepoErr
	}
	return &OrderService{
		uow:       u,
		orderRepo: orderRepo,
		gameRepo:  gameRepo,
	}, nil
}

// GetOrCreateOpenOrder возвращает открытый заказ (корзину) юзера, создавая его при
// отсутствии. Инвариант "не более одной корзины на юзера" держит частичный уникальный
// индекс в БД: если два запроса создают корзину наперегонки, проигравший получит
// ошибку дубликата и перечитает заказ победителя.
func (o *OrderService) GetOrCreateOpenOrder(ctx context.Context, userID int64) (*domain.Order, error) {
	return o.getOrCreateOpen(ctx, o.orderRepo, userID)
}

func (o *OrderService) getOrCreateOpen(
	ctx context.Context,
	repo OrderRepository,
	userID int64,
) (*domain.Order, error) {
	order, findErr := repo.FindOpenByUserID(ctx, userID)
	if findErr == nil {
		return order, nil
	}
	if !errors.Is(findErr, domain.ErrRecordNotFound) {
		return nil, findErr
	}

	created, createErr := repo.CreateOrder(ctx, userID)
	if createErr != nil {
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			// проиграли гонку - корзину успел создать параллельный запрос.
			return repo.FindOpenByUserID(ctx, userID)
		}
		return nil, fmt.Errorf("creating open order: %w", createErr)
	}
	return created, nil
}

// AddLine добавляет игру в корзину юзера. Повторное добавление той же игры суммирует
// количество в существующей позиции, а не плодит новую. Цена фиксируется на момент
// добавления и при оплате не перечитывается - изменение цены в каталоге не трогает
// уже собранные корзины.
func (o *OrderService) AddLine(
	ctx context.Context,
	userID int64,
	gameAlias string,
	quantity int32,
) (*domain.Order, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	var order *domain.Order

	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		orderRepo, orderRepoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if orderRepoErr != nil {
			return orderRepoErr //nolint:wrapcheck
		}
		gameRepo, gameRepoErr := uow.GetAs[GameRepository](tx, uow.RepositoryName(repoargs.GameRepoName))
		if gameRepoErr != nil {
			return gameRepoErr //nolint:wrapcheck
		}

		openOrder, openOrderErr := o.getOrCreateOpen(c, orderRepo, userID)
		if openOrderErr != nil {
			return openOrderErr
		}
		if openOrder.Status != domain.OrderStatusOpen {
			return domain.ErrOrderNotOpen
		}

		// Мутации позиций двигают версию заказа той же схемой CAS, что и смена
		// статуса: параллельная оплата, прочитавшая заказ до этой транзакции,
		// упадет на конфликте версий вместо фиксации устаревшей суммы.
		if bumpErr := orderRepo.BumpVersion(c, openOrder.ID, openOrder.Version); bumpErr != nil {
			return bumpErr //nolint:wrapcheck
		}

		game, gameErr := gameRepo.FindByAlias(c, gameAlias)
		if gameErr != nil {
			return gameErr //nolint:wrapcheck
		}

		line, lineErr := orderRepo.FindLine(c, openOrder.ID, game.ID)
		switch {
		case lineErr == nil:
			if updErr := orderRepo.UpdateLineQuantity(c, line.ID, line.Quantity+quantity); updErr != nil {
				return updErr //nolint:wrapcheck
			}
		case errors.Is(lineErr, domain.ErrRecordNotFound):
			if _, createErr := orderRepo.CreateLine(c, repoargs.OrderLineCreate{
				OrderID:  openOrder.ID,
				GameID:   game.ID,
				Price:    game.Price,
				Quantity: quantity,
			}); createErr != nil {
				return createErr //nolint:wrapcheck
			}
		default:
			return lineErr //nolint:wrapcheck
		}

		// перечитываем заказ с позициями для ответа.
		var reloadErr error
		order, reloadErr = orderRepo.FindByID(c, openOrder.ID)
		return reloadErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("adding line to cart: %w", txErr)
	}
	return order, nil
}

// RemoveLine убирает позицию игры из корзины юзера целиком, независимо от количества.
func (o *OrderService) RemoveLine(ctx context.Context, userID int64, gameAlias string) (*domain.Order, error) {
	var order *domain.Order

	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		orderRepo, orderRepoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if orderRepoErr != nil {
			return orderRepoErr //nolint:wrapcheck
		}
		gameRepo, gameRepoErr := uow.GetAs[GameRepository](tx, uow.RepositoryName(repoargs.GameRepoName))
		if gameRepoErr != nil {
			return gameRepoErr //nolint:wrapcheck
		}

		openOrder, openOrderErr := orderRepo.FindOpenByUserID(c, userID)
		if openOrderErr != nil {
			return openOrderErr //nolint:wrapcheck
		}

		if bumpErr := orderRepo.BumpVersion(c, openOrder.ID, openOrder.Version); bumpErr != nil {
			return bumpErr //nolint:wrapcheck
		}

		game, gameErr := gameRepo.FindByAlias(c, gameAlias)
		if gameErr != nil {
			return gameErr //nolint:wrapcheck
		}

		if delErr := orderRepo.DeleteLine(c, openOrder.ID, game.ID); delErr != nil {
			if errors.Is(delErr, domain.ErrRecordNotFound) {
				return domain.ErrOrderLineNotFound
			}
			return delErr //nolint:wrapcheck
		}

		var reloadErr error
		order, reloadErr = orderRepo.FindByID(c, openOrder.ID)
		return reloadErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("removing line from cart: %w", txErr)
	}
	return order, nil
}

// Finalize переводит заказ OPEN -> PAID. Пустой или уже закрытый заказ финализировать
// нельзя. Смена статуса защищена версией строки: при гонке двух запросов по одному
// заказу проигравший получит domain.ErrConcurrentModification.
func (o *OrderService) Finalize(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	return o.finalize(ctx, o.orderRepo, order)
}

func (o *OrderService) finalize(
	ctx context.Context,
	repo OrderRepository,
	order *domain.Order,
) (*domain.Order, error) {
	if order.Status != domain.OrderStatusOpen {
		return nil, domain.ErrOrderNotOpen
	}
	if len(order.Lines) == 0 {
		return nil, domain.ErrOrderEmpty
	}
	paid, err := repo.UpdateStatus(ctx, repoargs.OrderStatusUpdate{
		OrderID: order.ID,
		Status:  domain.OrderStatusPaid,
		Version: order.Version,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return paid, nil
}

// Cancel переводит открытый заказ юзера в CANCELLED. Закрытые заказы неизменяемы.
func (o *OrderService) Cancel(ctx context.Context, userID int64) (*domain.Order, error) {
	order, findErr := o.orderRepo.FindOpenByUserID(ctx, userID)
	if findErr != nil {
		return nil, findErr //nolint:wrapcheck
	}
	cancelled, err := o.orderRepo.UpdateStatus(ctx, repoargs.OrderStatusUpdate{
		OrderID: order.ID,
		Status:  domain.OrderStatusCancelled,
		Version: order.Version,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return cancelled, nil
}
