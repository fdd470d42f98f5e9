package pgrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-gamestore/internal/domain"
	"github.com/fsdevblog/groph-gamestore/internal/repository/repoargs"
	"github.com/fsdevblog/groph-gamestore/pkg/uow"
)

type OrderRepository struct {
	db uow.DBTX
}

func NewOrderRepository(db uow.DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderColumns = `id, created_at, updated_at, user_id, status, version`

// CreateOrder создает новый открытый заказ (корзину) юзера. Частичный уникальный индекс
// по (user_id) WHERE status = 'OPEN' гарантирует не более одной корзины на юзера -
// при гонке вторая вставка вернет domain.ErrDuplicateKey.
func (o *OrderRepository) CreateOrder(ctx context.Context, userID int64) (*domain.Order, error) {
	row := o.db.QueryRow(ctx,
		`INSERT INTO orders (user_id, status) VALUES ($1, $2) RETURNING `+orderColumns,
		userID, domain.OrderStatusOpen,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "creating order for user `%d`", userID)
	}
	return order, nil
}

// FindOpenByUserID возвращает открытый заказ юзера вместе с позициями.
func (o *OrderRepository) FindOpenByUserID(ctx context.Context, userID int64) (*domain.Order, error) {
	row := o.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 AND status = $2`,
		userID, domain.OrderStatusOpen,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "finding open order for user `%d`", userID)
	}
	if linesErr := o.loadLines(ctx, order); linesErr != nil {
		return nil, linesErr
	}
	return order, nil
}

func (o *OrderRepository) FindByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	row := o.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, orderID,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "finding order by id `%d`", orderID)
	}
	if linesErr := o.loadLines(ctx, order); linesErr != nil {
		return nil, linesErr
	}
	return order, nil
}

func (o *OrderRepository) FindLine(ctx context.Context, orderID, gameID int64) (*domain.OrderLine, error) {
	row := o.db.QueryRow(ctx, `
		SELECT l.id, l.created_at, l.updated_at, l.order_id, l.game_id, g.alias, g.name, l.price, l.quantity
		FROM order_lines l
		JOIN games g ON g.id = l.game_id
		WHERE l.order_id = $1 AND l.game_id = $2`,
		orderID, gameID,
	)
	line, err := scanOrderLine(row)
	if err != nil {
		return nil, convertErr(err, "finding line of order `%d` for game `%d`", orderID, gameID)
	}
	return line, nil
}

func (o *OrderRepository) CreateLine(ctx context.Context, args repoargs.OrderLineCreate) (*domain.OrderLine, error) {
	var line domain.OrderLine
	err := o.db.QueryRow(ctx, `
		INSERT INTO order_lines (order_id, game_id, price, quantity)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at, order_id, game_id, price, quantity`,
		args.OrderID, args.GameID, args.Price, args.Quantity,
	).Scan(
		&line.ID, &line.CreatedAt, &line.UpdatedAt, &line.OrderID, &line.GameID, &line.Price, &line.Quantity,
	)
	if err != nil {
		return nil, convertErr(err, "creating line of order `%d` for game `%d`", args.OrderID, args.GameID)
	}
	return &line, nil
}

func (o *OrderRepository) UpdateLineQuantity(ctx context.Context, lineID int64, quantity int32) error {
	tag, err := o.db.Exec(ctx,
		`UPDATE order_lines SET quantity = $1, updated_at = now() WHERE id = $2`,
		quantity, lineID,
	)
	if err != nil {
		return convertErr(err, "updating quantity of line `%d`", lineID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "updating quantity of line `%d`", lineID)
	}
	return nil
}

func (o *OrderRepository) DeleteLine(ctx context.Context, orderID, gameID int64) error {
	tag, err := o.db.Exec(ctx,
		`DELETE FROM order_lines WHERE order_id = $1 AND game_id = $2`,
		orderID, gameID,
	)
	if err != nil {
		return convertErr(err, "deleting line of order `%d` for game `%d`", orderID, gameID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting line of order `%d` for game `%d`", orderID, gameID)
	}
	return nil
}

// BumpVersion инкрементирует версию заказа при совпадении переданной версии. Вызывается
// при каждой мутации позиций, чтобы смена статуса, стартовавшая с прежней версии, не
// прошла мимо изменений корзины. Заодно блокирует строку заказа до конца транзакции.
func (o *OrderRepository) BumpVersion(ctx context.Context, orderID int64, version int32) error {
	tag, err := o.db.Exec(ctx, `
		UPDATE orders SET version = version + 1, updated_at = now()
		WHERE id = $1 AND version = $2 AND status = $3`,
		orderID, version, domain.OrderStatusOpen,
	)
	if err != nil {
		return convertErr(err, "bumping version of order `%d`", orderID)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConcurrentModification
	}
	return nil
}

// UpdateStatus меняет статус заказа по схеме оптимистичной блокировки: строка обновляется
// только при совпадении версии. Если версия ушла вперед (параллельный запрос успел
// изменить заказ), вернется domain.ErrConcurrentModification.
func (o *OrderRepository) UpdateStatus(ctx context.Context, args repoargs.OrderStatusUpdate) (*domain.Order, error) {
	row := o.db.QueryRow(ctx, `
		UPDATE orders SET status = $1, version = version + 1, updated_at = now()
		WHERE id = $2 AND version = $3
		RETURNING `+orderColumns,
		args.Status, args.OrderID, args.Version,
	)
	order, err := scanOrder(row)
	if err != nil {
		// Сервис работает с уже загруженным заказом, значит строка существует и
		// пустой результат означает конфликт версий, а не отсутствие записи.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrConcurrentModification
		}
		return nil, convertErr(err, "updating status of order `%d`", args.OrderID)
	}
	if linesErr := o.loadLines(ctx, order); linesErr != nil {
		return nil, linesErr
	}
	return order, nil
}

func (o *OrderRepository) loadLines(ctx context.Context, order *domain.Order) error {
	rows, err := o.db.Query(ctx, `
		SELECT l.id, l.created_at, l.updated_at, l.order_id, l.game_id, g.alias, g.name, l.price, l.quantity
		FROM order_lines l
		JOIN games g ON g.id = l.game_id
		WHERE l.order_id = $1
		ORDER BY l.id`,
		order.ID,
	)
	if err != nil {
		return convertErr(err, "loading lines of order `%d`", order.ID)
	}
	defer rows.Close()

	var lines []domain.OrderLine
	for rows.Next() {
		line, scanErr := scanOrderLine(rows)
		if scanErr != nil {
			return convertErr(scanErr, "loading lines of order `%d`", order.ID)
		}
		lines = append(lines, *line)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return convertErr(rowsErr, "loading lines of order `%d`", order.ID)
	}
	order.Lines = lines
	return nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(
		&order.ID, &order.CreatedAt, &order.UpdatedAt, &order.UserID, &order.Status, &order.Version,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &order, nil
}

func scanOrderLine(row pgx.Row) (*domain.OrderLine, error) {
	var line domain.OrderLine
	err := row.Scan(
		&line.ID, &line.CreatedAt, &line.UpdatedAt, &line.OrderID, &line.GameID,
		&line.GameAlias, &line.GameName, &line.Price, &line.Quantity,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &line, nil
}
