package domain

import (
	"github.com/shopspring/decimal"

	"time"
)

type User struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string
	Password  string
}

type Game struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Alias     string
	Name      string
	Price     decimal.Decimal
}

type Order struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    int64
	Status    OrderStatusType
	// Version счетчик оптимистичной блокировки. Инкрементируется при каждой смене статуса.
	Version int32
	Lines   []OrderLine
}

// Total возвращает сумму заказа по позициям. Цена позиции - снапшот на момент добавления в корзину.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.Lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt32(line.Quantity)))
	}
	return total
}

type OrderLine struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	OrderID   int64
	GameID    int64
	GameAlias string
	GameName  string
	// Price снапшот цены игры на момент добавления позиции. При оплате цена не перечитывается.
	Price    decimal.Decimal
	Quantity int32
}

type Comment struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	GameID    int64
	// ParentID ссылка на родительский комментарий, nil для корневых. Храним именно id,
	// а не указатель на объект, чтобы дерево не могло зациклиться.
	ParentID *int64
	Name     string
	Body     string
	Status   CommentStatusType
}

type Ban struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string
	// ExpiresAt момент окончания бана. nil означает перманентный бан.
	ExpiresAt *time.Time
}

// Active сообщает, действует ли бан на момент now. Истечение проверяется лениво,
// фоновой чистки записей нет.
func (b *Ban) Active(now time.Time) bool {
	if b.ExpiresAt == nil {
		return true
	}
	return now.Before(*b.ExpiresAt)
}
