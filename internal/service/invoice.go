package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-gamestore/internal/domain"
)

// invoiceDueIn срок оплаты банковского счета с момента выставления.
const invoiceDueIn = 14 * 24 * time.Hour

// invoiceContentType SPA скачивает счет как pdf. Исторически тело документа -
// простой текст, клиентов это устраивает.
const invoiceContentType = "application/pdf"

// renderBankInvoice формирует человекочитаемый счет на оплату банковским переводом:
// номер заказа, сумма, позиции и срок оплаты.
func renderBankInvoice(order *domain.Order, amount decimal.Decimal, issuedAt time.Time) *PaymentDocument {
	dueDate := issuedAt.Add(invoiceDueIn)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "INVOICE #%d\n", order.ID)
	fmt.Fprintf(&buf, "Issued:   %s\n", issuedAt.Format("2006-01-02"))
	fmt.Fprintf(&buf, "Due date: %s\n\n", dueDate.Format("2006-01-02"))

	for _, line := range order.Lines {
		fmt.Fprintf(&buf, "%s x%d - %s\n", line.GameName, line.Quantity,
			line.Price.Mul(decimal.NewFromInt32(line.Quantity)).StringFixed(2))
	}

	fmt.Fprintf(&buf, "\nTOTAL: %s\n", amount.StringFixed(2))

	return &PaymentDocument{
		Bytes:       buf.Bytes(),
		ContentType: invoiceContentType,
		Filename:    fmt.Sprintf("invoice-%d.pdf", order.ID),
	}
}
