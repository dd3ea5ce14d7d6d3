package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Revenue 支出记录实体。未支付的记录不允许携带支付日期，
// 该约束在构造和拍平两处同时生效。
type Revenue struct {
	ID             uuid.UUID
	UserID         int64
	Name           string
	Description    string
	Amount         decimal.Decimal
	ExpirationDate time.Time
	Paid           bool
	PaymentDate    *time.Time
	Category       Category
}

// NewRevenue 构造支出实体；paid 为 false 时强制清空 paymentDate
func NewRevenue(
	id uuid.UUID,
	userID int64,
	name string,
	description string,
	amount decimal.Decimal,
	expirationDate time.Time,
	paid bool,
	paymentDate *time.Time,
	category Category,
) *Revenue {
	if !paid {
		paymentDate = nil
	}
	return &Revenue{
		ID:             id,
		UserID:         userID,
		Name:           name,
		Description:    description,
		Amount:         amount,
		ExpirationDate: expirationDate,
		Paid:           paid,
		PaymentDate:    paymentDate,
		Category:       category,
	}
}

// AsMap 拍平为传输层映射
func (r *Revenue) AsMap() map[string]any {
	var paymentDate any
	if r.Paid && r.PaymentDate != nil {
		paymentDate = r.PaymentDate.Format(dateLayout)
	}
	return map[string]any{
		"id":              r.ID.String(),
		"user_id":         r.UserID,
		"name":            r.Name,
		"description":     r.Description,
		"amount":          r.Amount.StringFixed(2),
		"expiration_date": r.ExpirationDate.Format(dateLayout),
		"paid":            r.Paid,
		"payment_date":    paymentDate,
		"category":        r.Category.AsMap(),
	}
}
