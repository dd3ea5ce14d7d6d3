package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Limit 消费限额实体
type Limit struct {
	ID        uuid.UUID
	UserID    int64
	Limit     decimal.Decimal
	Amount    decimal.Decimal
	LimitDate time.Time
	Category  Category
}

// AsMap 拍平为传输层映射
func (l *Limit) AsMap() map[string]any {
	return map[string]any{
		"id":         l.ID.String(),
		"user_id":    l.UserID,
		"limit":      l.Limit.StringFixed(2),
		"amount":     l.Amount.StringFixed(2),
		"limit_date": l.LimitDate.Format(dateLayout),
		"category":   l.Category.AsMap(),
	}
}
