package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Incoming 收入记录实体
type Incoming struct {
	ID          uuid.UUID
	UserID      int64
	Name        string
	Description string
	Amount      decimal.Decimal
	LaunchDate  time.Time
	Category    Category
}

// AsMap 拍平为传输层映射，金额格式化为两位小数字符串
func (i *Incoming) AsMap() map[string]any {
	return map[string]any{
		"id":          i.ID.String(),
		"user_id":     i.UserID,
		"name":        i.Name,
		"description": i.Description,
		"amount":      i.Amount.StringFixed(2),
		"launch_date": i.LaunchDate.Format(time.RFC3339),
		"category":    i.Category.AsMap(),
	}
}
