package entities

import (
	"time"

	"github.com/google/uuid"
)

// Alert 到期提醒实体
type Alert struct {
	ID        uuid.UUID
	UserID    int64
	UserEmail string
	RevenueID uuid.UUID
	Message   string
	AlertDate time.Time
}

// AsMap 拍平为传输层映射
func (a *Alert) AsMap() map[string]any {
	return map[string]any{
		"id":         a.ID.String(),
		"user_id":    a.UserID,
		"user_email": a.UserEmail,
		"revenue_id": a.RevenueID.String(),
		"message":    a.Message,
		"alert_date": a.AlertDate.Format(dateLayout),
	}
}
