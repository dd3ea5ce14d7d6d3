package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Limit 消费限额模型，按 limit_date 归属到某个用户的某个月份
type Limit struct {
	ID         uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserID     int64           `json:"user_id" gorm:"index;not null"`
	Limit      decimal.Decimal `json:"limit" gorm:"column:limit_value;type:decimal(15,2);not null"` // 限额上限
	Amount     decimal.Decimal `json:"amount" gorm:"type:decimal(15,2);not null"`                   // 已消费金额
	LimitDate  time.Time       `json:"limit_date" gorm:"not null"`
	CategoryID uuid.UUID       `json:"category_id" gorm:"type:char(36);index;not null"`
	Category   RevenueCategory `json:"-" gorm:"foreignKey:CategoryID"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `json:"-" gorm:"index"`
}

func (Limit) TableName() string {
	return "limits"
}

// BeforeCreate 创建前生成 UUID 主键
func (m *Limit) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
