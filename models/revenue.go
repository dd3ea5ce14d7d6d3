package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Revenue 支出记录模型
type Revenue struct {
	ID             uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserID         int64           `json:"user_id" gorm:"index;not null"`
	Name           string          `json:"name" gorm:"size:100;not null"`
	Description    string          `json:"description" gorm:"size:500"`
	Amount         decimal.Decimal `json:"amount" gorm:"type:decimal(15,2);not null"`
	ExpirationDate time.Time       `json:"expiration_date" gorm:"not null"` // 到期日
	Paid           bool            `json:"paid" gorm:"not null;default:false"`
	PaymentDate    *time.Time      `json:"payment_date"` // 未支付时必须为空
	CategoryID     uuid.UUID       `json:"category_id" gorm:"type:char(36);index;not null"`
	Category       RevenueCategory `json:"-" gorm:"foreignKey:CategoryID"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `json:"-" gorm:"index"`
}

func (Revenue) TableName() string {
	return "revenues"
}

// BeforeCreate 创建前生成 UUID 主键；未支付的记录清空支付日期
func (m *Revenue) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if !m.Paid {
		m.PaymentDate = nil
	}
	return nil
}

// BeforeSave 未支付的记录在任何写入路径上都不允许保留支付日期
func (m *Revenue) BeforeSave(tx *gorm.DB) error {
	if !m.Paid {
		m.PaymentDate = nil
	}
	return nil
}
