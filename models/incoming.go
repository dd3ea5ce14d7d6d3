package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Incoming 收入记录模型
type Incoming struct {
	ID          uuid.UUID        `json:"id" gorm:"type:char(36);primaryKey"`
	UserID      int64            `json:"user_id" gorm:"index;not null"` // 外部系统签发的用户ID
	Name        string           `json:"name" gorm:"size:100;not null"`
	Description string           `json:"description" gorm:"size:500"`
	Amount      decimal.Decimal  `json:"amount" gorm:"type:decimal(15,2);not null"`
	LaunchDate  time.Time        `json:"launch_date" gorm:"not null"` // 服务端在创建时写入
	CategoryID  uuid.UUID        `json:"category_id" gorm:"type:char(36);index;not null"`
	Category    IncomingCategory `json:"-" gorm:"foreignKey:CategoryID"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `json:"-" gorm:"index"`
}

func (Incoming) TableName() string {
	return "incomings"
}

// BeforeCreate 创建前生成 UUID 主键并写入入账时间
func (m *Incoming) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.LaunchDate.IsZero() {
		m.LaunchDate = time.Now()
	}
	return nil
}
