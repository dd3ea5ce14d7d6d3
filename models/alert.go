package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Alert 到期提醒模型，alert_date 决定批处理任务何时发送邮件
type Alert struct {
	ID        uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    int64          `json:"user_id" gorm:"index;not null"`
	UserEmail string         `json:"user_email" gorm:"size:255;not null"`
	RevenueID uuid.UUID      `json:"revenue_id" gorm:"type:char(36);index;not null"`
	Revenue   Revenue        `json:"-" gorm:"foreignKey:RevenueID"`
	Message   string         `json:"message" gorm:"size:255;not null"`
	AlertDate time.Time      `json:"alert_date" gorm:"index;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Alert) TableName() string {
	return "alerts"
}

// BeforeCreate 创建前生成 UUID 主键
func (m *Alert) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
