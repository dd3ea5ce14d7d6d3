package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IncomingCategory 收入类别（系统内置，后台维护）
type IncomingCategory struct {
	ID          uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Name        string         `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Description string         `json:"description" gorm:"size:500"`
	Image       string         `json:"image" gorm:"size:255"` // 图标相对路径，如 /media/icons/salary.png
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (IncomingCategory) TableName() string {
	return "incoming_categories"
}

// BeforeCreate 创建前生成 UUID 主键
func (c *IncomingCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// RevenueCategory 支出类别（系统内置，后台维护）
type RevenueCategory struct {
	ID          uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Name        string         `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Description string         `json:"description" gorm:"size:500"`
	Image       string         `json:"image" gorm:"size:255"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (RevenueCategory) TableName() string {
	return "revenue_categories"
}

// BeforeCreate 创建前生成 UUID 主键
func (c *RevenueCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
