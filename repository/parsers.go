// Package repository 提供基于 GORM 的数据访问实现，
// 对上实现 usecase 包声明的端口接口。
// 查询未命中统一以 nil 实体（或 false）返回，不作为 error 上抛。
package repository

import (
	"gammabudget/domain/entities"
	"gammabudget/models"
)

func parseIncomingCategory(m *models.IncomingCategory) entities.Category {
	return entities.Category{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Image:       m.Image,
	}
}

func parseRevenueCategory(m *models.RevenueCategory) entities.Category {
	return entities.Category{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Image:       m.Image,
	}
}

func parseIncoming(m *models.Incoming) *entities.Incoming {
	return &entities.Incoming{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Description: m.Description,
		Amount:      m.Amount,
		LaunchDate:  m.LaunchDate,
		Category:    parseIncomingCategory(&m.Category),
	}
}

func parseRevenue(m *models.Revenue) *entities.Revenue {
	return entities.NewRevenue(
		m.ID,
		m.UserID,
		m.Name,
		m.Description,
		m.Amount,
		m.ExpirationDate,
		m.Paid,
		m.PaymentDate,
		parseRevenueCategory(&m.Category),
	)
}

func parseLimit(m *models.Limit) *entities.Limit {
	return &entities.Limit{
		ID:        m.ID,
		UserID:    m.UserID,
		Limit:     m.Limit,
		Amount:    m.Amount,
		LimitDate: m.LimitDate,
		Category:  parseRevenueCategory(&m.Category),
	}
}

func parseAlert(m *models.Alert) *entities.Alert {
	return &entities.Alert{
		ID:        m.ID,
		UserID:    m.UserID,
		UserEmail: m.UserEmail,
		RevenueID: m.RevenueID,
		Message:   m.Message,
		AlertDate: m.AlertDate,
	}
}
