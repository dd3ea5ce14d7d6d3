package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gammabudget/domain/entities"
	"gammabudget/domain/usecase"
	"gammabudget/models"
)

// RevenueRepository 支出记录仓储
type RevenueRepository struct {
	db *gorm.DB
}

// NewRevenueRepository 创建支出记录仓储
func NewRevenueRepository(db *gorm.DB) *RevenueRepository {
	return &RevenueRepository{db: db}
}

// CreateRevenue 创建支出记录；引用的类别不存在时返回 nil 实体
func (r *RevenueRepository) CreateRevenue(userID int64, data usecase.RevenueCreateData) (*entities.Revenue, error) {
	var category models.RevenueCategory
	if err := r.db.First(&category, "id = ?", data.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	row := models.Revenue{
		UserID:         userID,
		Name:           data.Name,
		Description:    data.Description,
		Amount:         data.Amount,
		ExpirationDate: data.ExpirationDate,
		Paid:           data.Paid,
		PaymentDate:    data.PaymentDate,
		CategoryID:     category.ID,
	}
	if err := r.db.Create(&row).Error; err != nil {
		return nil, err
	}
	row.Category = category
	return parseRevenue(&row), nil
}

// GetRevenues 列出用户的全部支出记录，按到期日升序
func (r *RevenueRepository) GetRevenues(userID int64) ([]*entities.Revenue, error) {
	var rows []models.Revenue
	err := r.db.Preload("Category").
		Where("user_id = ?", userID).
		Order("expiration_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entities.Revenue, 0, len(rows))
	for i := range rows {
		result = append(result, parseRevenue(&rows[i]))
	}
	return result, nil
}

// GetRevenue 查询单条支出记录，未找到返回 nil
func (r *RevenueRepository) GetRevenue(id uuid.UUID, userID int64) (*entities.Revenue, error) {
	var row models.Revenue
	err := r.db.Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return parseRevenue(&row), nil
}

// UpdateRevenue 部分更新支出记录，nil 指针字段保持原值。
// 本次更新后仍为未支付的记录落库时强制清空支付日期。
func (r *RevenueRepository) UpdateRevenue(userID int64, id uuid.UUID, data usecase.RevenueUpdateData) (*entities.Revenue, error) {
	var row models.Revenue
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if data.Name != nil {
		updates["name"] = *data.Name
	}
	if data.Description != nil {
		updates["description"] = *data.Description
	}
	if data.Amount != nil {
		updates["amount"] = *data.Amount
	}
	if data.ExpirationDate != nil {
		updates["expiration_date"] = *data.ExpirationDate
	}
	paid := row.Paid
	if data.Paid != nil {
		paid = *data.Paid
		updates["paid"] = paid
	}
	if data.PaymentDate != nil {
		updates["payment_date"] = *data.PaymentDate
	}
	// 库中已是未支付的行也可能单独收到 payment_date，
	// 以更新后的支付状态为准决定是否丢弃日期
	if !paid && (data.Paid != nil || data.PaymentDate != nil) {
		updates["payment_date"] = nil
	}
	if data.CategoryID != nil {
		var category models.RevenueCategory
		if err := r.db.First(&category, "id = ?", *data.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, err
		}
		updates["category_id"] = category.ID
	}

	if len(updates) > 0 {
		if err := r.db.Model(&row).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.GetRevenue(id, userID)
}

// DeleteRevenue 删除支出记录，返回是否确有记录被删除
func (r *RevenueRepository) DeleteRevenue(userID int64, id uuid.UUID) (bool, error) {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Revenue{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
