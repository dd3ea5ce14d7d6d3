package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gammabudget/domain/entities"
	"gammabudget/domain/usecase"
	"gammabudget/models"
)

// IncomingRepository 收入记录仓储
type IncomingRepository struct {
	db *gorm.DB
}

// NewIncomingRepository 创建收入记录仓储
func NewIncomingRepository(db *gorm.DB) *IncomingRepository {
	return &IncomingRepository{db: db}
}

// CreateIncoming 创建收入记录；引用的类别不存在时返回 nil 实体
func (r *IncomingRepository) CreateIncoming(userID int64, data usecase.IncomingCreateData) (*entities.Incoming, error) {
	var category models.IncomingCategory
	if err := r.db.First(&category, "id = ?", data.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	row := models.Incoming{
		UserID:      userID,
		Name:        data.Name,
		Description: data.Description,
		Amount:      data.Amount,
		CategoryID:  category.ID,
	}
	if err := r.db.Create(&row).Error; err != nil {
		return nil, err
	}
	row.Category = category
	return parseIncoming(&row), nil
}

// GetIncomings 列出用户的全部收入记录，按创建时间倒序
func (r *IncomingRepository) GetIncomings(userID int64) ([]*entities.Incoming, error) {
	var rows []models.Incoming
	err := r.db.Preload("Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entities.Incoming, 0, len(rows))
	for i := range rows {
		result = append(result, parseIncoming(&rows[i]))
	}
	return result, nil
}

// GetIncoming 查询单条收入记录，未找到返回 nil
func (r *IncomingRepository) GetIncoming(id uuid.UUID, userID int64) (*entities.Incoming, error) {
	var row models.Incoming
	err := r.db.Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return parseIncoming(&row), nil
}

// UpdateIncoming 部分更新收入记录，nil 指针字段保持原值；
// 记录或新类别不存在时返回 nil 实体
func (r *IncomingRepository) UpdateIncoming(userID int64, id uuid.UUID, data usecase.IncomingUpdateData) (*entities.Incoming, error) {
	var row models.Incoming
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
	if data.CategoryID != nil {
		var category models.IncomingCategory
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
	return r.GetIncoming(id, userID)
}

// DeleteIncoming 删除收入记录，返回是否确有记录被删除
func (r *IncomingRepository) DeleteIncoming(userID int64, id uuid.UUID) (bool, error) {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Incoming{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
