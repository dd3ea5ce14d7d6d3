package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gammabudget/domain/entities"
	"gammabudget/domain/usecase"
	"gammabudget/models"
)

// LimitRepository 消费限额仓储
type LimitRepository struct {
	db *gorm.DB
}

// NewLimitRepository 创建消费限额仓储
func NewLimitRepository(db *gorm.DB) *LimitRepository {
	return &LimitRepository{db: db}
}

// CreateLimit 创建消费限额；引用的支出类别不存在时返回 nil 实体
func (r *LimitRepository) CreateLimit(userID int64, data usecase.LimitCreateData) (*entities.Limit, error) {
	var category models.RevenueCategory
	if err := r.db.First(&category, "id = ?", data.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	row := models.Limit{
		UserID:     userID,
		Limit:      data.Limit,
		Amount:     data.Amount,
		LimitDate:  data.LimitDate,
		CategoryID: category.ID,
	}
	if err := r.db.Create(&row).Error; err != nil {
		return nil, err
	}
	row.Category = category
	return parseLimit(&row), nil
}

// GetLimits 列出用户的全部消费限额，按限额月份倒序
func (r *LimitRepository) GetLimits(userID int64) ([]*entities.Limit, error) {
	var rows []models.Limit
	err := r.db.Preload("Category").
		Where("user_id = ?", userID).
		Order("limit_date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entities.Limit, 0, len(rows))
	for i := range rows {
		result = append(result, parseLimit(&rows[i]))
	}
	return result, nil
}

// UpdateLimit 调整限额上限或已消费金额，nil 指针字段保持原值
func (r *LimitRepository) UpdateLimit(userID int64, id uuid.UUID, data usecase.LimitUpdateData) (*entities.Limit, error) {
	var row models.Limit
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if data.Limit != nil {
		updates["limit_value"] = *data.Limit
	}
	if data.Amount != nil {
		updates["amount"] = *data.Amount
	}

	if len(updates) > 0 {
		if err := r.db.Model(&row).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	err = r.db.Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return parseLimit(&row), nil
}

// DeleteLimit 删除消费限额，返回是否确有记录被删除
func (r *LimitRepository) DeleteLimit(userID int64, id uuid.UUID) (bool, error) {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Limit{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
