package repository

import (
	"gorm.io/gorm"

	"gammabudget/domain/entities"
	"gammabudget/models"
)

// CategoryRepository 类别仓储，收入类别与支出类别共用
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建类别仓储
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// GetIncomingCategories 列出全部收入类别，按名称排序
func (r *CategoryRepository) GetIncomingCategories() ([]*entities.Category, error) {
	var rows []models.IncomingCategory
	if err := r.db.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]*entities.Category, 0, len(rows))
	for i := range rows {
		category := parseIncomingCategory(&rows[i])
		result = append(result, &category)
	}
	return result, nil
}

// GetRevenueCategories 列出全部支出类别，按名称排序
func (r *CategoryRepository) GetRevenueCategories() ([]*entities.Category, error) {
	var rows []models.RevenueCategory
	if err := r.db.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]*entities.Category, 0, len(rows))
	for i := range rows {
		category := parseRevenueCategory(&rows[i])
		result = append(result, &category)
	}
	return result, nil
}
