package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gammabudget/domain/entities"
	"gammabudget/domain/usecase"
	"gammabudget/models"
)

// AlertRepository 到期提醒仓储，同时服务在线接口与批处理任务
type AlertRepository struct {
	db *gorm.DB
}

// NewAlertRepository 创建到期提醒仓储
func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

// CreateAlert 创建到期提醒；引用的支出记录不属于该用户或不存在时返回 nil 实体
func (r *AlertRepository) CreateAlert(userID int64, data usecase.AlertCreateData) (*entities.Alert, error) {
	var revenue models.Revenue
	err := r.db.Where("id = ? AND user_id = ?", data.RevenueID, userID).First(&revenue).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	row := models.Alert{
		UserID:    userID,
		UserEmail: data.UserEmail,
		RevenueID: revenue.ID,
		Message:   data.Message,
		AlertDate: data.AlertDate,
	}
	if err := r.db.Create(&row).Error; err != nil {
		return nil, err
	}
	return parseAlert(&row), nil
}

// GetAlerts 列出用户的全部到期提醒，按提醒日期升序
func (r *AlertRepository) GetAlerts(userID int64) ([]*entities.Alert, error) {
	var rows []models.Alert
	err := r.db.Where("user_id = ?", userID).
		Order("alert_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entities.Alert, 0, len(rows))
	for i := range rows {
		result = append(result, parseAlert(&rows[i]))
	}
	return result, nil
}

// UpdateAlert 部分更新到期提醒，nil 指针字段保持原值
func (r *AlertRepository) UpdateAlert(userID int64, id uuid.UUID, data usecase.AlertUpdateData) (*entities.Alert, error) {
	var row models.Alert
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if data.UserEmail != nil {
		updates["user_email"] = *data.UserEmail
	}
	if data.Message != nil {
		updates["message"] = *data.Message
	}
	if data.AlertDate != nil {
		updates["alert_date"] = *data.AlertDate
	}
	if data.RevenueID != nil {
		var revenue models.Revenue
		err := r.db.Where("id = ? AND user_id = ?", *data.RevenueID, userID).First(&revenue).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		updates["revenue_id"] = revenue.ID
	}

	if len(updates) > 0 {
		if err := r.db.Model(&row).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	err = r.db.Where("id = ? AND user_id = ?", id, userID).First(&row).Error
	if err != nil {
		return nil, err
	}
	return parseAlert(&row), nil
}

// DeleteAlert 删除到期提醒，返回是否确有记录被删除
func (r *AlertRepository) DeleteAlert(userID int64, id uuid.UUID) (bool, error) {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Alert{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// GetDueAlerts 返回 alert_date 落在指定日期当天的全部提醒（跨用户），
// 供每日批处理任务消费
func (r *AlertRepository) GetDueAlerts(date time.Time) ([]*entities.Alert, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var rows []models.Alert
	err := r.db.Where("alert_date >= ? AND alert_date < ?", dayStart, dayEnd).
		Order("alert_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entities.Alert, 0, len(rows))
	for i := range rows {
		result = append(result, parseAlert(&rows[i]))
	}
	return result, nil
}

// GetAlertRevenue 按 ID 查询提醒关联的支出记录，未找到返回 nil。
// 批处理跨用户发送，这里不追加 user_id 条件。
func (r *AlertRepository) GetAlertRevenue(revenueID uuid.UUID) (*entities.Revenue, error) {
	var row models.Revenue
	err := r.db.Preload("Category").
		Where("id = ?", revenueID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return parseRevenue(&row), nil
}
