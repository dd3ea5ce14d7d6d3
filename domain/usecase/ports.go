package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"gammabudget/domain/entities"
)

// 数据访问端口约定：
//   - 创建类方法返回 nil 实体表示引用的类别（或支出）不存在；
//   - 查询类方法返回 nil 表示未找到，不作为 error 上抛；
//   - 更新类方法对 Data 中未设置（nil 指针）的字段保持原值；
//   - 删除类方法返回 false 表示没有可删除的记录。

// IncomingCreateData 创建收入记录的入参
type IncomingCreateData struct {
	Name        string
	Description string
	Amount      decimal.Decimal
	CategoryID  uuid.UUID
}

// IncomingUpdateData 更新收入记录的入参，nil 指针字段保持原值
type IncomingUpdateData struct {
	Name        *string
	Description *string
	Amount      *decimal.Decimal
	CategoryID  *uuid.UUID
}

// IncomingCreateDataAccess 创建收入记录的数据访问端口
type IncomingCreateDataAccess interface {
	CreateIncoming(userID int64, data IncomingCreateData) (*entities.Incoming, error)
}

// IncomingListDataAccess 列出收入记录的数据访问端口
type IncomingListDataAccess interface {
	GetIncomings(userID int64) ([]*entities.Incoming, error)
}

// IncomingRetrieveDataAccess 查询单条收入记录的数据访问端口
type IncomingRetrieveDataAccess interface {
	GetIncoming(id uuid.UUID, userID int64) (*entities.Incoming, error)
}

// IncomingUpdateDataAccess 更新收入记录的数据访问端口
type IncomingUpdateDataAccess interface {
	UpdateIncoming(userID int64, id uuid.UUID, data IncomingUpdateData) (*entities.Incoming, error)
}

// IncomingDeleteDataAccess 删除收入记录的数据访问端口
type IncomingDeleteDataAccess interface {
	DeleteIncoming(userID int64, id uuid.UUID) (bool, error)
}

// RevenueCreateData 创建支出记录的入参
type RevenueCreateData struct {
	Name           string
	Description    string
	Amount         decimal.Decimal
	ExpirationDate time.Time
	Paid           bool
	PaymentDate    *time.Time
	CategoryID     uuid.UUID
}

// RevenueUpdateData 更新支出记录的入参，nil 指针字段保持原值
type RevenueUpdateData struct {
	Name           *string
	Description    *string
	Amount         *decimal.Decimal
	ExpirationDate *time.Time
	Paid           *bool
	PaymentDate    *time.Time
	CategoryID     *uuid.UUID
}

// RevenueCreateDataAccess 创建支出记录的数据访问端口
type RevenueCreateDataAccess interface {
	CreateRevenue(userID int64, data RevenueCreateData) (*entities.Revenue, error)
}

// RevenueListDataAccess 列出支出记录的数据访问端口
type RevenueListDataAccess interface {
	GetRevenues(userID int64) ([]*entities.Revenue, error)
}

// RevenueRetrieveDataAccess 查询单条支出记录的数据访问端口
type RevenueRetrieveDataAccess interface {
	GetRevenue(id uuid.UUID, userID int64) (*entities.Revenue, error)
}

// RevenueUpdateDataAccess 更新支出记录的数据访问端口
type RevenueUpdateDataAccess interface {
	UpdateRevenue(userID int64, id uuid.UUID, data RevenueUpdateData) (*entities.Revenue, error)
}

// RevenueDeleteDataAccess 删除支出记录的数据访问端口
type RevenueDeleteDataAccess interface {
	DeleteRevenue(userID int64, id uuid.UUID) (bool, error)
}

// LimitCreateData 创建消费限额的入参
type LimitCreateData struct {
	Limit      decimal.Decimal
	Amount     decimal.Decimal
	LimitDate  time.Time
	CategoryID uuid.UUID
}

// LimitUpdateData 更新消费限额的入参，只允许调整限额与已消费金额
type LimitUpdateData struct {
	Limit  *decimal.Decimal
	Amount *decimal.Decimal
}

// LimitCreateDataAccess 创建消费限额的数据访问端口
type LimitCreateDataAccess interface {
	CreateLimit(userID int64, data LimitCreateData) (*entities.Limit, error)
}

// LimitListDataAccess 列出消费限额的数据访问端口
type LimitListDataAccess interface {
	GetLimits(userID int64) ([]*entities.Limit, error)
}

// LimitUpdateDataAccess 更新消费限额的数据访问端口
type LimitUpdateDataAccess interface {
	UpdateLimit(userID int64, id uuid.UUID, data LimitUpdateData) (*entities.Limit, error)
}

// LimitDeleteDataAccess 删除消费限额的数据访问端口
type LimitDeleteDataAccess interface {
	DeleteLimit(userID int64, id uuid.UUID) (bool, error)
}

// AlertCreateData 创建到期提醒的入参
type AlertCreateData struct {
	UserEmail string
	RevenueID uuid.UUID
	Message   string
	AlertDate time.Time
}

// AlertUpdateData 更新到期提醒的入参，nil 指针字段保持原值
type AlertUpdateData struct {
	UserEmail *string
	RevenueID *uuid.UUID
	Message   *string
	AlertDate *time.Time
}

// AlertCreateDataAccess 创建到期提醒的数据访问端口
type AlertCreateDataAccess interface {
	CreateAlert(userID int64, data AlertCreateData) (*entities.Alert, error)
}

// AlertListDataAccess 列出到期提醒的数据访问端口
type AlertListDataAccess interface {
	GetAlerts(userID int64) ([]*entities.Alert, error)
}

// AlertUpdateDataAccess 更新到期提醒的数据访问端口
type AlertUpdateDataAccess interface {
	UpdateAlert(userID int64, id uuid.UUID, data AlertUpdateData) (*entities.Alert, error)
}

// AlertDeleteDataAccess 删除到期提醒的数据访问端口
type AlertDeleteDataAccess interface {
	DeleteAlert(userID int64, id uuid.UUID) (bool, error)
}

// AlertBatchDataAccess 提醒批处理任务的数据访问端口
type AlertBatchDataAccess interface {
	// GetDueAlerts 返回 alert_date 落在指定日期当天的全部提醒（跨用户）
	GetDueAlerts(date time.Time) ([]*entities.Alert, error)
	// GetAlertRevenue 按 ID 查询提醒关联的支出记录，未找到返回 nil
	GetAlertRevenue(revenueID uuid.UUID) (*entities.Revenue, error)
}

// AlertEmailSender 提醒邮件发送端口
type AlertEmailSender interface {
	SendAlertEmail(toEmail, message string, revenue map[string]any) error
}

// AlertCreatedNotifier 提醒创建成功后的通知端口。
// 通知属于即发即忘的副作用，失败不回传到响应。
type AlertCreatedNotifier interface {
	NotifyAlertCreated(alert map[string]any)
}

// IncomingCategoryListDataAccess 收入类别列表端口
type IncomingCategoryListDataAccess interface {
	GetIncomingCategories() ([]*entities.Category, error)
}

// RevenueCategoryListDataAccess 支出类别列表端口
type RevenueCategoryListDataAccess interface {
	GetRevenueCategories() ([]*entities.Category, error)
}
