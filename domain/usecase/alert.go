package usecase

import (
	"github.com/google/uuid"
)

// AlertCreateUseCase 创建到期提醒用例。
// 创建成功后触发一次即发即忘的通知邮件，发送失败不影响响应。
type AlertCreateUseCase struct {
	dataAccess AlertCreateDataAccess
	notifier   AlertCreatedNotifier // 可选端口，nil 时跳过通知
	newOutput  OutputFactory
}

// NewAlertCreateUseCase 装配用例，notifier 允许为 nil
func NewAlertCreateUseCase(dataAccess AlertCreateDataAccess, notifier AlertCreatedNotifier, newOutput OutputFactory) (*AlertCreateUseCase, error) {
	if dataAccess == nil {
		return nil, ErrDataAccessNotSet
	}
	if newOutput == nil {
		return nil, ErrOutputNotSet
	}
	return &AlertCreateUseCase{dataAccess: dataAccess, notifier: notifier, newOutput: newOutput}, nil
}

// Execute 创建到期提醒；引用的支出记录不存在时返回业务 404
func (uc *AlertCreateUseCase) Execute(userID int64, data AlertCreateData) (Output, error) {
	alert, err := uc.dataAccess.CreateAlert(userID, data)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, NewNotFoundError("RevenueNotFound", "Revenue not found.")
	}
	parsed := alert.AsMap()
	if uc.notifier != nil {
		uc.notifier.NotifyAlertCreated(parsed)
	}
	out := uc.newOutput()
	out.SetData(parsed)
	return out, nil
}

// AlertListUseCase 到期提醒列表用例
type AlertListUseCase struct {
	dataAccess AlertListDataAccess
	newOutput  OutputFactory
}

// NewAlertListUseCase 装配用例
func NewAlertListUseCase(dataAccess AlertListDataAccess, newOutput OutputFactory) (*AlertListUseCase, error) {
	if dataAccess == nil {
		return nil, ErrDataAccessNotSet
	}
	if newOutput == nil {
		return nil, ErrOutputNotSet
	}
	return &AlertListUseCase{dataAccess: dataAccess, newOutput: newOutput}, nil
}

// Execute 列出用户的全部到期提醒；零行退化为空数组
func (uc *AlertListUseCase) Execute(userID int64) (Output, error) {
	out := uc.newOutput()
	result := make([]map[string]any, 0)
	out.SetData(result)

	alerts, err := uc.dataAccess.GetAlerts(userID)
	if err != nil {
		return nil, err
	}
	for _, alert := range alerts {
		result = append(result, alert.AsMap())
	}
	out.SetData(result)
	return out, nil
}

// AlertUpdateUseCase 更新到期提醒用例
type AlertUpdateUseCase struct {
	dataAccess AlertUpdateDataAccess
	newOutput  OutputFactory
}

// NewAlertUpdateUseCase 装配用例
func NewAlertUpdateUseCase(dataAccess AlertUpdateDataAccess, newOutput OutputFactory) (*AlertUpdateUseCase, error) {
	if dataAccess == nil {
		return nil, ErrDataAccessNotSet
	}
	if newOutput == nil {
		return nil, ErrOutputNotSet
	}
	return &AlertUpdateUseCase{dataAccess: dataAccess, newOutput: newOutput}, nil
}

// Execute 部分更新到期提醒，未提供的字段保持原值
func (uc *AlertUpdateUseCase) Execute(userID int64, id uuid.UUID, data AlertUpdateData) (Output, error) {
	out := uc.newOutput()
	alert, err := uc.dataAccess.UpdateAlert(userID, id, data)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return out, nil
	}
	out.SetData(alert.AsMap())
	return out, nil
}

// AlertDeleteUseCase 删除到期提醒用例
type AlertDeleteUseCase struct {
	dataAccess AlertDeleteDataAccess
	newOutput  OutputFactory
}

// NewAlertDeleteUseCase 装配用例
func NewAlertDeleteUseCase(dataAccess AlertDeleteDataAccess, newOutput OutputFactory) (*AlertDeleteUseCase, error) {
	if dataAccess == nil {
		return nil, ErrDataAccessNotSet
	}
	if newOutput == nil {
		return nil, ErrOutputNotSet
	}
	return &AlertDeleteUseCase{dataAccess: dataAccess, newOutput: newOutput}, nil
}

// Execute 删除到期提醒
func (uc *AlertDeleteUseCase) Execute(userID int64, id uuid.UUID) (Output, error) {
	out := uc.newOutput()
	deleted, err := uc.dataAccess.DeleteAlert(userID, id)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return out, nil
	}
	out.SetData(map[string]any{"message": "Alert deleted successfully."})
	return out, nil
}
