package usecase

import (
	"time"

	"github.com/sirupsen/logrus"
)

// AlertSendEmailUseCase 到期提醒邮件批处理用例。
// 逐条处理当天到期的提醒，单条失败只记日志并计数，不中断整批。
type AlertSendEmailUseCase struct {
	dataAccess AlertBatchDataAccess
	sender     AlertEmailSender
	newOutput  OutputFactory
}

// NewAlertSendEmailUseCase 装配批处理用例
func NewAlertSendEmailUseCase(dataAccess AlertBatchDataAccess, sender AlertEmailSender, newOutput OutputFactory) (*AlertSendEmailUseCase, error) {
	if dataAccess == nil {
		return nil, ErrDataAccessNotSet
	}
	if sender == nil {
		return nil, ErrEmailSenderNotSet
	}
	if newOutput == nil {
		return nil, ErrOutputNotSet
	}
	return &AlertSendEmailUseCase{dataAccess: dataAccess, sender: sender, newOutput: newOutput}, nil
}

// Execute 发送指定日期到期的全部提醒邮件，返回处理计数
func (uc *AlertSendEmailUseCase) Execute(date time.Time) (Output, error) {
	alerts, err := uc.dataAccess.GetDueAlerts(date)
	if err != nil {
		return nil, err
	}

	var sent, skipped, failed int
	for _, alert := range alerts {
		revenue, err := uc.dataAccess.GetAlertRevenue(alert.RevenueID)
		if err != nil {
			logrus.Warnf("查询提醒 %s 关联的支出记录失败: %v", alert.ID, err)
			skipped++
			continue
		}
		if revenue == nil {
			logrus.Warnf("提醒 %s 关联的支出记录 %s 不存在，跳过", alert.ID, alert.RevenueID)
			skipped++
			continue
		}
		if err := uc.sender.SendAlertEmail(alert.UserEmail, alert.Message, revenue.AsMap()); err != nil {
			logrus.Errorf("提醒邮件发送失败 %s -> %s: %v", alert.ID, alert.UserEmail, err)
			failed++
			continue
		}
		sent++
	}

	logrus.Infof("提醒批处理完成: 到期 %d, 已发送 %d, 跳过 %d, 失败 %d",
		len(alerts), sent, skipped, failed)

	out := uc.newOutput()
	out.SetData(map[string]any{
		"due":     len(alerts),
		"sent":    sent,
		"skipped": skipped,
		"failed":  failed,
	})
	return out, nil
}
