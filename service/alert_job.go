package service

import (
	"time"

	"github.com/sirupsen/logrus"

	"gammabudget/database"
	"gammabudget/domain/usecase"
	"gammabudget/repository"
)

// AlertJobService 每日提醒邮件批处理任务，由 cron 调度
type AlertJobService struct {
	batch *usecase.AlertSendEmailUseCase
}

// NewAlertJobService 装配批处理任务
func NewAlertJobService(sender usecase.AlertEmailSender) (*AlertJobService, error) {
	repo := repository.NewAlertRepository(database.DB)
	batch, err := usecase.NewAlertSendEmailUseCase(repo, sender, usecase.NewDataOutput)
	if err != nil {
		return nil, err
	}
	return &AlertJobService{batch: batch}, nil
}

// Run 发送今天到期的全部提醒邮件，作为 cron 任务入口
func (s *AlertJobService) Run() {
	if _, err := s.RunDate(time.Now()); err != nil {
		logrus.Errorf("提醒批处理任务执行失败: %v", err)
	}
}

// RunDate 发送指定日期到期的全部提醒邮件，返回处理计数
func (s *AlertJobService) RunDate(date time.Time) (usecase.Output, error) {
	return s.batch.Execute(date)
}
