package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"gammabudget/domain/entities"
)

type fakeAlertPort struct {
	created *entities.Alert
}

func (f *fakeAlertPort) CreateAlert(userID int64, data AlertCreateData) (*entities.Alert, error) {
	return f.created, nil
}

type fakeNotifier struct {
	notified []map[string]any
}

func (f *fakeNotifier) NotifyAlertCreated(alert map[string]any) {
	f.notified = append(f.notified, alert)
}

func sampleAlert(revenueID uuid.UUID) *entities.Alert {
	return &entities.Alert{
		ID:        uuid.New(),
		UserID:    42,
		UserEmail: "user@example.com",
		RevenueID: revenueID,
		Message:   "房租即将到期",
		AlertDate: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
	}
}

// 创建成功后通知端口收到拍平后的提醒数据
func TestAlertCreateFiresNotifier(t *testing.T) {
	alert := sampleAlert(uuid.New())
	notifier := &fakeNotifier{}
	uc, err := NewAlertCreateUseCase(&fakeAlertPort{created: alert}, notifier, NewDataOutput)
	assert.NoError(t, err)

	out, err := uc.Execute(42, AlertCreateData{UserEmail: alert.UserEmail})
	assert.NoError(t, err)
	assert.Len(t, notifier.notified, 1)
	assert.Equal(t, alert.ID.String(), notifier.notified[0]["id"])
	assert.Equal(t, "2024-05-10", out.Data().(map[string]any)["alert_date"])
}

// 通知端口是可选依赖，缺省时创建照常成功
func TestAlertCreateWithoutNotifier(t *testing.T) {
	uc, err := NewAlertCreateUseCase(&fakeAlertPort{created: sampleAlert(uuid.New())}, nil, NewDataOutput)
	assert.NoError(t, err)

	out, err := uc.Execute(42, AlertCreateData{})
	assert.NoError(t, err)
	assert.NotNil(t, out.Data())
}

// 引用不存在的支出记录得到带 404 状态码的业务错误
func TestAlertCreateRevenueNotFound(t *testing.T) {
	notifier := &fakeNotifier{}
	uc, err := NewAlertCreateUseCase(&fakeAlertPort{created: nil}, notifier, NewDataOutput)
	assert.NoError(t, err)

	out, err := uc.Execute(42, AlertCreateData{})
	assert.Nil(t, out)
	assert.Empty(t, notifier.notified)

	var ucErr *Error
	assert.True(t, errors.As(err, &ucErr))
	assert.Equal(t, 404, ucErr.Code)
	assert.Equal(t, "RevenueNotFound", ucErr.Kind)
	assert.Equal(t, "Revenue not found.", ucErr.Message)
}

type fakeBatchPort struct {
	due      []*entities.Alert
	revenues map[uuid.UUID]*entities.Revenue
	fetchErr map[uuid.UUID]error
}

func (f *fakeBatchPort) GetDueAlerts(date time.Time) ([]*entities.Alert, error) {
	return f.due, nil
}

func (f *fakeBatchPort) GetAlertRevenue(revenueID uuid.UUID) (*entities.Revenue, error) {
	if err := f.fetchErr[revenueID]; err != nil {
		return nil, err
	}
	return f.revenues[revenueID], nil
}

type fakeSender struct {
	sent    []string
	failFor map[string]error
}

func (f *fakeSender) SendAlertEmail(toEmail, message string, revenue map[string]any) error {
	if err := f.failFor[toEmail]; err != nil {
		return err
	}
	f.sent = append(f.sent, toEmail)
	return nil
}

func batchRevenue(id uuid.UUID) *entities.Revenue {
	return entities.NewRevenue(
		id, 42, "房租", "", decimal.NewFromInt(2000),
		time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		false, nil,
		entities.Category{ID: uuid.New(), Name: "住房"},
	)
}

func TestNewAlertSendEmailUseCaseMissingPorts(t *testing.T) {
	_, err := NewAlertSendEmailUseCase(nil, &fakeSender{}, NewDataOutput)
	assert.ErrorIs(t, err, ErrDataAccessNotSet)

	_, err = NewAlertSendEmailUseCase(&fakeBatchPort{}, nil, NewDataOutput)
	assert.ErrorIs(t, err, ErrEmailSenderNotSet)

	_, err = NewAlertSendEmailUseCase(&fakeBatchPort{}, &fakeSender{}, nil)
	assert.ErrorIs(t, err, ErrOutputNotSet)
}

func TestAlertSendEmailNoDueAlerts(t *testing.T) {
	uc, err := NewAlertSendEmailUseCase(&fakeBatchPort{}, &fakeSender{}, NewDataOutput)
	assert.NoError(t, err)

	out, err := uc.Execute(time.Now())
	assert.NoError(t, err)
	assert.Equal(t, map[string]any{"due": 0, "sent": 0, "skipped": 0, "failed": 0}, out.Data())
}

// 单条提醒的关联支出缺失只跳过该条，其余照常发送
func TestAlertSendEmailSkipsMissingRevenue(t *testing.T) {
	okID, missingID := uuid.New(), uuid.New()
	port := &fakeBatchPort{
		due: []*entities.Alert{sampleAlert(missingID), sampleAlert(okID)},
		revenues: map[uuid.UUID]*entities.Revenue{
			okID: batchRevenue(okID),
		},
	}
	sender := &fakeSender{}
	uc, err := NewAlertSendEmailUseCase(port, sender, NewDataOutput)
	assert.NoError(t, err)

	out, err := uc.Execute(time.Now())
	assert.NoError(t, err)
	assert.Len(t, sender.sent, 1)
	assert.Equal(t, map[string]any{"due": 2, "sent": 1, "skipped": 1, "failed": 0}, out.Data())
}

// 发送失败同样不中断整批
func TestAlertSendEmailIsolatesSendFailure(t *testing.T) {
	firstID, secondID := uuid.New(), uuid.New()
	first := sampleAlert(firstID)
	first.UserEmail = "broken@example.com"
	second := sampleAlert(secondID)

	port := &fakeBatchPort{
		due: []*entities.Alert{first, second},
		revenues: map[uuid.UUID]*entities.Revenue{
			firstID:  batchRevenue(firstID),
			secondID: batchRevenue(secondID),
		},
	}
	sender := &fakeSender{failFor: map[string]error{"broken@example.com": errors.New("smtp timeout")}}
	uc, err := NewAlertSendEmailUseCase(port, sender, NewDataOutput)
	assert.NoError(t, err)

	out, err := uc.Execute(time.Now())
	assert.NoError(t, err)
	assert.Equal(t, []string{"user@example.com"}, sender.sent)
	assert.Equal(t, map[string]any{"due": 2, "sent": 1, "skipped": 0, "failed": 1}, out.Data())
}
