package usecase

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"gammabudget/domain/entities"
)

type fakeRevenuePort struct {
	created       *entities.Revenue
	updated       *entities.Revenue
	gotCreateData RevenueCreateData
	gotUpdateData RevenueUpdateData
}

func (f *fakeRevenuePort) CreateRevenue(userID int64, data RevenueCreateData) (*entities.Revenue, error) {
	f.gotCreateData = data
	return f.created, nil
}

func (f *fakeRevenuePort) UpdateRevenue(userID int64, id uuid.UUID, data RevenueUpdateData) (*entities.Revenue, error) {
	f.gotUpdateData = data
	return f.updated, nil
}

func sampleRevenue(paid bool, paymentDate *time.Time) *entities.Revenue {
	return entities.NewRevenue(
		uuid.New(), 42, "房租", "每月房租",
		decimal.NewFromInt(2000),
		time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		paid, paymentDate,
		entities.Category{ID: uuid.New(), Name: "住房"},
	)
}

// 未支付的创建请求在进入数据访问层之前必须丢弃支付日期
func TestRevenueCreateUnpaidDropsPaymentDate(t *testing.T) {
	now := time.Now()
	port := &fakeRevenuePort{created: sampleRevenue(false, nil)}
	uc, err := NewRevenueCreateUseCase(port, NewDataOutput)
	assert.NoError(t, err)

	out, err := uc.Execute(42, RevenueCreateData{
		Name:        "房租",
		Paid:        false,
		PaymentDate: &now,
	})
	assert.NoError(t, err)
	assert.Nil(t, port.gotCreateData.PaymentDate)

	data := out.Data().(map[string]any)
	assert.Equal(t, false, data["paid"])
	assert.Nil(t, data["payment_date"])
}

func TestRevenueCreatePaidKeepsPaymentDate(t *testing.T) {
	paidAt := time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)
	port := &fakeRevenuePort{created: sampleRevenue(true, &paidAt)}
	uc, err := NewRevenueCreateUseCase(port, NewDataOutput)
	assert.NoError(t, err)

	out, err := uc.Execute(42, RevenueCreateData{Name: "房租", Paid: true, PaymentDate: &paidAt})
	assert.NoError(t, err)
	assert.Equal(t, &paidAt, port.gotCreateData.PaymentDate)

	data := out.Data().(map[string]any)
	assert.Equal(t, true, data["paid"])
	assert.Equal(t, "2024-05-08", data["payment_date"])
}

// 显式改为未支付时同时丢弃传入的支付日期
func TestRevenueUpdateUnpaidDropsPaymentDate(t *testing.T) {
	now := time.Now()
	unpaid := false
	port := &fakeRevenuePort{updated: sampleRevenue(false, nil)}
	uc, err := NewRevenueUpdateUseCase(port, NewDataOutput)
	assert.NoError(t, err)

	_, err = uc.Execute(42, uuid.New(), RevenueUpdateData{
		Paid:        &unpaid,
		PaymentDate: &now,
	})
	assert.NoError(t, err)
	assert.Nil(t, port.gotUpdateData.PaymentDate)
}

// paid 未提供时支付日期原样透传
func TestRevenueUpdateWithoutPaidKeepsPaymentDate(t *testing.T) {
	paidAt := time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)
	port := &fakeRevenuePort{updated: sampleRevenue(true, &paidAt)}
	uc, err := NewRevenueUpdateUseCase(port, NewDataOutput)
	assert.NoError(t, err)

	_, err = uc.Execute(42, uuid.New(), RevenueUpdateData{PaymentDate: &paidAt})
	assert.NoError(t, err)
	assert.Equal(t, &paidAt, port.gotUpdateData.PaymentDate)
}
