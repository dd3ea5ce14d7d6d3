package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"gammabudget/domain/usecase"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock, func() { sqlDB.Close() }
}

func TestIncomingRepository_GetIncomingNotFound(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `incomings`").
		WillReturnRows(sqlmock.NewRows([]string{}))

	repo := NewIncomingRepository(db)
	incoming, err := repo.GetIncoming(uuid.New(), 42)
	assert.NoError(t, err)
	assert.Nil(t, incoming)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomingRepository_GetIncoming(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	incomingID := uuid.New()
	categoryID := uuid.New()
	launch := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT .* FROM `incomings`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "description", "amount", "launch_date", "category_id"}).
			AddRow(incomingID.String(), 42, "工资", "五月工资", "5000.00", launch, categoryID.String()))
	mock.ExpectQuery("SELECT .* FROM `incoming_categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "image"}).
			AddRow(categoryID.String(), "工资", "固定收入", "/media/icons/salary.png"))

	repo := NewIncomingRepository(db)
	incoming, err := repo.GetIncoming(incomingID, 42)
	require.NoError(t, err)
	require.NotNil(t, incoming)
	assert.Equal(t, "5000.00", incoming.Amount.StringFixed(2))
	assert.Equal(t, "工资", incoming.Category.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

// 类别不存在时创建直接短路，不触发 INSERT
func TestIncomingRepository_CreateCategoryMissing(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `incoming_categories`").
		WillReturnRows(sqlmock.NewRows([]string{}))

	repo := NewIncomingRepository(db)
	incoming, err := repo.CreateIncoming(42, usecase.IncomingCreateData{
		Name:       "工资",
		Amount:     decimal.NewFromInt(5000),
		CategoryID: uuid.New(),
	})
	assert.NoError(t, err)
	assert.Nil(t, incoming)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomingRepository_Delete(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `incomings` SET `deleted_at`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewIncomingRepository(db)
	deleted, err := repo.DeleteIncoming(42, uuid.New())
	assert.NoError(t, err)
	assert.True(t, deleted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomingRepository_DeleteMissing(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `incomings` SET `deleted_at`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	repo := NewIncomingRepository(db)
	deleted, err := repo.DeleteIncoming(42, uuid.New())
	assert.NoError(t, err)
	assert.False(t, deleted)
	require.NoError(t, mock.ExpectationsWereMet())
}

// 部分更新只触碰载荷中出现的列，未提供的字段保持原值
func TestIncomingRepository_UpdatePartial(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	incomingID := uuid.New()
	categoryID := uuid.New()
	launch := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT .* FROM `incomings`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "description", "amount", "launch_date", "category_id"}).
			AddRow(incomingID.String(), 42, "工资", "五月工资", "5000.00", launch, categoryID.String()))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `incomings` SET `name`=\\?,`updated_at`=\\? WHERE").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery("SELECT .* FROM `incomings`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "description", "amount", "launch_date", "category_id"}).
			AddRow(incomingID.String(), 42, "六月工资", "五月工资", "5000.00", launch, categoryID.String()))
	mock.ExpectQuery("SELECT .* FROM `incoming_categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(categoryID.String(), "工资"))

	name := "六月工资"
	repo := NewIncomingRepository(db)
	incoming, err := repo.UpdateIncoming(42, incomingID, usecase.IncomingUpdateData{Name: &name})
	require.NoError(t, err)
	require.NotNil(t, incoming)
	assert.Equal(t, "六月工资", incoming.Name)
	assert.Equal(t, "5000.00", incoming.Amount.StringFixed(2))
	require.NoError(t, mock.ExpectationsWereMet())
}

// 未支付的行单独收到 payment_date 时落库的仍是 NULL
func TestRevenueRepository_UpdatePaymentDateOnUnpaidRow(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	revenueID := uuid.New()
	categoryID := uuid.New()
	due := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT .* FROM `revenues`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "amount", "expiration_date", "paid", "payment_date", "category_id"}).
			AddRow(revenueID.String(), 42, "房租", "2000.00", due, false, nil, categoryID.String()))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `revenues` SET `payment_date`=\\?,`updated_at`=\\? WHERE").
		WithArgs(nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery("SELECT .* FROM `revenues`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "amount", "expiration_date", "paid", "payment_date", "category_id"}).
			AddRow(revenueID.String(), 42, "房租", "2000.00", due, false, nil, categoryID.String()))
	mock.ExpectQuery("SELECT .* FROM `revenue_categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(categoryID.String(), "住房"))

	paymentDate := time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)
	repo := NewRevenueRepository(db)
	revenue, err := repo.UpdateRevenue(42, revenueID, usecase.RevenueUpdateData{PaymentDate: &paymentDate})
	require.NoError(t, err)
	require.NotNil(t, revenue)
	assert.False(t, revenue.Paid)
	assert.Nil(t, revenue.PaymentDate)
	require.NoError(t, mock.ExpectationsWereMet())
}

// 已支付的行更新支付日期正常落库
func TestRevenueRepository_UpdatePaymentDateOnPaidRow(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	revenueID := uuid.New()
	categoryID := uuid.New()
	due := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	paymentDate := time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT .* FROM `revenues`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "amount", "expiration_date", "paid", "payment_date", "category_id"}).
			AddRow(revenueID.String(), 42, "房租", "2000.00", due, true, nil, categoryID.String()))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `revenues` SET `payment_date`=\\?,`updated_at`=\\? WHERE").
		WithArgs(paymentDate, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery("SELECT .* FROM `revenues`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "amount", "expiration_date", "paid", "payment_date", "category_id"}).
			AddRow(revenueID.String(), 42, "房租", "2000.00", due, true, paymentDate, categoryID.String()))
	mock.ExpectQuery("SELECT .* FROM `revenue_categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(categoryID.String(), "住房"))

	repo := NewRevenueRepository(db)
	revenue, err := repo.UpdateRevenue(42, revenueID, usecase.RevenueUpdateData{PaymentDate: &paymentDate})
	require.NoError(t, err)
	require.NotNil(t, revenue)
	require.NotNil(t, revenue.PaymentDate)
	assert.Equal(t, paymentDate, *revenue.PaymentDate)
	require.NoError(t, mock.ExpectationsWereMet())
}

// 批处理按自然日的半开区间查询当天到期的提醒
func TestAlertRepository_GetDueAlerts(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	date := time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC)
	dayStart := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	alertID := uuid.New()
	revenueID := uuid.New()
	mock.ExpectQuery("SELECT .* FROM `alerts`").
		WithArgs(dayStart, dayEnd).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "user_email", "revenue_id", "message", "alert_date"}).
			AddRow(alertID.String(), 42, "user@example.com", revenueID.String(), "房租即将到期", dayStart))

	repo := NewAlertRepository(db)
	alerts, err := repo.GetDueAlerts(date)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "user@example.com", alerts[0].UserEmail)
	assert.Equal(t, revenueID, alerts[0].RevenueID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_GetRevenueCategories(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `revenue_categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "image"}).
			AddRow(uuid.New().String(), "住房", "房租与物业", "/media/icons/housing.png").
			AddRow(uuid.New().String(), "餐饮", "一日三餐", "/media/icons/food.png"))

	repo := NewCategoryRepository(db)
	categories, err := repo.GetRevenueCategories()
	require.NoError(t, err)
	assert.Len(t, categories, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}
