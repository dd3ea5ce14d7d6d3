package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSender struct {
	sent []string
	fail bool
}

func (s *stubSender) SendAlertEmail(toEmail, message string, revenue map[string]any) error {
	if s.fail {
		return errors.New("smtp timeout")
	}
	s.sent = append(s.sent, toEmail)
	return nil
}

func TestAlertHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	revenueID := uuid.New()
	mock.ExpectQuery("SELECT .* FROM `revenues`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "amount", "expiration_date", "paid", "category_id"}).
			AddRow(revenueID.String(), 42, "房租", "2000.00", time.Now(), false, uuid.New().String()))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `alerts`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/alert/create/:user_id/", NewAlertHandler(nil, &stubSender{}).Create)

	body := fmt.Sprintf(`{"user_email":"user@example.com","revenue":"%s","message":"房租即将到期","alert_date":"2024-05-10"}`, revenueID)
	req := httptest.NewRequest("POST", "/alert/create/42/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "user@example.com", resp["user_email"])
	assert.Equal(t, revenueID.String(), resp["revenue_id"])
	assert.Equal(t, "2024-05-10", resp["alert_date"])
	require.NoError(t, mock.ExpectationsWereMet())
}

// 支出记录不属于该用户时创建被拒绝
func TestAlertHandler_CreateRevenueNotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `revenues`").
		WillReturnRows(sqlmock.NewRows([]string{}))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/alert/create/:user_id/", NewAlertHandler(nil, &stubSender{}).Create)

	body := fmt.Sprintf(`{"user_email":"user@example.com","revenue":"%s","message":"提醒","alert_date":"2024-05-10"}`, uuid.New())
	req := httptest.NewRequest("POST", "/alert/create/42/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Revenue not found.", resp["detail"])
	assert.Equal(t, "RevenueNotFound", resp["exception_name"])
	require.NoError(t, mock.ExpectationsWereMet())
}

// 手动触发批处理：当天无到期提醒时返回零计数
func TestAlertHandler_TriggerEmailNoDue(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `alerts`").
		WillReturnRows(sqlmock.NewRows([]string{}))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/alert/trigger-email/", NewAlertHandler(nil, &stubSender{}).TriggerEmail)

	req := httptest.NewRequest("POST", "/alert/trigger-email/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(0), resp["due"])
	assert.Equal(t, float64(0), resp["sent"])
	require.NoError(t, mock.ExpectationsWereMet())
}

// 手动触发批处理：到期提醒被逐条发送并计数
func TestAlertHandler_TriggerEmail(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	revenueID := uuid.New()
	categoryID := uuid.New()
	mock.ExpectQuery("SELECT .* FROM `alerts`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "user_email", "revenue_id", "message", "alert_date"}).
			AddRow(uuid.New().String(), 42, "user@example.com", revenueID.String(), "房租即将到期", time.Now()))
	mock.ExpectQuery("SELECT .* FROM `revenues`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "amount", "expiration_date", "paid", "category_id"}).
			AddRow(revenueID.String(), 42, "房租", "2000.00", time.Now(), false, categoryID.String()))
	mock.ExpectQuery("SELECT .* FROM `revenue_categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(categoryID.String(), "住房"))

	sender := &stubSender{}
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/alert/trigger-email/", NewAlertHandler(nil, sender).TriggerEmail)

	req := httptest.NewRequest("POST", "/alert/trigger-email/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(1), resp["due"])
	assert.Equal(t, float64(1), resp["sent"])
	assert.Equal(t, []string{"user@example.com"}, sender.sent)
	require.NoError(t, mock.ExpectationsWereMet())
}
