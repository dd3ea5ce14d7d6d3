package api

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportHandler_ExportIncomingJSON(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	categoryID := uuid.New()
	launch := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT .* FROM `incomings`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "description", "amount", "launch_date", "category_id"}).
			AddRow(uuid.New().String(), 42, "工资", "五月工资", "5000.00", launch, categoryID.String()).
			AddRow(uuid.New().String(), 42, "稿费", "", "800.50", launch, categoryID.String()))
	mock.ExpectQuery("SELECT .* FROM `incoming_categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(categoryID.String(), "工资"))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/export/incoming/json/:user_id/", NewExportHandler().ExportIncomingJSON)

	req := httptest.NewRequest("GET", "/export/incoming/json/42/?start_date=2024-05-01&end_date=2024-05-31", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 200, resp.Code)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(42), data["user_id"])
	assert.Equal(t, float64(2), data["total_count"])
	assert.Equal(t, "5800.50", data["total_amount"])
	require.NoError(t, mock.ExpectationsWereMet())
}

// 缺失日期范围返回 400
func TestExportHandler_ExportIncomingCSVMissingRange(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/export/incoming/csv/:user_id/", NewExportHandler().ExportIncomingCSV)

	req := httptest.NewRequest("GET", "/export/incoming/csv/42/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "开始日期")
}

func TestExportHandler_ExportIncomingCSV(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	categoryID := uuid.New()
	launch := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT .* FROM `incomings`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "description", "amount", "launch_date", "category_id"}).
			AddRow(uuid.New().String(), 42, "工资", "五月工资", "5000.00", launch, categoryID.String()))
	mock.ExpectQuery("SELECT .* FROM `incoming_categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(categoryID.String(), "工资"))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/export/incoming/csv/:user_id/", NewExportHandler().ExportIncomingCSV)

	req := httptest.NewRequest("GET", "/export/incoming/csv/42/?start_date=2024-05-01&end_date=2024-05-31", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "incomings_2024-05-01_2024-05-31.csv")
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "入账日")
	assert.Contains(t, lines[1], "工资")
	assert.Contains(t, lines[1], "5000.00")
	require.NoError(t, mock.ExpectationsWereMet())
}
