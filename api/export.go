package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"gammabudget/database"
	"gammabudget/models"
)

// ExportHandler 导出处理器，导出指定用户某个时间段的收支记录
type ExportHandler struct{}

// NewExportHandler 创建导出处理器
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

func (h *ExportHandler) parseRange(c *gin.Context) (int64, time.Time, time.Time, string, string, bool) {
	userID, err := pathUserID(c)
	if err != nil {
		renderError(c, err)
		return 0, time.Time{}, time.Time{}, "", "", false
	}

	startStr := c.Query("start_date")
	endStr := c.Query("end_date")
	if startStr == "" || endStr == "" {
		BadRequest(c, "请提供开始日期和结束日期")
		return 0, time.Time{}, time.Time{}, "", "", false
	}

	start, err := time.ParseInLocation("2006-01-02", startStr, time.Local)
	if err != nil {
		BadRequest(c, "开始日期格式错误，应为: 2006-01-02")
		return 0, time.Time{}, time.Time{}, "", "", false
	}
	end, err := time.ParseInLocation("2006-01-02", endStr, time.Local)
	if err != nil {
		BadRequest(c, "结束日期格式错误，应为: 2006-01-02")
		return 0, time.Time{}, time.Time{}, "", "", false
	}
	end = end.Add(24*time.Hour - time.Second)
	return userID, start, end, startStr, endStr, true
}

// 支出按到期日过滤
func (h *ExportHandler) queryRange(c *gin.Context) (int64, []models.Revenue, string, string, bool) {
	userID, start, end, startStr, endStr, ok := h.parseRange(c)
	if !ok {
		return 0, nil, "", "", false
	}

	var revenues []models.Revenue
	err := database.DB.Preload("Category").
		Where("user_id = ? AND expiration_date >= ? AND expiration_date <= ?", userID, start, end).
		Order("expiration_date ASC").
		Find(&revenues).Error
	if err != nil {
		InternalError(c, "查询数据失败: "+SafeErrorMessage(err, "internal server error"))
		return 0, nil, "", "", false
	}
	return userID, revenues, startStr, endStr, true
}

// 收入按入账日过滤
func (h *ExportHandler) queryIncomingRange(c *gin.Context) (int64, []models.Incoming, string, string, bool) {
	userID, start, end, startStr, endStr, ok := h.parseRange(c)
	if !ok {
		return 0, nil, "", "", false
	}

	var incomings []models.Incoming
	err := database.DB.Preload("Category").
		Where("user_id = ? AND launch_date >= ? AND launch_date <= ?", userID, start, end).
		Order("launch_date ASC").
		Find(&incomings).Error
	if err != nil {
		InternalError(c, "查询数据失败: "+SafeErrorMessage(err, "internal server error"))
		return 0, nil, "", "", false
	}
	return userID, incomings, startStr, endStr, true
}

// ExportCSV 导出支出记录为 CSV
// @Summary 导出支出记录为 CSV
// @Description 按到期日范围导出指定用户的支出记录为 CSV 文件
// @Tags 导出
// @Produce text/csv
// @Param user_id path int true "用户ID"
// @Param start_date query string true "开始日期 (2024-01-01)"
// @Param end_date query string true "结束日期 (2024-12-31)"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/export/revenue/csv/{user_id}/ [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	_, revenues, startStr, endStr, ok := h.queryRange(c)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)
	headers := []string{"ID", "名称", "描述", "金额", "类别", "到期日", "已支付", "支付日期"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	for _, revenue := range revenues {
		paymentDate := ""
		if revenue.Paid && revenue.PaymentDate != nil {
			paymentDate = revenue.PaymentDate.Format("2006-01-02")
		}
		row := []string{
			revenue.ID.String(),
			revenue.Name,
			revenue.Description,
			revenue.Amount.StringFixed(2),
			revenue.Category.Name,
			revenue.ExpirationDate.Format("2006-01-02"),
			fmt.Sprintf("%t", revenue.Paid),
			paymentDate,
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	filename := fmt.Sprintf("revenues_%s_%s.csv", startStr, endStr)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel 导出支出记录为 Excel
// @Summary 导出支出记录为 Excel
// @Description 按到期日范围导出指定用户的支出记录为 xlsx 文件
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param user_id path int true "用户ID"
// @Param start_date query string true "开始日期 (2024-01-01)"
// @Param end_date query string true "结束日期 (2024-12-31)"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/export/revenue/excel/{user_id}/ [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	_, revenues, startStr, endStr, ok := h.queryRange(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "支出记录"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetColWidth(sheetName, "A", "A", 38)
	f.SetColWidth(sheetName, "B", "C", 20)
	f.SetColWidth(sheetName, "D", "H", 14)

	headers := []string{"ID", "名称", "描述", "金额", "类别", "到期日", "已支付", "支付日期"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	total := decimal.Zero
	for i, revenue := range revenues {
		row := i + 2
		paymentDate := ""
		if revenue.Paid && revenue.PaymentDate != nil {
			paymentDate = revenue.PaymentDate.Format("2006-01-02")
		}
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), revenue.ID.String())
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), revenue.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), revenue.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), revenue.Amount.StringFixed(2))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), revenue.Category.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), revenue.ExpirationDate.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), revenue.Paid)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), paymentDate)
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("H%d", row), dataStyle)
		total = total.Add(revenue.Amount)
	}

	summaryRow := len(revenues) + 2
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "合计")
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", summaryRow), total.StringFixed(2))
	f.SetCellValue(sheetName, fmt.Sprintf("E%d", summaryRow), fmt.Sprintf("共 %d 条记录", len(revenues)))

	filename := fmt.Sprintf("revenues_%s_%s.xlsx", startStr, endStr)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", filename))

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "生成 Excel 失败")
	}
}

// ExportJSON 导出支出记录为 JSON
// @Summary 导出支出记录为 JSON
// @Description 按到期日范围导出指定用户的支出记录与合计金额
// @Tags 导出
// @Produce json
// @Param user_id path int true "用户ID"
// @Param start_date query string true "开始日期 (2024-01-01)"
// @Param end_date query string true "结束日期 (2024-12-31)"
// @Success 200 {object} Response "导出成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/export/revenue/json/{user_id}/ [get]
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	userID, revenues, startStr, endStr, ok := h.queryRange(c)
	if !ok {
		return
	}

	total := decimal.Zero
	for _, revenue := range revenues {
		total = total.Add(revenue.Amount)
	}

	Success(c, gin.H{
		"user_id":      userID,
		"start_date":   startStr,
		"end_date":     endStr,
		"total_count":  len(revenues),
		"total_amount": total.StringFixed(2),
		"revenues":     revenues,
	})
}

// ExportIncomingCSV 导出收入记录为 CSV
// @Summary 导出收入记录为 CSV
// @Description 按入账日范围导出指定用户的收入记录为 CSV 文件
// @Tags 导出
// @Produce text/csv
// @Param user_id path int true "用户ID"
// @Param start_date query string true "开始日期 (2024-01-01)"
// @Param end_date query string true "结束日期 (2024-12-31)"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/export/incoming/csv/{user_id}/ [get]
func (h *ExportHandler) ExportIncomingCSV(c *gin.Context) {
	_, incomings, startStr, endStr, ok := h.queryIncomingRange(c)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)
	headers := []string{"ID", "名称", "描述", "金额", "类别", "入账日"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	for _, incoming := range incomings {
		row := []string{
			incoming.ID.String(),
			incoming.Name,
			incoming.Description,
			incoming.Amount.StringFixed(2),
			incoming.Category.Name,
			incoming.LaunchDate.Format("2006-01-02"),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	filename := fmt.Sprintf("incomings_%s_%s.csv", startStr, endStr)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportIncomingExcel 导出收入记录为 Excel
// @Summary 导出收入记录为 Excel
// @Description 按入账日范围导出指定用户的收入记录为 xlsx 文件
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param user_id path int true "用户ID"
// @Param start_date query string true "开始日期 (2024-01-01)"
// @Param end_date query string true "结束日期 (2024-12-31)"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/export/incoming/excel/{user_id}/ [get]
func (h *ExportHandler) ExportIncomingExcel(c *gin.Context) {
	_, incomings, startStr, endStr, ok := h.queryIncomingRange(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "收入记录"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetColWidth(sheetName, "A", "A", 38)
	f.SetColWidth(sheetName, "B", "C", 20)
	f.SetColWidth(sheetName, "D", "F", 14)

	headers := []string{"ID", "名称", "描述", "金额", "类别", "入账日"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	total := decimal.Zero
	for i, incoming := range incomings {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), incoming.ID.String())
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), incoming.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), incoming.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), incoming.Amount.StringFixed(2))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), incoming.Category.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), incoming.LaunchDate.Format("2006-01-02"))
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row), dataStyle)
		total = total.Add(incoming.Amount)
	}

	summaryRow := len(incomings) + 2
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "合计")
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", summaryRow), total.StringFixed(2))
	f.SetCellValue(sheetName, fmt.Sprintf("E%d", summaryRow), fmt.Sprintf("共 %d 条记录", len(incomings)))

	filename := fmt.Sprintf("incomings_%s_%s.xlsx", startStr, endStr)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", filename))

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "生成 Excel 失败")
	}
}

// ExportIncomingJSON 导出收入记录为 JSON
// @Summary 导出收入记录为 JSON
// @Description 按入账日范围导出指定用户的收入记录与合计金额
// @Tags 导出
// @Produce json
// @Param user_id path int true "用户ID"
// @Param start_date query string true "开始日期 (2024-01-01)"
// @Param end_date query string true "结束日期 (2024-12-31)"
// @Success 200 {object} Response "导出成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/export/incoming/json/{user_id}/ [get]
func (h *ExportHandler) ExportIncomingJSON(c *gin.Context) {
	userID, incomings, startStr, endStr, ok := h.queryIncomingRange(c)
	if !ok {
		return
	}

	total := decimal.Zero
	for _, incoming := range incomings {
		total = total.Add(incoming.Amount)
	}

	Success(c, gin.H{
		"user_id":      userID,
		"start_date":   startStr,
		"end_date":     endStr,
		"total_count":  len(incomings),
		"total_amount": total.StringFixed(2),
		"incomings":    incomings,
	})
}
