package api

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"gammabudget/domain/usecase"
)

// 请求体里的日期类字段统一使用 ISO-8601 日期格式
const requestDateLayout = "2006-01-02"

// parseAmount 解析金额字符串，拒绝非法格式与负数
func parseAmount(field, value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, usecase.NewError(http.StatusBadRequest, "ValidationError", field+" must be a decimal number")
	}
	if amount.IsNegative() {
		return decimal.Zero, usecase.NewError(http.StatusBadRequest, "ValidationError", field+" must not be negative")
	}
	return amount, nil
}

// parseDate 解析日期字符串
func parseDate(field, value string) (time.Time, error) {
	date, err := time.Parse(requestDateLayout, value)
	if err != nil {
		return time.Time{}, usecase.NewError(http.StatusBadRequest, "ValidationError", field+" must be a date in format 2006-01-02")
	}
	return date, nil
}

// parseOptionalAmount 解析可选金额字段，nil 透传
func parseOptionalAmount(field string, value *string) (*decimal.Decimal, error) {
	if value == nil {
		return nil, nil
	}
	amount, err := parseAmount(field, *value)
	if err != nil {
		return nil, err
	}
	return &amount, nil
}

// parseOptionalDate 解析可选日期字段，nil 透传
func parseOptionalDate(field string, value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	date, err := parseDate(field, *value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
