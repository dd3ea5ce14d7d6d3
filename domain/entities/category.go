// Package entities 定义领域实体：仓储读写后构造的纯数据载体，
// 只负责被用例拍平成传输层映射，本身不携带其它行为。
package entities

import "github.com/google/uuid"

// 日期类字段统一使用 ISO-8601 日期格式
const dateLayout = "2006-01-02"

// Category 类别实体（收入类别与支出类别共用同一形状）
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	Image       string // 图标相对路径，可为空
}

// AsMap 拍平为传输层映射
func (c *Category) AsMap() map[string]any {
	return map[string]any{
		"id":          c.ID.String(),
		"name":        c.Name,
		"description": c.Description,
		"image":       c.Image,
	}
}
