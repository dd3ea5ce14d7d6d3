package api

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// absoluteImageURLs 递归遍历响应载荷，把其中的 image 字段从相对路径
// 改写为基于当前请求的绝对地址。空路径改写为 null，已经是绝对地址的
// 原样保留。原地修改并返回同一载荷。
func absoluteImageURLs(c *gin.Context, payload any) any {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	base := scheme + "://" + c.Request.Host
	return rewriteImageFields(payload, base)
}

func rewriteImageFields(value any, base string) any {
	switch v := value.(type) {
	case map[string]any:
		for key, item := range v {
			if key == "image" {
				v[key] = rewriteImagePath(item, base)
				continue
			}
			v[key] = rewriteImageFields(item, base)
		}
		return v
	case []map[string]any:
		for _, item := range v {
			rewriteImageFields(item, base)
		}
		return v
	case []any:
		for i, item := range v {
			v[i] = rewriteImageFields(item, base)
		}
		return v
	default:
		return value
	}
}

func rewriteImagePath(value any, base string) any {
	path, ok := value.(string)
	if !ok {
		return value
	}
	if path == "" {
		return nil
	}
	if strings.Contains(path, "://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}
