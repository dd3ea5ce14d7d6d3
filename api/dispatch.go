// Package api 实现记账协议的 HTTP 层：请求绑定、按动词分发、
// 统一的错误与未找到渲染。业务语义全部委托给 usecase 包。
package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"gammabudget/domain/usecase"
)

// mustUseCase 装配用例，端口缺失属于部署缺陷，直接终止进程
func mustUseCase[T any](uc T, err error) T {
	if err != nil {
		logrus.Fatalf("装配用例失败: %v", err)
	}
	return uc
}

// pathUserID 解析路径中的 user_id，非整数返回 400 业务错误
func pathUserID(c *gin.Context) (int64, error) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		return 0, usecase.NewError(http.StatusBadRequest, "InvalidUserID", "user_id must be an integer")
	}
	return userID, nil
}

// pathID 解析路径中的记录 ID，非 UUID 返回 400 业务错误
func pathID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, usecase.NewError(http.StatusBadRequest, "InvalidID", "id must be a valid UUID")
	}
	return id, nil
}

// renderOutput 渲染用例输出：空载荷统一渲染协议约定的 404
func renderOutput(c *gin.Context, out usecase.Output) {
	data := out.Data()
	if data == nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "object not found"})
		return
	}
	c.JSON(http.StatusOK, absoluteImageURLs(c, data))
}

// renderError 渲染用例错误：带状态码的业务错误按其语义返回，
// 其余一律按服务端故障处理且不外泄内部细节
func renderError(c *gin.Context, err error) {
	var ucErr *usecase.Error
	if errors.As(err, &ucErr) && ucErr.Code < http.StatusInternalServerError {
		c.JSON(ucErr.Code, gin.H{
			"detail":         ucErr.Message,
			"exception_name": ucErr.Kind,
		})
		return
	}
	logrus.Errorf("请求处理失败 %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"detail": SafeErrorMessage(err, "internal server error"),
	})
}

// renderBindingError 渲染请求体校验失败，按字段给出错误明细
func renderBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		detail := map[string]string{}
		for _, fe := range verrs {
			detail[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, gin.H{"detail": detail})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
}

// GetDispatcher 查询类端点分发器，Invoke 负责解析路径参数并执行用例
type GetDispatcher struct {
	Invoke func(c *gin.Context) (usecase.Output, error)
}

func (d GetDispatcher) Handle(c *gin.Context) {
	out, err := d.Invoke(c)
	if err != nil {
		renderError(c, err)
		return
	}
	renderOutput(c, out)
}

// CreateDispatcher 创建类端点分发器：绑定请求体后执行用例
type CreateDispatcher[Req any] struct {
	Execute func(userID int64, req Req) (usecase.Output, error)
}

func (d CreateDispatcher[Req]) Handle(c *gin.Context) {
	userID, err := pathUserID(c)
	if err != nil {
		renderError(c, err)
		return
	}
	var req Req
	if err := c.ShouldBindJSON(&req); err != nil {
		renderBindingError(c, err)
		return
	}
	out, err := d.Execute(userID, req)
	if err != nil {
		renderError(c, err)
		return
	}
	renderOutput(c, out)
}

// UpdateDispatcher 更新类端点分发器，PUT 与 PATCH 共用
type UpdateDispatcher[Req any] struct {
	Execute func(userID int64, id uuid.UUID, req Req) (usecase.Output, error)
}

func (d UpdateDispatcher[Req]) Handle(c *gin.Context) {
	userID, err := pathUserID(c)
	if err != nil {
		renderError(c, err)
		return
	}
	id, err := pathID(c)
	if err != nil {
		renderError(c, err)
		return
	}
	var req Req
	if err := c.ShouldBindJSON(&req); err != nil {
		renderBindingError(c, err)
		return
	}
	out, err := d.Execute(userID, id, req)
	if err != nil {
		renderError(c, err)
		return
	}
	renderOutput(c, out)
}

// DeleteDispatcher 删除类端点分发器
type DeleteDispatcher struct {
	Execute func(userID int64, id uuid.UUID) (usecase.Output, error)
}

func (d DeleteDispatcher) Handle(c *gin.Context) {
	userID, err := pathUserID(c)
	if err != nil {
		renderError(c, err)
		return
	}
	id, err := pathID(c)
	if err != nil {
		renderError(c, err)
		return
	}
	out, err := d.Execute(userID, id)
	if err != nil {
		renderError(c, err)
		return
	}
	renderOutput(c, out)
}
