package usecase

import (
	"errors"
	"fmt"
	"net/http"
)

// 装配错误：端口未注入属于部署期缺陷，构造用例时立即失败，不参与请求期恢复
var (
	ErrDataAccessNotSet  = errors.New("data access port is not set")
	ErrOutputNotSet      = errors.New("output port is not set")
	ErrEmailSenderNotSet = errors.New("email sender port is not set")
)

// Error 业务错误，携带 HTTP 语义的状态码与对外暴露的异常名称。
// 分发层对 Code < 500 的错误按该状态码渲染，其余走服务端故障路径。
type Error struct {
	Code    int
	Kind    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewError 创建业务错误
func NewError(code int, kind, message string) *Error {
	return &Error{Code: code, Kind: kind, Message: message}
}

// NewNotFoundError 创建 404 业务错误
func NewNotFoundError(kind, message string) *Error {
	return NewError(http.StatusNotFound, kind, message)
}
