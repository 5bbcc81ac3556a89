package xerr

import "fmt"

// CodeError 自定义错误结构，Code 与 HTTP 状态码保持一致
type CodeError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Error 实现 error 接口
func (e *CodeError) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.Code, e.Message)
}

// New 创建新的 CodeError
func New(code int, msg string) *CodeError {
	return &CodeError{Code: code, Message: msg}
}

// WithData 复制一份错误并附带数据（例如重复申请时返回已存在的 id）
func (e *CodeError) WithData(data any) *CodeError {
	return &CodeError{Code: e.Code, Message: e.Message, Data: data}
}

// 常用通用错误码
const (
	OK                  = 200
	Created             = 201
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	Unprocessable       = 422
	InternalServerError = 500
	ServiceUnavailable  = 503
)

// 常用预定义错误
var (
	ErrSuccess            = New(OK, "Success")
	ErrServerError        = New(InternalServerError, "Internal server error")
	ErrParam              = New(BadRequest, "Invalid parameters")
	ErrUnauthorized       = New(Unauthorized, "Unauthorized")
	ErrNotFound           = New(NotFound, "Not found")
	ErrConflict           = New(Conflict, "Conflict")
	ErrUnprocessable      = New(Unprocessable, "Unprocessable entity")
	ErrServiceUnavailable = New(ServiceUnavailable, "Service unavailable")
)
