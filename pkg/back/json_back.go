package back

import (
	"JobTracker/pkg/xerr"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Result 统一返回入口
func Result(c *gin.Context, data any, err error) {
	if err == nil {
		Success(c, data)
		return
	}

	// 判断是否为自定义错误
	var e *xerr.CodeError
	if errors.As(err, &e) {
		c.JSON(status(e.Code), Response{Code: e.Code, Message: e.Message, Data: e.Data})
		return
	}

	// 默认为系统错误
	Error(c, xerr.ErrServerError.Code, xerr.ErrServerError.Message)
}

// Success 成功返回
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code:    xerr.OK,
		Message: "Success",
		Data:    data,
	})
}

// Created 新建资源成功返回
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{
		Code:    xerr.Created,
		Message: "Created",
		Data:    data,
	})
}

// Error 错误返回
func Error(c *gin.Context, code int, message string) {
	c.JSON(status(code), Response{
		Code:    code,
		Message: message,
	})
}

func status(code int) int {
	if code < 100 || code > 599 {
		return http.StatusInternalServerError
	}
	return code
}
