package response

import (
	"errors"
	"fmt"
	"net/http"

	"team-checkin-system/internal/global/sentry"

	"github.com/gin-gonic/gin"
)

// ErrorContextKey 是用于在 gin.Context 中存储错误对象的键
const ErrorContextKey = "error"

// ErrorBody 是失败响应的线上形态，error 为用户可见文案，code 为稳定的错误种类
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Success 直接返回操作结果，不套业务码信封
func Success(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// Fail 按错误自带的 HTTP 状态码返回 {"error": ..., "code": ...}
// 非 *Error 的错误一律按内部错误处理，不向外泄露细节
func Fail(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = ErrInternal.WithOrigin(err)
	}
	c.Set(ErrorContextKey, e)
	sentry.CaptureException(c, e)
	c.JSON(e.Status, ErrorBody{Error: e.Message, Code: e.Kind})
}

// Recovery 捕获 handler panic，返回通用内部错误
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		err, ok := r.(error)
		if !ok {
			err = fmt.Errorf("panic: %v", r)
		}
		Fail(c, ErrInternal.WithOrigin(err))
		c.Abort()
	}
}
