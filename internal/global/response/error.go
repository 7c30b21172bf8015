package response

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Error 自定义错误类型，携带 HTTP 状态码、稳定的错误种类标识、
// 用户可见消息、原始错误链和堆栈跟踪。
// Kind 是给调用方做本地化和分支判断用的，Message 只是默认文案。
type Error struct {
	Status  int    `json:"-"`
	Kind    string `json:"code"`
	Message string `json:"error"`
	// cause 保存原始错误，用于 Unwrap() 方法和 Sentry 堆栈提取
	cause error
	// stack 保存堆栈信息，用于 Sentry 堆栈提取
	stack pkgerrors.StackTrace
}

// 预定义错误，状态码和文案与对外接口约定一致
var (
	ErrInvalidRequest   = newError(400, "invalid_request", "请求参数错误")
	ErrMissingFields    = newError(400, "missing_fields", "Missing required fields")
	ErrUnknownMember    = newError(400, "unknown_member", "名单中不存在该成员")
	ErrAlreadyCheckedIn = newError(400, "already_checked_in", "今日已打卡")
	ErrCheckinFailed    = newError(500, "internal", "Check-in failed")
	ErrStatsFailed      = newError(500, "internal", "Failed to fetch stats")
	ErrInternal         = newError(500, "internal", "服务器内部错误")
)

func newError(status int, kind, msg string) *Error {
	return &Error{
		Status:  status,
		Kind:    kind,
		Message: msg,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("status:%d, kind:%s, msg:%s", e.Status, e.Kind, e.Message)
}

// GetCode 返回 HTTP 状态码，实现 sentry.CodedError 接口
func (e *Error) GetCode() int32 {
	return int32(e.Status)
}

// Unwrap 返回原始错误，支持 errors.Unwrap() 和 Sentry 错误链提取
func (e *Error) Unwrap() error {
	return e.cause
}

// StackTrace 返回堆栈跟踪，实现 pkg/errors 的 stackTracer 接口
func (e *Error) StackTrace() pkgerrors.StackTrace {
	if e.stack != nil {
		return e.stack
	}
	if e.cause != nil {
		var st stackTracer
		if errors.As(e.cause, &st) {
			return st.StackTrace()
		}
	}
	return nil
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// WithOrigin 保留原始错误链，以便 Sentry 能够提取堆栈信息
// 原始错误不会出现在对外响应里
func (e *Error) WithOrigin(err error) *Error {
	if err == nil {
		return e
	}

	wrappedErr := ensureStack(err)

	newErr := &Error{
		Status:  e.Status,
		Kind:    e.Kind,
		Message: e.Message,
		cause:   wrappedErr,
	}
	if st, ok := wrappedErr.(stackTracer); ok {
		newErr.stack = st.StackTrace()
	}
	return newErr
}

// WithTips 向前端返回额外的提示信息
func (e *Error) WithTips(tips string) *Error {
	return &Error{
		Status:  e.Status,
		Kind:    e.Kind,
		Message: tips,
		cause:   e.cause,
		stack:   e.stack,
	}
}

// ensureStack 确保错误带有堆栈信息
func ensureStack(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(stackTracer); ok {
		return err
	}
	return pkgerrors.WithStack(err)
}
