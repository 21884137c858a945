package response

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/kochabx/formkit/core/validator"
	"github.com/kochabx/formkit/errors"
)

const (
	// 错误响应常量
	defaultErrorMessage = "service temporarily unavailable"
	defaultErrorCode    = http.StatusServiceUnavailable
)

// DefaultValidationMessage 校验失败报文的默认 message
var DefaultValidationMessage = "La solicitud contiene datos inválidos"

// ErrorBody 错误报文: {"status","error","message"}
type ErrorBody struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// reset 清空所有字段用于对象池复用
func (b *ErrorBody) reset() {
	b.Status = 0
	b.Error = ""
	b.Message = ""
}

// set 根据状态码填充报文
func (b *ErrorBody) set(status int, message string) {
	b.Status = status
	b.Error = http.StatusText(status)
	b.Message = message
}

// 对象池用于复用 ErrorBody 实例
var bodyPool = sync.Pool{
	New: func() any {
		return &ErrorBody{}
	},
}

func acquireBody() *ErrorBody {
	return bodyPool.Get().(*ErrorBody)
}

func releaseBody(b *ErrorBody) {
	if b != nil {
		b.reset()
		bodyPool.Put(b)
	}
}

// JSON 写入 JSON 响应, 204 或 data 为 nil 且状态为 204 时只写状态码
func JSON(c *gin.Context, status int, data any) {
	if c == nil {
		return
	}
	if status == http.StatusNoContent {
		c.Status(status)
		return
	}
	c.JSON(status, data)
}

// Error 写入错误响应, 校验错误转交 ValidationError
func Error(c *gin.Context, err error) {
	if c == nil {
		return
	}

	if validator.IsValidationError(err) {
		ValidationError(c, err)
		return
	}

	body := acquireBody()
	defer releaseBody(body)

	if err == nil {
		body.set(defaultErrorCode, defaultErrorMessage)
		c.AbortWithStatusJSON(defaultErrorCode, body)
		return
	}

	e := errors.FromError(err)
	status := e.Code
	if http.StatusText(status) == "" {
		status = errors.UnknownCode
	}

	body.set(status, e.Message)
	c.AbortWithStatusJSON(status, body)
}

// ValidationError 写入 400 校验失败报文, errors 中的 field 为 json 路径
func ValidationError(c *gin.Context, err error) {
	ValidationErrorWithMessage(c, err, DefaultValidationMessage)
}

// ValidationErrorWithMessage 同 ValidationError, 自定义 message
func ValidationErrorWithMessage(c *gin.Context, err error, message string) {
	if c == nil {
		return
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, validator.ToPayload(err, message))
}

// Bind 解析请求体并校验, 失败时写入错误响应并返回 false
func Bind[T any](c *gin.Context, v validator.Validator) (T, bool) {
	var dst T
	if err := c.ShouldBindJSON(&dst); err != nil {
		Error(c, errors.BadRequest("invalid request body: %v", err))
		return dst, false
	}
	if v == nil {
		return dst, true
	}
	if err := v.StructCtx(c.Request.Context(), &dst); err != nil {
		Error(c, err)
		return dst, false
	}
	return dst, true
}
