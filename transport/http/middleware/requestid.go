package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/kochabx/formkit/core/util/id"
)

const (
	// HeaderRequestID 请求 ID 头
	HeaderRequestID = "X-Request-ID"

	requestIDKey = "request_id"
)

// RequestID 读取或生成请求 ID, 写入响应头与请求上下文
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if !id.Valid(requestID) {
			requestID = id.Generate()
		}

		c.Set(requestIDKey, requestID)
		c.Request = c.Request.WithContext(id.WithContext(c.Request.Context(), requestID))
		c.Header(HeaderRequestID, requestID)
		c.Next()
	}
}

// GetRequestID 获取当前请求的 ID
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
