package validator

import (
	"context"

	"github.com/go-playground/validator/v10"
)

// Validator 定义校验器接口
type Validator interface {
	// Struct 校验结构体
	Struct(s any) error

	// StructCtx 带上下文校验结构体
	StructCtx(ctx context.Context, s any) error

	// Var 按标签校验单个值
	Var(field any, tag string) error

	// GetValidator 获取底层的validator实例
	GetValidator() *validator.Validate
}

// ValidationErrors 校验错误接口
type ValidationErrors interface {
	error
	// Errors 返回错误列表
	Errors() []FieldError
	// HasErrors 是否有错误
	HasErrors() bool
}

// FieldError 字段错误接口
type FieldError interface {
	// Field 字段名 (json 名称)
	Field() string
	// Path 相对于根结构体的路径, 例如 detalles[0].cantidad
	Path() string
	// Tag 校验标签
	Tag() string
	// Param 标签参数
	Param() string
	// Value 字段值
	Value() any
	// Message 错误消息
	Message() string
	// Translate 翻译错误消息
	Translate(lang string) string
}

// ValidationOption 校验器选项
type ValidationOption func(*validatorImpl)

// WithTagName 设置校验标签名
func WithTagName(tagName string) ValidationOption {
	return func(v *validatorImpl) {
		v.validator.SetTagName(tagName)
	}
}

// WithTranslator 设置启用的翻译语言, 覆盖默认列表
func WithTranslator(langs ...string) ValidationOption {
	return func(v *validatorImpl) {
		if len(langs) > 0 {
			v.enabledLangs = append([]string(nil), langs...)
		}
	}
}

// WithDefaultLang 设置默认语言
func WithDefaultLang(lang string) ValidationOption {
	return func(v *validatorImpl) {
		if lang != "" {
			v.defaultLang = lang
		}
	}
}
