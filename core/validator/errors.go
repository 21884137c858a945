package validator

import (
	"errors"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// validationErrorsImpl 校验错误实现
type validationErrorsImpl struct {
	fieldErrors []FieldError
	message     string
}

// Error 返回错误信息
func (ve *validationErrorsImpl) Error() string {
	return ve.message
}

// Errors 返回错误列表
func (ve *validationErrorsImpl) Errors() []FieldError {
	return ve.fieldErrors
}

// HasErrors 是否有错误
func (ve *validationErrorsImpl) HasErrors() bool {
	return len(ve.fieldErrors) > 0
}

// fieldErrorImpl 字段错误实现
type fieldErrorImpl struct {
	fieldError  validator.FieldError
	message     string
	translators map[string]ut.Translator
}

// Field 字段名
func (fe *fieldErrorImpl) Field() string {
	return fe.fieldError.Field()
}

// Path 去掉根结构体名称后的命名空间
func (fe *fieldErrorImpl) Path() string {
	ns := fe.fieldError.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.fieldError.Field()
}

// Tag 校验标签
func (fe *fieldErrorImpl) Tag() string {
	return fe.fieldError.Tag()
}

// Param 标签参数
func (fe *fieldErrorImpl) Param() string {
	return fe.fieldError.Param()
}

// Value 字段值
func (fe *fieldErrorImpl) Value() any {
	return fe.fieldError.Value()
}

// Message 错误消息
func (fe *fieldErrorImpl) Message() string {
	return fe.message
}

// Translate 翻译错误消息
func (fe *fieldErrorImpl) Translate(lang string) string {
	if trans, exists := fe.translators[lang]; exists {
		return fe.fieldError.Translate(trans)
	}
	return fe.message
}

// ValidationResult 校验结果
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError 校验错误详情, 字段为 json 路径
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   any    `json:"value"`
	Message string `json:"message"`
}

// AsValidationErrors 从错误链中取出校验错误
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// ToValidationResult 将错误转换为校验结果
func ToValidationResult(err error) *ValidationResult {
	if err == nil {
		return &ValidationResult{Valid: true}
	}

	result := &ValidationResult{Valid: false}

	if validationErr, ok := AsValidationErrors(err); ok {
		for _, fieldErr := range validationErr.Errors() {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fieldErr.Path(),
				Tag:     fieldErr.Tag(),
				Value:   fieldErr.Value(),
				Message: fieldErr.Message(),
			})
		}
	}

	return result
}

// Payload 校验失败时返回给客户端的报文: {"message": ..., "errors": [{"field","message"}]}
type Payload struct {
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors"`
}

// ToPayload 将校验错误转换为报文, 非校验错误返回只含 message 的报文
func ToPayload(err error, message string) Payload {
	p := Payload{Message: message, Errors: []ValidationError{}}
	if err == nil {
		return p
	}
	if result := ToValidationResult(err); len(result.Errors) > 0 {
		p.Errors = result.Errors
	} else if p.Message == "" {
		p.Message = err.Error()
	}
	return p
}

// ErrorsToString 将错误列表转换为字符串
func ErrorsToString(errors []FieldError, separator string) string {
	if len(errors) == 0 {
		return ""
	}

	if separator == "" {
		separator = "; "
	}

	messages := make([]string, 0, len(errors))
	for _, err := range errors {
		messages = append(messages, err.Message())
	}

	return strings.Join(messages, separator)
}

// GetFieldErrorMessage 获取指定路径的错误消息
func GetFieldErrorMessage(err error, path string) string {
	if validationErr, ok := AsValidationErrors(err); ok {
		for _, fieldErr := range validationErr.Errors() {
			if fieldErr.Path() == path {
				return fieldErr.Message()
			}
		}
	}
	return ""
}

// HasFieldError 检查是否存在指定路径的错误
func HasFieldError(err error, path string) bool {
	if validationErr, ok := AsValidationErrors(err); ok {
		for _, fieldErr := range validationErr.Errors() {
			if fieldErr.Path() == path {
				return true
			}
		}
	}
	return false
}

// IsValidationError 检查是否为校验错误
func IsValidationError(err error) bool {
	_, ok := AsValidationErrors(err)
	return ok
}
