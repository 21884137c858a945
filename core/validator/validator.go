package validator

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	es_translations "github.com/go-playground/validator/v10/translations/es"
)

// validatorImpl 校验器实现
type validatorImpl struct {
	validator    *validator.Validate
	uni          *ut.UniversalTranslator
	translators  map[string]ut.Translator
	mutex        sync.RWMutex
	enabledLangs []string
	defaultLang  string
}

// Validate 全局校验器实例
var (
	Validate Validator
	once     sync.Once
)

func init() {
	once.Do(func() {
		Validate = New()
	})
}

// New 创建新的校验器实例
func New(opts ...ValidationOption) Validator {
	v := &validatorImpl{
		validator:    validator.New(validator.WithRequiredStructEnabled()),
		translators:  make(map[string]ut.Translator),
		enabledLangs: []string{"es", "en"},
		defaultLang:  "es",
	}

	// 字段名使用 json 标签, 与后端返回的字段路径一致
	v.validator.RegisterTagNameFunc(jsonTagName)

	esLocale := es.New()
	enLocale := en.New()
	v.uni = ut.New(esLocale, esLocale, enLocale)

	for _, opt := range opts {
		opt(v)
	}

	v.initTranslators()

	return v
}

// jsonTagName 返回 json 标签中的字段名, "-" 表示忽略
func jsonTagName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

// initTranslators 初始化翻译器
func (v *validatorImpl) initTranslators() {
	for _, lang := range v.enabledLangs {
		trans, found := v.uni.GetTranslator(lang)
		if !found {
			continue
		}
		switch lang {
		case "es":
			_ = es_translations.RegisterDefaultTranslations(v.validator, trans)
		case "en":
			_ = en_translations.RegisterDefaultTranslations(v.validator, trans)
		default:
			continue
		}
		v.translators[lang] = trans
	}
}

// Struct 校验结构体
func (v *validatorImpl) Struct(s any) error {
	return v.StructCtx(context.Background(), s)
}

// StructCtx 带上下文校验结构体
func (v *validatorImpl) StructCtx(ctx context.Context, s any) error {
	if s == nil {
		return errors.New("validation target cannot be nil")
	}

	err := v.validator.StructCtx(ctx, s)
	if err != nil {
		return v.translateError(err, v.defaultLang)
	}
	return nil
}

// Var 按标签校验单个值
func (v *validatorImpl) Var(field any, tag string) error {
	err := v.validator.Var(field, tag)
	if err != nil {
		return v.translateError(err, v.defaultLang)
	}
	return nil
}

// GetValidator 获取底层的validator实例
func (v *validatorImpl) GetValidator() *validator.Validate {
	return v.validator
}

// translator 返回指定语言的翻译器, 不存在时回退到默认语言
func (v *validatorImpl) translator(lang string) (ut.Translator, bool) {
	v.mutex.RLock()
	defer v.mutex.RUnlock()

	if trans, ok := v.translators[lang]; ok {
		return trans, true
	}
	trans, ok := v.translators[v.defaultLang]
	return trans, ok
}

// translateError 翻译错误
func (v *validatorImpl) translateError(err error, lang string) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	trans, ok := v.translator(lang)
	if !ok {
		return err
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	messages := make([]string, 0, len(validationErrors))

	for _, fe := range validationErrors {
		fieldError := &fieldErrorImpl{
			fieldError:  fe,
			message:     fe.Translate(trans),
			translators: v.translators,
		}
		fieldErrors = append(fieldErrors, fieldError)
		messages = append(messages, fieldError.Message())
	}

	return &validationErrorsImpl{
		fieldErrors: fieldErrors,
		message:     strings.Join(messages, "; "),
	}
}
