package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDetalle struct {
	ProductoID *int64 `json:"productoId" validate:"required"`
	Cantidad   int    `json:"cantidad" validate:"gt=0"`
}

type testVenta struct {
	MetodoPago string        `json:"metodoPago" validate:"required"`
	Detalles   []testDetalle `json:"detalles" validate:"required,min=1,dive"`
	Interno    string        `json:"-" validate:"omitempty,max=3"`
}

func ptr[T any](v T) *T { return &v }

// TestValidatorCreation 测试校验器创建
func TestValidatorCreation(t *testing.T) {
	assert.NotNil(t, Validate)
	assert.NotNil(t, New())
	assert.NotNil(t, New(
		WithTagName("validate"),
		WithTranslator("en", "es"),
		WithDefaultLang("en"),
	))
}

func TestValidStruct(t *testing.T) {
	v := New()

	venta := testVenta{
		MetodoPago: "EFECTIVO",
		Detalles:   []testDetalle{{ProductoID: ptr(int64(1)), Cantidad: 2}},
	}
	assert.NoError(t, v.Struct(&venta))
}

func TestNilTarget(t *testing.T) {
	assert.Error(t, New().Struct(nil))
}

// TestValidationPaths 测试 json 路径
func TestValidationPaths(t *testing.T) {
	v := New()

	venta := testVenta{
		Detalles: []testDetalle{
			{ProductoID: ptr(int64(1)), Cantidad: 1},
			{Cantidad: 0},
		},
	}

	err := v.Struct(&venta)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	assert.True(t, HasFieldError(err, "metodoPago"))
	assert.True(t, HasFieldError(err, "detalles[1].productoId"))
	assert.True(t, HasFieldError(err, "detalles[1].cantidad"))
	assert.False(t, HasFieldError(err, "detalles[0].cantidad"))

	result := ToValidationResult(err)
	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 3)

	fields := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		fields = append(fields, e.Field)
		assert.NotEmpty(t, e.Message)
	}
	assert.Contains(t, fields, "detalles[1].cantidad")
}

func TestTranslations(t *testing.T) {
	venta := testVenta{Detalles: []testDetalle{{ProductoID: ptr(int64(1)), Cantidad: 1}}}

	err := New().Struct(&venta)
	require.Error(t, err)
	ve, ok := AsValidationErrors(err)
	require.True(t, ok)
	require.Len(t, ve.Errors(), 1)

	fe := ve.Errors()[0]
	assert.Equal(t, "metodoPago", fe.Field())
	assert.Equal(t, "required", fe.Tag())
	assert.Contains(t, fe.Message(), "requerido")
	assert.Contains(t, fe.Translate("en"), "required")
	assert.Equal(t, fe.Message(), fe.Translate("fr"))

	enErr := New(WithDefaultLang("en")).Struct(&venta)
	assert.Contains(t, enErr.Error(), "required")
}

func TestVar(t *testing.T) {
	v := New()

	assert.NoError(t, v.Var(5, "gt=0"))

	err := v.Var(0, "gt=0")
	require.Error(t, err)
	ve, ok := AsValidationErrors(err)
	require.True(t, ok)
	assert.Equal(t, "gt", ve.Errors()[0].Tag())
	assert.Equal(t, "0", ve.Errors()[0].Param())
}

func TestHelpers(t *testing.T) {
	err := New().Struct(&testVenta{})
	require.Error(t, err)

	ve, _ := AsValidationErrors(err)
	assert.NotEmpty(t, ErrorsToString(ve.Errors(), ""))
	assert.NotEmpty(t, GetFieldErrorMessage(err, "metodoPago"))
	assert.Empty(t, GetFieldErrorMessage(err, "nada"))
	assert.Equal(t, "", ErrorsToString(nil, ";"))
	assert.True(t, ToValidationResult(nil).Valid)
}

func TestToPayload(t *testing.T) {
	err := New().Struct(&testVenta{MetodoPago: "EFECTIVO", Detalles: []testDetalle{{Cantidad: 1}}})
	require.Error(t, err)

	p := ToPayload(err, "Solicitud inválida")
	assert.Equal(t, "Solicitud inválida", p.Message)
	require.Len(t, p.Errors, 1)
	assert.Equal(t, "detalles[0].productoId", p.Errors[0].Field)

	plain := ToPayload(assert.AnError, "")
	assert.Equal(t, assert.AnError.Error(), plain.Message)
	assert.Empty(t, plain.Errors)
}
