package apierror

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kochabx/formkit/form"
)

func TestClearKeepsOtherKeys(t *testing.T) {
	f := form.NewField("")
	f.SetErrors(form.Errors{"required": true, BackendKey: "x"})

	ClearFormErrors(f)
	assert.Equal(t, form.Errors{"required": true}, f.Errors())

	f.SetErrors(form.Errors{BackendKey: "x"})
	ClearFormErrors(f)
	assert.Nil(t, f.Errors())
}

func TestClearIsIdempotent(t *testing.T) {
	root := ventaForm()
	cantidad := control(t, root, "detalles[1].cantidad")
	cantidad.SetErrors(cantidad.Errors().With(BackendKey, "x"))
	root.SetErrors(form.Errors{BackendKey: "general"})

	ClearFormErrors(root)
	first := cantidad.Errors()

	assert.NotPanics(t, func() { ClearFormErrors(root) })
	assert.Equal(t, first, cantidad.Errors())
	assert.Equal(t, form.Errors{"noZero": true}, cantidad.Errors())
	assert.Nil(t, root.Errors())
}

func TestClearReachesEveryLevel(t *testing.T) {
	root := ventaForm()
	detalles := control(t, root, "detalles")
	line := control(t, root, "detalles.0")
	for _, c := range []form.Control{root, detalles, line, control(t, root, "detalles.0.productoId")} {
		c.SetErrors(c.Errors().With(BackendKey, "x"))
	}

	ClearFormErrors(root)

	form.Walk(root, func(c form.Control) {
		assert.False(t, c.Errors().Has(BackendKey))
	})
}

func TestClearNil(t *testing.T) {
	assert.NotPanics(t, func() { ClearFormErrors(nil) })
}
