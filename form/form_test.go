package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kochabx/formkit/core/validator"
)

// newVentaForm builds {metodoPago, detalles: [{productoId, cantidad}, ...]}.
func newVentaForm(lines int) (*Group, *Array) {
	detalles := NewArray()
	for i := 0; i < lines; i++ {
		detalles.Push(NewGroup().
			Add("productoId", NewField(int64(i+1), Required)).
			Add("cantidad", NewField(1, Required, NotZero)))
	}
	root := NewGroup().
		Add("metodoPago", NewField("", Required)).
		Add("detalles", detalles)
	return root, detalles
}

func TestErrorsHelpers(t *testing.T) {
	var empty Errors
	assert.False(t, empty.Has("x"))
	assert.Nil(t, empty.Without("x"))

	e := empty.With("required", true)
	assert.True(t, e.Has("required"))
	assert.Nil(t, empty)

	e2 := e.With(BackendKey, "msg")
	assert.Equal(t, []string{BackendKey, "required"}, e2.Keys())
	assert.Equal(t, Errors{"required": true}, e2.Without(BackendKey))
	assert.Nil(t, e.Without("required"))
	assert.True(t, e2.Has(BackendKey))
}

func TestFieldValidation(t *testing.T) {
	f := NewField("", Required)
	assert.Equal(t, Errors{"required": true}, f.Errors())
	assert.False(t, f.Valid())

	f.SetValue("Cuaderno")
	assert.Nil(t, f.Errors())
	assert.True(t, f.Valid())
}

func TestSetErrorsNormalizesEmpty(t *testing.T) {
	f := NewField("x")
	f.SetErrors(Errors{})
	assert.Nil(t, f.Errors())

	f.SetErrors(Errors{BackendKey: "bad"})
	assert.False(t, f.Valid())
}

func TestUpdateKeepsBackend(t *testing.T) {
	f := NewField("", Required)
	f.SetErrors(f.Errors().With(BackendKey, "no puede estar vacío"))

	f.UpdateValueAndValidity(OnlySelf())
	assert.Equal(t, Errors{"required": true, BackendKey: "no puede estar vacío"}, f.Errors())
}

func TestSetValueClearsBackend(t *testing.T) {
	f := NewField("a", Required)
	f.SetErrors(Errors{BackendKey: "duplicado"})

	f.SetValue("b")
	assert.Nil(t, f.Errors())
}

func TestReset(t *testing.T) {
	f := NewField(3, NotZero)
	f.MarkAsTouched()
	f.SetValue(0)
	assert.Equal(t, Errors{"noZero": true}, f.Errors())

	f.Reset()
	assert.Equal(t, 3, f.Value())
	assert.False(t, f.Touched())
	assert.Nil(t, f.Errors())
}

func TestGroupAndArray(t *testing.T) {
	root, detalles := newVentaForm(2)

	assert.Equal(t, []string{"metodoPago", "detalles"}, root.Names())
	assert.Equal(t, 2, detalles.Len())
	assert.False(t, root.Valid())

	metodo, ok := root.Get("metodoPago")
	require.True(t, ok)
	metodo.(*Field).SetValue("EFECTIVO")
	assert.True(t, root.Valid())

	value := root.Value().(map[string]any)
	assert.Equal(t, "EFECTIVO", value["metodoPago"])
	assert.Len(t, value["detalles"], 2)

	line, ok := detalles.At(1)
	require.True(t, ok)
	assert.Same(t, detalles, line.Parent())

	assert.True(t, detalles.RemoveAt(0))
	assert.Equal(t, 1, detalles.Len())
	assert.False(t, detalles.RemoveAt(5))

	detalles.Clear()
	assert.Equal(t, 0, detalles.Len())
	assert.Nil(t, line.Parent())

	assert.True(t, root.Remove("detalles"))
	assert.False(t, root.Remove("detalles"))
	assert.Equal(t, []string{"metodoPago"}, root.Names())
}

func TestGroupAddReplaces(t *testing.T) {
	old := NewField("a")
	g := NewGroup().Add("nombre", old).Add("nombre", NewField("b"))

	assert.Equal(t, []string{"nombre"}, g.Names())
	assert.Nil(t, old.Parent())
	assert.Equal(t, map[string]any{"nombre": "b"}, g.Value())
}

func TestGet(t *testing.T) {
	root, _ := newVentaForm(3)

	c, ok := Get(root, Name("detalles"), Index(2), Name("cantidad"))
	require.True(t, ok)
	assert.Equal(t, 1, c.Value())

	got, ok := Get(root)
	require.True(t, ok)
	assert.Same(t, root, got)

	_, ok = Get(root, Name("detalles"), Index(3))
	assert.False(t, ok, "out of range")

	_, ok = Get(root, Name("detalles"), Name("cantidad"))
	assert.False(t, ok, "array lookup by name")

	_, ok = Get(root, Name("metodoPago"), Name("x"))
	assert.False(t, ok, "leaf has no children")

	_, ok = Get(root, Index(-1))
	assert.False(t, ok)
}

func TestGroupIndexLookup(t *testing.T) {
	g := NewGroup().Add("0", NewField("cero"))

	c, ok := Get(g, Index(0))
	require.True(t, ok)
	assert.Equal(t, "cero", c.Value())
	assert.Equal(t, "[0]", Index(0).String())
	assert.Equal(t, "0", Index(0).Key())
	assert.Equal(t, "nombre", Name("nombre").String())
}

func TestWalkChildrenFirst(t *testing.T) {
	a := NewField("a")
	b := NewField("b")
	inner := NewGroup().Add("b", b)
	root := NewGroup().Add("a", a).Add("inner", inner)

	var seen []Control
	Walk(root, func(c Control) { seen = append(seen, c) })

	require.Len(t, seen, 4)
	assert.Same(t, a, seen[0])
	assert.Same(t, b, seen[1])
	assert.Same(t, inner, seen[2])
	assert.Same(t, root, seen[3])

	Walk(nil, func(Control) { t.Fatal("called on nil") })
}

func TestPropagation(t *testing.T) {
	calls := 0
	counting := func(Control) Errors {
		calls++
		return nil
	}
	root := NewGroup(counting)
	f := NewField("x")
	root.Add("f", f)
	calls = 0

	f.UpdateValueAndValidity(OnlySelf())
	assert.Equal(t, 0, calls)

	f.UpdateValueAndValidity()
	assert.Equal(t, 1, calls)
}

func TestTouched(t *testing.T) {
	f := NewField(nil)
	assert.False(t, f.Touched())
	f.MarkAsTouched()
	assert.True(t, f.Touched())
	f.MarkAsUntouched()
	assert.False(t, f.Touched())
}

func TestValidators(t *testing.T) {
	tests := []struct {
		name  string
		fn    ValidatorFn
		value any
		want  Errors
	}{
		{"required nil", Required, nil, Errors{"required": true}},
		{"required blank", Required, "  ", Errors{"required": true}},
		{"required empty slice", Required, []any{}, Errors{"required": true}},
		{"required ok", Required, 0, nil},
		{"min below", Min(1), 0, Errors{"min": map[string]any{"min": 1.0, "actual": 0.0}}},
		{"min ok", Min(1), "2", nil},
		{"min empty", Min(1), "", nil},
		{"nozero zero", NotZero, 0, Errors{"noZero": true}},
		{"nozero zero string", NotZero, "0", Errors{"noZero": true}},
		{"nozero float", NotZero, 0.5, nil},
		{"nozero empty", NotZero, nil, nil},
		{"nozero text", NotZero, "abc", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(NewField(tt.value)))
		})
	}
}

func TestTagValidator(t *testing.T) {
	v := validator.New()

	f := NewField(0, Tag(v, "gt=0"))
	require.True(t, f.Errors().Has("gt"))
	assert.NotEmpty(t, f.Errors()["gt"])

	f.SetValue(4)
	assert.Nil(t, f.Errors())
}
