package apierror

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFromArray(t *testing.T) {
	d := Inspect([]byte(`{"errors":[
		{"field":" nombre ","message":" vacío "},
		{"campo":"stock","defaultMessage":"negativo"},
		{"field":"nombre","mensaje":"muy corto"},
		{"field":"precio","message":""},
		{"field":"precio","message":"","mensaje":"no se usa"},
		{"field":7,"message":"campo numérico"},
		"Error general",
		"   ",
		{"message":"Sin campo"},
		{"campo":"categoria","message":"requerida"}
	]}`))

	require.Equal(t, []string{"nombre", "stock", "", "categoria"}, d.Fields.Paths())
	assert.Equal(t, []string{"vacío", "muy corto"}, d.Fields.Messages("nombre"))
	assert.Equal(t, []string{"negativo"}, d.Fields.Messages("stock"))
	assert.Equal(t, []string{"Error general"}, d.Fields.Messages(""))
	assert.Equal(t, []string{"requerida"}, d.Fields.Messages("categoria"))

	// entries without a "field" key count as general, even with "campo"
	assert.Equal(t, []string{"Sin campo", "requerida"}, d.General)
	assert.Equal(t, "", d.Message)
}

func TestExtractFromObject(t *testing.T) {
	d := Inspect([]byte(`{"errors":{"stock":["a"," ",null,3],"nombre":"b","vacio":[],"  ":"sin nombre","obj":{"x":1}},"message":"Validación fallida"}`))

	assert.Equal(t, []string{"stock", "nombre"}, d.Fields.Paths())
	assert.Equal(t, []string{"a", "3"}, d.Fields.Messages("stock"))
	assert.Equal(t, []string{"b"}, d.Fields.Messages("nombre"))
	assert.Equal(t, []string{"Validación fallida"}, d.General)
	assert.Equal(t, "Validación fallida", d.Message)
}

func TestExtractIgnoresOtherShapes(t *testing.T) {
	for _, body := range []string{``, `[]`, `{"errors":"texto"}`, `{"errors":null}`, `not json`} {
		d := Inspect([]byte(body))
		assert.Zero(t, d.Fields.Len(), body)
	}

	d := Inspect([]byte(`not json`))
	assert.Equal(t, []string{"not json"}, d.General)
}

func TestOrderedKeys(t *testing.T) {
	assert.Equal(t, []string{"z", "a", "m"}, orderedKeys([]byte(`{"z":1,"a":{"b":[1,2]},"m":null}`)))
	assert.Nil(t, orderedKeys([]byte(`[1]`)))
}
