package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nameForm struct {
	Name string `validate:"required,min=3,noAllRepeatingChars"`
}

func Test_StructFields_noAllRepeatingChars(t *testing.T) {
	require.NoError(t, StructFields(&nameForm{Name: "Mosaic Bird"}))

	err := StructFields(&nameForm{Name: "aaaaaaaa"})
	require.Error(t, err)

	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Contains(t, fieldErrs[0], "noAllRepeatingChars")
}

func Test_StructFields_collectsEveryFailingField(t *testing.T) {
	type form struct {
		Name    string `validate:"required"`
		Comment string `validate:"max=3"`
	}

	err := StructFields(&form{Comment: "too long"})

	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 2)
}
