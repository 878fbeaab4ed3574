package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `validate:"required"`
	Count int    `validate:"gte=0"`
}

func TestValidateStruct(t *testing.T) {
	errs := ValidateStruct(sample{Name: "ok", Count: 1})
	assert.Empty(t, errs)

	errs = ValidateStruct(sample{Count: -1})
	require.Len(t, errs, 2)
	assert.Equal(t, "required", errs[0].Tag)
	assert.Equal(t, "gte", errs[1].Tag)
}

func TestFirstError(t *testing.T) {
	assert.Empty(t, FirstError(nil))

	errs := ValidateStruct(sample{Name: "ok", Count: -1})
	require.Len(t, errs, 1)
	assert.Equal(t, "field 'sample.Count' failed on tag 'gte'", FirstError(errs))
}
