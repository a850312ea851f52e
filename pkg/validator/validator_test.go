package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `validate:"required"`
	Port int    `validate:"min=1,max=65535"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateStruct(sample{Name: "api", Port: 8080}))

	err := ValidateStruct(sample{Port: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sample.Name")
	assert.Contains(t, err.Error(), "Tag: min")
}
