package serverutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Message string `validate:"required"`
	Limit   int    `validate:"omitempty,min=1,max=100"`
}

func TestValidateRequest(t *testing.T) {
	err := ValidateRequest(&sampleRequest{Message: "hello", Limit: 10})
	assert.NoError(t, err)

	err = ValidateRequest(&sampleRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "Message")
	assert.Contains(t, err.Error(), "required")

	err = ValidateRequest(&sampleRequest{Message: "hello", Limit: 500})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Limit")
	assert.Contains(t, err.Error(), "max")
}
