package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesChain(t *testing.T) {
	root := errors.New("connection refused")
	err := Wrap(root, CodeInternal, "failed to patch charge reference")

	require.Error(t, err)
	assert.True(t, errors.Is(err, root))
	assert.Contains(t, err.Error(), "failed to patch charge reference")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestGetCode(t *testing.T) {
	t.Run("returns the outermost code", func(t *testing.T) {
		inner := New(CodeNotFound, "charge reference not found")
		outer := Wrap(inner, CodeInternal, "submit failed")
		assert.Equal(t, CodeInternal, GetCode(outer))
	})

	t.Run("uncoded errors default to internal", func(t *testing.T) {
		assert.Equal(t, CodeInternal, GetCode(fmt.Errorf("plain")))
	})
}

func TestHasCode(t *testing.T) {
	inner := New(CodeNotFound, "charge reference not found")
	outer := Wrap(inner, CodeInternal, "submit failed")

	assert.True(t, HasCode(outer, CodeInternal))
	assert.True(t, HasCode(outer, CodeNotFound))
	assert.False(t, HasCode(outer, CodeInvalidInput))
	assert.False(t, HasCode(errors.New("plain"), CodeNotFound))
}
