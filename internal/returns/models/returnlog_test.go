package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStoredStatus(t *testing.T) {
	for _, raw := range []string{"due", "received", "completed", "void"} {
		parsed, err := ParseStoredStatus(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, raw, parsed.String())
	}

	_, err := ParseStoredStatus("")
	assert.Error(t, err)

	_, err = ParseStoredStatus("submitted")
	assert.Error(t, err)
}
