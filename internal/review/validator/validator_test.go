package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestValidateFactorNumericStage(t *testing.T) {
	t.Run("nil value is missing", func(t *testing.T) {
		_, fieldErr := ValidateFactor(nil, 2, "aggregate")
		require.NotNil(t, fieldErr)
		assert.Equal(t, "Enter a aggregate factor", fieldErr.Message)
	})

	t.Run("blank value is missing", func(t *testing.T) {
		_, fieldErr := ValidateFactor(strPtr("   "), 2, "charge")
		require.NotNil(t, fieldErr)
		assert.Equal(t, "Enter a charge factor", fieldErr.Message)
	})

	t.Run("unparsable value", func(t *testing.T) {
		_, fieldErr := ValidateFactor(strPtr("a lot"), 2, "aggregate")
		require.NotNil(t, fieldErr)
		assert.Equal(t, "The aggregate factor must be a number", fieldErr.Message)
	})

	t.Run("negative value", func(t *testing.T) {
		_, fieldErr := ValidateFactor(strPtr("-1"), 2, "aggregate")
		require.NotNil(t, fieldErr)
		assert.Equal(t, "The aggregate factor must be greater than 0", fieldErr.Message)
	})

	t.Run("zero passes the range check", func(t *testing.T) {
		value, fieldErr := ValidateFactor(strPtr("0"), 2, "aggregate")
		require.Nil(t, fieldErr)
		assert.True(t, value.IsZero())
	})
}

func TestValidateFactorPrecisionStage(t *testing.T) {
	t.Run("too many decimal places", func(t *testing.T) {
		_, fieldErr := ValidateFactor(strPtr("0.555"), 2, "aggregate")
		require.NotNil(t, fieldErr)
		assert.Equal(t, "The aggregate factor must not have more than 2 decimal places", fieldErr.Message)
	})

	t.Run("exactly at the ceiling passes", func(t *testing.T) {
		value, fieldErr := ValidateFactor(strPtr("0.55"), 2, "aggregate")
		require.Nil(t, fieldErr)
		assert.True(t, value.Equal(decimal.RequireFromString("0.55")))
	})

	t.Run("trailing zeros carry no precision", func(t *testing.T) {
		_, fieldErr := ValidateFactor(strPtr("0.500"), 1, "aggregate")
		assert.Nil(t, fieldErr)
	})

	t.Run("fifteen places survive without precision loss", func(t *testing.T) {
		raw := "0.123456789012345"
		value, fieldErr := ValidateFactor(strPtr(raw), MaxFactorDecimalPlaces, "charge")
		require.Nil(t, fieldErr)
		assert.Equal(t, raw, value.String())
	})

	t.Run("sixteen places fail at the default ceiling", func(t *testing.T) {
		_, fieldErr := ValidateFactor(strPtr("0.1234567890123456"), MaxFactorDecimalPlaces, "charge")
		require.NotNil(t, fieldErr)
		assert.Equal(t, "The charge factor must not have more than 15 decimal places", fieldErr.Message)
	})
}

func TestValidateFactorAccepts(t *testing.T) {
	t.Run("plain decimal", func(t *testing.T) {
		value, fieldErr := ValidateFactor(strPtr("0.5"), MaxFactorDecimalPlaces, "charge")
		require.Nil(t, fieldErr)
		assert.True(t, value.Equal(decimal.NewFromFloat(0.5)))
	})

	t.Run("whole number", func(t *testing.T) {
		value, fieldErr := ValidateFactor(strPtr("1"), 2, "aggregate")
		require.Nil(t, fieldErr)
		assert.True(t, value.Equal(decimal.NewFromInt(1)))
	})

	t.Run("no upper bound is enforced", func(t *testing.T) {
		value, fieldErr := ValidateFactor(strPtr("42"), 2, "aggregate")
		require.Nil(t, fieldErr)
		assert.True(t, value.Equal(decimal.NewFromInt(42)))
	})
}
