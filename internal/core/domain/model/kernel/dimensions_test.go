package kernel_test

import (
	"math"
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDimensions(t *testing.T) {
	t.Run("should compute volume from edges", func(t *testing.T) {
		dims, err := kernel.NewDimensions(10, 10, 5, 4)

		require.NoError(t, err)
		require.NoError(t, dims.Validate())
		assert.InDelta(t, 10.0, dims.Weight(), 1e-9)
		assert.InDelta(t, 200.0, dims.Volume(), 1e-9)
	})

	t.Run("should accept zero measures", func(t *testing.T) {
		dims, err := kernel.NewDimensions(0, 0, 0, 0)

		require.NoError(t, err)
		assert.Zero(t, dims.Volume())
	})

	t.Run("should reject negative measures", func(t *testing.T) {
		_, err := kernel.NewDimensions(-1, 1, 1, 1)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "weight")
	})

	t.Run("should join every failure", func(t *testing.T) {
		_, err := kernel.NewDimensions(1, -2, math.NaN(), math.Inf(1))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "length")
		assert.Contains(t, err.Error(), "width")
		assert.Contains(t, err.Error(), "height")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject zero value", func(t *testing.T) {
		var dims kernel.Dimensions

		assert.Equal(t, kernel.ErrDimensionsAreNotConstructed, dims.Validate())
	})
}
