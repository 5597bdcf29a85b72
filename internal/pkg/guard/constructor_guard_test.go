package guard_test

import (
	"errors"
	"testing"

	"logistics/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("stop not constructed")

	t.Run("constructed_guard_accepts_any_error", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	errStopNotConstructed := errors.New("Stop must be created via newStop")

	type stop struct {
		order int
		city  string
		guard guard.ConstructorGuard
	}

	newStop := func(order int, city string) (stop, error) {
		if order <= 0 {
			return stop{}, errors.New("stop order must be positive")
		}
		return stop{order: order, city: city, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_built_value_is_valid", func(t *testing.T) {
		s, err := newStop(1, "Boston")

		require.NoError(t, err)
		require.NoError(t, s.guard.Validate(errStopNotConstructed))
		assert.Equal(t, "Boston", s.city)
	})

	t.Run("literal_value_is_rejected", func(t *testing.T) {
		s := stop{order: 1, city: "Boston"}

		assert.Equal(t, errStopNotConstructed, s.guard.Validate(errStopNotConstructed))
	})

	t.Run("constructor_enforces_its_own_rules", func(t *testing.T) {
		_, err := newStop(0, "Boston")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be positive")
	})
}
