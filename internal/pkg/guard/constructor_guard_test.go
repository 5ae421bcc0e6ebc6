package guard_test

import (
	"errors"
	"testing"

	"ordermanagement/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("command not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	var errNotConstructed = errors.New("ResetCommand must be created via NewResetCommand")

	type resetCommand struct {
		guard guard.ConstructorGuard
	}

	newResetCommand := func() resetCommand {
		return resetCommand{guard: guard.NewConstructorGuard()}
	}

	t.Run("constructed_command_is_valid", func(t *testing.T) {
		cmd := newResetCommand()
		require.NoError(t, cmd.guard.Validate(errNotConstructed))
	})

	t.Run("copied_command_stays_valid", func(t *testing.T) {
		cmd := newResetCommand()
		cp := cmd
		require.NoError(t, cp.guard.Validate(errNotConstructed))
	})

	t.Run("zero_value_command_is_rejected", func(t *testing.T) {
		var cmd resetCommand
		assert.Equal(t, errNotConstructed, cmd.guard.Validate(errNotConstructed))
	})
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
