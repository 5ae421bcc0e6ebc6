package kernel_test

import (
	"math"
	"testing"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	tests := []struct {
		name    string
		value   int64
		wantErr bool
	}{
		{name: "first id", value: 1},
		{name: "regular id", value: 42},
		{name: "max id", value: math.MaxInt64},
		{name: "zero is unset", value: 0, wantErr: true},
		{name: "negative", value: -3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := kernel.NewID(tt.value)

			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				assert.Equal(t, kernel.UnsetID, id)
				assert.False(t, id.IsSet())
				return
			}

			require.NoError(t, err)
			assert.True(t, id.IsSet())
			assert.Equal(t, tt.value, id.Int64())
		})
	}
}

func TestID_Validate(t *testing.T) {
	t.Run("unset id is required", func(t *testing.T) {
		err := kernel.UnsetID.Validate()

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, "value is required: id", err.Error())
	})

	t.Run("assigned id is valid", func(t *testing.T) {
		id, _ := kernel.NewID(7)

		require.NoError(t, id.Validate())
		assert.Equal(t, "7", id.String())
	})
}
