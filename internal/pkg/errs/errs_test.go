package errs_test

import (
	"fmt"
	"testing"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("missing order on read", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", kernel.ID(42).String())

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "42", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 42", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("missing order on overwrite keeps the store error", func(t *testing.T) {
		err := errs.NewObjectNotFoundErrorWithCause("order", kernel.ID(7).String(), gorm.ErrRecordNotFound)

		assert.Equal(t,
			"object not found: param is: order, ID is: 7 (cause: record not found)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, gorm.ErrRecordNotFound, err.Cause)
	})

	t.Run("detected through wrapping", func(t *testing.T) {
		err := fmt.Errorf("update status: %w", errs.NewObjectNotFoundError("order", "7"))

		var notFound *errs.ObjectNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "7", notFound.ID)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("non-positive id", func(t *testing.T) {
		_, err := kernel.NewID(0)

		var outOfRange *errs.ValueIsOutOfRangeError
		require.ErrorAs(t, err, &outOfRange)
		assert.Equal(t, "id", outOfRange.ParamName)
		assert.Equal(t, int64(0), outOfRange.Value)
		assert.Equal(t, 1, outOfRange.Min)
		assert.Equal(t,
			"value is invalid: 0 is id, min value is 1, max value is 9223372036854775807",
			err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("negative order id in a create command", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.ID(-3), order.Details{}, nil)

		var outOfRange *errs.ValueIsOutOfRangeError
		require.ErrorAs(t, err, &outOfRange)
		assert.Equal(t, "orderID", outOfRange.ParamName)
		assert.Equal(t, int64(-3), outOfRange.Value)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("values are kept on a single line", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", "1\r\n2", 1, 10)

		assert.Equal(t, "value is invalid: 1 2 is quantity, min value is 1, max value is 10", err.Error())
	})

	t.Run("cause is appended", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("id", int64(-1), 1, 10, gorm.ErrInvalidValue)

		assert.Equal(t, gorm.ErrInvalidValue, err.Cause)
		assert.Equal(t,
			"value is invalid: -1 is id, min value is 1, max value is 10 (cause: invalid value, should be pointer to struct or slice)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("item listed twice", func(t *testing.T) {
		item := order.NewItem("Tea", 1, 450)

		_, err := order.NewOrder(order.Details{}, []*order.Item{item, item})

		var invalid *errs.ValueIsInvalidError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "item", invalid.ParamName)
		require.Error(t, invalid.Cause)
		assert.Equal(t, `value is invalid: item (cause: item "Tea" is listed twice)`, err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("overflowing subtotal", func(t *testing.T) {
		_, err := order.NewOrder(order.Details{}, []*order.Item{order.NewItem("Gold", 10, 1e308)})

		assert.Equal(t,
			`value is invalid: item (cause: subtotal of item "Gold" is not a finite number)`,
			err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("item")

		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: item", err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("unset id", func(t *testing.T) {
		err := kernel.UnsetID.Validate()

		var required *errs.ValueIsRequiredError
		require.ErrorAs(t, err, &required)
		assert.Equal(t, "id", required.ParamName)
		assert.Equal(t, "value is required: id", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("nil item", func(t *testing.T) {
		_, err := order.NewOrder(order.Details{}, []*order.Item{nil})

		assert.Equal(t, "value is required: item", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("cause is appended", func(t *testing.T) {
		err := errs.NewValueIsRequiredErrorWithCause("status", fmt.Errorf("empty body"))

		assert.Equal(t, "value is required: status (cause: empty body)", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
}
