package kernel

import (
	"math"
	"strconv"

	"ordermanagement/internal/pkg/errs"
)

// UnsetID is the identity of an order or item that has not been persisted yet.
const UnsetID ID = 0

// ID is a surrogate key assigned by the store on insert. It carries no business
// meaning; the zero value means "not assigned".
type ID int64

// NewID wraps a stored or client-supplied identifier. Only positive values are valid.
//
// Example:
//
//	id, err := kernel.NewID(42)
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
func NewID(value int64) (ID, error) {
	if value < 1 {
		return UnsetID, errs.NewValueIsOutOfRangeError("id", value, 1, int64(math.MaxInt64))
	}
	return ID(value), nil
}

// IsSet reports whether the identifier has been assigned.
func (id ID) IsSet() bool {
	return id > UnsetID
}

// Validate returns an error for an unassigned identifier.
func (id ID) Validate() error {
	if !id.IsSet() {
		return errs.NewValueIsRequiredError("id")
	}
	return nil
}

// Int64 returns the raw key as stored in the database.
func (id ID) Int64() int64 {
	return int64(id)
}

// String formats the id in base 10.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
