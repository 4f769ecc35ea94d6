package queries

import (
	"errors"
	"time"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrGetOrdersForPickupDateQueryIsNotConstructed = errors.New(
		"GetOrdersForPickupDateQuery must be created via NewGetOrdersForPickupDateQuery constructor",
	)
)

// GetOrdersForPickupDateQuery retrieves the active orders scheduled for
// pickup on one calendar date. Backs the driver's daily route list and the
// pickup reminder job.
type GetOrdersForPickupDateQuery struct {
	date time.Time

	guard guard.ConstructorGuard
}

// NewGetOrdersForPickupDateQuery creates a query for one pickup date.
// The date must be non-zero; only its calendar day is significant.
func NewGetOrdersForPickupDateQuery(date time.Time) (GetOrdersForPickupDateQuery, error) {
	if date.IsZero() {
		return GetOrdersForPickupDateQuery{}, errs.NewValueIsRequiredError("date")
	}

	return GetOrdersForPickupDateQuery{
		date:  date,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersForPickupDateQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersForPickupDateQueryIsNotConstructed)
}

// Date returns the pickup date being queried.
func (q GetOrdersForPickupDateQuery) Date() time.Time {
	return q.date
}
