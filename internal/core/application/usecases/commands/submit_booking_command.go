package commands

import (
	"errors"

	"laundry/internal/core/domain/model/booking"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrSubmitBookingCommandIsNotConstructed = errors.New(
		"SubmitBookingCommand must be created via NewSubmitBookingCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
	ErrServiceIsRequired      = errors.New("a selected service is required")
)

// SubmitBookingCommand represents a request to turn a finalized booking into
// a persisted order. Carries the order request produced by the wizard's
// review step plus the checkout details.
//
// Example:
//
//	request, _ := wizard.OrderRequest()
//	cmd, err := NewSubmitBookingCommand(kernel.NewUUID(), "Ada Lovelace", request)
//	if err != nil {
//	    return fmt.Errorf("invalid booking data: %w", err)
//	}
//
//	handler := NewSubmitBookingCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to submit booking: %w", err)
//	}
type SubmitBookingCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerName string
	request      booking.OrderRequest

	guard guard.ConstructorGuard
}

// NewSubmitBookingCommand creates a command to submit a finalized booking.
// Validates that the order ID is valid, the customer name is present, and
// the order request names a service. Full order-request validation happens
// in the order constructor.
func NewSubmitBookingCommand(
	orderID kernel.UUID,
	customerName string,
	request booking.OrderRequest,
) (SubmitBookingCommand, error) {
	bookingCommand := SubmitBookingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bookingCommand.setOrderID(orderID),
		bookingCommand.setCustomerName(customerName),
		bookingCommand.setRequest(request),
	); err != nil {
		return SubmitBookingCommand{}, err
	}

	return bookingCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitBookingCommandIsNotConstructed if validation fails.
func (c SubmitBookingCommand) Validate() error {
	return c.guard.Validate(ErrSubmitBookingCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c SubmitBookingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the name collected at checkout.
func (c SubmitBookingCommand) CustomerName() string {
	return c.customerName
}

// Request returns the finalized order request.
func (c SubmitBookingCommand) Request() booking.OrderRequest {
	return c.request
}

func (c *SubmitBookingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitBookingCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = customerName
	return nil
}

func (c *SubmitBookingCommand) setRequest(request booking.OrderRequest) error {
	if request.ServiceID == "" {
		return ErrServiceIsRequired
	}

	c.request = request
	return nil
}
