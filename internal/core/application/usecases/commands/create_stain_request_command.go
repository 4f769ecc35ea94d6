package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrCreateStainRequestCommandIsNotConstructed = errors.New(
		"CreateStainRequestCommand must be created via NewCreateStainRequestCommand constructor",
	)
	ErrGarmentIsRequired     = errors.New("garment is required")
	ErrDescriptionIsRequired = errors.New("description is required")
)

// CreateStainRequestCommand represents a customer request for stain
// treatment, optionally linked to an existing order.
type CreateStainRequestCommand struct { //nolint:recvcheck //using for validation
	requestID   kernel.UUID
	orderID     *kernel.UUID
	garment     string
	description string

	guard guard.ConstructorGuard
}

// NewCreateStainRequestCommand creates a command to file a stain-treatment
// request. The order ID is optional; when present it must be a valid UUID
// and is checked for existence when the command is handled.
func NewCreateStainRequestCommand(
	requestID kernel.UUID,
	orderID *kernel.UUID,
	garment, description string,
) (CreateStainRequestCommand, error) {
	stainCommand := CreateStainRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		stainCommand.setRequestID(requestID),
		stainCommand.setOrderID(orderID),
		stainCommand.setGarment(garment),
		stainCommand.setDescription(description),
	); err != nil {
		return CreateStainRequestCommand{}, err
	}

	return stainCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStainRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateStainRequestCommandIsNotConstructed)
}

// RequestID returns the unique identifier for the new request.
func (c CreateStainRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// OrderID returns the linked order's ID, or nil for walk-in requests.
func (c CreateStainRequestCommand) OrderID() *kernel.UUID {
	return c.orderID
}

// Garment returns the garment description.
func (c CreateStainRequestCommand) Garment() string {
	return c.garment
}

// Description returns the stain description.
func (c CreateStainRequestCommand) Description() string {
	return c.description
}

func (c *CreateStainRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *CreateStainRequestCommand) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateStainRequestCommand) setGarment(garment string) error {
	if garment == "" {
		return ErrGarmentIsRequired
	}

	c.garment = garment
	return nil
}

func (c *CreateStainRequestCommand) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}

	c.description = description
	return nil
}
