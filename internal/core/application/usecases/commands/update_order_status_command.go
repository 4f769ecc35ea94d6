package commands

import (
	"errors"
	"fmt"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// Transition names an admin-initiated order lifecycle change.
type Transition int

const (
	TransitionUnknown Transition = iota

	// TransitionProcess marks the order as picked up and in the wash.
	TransitionProcess

	// TransitionReady marks the order as finished and queued for delivery.
	TransitionReady

	// TransitionDeliver marks the order as returned to the customer.
	TransitionDeliver

	// TransitionCancel cancels the order.
	TransitionCancel
)

// TransitionFromString parses an admin action name, case-insensitively.
// Accepted values: "process", "ready", "deliver", "cancel".
func TransitionFromString(s string) (Transition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "process":
		return TransitionProcess, nil
	case "ready":
		return TransitionReady, nil
	case "deliver":
		return TransitionDeliver, nil
	case "cancel":
		return TransitionCancel, nil
	default:
		return TransitionUnknown, errs.NewValueIsInvalidErrorWithCause(
			"transition", fmt.Errorf("%q is not a valid order transition", s))
	}
}

// Validate checks if the Transition value is valid.
func (t Transition) Validate() error {
	if t < TransitionProcess || t > TransitionCancel {
		return errs.NewValueIsInvalidErrorWithCause(
			"transition", fmt.Errorf("%d is not a valid order transition", t))
	}
	return nil
}

// String returns the admin action name for the transition.
func (t Transition) String() string {
	switch t {
	case TransitionProcess:
		return "process"
	case TransitionReady:
		return "ready"
	case TransitionDeliver:
		return "deliver"
	case TransitionCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// UpdateOrderStatusCommand represents an admin request to move an order
// through its fulfillment lifecycle or cancel it.
//
// Example:
//
//	cmd, err := NewUpdateOrderStatusCommand(orderID, TransitionProcess)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to update order: %w", err)
//	}
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	transition Transition

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to apply one lifecycle
// transition to an order. Validates the order ID and the transition name;
// whether the transition is legal for the order's current status is decided
// by the aggregate when the command is handled.
func NewUpdateOrderStatusCommand(orderID kernel.UUID, transition Transition) (UpdateOrderStatusCommand, error) {
	statusCommand := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setTransition(transition),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the target order's unique identifier.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Transition returns the lifecycle change to apply.
func (c UpdateOrderStatusCommand) Transition() Transition {
	return c.transition
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setTransition(transition Transition) error {
	if err := transition.Validate(); err != nil {
		return err
	}

	c.transition = transition
	return nil
}
