package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/order"
)

// SubmitBookingCommandHandler handles the business logic for booking submission.
// Creates a new order from the finalized booking with its price locked in and
// initial "Received" status.
//
// Example:
//
//	handler := NewSubmitBookingCommandHandler(uowFactory)
//	cmd, _ := NewSubmitBookingCommand(kernel.NewUUID(), "Ada Lovelace", request)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("booking submission failed: %w", err)
//	}
//	// Order is now persisted and awaiting pickup
type SubmitBookingCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSubmitBookingCommandHandler creates a handler for booking submission.
// Requires an OrderUoWFactory for transactional persistence.
func NewSubmitBookingCommandHandler(uowFactory OrderUoWFactory) SubmitBookingCommandHandler {
	return SubmitBookingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the booking submission command.
// Constructs the order aggregate in "Received" status and persists it.
// Uses a transaction to ensure the order is properly persisted or rolled back on error.
func (h *SubmitBookingCommandHandler) Handle(ctx context.Context, cmd SubmitBookingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerName(), cmd.Request(), time.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
