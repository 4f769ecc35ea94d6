package commands

import (
	"context"
	"fmt"

	"laundry/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler handles admin lifecycle changes to orders.
// Loads the aggregate, applies the requested transition, and persists the
// result. Illegal transitions are rejected by the aggregate and leave the
// stored order untouched.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status updates.
// Requires an OrderUoWFactory for transactional persistence.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = applyTransition(aggregate, cmd.Transition()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func applyTransition(aggregate *order.Order, transition Transition) error {
	switch transition {
	case TransitionProcess:
		return aggregate.StartProcessing()
	case TransitionReady:
		return aggregate.MarkReady()
	case TransitionDeliver:
		return aggregate.Deliver()
	case TransitionCancel:
		return aggregate.Cancel()
	default:
		return fmt.Errorf("unsupported transition %s", transition)
	}
}
