package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/stain"
)

// CreateStainRequestCommandHandler handles stain-treatment request filing.
// When the request is linked to an order, the order's existence is verified
// inside the same transaction before the request is persisted.
type CreateStainRequestCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateStainRequestCommandHandler creates a handler for stain-request filing.
// Requires a cross-aggregate UoWFactory since linked orders are verified.
func NewCreateStainRequestCommandHandler(uowFactory UoWFactory) CreateStainRequestCommandHandler {
	return CreateStainRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stain-request creation command.
func (h *CreateStainRequestCommandHandler) Handle(ctx context.Context, cmd CreateStainRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	request, err := stain.NewRequest(
		cmd.RequestID(), cmd.OrderID(), cmd.Garment(), cmd.Description(), time.Now())
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

	if orderID := cmd.OrderID(); orderID != nil {
		if _, err = uow.OrderRepository().Get(ctx, *orderID); err != nil {
			return err
		}
	}

	if err = uow.StainRequestRepository().Add(ctx, request); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
