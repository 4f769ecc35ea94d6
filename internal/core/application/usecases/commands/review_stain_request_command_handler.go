package commands

import (
	"context"
	"fmt"

	"laundry/internal/core/domain/model/stain"
)

// ReviewStainRequestCommandHandler handles staff decisions on stain-treatment
// requests. Loads the aggregate, applies the decision, and persists the
// result. Decisions that are illegal for the request's current status are
// rejected by the aggregate.
type ReviewStainRequestCommandHandler struct {
	uowFactory StainRequestUoWFactory
}

// NewReviewStainRequestCommandHandler creates a handler for stain-request reviews.
func NewReviewStainRequestCommandHandler(uowFactory StainRequestUoWFactory) ReviewStainRequestCommandHandler {
	return ReviewStainRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review command.
func (h *ReviewStainRequestCommandHandler) Handle(ctx context.Context, cmd ReviewStainRequestCommand) error {
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

	stainRepo := uow.StainRequestRepository()
	aggregate, err := stainRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	if err = applyResolution(aggregate, cmd.Resolution(), cmd.Note()); err != nil {
		return err
	}

	if err = stainRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func applyResolution(aggregate *stain.Request, resolution Resolution, note string) error {
	switch resolution {
	case ResolutionReview:
		return aggregate.Review()
	case ResolutionTreat:
		return aggregate.Treat(note)
	case ResolutionDecline:
		return aggregate.Decline(note)
	default:
		return fmt.Errorf("unsupported resolution %s", resolution)
	}
}
