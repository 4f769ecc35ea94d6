package commands_test

import (
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/stain"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedRequest(t *testing.T, id kernel.UUID, status stain.Status) *stain.Request {
	t.Helper()
	aggregate, err := stain.RestoreRequest(
		id, nil, "White shirt", "Red wine on the sleeve", status, "", time.Now())
	require.NoError(t, err)
	return aggregate
}

func TestReviewStainRequestCommandHandler_Handle_Review(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewReviewStainRequestCommand(id, commands.ResolutionReview, "")
	aggregate := storedRequest(t, id, stain.Submitted)

	repo := new(MockStainRequestRepository)
	uow := new(MockStainRequestUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StainRequestRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStainRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewStainRequestCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, stain.Reviewed, aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestReviewStainRequestCommandHandler_Handle_Treat(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewReviewStainRequestCommand(id, commands.ResolutionTreat, "Pre-treated and washed cold")
	aggregate := storedRequest(t, id, stain.Reviewed)

	repo := new(MockStainRequestRepository)
	uow := new(MockStainRequestUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StainRequestRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStainRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewStainRequestCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, stain.Treated, aggregate.Status())
	assert.Equal(t, "Pre-treated and washed cold", aggregate.ResolutionNote())
}

func TestReviewStainRequestCommandHandler_Handle_DeclineWithoutNote(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewReviewStainRequestCommand(id, commands.ResolutionDecline, "")
	aggregate := storedRequest(t, id, stain.Reviewed)

	repo := new(MockStainRequestRepository)
	uow := new(MockStainRequestUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StainRequestRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStainRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewStainRequestCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, stain.Reviewed, aggregate.Status())
}

func TestReviewStainRequestCommandHandler_Handle_RequestNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewReviewStainRequestCommand(id, commands.ResolutionReview, "")

	repo := new(MockStainRequestRepository)
	uow := new(MockStainRequestUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StainRequestRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("requestID", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStainRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewStainRequestCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestReviewStainRequestCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ReviewStainRequestCommand{} // not constructed properly
	factory := new(MockStainRequestUoWFactory)
	h := commands.NewReviewStainRequestCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
}
