package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolutionFromString(t *testing.T) {
	cases := map[string]commands.Resolution{
		"review":  commands.ResolutionReview,
		"Treat":   commands.ResolutionTreat,
		"DECLINE": commands.ResolutionDecline,
	}
	for input, want := range cases {
		got, err := commands.ResolutionFromString(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := commands.ResolutionFromString("ignore")
	require.Error(t, err)
}

func TestNewReviewStainRequestCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewReviewStainRequestCommand(id, commands.ResolutionTreat, "Enzyme soak")

	require.NoError(t, err)
	assert.Equal(t, id, cmd.RequestID())
	assert.Equal(t, commands.ResolutionTreat, cmd.Resolution())
	assert.Equal(t, "Enzyme soak", cmd.Note())
}

func TestNewReviewStainRequestCommand_InvalidRequestID(t *testing.T) {
	_, err := commands.NewReviewStainRequestCommand(kernel.UUID{}, commands.ResolutionReview, "")
	require.Error(t, err)
}

func TestNewReviewStainRequestCommand_InvalidResolution(t *testing.T) {
	_, err := commands.NewReviewStainRequestCommand(kernel.NewUUID(), commands.ResolutionUnknown, "")
	require.Error(t, err)
}

func TestReviewStainRequestCommand_NotConstructed(t *testing.T) {
	cmd := commands.ReviewStainRequestCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrReviewStainRequestCommandIsNotConstructed)
}
