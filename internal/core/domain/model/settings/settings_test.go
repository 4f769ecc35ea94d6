package settings_test

import (
	"testing"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zip(t *testing.T, s string) kernel.ZipCode {
	t.Helper()
	z, err := kernel.NewZipCode(s)
	require.NoError(t, err)
	return z
}

func TestDefault(t *testing.T) {
	s := settings.Default()

	assert.Equal(t, "2.00", s.WashFoldPerLb().String())
	assert.Equal(t, "30.00", s.WashFoldMinimum().String())
	assert.Equal(t, "5.00", s.DeliverySurcharge().String())
	assert.Equal(t, "35.00", s.FreeDeliveryThreshold().String())
	assert.True(t, s.InStandardZips(zip(t, "43606")))
	assert.True(t, s.InExtendedZips(zip(t, "43551")))
	assert.False(t, s.InStandardZips(zip(t, "99999")))
	assert.False(t, s.InExtendedZips(zip(t, "99999")))
}

func TestParse(t *testing.T) {
	t.Run("should parse well-formed values", func(t *testing.T) {
		s := settings.Parse(map[string]string{
			settings.KeyWashFoldPerLb:     "2.25",
			settings.KeyWashFoldMinimum:   "28",
			settings.KeyDeliverySurcharge: " 6.50 ",
			settings.KeyStandardZips:      "11111, 22222",
			settings.KeyExtendedZips:      "33333",
		})

		assert.Equal(t, "2.25", s.WashFoldPerLb().String())
		assert.Equal(t, "28.00", s.WashFoldMinimum().String())
		assert.Equal(t, "6.50", s.DeliverySurcharge().String())
		assert.True(t, s.InStandardZips(zip(t, "11111")))
		assert.True(t, s.InStandardZips(zip(t, "22222")))
		assert.True(t, s.InExtendedZips(zip(t, "33333")))
		assert.False(t, s.InStandardZips(zip(t, "43606")))
	})

	t.Run("should fall back per field on malformed values", func(t *testing.T) {
		s := settings.Parse(map[string]string{
			settings.KeyWashFoldPerLb:   "two dollars",
			settings.KeyWashFoldMinimum: "27.50",
		})

		// Malformed rate falls back, well-formed minimum is kept.
		assert.Equal(t, "2.00", s.WashFoldPerLb().String())
		assert.Equal(t, "27.50", s.WashFoldMinimum().String())
	})

	t.Run("should never fail on nil or empty input", func(t *testing.T) {
		s := settings.Parse(nil)

		assert.Equal(t, "2.00", s.WashFoldPerLb().String())
		assert.True(t, s.InStandardZips(zip(t, "43606")))
	})

	t.Run("should drop malformed zip list entries", func(t *testing.T) {
		s := settings.Parse(map[string]string{
			settings.KeyStandardZips: "43606, not-a-zip, 436, 43610",
		})

		assert.True(t, s.InStandardZips(zip(t, "43606")))
		assert.True(t, s.InStandardZips(zip(t, "43610")))
		assert.False(t, s.InStandardZips(zip(t, "43614")))
	})

	t.Run("blank zip list should fall back to defaults", func(t *testing.T) {
		s := settings.Parse(map[string]string{
			settings.KeyStandardZips: "   ",
		})

		assert.True(t, s.InStandardZips(zip(t, "43606")))
	})
}
