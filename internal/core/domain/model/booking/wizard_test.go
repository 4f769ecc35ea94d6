package booking_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/booking"
	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/settings"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWizard(t *testing.T, studentEntry bool) *booking.Wizard {
	t.Helper()
	cfg := settings.Default()
	cat := catalog.DefaultCatalog()
	wizard, err := booking.NewWizard(
		cat,
		services.NewZoneClassifier(cfg),
		services.NewPricingEngine(cat, cfg),
		studentEntry,
	)
	require.NoError(t, err)
	return wizard
}

// completeLocation fills the location step with a serviceable standard-zone zip.
func completeLocation(t *testing.T, w *booking.Wizard) {
	t.Helper()
	require.NoError(t, w.SetZipCode("43606"))
	w.SetAddress("2801 W Bancroft St")
}

func completeSchedule(t *testing.T, w *booking.Wizard) {
	t.Helper()
	require.NoError(t, w.SetPickupDate(time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, w.SetPickupTimeSlot(kernel.TimeSlotMorning))
}

func TestNewWizard(t *testing.T) {
	t.Run("should start at location with wash-fold preselected", func(t *testing.T) {
		wizard := newWizard(t, false)

		assert.Equal(t, booking.StepLocation, wizard.Step())
		assert.Equal(t, catalog.ServiceWashFold, wizard.Draft().SelectedServiceID())
	})

	t.Run("student entry should preselect the student special", func(t *testing.T) {
		wizard := newWizard(t, true)

		assert.Equal(t, catalog.ServiceStudentSpecial, wizard.Draft().SelectedServiceID())
	})

	t.Run("nil wizard should fail validation", func(t *testing.T) {
		var wizard *booking.Wizard

		err := wizard.Validate()

		require.Error(t, err)
		assert.Equal(t, booking.ErrWizardIsNotConstructed, err)
	})
}

func TestWizard_SetZipCode(t *testing.T) {
	t.Run("should classify immediately on zip entry", func(t *testing.T) {
		wizard := newWizard(t, false)

		require.NoError(t, wizard.SetZipCode("43551"))

		assert.Equal(t, kernel.ZoneExtended, wizard.Draft().Zone())
	})

	t.Run("malformed zip should be rejected with no draft change", func(t *testing.T) {
		wizard := newWizard(t, false)

		err := wizard.SetZipCode("4360")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		_, ok := wizard.Draft().ZipCode()
		assert.False(t, ok)
	})
}

func TestWizard_Advance_Location(t *testing.T) {
	t.Run("outside zip should reject advance with no state change", func(t *testing.T) {
		wizard := newWizard(t, false)
		require.NoError(t, wizard.SetZipCode("99999"))
		wizard.SetAddress("500 Nowhere Ln")

		err := wizard.Advance()

		require.Error(t, err)
		require.ErrorIs(t, err, booking.ErrOutsideServiceArea)
		assert.Equal(t, booking.StepLocation, wizard.Step())
	})

	t.Run("missing zip should reject advance", func(t *testing.T) {
		wizard := newWizard(t, false)
		wizard.SetAddress("2801 W Bancroft St")

		err := wizard.Advance()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing address should reject advance", func(t *testing.T) {
		wizard := newWizard(t, false)
		require.NoError(t, wizard.SetZipCode("43606"))

		err := wizard.Advance()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("serviceable zip and address should advance to services", func(t *testing.T) {
		wizard := newWizard(t, false)
		completeLocation(t, wizard)

		require.NoError(t, wizard.Advance())

		assert.Equal(t, booking.StepServices, wizard.Step())
	})

	t.Run("extended zone should be serviceable", func(t *testing.T) {
		wizard := newWizard(t, false)
		require.NoError(t, wizard.SetZipCode("43551"))
		wizard.SetAddress("123 River Rd")

		require.NoError(t, wizard.Advance())
	})
}

func TestWizard_Advance_Services(t *testing.T) {
	advanceToServices := func(t *testing.T, studentEntry bool) *booking.Wizard {
		t.Helper()
		wizard := newWizard(t, studentEntry)
		completeLocation(t, wizard)
		require.NoError(t, wizard.Advance())
		return wizard
	}

	t.Run("wash-fold without weight should reject advance", func(t *testing.T) {
		wizard := advanceToServices(t, false)

		err := wizard.Advance()

		require.Error(t, err)
		require.ErrorIs(t, err, booking.ErrWeightRequired)
		assert.Equal(t, booking.StepServices, wizard.Step())
	})

	t.Run("wash-fold with positive weight should advance", func(t *testing.T) {
		wizard := advanceToServices(t, false)
		require.NoError(t, wizard.SetEstimatedWeight(15))

		require.NoError(t, wizard.Advance())

		assert.Equal(t, booking.StepSchedule, wizard.Step())
	})

	t.Run("specialty without items should reject advance", func(t *testing.T) {
		wizard := advanceToServices(t, false)
		require.NoError(t, wizard.SelectService(catalog.ServiceSpecialty))

		err := wizard.Advance()

		require.Error(t, err)
		require.ErrorIs(t, err, booking.ErrItemsRequired)
	})

	t.Run("specialty with at least one item should advance", func(t *testing.T) {
		wizard := advanceToServices(t, false)
		require.NoError(t, wizard.SelectService(catalog.ServiceSpecialty))
		require.NoError(t, wizard.SetItemQuantity("comforter", 1))

		require.NoError(t, wizard.Advance())
	})

	t.Run("student special should advance without quantity input", func(t *testing.T) {
		wizard := advanceToServices(t, true)

		require.NoError(t, wizard.Advance())
	})
}

func TestWizard_Advance_Schedule(t *testing.T) {
	advanceToSchedule := func(t *testing.T) *booking.Wizard {
		t.Helper()
		wizard := newWizard(t, false)
		completeLocation(t, wizard)
		require.NoError(t, wizard.Advance())
		require.NoError(t, wizard.SetEstimatedWeight(15))
		require.NoError(t, wizard.Advance())
		return wizard
	}

	t.Run("missing date should reject advance", func(t *testing.T) {
		wizard := advanceToSchedule(t)
		require.NoError(t, wizard.SetPickupTimeSlot(kernel.TimeSlotEvening))

		err := wizard.Advance()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing slot should reject advance", func(t *testing.T) {
		wizard := advanceToSchedule(t)
		require.NoError(t, wizard.SetPickupDate(time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)))

		err := wizard.Advance()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("complete schedule should reach review", func(t *testing.T) {
		wizard := advanceToSchedule(t)
		completeSchedule(t, wizard)

		require.NoError(t, wizard.Advance())

		assert.Equal(t, booking.StepReview, wizard.Step())
	})

	t.Run("advancing from review should fail", func(t *testing.T) {
		wizard := advanceToSchedule(t)
		completeSchedule(t, wizard)
		require.NoError(t, wizard.Advance())

		require.Error(t, wizard.Advance())
		assert.Equal(t, booking.StepReview, wizard.Step())
	})
}

func TestWizard_Retreat(t *testing.T) {
	t.Run("should step back one position preserving the draft", func(t *testing.T) {
		wizard := newWizard(t, false)
		completeLocation(t, wizard)
		require.NoError(t, wizard.Advance())
		require.NoError(t, wizard.SetEstimatedWeight(22))

		require.NoError(t, wizard.Retreat())

		assert.Equal(t, booking.StepLocation, wizard.Step())
		assert.Equal(t, 22, wizard.Draft().EstimatedWeightLbs())
		assert.Equal(t, "2801 W Bancroft St", wizard.Draft().Address())
	})

	t.Run("should reject retreat from the initial step", func(t *testing.T) {
		wizard := newWizard(t, false)

		require.Error(t, wizard.Retreat())
	})

	t.Run("retreat then advance should reproduce the identical draft", func(t *testing.T) {
		wizard := newWizard(t, false)
		completeLocation(t, wizard)
		require.NoError(t, wizard.Advance())
		require.NoError(t, wizard.SetEstimatedWeight(15))

		before := snapshotDraft(wizard.Draft())

		require.NoError(t, wizard.Retreat())
		require.NoError(t, wizard.Advance())

		assert.Equal(t, before, snapshotDraft(wizard.Draft()))
		assert.Equal(t, booking.StepServices, wizard.Step())
	})
}

func TestWizard_JumpTo(t *testing.T) {
	advanceToReview := func(t *testing.T) *booking.Wizard {
		t.Helper()
		wizard := newWizard(t, false)
		completeLocation(t, wizard)
		require.NoError(t, wizard.Advance())
		require.NoError(t, wizard.SetEstimatedWeight(15))
		require.NoError(t, wizard.Advance())
		completeSchedule(t, wizard)
		require.NoError(t, wizard.Advance())
		return wizard
	}

	t.Run("should jump from review to an earlier step", func(t *testing.T) {
		wizard := advanceToReview(t)

		require.NoError(t, wizard.JumpTo(booking.StepServices))

		assert.Equal(t, booking.StepServices, wizard.Step())
		assert.Equal(t, 15, wizard.Draft().EstimatedWeightLbs())
	})

	t.Run("jump to location then repeated advance should return to review", func(t *testing.T) {
		wizard := advanceToReview(t)
		require.NoError(t, wizard.JumpTo(booking.StepLocation))

		require.NoError(t, wizard.Advance())
		require.NoError(t, wizard.Advance())
		require.NoError(t, wizard.Advance())

		assert.Equal(t, booking.StepReview, wizard.Step())
	})

	t.Run("should reject jumping from a non-review step", func(t *testing.T) {
		wizard := newWizard(t, false)

		err := wizard.JumpTo(booking.StepLocation)

		require.Error(t, err)
		require.ErrorIs(t, err, booking.ErrEditOnlyFromReview)
	})

	t.Run("should reject jumping to review itself", func(t *testing.T) {
		wizard := advanceToReview(t)

		require.Error(t, wizard.JumpTo(booking.StepReview))
	})

	t.Run("should reject jumping to an invalid step", func(t *testing.T) {
		wizard := advanceToReview(t)

		require.Error(t, wizard.JumpTo(booking.StepUnknown))
	})
}

func TestWizard_Quote(t *testing.T) {
	t.Run("should compute running total for the standard zone", func(t *testing.T) {
		wizard := newWizard(t, false)
		completeLocation(t, wizard)
		require.NoError(t, wizard.SetEstimatedWeight(15))

		breakdown, err := wizard.Quote()

		require.NoError(t, err)
		assert.Equal(t, "30.00", breakdown.Subtotal.String())
		assert.Equal(t, "0.00", breakdown.Surcharge.String())
		assert.Equal(t, "30.00", breakdown.Total.String())
	})

	t.Run("should include the surcharge for the extended zone", func(t *testing.T) {
		wizard := newWizard(t, false)
		require.NoError(t, wizard.SetZipCode("43551"))
		require.NoError(t, wizard.SelectService(catalog.ServiceSpecialty))
		require.NoError(t, wizard.SetItemQuantity("comforter", 1))
		require.NoError(t, wizard.SetItemQuantity("dry-clean", 1))

		breakdown, err := wizard.Quote()

		require.NoError(t, err)
		assert.Equal(t, "28.00", breakdown.Subtotal.String())
		assert.Equal(t, "5.00", breakdown.Surcharge.String())
		assert.Equal(t, "33.00", breakdown.Total.String())
	})

	t.Run("should be idempotent and leave the draft untouched", func(t *testing.T) {
		wizard := newWizard(t, false)
		completeLocation(t, wizard)
		require.NoError(t, wizard.SetEstimatedWeight(15))

		before := snapshotDraft(wizard.Draft())
		first, err := wizard.Quote()
		require.NoError(t, err)
		second, err := wizard.Quote()
		require.NoError(t, err)

		assert.Equal(t, first.Total.String(), second.Total.String())
		assert.Equal(t, before, snapshotDraft(wizard.Draft()))
	})
}

func TestWizard_OrderRequest(t *testing.T) {
	t.Run("should reject before review", func(t *testing.T) {
		wizard := newWizard(t, false)

		_, err := wizard.OrderRequest()

		require.Error(t, err)
	})

	t.Run("should produce the finalized order request at review", func(t *testing.T) {
		wizard := newWizard(t, false)
		completeLocation(t, wizard)
		require.NoError(t, wizard.Advance())
		require.NoError(t, wizard.SetEstimatedWeight(15))
		require.NoError(t, wizard.Advance())
		completeSchedule(t, wizard)
		wizard.SetSpecialInstructions("Gate code 4411")
		require.NoError(t, wizard.Advance())

		request, err := wizard.OrderRequest()

		require.NoError(t, err)
		assert.Equal(t, catalog.ServiceWashFold, request.ServiceID)
		assert.Equal(t, "Wash & Fold", request.ServiceName)
		assert.Equal(t, 15, request.EstimatedWeightLbs)
		assert.Equal(t, "43606", request.ZipCode.String())
		assert.Equal(t, kernel.ZoneStandard, request.Zone)
		assert.Equal(t, "2801 W Bancroft St", request.Address)
		assert.Equal(t, kernel.TimeSlotMorning, request.PickupTimeSlot)
		assert.Equal(t, "Gate code 4411", request.SpecialInstructions)
		assert.Equal(t, "30.00", request.Breakdown.Total.String())
	})
}

// draftSnapshot captures every observable draft field for round-trip
// identity assertions.
type draftSnapshot struct {
	zip          string
	zipSet       bool
	address      string
	serviceID    string
	weight       int
	items        map[string]int
	pickupDate   time.Time
	slot         kernel.TimeSlot
	instructions string
	zone         kernel.Zone
}

func snapshotDraft(d *booking.Draft) draftSnapshot {
	zip, ok := d.ZipCode()
	zipValue := ""
	if ok {
		zipValue = zip.String()
	}
	return draftSnapshot{
		zip:          zipValue,
		zipSet:       ok,
		address:      d.Address(),
		serviceID:    d.SelectedServiceID(),
		weight:       d.EstimatedWeightLbs(),
		items:        d.ItemQuantities(),
		pickupDate:   d.PickupDate(),
		slot:         d.PickupTimeSlot(),
		instructions: d.SpecialInstructions(),
		zone:         d.Zone(),
	}
}
