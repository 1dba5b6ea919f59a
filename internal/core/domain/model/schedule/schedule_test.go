package schedule_test

import (
	"testing"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/schedule"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSchedule(t *testing.T) {
	validDate := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	t.Run("should create assigned schedule", func(t *testing.T) {
		id, orderID, staffID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

		s, err := schedule.NewSchedule(id, orderID, staffID, "morning", validDate)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.True(t, s.ID().IsEqual(id))
		assert.True(t, s.OrderID().IsEqual(orderID))
		assert.True(t, s.StaffID().IsEqual(staffID))
		assert.Equal(t, "morning", s.ShiftLabel())
		assert.Equal(t, validDate, s.Date())
		assert.Equal(t, schedule.Assigned, s.Status())
	})

	t.Run("should reject missing shift label", func(t *testing.T) {
		_, err := schedule.NewSchedule(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", validDate)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "shiftLabel")
	})

	t.Run("should reject zero date", func(t *testing.T) {
		_, err := schedule.NewSchedule(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "evening", time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject invalid references", func(t *testing.T) {
		var zeroID kernel.UUID
		_, err := schedule.NewSchedule(kernel.NewUUID(), zeroID, kernel.NewUUID(), "evening", validDate)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
	})
}

func TestRestoreSchedule(t *testing.T) {
	validDate := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	t.Run("should rebuild schedule from persistence", func(t *testing.T) {
		s, err := schedule.RestoreSchedule(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"evening", validDate, schedule.Assigned)

		require.NoError(t, err)
		assert.Equal(t, schedule.Assigned, s.Status())
	})

	t.Run("should reject invalid stored status", func(t *testing.T) {
		_, err := schedule.RestoreSchedule(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"evening", validDate, schedule.Unknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestSchedule_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var s schedule.Schedule
		require.ErrorIs(t, s.Validate(), schedule.ErrScheduleIsNotConstructed)
	})
}
