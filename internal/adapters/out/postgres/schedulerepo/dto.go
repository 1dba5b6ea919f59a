// Package schedulerepo persists schedule records with GORM. The unique
// index on the order reference is the authoritative guard against double
// assignment: whatever path a writer takes, the second insert for the same
// order fails at the database.
package schedulerepo

import (
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/schedule"

	"github.com/google/uuid"
)

// ScheduleDTO is the database representation of a schedule record.
type ScheduleDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	StaffID    uuid.UUID `gorm:"type:uuid;index"`
	ShiftLabel string    `gorm:"type:varchar(32)"`
	Date       time.Time
	Status     string `gorm:"type:varchar(16)"`
}

// TableName overrides GORM's default naming to use "schedules".
func (ScheduleDTO) TableName() string {
	return "schedules"
}

func fromDomain(s *schedule.Schedule) ScheduleDTO {
	return ScheduleDTO{
		ID:         s.ID().Bytes(),
		OrderID:    s.OrderID().Bytes(),
		StaffID:    s.StaffID().Bytes(),
		ShiftLabel: s.ShiftLabel(),
		Date:       s.Date(),
		Status:     s.Status().String(),
	}
}

func toDomain(dto ScheduleDTO) (*schedule.Schedule, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	staffID, err := kernel.UUIDFromBytes(dto.StaffID[:])
	if err != nil {
		return nil, err
	}

	status := schedule.Unknown
	if dto.Status == schedule.Assigned.String() {
		status = schedule.Assigned
	}

	return schedule.RestoreSchedule(id, orderID, staffID, dto.ShiftLabel, dto.Date, status)
}
