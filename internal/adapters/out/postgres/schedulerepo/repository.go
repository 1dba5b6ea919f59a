package schedulerepo

import (
	"context"
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/schedule"
	"catering/internal/pkg/errs"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// GormScheduleRepository implements ScheduleRepository using GORM.
type GormScheduleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker registers aggregates modified within the unit of work.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormScheduleRepository creates a new GORM schedule repository.
func NewGormScheduleRepository(db *gorm.DB, tracker aggregateTracker) *GormScheduleRepository {
	return &GormScheduleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new schedule record. A unique-violation on the order
// reference is reported as an object-already-exists error so callers can
// map it to a conflict instead of a plain database failure.
func (r *GormScheduleRepository) Add(ctx context.Context, s *schedule.Schedule) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := fromDomain(s)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return errs.NewObjectAlreadyExistsErrorWithCause("orderID", s.OrderID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(s.ID(), s)
	return nil
}

// GetByOrderID retrieves the schedule bound to an order, if any.
func (r *GormScheduleRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*schedule.Schedule, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto ScheduleDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("schedule", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
