package tablerepo

import (
	"context"
	"errors"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/core/domain/model/table"
	"dinein/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormOrderTableRepository implements OrderTableRepository using GORM.
type GormOrderTableRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormOrderTableRepository creates a new GORM table repository.
func NewGormOrderTableRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderTableRepository {
	return &GormOrderTableRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new table to the database.
func (r *GormOrderTableRepository) Add(ctx context.Context, aggregate *table.OrderTable) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing table to the database.
// Uses a column map so clearing the group reference and the empty flag both
// reach the database even when they are zero values.
func (r *GormOrderTableRepository) Update(ctx context.Context, aggregate *table.OrderTable) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderTableDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"table_group_id":   dto.TableGroupID,
			"number_of_guests": dto.NumberOfGuests,
			"empty":            dto.Empty,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a table by ID.
// Takes a row lock on the table, so within a transaction concurrent order
// inserts and group changes against the same table wait until this
// transaction finishes.
func (r *GormOrderTableRepository) Get(ctx context.Context, id kernel.UUID) (*table.OrderTable, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderTableDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderTable", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByIDs retrieves the tables matching the given identifiers, locking
// each matched row. Missing identifiers are omitted from the result.
func (r *GormOrderTableRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*table.OrderTable, error) {
	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []OrderTableDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Order("id").
		Find(&dtos, "id IN ?", rawIDs).Error; err != nil {
		return nil, err
	}

	return tablesToDomain(dtos)
}

// GetAll retrieves every table.
func (r *GormOrderTableRepository) GetAll(ctx context.Context) ([]*table.OrderTable, error) {
	var dtos []OrderTableDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	return tablesToDomain(dtos)
}

func tablesToDomain(dtos []OrderTableDTO) ([]*table.OrderTable, error) {
	tables := make([]*table.OrderTable, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}

	return tables, nil
}

// GormTableGroupRepository implements TableGroupRepository using GORM.
type GormTableGroupRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormTableGroupRepository creates a new GORM table group repository.
func NewGormTableGroupRepository(db *gorm.DB, tracker aggregateTracker) *GormTableGroupRepository {
	return &GormTableGroupRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new table group to the database.
// Member rows are not written here; the caller updates each member table.
func (r *GormTableGroupRepository) Add(ctx context.Context, aggregate *table.TableGroup) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := groupFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a table group by ID, resolving its membership from the
// table rows referencing it.
func (r *GormTableGroupRepository) Get(ctx context.Context, id kernel.UUID) (*table.TableGroup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TableGroupDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tableGroup", id.String())
		}
		return nil, err
	}

	var memberIDs []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&OrderTableDTO{}).
		Where("table_group_id = ?", id.Bytes()).
		Order("id").
		Pluck("id", &memberIDs).Error; err != nil {
		return nil, err
	}

	return groupToDomain(dto, memberIDs)
}

// Remove deletes a dissolved table group row.
func (r *GormTableGroupRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&TableGroupDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("tableGroup", id.String())
	}

	return nil
}
