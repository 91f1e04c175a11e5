package menurepo

import (
	"context"
	"errors"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/core/domain/model/menu"
	"dinein/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormMenuRepository implements MenuRepository using GORM.
// Menus are immutable after creation, so the repository exposes no update.
type GormMenuRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormMenuRepository creates a new GORM menu repository.
func NewGormMenuRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuRepository {
	return &GormMenuRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new menu with its line items to the database.
func (r *GormMenuRepository) Add(ctx context.Context, aggregate *menu.Menu) error {
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

// Get retrieves a menu with its line items by ID.
func (r *GormMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuDTO
	if err := r.db.WithContext(ctx).Preload("MenuProducts").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByIDs retrieves the menus matching the given identifiers.
// Missing identifiers are omitted from the result.
func (r *GormMenuRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Menu, error) {
	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []MenuDTO
	if err := r.db.WithContext(ctx).Preload("MenuProducts").Find(&dtos, "id IN ?", rawIDs).Error; err != nil {
		return nil, err
	}

	return menusToDomain(dtos)
}

// GetAll retrieves every menu with its line items.
func (r *GormMenuRepository) GetAll(ctx context.Context) ([]*menu.Menu, error) {
	var dtos []MenuDTO
	if err := r.db.WithContext(ctx).Preload("MenuProducts").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return menusToDomain(dtos)
}

func menusToDomain(dtos []MenuDTO) ([]*menu.Menu, error) {
	menus := make([]*menu.Menu, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		menus = append(menus, m)
	}

	return menus, nil
}

// GormMenuGroupRepository implements MenuGroupRepository using GORM.
type GormMenuGroupRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormMenuGroupRepository creates a new GORM menu group repository.
func NewGormMenuGroupRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuGroupRepository {
	return &GormMenuGroupRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new menu group to the database.
func (r *GormMenuGroupRepository) Add(ctx context.Context, aggregate *menu.MenuGroup) error {
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

// Get retrieves a menu group by ID.
func (r *GormMenuGroupRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuGroup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuGroupDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menuGroup", id.String())
		}
		return nil, err
	}

	return groupToDomain(dto)
}

// GetAll retrieves every menu group.
func (r *GormMenuGroupRepository) GetAll(ctx context.Context) ([]*menu.MenuGroup, error) {
	var dtos []MenuGroupDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	groups := make([]*menu.MenuGroup, 0, len(dtos))
	for _, dto := range dtos {
		g, err := groupToDomain(dto)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}

	return groups, nil
}
