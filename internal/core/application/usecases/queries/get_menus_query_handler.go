package queries

import (
	"context"

	"dinein/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMenusQueryHandler retrieves menus and their line items from the database.
// Line items are fetched in one pass and folded into their menus in memory.
type GetMenusQueryHandler struct {
	db *gorm.DB
}

// NewGetMenusQueryHandler creates a handler for menu queries.
// Requires a GORM database connection for query execution.
func NewGetMenusQueryHandler(db *gorm.DB) GetMenusQueryHandler {
	return GetMenusQueryHandler{db: db}
}

// Handle executes the query to retrieve all menus sorted by id, each with its
// line items in insertion order.
func (h GetMenusQueryHandler) Handle(
	ctx context.Context,
	query GetMenusQuery,
) ([]GetMenusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	menus := make([]GetMenusQueryResponse, 0)
	menuIndex := make(map[kernel.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			menu_group_id
		FROM menus
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, menuGroupID uuid.UUID
		var name string
		var price int64

		if err = rows.Scan(&id, &name, &price, &menuGroupID); err != nil {
			return nil, err
		}

		menuID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		groupID, idErr := kernel.UUIDFromBytes(menuGroupID[:])
		if idErr != nil {
			return nil, idErr
		}

		menuIndex[menuID] = len(menus)
		menus = append(menus, GetMenusQueryResponse{
			ID:           menuID,
			Name:         name,
			Price:        price,
			MenuGroupID:  groupID,
			MenuProducts: make([]GetMenusQueryMenuProductResponse, 0),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			menu_id,
			product_id,
			quantity
		FROM menu_products
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var menuID, productID uuid.UUID
		var quantity int64

		if err = itemRows.Scan(&menuID, &productID, &quantity); err != nil {
			return nil, err
		}

		ownerID, idErr := kernel.UUIDFromBytes(menuID[:])
		if idErr != nil {
			return nil, idErr
		}
		itemProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}

		idx, ok := menuIndex[ownerID]
		if !ok {
			continue
		}

		menus[idx].MenuProducts = append(menus[idx].MenuProducts, GetMenusQueryMenuProductResponse{
			ProductID: itemProductID,
			Quantity:  quantity,
		})
	}

	if err = itemRows.Err(); err != nil {
		return nil, err
	}

	return menus, nil
}
