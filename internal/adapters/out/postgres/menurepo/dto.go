// Package menurepo provides data transfer objects and mapping functions for menu persistence.
// This package implements the repository pattern for the menu and menu group aggregates,
// handling the conversion between domain entities and database representations.
package menurepo

import (
	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// MenuDTO represents the database structure for persisting menu aggregates.
// A menu owns its line items; they are written and loaded together.
type MenuDTO struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name         string           `gorm:"type:varchar(255);not null"`
	Price        int64            `gorm:"type:bigint;not null"`
	MenuGroupID  uuid.UUID        `gorm:"type:uuid;not null;index"`
	MenuProducts []MenuProductDTO `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for menu entities.
// Overrides GORM's default naming convention to use "menus".
func (MenuDTO) TableName() string {
	return "menus"
}

// MenuProductDTO represents one menu line item row.
// Keeps an auto-increment key so line items preserve insertion order.
type MenuProductDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	MenuID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int64     `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for menu line items.
func (MenuProductDTO) TableName() string {
	return "menu_products"
}

// MenuGroupDTO represents the database structure for persisting menu groups.
type MenuGroupDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for menu group entities.
func (MenuGroupDTO) TableName() string {
	return "menu_groups"
}

// fromDomain converts a menu domain aggregate to its database representation,
// including its line items.
func fromDomain(aggregate *menu.Menu) MenuDTO {
	menuID := aggregate.ID().Bytes()
	items := aggregate.MenuProducts()
	menuProducts := make([]MenuProductDTO, 0, len(items))

	for _, item := range items {
		menuProducts = append(menuProducts, MenuProductDTO{
			MenuID:    menuID,
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity().Value(),
		})
	}

	return MenuDTO{
		ID:           menuID,
		Name:         aggregate.Name().Value(),
		Price:        aggregate.Price().Amount(),
		MenuGroupID:  aggregate.MenuGroupID().Bytes(),
		MenuProducts: menuProducts,
	}
}

// toDomain converts a database DTO to a menu domain aggregate using RestoreMenu.
func toDomain(dto MenuDTO) (*menu.Menu, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	name, err := kernel.NewName(dto.Name)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	menuGroupID, err := kernel.UUIDFromBytes(dto.MenuGroupID[:])
	if err != nil {
		return nil, err
	}

	menuProducts := make([]menu.MenuProduct, 0, len(dto.MenuProducts))
	for _, itemDto := range dto.MenuProducts {
		item, itemErr := menuProductToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		menuProducts = append(menuProducts, item)
	}

	return menu.RestoreMenu(id, name, price, menuGroupID, menuProducts)
}

// menuProductToDomain converts a line item DTO to its domain value object.
func menuProductToDomain(dto MenuProductDTO) (menu.MenuProduct, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return menu.MenuProduct{}, err
	}

	quantity, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return menu.MenuProduct{}, err
	}

	return menu.NewMenuProduct(productID, quantity)
}

// groupFromDomain converts a menu group aggregate to its database representation.
func groupFromDomain(aggregate *menu.MenuGroup) MenuGroupDTO {
	return MenuGroupDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name().Value(),
	}
}

// groupToDomain converts a database DTO to a menu group aggregate using RestoreMenuGroup.
func groupToDomain(dto MenuGroupDTO) (*menu.MenuGroup, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	name, err := kernel.NewName(dto.Name)
	if err != nil {
		return nil, err
	}

	return menu.RestoreMenuGroup(id, name)
}
