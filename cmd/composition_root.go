package cmd

import (
	"log/slog"

	"dinein/internal/adapters/out/postgres"
	"dinein/internal/core/application/usecases/commands"
	"dinein/internal/core/application/usecases/queries"
	"dinein/internal/core/domain/services"
	"dinein/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB         *gorm.DB
	uowFactory     postgres.GormUnitOfWorkFactory
	eventPublisher ports.OrderEventPublisher
	logger         *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, eventPublisher ports.OrderEventPublisher, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

func (c *CompositionRoot) CreateCreateMenuGroupCommandHandler() commands.CreateMenuGroupCommandHandler {
	var f commands.MenuGroupUoWFactory = FuncMenuGroupUoWFactory(func() commands.MenuGroupUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMenuGroupCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateMenuCommandHandler() commands.CreateMenuCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMenuCommandHandler(f, services.NewMenuPricingValidator())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.eventPublisher, c.logger)
}

func (c *CompositionRoot) CreateCreateOrderTableCommandHandler() commands.CreateOrderTableCommandHandler {
	return commands.NewCreateOrderTableCommandHandler(c.createTableUoWFactory())
}

func (c *CompositionRoot) CreateChangeTableEmptyCommandHandler() commands.ChangeTableEmptyCommandHandler {
	return commands.NewChangeTableEmptyCommandHandler(c.createTableUoWFactory())
}

func (c *CompositionRoot) CreateChangeNumberOfGuestsCommandHandler() commands.ChangeNumberOfGuestsCommandHandler {
	return commands.NewChangeNumberOfGuestsCommandHandler(c.createTableUoWFactory())
}

func (c *CompositionRoot) CreateCreateTableGroupCommandHandler() commands.CreateTableGroupCommandHandler {
	return commands.NewCreateTableGroupCommandHandler(c.createTableGroupUoWFactory())
}

func (c *CompositionRoot) CreateUngroupTableCommandHandler() commands.UngroupTableCommandHandler {
	return commands.NewUngroupTableCommandHandler(c.createTableGroupUoWFactory())
}

func (c *CompositionRoot) CreateGetMenuGroupsQueryHandler() queries.GetMenuGroupsQueryHandler {
	return queries.NewGetMenuGroupsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenusQueryHandler() queries.GetMenusQueryHandler {
	return queries.NewGetMenusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderTablesQueryHandler() queries.GetOrderTablesQueryHandler {
	return queries.NewGetOrderTablesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUncompletedOrdersQueryHandler() queries.GetUncompletedOrdersQueryHandler {
	return queries.NewGetUncompletedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) createTableUoWFactory() commands.TableUoWFactory {
	return FuncTableUoWFactory(func() commands.TableUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) createTableGroupUoWFactory() commands.TableGroupUoWFactory {
	return FuncTableGroupUoWFactory(func() commands.TableGroupUoW {
		return c.uowFactory.Create()
	})
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncMenuGroupUoWFactory func() commands.MenuGroupUoW

func (f FuncMenuGroupUoWFactory) Create() commands.MenuGroupUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncTableUoWFactory func() commands.TableUoW

func (f FuncTableUoWFactory) Create() commands.TableUoW {
	return f()
}

type FuncTableGroupUoWFactory func() commands.TableGroupUoW

func (f FuncTableGroupUoWFactory) Create() commands.TableGroupUoW {
	return f()
}
