// Package http exposes the application's REST surface as echo handlers.
// Handlers parse and shape requests, delegate to command and query handlers,
// and map application errors to HTTP status codes; no business rules live here.
package http

import (
	"net/http"

	"dinein/internal/core/application/usecases/commands"
	"dinein/internal/core/application/usecases/queries"
	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createMenuGroupHandler      commands.CreateMenuGroupCommandHandler
	createProductHandler        commands.CreateProductCommandHandler
	createMenuHandler           commands.CreateMenuCommandHandler
	createOrderHandler          commands.CreateOrderCommandHandler
	changeOrderStatusHandler    commands.ChangeOrderStatusCommandHandler
	createOrderTableHandler     commands.CreateOrderTableCommandHandler
	changeTableEmptyHandler     commands.ChangeTableEmptyCommandHandler
	changeNumberOfGuestsHandler commands.ChangeNumberOfGuestsCommandHandler
	createTableGroupHandler     commands.CreateTableGroupCommandHandler
	ungroupTableHandler         commands.UngroupTableCommandHandler

	// Query handlers
	getMenuGroupsHandler  queries.GetMenuGroupsQueryHandler
	getProductsHandler    queries.GetProductsQueryHandler
	getMenusHandler       queries.GetMenusQueryHandler
	getOrdersHandler      queries.GetOrdersQueryHandler
	getOrderTablesHandler queries.GetOrderTablesQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createMenuGroupHandler commands.CreateMenuGroupCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	createMenuHandler commands.CreateMenuCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	createOrderTableHandler commands.CreateOrderTableCommandHandler,
	changeTableEmptyHandler commands.ChangeTableEmptyCommandHandler,
	changeNumberOfGuestsHandler commands.ChangeNumberOfGuestsCommandHandler,
	createTableGroupHandler commands.CreateTableGroupCommandHandler,
	ungroupTableHandler commands.UngroupTableCommandHandler,
	getMenuGroupsHandler queries.GetMenuGroupsQueryHandler,
	getProductsHandler queries.GetProductsQueryHandler,
	getMenusHandler queries.GetMenusQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderTablesHandler queries.GetOrderTablesQueryHandler,
) *Server {
	return &Server{
		createMenuGroupHandler:      createMenuGroupHandler,
		createProductHandler:        createProductHandler,
		createMenuHandler:           createMenuHandler,
		createOrderHandler:          createOrderHandler,
		changeOrderStatusHandler:    changeOrderStatusHandler,
		createOrderTableHandler:     createOrderTableHandler,
		changeTableEmptyHandler:     changeTableEmptyHandler,
		changeNumberOfGuestsHandler: changeNumberOfGuestsHandler,
		createTableGroupHandler:     createTableGroupHandler,
		ungroupTableHandler:         ungroupTableHandler,
		getMenuGroupsHandler:        getMenuGroupsHandler,
		getProductsHandler:          getProductsHandler,
		getMenusHandler:             getMenusHandler,
		getOrdersHandler:            getOrdersHandler,
		getOrderTablesHandler:       getOrderTablesHandler,
	}
}

// RegisterRoutes binds every handler to its route on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/menu-groups", s.CreateMenuGroup)
	api.GET("/menu-groups", s.GetMenuGroups)
	api.POST("/products", s.CreateProduct)
	api.GET("/products", s.GetProducts)
	api.POST("/menus", s.CreateMenu)
	api.GET("/menus", s.GetMenus)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.PUT("/orders/:id/status", s.ChangeOrderStatus)
	api.POST("/tables", s.CreateOrderTable)
	api.GET("/tables", s.GetOrderTables)
	api.PUT("/tables/:id/empty", s.ChangeTableEmpty)
	api.PUT("/tables/:id/guests", s.ChangeNumberOfGuests)
	api.POST("/table-groups", s.CreateTableGroup)
	api.DELETE("/table-groups/:id", s.UngroupTable)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateMenuGroup handles POST /api/v1/menu-groups.
func (s *Server) CreateMenuGroup(ctx echo.Context) error {
	var req createMenuGroupRequest
	if err := ctx.Bind(&req); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	groupID := kernel.NewUUID()
	cmd, err := commands.NewCreateMenuGroupCommand(groupID, req.Name)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid menu group data: "+err.Error())
	}

	if err = s.createMenuGroupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, menuGroupResponse{ID: groupID.String(), Name: req.Name})
}

// GetMenuGroups handles GET /api/v1/menu-groups.
func (s *Server) GetMenuGroups(ctx echo.Context) error {
	groups, err := s.getMenuGroupsHandler.Handle(ctx.Request().Context(), queries.NewGetMenuGroupsQuery())
	if err != nil {
		return jsonError(ctx, http.StatusInternalServerError, "Failed to retrieve menu groups")
	}

	response := make([]menuGroupResponse, len(groups))
	for i, group := range groups {
		response[i] = menuGroupResponse{ID: group.ID.String(), Name: group.Name}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req createProductRequest
	if err := ctx.Bind(&req); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(productID, req.Name, req.Price)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid product data: "+err.Error())
	}

	if err = s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, productResponse{
		ID:    productID.String(),
		Name:  req.Name,
		Price: req.Price,
	})
}

// GetProducts handles GET /api/v1/products.
func (s *Server) GetProducts(ctx echo.Context) error {
	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), queries.NewGetProductsQuery())
	if err != nil {
		return jsonError(ctx, http.StatusInternalServerError, "Failed to retrieve products")
	}

	response := make([]productResponse, len(products))
	for i, p := range products {
		response[i] = productResponse{ID: p.ID.String(), Name: p.Name, Price: p.Price}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateMenu handles POST /api/v1/menus.
func (s *Server) CreateMenu(ctx echo.Context) error {
	var req createMenuRequest
	if err := ctx.Bind(&req); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	menuGroupID, err := kernel.UUIDFromString(req.MenuGroupID)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid menu group id")
	}

	items := make([]commands.MenuProductItem, 0, len(req.MenuProducts))
	for _, item := range req.MenuProducts {
		productID, idErr := kernel.UUIDFromString(item.ProductID)
		if idErr != nil {
			return jsonError(ctx, http.StatusBadRequest, "Invalid product id")
		}
		items = append(items, commands.MenuProductItem{ProductID: productID, Quantity: item.Quantity})
	}

	menuID := kernel.NewUUID()
	cmd, err := commands.NewCreateMenuCommand(menuID, req.Name, req.Price, menuGroupID, items)
	if err != nil {
		return jsonError(ctx, statusCodeFor(err), "Invalid menu data: "+err.Error())
	}

	if err = s.createMenuHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": menuID.String()})
}

// GetMenus handles GET /api/v1/menus.
func (s *Server) GetMenus(ctx echo.Context) error {
	menus, err := s.getMenusHandler.Handle(ctx.Request().Context(), queries.NewGetMenusQuery())
	if err != nil {
		return jsonError(ctx, http.StatusInternalServerError, "Failed to retrieve menus")
	}

	response := make([]menuResponse, len(menus))
	for i, m := range menus {
		items := make([]menuProductResponse, len(m.MenuProducts))
		for j, item := range m.MenuProducts {
			items[j] = menuProductResponse{ProductID: item.ProductID.String(), Quantity: item.Quantity}
		}

		response[i] = menuResponse{
			ID:           m.ID.String(),
			Name:         m.Name,
			Price:        m.Price,
			MenuGroupID:  m.MenuGroupID.String(),
			MenuProducts: items,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderTableID, err := kernel.UUIDFromString(req.OrderTableID)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid table id")
	}

	lineItems := make([]commands.OrderLineItem, 0, len(req.LineItems))
	for _, item := range req.LineItems {
		menuID, idErr := kernel.UUIDFromString(item.MenuID)
		if idErr != nil {
			return jsonError(ctx, http.StatusBadRequest, "Invalid menu id")
		}
		lineItems = append(lineItems, commands.OrderLineItem{MenuID: menuID, Quantity: item.Quantity})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, orderTableID, lineItems)
	if err != nil {
		return jsonError(ctx, statusCodeFor(err), "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetOrdersQuery())
	if err != nil {
		return jsonError(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]orderResponse, len(orders))
	for i, o := range orders {
		response[i] = orderResponse{
			ID:           o.ID.String(),
			OrderTableID: o.OrderTableID.String(),
			Status:       o.Status,
			CreatedAt:    o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeOrderStatus handles PUT /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var req changeOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Unknown order status: "+req.Status)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid status data: "+err.Error())
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CreateOrderTable handles POST /api/v1/tables.
func (s *Server) CreateOrderTable(ctx echo.Context) error {
	var req createOrderTableRequest
	if err := ctx.Bind(&req); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	tableID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderTableCommand(tableID, req.Empty)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid table data: "+err.Error())
	}

	if err = s.createOrderTableHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderTableResponse{
		ID:             tableID.String(),
		NumberOfGuests: 0,
		Empty:          req.Empty,
	})
}

// GetOrderTables handles GET /api/v1/tables.
func (s *Server) GetOrderTables(ctx echo.Context) error {
	tables, err := s.getOrderTablesHandler.Handle(ctx.Request().Context(), queries.NewGetOrderTablesQuery())
	if err != nil {
		return jsonError(ctx, http.StatusInternalServerError, "Failed to retrieve tables")
	}

	response := make([]orderTableResponse, len(tables))
	for i, t := range tables {
		var groupID *string
		if t.TableGroupID != nil {
			raw := t.TableGroupID.String()
			groupID = &raw
		}

		response[i] = orderTableResponse{
			ID:             t.ID.String(),
			TableGroupID:   groupID,
			NumberOfGuests: t.NumberOfGuests,
			Empty:          t.Empty,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeTableEmpty handles PUT /api/v1/tables/:id/empty.
func (s *Server) ChangeTableEmpty(ctx echo.Context) error {
	tableID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid table id")
	}

	var req changeTableEmptyRequest
	if err = ctx.Bind(&req); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewChangeTableEmptyCommand(tableID, req.Empty)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid table data: "+err.Error())
	}

	if err = s.changeTableEmptyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ChangeNumberOfGuests handles PUT /api/v1/tables/:id/guests.
func (s *Server) ChangeNumberOfGuests(ctx echo.Context) error {
	tableID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid table id")
	}

	var req changeNumberOfGuestsRequest
	if err = ctx.Bind(&req); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewChangeNumberOfGuestsCommand(tableID, req.NumberOfGuests)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid guest count: "+err.Error())
	}

	if err = s.changeNumberOfGuestsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CreateTableGroup handles POST /api/v1/table-groups.
func (s *Server) CreateTableGroup(ctx echo.Context) error {
	var req createTableGroupRequest
	if err := ctx.Bind(&req); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	tableIDs := make([]kernel.UUID, 0, len(req.OrderTableIDs))
	for _, raw := range req.OrderTableIDs {
		tableID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return jsonError(ctx, http.StatusBadRequest, "Invalid table id")
		}
		tableIDs = append(tableIDs, tableID)
	}

	groupID := kernel.NewUUID()
	cmd, err := commands.NewCreateTableGroupCommand(groupID, tableIDs)
	if err != nil {
		return jsonError(ctx, statusCodeFor(err), "Invalid group data: "+err.Error())
	}

	if err = s.createTableGroupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": groupID.String()})
}

// UngroupTable handles DELETE /api/v1/table-groups/:id.
func (s *Server) UngroupTable(ctx echo.Context) error {
	groupID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid group id")
	}

	cmd, err := commands.NewUngroupTableCommand(groupID)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid group data: "+err.Error())
	}

	if err = s.ungroupTableHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
