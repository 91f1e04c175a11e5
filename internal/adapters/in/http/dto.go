package http

import "time"

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type createMenuGroupRequest struct {
	Name string `json:"name"`
}

type menuGroupResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type createProductRequest struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type productResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type menuProductRequest struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

type createMenuRequest struct {
	Name         string               `json:"name"`
	Price        int64                `json:"price"`
	MenuGroupID  string               `json:"menuGroupId"`
	MenuProducts []menuProductRequest `json:"menuProducts"`
}

type menuProductResponse struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

type menuResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Price        int64                 `json:"price"`
	MenuGroupID  string                `json:"menuGroupId"`
	MenuProducts []menuProductResponse `json:"menuProducts"`
}

type orderLineItemRequest struct {
	MenuID   string `json:"menuId"`
	Quantity int64  `json:"quantity"`
}

type createOrderRequest struct {
	OrderTableID string                 `json:"orderTableId"`
	LineItems    []orderLineItemRequest `json:"lineItems"`
}

type changeOrderStatusRequest struct {
	Status string `json:"status"`
}

type orderResponse struct {
	ID           string    `json:"id"`
	OrderTableID string    `json:"orderTableId"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

type createOrderTableRequest struct {
	Empty bool `json:"empty"`
}

type changeTableEmptyRequest struct {
	Empty bool `json:"empty"`
}

type changeNumberOfGuestsRequest struct {
	NumberOfGuests int `json:"numberOfGuests"`
}

type orderTableResponse struct {
	ID             string  `json:"id"`
	TableGroupID   *string `json:"tableGroupId"`
	NumberOfGuests int     `json:"numberOfGuests"`
	Empty          bool    `json:"empty"`
}

type createTableGroupRequest struct {
	OrderTableIDs []string `json:"orderTableIds"`
}
