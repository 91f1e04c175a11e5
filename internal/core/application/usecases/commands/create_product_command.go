package commands

import (
	"errors"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to register a new product.
// Products are the priced ingredients menus are composed of.
//
// Example:
//
//	productID := kernel.NewUUID()
//	cmd, err := NewCreateProductCommand(productID, "Fried Chicken", 1600)
//	if err != nil {
//	    return fmt.Errorf("invalid product data: %w", err)
//	}
//
//	handler := NewCreateProductCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create product: %w", err)
//	}
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	name      kernel.Name
	price     kernel.Price

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a new product.
// Validates that the product ID is valid, the name is not blank, and the
// price is not negative.
func NewCreateProductCommand(productID kernel.UUID, name string, price int64) (CreateProductCommand, error) {
	productCommand := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productCommand.setProductID(productID),
		productCommand.setName(name),
		productCommand.setPrice(price),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the unique identifier for the product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product name.
func (c CreateProductCommand) Name() kernel.Name {
	return c.name
}

// Price returns the product price.
func (c CreateProductCommand) Price() kernel.Price {
	return c.price
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	value, err := kernel.NewName(name)
	if err != nil {
		return err
	}

	c.name = value
	return nil
}

func (c *CreateProductCommand) setPrice(price int64) error {
	value, err := kernel.NewPrice(price)
	if err != nil {
		return err
	}

	c.price = value
	return nil
}
