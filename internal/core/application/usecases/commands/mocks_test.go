package commands_test

import (
	"context"
	"errors"

	"dinein/internal/core/application/usecases/commands"
	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/core/domain/model/menu"
	"dinein/internal/core/domain/model/order"
	"dinein/internal/core/domain/model/product"
	"dinein/internal/core/domain/model/table"
	"dinein/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var errNotImplementedInMock = errors.New("not implemented in mock")

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProductRepository) Get(_ context.Context, _ kernel.UUID) (*product.Product, error) {
	return nil, errNotImplementedInMock
}
func (m *MockProductRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]*product.Product), args.Error(1)
}
func (m *MockProductRepository) GetAll(_ context.Context) ([]*product.Product, error) {
	return nil, errNotImplementedInMock
}

type MockMenuGroupRepository struct{ mock.Mock }

func (m *MockMenuGroupRepository) Add(ctx context.Context, g *menu.MenuGroup) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}
func (m *MockMenuGroupRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuGroup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuGroup), args.Error(1)
}
func (m *MockMenuGroupRepository) GetAll(_ context.Context) ([]*menu.MenuGroup, error) {
	return nil, errNotImplementedInMock
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Add(ctx context.Context, aggregate *menu.Menu) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockMenuRepository) Get(_ context.Context, _ kernel.UUID) (*menu.Menu, error) {
	return nil, errNotImplementedInMock
}
func (m *MockMenuRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Menu, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]*menu.Menu), args.Error(1)
}
func (m *MockMenuRepository) GetAll(_ context.Context) ([]*menu.Menu, error) {
	return nil, errNotImplementedInMock
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllByOrderTableID(ctx context.Context, id kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllByOrderTableIDs(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	return nil, errNotImplementedInMock
}

type MockOrderTableRepository struct{ mock.Mock }

func (m *MockOrderTableRepository) Add(ctx context.Context, t *table.OrderTable) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockOrderTableRepository) Update(ctx context.Context, t *table.OrderTable) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockOrderTableRepository) Get(ctx context.Context, id kernel.UUID) (*table.OrderTable, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*table.OrderTable), args.Error(1)
}
func (m *MockOrderTableRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*table.OrderTable, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]*table.OrderTable), args.Error(1)
}
func (m *MockOrderTableRepository) GetAll(_ context.Context) ([]*table.OrderTable, error) {
	return nil, errNotImplementedInMock
}

type MockTableGroupRepository struct{ mock.Mock }

func (m *MockTableGroupRepository) Add(ctx context.Context, g *table.TableGroup) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}
func (m *MockTableGroupRepository) Get(ctx context.Context, id kernel.UUID) (*table.TableGroup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*table.TableGroup), args.Error(1)
}
func (m *MockTableGroupRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUoW implements every per-command unit of work interface so each test
// wires only the repositories its handler touches.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}
func (m *MockUoW) MenuGroupRepository() ports.MenuGroupRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuGroupRepository)
}
func (m *MockUoW) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) OrderTableRepository() ports.OrderTableRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderTableRepository)
}
func (m *MockUoW) TableGroupRepository() ports.TableGroupRepository {
	args := m.Called()
	return args.Get(0).(ports.TableGroupRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockMenuUoWFactory struct{ mock.Mock }

func (m *MockMenuUoWFactory) Create() commands.MenuUoW {
	args := m.Called()
	return args.Get(0).(commands.MenuUoW)
}

type MockTableUoWFactory struct{ mock.Mock }

func (m *MockTableUoWFactory) Create() commands.TableUoW {
	args := m.Called()
	return args.Get(0).(commands.TableUoW)
}

type MockTableGroupUoWFactory struct{ mock.Mock }

func (m *MockTableGroupUoWFactory) Create() commands.TableGroupUoW {
	args := m.Called()
	return args.Get(0).(commands.TableGroupUoW)
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) PublishStatusChanged(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderEventPublisher) Close() error { return nil }
