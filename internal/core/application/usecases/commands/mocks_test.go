package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/discount"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) GetByOrderID(ctx context.Context, orderID string) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) UpdateStatus(ctx context.Context, orderID string, status order.Status) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}
func (m *MockOrderRepository) GetAllWithShipmentInStatus(ctx context.Context, statuses []order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}
func (m *MockOrderRepository) Delete(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}
func (m *MockProductRepository) GetBatch(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}
func (m *MockProductRepository) AdjustStock(ctx context.Context, id kernel.UUID, delta int) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

type MockDiscountRepository struct{ mock.Mock }

func (m *MockDiscountRepository) GetByCode(ctx context.Context, code string) (*discount.Discount, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discount.Discount), args.Error(1)
}
func (m *MockDiscountRepository) GetAllActiveAt(ctx context.Context, now time.Time) ([]*discount.Discount, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*discount.Discount), args.Error(1)
}
func (m *MockDiscountRepository) AdjustUsage(ctx context.Context, code string, delta int) error {
	args := m.Called(ctx, code, delta)
	return args.Error(0)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepository) GetByPhone(ctx context.Context, phone string) (*customer.Customer, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

type MockCarrierGateway struct{ mock.Mock }

func (m *MockCarrierGateway) ResolveOriginProfile(ctx context.Context) (ports.OriginProfile, error) {
	args := m.Called(ctx)
	return args.Get(0).(ports.OriginProfile), args.Error(1)
}
func (m *MockCarrierGateway) ValidateDestination(ctx context.Context, districtID, provinceID int, wardCode string) error {
	args := m.Called(ctx, districtID, provinceID, wardCode)
	return args.Error(0)
}
func (m *MockCarrierGateway) ResolveServiceID(ctx context.Context, fromDistrict, toDistrict, requestedServiceID int) (int, error) {
	args := m.Called(ctx, fromDistrict, toDistrict, requestedServiceID)
	return args.Int(0), args.Error(1)
}
func (m *MockCarrierGateway) QuoteFee(ctx context.Context, origin ports.OriginProfile, destination kernel.Destination, serviceID int, items []ports.ShipmentItem) (int64, error) {
	args := m.Called(ctx, origin, destination, serviceID, items)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockCarrierGateway) QuoteLeadTime(ctx context.Context, origin ports.OriginProfile, destination kernel.Destination, serviceID int) (time.Time, error) {
	args := m.Called(ctx, origin, destination, serviceID)
	return args.Get(0).(time.Time), args.Error(1)
}
func (m *MockCarrierGateway) CreateShipment(ctx context.Context, req ports.ShipmentRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}
func (m *MockCarrierGateway) UpdateShipment(ctx context.Context, shipmentCode string, update ports.ShipmentUpdate) error {
	args := m.Called(ctx, shipmentCode, update)
	return args.Error(0)
}
func (m *MockCarrierGateway) CancelShipment(ctx context.Context, shipmentCode string) error {
	args := m.Called(ctx, shipmentCode)
	return args.Error(0)
}
func (m *MockCarrierGateway) ReturnShipment(ctx context.Context, shipmentCode string) error {
	args := m.Called(ctx, shipmentCode)
	return args.Error(0)
}
func (m *MockCarrierGateway) UpdateCOD(ctx context.Context, shipmentCode string, amount int64) error {
	args := m.Called(ctx, shipmentCode, amount)
	return args.Error(0)
}
func (m *MockCarrierGateway) GetShipmentDetail(ctx context.Context, shipmentCode string) (ports.ShipmentDetail, error) {
	args := m.Called(ctx, shipmentCode)
	return args.Get(0).(ports.ShipmentDetail), args.Error(1)
}

// MockFulfillmentUoW hands out the repositories it was built with; the
// transaction lifecycle methods always succeed. Sequencing properties
// are asserted on the repositories and the carrier instead.
type MockFulfillmentUoW struct {
	orders    *MockOrderRepository
	products  *MockProductRepository
	discounts *MockDiscountRepository
	customers *MockCustomerRepository
}

func (m *MockFulfillmentUoW) Begin(_ context.Context) error    { return nil }
func (m *MockFulfillmentUoW) Commit(_ context.Context) error   { return nil }
func (m *MockFulfillmentUoW) Rollback(_ context.Context) error { return nil }
func (m *MockFulfillmentUoW) OrderRepository() ports.OrderRepository {
	return m.orders
}
func (m *MockFulfillmentUoW) ProductRepository() ports.ProductRepository {
	return m.products
}
func (m *MockFulfillmentUoW) DiscountRepository() ports.DiscountRepository {
	return m.discounts
}
func (m *MockFulfillmentUoW) CustomerRepository() ports.CustomerRepository {
	return m.customers
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW { return f() }

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW { return f() }

// testFixture bundles the mocks every handler test needs.
type testFixture struct {
	orders    *MockOrderRepository
	products  *MockProductRepository
	discounts *MockDiscountRepository
	customers *MockCustomerRepository
	carrier   *MockCarrierGateway
	factory   FuncFulfillmentUoWFactory
}

func newFixture() *testFixture {
	f := &testFixture{
		orders:    new(MockOrderRepository),
		products:  new(MockProductRepository),
		discounts: new(MockDiscountRepository),
		customers: new(MockCustomerRepository),
		carrier:   new(MockCarrierGateway),
	}
	uow := &MockFulfillmentUoW{
		orders:    f.orders,
		products:  f.products,
		discounts: f.discounts,
		customers: f.customers,
	}
	f.factory = func() commands.FulfillmentUoW { return uow }
	return f
}

func (f *testFixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.orders.AssertExpectations(t)
	f.products.AssertExpectations(t)
	f.discounts.AssertExpectations(t)
	f.customers.AssertExpectations(t)
	f.carrier.AssertExpectations(t)
}

func testDestination(t *testing.T) kernel.Destination {
	t.Helper()
	d, err := kernel.NewDestination("72 Le Loi", 1454, "21012", 202)
	require.NoError(t, err)
	return d
}

func testCustomer(t *testing.T, phone string) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(kernel.NewUUID(), "Nguyen Van A", phone, "72 Le Loi")
	require.NoError(t, err)
	return c
}

func restoredOrder(t *testing.T, status order.Status, shipmentCode, discountCode string, discountAmount int64) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "Ceramic Mug", 2, 30000)
	require.NoError(t, err)
	o, err := order.RestoreOrder(
		kernel.NewUUID(), "ORD_1756400000000", kernel.NewUUID(),
		[]order.Item{item}, 60000, 22000, discountCode, discountAmount,
		60000+22000-discountAmount, testDestination(t), 53320, shipmentCode,
		time.Now().Add(48*time.Hour), status,
	)
	require.NoError(t, err)
	return o
}
