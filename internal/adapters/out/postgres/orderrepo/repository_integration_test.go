package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence behavior
// against a real PostgreSQL instance, JSONB items included.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(discountCode string, discountAmount int64) *order.Order {
	destination, err := kernel.NewDestination("72 Le Loi", 1454, "21012", 202)
	suite.Require().NoError(err)

	mug, err := order.NewItem(kernel.NewUUID(), "Ceramic Mug", 2, 30000)
	suite.Require().NoError(err)
	pot, err := order.NewItem(kernel.NewUUID(), "Tea Pot", 1, 120000)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), order.NewOrderID(time.Now()), kernel.NewUUID(),
		[]order.Item{mug, pot}, 22000, discountCode, discountAmount,
		destination, 53320, time.Now().Add(48*time.Hour).Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGetByOrderID_RoundTrip() {
	ctx := context.Background()
	aggregate := suite.createTestOrder("SAVE10", 5000)
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.GetByOrderID(ctx, aggregate.OrderID())
	suite.Require().NoError(err)

	suite.Equal(aggregate.OrderID(), loaded.OrderID())
	suite.Equal(aggregate.MerchandiseTotal(), loaded.MerchandiseTotal())
	suite.Equal(aggregate.ShippingFee(), loaded.ShippingFee())
	suite.Equal("SAVE10", loaded.DiscountCode())
	suite.Equal(int64(5000), loaded.DiscountAmount())
	suite.Equal(aggregate.TotalAmount(), loaded.TotalAmount())
	suite.Equal(order.ReadyToPick, loaded.Status())
	suite.True(loaded.Destination().IsEqual(aggregate.Destination()))

	// item snapshots round-trip exactly, line totals untouched
	suite.Require().Len(loaded.Items(), 2)
	suite.Equal("Ceramic Mug", loaded.Items()[0].Name())
	suite.Equal(int64(60000), loaded.Items()[0].LineTotal())
	suite.Equal("Tea Pot", loaded.Items()[1].Name())
	suite.Equal(int64(120000), loaded.Items()[1].LineTotal())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByOrderID_NotFound() {
	_, err := suite.repository.GetByOrderID(context.Background(), "ORD_0")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsShipmentAndStatus() {
	ctx := context.Background()
	aggregate := suite.createTestOrder("", 0)
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Twice()

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	leadTime := time.Now().Add(72 * time.Hour).Truncate(time.Microsecond)
	suite.Require().NoError(aggregate.AttachShipment("GHN123456", leadTime))
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	loaded, err := suite.repository.GetByOrderID(ctx, aggregate.OrderID())
	suite.Require().NoError(err)
	suite.Equal("GHN123456", loaded.ShipmentCode())
	suite.WithinDuration(leadTime, loaded.EstimatedLeadTime(), time.Second)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsZeroShippingFee() {
	ctx := context.Background()
	aggregate := suite.createTestOrder("SAVE10", 5000)
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Twice()

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	// COD equal to merchandise minus discount drives the fee to zero;
	// the zero must reach the row or the reload breaks the money invariant
	suite.Require().NoError(aggregate.ChangeCOD(aggregate.MerchandiseTotal() - aggregate.DiscountAmount()))
	suite.Require().Equal(int64(0), aggregate.ShippingFee())
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	loaded, err := suite.repository.GetByOrderID(ctx, aggregate.OrderID())
	suite.Require().NoError(err)
	suite.Equal(int64(0), loaded.ShippingFee())
	suite.Equal(aggregate.MerchandiseTotal()-aggregate.DiscountAmount(), loaded.TotalAmount())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_WritesStatusOnly() {
	ctx := context.Background()
	aggregate := suite.createTestOrder("", 0)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))
	suite.Require().NoError(suite.repository.UpdateStatus(ctx, aggregate.OrderID(), order.Delivering))

	loaded, err := suite.repository.GetByOrderID(ctx, aggregate.OrderID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivering, loaded.Status())
	suite.Equal(aggregate.TotalAmount(), loaded.TotalAmount())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_UnknownOrder() {
	err := suite.repository.UpdateStatus(context.Background(), "ORD_0", order.Delivered)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllWithShipmentInStatus() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	booked := suite.createTestOrder("", 0)
	suite.Require().NoError(booked.AttachShipment("GHN111", time.Now().Add(time.Hour)))
	suite.Require().NoError(suite.repository.Add(ctx, booked))

	unbooked := suite.createTestOrder("", 0)
	suite.Require().NoError(suite.repository.Add(ctx, unbooked))

	delivered := suite.createTestOrder("", 0)
	suite.Require().NoError(delivered.AttachShipment("GHN222", time.Now().Add(time.Hour)))
	suite.Require().NoError(delivered.SetStatus(order.Delivered))
	suite.Require().NoError(suite.repository.Add(ctx, delivered))

	active, err := suite.repository.GetAllWithShipmentInStatus(ctx,
		[]order.Status{order.ReadyToPick, order.Picking})
	suite.Require().NoError(err)
	suite.Require().Len(active, 1)
	suite.Equal(booked.OrderID(), active[0].OrderID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesOrder() {
	ctx := context.Background()
	aggregate := suite.createTestOrder("", 0)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))
	suite.Require().NoError(suite.repository.Delete(ctx, aggregate.OrderID()))

	_, err := suite.repository.GetByOrderID(ctx, aggregate.OrderID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_UnknownOrder() {
	err := suite.repository.Delete(context.Background(), "ORD_0")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
