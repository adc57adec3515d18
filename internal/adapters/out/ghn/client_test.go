package ghn

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "test-token", 4200, nil)
}

func respond(t *testing.T, w http.ResponseWriter, code int, message string, data any) {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(envelope{Code: code, Message: message, Data: raw}))
}

func testDestination(t *testing.T) kernel.Destination {
	t.Helper()
	destination, err := kernel.NewDestination("72 Le Loi", 1454, "21012", 202)
	require.NoError(t, err)
	return destination
}

func TestClient_SendsAuthHeaders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-token", r.Header.Get("Token"))
		assert.Equal(t, "4200", r.Header.Get("ShopId"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		respond(t, w, http.StatusOK, "Success", detailData{OrderCode: "GHN123", Status: "picking"})
	})

	_, err := client.GetShipmentDetail(context.Background(), "GHN123")
	require.NoError(t, err)
}

func TestClient_CreateShipment(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, createOrderPath, r.URL.Path)

		var req createOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ORD_1756400000000", req.ClientOrderCode)
		assert.Equal(t, "Nguyen Van A", req.ToName)
		assert.Equal(t, 1454, req.ToDistrictID)
		assert.Equal(t, "21012", req.ToWardCode)
		assert.Equal(t, int64(82000), req.CODAmount)
		assert.Equal(t, 2, req.PaymentTypeID)
		assert.Equal(t, 1000, req.Weight)

		respond(t, w, http.StatusOK, "Success", createOrderData{OrderCode: "GHN123"})
	})

	code, err := client.CreateShipment(context.Background(), ports.ShipmentRequest{
		OrderID:       "ORD_1756400000000",
		CustomerName:  "Nguyen Van A",
		CustomerPhone: "0901234567",
		Destination:   testDestination(t),
		ServiceID:     53320,
		CODAmount:     82000,
		Items:         []ports.ShipmentItem{{Name: "Ceramic Mug", Quantity: 2, Price: 30000}},
	})

	require.NoError(t, err)
	assert.Equal(t, "GHN123", code)
}

func TestClient_CreateShipment_UpstreamRejection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, http.StatusBadRequest, "address out of coverage", nil)
	})

	_, err := client.CreateShipment(context.Background(), ports.ShipmentRequest{
		OrderID:     "ORD_1756400000000",
		Destination: testDestination(t),
	})

	require.ErrorIs(t, err, errs.ErrCarrierRejected)
	var rejection *errs.CarrierRejectedError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, http.StatusBadRequest, rejection.StatusCode)
	assert.Equal(t, "address out of coverage", rejection.Message)
}

func TestClient_CreateShipment_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()
	client := NewClient(server.URL, "test-token", 4200, nil)

	_, err := client.CreateShipment(context.Background(), ports.ShipmentRequest{
		OrderID:     "ORD_1756400000000",
		Destination: testDestination(t),
	})

	require.ErrorIs(t, err, errs.ErrCarrierRejected)
}

func TestClient_ValidateDestination(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case districtPath:
			respond(t, w, http.StatusOK, "Success", []districtInfo{
				{DistrictID: 1454, ProvinceID: 202, Name: "Quan 10"},
			})
		case wardPath:
			respond(t, w, http.StatusOK, "Success", []wardInfo{
				{WardCode: "21012", DistrictID: 1454, Name: "Phuong 12"},
			})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	ctx := context.Background()
	require.NoError(t, client.ValidateDestination(ctx, 1454, 202, "21012"))

	err := client.ValidateDestination(ctx, 9999, 202, "21012")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	err = client.ValidateDestination(ctx, 1454, 202, "99999")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestClient_ResolveServiceID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, availableServicesPath, r.URL.Path)

		var req availableServicesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 4200, req.ShopID)

		respond(t, w, http.StatusOK, "Success", []serviceInfo{
			{ServiceID: 53320, Name: "Standard"},
			{ServiceID: 53322, Name: "Heavy"},
		})
	})

	ctx := context.Background()

	serviceID, err := client.ResolveServiceID(ctx, 1442, 1454, 0)
	require.NoError(t, err)
	assert.Equal(t, 53320, serviceID)

	serviceID, err = client.ResolveServiceID(ctx, 1442, 1454, 53322)
	require.NoError(t, err)
	assert.Equal(t, 53322, serviceID)

	_, err = client.ResolveServiceID(ctx, 1442, 1454, 77777)
	require.ErrorIs(t, err, errs.ErrNoServiceAvailable)
}

func TestClient_ResolveServiceID_EmptyRoute(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, http.StatusOK, "Success", []serviceInfo{})
	})

	_, err := client.ResolveServiceID(context.Background(), 1442, 9999, 0)
	require.ErrorIs(t, err, errs.ErrNoServiceAvailable)
}

func TestClient_QuoteFeeAndLeadTime(t *testing.T) {
	leadTime := time.Date(2026, 9, 2, 8, 0, 0, 0, time.UTC)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case feePath:
			var req feeRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, int64(60000), req.InsuranceValue)
			respond(t, w, http.StatusOK, "Success", feeData{Total: 22000})
		case leadTimePath:
			respond(t, w, http.StatusOK, "Success", leadTimeData{LeadTime: leadTime.Unix()})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	ctx := context.Background()
	origin := ports.OriginProfile{ShopID: 4200, DistrictID: 1442, WardCode: "20101"}
	items := []ports.ShipmentItem{{Name: "Ceramic Mug", Quantity: 2, Price: 30000}}

	fee, err := client.QuoteFee(ctx, origin, testDestination(t), 53320, items)
	require.NoError(t, err)
	assert.Equal(t, int64(22000), fee)

	estimate, err := client.QuoteLeadTime(ctx, origin, testDestination(t), 53320)
	require.NoError(t, err)
	assert.True(t, leadTime.Equal(estimate))
}

func TestClient_GetShipmentDetail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, orderDetailPath, r.URL.Path)
		respond(t, w, http.StatusOK, "Success", detailData{
			OrderCode: "GHN123",
			Status:    "delivering",
			CODAmount: 82000,
			Log: []detailLog{
				{Status: "picked", UpdatedDate: "2026-08-29T09:00:00Z"},
				{Status: "delivering", UpdatedDate: "2026-08-30T07:30:00Z"},
			},
		})
	})

	detail, err := client.GetShipmentDetail(context.Background(), "GHN123")
	require.NoError(t, err)
	assert.Equal(t, "GHN123", detail.ShipmentCode)
	assert.Equal(t, order.Delivering, detail.Status)
	assert.Equal(t, int64(82000), detail.CODAmount)
	require.Len(t, detail.Log, 2)
	assert.Equal(t, "picked", detail.Log[0].Status)
	assert.Equal(t, time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC), detail.Log[0].Timestamp.UTC())
}

func TestClient_GetShipmentDetail_UnknownStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, http.StatusOK, "Success", detailData{OrderCode: "GHN123", Status: "teleported"})
	})

	_, err := client.GetShipmentDetail(context.Background(), "GHN123")
	require.ErrorIs(t, err, errs.ErrCarrierRejected)
}

func TestClient_SwitchStatusAndCOD(t *testing.T) {
	var mu sync.Mutex
	paths := make([]string, 0, 3)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()

		if r.URL.Path == cancelOrderPath || r.URL.Path == returnOrderPath {
			var req orderCodeRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, []string{"GHN123"}, req.OrderCodes)
		}
		respond(t, w, http.StatusOK, "Success", nil)
	})

	ctx := context.Background()
	require.NoError(t, client.CancelShipment(ctx, "GHN123"))
	require.NoError(t, client.ReturnShipment(ctx, "GHN123"))
	require.NoError(t, client.UpdateCOD(ctx, "GHN123", 90000))

	assert.Equal(t, []string{cancelOrderPath, returnOrderPath, updateCODPath}, paths)
}

// stubCache is an in-memory cache.Cache for exercising reference data caching.
type stubCache struct {
	mu      sync.Mutex
	entries map[string]string
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string]string)}
}

func (s *stubCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value.(string)
	return nil
}

func (s *stubCache) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries[key], nil
}

func (s *stubCache) GenerateKey(operation, key string) string {
	return "test:" + operation + ":" + key
}

func TestClient_ReferenceDataIsCached(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		switch r.URL.Path {
		case districtPath:
			respond(t, w, http.StatusOK, "Success", []districtInfo{{DistrictID: 1454, ProvinceID: 202}})
		case wardPath:
			respond(t, w, http.StatusOK, "Success", []wardInfo{{WardCode: "21012", DistrictID: 1454}})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	t.Cleanup(server.Close)
	client := NewClient(server.URL, "test-token", 4200, newStubCache())

	ctx := context.Background()
	require.NoError(t, client.ValidateDestination(ctx, 1454, 202, "21012"))
	require.NoError(t, client.ValidateDestination(ctx, 1454, 202, "21012"))

	assert.Equal(t, 2, hits)
}
