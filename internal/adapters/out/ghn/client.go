// Package ghn is the HTTP client for the shipping provider. All calls
// are synchronous JSON request/response authenticated with a token
// header plus a shop id header. The client performs no retries; an
// upstream rejection or transport failure surfaces as
// errs.CarrierRejectedError and the calling workflow decides what to
// compensate.
package ghn

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/cache"
	"fulfillment/internal/pkg/errs"

	"github.com/go-resty/resty/v2"
)

const (
	shopAllPath           = "/v2/shop/all"
	districtPath          = "/master-data/district"
	wardPath              = "/master-data/ward"
	availableServicesPath = "/v2/shipping-order/available-services"
	feePath               = "/v2/shipping-order/fee"
	leadTimePath          = "/v2/shipping-order/leadtime"
	createOrderPath       = "/v2/shipping-order/create"
	updateOrderPath       = "/v2/shipping-order/update"
	cancelOrderPath       = "/v2/switch-status/cancel"
	returnOrderPath       = "/v2/switch-status/return"
	updateCODPath         = "/v2/shipping-order/updateCOD"
	orderDetailPath       = "/v2/shipping-order/detail"

	// unitWeightGrams is the assumed parcel weight per item unit; the
	// catalog carries no physical dimensions.
	unitWeightGrams = 500

	// paymentTypeBuyer bills the shipping fee to the recipient, which is
	// how cash-on-delivery orders are booked.
	paymentTypeBuyer = 2

	requiredNote = "KHONGCHOXEMHANG"

	referenceDataTTL = 24 * time.Hour
)

// trackingTimeLayout is the timestamp format of shipment log entries.
const trackingTimeLayout = time.RFC3339

// Client implements ports.CarrierGateway against the provider's public
// API. Reference data lookups (districts, wards, available services)
// go through an optional cache; pass nil to disable caching.
type Client struct {
	http   *resty.Client
	shopID int
	cache  cache.Cache
}

var _ ports.CarrierGateway = (*Client)(nil)

func NewClient(baseURL, token string, shopID int, c cache.Cache) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Token", token).
		SetHeader("ShopId", strconv.Itoa(shopID)).
		SetTimeout(10 * time.Second)

	return &Client{
		http:   httpClient,
		shopID: shopID,
		cache:  c,
	}
}

// call performs a POST with the given body and decodes the envelope's
// data into out. Any outcome other than an envelope with code 200 is a
// CarrierRejectedError.
func (c *Client) call(ctx context.Context, path string, body any, out any) error {
	var env envelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&env).
		Post(path)
	if err != nil {
		return errs.NewCarrierRejectedErrorWithCause(0, fmt.Sprintf("call %s", path), err)
	}
	if resp.StatusCode() != http.StatusOK {
		message := env.Message
		if message == "" {
			message = resp.Status()
		}
		return errs.NewCarrierRejectedError(resp.StatusCode(), message)
	}
	if env.Code != http.StatusOK {
		return errs.NewCarrierRejectedError(env.Code, env.Message)
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errs.NewCarrierRejectedErrorWithCause(resp.StatusCode(), "malformed response data", err)
		}
	}
	return nil
}

// cachedCall serves reference data from the cache when possible and
// falls back to call on a miss. Cache failures are ignored; they only
// cost an extra upstream round trip.
func (c *Client) cachedCall(ctx context.Context, operation, key, path string, body any, out any) error {
	if c.cache == nil {
		return c.call(ctx, path, body, out)
	}

	cacheKey := c.cache.GenerateKey(operation, key)
	if cached, err := c.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		if err := json.Unmarshal([]byte(cached), out); err == nil {
			return nil
		}
	}

	if err := c.call(ctx, path, body, out); err != nil {
		return err
	}

	if encoded, err := json.Marshal(out); err == nil {
		_ = c.cache.Set(ctx, cacheKey, string(encoded), referenceDataTTL)
	}
	return nil
}

func (c *Client) ResolveOriginProfile(ctx context.Context) (ports.OriginProfile, error) {
	var data shopData
	err := c.cachedCall(ctx, "shop", strconv.Itoa(c.shopID), shopAllPath, map[string]any{}, &data)
	if err != nil {
		return ports.OriginProfile{}, err
	}

	for _, shop := range data.Shops {
		if shop.ID == c.shopID {
			return ports.OriginProfile{
				ShopID:     shop.ID,
				Name:       shop.Name,
				Phone:      shop.Phone,
				Address:    shop.Address,
				DistrictID: shop.DistrictID,
				WardCode:   shop.WardCode,
			}, nil
		}
	}
	return ports.OriginProfile{}, errs.NewCarrierRejectedError(http.StatusOK,
		fmt.Sprintf("shop %d is not registered with the carrier", c.shopID))
}

func (c *Client) ValidateDestination(ctx context.Context, districtID, provinceID int, wardCode string) error {
	var districts []districtInfo
	err := c.cachedCall(ctx, "districts", strconv.Itoa(provinceID), districtPath,
		map[string]any{"province_id": provinceID}, &districts)
	if err != nil {
		return err
	}
	districtKnown := false
	for _, d := range districts {
		if d.DistrictID == districtID {
			districtKnown = true
			break
		}
	}
	if !districtKnown {
		return errs.NewValueIsInvalidErrorWithCause("districtID",
			fmt.Errorf("district %d does not belong to province %d", districtID, provinceID))
	}

	var wards []wardInfo
	err = c.cachedCall(ctx, "wards", strconv.Itoa(districtID), wardPath,
		map[string]any{"district_id": districtID}, &wards)
	if err != nil {
		return err
	}
	for _, w := range wards {
		if w.WardCode == wardCode {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("wardCode",
		fmt.Errorf("ward %s does not belong to district %d", wardCode, districtID))
}

func (c *Client) ResolveServiceID(ctx context.Context, fromDistrict, toDistrict, requestedServiceID int) (int, error) {
	var services []serviceInfo
	routeKey := fmt.Sprintf("%d:%d", fromDistrict, toDistrict)
	err := c.cachedCall(ctx, "services", routeKey, availableServicesPath, availableServicesRequest{
		ShopID:       c.shopID,
		FromDistrict: fromDistrict,
		ToDistrict:   toDistrict,
	}, &services)
	if err != nil {
		return 0, err
	}
	if len(services) == 0 {
		return 0, errs.NewNoServiceAvailableError(fromDistrict, toDistrict, requestedServiceID)
	}

	if requestedServiceID == 0 {
		return services[0].ServiceID, nil
	}
	for _, s := range services {
		if s.ServiceID == requestedServiceID {
			return s.ServiceID, nil
		}
	}
	return 0, errs.NewNoServiceAvailableError(fromDistrict, toDistrict, requestedServiceID)
}

func (c *Client) QuoteFee(ctx context.Context, origin ports.OriginProfile, destination kernel.Destination,
	serviceID int, items []ports.ShipmentItem) (int64, error) {
	var data feeData
	err := c.call(ctx, feePath, feeRequest{
		ServiceID:      serviceID,
		FromDistrictID: origin.DistrictID,
		ToDistrictID:   destination.DistrictID(),
		ToWardCode:     destination.WardCode(),
		Weight:         totalWeight(items),
		InsuranceValue: merchandiseValue(items),
		Items:          toItemInfos(items),
	}, &data)
	if err != nil {
		return 0, err
	}
	return data.Total, nil
}

func (c *Client) QuoteLeadTime(ctx context.Context, origin ports.OriginProfile, destination kernel.Destination,
	serviceID int) (time.Time, error) {
	var data leadTimeData
	err := c.call(ctx, leadTimePath, leadTimeRequest{
		ServiceID:      serviceID,
		FromDistrictID: origin.DistrictID,
		ToDistrictID:   destination.DistrictID(),
		ToWardCode:     destination.WardCode(),
	}, &data)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(data.LeadTime, 0).UTC(), nil
}

func (c *Client) CreateShipment(ctx context.Context, req ports.ShipmentRequest) (string, error) {
	var data createOrderData
	err := c.call(ctx, createOrderPath, createOrderRequest{
		ClientOrderCode: req.OrderID,
		ToName:          req.CustomerName,
		ToPhone:         req.CustomerPhone,
		ToAddress:       req.Destination.Address(),
		ToDistrictID:    req.Destination.DistrictID(),
		ToWardCode:      req.Destination.WardCode(),
		ServiceID:       req.ServiceID,
		PaymentTypeID:   paymentTypeBuyer,
		CODAmount:       req.CODAmount,
		Weight:          totalWeight(req.Items),
		RequiredNote:    requiredNote,
		Items:           toItemInfos(req.Items),
	}, &data)
	if err != nil {
		return "", err
	}
	if data.OrderCode == "" {
		return "", errs.NewCarrierRejectedError(http.StatusOK, "booking returned no order code")
	}
	return data.OrderCode, nil
}

func (c *Client) UpdateShipment(ctx context.Context, shipmentCode string, update ports.ShipmentUpdate) error {
	return c.call(ctx, updateOrderPath, updateOrderRequest{
		OrderCode:    shipmentCode,
		ToName:       update.CustomerName,
		ToPhone:      update.CustomerPhone,
		ToAddress:    update.Destination.Address(),
		ToDistrictID: update.Destination.DistrictID(),
		ToWardCode:   update.Destination.WardCode(),
	}, nil)
}

func (c *Client) CancelShipment(ctx context.Context, shipmentCode string) error {
	return c.call(ctx, cancelOrderPath, orderCodeRequest{OrderCodes: []string{shipmentCode}}, nil)
}

func (c *Client) ReturnShipment(ctx context.Context, shipmentCode string) error {
	return c.call(ctx, returnOrderPath, orderCodeRequest{OrderCodes: []string{shipmentCode}}, nil)
}

func (c *Client) UpdateCOD(ctx context.Context, shipmentCode string, amount int64) error {
	return c.call(ctx, updateCODPath, updateCODRequest{OrderCode: shipmentCode, CODAmount: amount}, nil)
}

func (c *Client) GetShipmentDetail(ctx context.Context, shipmentCode string) (ports.ShipmentDetail, error) {
	var data detailData
	err := c.call(ctx, orderDetailPath, detailRequest{OrderCode: shipmentCode}, &data)
	if err != nil {
		return ports.ShipmentDetail{}, err
	}

	status := order.Status(data.Status)
	if err := status.Validate(); err != nil {
		return ports.ShipmentDetail{}, errs.NewCarrierRejectedErrorWithCause(http.StatusOK,
			fmt.Sprintf("shipment %s reports unknown status %q", shipmentCode, data.Status), err)
	}

	log := make([]ports.TrackingEvent, 0, len(data.Log))
	for _, entry := range data.Log {
		timestamp, err := time.Parse(trackingTimeLayout, entry.UpdatedDate)
		if err != nil {
			timestamp = time.Time{}
		}
		log = append(log, ports.TrackingEvent{Status: entry.Status, Timestamp: timestamp})
	}

	return ports.ShipmentDetail{
		ShipmentCode: data.OrderCode,
		Status:       status,
		CODAmount:    data.CODAmount,
		Log:          log,
	}, nil
}

func totalWeight(items []ports.ShipmentItem) int {
	weight := 0
	for _, item := range items {
		weight += item.Quantity * unitWeightGrams
	}
	return weight
}

func merchandiseValue(items []ports.ShipmentItem) int64 {
	var value int64
	for _, item := range items {
		value += item.Price * int64(item.Quantity)
	}
	return value
}

func toItemInfos(items []ports.ShipmentItem) []itemInfo {
	infos := make([]itemInfo, 0, len(items))
	for _, item := range items {
		infos = append(infos, itemInfo{Name: item.Name, Quantity: item.Quantity, Price: item.Price})
	}
	return infos
}
