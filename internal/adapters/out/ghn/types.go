package ghn

import "encoding/json"

// envelope is the response wrapper every carrier endpoint returns.
// Code mirrors the HTTP status; Data is decoded per endpoint.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type shopData struct {
	Shops []shopInfo `json:"shops"`
}

type shopInfo struct {
	ID         int    `json:"_id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	DistrictID int    `json:"district_id"`
	WardCode   string `json:"ward_code"`
}

type districtInfo struct {
	DistrictID int    `json:"DistrictID"`
	ProvinceID int    `json:"ProvinceID"`
	Name       string `json:"DistrictName"`
}

type wardInfo struct {
	WardCode   string `json:"WardCode"`
	DistrictID int    `json:"DistrictID"`
	Name       string `json:"WardName"`
}

type availableServicesRequest struct {
	ShopID       int `json:"shop_id"`
	FromDistrict int `json:"from_district"`
	ToDistrict   int `json:"to_district"`
}

type serviceInfo struct {
	ServiceID   int    `json:"service_id"`
	ServiceType int    `json:"service_type_id"`
	Name        string `json:"short_name"`
}

type feeRequest struct {
	ServiceID      int        `json:"service_id"`
	FromDistrictID int        `json:"from_district_id"`
	ToDistrictID   int        `json:"to_district_id"`
	ToWardCode     string     `json:"to_ward_code"`
	Weight         int        `json:"weight"`
	InsuranceValue int64      `json:"insurance_value"`
	Items          []itemInfo `json:"items"`
}

type feeData struct {
	Total int64 `json:"total"`
}

type leadTimeRequest struct {
	ServiceID      int    `json:"service_id"`
	FromDistrictID int    `json:"from_district_id"`
	ToDistrictID   int    `json:"to_district_id"`
	ToWardCode     string `json:"to_ward_code"`
}

type leadTimeData struct {
	// LeadTime is a unix timestamp in seconds.
	LeadTime int64 `json:"leadtime"`
}

type itemInfo struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

type createOrderRequest struct {
	ClientOrderCode string     `json:"client_order_code"`
	ToName          string     `json:"to_name"`
	ToPhone         string     `json:"to_phone"`
	ToAddress       string     `json:"to_address"`
	ToDistrictID    int        `json:"to_district_id"`
	ToWardCode      string     `json:"to_ward_code"`
	ServiceID       int        `json:"service_id"`
	PaymentTypeID   int        `json:"payment_type_id"`
	CODAmount       int64      `json:"cod_amount"`
	Weight          int        `json:"weight"`
	RequiredNote    string     `json:"required_note"`
	Items           []itemInfo `json:"items"`
}

type createOrderData struct {
	OrderCode string `json:"order_code"`
}

type updateOrderRequest struct {
	OrderCode    string `json:"order_code"`
	ToName       string `json:"to_name"`
	ToPhone      string `json:"to_phone"`
	ToAddress    string `json:"to_address"`
	ToDistrictID int    `json:"to_district_id"`
	ToWardCode   string `json:"to_ward_code"`
}

type orderCodeRequest struct {
	OrderCodes []string `json:"order_codes"`
}

type updateCODRequest struct {
	OrderCode string `json:"order_code"`
	CODAmount int64  `json:"cod_amount"`
}

type detailRequest struct {
	OrderCode string `json:"order_code"`
}

type detailData struct {
	OrderCode string      `json:"order_code"`
	Status    string      `json:"status"`
	CODAmount int64       `json:"cod_amount"`
	Log       []detailLog `json:"log"`
}

type detailLog struct {
	Status      string `json:"status"`
	UpdatedDate string `json:"updated_date"`
}
