package dto

type ShipmentResponse struct {
	ID          string  `json:"id"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	WeightKg    float64 `json:"weight_kg"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
	ETA         *string `json:"eta"`
	Carrier     *string `json:"carrier"`
	TrackingID  *string `json:"tracking_id"`
	CreatedAt   string  `json:"created_at"`
}

type ListShipmentsResponse struct {
	Shipments []ShipmentResponse `json:"shipments"`
}

type CreateShipmentRequest struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	WeightKg    float64 `json:"weight_kg"`
	Priority    string  `json:"priority"`
}

type CreateShipmentResponse struct {
	ID string `json:"id"`
}

type AssignCarrierRequest struct {
	Carrier    string `json:"carrier"`
	TrackingID string `json:"tracking_id"`
	ETADays    int    `json:"eta_days"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type BatchRequest struct {
	ShipmentIDs []string `json:"shipment_ids"`
}

type BatchResponse struct {
	TotalShipments int            `json:"total_shipments"`
	ByCarrier      map[string]int `json:"by_carrier"`
	ByPriority     map[string]int `json:"by_priority"`
}
