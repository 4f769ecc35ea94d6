package http

import "time"

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// QuoteRequest carries the inputs of an ad-hoc price quote: a delivery zip
// plus the service selection. Weight applies to wash & fold, item quantities
// to specialty; the unused field is ignored.
type QuoteRequest struct {
	ZipCode            string         `json:"zipCode"`
	ServiceID          string         `json:"serviceId"`
	EstimatedWeightLbs int            `json:"estimatedWeightLbs,omitempty"`
	ItemQuantities     map[string]int `json:"itemQuantities,omitempty"`
}

// QuoteResponse returns the classified zone and the computed price breakdown.
type QuoteResponse struct {
	Zone      string `json:"zone"`
	Subtotal  string `json:"subtotal"`
	Surcharge string `json:"surcharge"`
	Total     string `json:"total"`
}

// BookingRequest is the full submission of a booking session. The server
// replays it through the booking wizard, so every step guard applies exactly
// as it would in the interactive flow.
type BookingRequest struct {
	CustomerName        string         `json:"customerName"`
	StudentEntry        bool           `json:"studentEntry,omitempty"`
	ZipCode             string         `json:"zipCode"`
	Address             string         `json:"address"`
	ServiceID           string         `json:"serviceId"`
	EstimatedWeightLbs  int            `json:"estimatedWeightLbs,omitempty"`
	ItemQuantities      map[string]int `json:"itemQuantities,omitempty"`
	PickupDate          string         `json:"pickupDate"`
	PickupTimeSlot      string         `json:"pickupTimeSlot"`
	SpecialInstructions string         `json:"specialInstructions,omitempty"`
}

// BookingResponse returns the identifier of the created order together with
// the priced breakdown the customer confirmed.
type BookingResponse struct {
	OrderID   string `json:"orderId"`
	Zone      string `json:"zone"`
	Subtotal  string `json:"subtotal"`
	Surcharge string `json:"surcharge"`
	Total     string `json:"total"`
}

// OrderResponse is one row of an order listing.
type OrderResponse struct {
	ID             string    `json:"id"`
	CustomerName   string    `json:"customerName"`
	ServiceName    string    `json:"serviceName"`
	Status         string    `json:"status"`
	PickupDate     time.Time `json:"pickupDate"`
	PickupTimeSlot string    `json:"pickupTimeSlot"`
	Total          string    `json:"total"`
}

// UpdateOrderStatusRequest names the lifecycle transition to apply.
type UpdateOrderStatusRequest struct {
	Transition string `json:"transition"`
}

// StainRequestRequest files a stain-treatment request, optionally linked to
// an existing order.
type StainRequestRequest struct {
	OrderID     string `json:"orderId,omitempty"`
	Garment     string `json:"garment"`
	Description string `json:"description"`
}

// StainRequestResponse returns the identifier of the filed request.
type StainRequestResponse struct {
	RequestID string `json:"requestId"`
}

// PendingStainRequestResponse is one row of the pending-requests listing.
type PendingStainRequestResponse struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"orderId,omitempty"`
	Garment     string    `json:"garment"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ReviewStainRequestRequest records a staff decision on a pending request.
type ReviewStainRequestRequest struct {
	Resolution string `json:"resolution"`
	Note       string `json:"note,omitempty"`
}

// ServiceResponse is one catalog entry of the service listing.
type ServiceResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	UnitPrice   string `json:"unitPrice"`
	Unit        string `json:"unit"`
	Category    string `json:"category"`
}
