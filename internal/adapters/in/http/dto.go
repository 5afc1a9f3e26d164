package http

import (
	"time"

	"github.com/shopspring/decimal"

	"bananex/internal/core/domain/model/order"
	"bananex/internal/core/domain/model/recipient"
)

// dateLayout is the wire format for delivery dates.
const dateLayout = "2006-01-02"

// RecipientRequest is the payload for creating or updating a recipient.
type RecipientRequest struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
	Country    string `json:"country"`
}

// OrderRequest is the payload for creating or updating an order.
// There is deliberately no price field: the price is always computed
// server-side from the banana quantity.
type OrderRequest struct {
	RecipientID    string `json:"recipientId"`
	DeliveryDate   string `json:"deliveryDate"`
	BananaQuantity int    `json:"bananaQuantity"`
}

// RecipientResponse is the representation of a stored recipient.
type RecipientResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
	Country    string `json:"country"`
}

// OrderResponse is the representation of a stored order, carrying the
// recipient snapshot the order was built with and the computed price.
type OrderResponse struct {
	ID             string            `json:"id"`
	Recipient      RecipientResponse `json:"recipient"`
	DeliveryDate   string            `json:"deliveryDate"`
	BananaQuantity int               `json:"bananaQuantity"`
	Price          decimal.Decimal   `json:"price"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func toRecipientResponse(rec *recipient.Recipient) RecipientResponse {
	return RecipientResponse{
		ID:         rec.ID().String(),
		Name:       rec.Name(),
		Address:    rec.Address(),
		PostalCode: rec.PostalCode(),
		City:       rec.City(),
		Country:    rec.Country(),
	}
}

func toRecipientResponses(recs []*recipient.Recipient) []RecipientResponse {
	responses := make([]RecipientResponse, len(recs))
	for i, rec := range recs {
		responses[i] = toRecipientResponse(rec)
	}
	return responses
}

func toOrderResponse(ord *order.Order) OrderResponse {
	rec := ord.Recipient()
	price, _ := ord.Price()

	return OrderResponse{
		ID:             ord.ID().String(),
		Recipient:      toRecipientResponse(&rec),
		DeliveryDate:   ord.DeliveryDate().Format(dateLayout),
		BananaQuantity: ord.BananaQuantity(),
		Price:          price,
	}
}

func toOrderResponses(orders []*order.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i, ord := range orders {
		responses[i] = toOrderResponse(ord)
	}
	return responses
}

// parseDeliveryDate parses the wire date. An empty value maps to the zero
// time so the order validation reports the missing date; a malformed value
// is a validation failure in its own right.
func parseDeliveryDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, raw)
}
