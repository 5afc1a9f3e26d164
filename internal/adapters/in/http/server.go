// Package http provides the echo-based REST adapter for the banana export
// service. It binds request payloads, resolves referenced recipients, invokes
// the domain services, and maps domain errors to HTTP statuses: validation
// failures to 400, absence to 404, everything else to 500.
package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"bananex/internal/core/domain/model/order"
	"bananex/internal/core/domain/model/recipient"
	"bananex/internal/core/domain/services"
	"bananex/internal/pkg/errs"
)

// Server handles the REST routes for recipients and orders.
// It coordinates between HTTP handlers and the domain services.
type Server struct {
	recipients services.RecipientService
	orders     services.OrderService
}

// NewServer creates a new HTTP server with the required domain services.
func NewServer(recipients services.RecipientService, orders services.OrderService) *Server {
	return &Server{
		recipients: recipients,
		orders:     orders,
	}
}

// RegisterRoutes attaches all recipient and order routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/recipient", s.GetAllRecipients)
	e.GET("/recipient/:id", s.GetRecipientByID)
	e.POST("/recipient", s.CreateRecipient)
	e.PUT("/recipient/:id", s.UpdateRecipient)
	e.DELETE("/recipient/:id", s.DeleteRecipient)

	e.GET("/order", s.GetAllOrders)
	e.GET("/order/recipient/:recipientId", s.GetOrdersByRecipient)
	e.POST("/order", s.CreateOrder)
	e.PUT("/order/:id", s.UpdateOrder)
	e.DELETE("/order/:id", s.DeleteOrder)
}

// GetAllRecipients handles GET /recipient - retrieves all recipients.
func (s *Server) GetAllRecipients(ctx echo.Context) error {
	recs, err := s.recipients.ListAll(ctx.Request().Context())
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toRecipientResponses(recs))
}

// GetRecipientByID handles GET /recipient/:id - retrieves one recipient.
func (s *Server) GetRecipientByID(ctx echo.Context) error {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	rec, err := s.recipients.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if rec == nil {
		return s.notFound(ctx, fmt.Sprintf("the recipient %s has not been found", id))
	}
	return ctx.JSON(http.StatusOK, toRecipientResponse(rec))
}

// CreateRecipient handles POST /recipient - validates and stores a recipient.
func (s *Server) CreateRecipient(ctx echo.Context) error {
	var req RecipientRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	created, err := s.recipients.Create(ctx.Request().Context(),
		recipient.NewRecipient(req.Name, req.Address, req.PostalCode, req.City, req.Country))
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toRecipientResponse(created))
}

// UpdateRecipient handles PUT /recipient/:id - replaces an existing recipient.
// The stored identifier is kept; the payload replaces every other field.
func (s *Server) UpdateRecipient(ctx echo.Context) error {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	existing, err := s.recipients.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if existing == nil {
		return s.notFound(ctx, fmt.Sprintf("the recipient %s has not been found", id))
	}

	var req RecipientRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	updated, err := s.recipients.Update(ctx.Request().Context(),
		recipient.Restore(existing.ID(), req.Name, req.Address, req.PostalCode, req.City, req.Country))
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toRecipientResponse(updated))
}

// DeleteRecipient handles DELETE /recipient/:id - removes a recipient and
// echoes the deleted record.
func (s *Server) DeleteRecipient(ctx echo.Context) error {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	existing, err := s.recipients.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if existing == nil {
		return s.notFound(ctx, fmt.Sprintf("the recipient %s has not been found", id))
	}

	if err := s.recipients.DeleteByID(ctx.Request().Context(), id); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toRecipientResponse(existing))
}

// GetAllOrders handles GET /order - retrieves all orders.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	orders, err := s.orders.ListAll(ctx.Request().Context())
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetOrdersByRecipient handles GET /order/recipient/:recipientId - retrieves
// all orders of one recipient, or 404 when the recipient does not exist.
func (s *Server) GetOrdersByRecipient(ctx echo.Context) error {
	recipientID, err := parseID(ctx.Param("recipientId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	rec, err := s.recipients.GetByID(ctx.Request().Context(), recipientID)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if rec == nil {
		return s.notFound(ctx, fmt.Sprintf("the recipient %s does not exist", recipientID))
	}

	orders, err := s.orders.ListByRecipient(ctx.Request().Context(), recipientID)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// CreateOrder handles POST /order - resolves the recipient, validates the
// order, computes its price, and stores it.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req OrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	rec, err := s.resolveRecipient(ctx, req.RecipientID)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if rec == nil {
		return s.notFound(ctx, fmt.Sprintf("the recipient %s of the order has not been found", req.RecipientID))
	}

	newOrder, err := s.buildOrder(rec, req)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err := s.orders.Validate(newOrder); err != nil {
		return s.writeError(ctx, err)
	}

	created, err := s.orders.Create(ctx.Request().Context(), newOrder)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// UpdateOrder handles PUT /order/:id - re-validates, re-prices and stores the
// full order payload under the existing identifier.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req OrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	rec, err := s.resolveRecipient(ctx, req.RecipientID)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if rec == nil {
		return s.notFound(ctx, fmt.Sprintf("the recipient %s of the order has not been found", req.RecipientID))
	}

	exists, err := s.orders.ExistsByID(ctx.Request().Context(), id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if !exists {
		return s.notFound(ctx, fmt.Sprintf("the order %s to update has not been found", id))
	}

	orderToUpdate, err := s.buildOrder(rec, req)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err := s.orders.Validate(orderToUpdate); err != nil {
		return s.writeError(ctx, err)
	}

	updated, err := s.orders.Update(ctx.Request().Context(), orderToUpdate.WithID(id))
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// DeleteOrder handles DELETE /order/:id - removes an order.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	exists, err := s.orders.ExistsByID(ctx.Request().Context(), id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if !exists {
		return s.notFound(ctx, fmt.Sprintf("the order %s has not been found", id))
	}

	if err := s.orders.DeleteByID(ctx.Request().Context(), id); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusOK)
}

// resolveRecipient looks up the recipient referenced by an order payload.
// A nil recipient with nil error means the reference does not exist.
func (s *Server) resolveRecipient(ctx echo.Context, rawID string) (*recipient.Recipient, error) {
	recipientID, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	return s.recipients.GetByID(ctx.Request().Context(), recipientID)
}

// buildOrder constructs the domain order from the payload and the resolved
// recipient snapshot. Any client-supplied price never reaches this point:
// OrderRequest has no price field.
func (s *Server) buildOrder(rec *recipient.Recipient, req OrderRequest) (*order.Order, error) {
	deliveryDate, err := parseDeliveryDate(req.DeliveryDate)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"the delivery date must use the YYYY-MM-DD format", err)
	}
	return order.NewOrder(*rec, deliveryDate, req.BananaQuantity), nil
}

// writeError maps a domain error to its HTTP status: validation failures are
// the caller's fault (400), absence is 404, everything else is a server
// fault (500).
func (s *Server) writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errs.IsValidationError(err):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	}
	return ctx.JSON(status, ErrorResponse{Code: status, Message: err.Error()})
}

func (s *Server) notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, ErrorResponse{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// parseID parses an identifier path or payload segment.
func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.NewValueIsInvalidErrorWithCause(
			fmt.Sprintf("%q is not a valid identifier", raw), err)
	}
	return id, nil
}
