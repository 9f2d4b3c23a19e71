// Package http is the inbound HTTP adapter. It binds requests, builds
// commands and queries, and translates use-case results and errors into
// the JSON API surface. No business rules live here.
package http

import (
	"net/http"
	"strconv"
	"time"

	"trackgate/internal/adapters/in/carrier"
	"trackgate/internal/core/application/usecases/commands"
	"trackgate/internal/core/application/usecases/queries"
	"trackgate/internal/core/domain/model/kernel"
	"trackgate/internal/core/domain/model/shipment"
	"trackgate/internal/core/domain/model/trackingevent"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createMerchantHandler      commands.CreateMerchantCommandHandler
	createShipmentHandler      commands.CreateShipmentCommandHandler
	updateStatusHandler        commands.UpdateShipmentStatusCommandHandler
	addEventHandler            commands.AddTrackingEventCommandHandler
	processCarrierEventHandler commands.ProcessCarrierEventCommandHandler

	// Query handlers
	getShipmentHandler   queries.GetShipmentQueryHandler
	listShipmentsHandler queries.ListShipmentsQueryHandler
	listMerchantsHandler queries.ListMerchantsQueryHandler
	listEventsHandler    queries.ListShipmentEventsQueryHandler

	carriers *carrier.Registry
}

// NewServer creates an HTTP server with the required command and query
// handlers and the carrier adapter registry.
func NewServer(
	createMerchantHandler commands.CreateMerchantCommandHandler,
	createShipmentHandler commands.CreateShipmentCommandHandler,
	updateStatusHandler commands.UpdateShipmentStatusCommandHandler,
	addEventHandler commands.AddTrackingEventCommandHandler,
	processCarrierEventHandler commands.ProcessCarrierEventCommandHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	listShipmentsHandler queries.ListShipmentsQueryHandler,
	listMerchantsHandler queries.ListMerchantsQueryHandler,
	listEventsHandler queries.ListShipmentEventsQueryHandler,
	carriers *carrier.Registry,
) *Server {
	return &Server{
		createMerchantHandler:      createMerchantHandler,
		createShipmentHandler:      createShipmentHandler,
		updateStatusHandler:        updateStatusHandler,
		addEventHandler:            addEventHandler,
		processCarrierEventHandler: processCarrierEventHandler,
		getShipmentHandler:         getShipmentHandler,
		listShipmentsHandler:       listShipmentsHandler,
		listMerchantsHandler:       listMerchantsHandler,
		listEventsHandler:          listEventsHandler,
		carriers:                   carriers,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/merchants", s.CreateMerchant)
	api.GET("/merchants", s.ListMerchants)

	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments", s.ListShipments)
	api.GET("/shipments/:id", s.GetShipment)
	api.PATCH("/shipments/:id/status", s.UpdateShipmentStatus)
	api.POST("/shipments/:id/events", s.AddShipmentEvent)
	api.GET("/shipments/:id/events", s.ListShipmentEvents)

	api.POST("/carriers/events", s.ProcessCarrierEvent)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// CreateMerchant handles POST /api/v1/merchants.
func (s *Server) CreateMerchant(ctx echo.Context) error {
	var request CreateMerchantRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, http.StatusBadRequest, codeBadRequest, "invalid request body")
	}

	cmd, err := commands.NewCreateMerchantCommand(request.Name)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, codeBadRequest, err.Error())
	}

	created, err := s.createMerchantHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MerchantResponse{
		ID:   created.ID().String(),
		Name: created.Name(),
	})
}

// ListMerchants handles GET /api/v1/merchants.
func (s *Server) ListMerchants(ctx echo.Context) error {
	merchants, err := s.listMerchantsHandler.Handle(ctx.Request().Context(), queries.NewListMerchantsQuery())
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := make([]MerchantResponse, len(merchants))
	for i, model := range merchants {
		createdAt := model.CreatedAt
		response[i] = MerchantResponse{
			ID:        model.ID.String(),
			Name:      model.Name,
			CreatedAt: &createdAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateShipment handles POST /api/v1/shipments. A newly created shipment
// answers 201; an existing one for the same (merchant, external reference)
// pair answers 200 with the same body shape.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var request CreateShipmentRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, http.StatusBadRequest, codeBadRequest, "invalid request body")
	}

	merchantID, err := kernel.UUIDFromString(request.MerchantID)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, codeBadRequest, "invalid merchant_id")
	}

	cmd, err := commands.NewCreateShipmentCommand(merchantID, request.Name, request.ExternalReference)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, codeBadRequest, err.Error())
	}

	result, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}

	return ctx.JSON(status, shipmentResponseFromDomain(result.Shipment))
}

// GetShipment handles GET /api/v1/shipments/:id.
func (s *Server) GetShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, codeBadRequest, "invalid shipment id")
	}

	query, err := queries.NewGetShipmentQuery(shipmentID)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, codeBadRequest, err.Error())
	}

	model, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentResponseFromReadModel(model))
}

// ListShipments handles GET /api/v1/shipments with optional merchant_id
// and status filters plus limit/offset pagination.
func (s *Server) ListShipments(ctx echo.Context) error {
	var merchantID *kernel.UUID
	if raw := ctx.QueryParam("merchant_id"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeError(ctx, http.StatusBadRequest, codeBadRequest, "invalid merchant_id")
		}
		merchantID = &id
	}

	var status *shipment.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := shipment.StatusFromString(raw)
		if err != nil {
			return writeError(ctx, http.StatusBadRequest, codeBadRequest, "invalid status")
		}
		status = &parsed
	}

	limit, err := intQueryParam(ctx, "limit", 0)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, codeBadRequest, "invalid limit")
	}

	offset, err := intQueryParam(ctx, "offset", 0)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, codeBadRequest, "invalid offset")
	}

	query, err := queries.NewListShipmentsQuery(merchantID, status, limit, offset)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	shipments, err := s.listShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := make([]ShipmentResponse, len(shipments))
	for i, model := range shipments {
		response[i] = shipmentResponseFromReadModel(model)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateShipmentStatus handles PATCH /api/v1/shipments/:id/status.
func (s *Server) UpdateShipmentStatus(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, codeBadRequest, "invalid shipment id")
	}

	var request UpdateShipmentStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return writeError(ctx, http.StatusBadRequest, codeBadRequest, "invalid request body")
	}

	status, err := shipment.StatusFromString(request.Status)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, codeBadRequest, "invalid status")
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(shipmentID, status)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, codeBadRequest, err.Error())
	}

	updated, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentResponseFromDomain(updated))
}

// AddShipmentEvent handles POST /api/v1/shipments/:id/events.
func (s *Server) AddShipmentEvent(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, codeBadRequest, "invalid shipment id")
	}

	var request AddShipmentEventRequest
	if err = ctx.Bind(&request); err != nil {
		return writeError(ctx, http.StatusBadRequest, codeBadRequest, "invalid request body")
	}

	eventType, err := trackingevent.EventTypeFromString(request.Type)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, codeBadRequest, "invalid event type")
	}

	source, err := trackingevent.SourceFromString(request.Source)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, codeBadRequest, "invalid event source")
	}

	var occurredAt time.Time
	if request.OccurredAt != nil {
		occurredAt = *request.OccurredAt
	}

	cmd, err := commands.NewAddTrackingEventCommand(shipmentID, eventType, source, request.Reason, occurredAt)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, codeBadRequest, err.Error())
	}

	event, err := s.addEventHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, eventResponseFromDomain(event))
}

// ListShipmentEvents handles GET /api/v1/shipments/:id/events.
func (s *Server) ListShipmentEvents(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, codeBadRequest, "invalid shipment id")
	}

	query, err := queries.NewListShipmentEventsQuery(shipmentID)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, codeBadRequest, err.Error())
	}

	events, err := s.listEventsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := make([]ShipmentEventResponse, len(events))
	for i, model := range events {
		response[i] = shipmentEventResponseFromReadModel(model)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ProcessCarrierEvent handles POST /api/v1/carriers/events, the inbound
// carrier webhook. The named adapter translates the payload; the status
// change and the event append are applied atomically.
func (s *Server) ProcessCarrierEvent(ctx echo.Context) error {
	var request CarrierEventRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, http.StatusBadRequest, codeBadRequest, "invalid request body")
	}

	adapter, err := s.carriers.Resolve(request.Carrier)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	merchantID, err := kernel.UUIDFromString(request.MerchantID)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, codeBadRequest, "invalid merchant_id")
	}

	var eventTime time.Time
	if request.EventTime != nil {
		eventTime = *request.EventTime
	}

	result, err := adapter.IngestEvent(carrier.ExternalEvent{
		MerchantID:        merchantID,
		ExternalReference: request.ExternalReference,
		EventCode:         request.EventCode,
		EventTime:         eventTime,
		Reason:            request.Reason,
	})
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := commands.NewProcessCarrierEventCommand(
		result.MerchantID,
		result.ExternalReference,
		result.EventType,
		result.TargetStatus,
		result.Reason,
		result.OccurredAt,
	)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, codeBadRequest, err.Error())
	}

	outcome, err := s.processCarrierEventHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CarrierEventResponse{
		Shipment: shipmentResponseFromDomain(outcome.Shipment),
		Event:    eventResponseFromDomain(outcome.Event),
	})
}

func shipmentResponseFromDomain(aggregate *shipment.Shipment) ShipmentResponse {
	return ShipmentResponse{
		ID:                aggregate.ID().String(),
		MerchantID:        aggregate.MerchantID().String(),
		Name:              aggregate.Name(),
		ExternalReference: aggregate.ExternalReference(),
		Status:            aggregate.Status().String(),
	}
}

func eventResponseFromDomain(event *trackingevent.TrackingEvent) ShipmentEventResponse {
	return ShipmentEventResponse{
		ID:         event.ID().String(),
		ShipmentID: event.ShipmentID().String(),
		Type:       event.Type().String(),
		Source:     event.Source().String(),
		Reason:     event.Reason(),
		OccurredAt: event.OccurredAt(),
	}
}

func intQueryParam(ctx echo.Context, name string, fallback int) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
