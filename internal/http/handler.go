package http

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/sunilmaharaj1991-max/BlinkLean/internal/catalog"
	"github.com/sunilmaharaj1991-max/BlinkLean/internal/domain/dto"
	"github.com/sunilmaharaj1991-max/BlinkLean/internal/domain/model"
	"github.com/sunilmaharaj1991-max/BlinkLean/internal/i18n"
	"github.com/sunilmaharaj1991-max/BlinkLean/internal/service"
)

// Services groups the collaborators the handlers delegate to.
type Services struct {
	Availability service.AvailabilityChecker
	Pricer       service.Pricer
	Addresses    service.AddressSuggester
	Assistant    service.Assistant
	Zones        *catalog.ZoneRegistry
	Rates        *catalog.RateTable
}

// Handler provides the HTTP handlers for the /api routes.
type Handler struct {
	svc Services

	zonesOnce sync.Once
	zones     *geojson.FeatureCollection
	ratesOnce sync.Once
	rates     dto.RatesResponse
}

// NewHandler creates a new Handler instance.
func NewHandler(svc Services) *Handler {
	return &Handler{svc: svc}
}

// CheckAvailability handles POST /api/availability/check requests.
//
// @Summary      Check service availability
// @Description  Resolves a location against the service zones and reports which services can be booked there. A point on a zone boundary counts as inside.
// @Tags         Availability
// @Accept       json
// @Produce      json
// @Param        request body dto.AvailabilityRequest true "Location"
// @Success      200 {object} dto.SuccessResponse{data=model.AvailabilityReport} "Serviceability report"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid coordinates"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      504 {object} dto.ErrorResponse "Request timed out"
// @Router       /api/availability/check [post]
func (h *Handler) CheckAvailability(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.AvailabilityRequest](c)
	if err != nil {
		builder.BindError(err, availabilityFieldKey)
		return
	}

	report, err := h.svc.Availability.Check(c.Request.Context(), req.Query())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			builder.Error(http.StatusGatewayTimeout, i18n.ErrKeyTimeout, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(report)
}

// PredictScrap handles POST /api/scrap/predict requests.
//
// @Summary      Estimate scrap value
// @Description  Values a basket of recyclable materials at current market rates. Unknown materials are priced as mixed scrap. Every call draws a fresh market fluctuation, so repeated calls may differ; send an Idempotency-Key to replay a quote.
// @Tags         Scrap
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.PredictRequest true "Materials and weights"
// @Success      200 {object} dto.SuccessResponse{data=dto.PredictResponse} "Basket valuation"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid items or weights"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/scrap/predict [post]
func (h *Handler) PredictScrap(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.PredictRequest](c)
	if err != nil {
		builder.BindError(err, predictFieldKey)
		return
	}

	prediction, err := h.svc.Pricer.Predict(req.ScrapItems())
	if err != nil {
		if errors.Is(err, service.ErrInvalidWeight) {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationWeight, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(dto.PredictResponse{
		BasketPrediction: prediction,
		Currency:         h.currency(),
		Advisory:         service.Advisory(prediction),
	})
}

func availabilityFieldKey(field string) string {
	switch field {
	case "Latitude", "Longitude":
		return i18n.ErrKeyValidationCoordinates
	default:
		return i18n.ErrKeyInvalidRequest
	}
}

func predictFieldKey(field string) string {
	if field == "Weight" {
		return i18n.ErrKeyValidationWeight
	}
	return i18n.ErrKeyValidationItems
}

// SuggestAddresses handles POST /api/address/suggest requests.
//
// @Summary      Suggest addresses
// @Description  Searches the address book by address text or pincode and annotates every match with serviceability.
// @Tags         Address
// @Accept       json
// @Produce      json
// @Param        request body dto.AddressSuggestRequest true "Search text"
// @Success      200 {object} dto.SuccessResponse{data=dto.AddressSuggestResponse} "Matching addresses"
// @Failure      400 {object} dto.ErrorResponse "Bad request - empty query"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Router       /api/address/suggest [post]
func (h *Handler) SuggestAddresses(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.AddressSuggestRequest](c)
	if err != nil {
		builder.BindError(err, func(string) string { return i18n.ErrKeyValidationQuery })
		return
	}

	suggestions := h.svc.Addresses.Suggest(req.Query)
	if suggestions == nil {
		suggestions = []model.AddressSuggestion{}
	}
	builder.SuccessOK(dto.AddressSuggestResponse{Suggestions: suggestions})
}

// Chat handles POST /api/chat requests.
//
// @Summary      Ask the assistant
// @Description  Answers a customer message from the intent table. When a pincode is given the reply says whether that pincode is serviceable.
// @Tags         Assistant
// @Accept       json
// @Produce      json
// @Param        request body dto.ChatRequest true "Customer message"
// @Success      200 {object} dto.SuccessResponse{data=model.ChatReply} "Assistant reply"
// @Failure      400 {object} dto.ErrorResponse "Bad request - empty message"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Router       /api/chat [post]
func (h *Handler) Chat(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.ChatRequest](c)
	if err != nil {
		builder.BindError(err, func(field string) string {
			if field == "Message" {
				return i18n.ErrKeyValidationMessage
			}
			return i18n.ErrKeyInvalidRequest
		})
		return
	}

	builder.SuccessOK(h.svc.Assistant.Reply(req.Message, req.Pincode))
}

// ListZones handles GET /api/zones requests.
//
// @Summary      List service zones
// @Description  Returns the service-area polygons as a GeoJSON FeatureCollection in registry order.
// @Tags         Availability
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "GeoJSON FeatureCollection"
// @Router       /api/zones [get]
func (h *Handler) ListZones(c *gin.Context) {
	h.zonesOnce.Do(func() {
		h.zones = ZonesGeoJSON(h.svc.Zones)
	})
	NewResponseBuilder(c).SuccessOK(h.zones)
}

// ListRates handles GET /api/rates requests.
//
// @Summary      List base rates
// @Description  Returns the base market rate per kilogram for every known material. Actual quotes fluctuate around these values.
// @Tags         Scrap
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.RatesResponse} "Rate table"
// @Router       /api/rates [get]
func (h *Handler) ListRates(c *gin.Context) {
	h.ratesOnce.Do(func() {
		h.rates = RatesTable(h.svc.Rates)
	})
	NewResponseBuilder(c).SuccessOK(h.rates)
}

func (h *Handler) currency() string {
	if h.svc.Rates == nil {
		return ""
	}
	return h.svc.Rates.Currency()
}

// ZonesGeoJSON encodes the registry as a FeatureCollection, one feature per zone.
func ZonesGeoJSON(registry *catalog.ZoneRegistry) *geojson.FeatureCollection {
	fc := &geojson.FeatureCollection{Features: []*geojson.Feature{}}
	if registry == nil {
		return fc
	}
	for i, z := range registry.Zones() {
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       z.Name,
			Geometry: z.Polygon.Geom(),
			Properties: map[string]interface{}{
				"name":  z.Name,
				"order": i,
			},
		})
	}
	return fc
}

// RatesTable converts the rate table to its response form.
func RatesTable(rates *catalog.RateTable) dto.RatesResponse {
	resp := dto.RatesResponse{Rates: []dto.RateResponse{}}
	if rates == nil {
		return resp
	}

	fallback := rates.Fallback()
	resp.Currency = rates.Currency()
	resp.Fallback = fallback.Material
	for _, e := range rates.Entries() {
		resp.Rates = append(resp.Rates, dto.RateResponse{
			Material:  e.Material,
			RatePerKg: e.RatePerKg,
			Fallback:  e.Material == fallback.Material,
		})
	}
	return resp
}
