package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/sunilmaharaj1991-max/BlinkLean/internal/catalog"
	"github.com/sunilmaharaj1991-max/BlinkLean/internal/domain/dto"
	"github.com/sunilmaharaj1991-max/BlinkLean/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// flatMarket prices every material at exactly its base rate.
var flatMarket = service.FluctuationFunc(func(lo, hi float64) float64 { return 1.0 })

func defaultServices(t *testing.T, pricerOpts ...service.PricerOption) Services {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)

	opts := append([]service.PricerOption{service.WithFluctuationSource(flatMarket)}, pricerOpts...)
	resolver := service.NewZoneResolver(cat.Zones)
	return Services{
		Availability: service.NewAvailabilityService(resolver),
		Pricer:       service.NewScrapPricer(cat.Rates, opts...),
		Addresses: service.NewAddressService(cat.Addresses,
			service.NewZoneResolver(cat.Zones, service.WithNearThreshold(service.DefaultAddressNearThreshold))),
		Assistant: service.NewAssistantService(cat.Assistant),
		Zones:     cat.Zones,
		Rates:     cat.Rates,
	}
}

func testRouter(t *testing.T, svc Services, cfg RouterConfig) *gin.Engine {
	t.Helper()
	return NewRouter(NewHandler(svc), NewHealthHandler(), cfg)
}

func doJSON(router http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the data field of a success envelope into out.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) dto.SuccessResponse {
	t.Helper()
	var envelope struct {
		dto.SuccessResponse
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), w.Body.String())
	require.NoError(t, json.Unmarshal(envelope.Data, out))
	return envelope.SuccessResponse
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

// extractData returns the raw data field of a success envelope.
func extractData(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), w.Body.String())
	return string(envelope.Data)
}
