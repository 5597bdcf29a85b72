package http

import (
	"encoding/json"
	"errors"
	"strconv"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/swaggo/swag"

	"logistics/internal/generated/servers"
)

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "logistics_http_requests_total",
	Help: "HTTP requests handled, by method, matched route and status code.",
}, []string{"method", "route", "status"})

// LoadSpec returns the embedded OpenAPI document with its servers list cleared,
// so that request paths are matched without a host prefix.
func LoadSpec() (*openapi3.T, error) {
	spec, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	spec.Servers = nil
	return spec, nil
}

// RequestValidator rejects requests to API operations that do not match the
// OpenAPI document. Paths outside the document (health, metrics, swagger)
// pass through untouched.
func RequestValidator(spec *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacyrouter.NewRouter(spec)
	if err != nil {
		return nil, err
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					MultiError: true,
				},
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return badRequest(c, err.Error())
			}

			return next(c)
		}
	}, nil
}

// RequestMetrics counts every handled request.
func RequestMetrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)

		status := c.Response().Status
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}

		requestsTotal.WithLabelValues(c.Request().Method, route, strconv.Itoa(status)).Inc()
		return err
	}
}

type openAPIDoc struct {
	raw string
}

func (d openAPIDoc) ReadDoc() string {
	return d.raw
}

var registerDocOnce sync.Once

// RegisterSwaggerDoc publishes spec as the document served by the swagger UI.
// Only the first call has an effect.
func RegisterSwaggerDoc(spec *openapi3.T) error {
	raw, err := json.Marshal(spec)
	if err != nil {
		return err
	}

	registerDocOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc{raw: string(raw)})
	})
	return nil
}
