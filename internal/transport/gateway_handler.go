// Package transport exposes the query service over HTTP.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/goodnatureofminers/jitcord/internal/chainflip/account"
	"github.com/goodnatureofminers/jitcord/internal/chainflip/asset"
	"github.com/goodnatureofminers/jitcord/internal/chainflip/display"
	"github.com/goodnatureofminers/jitcord/internal/report"
	"github.com/goodnatureofminers/jitcord/internal/service"
	"go.uber.org/zap"
)

// HealthStatusHealthy is reported by the health endpoint.
const HealthStatusHealthy = "HEALTHY"

// Response is the body of every query endpoint.
type Response struct {
	Messages []report.Message `json:"messages"`
	Error    string           `json:"error,omitempty"`
}

// HealthResponse is the body of the health endpoint.
type HealthResponse struct {
	Status      string `json:"status"`
	Description string `json:"description"`
}

// GatewayHandler serves bot replies as JSON.
type GatewayHandler struct {
	svc     QueryService
	conv    display.Amounts
	metrics Metrics
	logger  *zap.Logger
}

// NewGatewayHandler returns a GatewayHandler instance.
func NewGatewayHandler(svc QueryService, conv display.Amounts, metrics Metrics, logger *zap.Logger) *GatewayHandler {
	return &GatewayHandler{
		svc:     svc,
		conv:    conv,
		metrics: metrics,
		logger:  logger.Named("gateway"),
	}
}

// Routes registers the gateway endpoints on a new mux.
func (h *GatewayHandler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	h.handle(mux, "GET /healthz", h.health)
	h.handle(mux, "GET /v1/version", h.version)
	h.handle(mux, "GET /v1/status", h.status)
	h.handle(mux, "GET /v1/auction", h.auction)
	h.handle(mux, "GET /v1/accounts/{name}", h.accountInfo)
	h.handle(mux, "GET /v1/pools/{base}/orders", h.poolOrders)
	h.handle(mux, "GET /v1/pools/{base}/{quote}/orders", h.poolOrders)
	return mux
}

type handlerFunc func(r *http.Request) (int, any)

func (h *GatewayHandler) handle(mux *http.ServeMux, pattern string, fn handlerFunc) {
	mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		code, body := fn(r)
		writeJSON(w, code, body, h.logger)
		h.metrics.Observe(pattern, code, started)
	})
}

func (h *GatewayHandler) health(*http.Request) (int, any) {
	return http.StatusOK, HealthResponse{Status: HealthStatusHealthy}
}

func (h *GatewayHandler) version(r *http.Request) (int, any) {
	v, err := h.svc.Version(r.Context())
	if err != nil {
		return h.fail(r.Context(), "version", err)
	}
	return ok(report.Version(v))
}

func (h *GatewayHandler) status(r *http.Request) (int, any) {
	v, err := h.svc.Status(r.Context())
	if err != nil {
		return h.fail(r.Context(), "status", err)
	}
	return ok(report.Status(v))
}

func (h *GatewayHandler) auction(r *http.Request) (int, any) {
	v, err := h.svc.Auction(r.Context())
	if err != nil {
		return h.fail(r.Context(), "auction", err)
	}
	return ok(report.Auction(v))
}

func (h *GatewayHandler) accountInfo(r *http.Request) (int, any) {
	v, err := h.svc.AccountInfo(r.Context(), r.PathValue("name"))
	if err != nil {
		return h.fail(r.Context(), "account_info", err)
	}
	return ok(report.Account(v, h.conv))
}

func (h *GatewayHandler) poolOrders(r *http.Request) (int, any) {
	v, err := h.svc.PoolOrders(r.Context(), r.PathValue("base"), r.PathValue("quote"))
	if err != nil {
		return h.fail(r.Context(), "pool_orders", err)
	}
	return ok(report.Orders(v)...)
}

func (h *GatewayHandler) fail(ctx context.Context, op string, err error) (int, any) {
	code := StatusCode(err)
	if code >= http.StatusInternalServerError {
		h.logger.Error("query failed", zap.String("operation", op), zap.Error(err), zap.Bool("canceled", ctx.Err() != nil))
	} else {
		h.logger.Debug("query rejected", zap.String("operation", op), zap.Error(err))
	}
	msg := report.Error(err)
	return code, Response{Messages: []report.Message{msg}, Error: msg.Description}
}

// StatusCode maps a query error to the HTTP status returned to the caller.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, asset.ErrUnknownAsset):
		return http.StatusBadRequest
	case errors.Is(err, account.ErrUnrecognizedRole):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

func ok(messages ...report.Message) (int, any) {
	return http.StatusOK, Response{Messages: messages}
}

func writeJSON(w http.ResponseWriter, code int, body any, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn("write response", zap.Error(err))
	}
}
