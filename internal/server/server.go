package server

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/claimit/claimit/internal/calculation"
	"github.com/claimit/claimit/internal/domain"
)

// Server exposes the estimate engine as a stateless HTTP endpoint.
// Nothing is kept between requests; every call carries a complete
// AnswerSet and gets a complete result back.
type Server struct {
	logger *zap.Logger
	full   *calculation.EstimateEngine
	demo   *calculation.EstimateEngine
}

// New creates a server with both engine variants ready.
func New(logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		logger: logger,
		full:   calculation.NewEstimateEngine(),
		demo:   calculation.NewDemoEngine(),
	}
}

// ListenAndServe blocks serving requests on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("estimate server starting", zap.String("addr", addr))
	if err := fasthttp.ListenAndServe(addr, s.Handle); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// EstimateResponse wraps the engine result with calculation metadata.
type EstimateResponse struct {
	Metadata CalculationMetadata        `json:"calculation_metadata"`
	Result   calculation.EstimateResult `json:"result"`
}

// CalculationMetadata describes one estimate run.
type CalculationMetadata struct {
	CalculationID string `json:"calculation_id"`
	Variant       string `json:"variant"`
	StartedAt     string `json:"started_at"`
	CompletedAt   string `json:"completed_at"`
	DurationMs    int64  `json:"duration_ms"`
	Outcome       string `json:"outcome"`
}

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Handle routes a request. POST /v1/estimate is the only endpoint;
// the optional variant query parameter selects the formula.
func (s *Server) Handle(ctx *fasthttp.RequestCtx) {
	if string(ctx.Path()) != "/v1/estimate" {
		s.writeError(ctx, fasthttp.StatusNotFound, "Not found")
		return
	}
	if !ctx.IsPost() {
		s.writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	started := time.Now()

	answers := domain.NewAnswerSet()
	if err := json.Unmarshal(ctx.PostBody(), &answers); err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	engine := s.full
	variant := string(ctx.QueryArgs().Peek("variant"))
	if variant == string(calculation.VariantDemo) {
		engine = s.demo
	} else {
		variant = string(calculation.VariantFull)
	}

	result := engine.ComputeEstimate(&answers)
	completed := time.Now()

	resp := EstimateResponse{
		Metadata: CalculationMetadata{
			CalculationID: newCalculationID(),
			Variant:       variant,
			StartedAt:     started.UTC().Format(time.RFC3339Nano),
			CompletedAt:   completed.UTC().Format(time.RFC3339Nano),
			DurationMs:    completed.Sub(started).Milliseconds(),
			Outcome:       "completed",
		},
		Result: result,
	}

	s.logger.Info("estimate computed",
		zap.String("calculation_id", resp.Metadata.CalculationID),
		zap.String("variant", variant),
		zap.Int64("estimate", result.Estimate))

	ctx.SetContentType("application/json")
	if err := json.NewEncoder(ctx).Encode(resp); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	_ = json.NewEncoder(ctx).Encode(ErrorResponse{Status: status, Message: message})
}

func newCalculationID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("calc-%d", time.Now().UnixNano())
	}
	return "calc-" + hex.EncodeToString(b[:])
}
