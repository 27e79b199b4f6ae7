package agent

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BaSui01/contentflow/internal/ctxkeys"
	"github.com/BaSui01/contentflow/internal/metrics"
	"github.com/BaSui01/contentflow/types"
)

// Agent is the stage agent capability contract. I and O are the stage's
// typed input and result; each concrete stage fixes them statically.
//
// Process and ValidateOutput are not meant to be called directly by
// orchestration code — use Run.
type Agent[I, O any] interface {
	// Name returns the stage agent's name.
	Name() string

	// Process performs the stage's core work. It may block on external
	// provider I/O. It fails with an INPUT_ERROR when a required input
	// field is absent and a PROVIDER_FAILURE when the provider call errors.
	Process(ctx context.Context, in I) (O, error)

	// ValidateOutput checks the produced result structurally and
	// semantically. It is pure: no mutation, no I/O beyond read-only
	// existence and decodability checks on artifact refs.
	ValidateOutput(out O) error

	base() *BaseAgent
}

// Run executes an agent's processing pipeline: Process, then
// ValidateOutput. Every failure is absorbed here — logged, counted, and
// converted into a classified error value. Callers treat a non-nil error as
// a binary "no output" signal; the concrete cause is for logs only.
func Run[I, O any](ctx context.Context, a Agent[I, O], in I) (O, error) {
	b := a.base()
	logger := b.ctxLogger(ctx)
	start := time.Now()
	logger.Info("stage started")

	var zero O
	out, err := a.Process(ctx, in)
	if err != nil {
		err = classify(err, b.name)
		logger.Error("stage processing failed", zap.Error(err))
		b.record(statusOf(err), time.Since(start))
		return zero, err
	}

	if verr := a.ValidateOutput(out); verr != nil {
		err := types.NewError(types.ErrValidation, "output validation failed").
			WithStage(b.name).
			WithCause(verr)
		logger.Error("stage output validation failed", zap.Error(err))
		b.record("validation_failure", time.Since(start))
		return zero, err
	}

	logger.Info("stage completed", zap.Duration("duration", time.Since(start)))
	b.record("success", time.Since(start))
	return out, nil
}

// classify wraps errors that escaped the agent unclassified. Anything
// without a pipeline error code came out of an external collaborator.
func classify(err error, stage string) error {
	if types.CodeOf(err) != "" {
		return err
	}
	return types.NewError(types.ErrProvider, "provider call failed").
		WithStage(stage).
		WithCause(err)
}

func statusOf(err error) string {
	switch types.CodeOf(err) {
	case types.ErrInput:
		return "input_error"
	case types.ErrValidation:
		return "validation_failure"
	default:
		return "provider_failure"
	}
}

// BaseAgent carries the identity, logger, and metrics shared by all stage
// agents. The logger is a constructor dependency, tagged with the agent
// name; its lifecycle is tied to the agent instance.
type BaseAgent struct {
	name    string
	logger  *zap.Logger
	metrics *metrics.Collector
}

// NewBaseAgent creates the embedded base for a stage agent. collector may
// be nil.
func NewBaseAgent(name string, logger *zap.Logger, collector *metrics.Collector) BaseAgent {
	return BaseAgent{
		name:    name,
		logger:  logger.With(zap.String("agent", name)),
		metrics: collector,
	}
}

// Name returns the agent name.
func (b *BaseAgent) Name() string { return b.name }

// Logger returns the agent's tagged logger.
func (b *BaseAgent) Logger() *zap.Logger { return b.logger }

// ctxLogger enriches the agent logger with the run correlation IDs carried
// by ctx, so stage log lines can be tied back to their pipeline run.
func (b *BaseAgent) ctxLogger(ctx context.Context) *zap.Logger {
	logger := b.logger
	if runID, ok := ctxkeys.RunID(ctx); ok {
		logger = logger.With(zap.String("run_id", runID))
	}
	if traceID, ok := ctxkeys.TraceID(ctx); ok {
		logger = logger.With(zap.String("trace_id", traceID))
	}
	if platform, ok := ctxkeys.Platform(ctx); ok {
		logger = logger.With(zap.String("platform", platform))
	}
	return logger
}

func (b *BaseAgent) base() *BaseAgent { return b }

func (b *BaseAgent) record(status string, d time.Duration) {
	if b.metrics != nil {
		b.metrics.RecordStageExecution(b.name, status, d)
	}
}

func (b *BaseAgent) recordProviderCall(provider, capability string, err error) {
	if b.metrics == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	b.metrics.RecordProviderCall(provider, capability, status)
}

// inputError builds the agent-local error for a missing required input
// field.
func (b *BaseAgent) inputError(field string) error {
	return types.NewError(types.ErrInput, "required input field missing: "+field).
		WithStage(b.name)
}

// providerError wraps a failed provider call.
func (b *BaseAgent) providerError(provider string, cause error) error {
	return types.NewError(types.ErrProvider, "provider call failed").
		WithStage(b.name).
		WithProvider(provider).
		WithCause(cause)
}
