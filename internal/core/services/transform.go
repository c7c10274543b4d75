package services

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/custodia-labs/rephrase-cli/internal/core/domain"
	"github.com/custodia-labs/rephrase-cli/internal/core/ports/driven"
	"github.com/custodia-labs/rephrase-cli/internal/core/ports/driving"
	"github.com/custodia-labs/rephrase-cli/internal/logger"
)

// Ensure TransformService implements the interface.
var _ driving.TransformService = (*TransformService)(nil)

// RandFactory produces the random source for one request.
// Production uses a high-entropy seed; tests inject fixed seeds for
// reproducible output.
type RandFactory func() *rand.Rand

// TransformService orchestrates the rewriting pipeline.
// It is stateless across requests: every call computes fresh metrics,
// runs the enabled transformers in fixed order and discards all
// intermediate state on completion, so concurrent requests need no
// locking.
type TransformService struct {
	engine   driven.MetricsEngine
	pipeline driven.Pipeline
	oracle   driven.SynonymOracle
	newRand  RandFactory
}

// ServiceOption configures the transform service.
type ServiceOption func(*TransformService)

// WithRandFactory overrides the per-request random source.
func WithRandFactory(f RandFactory) ServiceOption {
	return func(s *TransformService) {
		if f != nil {
			s.newRand = f
		}
	}
}

// WithSeed pins the per-request random source to a fixed seed.
// Every request then sees an identical sequence, which makes runs
// reproducible.
func WithSeed(seed uint64) ServiceOption {
	return WithRandFactory(func() *rand.Rand {
		return rand.New(rand.NewPCG(seed, seed))
	})
}

// NewTransformService creates the orchestrator.
// The oracle parameter is optional (can be nil); it is only consulted
// for the health report, the pipeline receives it separately.
func NewTransformService(
	engine driven.MetricsEngine,
	pipeline driven.Pipeline,
	oracle driven.SynonymOracle,
	opts ...ServiceOption,
) *TransformService {
	s := &TransformService{
		engine:   engine,
		pipeline: pipeline,
		oracle:   oracle,
		newRand:  entropyRand,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Transform validates the request, applies the enabled transformers in
// fixed order and returns the result with before/after metrics.
//
// Invalid input is rejected before any transformer runs. Cancellation
// aborts at the next stage boundary and never yields partial output.
func (s *TransformService) Transform(ctx context.Context, req domain.TransformRequest) (*domain.TransformResult, error) {
	logger.Section("Transform")

	if err := req.Validate(); err != nil {
		logger.Debug("Validation failed: %v", err)
		return nil, err
	}
	logger.Debug("Options: structure=%t vocabulary=%t noise=%t intensity=%.2f",
		req.Options.Structure, req.Options.Vocabulary, req.Options.Noise, req.Intensity)

	before, err := s.engine.Compute(req.Text)
	if err != nil {
		return nil, fmt.Errorf("compute input metrics: %w", err)
	}
	logger.Debug("Input: %d sentences, %d words, diversity %.4f",
		before.SentenceCount, before.WordCount, before.VocabularyDiversity)

	current := req.Text
	applied := []string{}

	if req.Options.Any() {
		current, applied, err = s.pipeline.Run(ctx, req.Text, req.Options, req.Intensity, s.newRand())
		if err != nil {
			return nil, err
		}
		if applied == nil {
			applied = []string{}
		}
	}

	after, err := s.engine.Compute(current)
	if err != nil {
		return nil, fmt.Errorf("compute output metrics: %w", err)
	}
	logger.Debug("Output: %d sentences, %d words, diversity %.4f",
		after.SentenceCount, after.WordCount, after.VocabularyDiversity)
	logger.Info("Applied transforms: %v", applied)

	return &domain.TransformResult{
		Original:          req.Text,
		Transformed:       current,
		Metrics:           domain.CompareMetrics(before, after),
		AppliedTransforms: applied,
	}, nil
}

// Health reports whether the synonym oracle is configured.
// Configuration presence only; no generation call is made.
func (s *TransformService) Health(_ context.Context) domain.Health {
	return domain.Health{OracleReachable: s.oracle != nil}
}

// entropyRand seeds a PCG source from the OS entropy pool.
func entropyRand() *rand.Rand {
	var seed [16]byte
	if _, err := crand.Read(seed[:]); err != nil {
		// Extremely unlikely; a zero seed still produces valid output.
		logger.Warn("Entropy read failed, using zero seed: %v", err)
	}
	return rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(seed[:8]),
		binary.LittleEndian.Uint64(seed[8:]),
	))
}
