package cli

import (
	"context"

	"github.com/custodia-labs/rephrase-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/rephrase-cli/internal/core/domain"
)

// mockTransformService returns canned results.
type mockTransformService struct {
	result *domain.TransformResult
	health domain.Health
	err    error
}

func (m *mockTransformService) Transform(_ context.Context, req domain.TransformRequest) (*domain.TransformResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return &domain.TransformResult{
		Original:          req.Text,
		Transformed:       req.Text + " 변환됨",
		AppliedTransforms: []string{"structure"},
		Metrics: domain.MetricsReport{
			OriginalSentenceCount:    1,
			TransformedSentenceCount: 2,
		},
	}, nil
}

func (m *mockTransformService) Health(_ context.Context) domain.Health {
	return m.health
}

// setupTestServices swaps in mock services and returns a cleanup that
// restores the previous wiring.
func setupTestServices() func() {
	oldService := transformService
	oldHistory := historyStore
	oldConfig := appConfig

	transformService = &mockTransformService{}
	historyStore = memory.NewHistoryStore()
	appConfig = nil

	return func() {
		transformService = oldService
		historyStore = oldHistory
		appConfig = oldConfig
	}
}
