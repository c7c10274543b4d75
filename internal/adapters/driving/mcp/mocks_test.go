package mcp

import (
	"context"

	"github.com/custodia-labs/rephrase-cli/internal/core/domain"
)

// mockTransformService is a mock implementation of driving.TransformService.
type mockTransformService struct {
	result *domain.TransformResult
	health domain.Health
	err    error

	lastRequest domain.TransformRequest
}

func (m *mockTransformService) Transform(_ context.Context, req domain.TransformRequest) (*domain.TransformResult, error) {
	m.lastRequest = req
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
	}, nil
}

func (m *mockTransformService) Health(_ context.Context) domain.Health {
	return m.health
}

// mockHistoryStore is a mock implementation of driven.HistoryStore.
type mockHistoryStore struct {
	entries []domain.HistoryEntry
	entry   *domain.HistoryEntry
	err     error
}

func (m *mockHistoryStore) Save(_ context.Context, _ domain.HistoryEntry) error {
	return m.err
}

func (m *mockHistoryStore) List(_ context.Context, _ int) ([]domain.HistoryEntry, error) {
	return m.entries, m.err
}

func (m *mockHistoryStore) Get(_ context.Context, _ string) (*domain.HistoryEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.entry, nil
}

func (m *mockHistoryStore) Close() error {
	return nil
}
