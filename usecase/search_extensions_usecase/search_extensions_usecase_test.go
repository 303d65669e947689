package search_extensions_usecase

import (
	"context"
	"testing"

	"extstats/config"
	"extstats/domain"
	apperrors "extstats/utils/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSearchPort struct {
	results   []domain.ExtensionSummary
	err       error
	gotQuery  string
	gotLimit  int
	callCount int
}

func (m *mockSearchPort) Execute(ctx context.Context, query string, limit int) ([]domain.ExtensionSummary, error) {
	m.callCount++
	m.gotQuery = query
	m.gotLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

func searchConfig() *config.SearchConfig {
	return &config.SearchConfig{
		DefaultLimit:   10,
		MaxLimit:       50,
		MinQueryLength: 2,
	}
}

func TestExecute_DelegatesToPort(t *testing.T) {
	port := &mockSearchPort{results: []domain.ExtensionSummary{
		{ExtensionID: "golang.go", Name: "Go", Publisher: "golang", InstallCount: 1_000_000},
	}}
	usecase := NewSearchExtensionsUsecase(port, searchConfig())

	results, err := usecase.Execute(context.Background(), "go", 5)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "golang.go", results[0].ExtensionID)
	assert.Equal(t, "go", port.gotQuery)
	assert.Equal(t, 5, port.gotLimit)
}

func TestExecute_LimitClamping(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"zero uses default", 0, 10},
		{"negative uses default", -3, 10},
		{"within range passes through", 25, 25},
		{"over max is clamped", 500, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			port := &mockSearchPort{}
			usecase := NewSearchExtensionsUsecase(port, searchConfig())

			_, err := usecase.Execute(context.Background(), "python", tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, port.gotLimit)
		})
	}
}

func TestExecute_QueryTrimmedBeforePort(t *testing.T) {
	port := &mockSearchPort{}
	usecase := NewSearchExtensionsUsecase(port, searchConfig())

	_, err := usecase.Execute(context.Background(), "  docker  ", 0)
	require.NoError(t, err)
	assert.Equal(t, "docker", port.gotQuery)
}

func TestExecute_RejectsShortQuery(t *testing.T) {
	port := &mockSearchPort{}
	usecase := NewSearchExtensionsUsecase(port, searchConfig())

	_, err := usecase.Execute(context.Background(), "x", 10)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
	assert.Equal(t, apperrors.ReasonInvalidQuery, appErr.Reason())
	assert.Zero(t, port.callCount)
}

func TestExecute_PortErrorPropagates(t *testing.T) {
	dbErr := apperrors.DatabaseError("connection refused", nil, nil)
	port := &mockSearchPort{err: dbErr}
	usecase := NewSearchExtensionsUsecase(port, searchConfig())

	_, err := usecase.Execute(context.Background(), "docker", 10)
	assert.ErrorIs(t, err, dbErr)
}
