package podcasts

import (
	"context"
	"errors"
	"testing"

	"github.com/killallgit/podcast-browser/internal/models"
	"github.com/killallgit/podcast-browser/internal/services/listennotes"
	apperrors "github.com/killallgit/podcast-browser/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCatalogClient is a mock implementation of CatalogClient
type MockCatalogClient struct {
	mock.Mock
}

func (m *MockCatalogClient) FetchTopItems(ctx context.Context) (*listennotes.Envelope, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listennotes.Envelope), args.Error(1)
}

type panickingClient struct{}

func (panickingClient) FetchTopItems(ctx context.Context) (*listennotes.Envelope, error) {
	panic("nil map write")
}

func TestRepository_GetPodcasts_Success(t *testing.T) {
	mockClient := new(MockCatalogClient)
	repo := NewRepository(mockClient)

	podcasts := []models.Podcast{
		{ID: "i1", Title: "One"},
		{ID: "i2", Title: "Two"},
		{ID: "i3", Title: "Three"},
	}
	mockClient.On("FetchTopItems", mock.Anything).Return(&listennotes.Envelope{Podcasts: podcasts}, nil).Once()

	res := repo.GetPodcasts(context.Background())

	require.True(t, res.IsSuccess())
	got, _ := res.Value()
	assert.Equal(t, podcasts, got)
	mockClient.AssertNumberOfCalls(t, "FetchTopItems", 1)
}

func TestRepository_GetPodcasts_Failures(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode apperrors.ErrorCode
	}{
		{"timeout", apperrors.TransportError("x", context.DeadlineExceeded), apperrors.ErrCodeTransport},
		{"500 response", apperrors.ResponseError("x", 500), apperrors.ErrCodeResponse},
		{"malformed json", apperrors.ParseError("bad json", errors.New("unexpected EOF")), apperrors.ErrCodeParse},
		{"unknown error", errors.New("something else"), apperrors.ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := new(MockCatalogClient)
			mockClient.On("FetchTopItems", mock.Anything).Return(nil, tt.err).Once()

			var res = NewRepository(mockClient).GetPodcasts(context.Background())

			assert.False(t, res.IsSuccess())
			require.NotNil(t, res.Err())
			assert.Equal(t, tt.wantCode, res.Err().Code)
			mockClient.AssertExpectations(t)
		})
	}
}

func TestRepository_GetPodcasts_NilEnvelope(t *testing.T) {
	mockClient := new(MockCatalogClient)
	mockClient.On("FetchTopItems", mock.Anything).Return(nil, nil).Once()

	res := NewRepository(mockClient).GetPodcasts(context.Background())

	assert.False(t, res.IsSuccess())
	assert.Equal(t, apperrors.ErrCodeParse, res.Err().Code)
}

func TestRepository_GetPodcasts_NeverPanics(t *testing.T) {
	repo := NewRepository(panickingClient{})

	var res = repo.GetPodcasts(context.Background())

	assert.False(t, res.IsSuccess())
	assert.Equal(t, apperrors.ErrCodeInternal, res.Err().Code)
}

func TestRepository_GetPodcasts_DoesNotAliasEnvelope(t *testing.T) {
	mockClient := new(MockCatalogClient)
	envelope := &listennotes.Envelope{Podcasts: []models.Podcast{{ID: "i1", Title: "One"}}}
	mockClient.On("FetchTopItems", mock.Anything).Return(envelope, nil).Once()

	got, err := NewRepository(mockClient).GetPodcasts(context.Background()).Get()
	require.NoError(t, err)
	envelope.Podcasts[0].Title = "mutated"

	assert.Equal(t, "One", got[0].Title)
}
