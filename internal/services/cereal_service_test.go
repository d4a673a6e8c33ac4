package services

import (
	"context"
	"errors"
	"testing"

	"github.com/cerealwarehouse/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockCerealsRepository is a mock implementation of CerealsRepository
type mockCerealsRepository struct {
	cereal  *models.Cereal
	cereals []models.Cereal
	err     error

	createCalled bool
	updateCalled bool
	getAllCalled bool
	searchCalled bool
}

func (m *mockCerealsRepository) Create(ctx context.Context, cereal *models.Cereal) error {
	m.createCalled = true
	if m.err != nil {
		return m.err
	}
	cereal.ID = 1
	return nil
}

func (m *mockCerealsRepository) GetByID(ctx context.Context, id int) (*models.Cereal, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.cereal, nil
}

func (m *mockCerealsRepository) Update(ctx context.Context, cereal *models.Cereal) error {
	m.updateCalled = true
	return m.err
}

func (m *mockCerealsRepository) Delete(ctx context.Context, id int) error {
	return m.err
}

func (m *mockCerealsRepository) GetAll(ctx context.Context) ([]models.Cereal, error) {
	m.getAllCalled = true
	if m.err != nil {
		return nil, m.err
	}
	return m.cereals, nil
}

func (m *mockCerealsRepository) Search(ctx context.Context, field, operator, value string) ([]models.Cereal, error) {
	m.searchCalled = true
	if m.err != nil {
		return nil, m.err
	}
	return m.cereals, nil
}

func (m *mockCerealsRepository) FilterByAttributes(ctx context.Context, filters map[string]string) ([]models.Cereal, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.cereals, nil
}

func intPtr(v int) *int { return &v }

func TestNewCerealsService(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	mockRepo := &mockCerealsRepository{}

	svc := NewCerealsService(mockRepo, logger)

	assert.NotNil(t, svc)
	assert.Equal(t, mockRepo, svc.repo)
	assert.Equal(t, logger, svc.logger)
}

func TestCerealsService_CreateOrUpdate_Create(t *testing.T) {
	tests := []struct {
		name          string
		req           *models.CerealRequest
		mockRepo      *mockCerealsRepository
		expectedError error
		expectCreated bool
		expectPersist bool
	}{
		{
			name:          "create cold cereal",
			req:           &models.CerealRequest{Name: "Bran", Type: "C", Calories: 90, Shelf: 2, Rating: 41.5},
			mockRepo:      &mockCerealsRepository{},
			expectCreated: true,
			expectPersist: true,
		},
		{
			name:          "create hot cereal",
			req:           &models.CerealRequest{Name: "Maypo", Type: "H", Calories: 100},
			mockRepo:      &mockCerealsRepository{},
			expectCreated: true,
			expectPersist: true,
		},
		{
			name:          "invalid type never reaches the repository",
			req:           &models.CerealRequest{Name: "Mystery", Type: "X"},
			mockRepo:      &mockCerealsRepository{},
			expectedError: models.ErrInvalidType,
			expectPersist: false,
		},
		{
			name:          "empty type never reaches the repository",
			req:           &models.CerealRequest{Name: "Mystery"},
			mockRepo:      &mockCerealsRepository{},
			expectedError: models.ErrInvalidType,
			expectPersist: false,
		},
		{
			name:          "repository error",
			req:           &models.CerealRequest{Name: "Bran", Type: "C"},
			mockRepo:      &mockCerealsRepository{err: errors.New("database error")},
			expectedError: nil,
			expectPersist: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := zap.NewDevelopment()
			svc := NewCerealsService(tt.mockRepo, logger)

			cereal, created, err := svc.CreateOrUpdate(context.Background(), tt.req)

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, cereal)
			case tt.mockRepo.err != nil:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.expectCreated, created)
				assert.Equal(t, 1, cereal.ID)
			}
			assert.Equal(t, tt.expectPersist, tt.mockRepo.createCalled)
		})
	}
}

func TestCerealsService_CreateOrUpdate_Update(t *testing.T) {
	t.Run("overwrites an existing row", func(t *testing.T) {
		logger, _ := zap.NewDevelopment()
		mockRepo := &mockCerealsRepository{
			cereal: &models.Cereal{ID: 1, Name: "Bran", Type: "C"},
		}
		svc := NewCerealsService(mockRepo, logger)

		req := &models.CerealRequest{ID: intPtr(1), Name: "Bran Updated", Type: "C", Calories: 95}
		cereal, created, err := svc.CreateOrUpdate(context.Background(), req)

		require.NoError(t, err)
		assert.False(t, created)
		assert.True(t, mockRepo.updateCalled)
		assert.Equal(t, 1, cereal.ID)
		assert.Equal(t, "Bran Updated", cereal.Name)
	})

	t.Run("unknown id is not found, never an upsert", func(t *testing.T) {
		logger, _ := zap.NewDevelopment()
		mockRepo := &mockCerealsRepository{err: models.ErrCerealNotFound}
		svc := NewCerealsService(mockRepo, logger)

		req := &models.CerealRequest{ID: intPtr(42), Name: "Ghost", Type: "C"}
		cereal, _, err := svc.CreateOrUpdate(context.Background(), req)

		assert.ErrorIs(t, err, models.ErrCerealNotFound)
		assert.Nil(t, cereal)
		assert.False(t, mockRepo.createCalled)
	})
}

func TestCerealsService_Search(t *testing.T) {
	sample := []models.Cereal{
		{ID: 1, Name: "100% Bran", Type: "C"},
		{ID: 2, Name: "All-Bran", Type: "C"},
	}

	tests := []struct {
		name          string
		field         string
		operator      string
		value         string
		mockRepo      *mockCerealsRepository
		expectedError error
		expectedCount int
		expectGetAll  bool
	}{
		{
			name:          "no filter returns every row",
			mockRepo:      &mockCerealsRepository{cereals: sample},
			expectedCount: 2,
			expectGetAll:  true,
		},
		{
			name:          "valid field with empty value returns every row",
			field:         "calories",
			mockRepo:      &mockCerealsRepository{cereals: sample},
			expectedCount: 2,
			expectGetAll:  true,
		},
		{
			name:          "invalid field with empty value is rejected",
			field:         "password",
			mockRepo:      &mockCerealsRepository{cereals: sample},
			expectedError: models.ErrInvalidField,
		},
		{
			name:          "comparison filter",
			field:         "calories",
			operator:      "gt",
			value:         "100",
			mockRepo:      &mockCerealsRepository{cereals: sample[:1]},
			expectedCount: 1,
		},
		{
			name:          "zero matches is an error, not an empty list",
			field:         "calories",
			operator:      "gt",
			value:         "10000",
			mockRepo:      &mockCerealsRepository{cereals: nil},
			expectedError: models.ErrNoCerealsFound,
		},
		{
			name:          "empty table with no filter is also not found",
			mockRepo:      &mockCerealsRepository{cereals: nil},
			expectedError: models.ErrNoCerealsFound,
			expectGetAll:  true,
		},
		{
			name:          "repository error propagates",
			field:         "calories",
			operator:      "gt",
			value:         "100",
			mockRepo:      &mockCerealsRepository{err: errors.New("database error")},
			expectedError: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := zap.NewDevelopment()
			svc := NewCerealsService(tt.mockRepo, logger)

			cereals, err := svc.Search(context.Background(), tt.field, tt.operator, tt.value)

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
			case tt.mockRepo.err != nil:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Len(t, cereals, tt.expectedCount)
			}
			assert.Equal(t, tt.expectGetAll, tt.mockRepo.getAllCalled)
		})
	}
}

func TestCerealsService_Search_DefaultsOperatorToEq(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	mockRepo := &mockCerealsRepository{cereals: []models.Cereal{{ID: 1}}}
	svc := NewCerealsService(mockRepo, logger)

	_, err := svc.Search(context.Background(), "type", "", "C")

	require.NoError(t, err)
	assert.True(t, mockRepo.searchCalled)
}

func TestCerealsService_FilterByAttributes(t *testing.T) {
	t.Run("zero matches is an error", func(t *testing.T) {
		logger, _ := zap.NewDevelopment()
		svc := NewCerealsService(&mockCerealsRepository{}, logger)

		_, err := svc.FilterByAttributes(context.Background(), map[string]string{"mfr": "Z"})

		assert.ErrorIs(t, err, models.ErrNoCerealsFound)
	})

	t.Run("matches are returned", func(t *testing.T) {
		logger, _ := zap.NewDevelopment()
		mockRepo := &mockCerealsRepository{cereals: []models.Cereal{{ID: 1, Mfr: "N"}}}
		svc := NewCerealsService(mockRepo, logger)

		cereals, err := svc.FilterByAttributes(context.Background(), map[string]string{"mfr": "N"})

		require.NoError(t, err)
		assert.Len(t, cereals, 1)
	})
}

func TestCerealsService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		logger, _ := zap.NewDevelopment()
		svc := NewCerealsService(&mockCerealsRepository{}, logger)

		assert.NoError(t, svc.Delete(context.Background(), 1))
	})

	t.Run("not found propagates", func(t *testing.T) {
		logger, _ := zap.NewDevelopment()
		svc := NewCerealsService(&mockCerealsRepository{err: models.ErrCerealNotFound}, logger)

		assert.ErrorIs(t, svc.Delete(context.Background(), 42), models.ErrCerealNotFound)
	})
}
