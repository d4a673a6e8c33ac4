// Package services contains the business logic between handlers and repositories.
package services

import (
	"context"
	"fmt"

	"github.com/cerealwarehouse/backend/internal/models"
	"go.uber.org/zap"
)

// CerealsRepository is the interface that wraps methods for cereals table data access
type CerealsRepository interface {
	// Method Create inserts a new cereal and assigns the generated id onto the model.
	Create(ctx context.Context, cereal *models.Cereal) error
	// Method GetByID retrieves a cereal by id.
	//
	// If no cereal with such id exists, models.ErrCerealNotFound is returned together with "nil" value.
	GetByID(ctx context.Context, id int) (*models.Cereal, error)
	// Method Update overwrites every attribute of an existing cereal row.
	Update(ctx context.Context, cereal *models.Cereal) error
	// Method Delete removes a cereal by id.
	//
	// If no cereal with such id exists, models.ErrCerealNotFound is returned.
	Delete(ctx context.Context, id int) error
	// Method GetAll retrieves every cereal row.
	GetAll(ctx context.Context) ([]models.Cereal, error)
	// Method Search retrieves cereals matching `field <operator> value`.
	//
	// Unknown fields return models.ErrInvalidField, unknown operators models.ErrInvalidOperator.
	Search(ctx context.Context, field, operator, value string) ([]models.Cereal, error)
	// Method FilterByAttributes retrieves cereals matching every given attribute exactly.
	FilterByAttributes(ctx context.Context, filters map[string]string) ([]models.Cereal, error)
}

type cerealsService struct {
	repo   CerealsRepository
	logger *zap.Logger
}

// NewCerealsService creates a new cereals service
func NewCerealsService(repo CerealsRepository, logger *zap.Logger) *cerealsService {
	return &cerealsService{
		repo:   repo,
		logger: logger,
	}
}

// GetByID retrieves a cereal by its id
func (s *cerealsService) GetByID(ctx context.Context, id int) (*models.Cereal, error) {
	cereal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return cereal, nil
}

// CreateOrUpdate routes the payload on presence of an id: a nil id creates a
// new record (rejecting a type outside {C, H}); a present id overwrites the
// existing record or fails with models.ErrCerealNotFound. The returned bool
// reports whether a new record was created.
func (s *cerealsService) CreateOrUpdate(ctx context.Context, req *models.CerealRequest) (*models.Cereal, bool, error) {
	if req.ID == nil {
		if req.Type != models.TypeCold && req.Type != models.TypeHot {
			return nil, false, models.ErrInvalidType
		}

		cereal := req.ToCereal()
		if err := s.repo.Create(ctx, cereal); err != nil {
			s.logger.Error("failed to create cereal", zap.Error(err))
			return nil, false, err
		}
		return cereal, true, nil
	}

	// Update path: the row must already exist, there is no upsert.
	if _, err := s.repo.GetByID(ctx, *req.ID); err != nil {
		return nil, false, err
	}

	cereal := req.ToCereal()
	if err := s.repo.Update(ctx, cereal); err != nil {
		s.logger.Error("failed to update cereal", zap.Error(err), zap.Int("id", cereal.ID))
		return nil, false, err
	}

	return cereal, false, nil
}

// Delete removes a cereal by id
func (s *cerealsService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// Search retrieves cereals by a single-field comparison filter.
// An empty field, or an empty value for a valid field, returns every row.
// Zero matches is an error, not an empty list.
func (s *cerealsService) Search(ctx context.Context, field, operator, value string) ([]models.Cereal, error) {
	var cereals []models.Cereal
	var err error

	switch {
	case field == "":
		cereals, err = s.repo.GetAll(ctx)
	case value == "":
		if !models.IsValidSearchField(field) {
			return nil, fmt.Errorf("%w: %s", models.ErrInvalidField, field)
		}
		cereals, err = s.repo.GetAll(ctx)
	default:
		if operator == "" {
			operator = "eq"
		}
		cereals, err = s.repo.Search(ctx, field, operator, value)
	}

	if err != nil {
		return nil, err
	}
	if len(cereals) == 0 {
		return nil, models.ErrNoCerealsFound
	}

	return cereals, nil
}

// FilterByAttributes retrieves cereals matching every given attribute exactly.
// Zero matches is an error, not an empty list.
func (s *cerealsService) FilterByAttributes(ctx context.Context, filters map[string]string) ([]models.Cereal, error) {
	cereals, err := s.repo.FilterByAttributes(ctx, filters)
	if err != nil {
		return nil, err
	}
	if len(cereals) == 0 {
		return nil, models.ErrNoCerealsFound
	}

	return cereals, nil
}
