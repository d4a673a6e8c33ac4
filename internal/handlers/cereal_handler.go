package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/cerealwarehouse/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CerealsService is the interface that wraps methods for cereals business logic.
type CerealsService interface {
	// Method GetByID retrieves a cereal by its id.
	//
	// If no cereal with such id exists, models.ErrCerealNotFound is returned together with "nil" value.
	GetByID(ctx context.Context, id int) (*models.Cereal, error)
	// Method CreateOrUpdate creates a new cereal (nil request id) or overwrites
	// an existing one (present request id). The bool reports whether a new
	// record was created.
	//
	// A create with a type outside {C, H} returns models.ErrInvalidType.
	// An update of an unknown id returns models.ErrCerealNotFound.
	CreateOrUpdate(ctx context.Context, req *models.CerealRequest) (*models.Cereal, bool, error)
	// Method Delete removes a cereal by id.
	//
	// If no cereal with such id exists, models.ErrCerealNotFound is returned.
	Delete(ctx context.Context, id int) error
	// Method Search retrieves cereals by a single-field comparison filter.
	//
	// Zero matches returns models.ErrNoCerealsFound, an unknown field models.ErrInvalidField.
	Search(ctx context.Context, field, operator, value string) ([]models.Cereal, error)
	// Method FilterByAttributes retrieves cereals matching every given attribute exactly.
	//
	// Zero matches returns models.ErrNoCerealsFound.
	FilterByAttributes(ctx context.Context, filters map[string]string) ([]models.Cereal, error)
}

// CerealsHandler handles HTTP requests for cereals
type CerealsHandler struct {
	BaseHandler
	service CerealsService
}

// NewCerealsHandler creates a new cereals handler
func NewCerealsHandler(svc CerealsService, logger *zap.Logger) *CerealsHandler {
	return &CerealsHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all cereal handler routes.
// adminOnly gates the delete endpoint behind the Admin role.
func (h *CerealsHandler) RegisterRoutes(r chi.Router, adminOnly func(http.Handler) http.Handler) {
	r.Get("/", h.Welcome)
	r.Route("/cereals", func(r chi.Router) {
		r.Get("/", h.Search)
		r.Post("/", h.CreateOrUpdate)
		r.Get("/{id}", h.GetByID)
		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Delete("/{id}", h.Delete)
		})
	})
}

// Welcome handles GET /
// @Summary Liveness check
// @Description Returns a welcome message
// @Tags cereals
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *CerealsHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Welcome to my API."})
}

// GetByID handles GET /cereals/{id}
// @Summary Get cereal by ID
// @Description Get a single cereal nutrition record by its id
// @Tags cereals
// @Produce json
// @Param id path int true "Cereal ID"
// @Success 200 {object} models.Cereal
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cereals/{id} [get]
func (h *CerealsHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid id parameter")
		return
	}

	cereal, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrCerealNotFound) {
			h.respondError(w, http.StatusNotFound, "cereal not found")
			return
		}
		h.logger.Error("failed to get cereal by id", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to get cereal")
		return
	}

	h.respondJSON(w, http.StatusOK, cereal)
}

// Search handles GET /cereals.
// With field/value/operator parameters it runs a single-field comparison;
// otherwise any whitelisted attribute parameters become exact-match filters;
// with no parameters at all it returns every record.
// @Summary Search cereals
// @Description Search cereals with a field/value/operator triple or per-attribute equality filters
// @Tags cereals
// @Produce json
// @Param field query string false "Column to filter on"
// @Param value query string false "Value to compare against"
// @Param operator query string false "Comparison operator: eq, gt or lt (default eq)"
// @Success 200 {array} models.Cereal
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cereals [get]
func (h *CerealsHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var cereals []models.Cereal
	var err error

	if query.Has("field") || query.Has("value") || query.Has("operator") {
		cereals, err = h.service.Search(r.Context(), query.Get("field"), query.Get("operator"), query.Get("value"))
	} else {
		filters := make(map[string]string)
		for _, field := range models.ValidSearchFields {
			if query.Has(field) {
				filters[field] = query.Get(field)
			}
		}
		cereals, err = h.service.FilterByAttributes(r.Context(), filters)
	}

	if err != nil {
		switch {
		case errors.Is(err, models.ErrNoCerealsFound):
			h.respondError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, models.ErrInvalidField), errors.Is(err, models.ErrInvalidOperator):
			h.respondError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("failed to search cereals", zap.Error(err))
			h.respondError(w, http.StatusInternalServerError, "failed to search cereals")
		}
		return
	}

	h.respondJSON(w, http.StatusOK, cereals)
}

// CreateOrUpdate handles POST /cereals/
// @Summary Create or update a cereal
// @Description Create a new cereal record, or overwrite an existing one when the payload carries an id
// @Tags cereals
// @Accept json
// @Produce json
// @Param request body models.CerealRequest true "Cereal payload; omit id to create"
// @Success 200 {object} models.Cereal "Updated record"
// @Success 201 {object} models.Cereal "Created record"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string "Unknown id on update"
// @Failure 422 {object} map[string]string "Invalid type code"
// @Router /cereals/ [post]
func (h *CerealsHandler) CreateOrUpdate(w http.ResponseWriter, r *http.Request) {
	var req models.CerealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cereal, created, err := h.service.CreateOrUpdate(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidType):
			h.respondError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, models.ErrCerealNotFound):
			h.respondError(w, http.StatusNotFound, "cereal not found with provided id; omit id to create a new entry")
		default:
			h.logger.Error("failed to create or update cereal", zap.Error(err))
			h.respondError(w, http.StatusInternalServerError, "failed to save cereal")
		}
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	h.respondJSON(w, status, cereal)
}

// Delete handles DELETE /cereals/{id}. The route is wrapped in the Admin role
// middleware, so only requests carrying an Admin token reach this handler.
// @Summary Delete cereal by ID
// @Description Delete a cereal nutrition record; requires an Admin token
// @Tags cereals
// @Produce json
// @Param id path int true "Cereal ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security ApiKeyAuth
// @Router /cereals/{id} [delete]
func (h *CerealsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid id parameter")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrCerealNotFound) {
			h.respondError(w, http.StatusNotFound, fmt.Sprintf("cereal with id %d not found", id))
			return
		}
		h.logger.Error("failed to delete cereal", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to delete cereal")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": fmt.Sprintf("cereal with id %d deleted successfully", id)})
}
