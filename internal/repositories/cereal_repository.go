// Package repositories contains the MySQL data access layer.
package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/cerealwarehouse/backend/internal/models"
	"go.uber.org/zap"
)

// cerealColumns is the canonical column order used by every cereal query.
const cerealColumns = "id, name, mfr, type, calories, protein, fat, sodium, fiber, carbo, sugars, potass, vitamins, shelf, weight, cups, rating"

// operatorSQL maps the public operator names onto SQL comparison operators.
// Only values from this map may ever be interpolated into a query.
var operatorSQL = map[string]string{
	"eq": "=",
	"gt": ">",
	"lt": "<",
}

type cerealsRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewCerealsRepository creates a new cereals repository
func NewCerealsRepository(db *sql.DB, logger *zap.Logger) *cerealsRepository {
	return &cerealsRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new cereal and assigns the generated id back onto the model.
func (r *cerealsRepository) Create(ctx context.Context, cereal *models.Cereal) error {
	query := `
		INSERT INTO cereals (name, mfr, type, calories, protein, fat, sodium, fiber, carbo, sugars, potass, vitamins, shelf, weight, cups, rating)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		cereal.Name, cereal.Mfr, cereal.Type, cereal.Calories, cereal.Protein, cereal.Fat,
		cereal.Sodium, cereal.Fiber, cereal.Carbo, cereal.Sugars, cereal.Potass,
		cereal.Vitamins, cereal.Shelf, cereal.Weight, cereal.Cups, cereal.Rating,
	)
	if err != nil {
		r.logger.Error("failed to create cereal", zap.Error(err))
		return fmt.Errorf("failed to create cereal: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("failed to get last insert id", zap.Error(err))
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	cereal.ID = int(id)
	return nil
}

// GetByID retrieves a cereal by its id
func (r *cerealsRepository) GetByID(ctx context.Context, id int) (*models.Cereal, error) {
	query := fmt.Sprintf(`SELECT %s FROM cereals WHERE id = ?`, cerealColumns)

	cereal := &models.Cereal{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&cereal.ID, &cereal.Name, &cereal.Mfr, &cereal.Type, &cereal.Calories, &cereal.Protein,
		&cereal.Fat, &cereal.Sodium, &cereal.Fiber, &cereal.Carbo, &cereal.Sugars,
		&cereal.Potass, &cereal.Vitamins, &cereal.Shelf, &cereal.Weight, &cereal.Cups, &cereal.Rating,
	)
	if err == sql.ErrNoRows {
		return nil, models.ErrCerealNotFound
	}
	if err != nil {
		r.logger.Error("failed to get cereal by id", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("failed to get cereal by id: %w", err)
	}

	return cereal, nil
}

// Update overwrites every attribute of an existing cereal row.
// Existence is checked by the caller; a no-op update is not an error.
func (r *cerealsRepository) Update(ctx context.Context, cereal *models.Cereal) error {
	query := `
		UPDATE cereals
		SET name = ?, mfr = ?, type = ?, calories = ?, protein = ?, fat = ?, sodium = ?,
			fiber = ?, carbo = ?, sugars = ?, potass = ?, vitamins = ?, shelf = ?,
			weight = ?, cups = ?, rating = ?
		WHERE id = ?
	`

	_, err := r.db.ExecContext(ctx, query,
		cereal.Name, cereal.Mfr, cereal.Type, cereal.Calories, cereal.Protein, cereal.Fat,
		cereal.Sodium, cereal.Fiber, cereal.Carbo, cereal.Sugars, cereal.Potass,
		cereal.Vitamins, cereal.Shelf, cereal.Weight, cereal.Cups, cereal.Rating,
		cereal.ID,
	)
	if err != nil {
		r.logger.Error("failed to update cereal", zap.Error(err), zap.Int("id", cereal.ID))
		return fmt.Errorf("failed to update cereal: %w", err)
	}

	return nil
}

// Delete removes a cereal by id
func (r *cerealsRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM cereals WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.logger.Error("failed to delete cereal", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("failed to delete cereal: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("failed to get affected rows", zap.Error(err))
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return models.ErrCerealNotFound
	}

	return nil
}

// Count returns the number of cereal rows. The bulk loader uses it to decide
// whether the one-time import should run.
func (r *cerealsRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cereals`).Scan(&count)
	if err != nil {
		r.logger.Error("failed to count cereals", zap.Error(err))
		return 0, fmt.Errorf("failed to count cereals: %w", err)
	}

	return count, nil
}

// GetAll retrieves every cereal row
func (r *cerealsRepository) GetAll(ctx context.Context) ([]models.Cereal, error) {
	query := fmt.Sprintf(`SELECT %s FROM cereals ORDER BY id`, cerealColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to query cereals", zap.Error(err))
		return nil, fmt.Errorf("failed to query cereals: %w", err)
	}
	defer rows.Close()

	return scanCereals(rows)
}

// Search retrieves cereals matching `field <operator> value`.
// The field and operator names are validated against fixed whitelists before
// they are placed into the query; the value always rides as a placeholder.
func (r *cerealsRepository) Search(ctx context.Context, field, operator, value string) ([]models.Cereal, error) {
	if !models.IsValidSearchField(field) {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidField, field)
	}

	op, ok := operatorSQL[operator]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidOperator, operator)
	}

	query := fmt.Sprintf(`SELECT %s FROM cereals WHERE %s %s ? ORDER BY id`, cerealColumns, field, op)

	rows, err := r.db.QueryContext(ctx, query, value)
	if err != nil {
		r.logger.Error("failed to search cereals", zap.Error(err), zap.String("field", field))
		return nil, fmt.Errorf("failed to search cereals: %w", err)
	}
	defer rows.Close()

	return scanCereals(rows)
}

// FilterByAttributes retrieves cereals matching every given attribute exactly.
// An empty filter map returns all rows. Filters are applied in canonical column
// order so the generated SQL is deterministic.
func (r *cerealsRepository) FilterByAttributes(ctx context.Context, filters map[string]string) ([]models.Cereal, error) {
	if len(filters) == 0 {
		return r.GetAll(ctx)
	}

	var conditions []string
	var args []any
	for _, field := range models.ValidSearchFields {
		value, ok := filters[field]
		if !ok {
			continue
		}
		conditions = append(conditions, field+" = ?")
		args = append(args, value)
	}

	if len(conditions) != len(filters) {
		for field := range filters {
			if !models.IsValidSearchField(field) {
				return nil, fmt.Errorf("%w: %s", models.ErrInvalidField, field)
			}
		}
	}

	query := fmt.Sprintf(`SELECT %s FROM cereals WHERE %s ORDER BY id`,
		cerealColumns, strings.Join(conditions, " AND "))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to filter cereals", zap.Error(err))
		return nil, fmt.Errorf("failed to filter cereals: %w", err)
	}
	defer rows.Close()

	return scanCereals(rows)
}

// BulkCreate inserts many cereals in one statement.
// Placeholders are joined into a single multi-row VALUES clause.
func (r *cerealsRepository) BulkCreate(ctx context.Context, cereals []models.Cereal) error {
	if len(cereals) == 0 {
		return nil
	}

	valuePlaceholders := make([]string, len(cereals))
	args := make([]any, 0, len(cereals)*16)
	for i, c := range cereals {
		valuePlaceholders[i] = "(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"
		args = append(args,
			c.Name, c.Mfr, c.Type, c.Calories, c.Protein, c.Fat, c.Sodium, c.Fiber,
			c.Carbo, c.Sugars, c.Potass, c.Vitamins, c.Shelf, c.Weight, c.Cups, c.Rating,
		)
	}

	query := fmt.Sprintf(`
		INSERT INTO cereals (name, mfr, type, calories, protein, fat, sodium, fiber, carbo, sugars, potass, vitamins, shelf, weight, cups, rating)
		VALUES %s
	`, strings.Join(valuePlaceholders, ", "))

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Error("failed to bulk create cereals", zap.Error(err), zap.Int("count", len(cereals)))
		return fmt.Errorf("failed to bulk create cereals: %w", err)
	}

	return nil
}

// scanCereals drains a result set into a slice of cereals
func scanCereals(rows *sql.Rows) ([]models.Cereal, error) {
	var cereals []models.Cereal
	for rows.Next() {
		var c models.Cereal
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Mfr, &c.Type, &c.Calories, &c.Protein, &c.Fat, &c.Sodium,
			&c.Fiber, &c.Carbo, &c.Sugars, &c.Potass, &c.Vitamins, &c.Shelf, &c.Weight,
			&c.Cups, &c.Rating,
		); err != nil {
			return nil, fmt.Errorf("failed to scan cereal: %w", err)
		}
		cereals = append(cereals, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return cereals, nil
}
