// Package loader implements the one-shot CSV import into the cereals table.
package loader

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cerealwarehouse/backend/internal/models"
	"go.uber.org/zap"
)

// The source file carries 16 columns: every cereal attribute except the id.
const columnCount = 16

// CerealsRepository is the subset of the cereals repository the loader needs.
type CerealsRepository interface {
	// Method Count returns the number of cereal rows.
	Count(ctx context.Context) (int, error)
	// Method BulkCreate inserts many cereals in one statement.
	BulkCreate(ctx context.Context, cereals []models.Cereal) error
}

// Loader imports the cereal dataset into an empty cereals table.
type Loader struct {
	repo   CerealsRepository
	logger *zap.Logger
}

// New creates a new loader
func New(repo CerealsRepository, logger *zap.Logger) *Loader {
	return &Loader{
		repo:   repo,
		logger: logger,
	}
}

// Run imports the CSV at path if the cereals table is currently empty.
// It is called once at process start; a populated table makes it a no-op.
func (l *Loader) Run(ctx context.Context, path string) error {
	count, err := l.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check cereal count: %w", err)
	}
	if count > 0 {
		l.logger.Info("cereals table already populated, skipping bulk load", zap.Int("count", count))
		return nil
	}

	cereals, err := ParseFile(path)
	if err != nil {
		return fmt.Errorf("failed to parse cereal csv: %w", err)
	}

	if err := l.repo.BulkCreate(ctx, cereals); err != nil {
		return fmt.Errorf("failed to bulk insert cereals: %w", err)
	}

	l.logger.Info("bulk loaded cereals", zap.Int("count", len(cereals)), zap.String("path", path))
	return nil
}

// ParseFile reads the semicolon-delimited cereal dataset from disk.
func ParseFile(path string) ([]models.Cereal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads the cereal dataset: a header line, a units line (skipped), then
// one record per line.
func Parse(r io.Reader) ([]models.Cereal, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = columnCount

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("csv has no data rows")
	}

	// records[0] is the header, records[1] the units row
	var cereals []models.Cereal
	for i, record := range records[2:] {
		cereal, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+3, err)
		}
		cereals = append(cereals, *cereal)
	}

	return cereals, nil
}

// parseRecord converts one CSV record into a cereal model
func parseRecord(record []string) (*models.Cereal, error) {
	ints := make([]int, columnCount)
	floats := make([]float64, columnCount)

	// Integer columns: calories(3) protein(4) fat(5) sodium(6) sugars(9) potass(10) vitamins(11) shelf(12)
	for _, idx := range []int{3, 4, 5, 6, 9, 10, 11, 12} {
		v, err := strconv.Atoi(strings.TrimSpace(record[idx]))
		if err != nil {
			return nil, fmt.Errorf("invalid integer value %q: %w", record[idx], err)
		}
		ints[idx] = v
	}

	// Float columns: fiber(7) carbo(8) weight(13) cups(14)
	for _, idx := range []int{7, 8, 13, 14} {
		v, err := strconv.ParseFloat(strings.TrimSpace(record[idx]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float value %q: %w", record[idx], err)
		}
		floats[idx] = v
	}

	rating, err := cleanRating(strings.TrimSpace(record[15]))
	if err != nil {
		return nil, err
	}

	return &models.Cereal{
		Name:     strings.TrimSpace(record[0]),
		Mfr:      strings.TrimSpace(record[1]),
		Type:     strings.TrimSpace(record[2]),
		Calories: ints[3],
		Protein:  ints[4],
		Fat:      ints[5],
		Sodium:   ints[6],
		Fiber:    floats[7],
		Carbo:    floats[8],
		Sugars:   ints[9],
		Potass:   ints[10],
		Vitamins: ints[11],
		Shelf:    ints[12],
		Weight:   floats[13],
		Cups:     floats[14],
		Rating:   rating,
	}, nil
}

// cleanRating repairs the dataset's mangled rating column, where a thousands
// separator turned values like 68.402973 into "68.402.973".
func cleanRating(s string) (float64, error) {
	parts := strings.Split(s, ".")
	if len(parts) == 3 {
		s = parts[0] + "." + parts[1] + parts[2]
	}

	rating, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid rating value %q: %w", s, err)
	}

	return rating, nil
}
