package loader

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cerealwarehouse/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleCSV = `name;mfr;type;calories;protein;fat;sodium;fiber;carbo;sugars;potass;vitamins;shelf;weight;cups;rating
String;Categorical;Categorical;Int;Int;Int;Int;Float;Float;Int;Int;Int;Int;Float;Float;Float
100% Bran;N;C;70;4;1;130;10;5;6;280;25;3;1;0.33;68.402.973
Maypo;A;H;100;4;1;0;0;16;3;95;25;2;1;1;54.850.917
`

// mockLoaderRepository is a mock implementation of CerealsRepository
type mockLoaderRepository struct {
	count    int
	countErr error
	bulkErr  error

	inserted []models.Cereal
}

func (m *mockLoaderRepository) Count(ctx context.Context) (int, error) {
	return m.count, m.countErr
}

func (m *mockLoaderRepository) BulkCreate(ctx context.Context, cereals []models.Cereal) error {
	if m.bulkErr != nil {
		return m.bulkErr
	}
	m.inserted = cereals
	return nil
}

func TestParse(t *testing.T) {
	cereals, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, cereals, 2)

	bran := cereals[0]
	assert.Equal(t, "100% Bran", bran.Name)
	assert.Equal(t, "N", bran.Mfr)
	assert.Equal(t, "C", bran.Type)
	assert.Equal(t, 70, bran.Calories)
	assert.Equal(t, 4, bran.Protein)
	assert.Equal(t, 1, bran.Fat)
	assert.Equal(t, 130, bran.Sodium)
	assert.Equal(t, 10.0, bran.Fiber)
	assert.Equal(t, 5.0, bran.Carbo)
	assert.Equal(t, 6, bran.Sugars)
	assert.Equal(t, 280, bran.Potass)
	assert.Equal(t, 25, bran.Vitamins)
	assert.Equal(t, 3, bran.Shelf)
	assert.Equal(t, 1.0, bran.Weight)
	assert.Equal(t, 0.33, bran.Cups)
	assert.InDelta(t, 68.402973, bran.Rating, 1e-9)

	maypo := cereals[1]
	assert.Equal(t, "Maypo", maypo.Name)
	assert.Equal(t, "H", maypo.Type)
	assert.InDelta(t, 54.850917, maypo.Rating, 1e-9)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{
			name: "empty input",
			csv:  "",
		},
		{
			name: "wrong column count",
			csv:  "a;b;c\nunits;units;units\nx;y;z\n",
		},
		{
			name: "non-numeric calories",
			csv: "name;mfr;type;calories;protein;fat;sodium;fiber;carbo;sugars;potass;vitamins;shelf;weight;cups;rating\n" +
				"u;u;u;u;u;u;u;u;u;u;u;u;u;u;u;u\n" +
				"Bad;N;C;abc;4;1;130;10;5;6;280;25;3;1;0.33;68.4\n",
		},
		{
			name: "unparseable rating",
			csv: "name;mfr;type;calories;protein;fat;sodium;fiber;carbo;sugars;potass;vitamins;shelf;weight;cups;rating\n" +
				"u;u;u;u;u;u;u;u;u;u;u;u;u;u;u;u\n" +
				"Bad;N;C;70;4;1;130;10;5;6;280;25;3;1;0.33;not-a-number\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.csv))
			assert.Error(t, err)
		})
	}
}

func TestParse_HeaderAndUnitsRowsAreSkipped(t *testing.T) {
	cereals, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	for _, c := range cereals {
		assert.NotEqual(t, "name", c.Name)
		assert.NotEqual(t, "String", c.Name)
	}
}

func TestCleanRating(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		wantErr  bool
	}{
		{name: "mangled thousands separator", input: "68.402.973", expected: 68.402973},
		{name: "already clean", input: "54.850917", expected: 54.850917},
		{name: "integer rating", input: "50", expected: 50},
		{name: "garbage", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cleanRating(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestLoader_Run(t *testing.T) {
	t.Run("skips a populated table", func(t *testing.T) {
		logger, _ := zap.NewDevelopment()
		mockRepo := &mockLoaderRepository{count: 77}
		l := New(mockRepo, logger)

		err := l.Run(context.Background(), "does-not-exist.csv")

		require.NoError(t, err)
		assert.Nil(t, mockRepo.inserted)
	})

	t.Run("count error propagates", func(t *testing.T) {
		logger, _ := zap.NewDevelopment()
		l := New(&mockLoaderRepository{countErr: errors.New("database error")}, logger)

		assert.Error(t, l.Run(context.Background(), "does-not-exist.csv"))
	})

	t.Run("missing file is an error on an empty table", func(t *testing.T) {
		logger, _ := zap.NewDevelopment()
		l := New(&mockLoaderRepository{}, logger)

		assert.Error(t, l.Run(context.Background(), "does-not-exist.csv"))
	})

	t.Run("loads the shipped dataset into an empty table", func(t *testing.T) {
		logger, _ := zap.NewDevelopment()
		mockRepo := &mockLoaderRepository{}
		l := New(mockRepo, logger)

		err := l.Run(context.Background(), "../../data/cereal.csv")

		require.NoError(t, err)
		assert.NotEmpty(t, mockRepo.inserted)
		for _, c := range mockRepo.inserted {
			assert.Contains(t, []string{models.TypeCold, models.TypeHot}, c.Type)
			assert.Greater(t, c.Rating, 0.0)
			assert.Less(t, c.Rating, 100.0)
		}
	})

	t.Run("bulk insert error propagates", func(t *testing.T) {
		logger, _ := zap.NewDevelopment()
		l := New(&mockLoaderRepository{bulkErr: errors.New("database error")}, logger)

		assert.Error(t, l.Run(context.Background(), "../../data/cereal.csv"))
	})
}
