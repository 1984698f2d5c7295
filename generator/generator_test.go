package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonebook/normalization"
)

func TestGenerate(t *testing.T) {
	table := Generate(Config{Rows: 20, DuplicateRate: 0.5, Seed: 42})

	require.GreaterOrEqual(t, len(table), 20)
	for _, row := range table {
		assert.Len(t, row, 7)
		assert.NotEmpty(t, row[0])
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	first := Generate(Config{Rows: 10, DuplicateRate: 0.5, Seed: 7})
	second := Generate(Config{Rows: 10, DuplicateRate: 0.5, Seed: 7})
	assert.Equal(t, first, second)
}

func TestGeneratedTableSurvivesPipeline(t *testing.T) {
	table := Generate(Config{Rows: 30, DuplicateRate: 0.4, Seed: 1})

	p := normalization.NewPipeline(nil)
	result, summary, err := p.Process(table)
	require.NoError(t, err)
	assert.Equal(t, len(result), summary.OutputRows)
	assert.LessOrEqual(t, summary.OutputRows, summary.InputRows)

	// Все телефоны либо канонизированы, либо пусты.
	for _, row := range result {
		phone := row[normalization.ColPhone]
		if phone == "" {
			continue
		}
		assert.Regexp(t, `^\+7\(\d{3}\)\d{3}-\d{2}-\d{2}( доб\.\d{4})?$`, phone)
	}
}
