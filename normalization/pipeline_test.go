package normalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineProcess(t *testing.T) {
	p := NewPipeline(nil)

	// Запись B — дубликат записи A с заполненным отчеством: на выходе
	// одна строка с данными A и отчеством B.
	table := [][]string{
		{"Усольцев Олег", "", "", "Softline", "аналитик", "8 916 123 45 67"},
		{"Усольцев", "Олег", "Валентинович", "", "", ""},
	}

	result, summary, err := p.Process(table)
	require.NoError(t, err)
	require.Len(t, result, 1)

	assert.Equal(t, []string{"Усольцев", "Олег", "Валентинович", "Softline", "аналитик", "+7(916)123-45-67"}, result[0])
	assert.Equal(t, 2, summary.InputRows)
	assert.Equal(t, 1, summary.RemovedRows)
	assert.Equal(t, 1, summary.OutputRows)
}

func TestPipelineProcessThreeWayCollapse(t *testing.T) {
	p := NewPipeline(nil)

	// Три записи одного человека без отчества: все сливаются в одну,
	// итоговый телефон — из последней записи.
	table := [][]string{
		{"Иванов Иван", "", "", "", "", "8 916 111 11 11"},
		{"Иванов", "Иван", "", "", "", "8 916 222 22 22"},
		{"Иванов", "Иван", "", "", "", "8 916 333 33 33"},
	}

	result, summary, err := p.Process(table)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "+7(916)333-33-33", result[0][ColPhone])
	assert.Equal(t, 2, summary.RemovedRows)
}

func TestPipelineProcessShortRowAborts(t *testing.T) {
	p := NewPipeline(nil)

	table := [][]string{
		{"Иванов", "Иван", "", "", "", "89161234567"},
		{"обрезанная строка"},
	}

	result, summary, err := p.Process(table)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Nil(t, summary)
}

func TestPipelineProcessNormalizationFeedsMatching(t *testing.T) {
	p := NewPipeline(nil)

	// До нормализации фамилии и имена лежат в разных колонках и не
	// совпадают построчно; дубликат распознается только после того, как
	// форматирование ФИО выровняло идентификационные поля.
	table := [][]string{
		{"Богданов Вадим Николаевич", "", "", "", "", "89031234567"},
		{"Богданов", "Вадим", "", "", "", ""},
	}

	result, _, err := p.Process(table)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, []string{"Богданов", "Вадим", "Николаевич"}, result[0][:3])
	assert.Equal(t, "+7(903)123-45-67", result[0][ColPhone])
}
