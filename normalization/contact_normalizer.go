package normalization

import (
	"fmt"
	"log/slog"
)

// ContactNormalizer приводит строки контактной таблицы к единому виду:
// ФИО в трех первых колонках, телефон в колонке ColPhone в каноническом
// формате. Остальные колонки не трогаются.
type ContactNormalizer struct {
	logger *slog.Logger
}

// NewContactNormalizer создает новый нормализатор контактов.
func NewContactNormalizer(logger *slog.Logger) *ContactNormalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactNormalizer{logger: logger}
}

// NormalizeTable нормализует все строки таблицы на месте. Каждая строка
// обрабатывается ровно один раз и независимо от остальных; строки не
// добавляются и не удаляются. Строка уже MinColumns колонок — структурная
// ошибка входных данных: обработка прерывается без частичного результата.
func (cn *ContactNormalizer) NormalizeTable(table [][]string) error {
	for i, row := range table {
		if len(row) < MinColumns {
			return fmt.Errorf("row %d has %d columns, at least %d required", i, len(row), MinColumns)
		}
		fullName := FormatFullName(row[ColLastName : ColMiddleName+1])
		row[ColLastName] = fullName[0]
		row[ColFirstName] = fullName[1]
		row[ColMiddleName] = fullName[2]
		row[ColPhone] = FormatPhone(row[ColPhone])
	}
	cn.logger.Debug("Contact table normalized", "rows", len(table))
	return nil
}
