package normalization

import (
	"fmt"
	"log/slog"
	"time"
)

// MergeOp одна операция слияния: данные строки Duplicate вливаются в
// строку Origin.
type MergeOp struct {
	Origin    int
	Duplicate int
}

// MergeSummary итог поиска и слияния дубликатов.
type MergeSummary struct {
	TotalRows     int           `json:"total_rows"`
	MergeCount    int           `json:"merge_count"`
	DuplicateRows int           `json:"duplicate_rows"`
	ResultRows    int           `json:"result_rows"`
	Duration      time.Duration `json:"duration"`
}

// DuplicateMerger находит строки, обозначающие одного человека, и сливает
// данные дубликатов в первую встретившуюся строку.
type DuplicateMerger struct {
	logger *slog.Logger
}

// NewDuplicateMerger создает новый обработчик дубликатов.
func NewDuplicateMerger(logger *slog.Logger) *DuplicateMerger {
	if logger == nil {
		logger = slog.Default()
	}
	return &DuplicateMerger{logger: logger}
}

// sameContact решает, обозначают ли две строки одного человека: фамилии и
// имена совпадают, а отчества либо равны, либо хотя бы одно из них пустое.
// Пустое отчество никогда не мешает совпадению — запись без отчества
// считается той же персоной. Обратная сторона: два разных человека с
// одинаковыми фамилией и именем и неизвестными отчествами будут слиты.
func sameContact(a, b []string) bool {
	if a[ColLastName] != b[ColLastName] || a[ColFirstName] != b[ColFirstName] {
		return false
	}
	return a[ColMiddleName] == b[ColMiddleName] || a[ColMiddleName] == "" || b[ColMiddleName] == ""
}

// FindDuplicates выполняет полный попарный проход по таблице и возвращает
// операции слияния в порядке обнаружения плюс множество индексов строк,
// помеченных дубликатами. Сравнения идут по снимку таблицы до каких-либо
// слияний. Строка, уже помеченная дубликатом, продолжает выступать
// оригиналом для последующих строк: из таблицы она исключается только
// на этапе уплотнения.
func (dm *DuplicateMerger) FindDuplicates(table [][]string) ([]MergeOp, map[int]bool) {
	var ops []MergeOp
	marked := make(map[int]bool)
	for i := 0; i < len(table); i++ {
		for j := i + 1; j < len(table); j++ {
			if sameContact(table[i], table[j]) {
				ops = append(ops, MergeOp{Origin: i, Duplicate: j})
				marked[j] = true
			}
		}
	}
	return ops, marked
}

// MergeContacts находит дубликаты в нормализованной таблице, вливает их
// данные в первые встретившиеся строки и возвращает уплотненную таблицу
// без помеченных строк. Слияния применяются в порядке обнаружения, поэтому
// очередной дубликат вливается в уже обновленный оригинал: при конфликте
// по колонке побеждает последнее непустое значение. Порядок оставшихся
// строк сохраняется; новые строки не создаются.
func (dm *DuplicateMerger) MergeContacts(table [][]string) ([][]string, *MergeSummary, error) {
	start := time.Now()

	ops, marked := dm.FindDuplicates(table)
	for _, op := range ops {
		if err := mergeRows(table, op.Origin, op.Duplicate, ColMiddleName, len(table[op.Origin])); err != nil {
			return nil, nil, fmt.Errorf("failed to merge row %d into row %d: %w", op.Duplicate, op.Origin, err)
		}
	}

	result := make([][]string, 0, len(table)-len(marked))
	for i, row := range table {
		if !marked[i] {
			result = append(result, row)
		}
	}

	summary := &MergeSummary{
		TotalRows:     len(table),
		MergeCount:    len(ops),
		DuplicateRows: len(marked),
		ResultRows:    len(result),
		Duration:      time.Since(start),
	}

	dm.logger.Info("Duplicate contacts merged",
		"total", summary.TotalRows,
		"merges", summary.MergeCount,
		"removed", summary.DuplicateRows,
		"result", summary.ResultRows,
		"duration", summary.Duration)

	return result, summary, nil
}

// mergeRows переписывает в строку origin значения строки duplicate в
// колонках [startColumn, endColumn): непустое значение дубликата замещает
// значение оригинала, пустое никогда не затирает существующие данные.
// Границы обрезаются по более короткой из двух строк, поэтому строки
// разной ширины сливаются по общим колонкам; startColumn больше
// endColumn — ошибка контракта вызывающего.
func mergeRows(table [][]string, origin, duplicate, startColumn, endColumn int) error {
	if startColumn < 0 {
		startColumn = 0
	}
	if endColumn > len(table[origin]) {
		endColumn = len(table[origin])
	}
	if endColumn > len(table[duplicate]) {
		endColumn = len(table[duplicate])
	}
	if startColumn > endColumn {
		return fmt.Errorf("start column %d must not be greater than end column %d", startColumn, endColumn)
	}
	for column := startColumn; column < endColumn; column++ {
		if table[duplicate][column] != "" {
			table[origin][column] = table[duplicate][column]
		}
	}
	return nil
}
