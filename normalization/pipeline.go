package normalization

import (
	"fmt"
	"log/slog"
	"time"
)

// Pipeline последовательно прогоняет контактную таблицу через нормализацию
// строк, слияние дубликатов и уплотнение. Таблица передается явно и
// принадлежит конвейеру на все время обработки; скрытого состояния нет.
type Pipeline struct {
	normalizer *ContactNormalizer
	merger     *DuplicateMerger
	logger     *slog.Logger
}

// NewPipeline создает конвейер обработки телефонной книги.
func NewPipeline(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		normalizer: NewContactNormalizer(logger),
		merger:     NewDuplicateMerger(logger),
		logger:     logger,
	}
}

// ProcessSummary итог обработки таблицы конвейером.
type ProcessSummary struct {
	InputRows   int           `json:"input_rows"`
	MergeCount  int           `json:"merge_count"`
	RemovedRows int           `json:"removed_rows"`
	OutputRows  int           `json:"output_rows"`
	Duration    time.Duration `json:"duration"`
}

// Process обрабатывает таблицу за один синхронный проход:
// нормализация всех строк, затем поиск и слияние дубликатов, затем
// уплотнение. Таблица мутируется на месте; возвращается уплотненный
// результат. Любая ошибка прерывает обработку целиком, частичный
// результат не возвращается.
func (p *Pipeline) Process(table [][]string) ([][]string, *ProcessSummary, error) {
	start := time.Now()
	p.logger.Info("Phonebook processing started", "rows", len(table))

	if err := p.normalizer.NormalizeTable(table); err != nil {
		return nil, nil, fmt.Errorf("failed to normalize contact table: %w", err)
	}

	merged, mergeSummary, err := p.merger.MergeContacts(table)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to merge duplicates: %w", err)
	}

	summary := &ProcessSummary{
		InputRows:   len(table),
		MergeCount:  mergeSummary.MergeCount,
		RemovedRows: mergeSummary.DuplicateRows,
		OutputRows:  mergeSummary.ResultRows,
		Duration:    time.Since(start),
	}

	p.logger.Info("Phonebook processing completed",
		"input_rows", summary.InputRows,
		"merges", summary.MergeCount,
		"removed", summary.RemovedRows,
		"output_rows", summary.OutputRows,
		"duration", summary.Duration)

	return merged, summary, nil
}
