package importer

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ImporterConfig настройки чтения контактной таблицы.
type ImporterConfig struct {
	Delimiter     rune // разделитель CSV (по умолчанию запятая)
	SkipHeader    bool // пропускать ли первую строку как заголовок
	SkipEmptyRows bool // пропускать ли полностью пустые строки
}

// DefaultImporterConfig возвращает настройки чтения по умолчанию.
// Заголовок по умолчанию не пропускается: конвейер обрабатывает его как
// обычные данные, решение о пропуске принимает вызывающий.
func DefaultImporterConfig() ImporterConfig {
	return ImporterConfig{
		Delimiter:     ',',
		SkipHeader:    false,
		SkipEmptyRows: true,
	}
}

// ContactImporter читает контактные таблицы из CSV и XLSX файлов.
type ContactImporter struct {
	config ImporterConfig
	logger *slog.Logger
}

// NewContactImporter создает импортер с заданными настройками.
func NewContactImporter(config ImporterConfig, logger *slog.Logger) *ContactImporter {
	if config.Delimiter == 0 {
		config.Delimiter = ','
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactImporter{config: config, logger: logger}
}

// ReadContactsFile читает контактную таблицу из файла, выбирая парсер по
// расширению: .xlsx читается как Excel, все остальное как CSV.
func (ci *ContactImporter) ReadContactsFile(filePath string) ([][]string, error) {
	if strings.EqualFold(filepath.Ext(filePath), ".xlsx") {
		return ci.ReadExcelFile(filePath)
	}
	return ci.ReadCSVFile(filePath)
}

// ReadCSVFile читает CSV-файл целиком и парсит его содержимое.
func (ci *ContactImporter) ReadCSVFile(filePath string) ([][]string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	ci.logger.Info("Reading contact CSV", "path", filePath, "bytes", len(data))
	return ci.ReadCSVData(data)
}

// ReadCSVData парсит CSV из байтов, при необходимости конвертируя
// устаревшие кириллические кодировки в UTF-8. Ширина строк не
// выравнивается и не проверяется — это зона ответственности конвейера.
func (ci *ContactImporter) ReadCSVData(data []byte) ([][]string, error) {
	converted, err := ci.detectAndConvertEncoding(data)
	if err != nil {
		return nil, fmt.Errorf("failed to detect file encoding: %w", err)
	}

	reader := csv.NewReader(strings.NewReader(string(converted)))
	reader.Comma = ci.config.Delimiter
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}

	table := make([][]string, 0, len(records))
	for i, record := range records {
		if i == 0 && ci.config.SkipHeader {
			continue
		}
		if ci.config.SkipEmptyRows && isEmptyRow(record) {
			continue
		}
		table = append(table, record)
	}

	ci.logger.Debug("Contact CSV parsed", "rows", len(table), "skipped", len(records)-len(table))
	return table, nil
}

// ReadExcelFile читает первый лист XLSX-файла. Строки выравниваются по
// ширине самой широкой строки листа, чтобы таблица была прямоугольной.
func (ci *ContactImporter) ReadExcelFile(filePath string) ([][]string, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	table := make([][]string, 0, len(rows))
	for i, row := range rows {
		if i == 0 && ci.config.SkipHeader {
			continue
		}
		if ci.config.SkipEmptyRows && isEmptyRow(row) {
			continue
		}
		padded := make([]string, width)
		copy(padded, row)
		table = append(table, padded)
	}

	ci.logger.Info("Contact sheet loaded", "path", filePath, "sheet", sheets[0], "rows", len(table))
	return table, nil
}

// isEmptyRow проверяет, что во всех полях строки нет ничего, кроме пробелов.
func isEmptyRow(row []string) bool {
	for _, field := range row {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

// countCyrillicRunes считает кириллические символы в строке.
func countCyrillicRunes(s string) int {
	count := 0
	for _, r := range s {
		if r >= 0x0400 && r <= 0x04FF {
			count++
		}
	}
	return count
}

// detectAndConvertEncoding определяет кодировку данных и при необходимости
// конвертирует их в UTF-8. Корректный UTF-8 (включая чистый ASCII)
// возвращается как есть; иначе перебираются типовые кириллические
// кодировки, побеждает вариант с наибольшей долей кириллицы.
func (ci *ContactImporter) detectAndConvertEncoding(data []byte) ([]byte, error) {
	if len(data) == 0 || utf8.Valid(data) {
		return data, nil
	}

	candidates := []struct {
		name string
		enc  encoding.Encoding
	}{
		{"Windows-1251", charmap.Windows1251}, // наиболее вероятная для русских данных
		{"KOI8-R", charmap.KOI8R},
		{"ISO-8859-5", charmap.ISO8859_5},
	}

	var bestData []byte
	bestScore := 0
	bestName := ""
	for _, candidate := range candidates {
		decoded, _, err := transform.Bytes(candidate.enc.NewDecoder(), data)
		if err != nil || !utf8.Valid(decoded) {
			continue
		}
		score := countCyrillicRunes(string(decoded))
		if score > bestScore {
			bestData = decoded
			bestScore = score
			bestName = candidate.name
		}
	}

	if bestScore == 0 {
		return nil, fmt.Errorf("data is neither valid UTF-8 nor a known Cyrillic encoding")
	}

	ci.logger.Info("Converted legacy encoding to UTF-8", "encoding", bestName, "cyrillic_runes", bestScore)
	return bestData, nil
}
