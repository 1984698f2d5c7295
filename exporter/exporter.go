package exporter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExportFormat формат экспорта обработанной таблицы.
type ExportFormat string

const (
	FormatCSV   ExportFormat = "csv"
	FormatJSON  ExportFormat = "json"
	FormatExcel ExportFormat = "excel"
)

// ParseFormat разбирает строковое имя формата экспорта.
func ParseFormat(s string) (ExportFormat, error) {
	switch ExportFormat(s) {
	case FormatCSV, FormatJSON, FormatExcel:
		return ExportFormat(s), nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// Колонки контактной таблицы, известные экспортеру. Колонки за пределами
// этого списка попадают в Extra.
const (
	colLastName = iota
	colFirstName
	colMiddleName
	colOrganization
	colPosition
	colPhone
	colEmail
	knownColumns
)

// contactHeaders заголовки листа Excel в порядке колонок.
var contactHeaders = []string{
	"Фамилия", "Имя", "Отчество", "Организация", "Должность", "Телефон", "Email",
}

// ContactRecord структурированное представление строки контакта.
type ContactRecord struct {
	LastName     string   `json:"last_name"`
	FirstName    string   `json:"first_name"`
	MiddleName   string   `json:"middle_name"`
	Organization string   `json:"organization,omitempty"`
	Position     string   `json:"position,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	Email        string   `json:"email,omitempty"`
	Extra        []string `json:"extra,omitempty"`
}

// RecordFromRow раскладывает строку таблицы по именованным полям контакта.
// Недостающие колонки остаются пустыми, колонки сверх известных попадают
// в Extra как есть.
func RecordFromRow(row []string) ContactRecord {
	field := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	record := ContactRecord{
		LastName:     field(colLastName),
		FirstName:    field(colFirstName),
		MiddleName:   field(colMiddleName),
		Organization: field(colOrganization),
		Position:     field(colPosition),
		Phone:        field(colPhone),
		Email:        field(colEmail),
	}
	if len(row) > knownColumns {
		record.Extra = append(record.Extra, row[knownColumns:]...)
	}
	return record
}

// Exporter записывает обработанную контактную таблицу в файлы и потоки.
type Exporter struct {
	delimiter rune
	logger    *slog.Logger
}

// NewExporter создает экспортер с заданным разделителем CSV.
func NewExporter(delimiter rune, logger *slog.Logger) *Exporter {
	if delimiter == 0 {
		delimiter = ','
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{delimiter: delimiter, logger: logger}
}

// WriteCSV пишет таблицу в поток как CSV: строка на запись, поля в порядке
// колонок, кавычки добавляются только там, где без них не обойтись.
// Заголовок не добавляется — на выходе те же данные, что в таблице.
func (e *Exporter) WriteCSV(w io.Writer, table [][]string) error {
	writer := csv.NewWriter(w)
	writer.Comma = e.delimiter
	for _, row := range table {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// ExportToCSV записывает таблицу в CSV-файл.
func (e *Exporter) ExportToCSV(filename string, table [][]string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := e.WriteCSV(file, table); err != nil {
		return err
	}

	e.logger.Info("Contacts exported", "format", FormatCSV, "path", filename, "rows", len(table))
	return nil
}

// ExportToJSON записывает таблицу в JSON-файл: конверт с временем выгрузки,
// количеством записей и структурированными контактами.
func (e *Exporter) ExportToJSON(filename string, table [][]string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	items := make([]ContactRecord, 0, len(table))
	for _, row := range table {
		items = append(items, RecordFromRow(row))
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	result := map[string]interface{}{
		"exported_at": time.Now().Format(time.RFC3339),
		"total":       len(items),
		"items":       items,
	}
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	e.logger.Info("Contacts exported", "format", FormatJSON, "path", filename, "rows", len(table))
	return nil
}

// ExportToExcel записывает таблицу в XLSX-файл с оформленной строкой
// заголовков. Колонки сверх известных получают нумерованные заголовки.
func (e *Exporter) ExportToExcel(filename string, table [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Контакты"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	width := knownColumns
	for _, row := range table {
		if len(row) > width {
			width = len(row)
		}
	}

	for i := 0; i < width; i++ {
		header := fmt.Sprintf("Колонка %d", i+1)
		if i < len(contactHeaders) {
			header = contactHeaders[i]
		}
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, row := range table {
		for colIdx, value := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := 0; i < width; i++ {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, col, col, 18)
	}

	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}

	e.logger.Info("Contacts exported", "format", FormatExcel, "path", filename, "rows", len(table))
	return nil
}

// Export записывает таблицу в файл в указанном формате.
func (e *Exporter) Export(format ExportFormat, filename string, table [][]string) error {
	switch format {
	case FormatJSON:
		return e.ExportToJSON(filename, table)
	case FormatExcel:
		return e.ExportToExcel(filename, table)
	case FormatCSV:
		return e.ExportToCSV(filename, table)
	}
	return fmt.Errorf("unknown export format %q", format)
}
