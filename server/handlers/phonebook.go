package handlers

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"phonebook/exporter"
	"phonebook/importer"
	"phonebook/normalization"
	"phonebook/server/middleware"
)

// PhonebookHandler обработчик нормализации телефонной книги.
type PhonebookHandler struct {
	pipeline       *normalization.Pipeline
	maxUploadBytes int64
	logger         *slog.Logger
}

// NewPhonebookHandler создает обработчик с готовым конвейером.
func NewPhonebookHandler(pipeline *normalization.Pipeline, maxUploadBytes int64, logger *slog.Logger) *PhonebookHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PhonebookHandler{
		pipeline:       pipeline,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// Health возвращает статус сервиса.
func (h *PhonebookHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Normalize принимает CSV-документ (тело запроса или multipart-поле file),
// прогоняет его через конвейер и возвращает результат.
//
// Параметры запроса:
//   - delimiter: разделитель CSV, один символ (по умолчанию запятая);
//   - skip_header: "true", чтобы пропустить первую строку;
//   - format: csv (по умолчанию) или json.
func (h *PhonebookHandler) Normalize(c *gin.Context) {
	reqID := middleware.GetRequestID(c)

	delimiter := c.DefaultQuery("delimiter", ",")
	if utf8.RuneCountInString(delimiter) != 1 {
		h.badRequest(c, "delimiter must be a single character")
		return
	}
	delimiterRune, _ := utf8.DecodeRuneInString(delimiter)

	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "json" {
		h.badRequest(c, "format must be csv or json")
		return
	}

	data, err := h.readUpload(c)
	if errors.Is(err, errUploadTooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error":      true,
			"message":    err.Error(),
			"request_id": reqID,
		})
		return
	}
	if err != nil {
		h.badRequest(c, err.Error())
		return
	}
	if len(bytes.TrimSpace(data)) == 0 {
		h.badRequest(c, "request body is empty")
		return
	}

	imp := importer.NewContactImporter(importer.ImporterConfig{
		Delimiter:     delimiterRune,
		SkipHeader:    c.Query("skip_header") == "true",
		SkipEmptyRows: true,
	}, h.logger)

	table, err := imp.ReadCSVData(data)
	if err != nil {
		h.badRequest(c, err.Error())
		return
	}

	result, summary, err := h.pipeline.Process(table)
	if err != nil {
		h.logger.Error("Phonebook processing failed", "error", err, "request_id", reqID)
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":      true,
			"message":    err.Error(),
			"request_id": reqID,
		})
		return
	}

	if format == "json" {
		items := make([]exporter.ContactRecord, 0, len(result))
		for _, row := range result {
			items = append(items, exporter.RecordFromRow(row))
		}
		c.JSON(http.StatusOK, gin.H{
			"total":        summary.OutputRows,
			"input_rows":   summary.InputRows,
			"removed_rows": summary.RemovedRows,
			"items":        items,
		})
		return
	}

	var buf bytes.Buffer
	exp := exporter.NewExporter(delimiterRune, h.logger)
	if err := exp.WriteCSV(&buf, result); err != nil {
		h.logger.Error("CSV encoding failed", "error", err, "request_id", reqID)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      true,
			"message":    "failed to encode result",
			"request_id": reqID,
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="phonebook.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// errUploadTooLarge тело запроса превышает настроенный максимум.
var errUploadTooLarge = errors.New("upload exceeds the size limit")

// readUpload читает CSV из multipart-поля file либо из тела запроса.
// Тело больше настроенного максимума отвергается целиком: усеченная
// таблица выглядела бы как успешно обработанная.
func (h *PhonebookHandler) readUpload(c *gin.Context) ([]byte, error) {
	var src io.Reader = c.Request.Body
	if file, err := c.FormFile("file"); err == nil {
		opened, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer opened.Close()
		src = opened
	}

	data, err := io.ReadAll(io.LimitReader(src, h.maxUploadBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > h.maxUploadBytes {
		return nil, errUploadTooLarge
	}
	return data, nil
}

func (h *PhonebookHandler) badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":      true,
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	})
}
