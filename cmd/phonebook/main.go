package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"phonebook/exporter"
	"phonebook/generator"
	"phonebook/importer"
	"phonebook/internal/config"
	"phonebook/normalization"
	"phonebook/server"
)

const (
	appName    = "phonebook"
	appVersion = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Contact list normalization and deduplication",
	Long: `Phonebook cleans up raw contact exports: splits full names across
the surname, first name and patronymic columns, brings phone numbers
to the canonical +7(XXX)XXX-XX-XX form and merges duplicate contacts.`,
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Normalize a contact file and write the cleaned result",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		applyFlags(cmd, cfg)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		logger := server.ConfigureLogger(cfg.LogLevel)

		imp := importer.NewContactImporter(importer.ImporterConfig{
			Delimiter:     cfg.DelimiterRune(),
			SkipHeader:    cfg.SkipHeader,
			SkipEmptyRows: true,
		}, logger)

		table, err := imp.ReadContactsFile(cfg.InputPath)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", cfg.InputPath, err)
		}

		pipeline := normalization.NewPipeline(logger)
		result, summary, err := pipeline.Process(table)
		if err != nil {
			return fmt.Errorf("failed to process contacts: %w", err)
		}

		format, err := exporter.ParseFormat(cfg.OutputFormat)
		if err != nil {
			return err
		}
		exp := exporter.NewExporter(cfg.DelimiterRune(), logger)
		if err := exp.Export(format, cfg.OutputPath, result); err != nil {
			return fmt.Errorf("failed to export contacts: %w", err)
		}

		fmt.Printf("\n=== Результаты обработки ===\n")
		fmt.Printf("Прочитано записей:  %d\n", summary.InputRows)
		fmt.Printf("Слияний дубликатов: %d\n", summary.MergeCount)
		fmt.Printf("Удалено записей:    %d\n", summary.RemovedRows)
		fmt.Printf("Записано записей:   %d\n", summary.OutputRows)
		fmt.Printf("Время обработки:    %v\n", summary.Duration)
		fmt.Printf("Результат:          %s\n", cfg.OutputPath)
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP normalization server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Port = port
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		return server.NewServer(cfg).Run()
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic raw contact file for testing",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		rows, _ := cmd.Flags().GetInt("rows")
		duplicateRate, _ := cmd.Flags().GetFloat64("duplicate-rate")
		seed, _ := cmd.Flags().GetInt64("seed")

		logger := server.ConfigureLogger("INFO")
		table := generator.Generate(generator.Config{
			Rows:          rows,
			DuplicateRate: duplicateRate,
			Seed:          seed,
		})

		exp := exporter.NewExporter(',', logger)
		if err := exp.ExportToCSV(out, table); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
		fmt.Printf("Generated %d raw contact rows into %s\n", len(table), out)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", appName, appVersion)
	},
}

// applyFlags переносит заданные флаги поверх конфигурации из окружения.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if in, _ := cmd.Flags().GetString("in"); in != "" {
		cfg.InputPath = in
	}
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		cfg.OutputPath = out
	}
	if delimiter, _ := cmd.Flags().GetString("delimiter"); delimiter != "" {
		cfg.Delimiter = delimiter
	}
	if format, _ := cmd.Flags().GetString("format"); format != "" {
		cfg.OutputFormat = format
	}
	if cmd.Flags().Changed("skip-header") {
		skip, _ := cmd.Flags().GetBool("skip-header")
		cfg.SkipHeader = skip
	}
}

func init() {
	normalizeCmd.Flags().String("in", "", "input file, CSV or XLSX (default from PHONEBOOK_INPUT)")
	normalizeCmd.Flags().String("out", "", "output file (default from PHONEBOOK_OUTPUT)")
	normalizeCmd.Flags().String("delimiter", "", "CSV delimiter, single character")
	normalizeCmd.Flags().String("format", "", "output format: csv, json or excel")
	normalizeCmd.Flags().Bool("skip-header", false, "treat the first row as a header and skip it")

	serveCmd.Flags().String("port", "", "listen port (default from SERVER_PORT)")

	generateCmd.Flags().String("out", "phonebook_raw.csv", "output file for generated data")
	generateCmd.Flags().Int("rows", 50, "number of base contacts to generate")
	generateCmd.Flags().Float64("duplicate-rate", 0.3, "fraction of contacts that get a distorted duplicate")
	generateCmd.Flags().Int64("seed", 0, "random seed, 0 for non-deterministic output")

	rootCmd.AddCommand(normalizeCmd, serveCmd, generateCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
