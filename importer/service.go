package importer

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"regsift/config"
	"regsift/registrant"
)

type Result struct {
	FilesProcessed int
	Records        *registrant.Result
}

// Run reads every input file, detects each file's export format from its own
// header row, classifies its rows and merges the records in argument order.
func Run(ctx context.Context, paths []string, format string, cfg config.Config, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	result := &Result{}
	acc := registrant.NewAccumulator()
	for _, path := range paths {
		sourceFormat, err := inferFormat(path, format)
		if err != nil {
			return nil, err
		}
		reader, err := ReaderForFormat(sourceFormat)
		if err != nil {
			return nil, err
		}

		table, err := reader.Read(path)
		if err != nil {
			return nil, err
		}

		exportFormat := registrant.DetectFormat(table.Headers)
		fileLogger := logger.With(zap.String("file", path), zap.Stringer("export", exportFormat))
		fileLogger.Debug("input read", zap.String("format", sourceFormat), zap.Int("rows", len(table.Rows)))

		records, err := registrant.ProcessFormat(ctx, table.Rows, exportFormat, registrant.Options{
			Labels:  cfg.Labels(),
			Workers: cfg.Process.Workers,
			Logger:  fileLogger,
		})
		if err != nil {
			return nil, fmt.Errorf("process %s: %w", path, err)
		}

		result.FilesProcessed++
		acc.Merge(records)
		fileLogger.Info("input processed",
			zap.Int("iftar", len(records.Iftar)),
			zap.Int("programming", len(records.Programming)),
			zap.Int("skipped", records.RowsSkipped),
		)
	}

	result.Records = acc.Result()
	return result, nil
}

func inferFormat(path string, format string) (string, error) {
	if strings.TrimSpace(format) != "" {
		return format, nil
	}
	if path == "-" {
		return "csv", nil
	}

	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch extension {
	case "csv":
		return "csv", nil
	case "xlsx", "xlsm", "xls":
		return "excel", nil
	default:
		return "", fmt.Errorf("%w: file extension of %s", ErrUnsupportedFormat, path)
	}
}
