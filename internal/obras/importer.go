package obras

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/JonMunkholm/obratools/internal/fsutil"
	"github.com/JonMunkholm/obratools/internal/logging"
)

// Options locates the workbook and the generated files.
type Options struct {
	Workbook   string
	Sheet      string // empty selects the active sheet
	Output     string
	JSONOutput string // empty disables the JSON export
}

// Result contains the final result of an import run.
type Result struct {
	RunID      string
	Sheet      string
	Rows       int // data rows read, header excluded
	Emitted    int
	Dropped    int // rows without a work description
	Degraded   int // cells set to NULL after a failed conversion
	Output     string
	JSONOutput string
	Duration   time.Duration
}

// Run reads the workbook, builds one record per qualifying row and writes
// the SQL file (and the JSON export when configured).
//
// A missing workbook returns ErrWorkbookNotFound and zero qualifying rows
// return ErrNoRecords; in both cases nothing is written and the returned
// Result is still populated with what was counted.
func Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	res := &Result{RunID: uuid.NewString()}

	ctx = logging.WithRun(ctx, res.RunID)
	logger := logging.WithFields(ctx, "workbook", opts.Workbook)

	sheet, err := ReadSheet(opts.Workbook, opts.Sheet)
	if err != nil {
		return res, err
	}
	res.Sheet = sheet.Name

	if len(sheet.Rows) == 0 {
		return res, fmt.Errorf("%w in sheet %q", ErrNoRecords, sheet.Name)
	}

	idx := MakeHeaderIndex(Values(sheet.Rows[0]))
	logger.Debug("headers resolved", "sheet", sheet.Name, "fields", len(idx))
	if !idx.Has(FieldDescription) {
		logger.Warn("work description column not found", "sheet", sheet.Name)
	}

	var records []Obra
	for i, row := range sheet.Rows[1:] {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("operation cancelled after %d rows: %w", res.Rows, err)
		}
		res.Rows++
		line := i + 2

		o, degraded, ok := BuildObra(row, idx, line)
		if !ok {
			res.Dropped++
			logger.Debug("row dropped: no obra", "line", line)
			continue
		}
		for _, c := range degraded {
			res.Degraded++
			logger.Debug("cell set to NULL", "line", line, "field", c.Field.String(), "value", c.Value, "error", c.Err)
		}

		records = append(records, o)
		logger.Info("record processed", "line", line, "obra", o.Description)
	}

	res.Emitted = len(records)
	if res.Emitted == 0 {
		return res, fmt.Errorf("%w in sheet %q", ErrNoRecords, sheet.Name)
	}

	if err := fsutil.WriteFile(opts.Output, Render(records), 0o644); err != nil {
		return res, fmt.Errorf("write sql output: %w", err)
	}
	res.Output = opts.Output

	if opts.JSONOutput != "" {
		data, err := ExportJSON(records)
		if err != nil {
			return res, err
		}
		if err := fsutil.WriteFile(opts.JSONOutput, data, 0o644); err != nil {
			return res, fmt.Errorf("write json output: %w", err)
		}
		res.JSONOutput = opts.JSONOutput
	}

	res.Duration = time.Since(start)
	logger.Info("import complete",
		"sheet", res.Sheet,
		"rows", res.Rows,
		"emitted", res.Emitted,
		"dropped", res.Dropped,
		"degraded", res.Degraded,
		"output", res.Output,
		"duration", res.Duration,
	)
	return res, nil
}
