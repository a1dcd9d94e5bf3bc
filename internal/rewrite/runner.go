package rewrite

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/JonMunkholm/obratools/internal/logging"
)

// Options selects the files a run touches.
type Options struct {
	Root       string
	Dirs       []string
	Extensions []string
	DryRun     bool
}

// Result contains the final result of a rewrite run.
type Result struct {
	RunID    string
	Ruleset  string
	Scanned  int
	Changed  int
	Failed   int
	DryRun   bool
	Files    []FileResult // changed files only, in processing order
	Duration time.Duration
}

// Run applies rs to every file selected by opts.
//
// Per-file errors are logged and counted in Result.Failed; they never abort
// the run. Only a failure to enumerate files, or a cancelled ctx, returns an
// error.
func Run(ctx context.Context, opts Options, rs Ruleset) (*Result, error) {
	start := time.Now()
	res := &Result{
		RunID:   uuid.NewString(),
		Ruleset: rs.Name,
		DryRun:  opts.DryRun,
	}

	ctx = logging.WithRun(ctx, res.RunID)
	logger := logging.WithFields(ctx, "ruleset", rs.Name)

	files, err := Collect(opts.Root, opts.Dirs, opts.Extensions)
	if err != nil {
		return nil, err
	}

	logger.Debug("files collected", "count", len(files), "rules", len(rs.Rules))

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("operation cancelled after %d files: %w", res.Scanned, err)
		}
		res.Scanned++

		rel := relPath(opts.Root, path)

		fr, err := RewriteFile(path, rs, opts.DryRun)
		if err != nil {
			res.Failed++
			logger.Warn("failed to process file", "path", rel, "error", err)
			continue
		}
		if !fr.Changed {
			continue
		}

		res.Changed++
		res.Files = append(res.Files, fr)
		if opts.DryRun {
			logger.Info("file would change", "path", rel, "replacements", fr.Replacements)
		} else {
			logger.Info("file updated", "path", rel, "replacements", fr.Replacements)
		}
	}

	res.Duration = time.Since(start)
	logger.Info("rewrite complete",
		"scanned", res.Scanned,
		"changed", res.Changed,
		"failed", res.Failed,
		"dry_run", res.DryRun,
		"duration", res.Duration,
	)

	return res, nil
}

func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
