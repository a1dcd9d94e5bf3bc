package rewrite

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/JonMunkholm/obratools/internal/fsutil"
)

// ErrEncoding is returned for files that are not valid UTF-8.
// Such files are left untouched.
var ErrEncoding = errors.New("encoding error: file is not valid UTF-8")

// FileResult describes what happened to a single file.
type FileResult struct {
	Path         string
	Changed      bool
	Replacements int
}

// RewriteFile applies rs to the file at path.
// The file is written only when the text changed and dryRun is false.
// The whole file is transformed in memory first, then replaced atomically.
func RewriteFile(path string, rs Ruleset, dryRun bool) (FileResult, error) {
	res := FileResult{Path: path}

	info, err := os.Stat(path)
	if err != nil {
		return res, fmt.Errorf("stat %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return res, fmt.Errorf("read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return res, fmt.Errorf("%s: %w", path, ErrEncoding)
	}

	original := string(data)
	updated, n := rs.Apply(original)
	res.Replacements = n

	if updated == original {
		return res, nil
	}
	res.Changed = true

	if dryRun {
		return res, nil
	}

	if err := fsutil.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
		res.Changed = false
		return res, fmt.Errorf("write %s: %w", path, err)
	}

	return res, nil
}
