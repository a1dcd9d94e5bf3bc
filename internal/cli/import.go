package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/obratools/internal/obras"
)

type importFlags struct {
	workbook string
	sheet    string
	output   string
	json     string
}

func newImportObrasCmd(a *app) *cobra.Command {
	var f importFlags
	cmd := &cobra.Command{
		Use:   "import-obras",
		Short: "Generate SQL INSERT statements from the obras workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runImport(cmd, &f)
		},
	}
	cmd.Flags().StringVar(&f.workbook, "workbook", "", "source workbook (overrides OBRAS_WORKBOOK)")
	cmd.Flags().StringVar(&f.sheet, "sheet", "", "sheet name; empty uses the active sheet (overrides OBRAS_SHEET)")
	cmd.Flags().StringVar(&f.output, "output", "", "generated SQL file (overrides OBRAS_OUTPUT)")
	cmd.Flags().StringVar(&f.json, "json", "", "also export records as JSON to this file (overrides OBRAS_JSON_OUTPUT)")
	return cmd
}

func (a *app) runImport(cmd *cobra.Command, f *importFlags) error {
	cfg := *a.cfg
	flags := cmd.Flags()
	if flags.Changed("workbook") {
		cfg.Import.Workbook = f.workbook
	}
	if flags.Changed("sheet") {
		cfg.Import.Sheet = f.sheet
	}
	if flags.Changed("output") {
		cfg.Import.Output = f.output
	}
	if flags.Changed("json") {
		cfg.Import.JSONOutput = f.json
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	res, err := obras.Run(cmd.Context(), obras.Options{
		Workbook:   cfg.WorkbookPath(),
		Sheet:      cfg.Import.Sheet,
		Output:     cfg.OutputPath(),
		JSONOutput: cfg.JSONOutputPath(),
	})
	if obras.IsGraceful(err) {
		fmt.Fprintln(a.out, describe(err))
		fmt.Fprintln(a.out, "0 INSERT statements generated")
		return nil
	}
	if err != nil {
		return err
	}

	root := cfg.Workspace.Root
	fmt.Fprintf(a.out, "%d INSERT statements generated from sheet %q (%d rows, %d without obra)\n",
		res.Emitted, res.Sheet, res.Rows, res.Dropped)
	fmt.Fprintf(a.out, "SQL written to %s\n", relPath(root, res.Output))
	if res.JSONOutput != "" {
		fmt.Fprintf(a.out, "JSON written to %s\n", relPath(root, res.JSONOutput))
	}
	return nil
}

func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
