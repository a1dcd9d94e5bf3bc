package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/obratools/internal/rewrite"
	"github.com/JonMunkholm/obratools/internal/theme"
	"github.com/JonMunkholm/obratools/internal/tokens"
)

// rewriteFlags are the flags shared by the in-place rewrite commands.
type rewriteFlags struct {
	dryRun bool
	dirs   []string
	exts   []string
}

func (f *rewriteFlags) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "report files that would change without writing them")
	cmd.Flags().StringSliceVar(&f.dirs, "dir", nil, "directories to scan, relative to the root (overrides WORKSPACE_DIRS)")
	cmd.Flags().StringSliceVar(&f.exts, "ext", nil, "file extensions to rewrite (overrides WORKSPACE_EXTENSIONS)")
}

func newFixDuplicatesCmd(a *app) *cobra.Command {
	var f rewriteFlags
	cmd := &cobra.Command{
		Use:   "fix-duplicates",
		Short: "Collapse duplicated Tailwind prefixes such as border-border-card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRewrite(cmd, &f, tokens.Ruleset())
		},
	}
	f.bind(cmd)
	return cmd
}

func newUpdateThemeCmd(a *app) *cobra.Command {
	var f rewriteFlags
	cmd := &cobra.Command{
		Use:   "update-theme",
		Short: "Rename color tokens to the current theme names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRewrite(cmd, &f, theme.Ruleset())
		},
	}
	f.bind(cmd)
	return cmd
}

func (a *app) runRewrite(cmd *cobra.Command, f *rewriteFlags, rs rewrite.Ruleset) error {
	opts := rewrite.Options{
		Root:       a.cfg.Workspace.Root,
		Dirs:       a.cfg.Workspace.Dirs,
		Extensions: a.cfg.Workspace.Extensions,
		DryRun:     a.cfg.Workspace.DryRun,
	}
	if cmd.Flags().Changed("dry-run") {
		opts.DryRun = f.dryRun
	}
	if cmd.Flags().Changed("dir") {
		opts.Dirs = f.dirs
	}
	if cmd.Flags().Changed("ext") {
		opts.Extensions = f.exts
	}

	res, err := rewrite.Run(cmd.Context(), opts, rs)
	if err != nil {
		return err
	}

	verb := "updated"
	if res.DryRun {
		verb = "would update"
	}
	for _, fr := range res.Files {
		fmt.Fprintf(a.out, "%s: %s (%d replacements)\n", verb, relPath(opts.Root, fr.Path), fr.Replacements)
	}
	fmt.Fprintf(a.out, "%d of %d files %s", res.Changed, res.Scanned, verb)
	if res.Failed > 0 {
		fmt.Fprintf(a.out, ", %d failed", res.Failed)
	}
	fmt.Fprintln(a.out)
	return nil
}
