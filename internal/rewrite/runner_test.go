package rewrite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	root := t.TempDir()
	writeTemp(t, root, "components/ui/Button.tsx", "", 0o644)
	writeTemp(t, root, "components/ui/button.css", "", 0o644)
	writeTemp(t, root, "components/Card.TSX", "", 0o644)
	writeTemp(t, root, "app/page.tsx", "", 0o644)
	writeTemp(t, root, "app/node_modules/pkg/index.tsx", "", 0o644)
	writeTemp(t, root, "lib/util.tsx", "", 0o644)

	files, err := Collect(root, []string{"components", "app", "missing"}, []string{".tsx"})
	require.NoError(t, err)

	var rel []string
	for _, f := range files {
		r, err := filepath.Rel(root, f)
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}
	assert.Equal(t, []string{
		"components/Card.TSX",
		"components/ui/Button.tsx",
		"app/page.tsx",
	}, rel)
}

func TestCollect_MissingRoot(t *testing.T) {
	_, err := Collect(filepath.Join(t.TempDir(), "absent"), []string{"app"}, []string{".tsx"})
	assert.Error(t, err)
}

func TestCollect_DuplicateDirs(t *testing.T) {
	root := t.TempDir()
	writeTemp(t, root, "app/page.tsx", "", 0o644)

	files, err := Collect(root, []string{"app", "app"}, []string{".tsx"})
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestRun_IsolatesFailures(t *testing.T) {
	root := t.TempDir()
	good := writeTemp(t, root, "app/a.tsx", `<b className="bg-primary" />`, 0o644)
	writeTemp(t, root, "app/b.tsx", "bg-primary \xff", 0o644)
	writeTemp(t, root, "app/c.tsx", `<b className="p-2" />`, 0o644)

	res, err := Run(context.Background(), Options{
		Root:       root,
		Dirs:       []string{"app"},
		Extensions: []string{".tsx"},
	}, testRules)
	require.NoError(t, err)

	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, "test", res.Ruleset)
	assert.Equal(t, 3, res.Scanned)
	assert.Equal(t, 1, res.Changed)
	assert.Equal(t, 1, res.Failed)
	require.Len(t, res.Files, 1)
	assert.Equal(t, good, res.Files[0].Path)

	data, err := os.ReadFile(good)
	require.NoError(t, err)
	assert.Equal(t, `<b className="bg-accent-gold" />`, string(data))
}

func TestRun_SecondPassChangesNothing(t *testing.T) {
	root := t.TempDir()
	writeTemp(t, root, "components/a.tsx", `<b className="bg-primary" />`, 0o644)
	opts := Options{Root: root, Dirs: []string{"components"}, Extensions: []string{".tsx"}}

	first, err := Run(context.Background(), opts, testRules)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Changed)

	second, err := Run(context.Background(), opts, testRules)
	require.NoError(t, err)
	assert.Zero(t, second.Changed)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestRun_DryRunLeavesFiles(t *testing.T) {
	root := t.TempDir()
	path := writeTemp(t, root, "app/a.tsx", "bg-primary", 0o644)

	res, err := Run(context.Background(), Options{
		Root: root, Dirs: []string{"app"}, Extensions: []string{".tsx"}, DryRun: true,
	}, testRules)
	require.NoError(t, err)
	assert.True(t, res.DryRun)
	assert.Equal(t, 1, res.Changed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "bg-primary", string(data))
}

func TestRun_Cancelled(t *testing.T) {
	root := t.TempDir()
	path := writeTemp(t, root, "app/a.tsx", "bg-primary", 0o644)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{Root: root, Dirs: []string{"app"}, Extensions: []string{".tsx"}}, testRules)
	require.ErrorIs(t, err, context.Canceled)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "bg-primary", string(data))
}
