package scaffold

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureParentIndexFilesCreatesMissing(t *testing.T) {
	g, fsys := newTestGenerator(t)

	updates, err := g.EnsureParentIndexFiles("root", "a/b/c")
	require.NoError(t, err)

	assert.Equal(t, "export * from './b';\n", read(t, fsys, "root/a/index.ts"))
	assert.Equal(t, "export * from './c';\n", read(t, fsys, "root/a/b/index.ts"))
	assertNotExists(t, fsys, "root/a/b/c")
	assertNotExists(t, fsys, "root/index.ts")

	require.Len(t, updates, 2)
	assert.Equal(t, "b", updates[0].Child)
	assert.True(t, updates[0].Created)
}

func TestEnsureParentIndexFilesAppends(t *testing.T) {
	g, fsys := newTestGenerator(t)
	require.NoError(t, fsys.MkdirAll("root/a", 0755))
	require.NoError(t, afero.WriteFile(fsys, "root/a/index.ts", []byte("export * from './other';\n"), 0644))

	updates, err := g.EnsureParentIndexFiles("root", "a/b")
	require.NoError(t, err)

	assert.Equal(t, "export * from './other';\nexport * from './b';\n", read(t, fsys, "root/a/index.ts"))
	require.Len(t, updates, 1)
	assert.False(t, updates[0].Created)
}

func TestEnsureParentIndexFilesSkipsPresentExport(t *testing.T) {
	g, fsys := newTestGenerator(t)
	require.NoError(t, fsys.MkdirAll("root/a", 0755))
	require.NoError(t, afero.WriteFile(fsys, "root/a/index.ts", []byte("export * from './b';\n"), 0644))

	updates, err := g.EnsureParentIndexFiles("root", "a/b")
	require.NoError(t, err)

	assert.Empty(t, updates)
	assert.Equal(t, "export * from './b';\n", read(t, fsys, "root/a/index.ts"))
}

// The duplicate check is a plain substring test: an unrelated longer name
// that contains the child suppresses the export.
func TestEnsureParentIndexFilesSubstringMatchSuppressesExport(t *testing.T) {
	g, fsys := newTestGenerator(t)
	require.NoError(t, fsys.MkdirAll("root/order", 0755))
	require.NoError(t, afero.WriteFile(fsys, "root/order/index.ts", []byte("export * from './listing';\n"), 0644))

	updates, err := g.EnsureParentIndexFiles("root", "order/list")
	require.NoError(t, err)

	assert.Empty(t, updates)
	assert.Equal(t, "export * from './listing';\n", read(t, fsys, "root/order/index.ts"))
}

func TestEnsureParentIndexFilesIsCaseSensitive(t *testing.T) {
	g, fsys := newTestGenerator(t)
	require.NoError(t, fsys.MkdirAll("root/a", 0755))
	require.NoError(t, afero.WriteFile(fsys, "root/a/index.ts", []byte("export * from './List';\n"), 0644))

	_, err := g.EnsureParentIndexFiles("root", "a/list")
	require.NoError(t, err)

	assert.Equal(t, "export * from './List';\nexport * from './list';\n", read(t, fsys, "root/a/index.ts"))
}

func TestEnsureParentIndexFilesSingleSegment(t *testing.T) {
	g, fsys := newTestGenerator(t)

	updates, err := g.EnsureParentIndexFiles("root", "only")
	require.NoError(t, err)

	assert.Empty(t, updates)
	assertNotExists(t, fsys, "root")
}
