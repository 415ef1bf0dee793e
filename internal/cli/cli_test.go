package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command tree against a fresh project directory.
func run(t *testing.T, projectDir, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PAGEGEN_HOME", t.TempDir())

	cmd := NewRootCmd(BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2026-01-01"})
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--dir", projectDir}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestPageInteractive(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "test/path\ntest_page\ny\nN\nN\ny\n", "page")
	require.NoError(t, err)

	assert.Contains(t, out, "Page path (e.g. test/path): ")
	assert.Contains(t, out, "(models/interfaces/test/path) (y/N): ")
	assert.Contains(t, out, "Created page TestPage at test/path")

	comp := filepath.Join(dir, "src", "components", "pages", "test", "path")
	assert.FileExists(t, filepath.Join(comp, "TestPageCondition.tsx"))
	assert.FileExists(t, filepath.Join(comp, "TestPageComponent.tsx"))
	assert.FileExists(t, filepath.Join(dir, "src", "hooks", "client", "test", "path", "index.ts"))
	assert.NoDirExists(t, filepath.Join(dir, "src", "models"))
}

func TestPageArgsWithAllFlagsNo(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "N\nN\nN\nN\n", "page", "test/path", "TestPage")
	require.NoError(t, err)
	assert.NotContains(t, out, "Page path")

	assert.FileExists(t, filepath.Join(dir, "src", "components", "pages", "test", "path", "index.ts"))
	assert.FileExists(t, filepath.Join(dir, "src", "pages", "test", "path", "TestPagePage.tsx"))
	assert.NoFileExists(t, filepath.Join(dir, "src", "components", "pages", "test", "path", "TestPageCondition.tsx"))
	assert.NoDirExists(t, filepath.Join(dir, "src", "models", "interfaces"))
	assert.NoDirExists(t, filepath.Join(dir, "src", "models", "types"))
	assert.NoDirExists(t, filepath.Join(dir, "src", "hooks", "client"))
}

func TestPageFlagsSkipPrompts(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "", "page", "order/list", "OrderList", "--types", "--search-condition=false", "--yes")
	require.NoError(t, err)
	assert.NotContains(t, out, "(y/N)")

	assert.FileExists(t, filepath.Join(dir, "src", "models", "types", "order", "list", "index.ts"))
	assert.NoDirExists(t, filepath.Join(dir, "src", "models", "interfaces"))
}

func TestPageRerunDoesNotDuplicateExports(t *testing.T) {
	dir := t.TempDir()

	for i := 0; i < 2; i++ {
		_, err := run(t, dir, "", "page", "test/path", "TestPage", "--yes")
		require.NoError(t, err)
	}

	barrel := readFile(t, filepath.Join(dir, "src", "pages", "test", "index.ts"))
	assert.Equal(t, "export * from './path';\n", barrel)
}

func TestNewCombinedArgument(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "", "new", "order-history/detail/order_detail", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Created page OrderDetail at orderHistory/detail")

	page := readFile(t, filepath.Join(dir, "src", "pages", "orderHistory", "detail", "OrderDetailPage.tsx"))
	assert.Contains(t, page, "} from '@components/pages/orderHistory/detail';")
}

func TestPageUsesProjectConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".pagegen.yaml"),
		[]byte("src_dir: app\ncomponent_alias: '@/components/pages'\n"), 0644))

	_, err := run(t, dir, "", "page", "home", "Home", "--yes")
	require.NoError(t, err)

	page := readFile(t, filepath.Join(dir, "app", "pages", "home", "HomePage.tsx"))
	assert.Contains(t, page, "} from '@/components/pages/home';")
}

func TestPageDryRun(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "", "page", "a/b", "Thing", "--yes", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "Would create page Thing at a/b")
	assert.NoDirExists(t, filepath.Join(dir, "src"))
}

func TestApplyManifest(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "pages.yaml")
	require.NoError(t, os.WriteFile(manifestPath, []byte(`schema_version: "1.0.0"
defaults:
  interfaces: true
pages:
  - path: order/list
    name: order-list
    search_condition: true
  - path: order/detail
    name: OrderDetail
`), 0644))

	out, err := run(t, dir, "", "apply", manifestPath)
	require.NoError(t, err)
	assert.Contains(t, out, "2 page(s)")

	assert.FileExists(t, filepath.Join(dir, "src", "components", "pages", "order", "list", "OrderListCondition.tsx"))
	assert.FileExists(t, filepath.Join(dir, "src", "models", "interfaces", "order", "detail", "index.ts"))
	assert.Equal(t,
		"export * from './list';\nexport * from './detail';\n",
		readFile(t, filepath.Join(dir, "src", "pages", "order", "index.ts")))
}

func TestApplyInvalidManifest(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "pages.yaml")
	require.NoError(t, os.WriteFile(manifestPath, []byte("schema_version: \"3.0.0\"\npages:\n  - path: a\n    name: A\n"), 0644))

	out, err := run(t, dir, "", "apply", manifestPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 issue(s)")
	assert.Contains(t, out, "/schema_version")
	assert.NoDirExists(t, filepath.Join(dir, "src"))
}

func TestConfigSetGetList(t *testing.T) {
	dir := t.TempDir()
	home := t.TempDir()

	exec := func(args ...string) string {
		cmd := NewRootCmd(BuildInfo{})
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(append([]string{"--dir", dir}, args...))
		require.NoError(t, cmd.Execute())
		return out.String()
	}
	t.Setenv("PAGEGEN_HOME", home)

	assert.Equal(t, "Set src_dir = web\n", exec("config", "set", "src_dir", "web"))
	assert.Equal(t, "web\n", exec("config", "get", "src_dir"))

	list := exec("config", "list")
	assert.Contains(t, list, "component_alias")
	assert.Contains(t, list, "web")
	assert.FileExists(t, filepath.Join(home, "config.yaml"))
}

func TestConfigGetUnknownKey(t *testing.T) {
	_, err := run(t, t.TempDir(), "", "config", "get", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")
}

func TestVersion(t *testing.T) {
	out, err := run(t, t.TempDir(), "", "version")
	require.NoError(t, err)
	assert.Equal(t, "pagegen version v1.2.3 (commit: abc123, built: 2026-01-01)\n", out)

	out, err = run(t, t.TempDir(), "", "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "v1.2.3\n", out)
}

func TestDisplayVersion(t *testing.T) {
	assert.Equal(t, "v1.2.3", displayVersion("1.2.3"))
	assert.Equal(t, "v0.4.0-rc.1", displayVersion("v0.4.0-rc.1"))
	assert.Equal(t, "dev", displayVersion("dev"))
}
