package templates

import (
	"bytes"
	"embed"
	"path"
	"text/template"
)

// DefaultComponentAlias is the import alias pages use when Options leaves
// ComponentAlias empty.
const DefaultComponentAlias = "@components/pages"

//go:embed files/*.tmpl
var templateFS embed.FS

var parsed = template.Must(
	template.New("files").Delims("[[", "]]").ParseFS(templateFS, "files/*.tmpl"),
)

// Options holds the values interpolated into every generated file.
type Options struct {
	PagePath       string // e.g., "test/path"
	PageName       string // e.g., "TestPage"
	ComponentAlias string // e.g., "@components/pages"
}

type renderData struct {
	Options
	HasSearchCondition bool
	ComponentImport    string
}

// Condition renders <Name>Condition.tsx, the search-condition form.
func Condition(opts Options) string {
	return render("condition.tsx.tmpl", renderData{Options: opts})
}

// Component renders <Name>Component.tsx. With hasSearchCondition the
// component imports and mounts the condition form.
func Component(opts Options, hasSearchCondition bool) string {
	return render("component.tsx.tmpl", renderData{Options: opts, HasSearchCondition: hasSearchCondition})
}

// ViewModel renders <Name>ViewModel.tsx, a context plus its provider.
func ViewModel(opts Options) string {
	return render("viewmodel.tsx.tmpl", renderData{Options: opts})
}

// Page renders <Name>Page.tsx, which wraps the component in its provider.
func Page(opts Options) string {
	return render("page.tsx.tmpl", renderData{Options: opts, ComponentImport: ComponentImport(opts)})
}

// ComponentIndex renders the barrel for the component directory.
func ComponentIndex(opts Options) string {
	return render("component_index.ts.tmpl", renderData{Options: opts})
}

// PageIndex renders the barrel for the page directory.
func PageIndex(opts Options) string {
	return render("page_index.ts.tmpl", renderData{Options: opts})
}

// ParentIndex renders the export line an ancestor barrel carries for one
// child directory. Only the last element of childPath is used.
func ParentIndex(childPath string) string {
	return render("parent_index.ts.tmpl", path.Base(childPath))
}

// ComponentImport returns the module specifier a page imports its
// component from.
func ComponentImport(opts Options) string {
	alias := opts.ComponentAlias
	if alias == "" {
		alias = DefaultComponentAlias
	}
	if opts.PagePath == "" {
		return alias
	}
	return alias + "/" + opts.PagePath
}

// render panics on failure: the templates are embedded and their data is
// plain strings and booleans, so an error here is a broken template.
func render(name string, data any) string {
	var buf bytes.Buffer
	if err := parsed.ExecuteTemplate(&buf, name, data); err != nil {
		panic("templates: executing " + name + ": " + err.Error())
	}
	return buf.String()
}
