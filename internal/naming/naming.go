// Package naming converts free-form page names and paths into the
// identifier and directory forms used by generated files.
package naming

import (
	"regexp"
	"strings"
)

var (
	wordSeparator = regexp.MustCompile(`[-_\s]+`)
	pascalPattern = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)
	camelPattern  = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)
)

// ToCamelCase lowercases the first word entirely and capitalizes every
// following word. Words are separated by runs of '-', '_' or whitespace.
func ToCamelCase(s string) string {
	words := wordSeparator.Split(s, -1)
	var b strings.Builder
	for i, w := range words {
		if i == 0 {
			b.WriteString(strings.ToLower(w))
			continue
		}
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// ToPascalCase capitalizes every word. Input that already looks like a
// PascalCase identifier is returned unchanged.
func ToPascalCase(s string) string {
	if pascalPattern.MatchString(s) {
		return s
	}
	words := wordSeparator.Split(s, -1)
	var b strings.Builder
	for _, w := range words {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// NormalizePath camel-cases each slash-separated segment and drops empty
// ones, so " order-list//Detail " becomes "orderList/detail". Segments that
// are already camelCase are kept as they are.
func NormalizePath(p string) string {
	var segments []string
	for _, seg := range strings.Split(p, "/") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		if !camelPattern.MatchString(seg) {
			seg = ToCamelCase(seg)
		}
		segments = append(segments, seg)
	}
	return strings.Join(segments, "/")
}

// SplitCombined splits a combined "path/name" argument at its last slash.
// Without a slash the whole argument is the name.
func SplitCombined(arg string) (pagePath, pageName string) {
	arg = strings.Trim(strings.TrimSpace(arg), "/")
	i := strings.LastIndex(arg, "/")
	if i < 0 {
		return "", arg
	}
	return arg[:i], arg[i+1:]
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(w string) string {
	if w == "" {
		return ""
	}
	r := []rune(w)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}
