// Package templates renders the source files pagegen writes: the page
// component, its view-model provider, the optional search-condition form,
// the page wrapper and the barrel index files. Every generator is a pure
// function from Options to file text; the text itself lives in embedded
// .tmpl files that use [[ ]] delimiters so JSX braces pass through.
package templates
