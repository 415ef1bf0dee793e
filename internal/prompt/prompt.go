// Package prompt resolves an ordered list of questions, taking each answer
// from values already supplied on the command line or, failing that, from
// one line of standard input. Questions are asked strictly one at a time.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Kind distinguishes free-text questions from yes/no ones.
type Kind int

const (
	// Text accepts any line; surrounding whitespace is trimmed.
	Text Kind = iota
	// Confirm is a y/N question; only "y" (any case) means yes.
	Confirm
)

// Question is one entry of a prompt sequence.
type Question struct {
	Key     string
	Kind    Kind
	Label   func(Answers) string // rendered with the answers collected so far
	Default string
}

// Answers maps question keys to their resolved values.
type Answers map[string]string

// Bool reports whether the answer stored under key is a yes.
func (a Answers) Bool(key string) bool { return IsYes(a[key]) }

// Static returns a Label that ignores earlier answers.
func Static(s string) func(Answers) string {
	return func(Answers) string { return s }
}

// IsYes reports whether s is an affirmative answer to a Confirm question.
func IsYes(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "y")
}

// Asker reads answers line by line from r and writes prompts to w.
type Asker struct {
	reader         *bufio.Reader
	w              io.Writer
	nonInteractive bool
	eof            bool
}

// NewAsker creates an Asker. When nonInteractive is set no prompt is ever
// written and unanswered questions take their defaults.
func NewAsker(r io.Reader, w io.Writer, nonInteractive bool) *Asker {
	return &Asker{
		reader:         bufio.NewReader(r),
		w:              w,
		nonInteractive: nonInteractive,
	}
}

// Ask writes label and returns the next input line without its line ending.
// Once input is exhausted it returns io.EOF.
func (a *Asker) Ask(label string) (string, error) {
	if a.eof {
		return "", io.EOF
	}
	fmt.Fprint(a.w, label)

	line, err := a.reader.ReadString('\n')
	if errors.Is(err, io.EOF) {
		a.eof = true
		// A final line without a newline is still an answer.
		if line == "" {
			fmt.Fprintln(a.w)
			return "", io.EOF
		}
	} else if err != nil {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Resolve walks questions in order. A key present in preset is used as is;
// every other question is asked. Empty answers, end of input and
// non-interactive mode all fall back to the question's default.
func (a *Asker) Resolve(questions []Question, preset Answers) (Answers, error) {
	answers := make(Answers, len(questions))
	for _, q := range questions {
		if v, ok := preset[q.Key]; ok {
			answers[q.Key] = v
			continue
		}
		if a.nonInteractive || a.eof {
			answers[q.Key] = q.Default
			continue
		}

		label := q.Key
		if q.Label != nil {
			label = q.Label(answers)
		}
		line, err := a.Ask(label)
		if err != nil && !errors.Is(err, io.EOF) {
			return answers, fmt.Errorf("question %q: %w", q.Key, err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			line = q.Default
		}
		if q.Kind == Confirm {
			line = confirmValue(line)
		}
		answers[q.Key] = line
	}
	return answers, nil
}

func confirmValue(s string) string {
	if IsYes(s) {
		return "y"
	}
	return "n"
}
