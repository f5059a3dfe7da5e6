// Package input turns raw user data into element sequences for the benchmark:
// manual text is split into tokens, files are read one token per line, and numeric
// tokens are validated before any algorithm runs.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/lanrat/sortbench"
)

// Kind is the element domain selected by the user.
type Kind int

const (
	// Numbers selects the integer domain.
	Numbers Kind = iota
	// Texts selects the case-insensitive text domain.
	Texts
	// Images is recognised only to be rejected; image sorting is not supported.
	Images
)

func (k Kind) String() string {
	switch k {
	case Numbers:
		return "numbers"
	case Texts:
		return "texts"
	case Images:
		return "images"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind accepts "numbers", "texts" or "images" in English or Portuguese.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "numbers", "number", "ints", "números", "numeros":
		return Numbers, nil
	case "texts", "text", "strings", "textos":
		return Texts, nil
	case "images", "image", "imagens":
		return Images, nil
	}
	return 0, &sortbench.ConfigError{Field: "Kind", Value: s, Reason: "expected numbers, texts or images"}
}

// Supported returns an UnsupportedDomainError for kinds the engine cannot sort.
func (k Kind) Supported() error {
	if k == Numbers || k == Texts {
		return nil
	}
	return sortbench.NewUnsupportedDomainError(k.String())
}

// Data is a parsed input ready to benchmark. Exactly one of Ints or Strings is set,
// matching Kind.
type Data struct {
	Kind    Kind
	Ints    []int
	Strings []string
}

// Len returns the number of elements.
func (d Data) Len() int {
	if d.Kind == Numbers {
		return len(d.Ints)
	}
	return len(d.Strings)
}

// Tokenize splits s on runs of commas and white space, dropping empty tokens.
func Tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// ParseInts converts every token to an integer. The first invalid token aborts the
// whole conversion with an InputError; no partial slice is returned.
func ParseInts(tokens []string) ([]int, error) {
	ints := make([]int, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, sortbench.NewInputError(err, tok, 0)
		}
		ints[i] = v
	}
	return ints, nil
}

// Manual parses text typed by the user for kind. Unsupported kinds are rejected
// before the text is looked at, and blank text yields sortbench.ErrEmptyInput.
func Manual(kind Kind, text string) (Data, error) {
	if err := kind.Supported(); err != nil {
		return Data{}, err
	}
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return Data{}, sortbench.ErrEmptyInput
	}
	if kind == Texts {
		return Data{Kind: Texts, Strings: tokens}, nil
	}
	ints, err := ParseInts(tokens)
	if err != nil {
		return Data{}, err
	}
	return Data{Kind: Numbers, Ints: ints}, nil
}

// maxLine caps the length of a single input line
const maxLine = 1024 * 1024

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	return scanner
}

// ReadLines returns the trimmed non-blank lines of r.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := newScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

// ReadInts reads one integer per line, skipping blank lines. A line that is not an
// integer fails the whole read with an InputError naming the line.
func ReadInts(r io.Reader) ([]int, error) {
	var ints []int
	scanner := newScanner(r)
	for line := 1; scanner.Scan(); line++ {
		tok := strings.TrimSpace(scanner.Text())
		if tok == "" {
			continue
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, sortbench.NewInputError(err, tok, line)
		}
		ints = append(ints, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ints, nil
}

// Read parses r as a file of kind, one element per line.
// A file without any element yields sortbench.ErrEmptyInput.
func Read(kind Kind, r io.Reader) (Data, error) {
	if err := kind.Supported(); err != nil {
		return Data{}, err
	}
	d := Data{Kind: kind}
	var err error
	if kind == Numbers {
		d.Ints, err = ReadInts(r)
	} else {
		d.Strings, err = ReadLines(r)
	}
	if err != nil {
		return Data{}, err
	}
	if d.Len() == 0 {
		return Data{}, sortbench.ErrEmptyInput
	}
	return d, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(kind Kind, path string) (Data, error) {
	if err := kind.Supported(); err != nil {
		return Data{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Data{}, sortbench.NewIOError(err, "open", path)
	}
	defer f.Close()
	d, err := Read(kind, f)
	if err != nil {
		return Data{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
