package sortbench

import (
	"cmp"
	"unicode"
	"unicode/utf8"
)

// textSuffix is appended to algorithm names when sorting the text domain.
const textSuffix = " (Textos)"

// Domain pairs an element type with its ordering rule and the suffix used to
// name algorithm runs over it.
type Domain[E any] struct {
	// Compare is the ordering rule of the domain.
	Compare Compare[E]
	// Suffix is appended to every algorithm name, "" for the numeric domain.
	Suffix string
}

// IntDomain returns the integer domain ordered ascending by natural order.
func IntDomain() Domain[int] {
	return Domain[int]{Compare: cmp.Compare[int]}
}

// TextDomain returns the text domain ordered by case-insensitive lexicographic order.
func TextDomain() Domain[string] {
	return Domain[string]{Compare: CompareFold, Suffix: textSuffix}
}

// invalidBase places undecodable bytes after every valid rune, ordered by byte value
const invalidBase = unicode.MaxRune + 1

// CompareFold compares a and b rune by rune ignoring case.
// Runes that differ are compared after mapping both to upper case and then to lower case,
// so "Apple" and "apple" are equal while "apple" orders before "Banana".
// When one string is a prefix of the other the shorter one orders first.
// Bytes that are not valid UTF-8 order after all runes by their byte value, so
// distinct invalid sequences never compare equal.
func CompareFold(a, b string) int {
	for a != "" && b != "" {
		ra, na := decodeRune(a)
		rb, nb := decodeRune(b)
		a, b = a[na:], b[nb:]
		if ra == rb {
			continue
		}
		ra, rb = unicode.ToUpper(ra), unicode.ToUpper(rb)
		if ra == rb {
			continue
		}
		ra, rb = unicode.ToLower(ra), unicode.ToLower(rb)
		if ra != rb {
			return cmp.Compare(ra, rb)
		}
	}
	return cmp.Compare(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
}

// decodeRune is utf8.DecodeRuneInString with invalid bytes mapped above unicode.MaxRune
func decodeRune(s string) (rune, int) {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && n == 1 {
		r = invalidBase + rune(s[0])
	}
	return r, n
}
