package hivemarkup

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
)

var (
	// ErrUnknownEncoding reports an encoding tag that names no known encoding.
	ErrUnknownEncoding = errors.New("unknown encoding")
	// ErrInvalidUTF8 reports UTF-8 tagged input that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// CanonicalEncoding returns the WHATWG name of the encoding enc refers to,
// so that "UTF8", "utf-8" and "unicode-1-1-utf-8" all become "utf-8".
func CanonicalEncoding(enc Encoding) (Encoding, error) {
	e, err := htmlindex.Get(string(enc))
	if err != nil {
		return "", fmt.Errorf("%w %q", ErrUnknownEncoding, string(enc))
	}
	name, err := htmlindex.Name(e)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrUnknownEncoding, string(enc), err)
	}
	return Encoding(name), nil
}

// ValidateInput is an optional pre-flight check for callers that want to
// reject posts before rendering them. Render itself accepts any bytes.
// It fails when enc is unknown, when UTF-8 tagged input is not valid UTF-8,
// or when src contains NUL or a high share of control bytes.
func ValidateInput(src []byte, enc Encoding) error {
	canonical, err := CanonicalEncoding(enc)
	if err != nil {
		return err
	}
	if canonical == UTF8 && !utf8.Valid(src) {
		return ErrInvalidUTF8
	}
	control := 0
	for _, b := range src {
		if b == 0x00 {
			return ErrBinaryInput
		}
		if isStrippedControl(b) {
			control++
		}
	}
	if len(src) >= minBinarySample && control*100 >= len(src)*maxControlPct {
		return ErrBinaryInput
	}
	return nil
}

// isStrippedControl reports whether preprocessing removes b.
func isStrippedControl(b byte) bool {
	return (b < 0x20 && b != '\n' && b != '\t') || b == 0x7f
}
