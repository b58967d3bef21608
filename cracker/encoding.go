package cracker

import (
	"errors"
	"strings"
)

// Charset is the full search alphabet: a-z, A-Z, 0-9. Order is fixed; the
// encoded index of a password depends on it.
const Charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var (
	ErrInvalidCharacter = errors.New("password contains a character outside the charset")
	ErrLengthMismatch   = errors.New("password length does not match the encoding length")
	ErrIndexOutOfRange  = errors.New("index is outside the valid password range")
)

// Encoding maps fixed-length passwords over a charset to indices in
// [0, len(charset)^length) and back. The mapping is base-N positional,
// most significant character first.
type Encoding struct {
	charset string
	length  int
}

// NewEncoding returns an encoding for passwords of the given length over
// the full charset.
func NewEncoding(length int) *Encoding {
	return &Encoding{charset: Charset, length: length}
}

// Length returns the password length L.
func (e *Encoding) Length() int {
	return e.length
}

// SearchSpace returns N = charset^length, the number of valid passwords.
func (e *Encoding) SearchSpace() uint64 {
	n := uint64(1)
	for i := 0; i < e.length; i++ {
		n *= uint64(len(e.charset))
	}
	return n
}

// QubitsNeeded returns the smallest Q with 2^Q >= SearchSpace(). Indices in
// [N, 2^Q) are padding: representable on the qubits but not valid passwords.
func (e *Encoding) QubitsNeeded() int {
	n := e.SearchSpace()
	q := 0
	for uint64(1)<<q < n {
		q++
	}
	if q == 0 {
		q = 1
	}
	return q
}

// Encode converts a password to its index in the search space.
func (e *Encoding) Encode(password string) (uint64, error) {
	if len(password) != e.length {
		return 0, ErrLengthMismatch
	}
	index := uint64(0)
	for _, c := range password {
		pos := strings.IndexRune(e.charset, c)
		if pos < 0 {
			return 0, ErrInvalidCharacter
		}
		index = index*uint64(len(e.charset)) + uint64(pos)
	}
	return index, nil
}

// Decode converts an index back to its password. Padding indices are an
// error, never silently mapped.
func (e *Encoding) Decode(index uint64) (string, error) {
	if index >= e.SearchSpace() {
		return "", ErrIndexOutOfRange
	}
	buf := make([]byte, e.length)
	base := uint64(len(e.charset))
	for i := e.length - 1; i >= 0; i-- {
		buf[i] = e.charset[index%base]
		index /= base
	}
	return string(buf), nil
}
