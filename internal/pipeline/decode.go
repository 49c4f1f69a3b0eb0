package pipeline

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// ErrObjectTooLarge is returned when an upload exceeds Config.MaxObjectSize.
var ErrObjectTooLarge = errors.New("object too large")

// InvalidUTF8Error reports the byte offset of the first invalid UTF-8 sequence.
type InvalidUTF8Error struct {
	Offset int
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("invalid UTF-8 at byte offset %d", e.Offset)
}

// decodeText reads r to the end and interprets it as UTF-8 text.
func decodeText(r io.Reader, limit int64) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return "", fmt.Errorf("failed to read object body: %w", err)
	}
	if int64(len(data)) > limit {
		return "", fmt.Errorf("%w: more than %d bytes", ErrObjectTooLarge, limit)
	}
	if offset := invalidUTF8Offset(data); offset >= 0 {
		return "", &InvalidUTF8Error{Offset: offset}
	}
	return string(data), nil
}

// invalidUTF8Offset returns the offset of the first invalid sequence, or -1.
func invalidUTF8Offset(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
