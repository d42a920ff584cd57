package document

import (
	"errors"
	"fmt"
	"io"
)

// readChunkSize is the fixed read granularity. Sized for devices where
// the whole document must never be resident at once.
const readChunkSize = 4 * 1024

// ForEachLine reads the source in fixed-size chunks, splits on '\n', and
// calls fn once per logical line. CR bytes are dropped and never treated
// as line terminators on their own. A final unterminated line is still
// delivered. A read failure aborts with an error recording the byte
// offset reached; fn returning an error stops the scan the same way.
func ForEachLine(src Source, fn func(line string) error) error {
	size := src.Size()
	buf := make([]byte, readChunkSize)
	var line []byte

	for offset := int64(0); offset < size; {
		chunk := buf
		if remaining := size - offset; remaining < int64(len(chunk)) {
			chunk = chunk[:remaining]
		}

		// ReadAt may return io.EOF alongside a full read at the end of
		// the source.
		if n, err := src.ReadAt(chunk, offset); err != nil && !(errors.Is(err, io.EOF) && n == len(chunk)) {
			return fmt.Errorf("read document at offset %d: %w", offset, err)
		}
		offset += int64(len(chunk))

		for _, b := range chunk {
			switch b {
			case '\n':
				if err := fn(string(line)); err != nil {
					return err
				}
				line = line[:0]
			case '\r':
				// Stripped; CRLF terminates on the LF.
			default:
				line = append(line, b)
			}
		}
	}

	if len(line) > 0 {
		if err := fn(string(line)); err != nil {
			return err
		}
	}
	return nil
}
