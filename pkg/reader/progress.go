package reader

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/finch-reader/finch/pkg/fsutil"
)

// Progress is a single little-endian u32 page index. The write is
// atomic so a power loss mid-save never corrupts the resume point.

// loadProgress reads a saved page index. Any problem, including a
// missing or malformed file, resolves to page zero.
func loadProgress(path string) int {
	data, err := os.ReadFile(path)
	if err != nil || len(data) != 4 {
		return 0
	}
	return int(binary.LittleEndian.Uint32(data))
}

func (s *Session) saveProgressLocked() error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(s.current))
	if err := fsutil.WriteAtomic(s.doc.ProgressPath(), buf[:], 0); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
