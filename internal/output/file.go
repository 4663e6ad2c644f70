package output

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/tonimelisma/dealcloud-activity/pkg/dealcloud"
)

// PermLogFile is the mode of files created by FileSink.
const PermLogFile = 0o600

// FileSink appends rows as JSON lines to a file. Scheduled runs may overlap,
// so every write holds an exclusive lock on a sibling ".lock" file.
type FileSink struct {
	path string
}

// NewFileSink returns a sink appending to path. The parent directory is
// created if needed.
func NewFileSink(path string) (*FileSink, error) {
	if path == "" {
		return nil, fmt.Errorf("output file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &FileSink{path: path}, nil
}

func (s *FileSink) Write(rows []dealcloud.ActivityRow) (err error) {
	lock := flock.New(s.path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("could not acquire file lock: %w", err)
	}
	defer lock.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, PermLogFile)
	if err != nil {
		return fmt.Errorf("opening output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := writeJSONLines(w, rows); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}

// Close is a no-op; the file is opened and closed per write.
func (s *FileSink) Close() error {
	return nil
}
