// Package pe reads and toggles the Large Address Aware flag of 32-bit PE executables.
package pe

import (
	"os"

	"github.com/pkg/errors"
)

// Reader is a read-only handle on an executable.
type Reader struct {
	file     *os.File
	filepath string
	filesize int64
}

// Open opens an executable for inspection.
func Open(filepath string) (*Reader, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	stat, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, errors.WithStack(err)
	}

	return &Reader{
		file:     f,
		filepath: filepath,
		filesize: stat.Size(),
	}, nil
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}

// Status locates and reads the flag byte.
func (r *Reader) Status() (Status, error) {
	return ReadStatus(r.file)
}

// FilePath returns the file path.
func (r *Reader) FilePath() string {
	return r.filepath
}

// FileSize returns the file size in bytes.
func (r *Reader) FileSize() int64 {
	return r.filesize
}
