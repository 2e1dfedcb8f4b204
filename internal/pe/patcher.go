package pe

import (
	"os"

	"github.com/pkg/errors"
)

// Patcher is a read-write handle used to modify the flag byte in place.
type Patcher struct {
	filepath string
	file     *os.File
}

// NewPatcher opens the executable for writing.
func NewPatcher(filepath string) (*Patcher, error) {
	file, err := os.OpenFile(filepath, os.O_RDWR, 0)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &Patcher{
		filepath: filepath,
		file:     file,
	}, nil
}

// Close closes the patcher and releases resources.
func (p *Patcher) Close() error {
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}

// Status locates and reads the flag byte.
func (p *Patcher) Status() (Status, error) {
	return ReadStatus(p.file)
}

// Toggle flips the Large Address Aware bit and returns the new flag byte.
func (p *Patcher) Toggle() (uint8, error) {
	return ToggleLargeAddressAware(p.file)
}

// SetLargeAddressAware brings the bit to the requested state. It reports
// whether a write was needed.
func (p *Patcher) SetLargeAddressAware(enable bool) (bool, error) {
	status, err := p.Status()
	if err != nil {
		return false, err
	}
	if status.LargeAddressAware == enable {
		return false, nil
	}

	if _, err := p.Toggle(); err != nil {
		return false, err
	}
	return true, nil
}

// FilePath returns the file path.
func (p *Patcher) FilePath() string {
	return p.filepath
}
