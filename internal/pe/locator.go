package pe

import (
	"io"
	"path/filepath"

	"github.com/pkg/errors"
)

// Header layout constants.
const (
	MZSignature = 0x5A4D // "MZ"
	PESignature = 0x4550 // low word of "PE\0\0"

	// PEOffsetPosition is where the DOS stub stores the PE header offset (e_lfanew).
	PEOffsetPosition = 0x3C

	// FlagByteDistance is the distance from the PE signature to the low byte of
	// the COFF Characteristics field.
	FlagByteDistance = 22
)

// File is a seekable handle on an executable. *os.File satisfies it.
type File interface {
	io.ReadSeeker
	Name() string
}

// WritableFile is a File that can also be written in place.
type WritableFile interface {
	File
	io.Writer
}

// LocateFlagOffset validates the MZ and PE signatures of f and returns the
// absolute offset of the byte holding the Large Address Aware bit.
func LocateFlagOffset(f File) (uint32, error) {
	magic, err := readWord(f, 0)
	if err != nil {
		return 0, err
	}
	if magic != MZSignature {
		return 0, &NotExecutableError{Name: displayName(f), Reason: ReasonNotExecutable}
	}

	peOffset, err := readWord(f, PEOffsetPosition)
	if err != nil {
		return 0, err
	}

	signature, err := readWord(f, int64(peOffset))
	if err != nil {
		return 0, err
	}
	if signature != PESignature {
		return 0, &NotExecutableError{Name: displayName(f), Reason: ReasonNotPE}
	}

	return uint32(peOffset) + FlagByteDistance, nil
}

func readWord(f File, offset int64) (uint16, error) {
	buf, err := readChunk(f, offset, 2)
	if err != nil {
		return 0, err
	}
	return BytesToWord(buf)
}

func readByte(f File, offset int64) (uint8, error) {
	buf, err := readChunk(f, offset, 1)
	if err != nil {
		return 0, err
	}
	return BytesToByte(buf)
}

// readChunk seeks to offset and reads up to size bytes. A short read at end of
// file is not an error here: the truncated buffer is returned so the codec
// reports it as ErrChunkSize.
func readChunk(f File, offset int64, size int) ([]byte, error) {
	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return nil, errors.WithStack(err)
	}

	buf := make([]byte, size)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, errors.WithStack(err)
	}
	return buf[:n], nil
}

func displayName(f File) string {
	return filepath.Base(f.Name())
}
