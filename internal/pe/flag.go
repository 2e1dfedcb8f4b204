package pe

import (
	"debug/pe"
	"io"

	"github.com/pkg/errors"
)

// LargeAddressAware is the mask of the Large Address Aware bit within the flag byte.
const LargeAddressAware = uint8(pe.IMAGE_FILE_LARGE_ADDRESS_AWARE)

// Status is a snapshot of the flag byte of an executable.
type Status struct {
	Offset            uint32
	FlagByte          uint8
	LargeAddressAware bool
}

// ReadFlagByte returns the raw byte that holds the Large Address Aware bit.
func ReadFlagByte(f File) (uint8, error) {
	status, err := ReadStatus(f)
	if err != nil {
		return 0, err
	}
	return status.FlagByte, nil
}

// IsLargeAddressAware reports whether the Large Address Aware bit is set.
func IsLargeAddressAware(f File) (bool, error) {
	b, err := ReadFlagByte(f)
	if err != nil {
		return false, err
	}
	return b&LargeAddressAware == LargeAddressAware, nil
}

// ReadStatus locates the flag byte and reads it.
func ReadStatus(f File) (Status, error) {
	offset, err := LocateFlagOffset(f)
	if err != nil {
		return Status{}, err
	}

	b, err := readByte(f, int64(offset))
	if err != nil {
		return Status{}, err
	}

	return Status{
		Offset:            offset,
		FlagByte:          b,
		LargeAddressAware: b&LargeAddressAware == LargeAddressAware,
	}, nil
}

// ToggleLargeAddressAware flips the Large Address Aware bit in place and
// returns the byte that was written. The header is located again on every
// call. Calling it twice restores the original byte.
func ToggleLargeAddressAware(f WritableFile) (uint8, error) {
	offset, err := LocateFlagOffset(f)
	if err != nil {
		return 0, err
	}

	original, err := readByte(f, int64(offset))
	if err != nil {
		return 0, err
	}

	buf, err := ByteToBytes(int(original ^ LargeAddressAware))
	if err != nil {
		return 0, err
	}

	if _, err := f.Seek(int64(offset), io.SeekStart); err != nil {
		return 0, errors.WithStack(err)
	}
	if _, err := f.Write(buf); err != nil {
		return 0, errors.WithStack(err)
	}

	return buf[0], nil
}
