package pe

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// BytesToWord decodes a 2-byte little-endian buffer.
func BytesToWord(buf []byte) (uint16, error) {
	if len(buf) != 2 {
		return 0, errors.Wrapf(ErrChunkSize, "word expected, got %d bytes", len(buf))
	}
	return binary.LittleEndian.Uint16(buf), nil
}

// WordToBytes encodes v as 2 little-endian bytes. v must fit in 16 bits.
func WordToBytes(v int) ([]byte, error) {
	if v < 0 || v > 0xFFFF {
		return nil, errors.Wrapf(ErrRange, "%d does not fit in a word", v)
	}
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, uint16(v))
	return buf, nil
}

// BytesToByte decodes a 1-byte buffer.
func BytesToByte(buf []byte) (uint8, error) {
	if len(buf) != 1 {
		return 0, errors.Wrapf(ErrChunkSize, "byte expected, got %d bytes", len(buf))
	}
	return buf[0], nil
}

// ByteToBytes encodes v as a single byte. v must fit in 8 bits.
func ByteToBytes(v int) ([]byte, error) {
	if v < 0 || v > 0xFF {
		return nil, errors.Wrapf(ErrRange, "%d does not fit in a byte", v)
	}
	return []byte{uint8(v)}, nil
}
