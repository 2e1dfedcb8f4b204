package pe

import (
	dpe "debug/pe"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testPEOffset   = 0x80
	testFlagOffset = testPEOffset + FlagByteDistance
)

// buildImage returns a minimal 32-bit PE header: MZ stub, e_lfanew = 0x80,
// PE signature and a COFF header whose Characteristics low byte is flagByte.
func buildImage(flagByte byte) []byte {
	img := make([]byte, 0x100)
	copy(img, "MZ")
	binary.LittleEndian.PutUint32(img[PEOffsetPosition:], testPEOffset)
	copy(img[testPEOffset:], "PE\x00\x00")
	binary.LittleEndian.PutUint16(img[testPEOffset+4:], dpe.IMAGE_FILE_MACHINE_I386)
	img[testFlagOffset] = flagByte
	return img
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func readFileByte(t *testing.T, path string, offset int) byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), offset)
	return data[offset]
}
