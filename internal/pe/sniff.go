package pe

import (
	"github.com/h2non/filetype"
	"github.com/pkg/errors"
)

// DetectKind names the file type of path from its magic numbers, or
// "unknown" when nothing matches.
func DetectKind(path string) (string, error) {
	kind, err := filetype.MatchFile(path)
	if err != nil {
		return "", errors.WithStack(err)
	}
	if kind == filetype.Unknown {
		return "unknown", nil
	}
	return kind.Extension, nil
}
