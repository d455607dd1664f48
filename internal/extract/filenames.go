// Package extract turns raw documents (PDF text, filenames, spreadsheet
// rows) into candidate records awaiting reconciliation. Every extractor is
// a pure function over its inputs: the same inputs always produce the same
// candidates in the same order.
package extract

import (
	"path/filepath"
	"regexp"
)

// FileCode is a candidate pulled from a document filename.
type FileCode struct {
	Code string
	Path string
}

var filenamePattern = regexp.MustCompile(`^(\d+)\s*-`)

// Filenames emits one candidate per filename that starts with a client
// code followed by a dash, tolerating space before the dash. Names that do
// not match are skipped. Path joins dir with the filename.
func Filenames(dir string, names []string) []FileCode {
	out := make([]FileCode, 0, len(names))
	for _, name := range names {
		match := filenamePattern.FindStringSubmatch(name)
		if match == nil {
			continue
		}
		out = append(out, FileCode{
			Code: match[1],
			Path: filepath.Join(dir, name),
		})
	}
	return out
}
