// Package importer turns uploaded study files into question/answer cards.
package importer

import (
	"path/filepath"
	"strings"
)

// Card is a question/answer pair read from a file, before it is stored.
type Card struct {
	Question   string
	Answer     string
	Difficulty string
}

// File kinds accepted for upload
const (
	KindText        = "txt"
	KindMarkdown    = "md"
	KindSpreadsheet = "xlsx"
)

// Kind returns the file kind for name, or "" if the extension is not supported.
func Kind(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt":
		return KindText
	case ".md", ".markdown":
		return KindMarkdown
	case ".xlsx":
		return KindSpreadsheet
	default:
		return ""
	}
}
