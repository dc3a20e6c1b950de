package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// maxIDLength bounds action identifiers. XMCDA ids are attribute values, so
// anything longer is almost certainly a pasted document fragment.
const maxIDLength = 256

// ValidateActionID checks that id can be used as an action identifier.
//
// The rules are:
//   - No empty ids
//   - No control characters (ids are written into XML attributes)
//   - No leading or trailing whitespace
//   - Maximum length of 256 characters
func ValidateActionID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "action id cannot be empty")
	}

	if len(id) > maxIDLength {
		return New(ErrCodeInvalidInput, "action id too long (max %d characters)", maxIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "action id contains invalid control characters")
		}
	}

	if strings.TrimSpace(id) != id {
		return New(ErrCodeInvalidInput, "action id %q has leading or trailing whitespace", id)
	}

	return nil
}

// ValidateDocumentPath validates a path given on the command line for a
// document to read or write. It only rejects values that can never name a
// document file.
func ValidateDocumentPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "document path cannot be empty")
	}

	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidInput, "document path contains a null byte")
	}

	if base := filepath.Base(path); base == "." || base == string(filepath.Separator) {
		return New(ErrCodeInvalidInput, "document path %q names a directory", path)
	}

	return nil
}
