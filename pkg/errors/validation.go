package errors

import (
	"slices"
	"strings"
	"unicode"
)

// maxPathLen bounds -o arguments and --config paths.
const maxPathLen = 500

// ValidateVertexCount checks a declared vertex count against a limit.
// A limit of 0 or less disables the upper bound.
func ValidateVertexCount(n, limit int) error {
	switch {
	case n < 0:
		return New(ErrCodeInvalidInput, "vertex count must be non-negative, got %d", n)
	case limit > 0 && n > limit:
		return New(ErrCodeTooLarge, "graph has %d vertices (max %d)", n, limit)
	}
	return nil
}

// ValidateFormat checks that format is one of allowed, case-insensitively.
// Callers pass their allowed formats in lower case.
func ValidateFormat(format string, allowed ...string) error {
	if slices.Contains(allowed, strings.ToLower(format)) {
		return nil
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(allowed, ", "))
}

// ValidatePath rejects empty or overlong file paths and paths containing
// control characters.
func ValidatePath(path string) error {
	switch {
	case path == "":
		return New(ErrCodeInvalidPath, "path cannot be empty")
	case len(path) > maxPathLen:
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLen)
	case strings.IndexFunc(path, unicode.IsControl) >= 0:
		return New(ErrCodeInvalidPath, "path contains invalid characters")
	}
	return nil
}
