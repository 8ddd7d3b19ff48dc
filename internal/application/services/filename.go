package services

import (
	"path"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// renameWithPreservedExt combines the caller's basename with the original
// file's extension. A rename can never change the format: "report" applied
// to "report.pdf" stays "report.pdf", and so does "report.txt".
func renameWithPreservedExt(original, input string) string {
	ext := path.Ext(original)
	base := sanitizeBaseName(input)
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	if base == "" {
		return original
	}
	return base + ext
}

// sanitizeBaseName normalizes rename input before it goes over the wire:
// NFC form, no path segments, no control characters.
func sanitizeBaseName(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "\\", "/")
	s = path.Base(s)
	if s == "." || s == ".." {
		return ""
	}

	s = norm.NFC.String(s)
	s = strings.Map(func(r rune) rune {
		if r == '\x00' || r < 0x20 {
			return -1
		}
		return r
	}, s)

	return strings.TrimSpace(s)
}
