package file

import (
	"fmt"
	"strings"
)

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FormatSize renders a byte count for the file list, 1024-based with one
// decimal place ("1.5 MB").
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return "0 B"
	}
	size := float64(bytes)
	i := 0
	for size >= 1024 && i < len(sizeUnits)-1 {
		size /= 1024
		i++
	}
	s := fmt.Sprintf("%.1f", size)
	s = strings.TrimSuffix(s, ".0")
	return s + " " + sizeUnits[i]
}

// TypeLabel is the upper-cased MIME subtype shown next to a file, with a
// generic fallback when the subtype is missing.
func TypeLabel(mimeType string) string {
	if _, sub, ok := strings.Cut(mimeType, "/"); ok && sub != "" {
		return strings.ToUpper(sub)
	}
	return "FILE"
}
