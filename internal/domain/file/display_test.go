package file

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{-5, "0 B"},
		{1, "1 B"},
		{512, "512 B"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1 << 20, "1 MB"},
		{3<<20 + 512<<10, "3.5 MB"},
		{1 << 30, "1 GB"},
		{1 << 40, "1024 GB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSize(tt.bytes), "bytes=%d", tt.bytes)
	}
}

func TestTypeLabel(t *testing.T) {
	assert.Equal(t, "PDF", TypeLabel("application/pdf"))
	assert.Equal(t, "PNG", TypeLabel("image/png"))
	assert.Equal(t, "FILE", TypeLabel("weird"))
	assert.Equal(t, "FILE", TypeLabel("image/"))
	assert.Equal(t, "FILE", TypeLabel(""))
}
