package dbmongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirOf(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected string
	}{
		{"image path", "images/a1b2c3d4e5f6_photo.jpg", "images"},
		{"document path", "documents/deadbeef0123_report.pdf", "documents"},
		{"nested path keeps first segment", "videos/2024/clip.mp4", "videos"},
		{"flat legacy name", "orphan.bin", "others"},
		{"leading slash", "/rooted.txt", "others"},
		{"empty name", "", "others"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dirOf(tt.filename))
		})
	}
}

func TestRoundMB(t *testing.T) {
	tests := []struct {
		name     string
		bytes    int64
		expected float64
	}{
		{"zero", 0, 0},
		{"exactly one megabyte", 1 << 20, 1},
		{"half megabyte", 512 << 10, 0.5},
		{"rounds to two decimals", 1<<20 + 5243, 1.01},
		{"rounds down below half a hundredth", 1<<20 + 5242, 1},
		{"large file", 100 << 20, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, roundMB(tt.bytes))
		})
	}
}
