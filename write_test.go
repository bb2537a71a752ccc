package main

import (
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/pfs/videos/clip.mp4", "clip"},
		{"clip", "clip"},
		{"dir/archive.tar.gz", "archive.tar"},
		{"dir/.hidden", ".hidden"},
		{"dir/.hidden.mov", ".hidden"},
		{"dir/trailing.", "trailing"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, baseName(tt.path))
		})
	}
}

func TestFrameFileName(t *testing.T) {
	assert.Equal(t, "clip_0.jpg", frameFileName("clip", 0))
	assert.Equal(t, "my video_1234.jpg", frameFileName("my video", 1234))
}

func TestSaveJPG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame_0.jpg")
	src := image.NewRGBA(image.Rect(0, 0, 32, 24))

	require.NoError(t, saveJPG(path, src))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := jpeg.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, src.Bounds(), img.Bounds())
}

func TestSaveJPG_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "frame_0.jpg")

	assert.Error(t, saveJPG(path, image.NewRGBA(image.Rect(0, 0, 2, 2))))
}
