package main

import (
	"image"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
)

// jpegQuality matches OpenCV's imwrite default.
const jpegQuality = 95

type saveFunc func(path string, img image.Image) error

func saveJPG(path string, img image.Image) error {
	return gg.SaveJPG(path, img, jpegQuality)
}

// baseName is the file name without its extension. Leading dots belong to
// the name, so ".hidden" stays ".hidden".
func baseName(path string) string {
	name := filepath.Base(path)
	ext := filepath.Ext(strings.TrimLeft(name, "."))
	return strings.TrimSuffix(name, ext)
}

func frameFileName(base string, index int) string {
	return base + "_" + strconv.Itoa(index) + ".jpg"
}
