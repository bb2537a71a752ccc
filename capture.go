package main

import (
	"fmt"
	"image"
	"io"

	"gocv.io/x/gocv"
)

// capture reads frames through OpenCV. The decode buffer is reused between
// reads; every returned image is a copy.
type capture struct {
	video *gocv.VideoCapture
	mat   gocv.Mat
}

func openCapture(path string) (frameSource, error) {
	video, err := gocv.VideoCaptureFile(path)
	if err != nil {
		// gocv hands back the handle even when the open fails.
		if video != nil {
			video.Close()
		}
		return nil, err
	}
	return &capture{video: video, mat: gocv.NewMat()}, nil
}

func (c *capture) next() (image.Image, error) {
	if !c.video.Read(&c.mat) || c.mat.Empty() {
		return nil, io.EOF
	}
	img, err := c.mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("convert frame: %w", err)
	}
	return img, nil
}

func (c *capture) Close() error {
	c.mat.Close()
	return c.video.Close()
}
