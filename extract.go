package main

import (
	"errors"
	"image"
	"io"
	"strconv"
)

type frame struct {
	index int
	image image.Image
}

// endOfFile is the terminal signal of a stream read to exhaustion.
type endOfFile struct {
	frames int
}

func (e *endOfFile) Error() string {
	return "Video stream complete. frames: " + strconv.Itoa(e.frames)
}

// unreadableVideo is the terminal signal of a file that could not be opened
// as a video. It yields no frames and does not stop the run.
type unreadableVideo struct {
	path string
	err  error
}

func (e *unreadableVideo) Error() string {
	return "unreadable video " + e.path + ": " + e.err.Error()
}

func (e *unreadableVideo) Unwrap() error {
	return e.err
}

var errCanceled = errors.New("frame extraction canceled")

// frameSource decodes a video one frame at a time. next returns io.EOF once
// no more frames can be decoded.
type frameSource interface {
	next() (image.Image, error)
	Close() error
}

type openFunc func(path string) (frameSource, error)

// extractFrames decodes the video at path into a channel of frames numbered
// from zero. Exactly one terminal error is sent on the error channel: an
// *endOfFile, an *unreadableVideo, errCanceled once done is closed, or the
// decode error that stopped the stream. The source is released before the
// frame channel is closed.
func extractFrames(done <-chan struct{}, open openFunc, path string) (<-chan frame, <-chan error) {
	framec := make(chan frame)
	errc := make(chan error, 1)

	go func() {
		defer close(framec)

		src, err := open(path)
		if err != nil {
			errc <- &unreadableVideo{path: path, err: err}
			return
		}
		defer src.Close()

		errc <- func() error {
			n := 0
			for {
				img, err := src.next()
				if errors.Is(err, io.EOF) {
					return &endOfFile{n}
				}
				if err != nil {
					return err
				}
				select {
				case framec <- frame{n, img}:
				case <-done:
					return errCanceled
				}
				n++
			}
		}()
	}()
	return framec, errc
}
