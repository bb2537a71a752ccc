package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

type extractor struct {
	outputDir string
	open      openFunc
	save      saveFunc
	log       *zap.Logger
}

func newExtractor(cfg Config, log *zap.Logger) *extractor {
	return &extractor{
		outputDir: cfg.OutputDir,
		open:      openCapture,
		save:      saveJPG,
		log:       log,
	}
}

type fileResult struct {
	frames     int
	unreadable bool
}

type summary struct {
	files      int
	frames     int
	unreadable int
}

// run extracts the frames of every file under inputDir, one file at a time.
func (x *extractor) run(ctx context.Context, inputDir string) (summary, error) {
	var s summary
	x.log.Info("Start extracting frames",
		zap.String("input_dir", inputDir),
		zap.String("output_dir", x.outputDir),
	)

	err := walkFiles(inputDir, x.log, func(path string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		r, err := x.process(ctx, path)
		if err != nil {
			return err
		}
		s.files++
		s.frames += r.frames
		if r.unreadable {
			s.unreadable++
		}
		return nil
	})
	if err != nil {
		return s, err
	}

	x.log.Info("Finished extracting frames",
		zap.Int("files", s.files),
		zap.Int("frames", s.frames),
		zap.Int("unreadable", s.unreadable),
	)
	return s, nil
}

// process writes every frame of the video at path to the output directory.
// Only a failed write or cancellation is returned as an error.
func (x *extractor) process(ctx context.Context, path string) (fileResult, error) {
	log := x.log.With(zap.String("path", path))
	base := baseName(path)

	done := make(chan struct{})
	var once sync.Once
	cancel := func() { once.Do(func() { close(done) }) }
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	frames, errc := extractFrames(done, x.open, path)

	var writeErr error
	for f := range frames {
		name := filepath.Join(x.outputDir, frameFileName(base, f.index))
		if err := x.save(name, f.image); err != nil {
			writeErr = fmt.Errorf("write frame %d of %s: %w", f.index, path, err)
			cancel()
			break
		}
		log.Debug("Frame written", zap.Int("frame", f.index), zap.String("file", name))
	}
	// the source is released once the channel closes
	for range frames {
	}
	err := <-errc
	if writeErr != nil {
		return fileResult{}, writeErr
	}

	var eof *endOfFile
	var unreadable *unreadableVideo
	switch {
	case errors.As(err, &eof):
		log.Info("Finished processing video", zap.Int("frames", eof.frames))
		return fileResult{frames: eof.frames}, nil
	case errors.As(err, &unreadable):
		log.Warn("Unable to open video", zap.Error(unreadable.err))
		return fileResult{unreadable: true}, nil
	case errors.Is(err, errCanceled):
		return fileResult{}, ctx.Err()
	default:
		return fileResult{}, fmt.Errorf("extract frames from %s: %w", path, err)
	}
}
