package video

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/framex-cli/framex/log"
)

// pipeBufferSize is the read buffer in front of ffmpeg's stdout.
const pipeBufferSize = 1 << 20

// ffmpegSource decodes through an ffmpeg subprocess writing raw RGBA frames to stdout.
type ffmpegSource struct {
	meta   Metadata
	cmd    *exec.Cmd
	stdout io.ReadCloser
	reader *bufio.Reader
	stderr bytes.Buffer

	waitOnce sync.Once
	waitErr  error
}

func openFFmpeg(ctx context.Context, path string, opts Options) (Source, error) {
	meta, err := cachedProbe(ctx, path, opts)
	if err != nil {
		return nil, err
	}

	if meta.Width <= 0 || meta.Height <= 0 {
		return nil, fmt.Errorf("invalid frame size %s", meta.Resolution())
	}

	s := &ffmpegSource{meta: meta.Normalize()}

	// -noautorotate keeps decoded frames at the probed coded size.
	s.cmd = exec.CommandContext(ctx, opts.FFmpegPath,
		"-nostdin",
		"-v", "error",
		"-noautorotate",
		"-i", path,
		"-map", "0:v:0",
		"-fps_mode", "passthrough",
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-",
	)
	s.cmd.SysProcAttr = sysProcAttr()
	s.cmd.Stdin = nil
	s.cmd.Stderr = &s.stderr

	s.stdout, err = s.cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("ffmpeg stdout: %w", err)
	}

	if err := s.cmd.Start(); err != nil {
		return nil, fmt.Errorf("start ffmpeg: %w", err)
	}

	log.Debugf("ffmpeg started (pid %d) for %s", s.cmd.Process.Pid, path)

	s.reader = bufio.NewReaderSize(s.stdout, pipeBufferSize)
	return s, nil
}

func (s *ffmpegSource) Metadata() Metadata {
	return s.meta
}

func (s *ffmpegSource) Next() (image.Image, error) {
	img, err := readRGBA(s.reader, s.meta.Width, s.meta.Height)
	if err == nil {
		return img, nil
	}

	if errors.Is(err, io.EOF) {
		if werr := s.wait(); werr != nil {
			return nil, s.describe(werr)
		}
		return nil, io.EOF
	}

	// A short read means ffmpeg stopped mid-frame; its exit status says why.
	if werr := s.wait(); werr != nil {
		return nil, s.describe(werr)
	}
	return nil, fmt.Errorf("truncated frame: %w", err)
}

func (s *ffmpegSource) Close() error {
	if s.cmd.ProcessState == nil {
		_ = killProcess(s.cmd)
	}
	_ = s.wait()
	return nil
}

func (s *ffmpegSource) wait() error {
	s.waitOnce.Do(func() {
		s.waitErr = s.cmd.Wait()
	})
	return s.waitErr
}

// describe attaches ffmpeg's diagnostic output to a process error.
func (s *ffmpegSource) describe(err error) error {
	if msg := strings.TrimSpace(s.stderr.String()); msg != "" {
		return fmt.Errorf("ffmpeg: %w: %s", err, msg)
	}
	return fmt.Errorf("ffmpeg: %w", err)
}

// readRGBA reads exactly one width*height RGBA frame from r into a new image.
// It returns io.EOF when r is exhausted on a frame boundary and
// io.ErrUnexpectedEOF when the stream ends inside a frame.
func readRGBA(r io.Reader, width, height int) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if _, err := io.ReadFull(r, img.Pix); err != nil {
		return nil, err
	}
	return img, nil
}
