// Package extract drives frame-by-frame decoding of a single video and fans the
// decoded frames out to a bounded pool of writers.
//
// The decoder runs on the caller's goroutine and never waits for a particular
// write; it only blocks when the job queue is full. Once the stream ends the
// queue is closed and every writer is joined before the result is reported.
package extract

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"time"

	"github.com/framex-cli/framex/filesystem"
	"github.com/framex-cli/framex/frame"
	"github.com/framex-cli/framex/log"
	"github.com/framex-cli/framex/video"
	"golang.org/x/sync/errgroup"
)

// DefaultThreads is the writer pool size used when none is given.
const DefaultThreads = 4

// Opener opens a decodable source for path.
type Opener func(ctx context.Context, path string) (video.Source, error)

// FrameWriter persists a single frame and reports the number of bytes written.
// It must be safe for concurrent use with distinct indices.
type FrameWriter interface {
	Write(index int, img image.Image) (int64, error)
}

// Options configures an extraction.
type Options struct {
	VideoPath string
	OutputDir string

	// Threads is the number of concurrent writers. Values below 1 mean DefaultThreads.
	Threads int

	// QueueSize bounds how many decoded frames may wait for a writer.
	// Values below 1 mean twice the number of writers.
	QueueSize int

	// Quality is the JPEG quality of the default writer.
	Quality int

	// Open defaults to video.Open with the configured decoder options.
	Open Opener

	// Writer defaults to a frame.Writer on the active filesystem.
	Writer FrameWriter
}

// Frame is a decoded image and its zero-based position in the stream.
type Frame struct {
	Index int
	Image image.Image
}

// Result summarizes a run. It is produced once, whether or not the run succeeded.
type Result struct {
	Video     string         `json:"video" jsonschema:"description=Path of the source video."`
	OutputDir string         `json:"output_dir" jsonschema:"description=Directory the frames were written to."`
	Frames    int            `json:"frames" jsonschema:"description=Number of frame files written."`
	Decoded   int            `json:"decoded" jsonschema:"description=Number of frames decoded from the source."`
	Bytes     int64          `json:"bytes" jsonschema:"description=Total size of the written frames in bytes."`
	Threads   int            `json:"threads" jsonschema:"description=Size of the writer pool."`
	Elapsed   float64        `json:"elapsed_seconds" jsonschema:"description=Wall time of the extraction loop."`
	Metadata  video.Metadata `json:"metadata"`
}

// Extraction is an opened source bound to an output directory.
type Extraction struct {
	opts     Options
	source   video.Source
	meta     video.Metadata
	writer   FrameWriter
	progress *Progress
	log      *log.Entry
}

// CheckInput fails with ErrInputNotFound unless path is a regular file.
func CheckInput(path string) error {
	info, err := filesystem.API().Stat(path)
	if err != nil {
		return &RunError{Kind: ErrInputNotFound, Index: noIndex, Err: err}
	}
	if !info.Mode().IsRegular() {
		return &RunError{Kind: ErrInputNotFound, Index: noIndex, Err: fmt.Errorf("%s is not a regular file", path)}
	}
	return nil
}

// Open validates the input, creates the output directory and opens the source.
// A missing input is reported before anything is created on disk.
func Open(ctx context.Context, opts Options) (*Extraction, error) {
	if opts.Threads < 1 {
		opts.Threads = DefaultThreads
	}
	if opts.QueueSize < 1 {
		opts.QueueSize = 2 * opts.Threads
	}

	if err := CheckInput(opts.VideoPath); err != nil {
		return nil, err
	}

	fs := filesystem.API()

	if err := fs.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, &RunError{Kind: ErrWrite, Index: noIndex, Err: fmt.Errorf("create output directory: %w", err)}
	}

	open := opts.Open
	if open == nil {
		decoderOpts := video.OptionsFromConfig()
		open = func(ctx context.Context, path string) (video.Source, error) {
			return video.Open(ctx, path, decoderOpts)
		}
	}

	source, err := open(ctx, opts.VideoPath)
	if err != nil {
		return nil, &RunError{Kind: ErrOpenFailure, Index: noIndex, Err: err}
	}

	writer := opts.Writer
	if writer == nil {
		writer = frame.NewWriter(fs, opts.OutputDir, opts.Quality)
	}

	meta := source.Metadata().Normalize()

	e := &Extraction{
		opts:     opts,
		source:   source,
		meta:     meta,
		writer:   writer,
		progress: NewProgress(meta.TotalFrames),
		log: log.WithFields(log.Fields{
			"video":  opts.VideoPath,
			"output": opts.OutputDir,
		}),
	}

	e.log.Infof("opened %s %s at %.3f fps, ~%d frames", meta.Codec, meta.Resolution(), meta.FrameRate, meta.TotalFrames)
	return e, nil
}

// Metadata describes the opened source.
func (e *Extraction) Metadata() video.Metadata {
	return e.meta
}

// Progress exposes the live counters of the run.
func (e *Extraction) Progress() *Progress {
	return e.progress
}

// Close releases the source without running. Run closes it on its own.
func (e *Extraction) Close() error {
	return e.source.Close()
}

// Run decodes the whole stream and waits for every write to finish.
// On failure the returned Result still describes the partial progress and the
// error is a *RunError.
func (e *Extraction) Run(ctx context.Context) (*Result, error) {
	defer e.source.Close()

	start := time.Now()
	jobs := make(chan Frame, e.opts.QueueSize)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < e.opts.Threads; i++ {
		g.Go(func() error {
			return e.work(gctx, jobs)
		})
	}

	e.log.Debugf("decoding with %d writers, queue of %d", e.opts.Threads, e.opts.QueueSize)

	decodeErr := e.decode(gctx, jobs)
	close(jobs)
	writeErr := g.Wait()

	result := &Result{
		Video:     e.opts.VideoPath,
		OutputDir: e.opts.OutputDir,
		Frames:    e.progress.Written(),
		Decoded:   e.progress.Decoded(),
		Bytes:     e.progress.Bytes(),
		Threads:   e.opts.Threads,
		Elapsed:   time.Since(start).Seconds(),
		Metadata:  e.meta,
	}

	if err := e.classify(ctx, decodeErr, writeErr); err != nil {
		e.log.Errorf("extraction failed after %d of %d frames: %v", result.Frames, result.Decoded, err)
		return result, err
	}

	e.log.Infof("extracted %d frames in %.2fs", result.Frames, result.Elapsed)
	return result, nil
}

// decode pulls frames until end of stream, a decode error or cancellation.
func (e *Extraction) decode(ctx context.Context, jobs chan<- Frame) error {
	for index := 0; ; index++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		img, err := e.source.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return &frameError{index: index, err: err}
		}

		select {
		case jobs <- Frame{Index: index, Image: img}:
			e.progress.addDecoded()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// work writes queued frames until the queue is closed. Once the run is failing
// the remaining frames are drained without being written.
func (e *Extraction) work(ctx context.Context, jobs <-chan Frame) error {
	for f := range jobs {
		if ctx.Err() != nil {
			continue
		}

		n, err := e.writer.Write(f.Index, f.Image)
		if err != nil {
			e.log.Errorf("write frame %d: %v", f.Index, err)
			return &frameError{index: f.Index, err: err}
		}

		e.progress.addWritten(n)
	}
	return nil
}

// classify maps the outcome of the decoder and the writer group onto a RunError.
// Write failures win over the cancellation they trigger.
func (e *Extraction) classify(ctx context.Context, decodeErr, writeErr error) error {
	if decodeErr == nil && writeErr == nil {
		return nil
	}

	runErr := &RunError{
		Index:   noIndex,
		Decoded: e.progress.Decoded(),
		Written: e.progress.Written(),
	}

	var fe *frameError
	switch {
	case writeErr != nil:
		runErr.Kind = ErrWrite
		runErr.Err = writeErr
		if errors.As(writeErr, &fe) {
			runErr.Index, runErr.Err = fe.index, fe.err
		}
	case ctx.Err() != nil:
		runErr.Kind = ErrCancelled
		runErr.Err = ctx.Err()
	default:
		runErr.Kind = ErrDecode
		runErr.Err = decodeErr
		if errors.As(decodeErr, &fe) {
			runErr.Index, runErr.Err = fe.index, fe.err
		}
	}

	return runErr
}
