// Package frame persists decoded frames as sequentially numbered JPEG files.
package frame

import (
	"fmt"
	"image"
	"io"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/disintegration/imaging"
	"github.com/spf13/afero"
)

// Extension is the file extension of every written frame.
const Extension = "jpg"

// DefaultQuality is the JPEG quality used when none is configured.
const DefaultQuality = 95

var namePattern = regexp.MustCompile(`^frame_\d{4,}\.` + Extension + `$`)

// Name returns the file name for the zero-based frame index, padded to four digits.
func Name(index int) string {
	return fmt.Sprintf("frame_%04d.%s", index, Extension)
}

// Writer encodes frames into a fixed directory.
type Writer struct {
	fs      afero.Fs
	dir     string
	quality int
}

// NewWriter returns a Writer storing frames in dir on fs.
// Quality outside 1..100 falls back to DefaultQuality.
func NewWriter(fs afero.Fs, dir string, quality int) *Writer {
	if quality < 1 || quality > 100 {
		quality = DefaultQuality
	}
	return &Writer{fs: fs, dir: dir, quality: quality}
}

// Path returns the destination of the frame with the given index.
func (w *Writer) Path(index int) string {
	return filepath.Join(w.dir, Name(index))
}

// Write encodes img as JPEG to the path of index and returns the bytes written.
// A failed write leaves no partial file behind.
func (w *Writer) Write(index int, img image.Image) (int64, error) {
	path := w.Path(index)

	f, err := w.fs.Create(path)
	if err != nil {
		return 0, fmt.Errorf("frame %d: create %s: %w", index, path, err)
	}

	counter := &countingWriter{w: f}
	err = imaging.Encode(counter, img, imaging.JPEG, imaging.JPEGQuality(w.quality))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		_ = w.fs.Remove(path)
		return 0, fmt.Errorf("frame %d: write %s: %w", index, path, err)
	}

	return counter.n, nil
}

// Existing lists frame files already present in dir, sorted by name.
// A missing directory yields no files and no error.
func Existing(fs afero.Fs, dir string) ([]string, error) {
	exists, err := afero.DirExists(fs, dir)
	if err != nil || !exists {
		return nil, err
	}

	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && namePattern.MatchString(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	return names, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
