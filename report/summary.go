package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/framex-cli/framex/extract"
	"github.com/framex-cli/framex/frame"
	"github.com/framex-cli/framex/icon"
	"github.com/framex-cli/framex/style"
	"github.com/framex-cli/framex/util"
)

// Success prints the verdict of a completed run.
func Success(out io.Writer, res *extract.Result) {
	_, _ = fmt.Fprintln(out, style.Success(fmt.Sprintf("Success! Extracted %d frames from '%s'.", res.Frames, res.Video)))
	_, _ = fmt.Fprintln(out, style.Faint(fmt.Sprintf(
		"%s %s in %s, %s with %s, %.2fs",
		icon.Get(icon.Folder),
		util.Quantify(res.Frames, "frame", "frames"),
		res.OutputDir,
		humanize.Bytes(uint64(res.Bytes)),
		util.Quantify(res.Threads, "writer", "writers"),
		res.Elapsed,
	)))
}

// Failure prints the error of a failed run along with how far it got.
func Failure(out io.Writer, res *extract.Result, err error) {
	_, _ = fmt.Fprintf(out, "%s %s\n", icon.Get(icon.Fail), style.Failure(strings.TrimSpace(err.Error())))

	var runErr *extract.RunError
	if !errors.As(err, &runErr) || res == nil {
		return
	}

	_, _ = fmt.Fprintln(out, style.Faint(PartialLine(runErr, res)))
}

// PartialLine describes the partial progress of a failed run and, when the
// failure belongs to a frame, which one.
func PartialLine(runErr *extract.RunError, res *extract.Result) string {
	line := fmt.Sprintf("No frames written to %s", res.OutputDir)
	if runErr.Partial() {
		line = fmt.Sprintf("%d of %d frames written to %s", runErr.Written, res.Metadata.TotalFrames, res.OutputDir)
	}
	if runErr.Decoded != res.Metadata.TotalFrames {
		line += fmt.Sprintf(" (%d decoded)", runErr.Decoded)
	}
	if runErr.HasIndex() {
		line += fmt.Sprintf(", stopped at %s", frame.Name(runErr.Index))
	}
	return line
}

// JSON prints res as indented JSON.
func JSON(out io.Writer, res *extract.Result) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
