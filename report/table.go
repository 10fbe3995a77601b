// Package report renders what the user sees around an extraction: the metadata
// table, the live progress display and the final verdict.
package report

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/framex-cli/framex/style"
	"github.com/framex-cli/framex/video"
)

// Row is a labelled metadata value.
type Row struct {
	Label string
	Value string
}

// MetadataRows lists the properties shown before extraction, in display order.
func MetadataRows(meta video.Metadata) []Row {
	return []Row{
		{"FPS", strconv.FormatFloat(meta.FrameRate, 'f', 2, 64)},
		{"Total Frames", strconv.Itoa(meta.TotalFrames)},
		{"Duration", fmt.Sprintf("%.2f sec", meta.Duration().Seconds())},
		{"Resolution", meta.Resolution()},
		{"Codec", meta.Codec.String()},
	}
}

// MetadataTable renders meta as a titled two-column table.
func MetadataTable(meta video.Metadata) string {
	rows := MetadataRows(meta)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(style.New().Foreground(style.BorderColor)).
		Headers("Property", "Value").
		StyleFunc(func(row, col int) lipgloss.Style {
			cell := style.New().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return cell.Bold(true).Foreground(style.AccentColor)
			case col == 0:
				return cell.Foreground(style.HeaderColor)
			default:
				return cell.Foreground(style.ValueColor)
			}
		})

	for _, r := range rows {
		t.Row(r.Label, r.Value)
	}

	return lipgloss.JoinVertical(lipgloss.Left, style.Title("Video Information"), t.Render())
}
