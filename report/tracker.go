package report

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/framex-cli/framex/icon"
	"github.com/framex-cli/framex/style"
	"github.com/framex-cli/framex/util"
)

// Counter is the read side of extraction progress.
type Counter interface {
	Fraction() float64
	Decoded() int
	Total() int
}

const (
	barRefresh   = 100 * time.Millisecond
	lineInterval = 2 * time.Second
	maxBarWidth  = 60
)

// Tracker displays a Counter until stopped. On a terminal it drives a progress
// bar; elsewhere it prints a plain line at a fixed interval.
type Tracker struct {
	out      io.Writer
	counter  Counter
	interval time.Duration

	program *tea.Program
	stop    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// NewTracker returns a Tracker writing to out. A disabled tracker stays silent.
func NewTracker(out io.Writer, counter Counter, enabled bool) *Tracker {
	t := &Tracker{out: out, counter: counter, interval: lineInterval}
	if !enabled {
		t.out = nil
	}
	return t
}

// Start begins rendering in the background.
func (t *Tracker) Start() {
	if t.out == nil {
		return
	}

	t.stop = make(chan struct{})

	if util.IsTerminal(t.out) {
		t.program = tea.NewProgram(
			newBarModel(t.counter),
			tea.WithOutput(t.out),
			tea.WithInput(nil),
			tea.WithoutSignalHandler(),
		)

		t.wg.Add(1)
		go func() {
			defer t.wg.Done()
			_, _ = t.program.Run()
		}()
		return
	}

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		t.printLines()
	}()
}

// Stop renders the final state and waits for the display to finish.
func (t *Tracker) Stop() {
	if t.out == nil || t.stop == nil {
		return
	}

	t.once.Do(func() {
		if t.program != nil {
			t.program.Send(finishedMsg{})
		}
		close(t.stop)
		t.wg.Wait()
	})
}

func (t *Tracker) printLines() {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_, _ = fmt.Fprintln(t.out, progressLine(t.counter))
		case <-t.stop:
			_, _ = fmt.Fprintln(t.out, progressLine(t.counter))
			return
		}
	}
}

func progressLine(c Counter) string {
	return fmt.Sprintf("%s Extracting frames: %5.1f%% (%d/%d)", icon.Get(icon.Progress), c.Fraction()*100, c.Decoded(), c.Total())
}

type (
	tickMsg     time.Time
	finishedMsg struct{}
)

// barModel is the bubbletea model behind the interactive progress bar.
type barModel struct {
	counter  Counter
	bar      progress.Model
	finished bool
}

func newBarModel(counter Counter) barModel {
	bar := progress.New(progress.WithGradient(string(style.AccentColor), string(style.HeaderColor)))
	bar.Width = maxBarWidth
	if width, _, err := util.TerminalSize(); err == nil {
		bar.Width = util.Clamp(width-30, 10, maxBarWidth)
	}
	return barModel{counter: counter, bar: bar}
}

func tick() tea.Cmd {
	return tea.Tick(barRefresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m barModel) Init() tea.Cmd {
	return tick()
}

func (m barModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, tick()
	case finishedMsg:
		m.finished = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.bar.Width = util.Clamp(msg.Width-30, 10, maxBarWidth)
	}
	return m, nil
}

func (m barModel) View() string {
	counts := style.Faint(fmt.Sprintf("%d/%d frames", m.counter.Decoded(), m.counter.Total()))
	view := fmt.Sprintf("%s %s %s", icon.Get(icon.Progress), m.bar.ViewAs(m.counter.Fraction()), counts)
	if m.finished {
		view += "\n"
	}
	return view
}
