package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runger/hwcli/internal/shop"
)

// lineDoneMsg is sent each time the workflow finishes a BOM line.
type lineDoneMsg struct {
	done  int
	total int
	item  *shop.Item
}

// finishedMsg ends the program once every line is reported.
type finishedMsg struct{}

// progressModel is the Bubble Tea model for a plan run: a progress bar
// plus a scrollback of per-line outcomes.
type progressModel struct {
	bar   progress.Model
	done  int
	total int
	lines []string
}

func newProgressModel(total int) progressModel {
	return progressModel{
		bar:   progress.New(progress.WithDefaultGradient()),
		total: total,
	}
}

func (m progressModel) Init() tea.Cmd { return nil }

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = msg.Width - 8
		return m, nil

	case lineDoneMsg:
		m.done = msg.done
		m.lines = append(m.lines, formatLine(msg.item))
		return m, nil

	case finishedMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m progressModel) View() string {
	var b strings.Builder
	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	ratio := 0.0
	if m.total > 0 {
		ratio = float64(m.done) / float64(m.total)
	}
	b.WriteString(m.bar.ViewAs(ratio))
	b.WriteString(fmt.Sprintf(" %d/%d", m.done, m.total))
	b.WriteString("\n")
	return b.String()
}

func formatLine(item *shop.Item) string {
	refs := strings.Join(item.References, ",")
	if item.Selected == nil {
		return fmt.Sprintf("%s %s (%s): %s",
			failStyle.Render("✗"), item.Value, refs, item.Err)
	}
	return fmt.Sprintf("%s %s (%s): %s from %s",
		okStyle.Render("✓"), item.Value, refs,
		item.Selected.MPN, item.Selected.Distributor)
}

// ProgressReporter feeds per-line results to a live display. Report is
// safe to call from the workflow's progress callback; Wait blocks until
// the display has drained.
type ProgressReporter struct {
	report func(done, total int, item *shop.Item)
	finish func()
	wait   func() error
}

// Report is the shop.Options.Progress callback.
func (r *ProgressReporter) Report(done, total int, item *shop.Item) {
	r.report(done, total, item)
}

// Finish signals that the run is complete and waits for the display.
func (r *ProgressReporter) Finish() error {
	r.finish()
	return r.wait()
}

// NewProgressReporter builds a reporter for a run of total lines. When
// stdout is a terminal it drives a Bubble Tea progress bar; otherwise it
// prints one plain line per result to w.
func NewProgressReporter(total int, w io.Writer) *ProgressReporter {
	if f, ok := w.(*os.File); ok && isTerminal(f) {
		return newTeaReporter(total)
	}
	return newPlainReporter(w)
}

func newTeaReporter(total int) *ProgressReporter {
	prog := tea.NewProgram(newProgressModel(total))
	errc := make(chan error, 1)
	go func() {
		_, err := prog.Run()
		errc <- err
	}()
	return &ProgressReporter{
		report: func(done, total int, item *shop.Item) {
			prog.Send(lineDoneMsg{done: done, total: total, item: item})
		},
		finish: func() { prog.Send(finishedMsg{}) },
		wait:   func() error { return <-errc },
	}
}

func newPlainReporter(w io.Writer) *ProgressReporter {
	return &ProgressReporter{
		report: func(done, total int, item *shop.Item) {
			fmt.Fprintf(w, "[%d/%d] %s\n", done, total, formatLine(item))
		},
		finish: func() {},
		wait:   func() error { return nil },
	}
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
