// Package ui renders run narration for the operator's terminal.
package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/dmitrijs2005/picseed/internal/seeder"
	"github.com/fatih/color"
)

const sectionWidth = 50

// ConsoleReporter prints one line per event, prefixed with a status icon.
// A failure's detail, when present, follows on its own indented line.
type ConsoleReporter struct {
	mu sync.Mutex
	w  io.Writer

	clrDim     *color.Color
	clrAccent  *color.Color
	clrSuccess *color.Color
	clrError   *color.Color
	clrWarning *color.Color
	clrInfo    *color.Color
}

var _ seeder.Reporter = (*ConsoleReporter)(nil)

// NewConsoleReporter writes to w. With noColor set, no escape sequences are
// emitted regardless of terminal detection.
func NewConsoleReporter(w io.Writer, noColor bool) *ConsoleReporter {
	r := &ConsoleReporter{
		w:          w,
		clrDim:     color.New(color.FgHiBlack),
		clrAccent:  color.New(color.FgCyan, color.Bold),
		clrSuccess: color.New(color.FgGreen),
		clrError:   color.New(color.FgRed),
		clrWarning: color.New(color.FgYellow),
		clrInfo:    color.New(color.FgBlue),
	}

	for _, c := range []*color.Color{r.clrDim, r.clrAccent, r.clrSuccess, r.clrError, r.clrWarning, r.clrInfo} {
		if noColor {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
	}
	return r
}

func (r *ConsoleReporter) printf(format string, a ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.w, format, a...)
}

func (r *ConsoleReporter) status(icon string, c *color.Color, msg string) {
	r.printf("%s %s\n", c.Sprint(icon), msg)
}

func (r *ConsoleReporter) Section(title string) {
	pad := sectionWidth - len(title)
	if pad < 2 {
		pad = 2
	}
	r.printf("\n%s %s %s\n", r.clrDim.Sprint("──"), r.clrAccent.Sprint(title), r.clrDim.Sprint(strings.Repeat("─", pad)))
}

func (r *ConsoleReporter) Success(msg string) { r.status("✔", r.clrSuccess, msg) }
func (r *ConsoleReporter) Info(msg string)    { r.status("ℹ", r.clrInfo, msg) }
func (r *ConsoleReporter) Warn(msg string)    { r.status("⚠", r.clrWarning, r.clrWarning.Sprint(msg)) }

func (r *ConsoleReporter) Failure(msg, detail string) {
	r.status("✖", r.clrError, r.clrError.Sprint(msg))
	if detail != "" {
		r.printf("   %s\n", detail)
	}
}

// Summary prints the closing line of a run.
func (r *ConsoleReporter) Summary(title string, s seeder.Summary) {
	c := r.clrSuccess
	if s.Failed > 0 {
		c = r.clrWarning
	}
	r.printf("\n%s: %s\n", r.clrAccent.Sprint(title), c.Sprint(s.String()))
}

// Line prints msg verbatim, for command results such as an encoded hash.
func (r *ConsoleReporter) Line(msg string) {
	r.printf("%s\n", msg)
}
