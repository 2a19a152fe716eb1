package printers

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"memalias/internal/memtrace"
)

// LinePrinter writes translated trace lines, one per output.
type LinePrinter struct {
	writer io.Writer
	muted  bool
	lines  int

	colors  bool
	regCol  *color.Color
	metaCol *color.Color
}

// NewLinePrinter constructs a LinePrinter using the given io.Writer, stdout if nil.
func NewLinePrinter(writer io.Writer) *LinePrinter {
	if writer == nil {
		writer = os.Stdout
	}
	return &LinePrinter{
		writer:  writer,
		regCol:  color.New(color.FgHiCyan),
		metaCol: color.New(color.Bold),
	}
}

// SetOutput allows redirecting the printer output
func (p *LinePrinter) SetOutput(w io.Writer) {
	if w != nil {
		p.writer = w
	}
}

// SetColor turns highlighting of register lines and session markers on or off.
func (p *LinePrinter) SetColor(on bool) {
	p.colors = on
	if on {
		p.regCol.EnableColor()
		p.metaCol.EnableColor()
	} else {
		p.regCol.DisableColor()
		p.metaCol.DisableColor()
	}
}

// PrintOutput writes one translated line.
func (p *LinePrinter) PrintOutput(out memtrace.Output) error {
	if p.muted {
		return nil
	}
	text := out.Text
	if p.colors {
		switch {
		case out.Reg != "":
			text = p.regCol.Sprint(text)
		case out.Kind == memtrace.KindDetect, out.Kind == memtrace.KindBegin, out.Kind == memtrace.KindWatch:
			text = p.metaCol.Sprint(text)
		}
	}
	if _, err := fmt.Fprintln(p.writer, text); err != nil {
		return err
	}
	p.lines++
	return nil
}

// Lines returns the number of lines written.
func (p *LinePrinter) Lines() int { return p.lines }

// SetMute sets the printer to mute (avoids output).
func (p *LinePrinter) SetMute(mute bool) { p.muted = mute }

// IsMuted returns true if the printer is muted.
func (p *LinePrinter) IsMuted() bool { return p.muted }
