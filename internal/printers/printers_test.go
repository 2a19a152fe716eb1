package printers

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"memalias/internal/memtrace"
)

func TestLinePrinterPlain(t *testing.T) {
	var buf bytes.Buffer
	p := NewLinePrinter(&buf)

	outs := []memtrace.Output{
		{Kind: memtrace.KindDetect, Text: "Detected machine x/PXA (Plat=y)"},
		{Kind: memtrace.KindMem, Text: "000.100 REG     CTRL: EN(0)=1", Reg: "CTRL"},
		{Kind: memtrace.KindOther, Text: "hello"},
	}
	for _, o := range outs {
		if err := p.PrintOutput(o); err != nil {
			t.Fatal(err)
		}
	}

	expt := "Detected machine x/PXA (Plat=y)\n000.100 REG     CTRL: EN(0)=1\nhello\n"
	if buf.String() != expt {
		t.Errorf("expected %q, got %q", expt, buf.String())
	}
	if p.Lines() != 3 {
		t.Errorf("Lines() = %d, want 3", p.Lines())
	}
}

func TestLinePrinterMute(t *testing.T) {
	var buf bytes.Buffer
	p := NewLinePrinter(&buf)

	p.SetMute(true)
	if !p.IsMuted() {
		t.Error("expected muted")
	}
	p.PrintOutput(memtrace.Output{Text: "x"})
	if buf.Len() != 0 || p.Lines() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestLinePrinterColor(t *testing.T) {
	var buf bytes.Buffer
	p := NewLinePrinter(&buf)
	p.SetColor(true)

	p.PrintOutput(memtrace.Output{Kind: memtrace.KindMem, Text: "reg line", Reg: "CTRL"})
	p.PrintOutput(memtrace.Output{Kind: memtrace.KindBegin, Text: "Beginning memory tracing."})
	p.PrintOutput(memtrace.Output{Kind: memtrace.KindMem, Text: "000.100 raw"})

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "\x1b[") || !strings.Contains(lines[0], "reg line") {
		t.Errorf("register line not coloured: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "\x1b[1m") {
		t.Errorf("begin line not bold: %q", lines[1])
	}
	if lines[2] != "000.100 raw" {
		t.Errorf("unwatched line should be plain: %q", lines[2])
	}

	buf.Reset()
	p.SetColor(false)
	p.PrintOutput(memtrace.Output{Kind: memtrace.KindMem, Text: "reg line", Reg: "CTRL"})
	if buf.String() != "reg line\n" {
		t.Errorf("colour off: got %q", buf.String())
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestLinePrinterWriteError(t *testing.T) {
	p := NewLinePrinter(failWriter{})
	if err := p.PrintOutput(memtrace.Output{Text: "x"}); err == nil {
		t.Error("expected write error")
	}
	if p.Lines() != 0 {
		t.Errorf("Lines() = %d after failed write", p.Lines())
	}

	var buf bytes.Buffer
	p.SetOutput(&buf)
	p.SetOutput(nil)
	p.PrintOutput(memtrace.Output{Text: "y"})
	if buf.String() != "y\n" {
		t.Errorf("SetOutput: got %q", buf.String())
	}
}
