// Package translate drives a memtrace session over an input stream.
package translate

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"unicode"

	"memalias/common"
	ierr "memalias/internal/common"
	"memalias/internal/memtrace"
	"memalias/internal/printers"
	"memalias/internal/regfile"
	"memalias/internal/regs"
)

// maximum accepted input line length
const maxLineLen = 1 << 20

// Config holds the settings of one translation run.
type Config struct {
	Input  io.Reader // defaults to stdin
	Output io.Writer // defaults to stdout

	RegFiles  []string      // extra register definition files (.ini, .lua)
	NoBuiltin bool          // skip the compiled-in register tables
	Catalog   *regs.Catalog // used as is when set, ignoring RegFiles and NoBuiltin

	SkipBadLines bool // echo lines with unparsable numbers instead of aborting
	Color        bool

	Logger common.Logger
}

// Stats counts what a run did.
type Stats struct {
	Lines      int
	Translated int // memory samples shown with register names
	Defaulted  int // memory samples of unwatched addresses
	Skipped    int // malformed lines echoed under SkipBadLines
}

// BuildCatalog assembles the register catalog for cfg: built-in tables
// unless disabled, then the register files in order.
func BuildCatalog(cfg Config) (*regs.Catalog, error) {
	if cfg.Catalog != nil {
		return cfg.Catalog, nil
	}
	cat := regs.NewCatalog()
	if !cfg.NoBuiltin {
		if err := cat.Merge(regs.Builtin()); err != nil {
			return nil, err
		}
	}
	if len(cfg.RegFiles) > 0 {
		tables, err := regfile.Load(cfg.RegFiles...)
		if err != nil {
			return nil, err
		}
		if err := cat.Merge(tables); err != nil {
			return nil, err
		}
	}
	return cat, nil
}

// Run translates every line of cfg.Input to cfg.Output.
//
// A line whose numeric fields do not parse stops the run with an
// ErrMalformedNumber error carrying the line number, unless SkipBadLines is
// set, in which case it is logged and echoed with trailing blanks removed.
func Run(cfg Config) (Stats, error) {
	var st Stats
	log := cfg.Logger
	if log == nil {
		log = common.NewNoOpLogger()
	}
	in := cfg.Input
	if in == nil {
		in = os.Stdin
	}

	cat, err := BuildCatalog(cfg)
	if err != nil {
		return st, err
	}
	log.Debugf("register catalog: %d registers in %v", cat.Len(), cat.Keys())

	sess := memtrace.NewSession(cat, log)
	pr := printers.NewLinePrinter(cfg.Output)
	pr.SetColor(cfg.Color)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	for scanner.Scan() {
		st.Lines++
		line := scanner.Text()

		out, err := sess.Translate(line)
		if err != nil {
			var e *ierr.Error
			if !errors.As(err, &e) || e.Code != ierr.ErrMalformedNumber {
				return st, err
			}
			e = e.AtLine(st.Lines)
			if !cfg.SkipBadLines {
				return st, e
			}
			log.Warnf("line %d: %s", st.Lines, e.Message)
			st.Skipped++
			out = memtrace.Output{Kind: memtrace.KindOther, Text: strings.TrimRightFunc(line, unicode.IsSpace)}
		}

		if out.Kind == memtrace.KindMem {
			if out.Reg != "" {
				st.Translated++
			} else {
				st.Defaulted++
			}
		}
		if err := pr.PrintOutput(out); err != nil {
			return st, ierr.Errorf(ierr.ErrIO, "writing output: %v", err).AtLine(st.Lines)
		}
	}
	if err := scanner.Err(); err != nil {
		return st, ierr.Errorf(ierr.ErrIO, "reading input: %v", err).AtLine(st.Lines)
	}
	return st, nil
}
