// Package memtrace translates haret memory trace output, replacing traced
// addresses with register names and bit field values.
//
// A Session holds the state of one input stream: the register set of the
// detected machine, the watched addresses and the clock baseline. Lines must
// be fed in input order from a single goroutine.
package memtrace

import (
	"sort"
	"strings"
	"unicode"

	"memalias/common"
	"memalias/internal/regs"
)

// Output is the translation of one input line.
type Output struct {
	Kind Kind
	Text string
	// Reg is the register name for memory samples of watched addresses.
	Reg string
}

// Session is the translator state for one trace stream.
type Session struct {
	catalog *regs.Catalog
	log     common.Logger

	active  regs.ArchRegs
	archKey string
	watches map[string]Watch
	clock   Clock
}

// NewSession creates a session resolving registers from catalog. A nil
// logger discards log output.
func NewSession(catalog *regs.Catalog, logger common.Logger) *Session {
	if catalog == nil {
		catalog = regs.NewCatalog()
	}
	if logger == nil {
		logger = common.NewNoOpLogger()
	}
	return &Session{
		catalog: catalog,
		log:     logger,
		active:  regs.ArchRegs{},
		watches: make(map[string]Watch),
	}
}

// Translate processes one line. On error the session state is unchanged and
// the returned Output is empty.
func (s *Session) Translate(raw string) (Output, error) {
	ln, err := ParseLine(raw)
	if err != nil {
		return Output{}, err
	}

	switch ln.Kind {
	case KindMem:
		return s.handleMem(ln), nil
	case KindWatch:
		s.handleWatch(ln)
	case KindBegin:
		s.handleBegin()
	case KindDetect:
		s.handleDetect(ln)
	default:
		return Output{Kind: KindOther, Text: strings.TrimRightFunc(raw, unicode.IsSpace)}, nil
	}
	return Output{Kind: ln.Kind, Text: raw}, nil
}

func (s *Session) handleMem(ln Line) Output {
	w, ok := s.watches[ln.VAddr]
	if !ok {
		return Output{Kind: KindMem, Text: s.clock.Render(ln.Stamp) + " " + ln.Rest}
	}
	return Output{
		Kind: KindMem,
		Text: w.Format(s.clock.Render(ln.Stamp), ln.Value, ln.Changed),
		Reg:  w.Reg.Name,
	}
}

func (s *Session) handleWatch(ln Line) {
	reg, ok := s.active[ln.PAddr]
	if !ok {
		s.log.Debugf("no register at %#x, showing %s by address", ln.PAddr, ln.VAddr)
		reg = anonymous(ln.VAddr)
	}
	s.watches[ln.VAddr] = Watch{Reg: reg, Type: ln.WatchType, Pos: ln.Pos}
}

func (s *Session) handleBegin() {
	s.clock.Reset()
	clear(s.watches)
}

func (s *Session) handleDetect(ln Line) {
	ar, key, ok := s.catalog.Select(ln.Machine, ln.Arch)
	if !ok {
		s.log.Warnf("no register table for machine %q (arch %q)", ln.Machine, ln.Arch)
	} else {
		s.log.Infof("using register table %s (%d registers)", key, len(ar))
	}
	s.active = ar
	s.archKey = key
}

// Watch returns the watch registered for vaddr.
func (s *Session) Watch(vaddr string) (Watch, bool) {
	w, ok := s.watches[vaddr]
	return w, ok
}

// WatchedAddrs lists the watched virtual addresses in sorted order.
func (s *Session) WatchedAddrs() []string {
	out := make([]string, 0, len(s.watches))
	for va := range s.watches {
		out = append(out, va)
	}
	sort.Strings(out)
	return out
}

// ActiveArch returns the catalog key of the selected register set, or "" if
// no machine has been detected or its table is unknown.
func (s *Session) ActiveArch() string { return s.archKey }

// LastClock returns the clock baseline used for the next delta.
func (s *Session) LastClock() uint64 { return s.clock.Last() }
