package memtrace

import (
	"regexp"
	"strconv"
	"strings"

	"memalias/internal/common"
)

// Kind identifies the shape of a trace line.
type Kind int

const (
	KindOther Kind = iota // unrecognised, echoed
	KindMem               // memory value sample
	KindWatch             // watch registration
	KindBegin             // start of a tracing session
	KindDetect            // machine detection
)

func (k Kind) String() string {
	switch k {
	case KindMem:
		return "mem"
	case KindWatch:
		return "watch"
	case KindBegin:
		return "begin"
	case KindDetect:
		return "detect"
	default:
		return "other"
	}
}

const timePrefix = `^(?P<time>[0-9]+): ((?P<clock>[0-9a-f]+): )?`

var (
	reMem    = regexp.MustCompile(timePrefix + `mem (?P<vaddr>.*)=(?P<val>.*) \((?P<changed>.*)\)$`)
	reWatch  = regexp.MustCompile(`^Watching (?P<type>.*)\((?P<pos>\d+)\): Addr (?P<vaddr>.*)\(@(?P<paddr>.*)\)$`)
	reBegin  = regexp.MustCompile(`^Beginning memory tracing\.$`)
	reDetect = regexp.MustCompile(`^Detected machine (?P<name>.*)/(?P<arch>.*) \(Plat=.*\)$`)
)

// length of ": mem " following the time or clock field
const memTagLen = 6

// Stamp is the time prefix of a memory sample. The clock field is optional in
// the trace; HasClock records whether it was present.
type Stamp struct {
	Millis   uint64
	Clock    uint64
	HasClock bool
}

// Line is a trace line with all captured fields converted.
type Line struct {
	Kind Kind
	Raw  string

	Stamp   Stamp  // KindMem
	VAddr   string // KindMem, KindWatch
	Value   uint32 // KindMem
	Changed uint32 // KindMem
	Rest    string // KindMem: text after "mem "

	WatchType string // KindWatch
	Pos       int    // KindWatch
	PAddr     uint64 // KindWatch

	Machine string // KindDetect
	Arch    string // KindDetect
}

// ParseLine classifies raw and converts its numeric fields. Patterns are
// tried in the order mem, watch, begin, detect. A line whose shape matches but
// whose numbers do not parse yields an ErrMalformedNumber error.
func ParseLine(raw string) (Line, error) {
	if m := reMem.FindStringSubmatchIndex(raw); m != nil {
		return parseMem(raw, m)
	}
	if m := reWatch.FindStringSubmatch(raw); m != nil {
		return parseWatch(raw, m)
	}
	if reBegin.MatchString(raw) {
		return Line{Kind: KindBegin, Raw: raw}, nil
	}
	if m := reDetect.FindStringSubmatch(raw); m != nil {
		return Line{
			Kind:    KindDetect,
			Raw:     raw,
			Machine: m[reDetect.SubexpIndex("name")],
			Arch:    m[reDetect.SubexpIndex("arch")],
		}, nil
	}
	return Line{Kind: KindOther, Raw: raw}, nil
}

func group(re *regexp.Regexp, raw string, idx []int, name string) (s string, start, end int) {
	i := re.SubexpIndex(name)
	start, end = idx[2*i], idx[2*i+1]
	if start < 0 {
		return "", -1, -1
	}
	return raw[start:end], start, end
}

func parseMem(raw string, idx []int) (Line, error) {
	ln := Line{Kind: KindMem, Raw: raw}

	t, _, tEnd := group(reMem, raw, idx, "time")
	ms, err := strconv.ParseUint(t, 10, 64)
	if err != nil {
		return Line{}, badNumber("time", t, raw)
	}
	ln.Stamp.Millis = ms

	end := tEnd
	if c, _, cEnd := group(reMem, raw, idx, "clock"); cEnd >= 0 {
		if ln.Stamp.Clock, err = strconv.ParseUint(c, 16, 64); err != nil {
			return Line{}, badNumber("clock", c, raw)
		}
		ln.Stamp.HasClock = true
		end = cEnd
	}
	ln.Rest = raw[end+memTagLen:]

	ln.VAddr, _, _ = group(reMem, raw, idx, "vaddr")
	v, _, _ := group(reMem, raw, idx, "val")
	if ln.Value, err = parseHex32(v); err != nil {
		return Line{}, badNumber("val", v, raw)
	}
	c, _, _ := group(reMem, raw, idx, "changed")
	if ln.Changed, err = parseHex32(c); err != nil {
		return Line{}, badNumber("changed", c, raw)
	}
	return ln, nil
}

func parseWatch(raw string, m []string) (Line, error) {
	pos := m[reWatch.SubexpIndex("pos")]
	n, err := strconv.Atoi(pos)
	if err != nil {
		return Line{}, badNumber("pos", pos, raw)
	}
	paddr := m[reWatch.SubexpIndex("paddr")]
	pa, err := strconv.ParseUint(trimHex(paddr), 16, 64)
	if err != nil {
		return Line{}, badNumber("paddr", paddr, raw)
	}
	return Line{
		Kind:      KindWatch,
		Raw:       raw,
		WatchType: m[reWatch.SubexpIndex("type")],
		Pos:       n,
		VAddr:     m[reWatch.SubexpIndex("vaddr")],
		PAddr:     pa,
	}, nil
}

func trimHex(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	return s
}

func parseHex32(s string) (uint32, error) {
	v, err := strconv.ParseUint(trimHex(s), 16, 32)
	return uint32(v), err
}

func badNumber(field, val, raw string) error {
	return common.Errorf(common.ErrMalformedNumber, "bad %s %q in %q", field, val, raw)
}
