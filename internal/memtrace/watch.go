package memtrace

import (
	"fmt"
	"strconv"
	"strings"

	"memalias/internal/bitfield"
	"memalias/internal/regs"
)

// label of the fragment collecting changed bits no field names
const unnamedLabel = "?"

// Watch binds a traced virtual address to the register shown for it.
type Watch struct {
	Reg  *regs.Descriptor
	Type string // watch type announced by the trace, may be empty
	Pos  int    // word index within a multi-word register
}

// anonymous builds the placeholder register used when the physical address
// is not in the active register set.
func anonymous(vaddr string) *regs.Descriptor {
	return &regs.Descriptor{Name: vaddr}
}

// Format renders one memory sample of the watched register. stamp is the
// already rendered time prefix.
//
// A zero changed mask marks the first sample of a trace: every set bit of
// val is reported, the full register value is shown and the ignore lists
// are left out.
func (w Watch) Format(stamp string, val, changed uint32) string {
	first := changed == 0
	if first {
		changed = val
	}

	var sb strings.Builder
	unnamed := changed
	for _, f := range w.Reg.Fields {
		if f.Mask&changed != 0 {
			w.fragment(&sb, f.Label, f.Mask, val, changed, !first)
			unnamed &^= f.Mask
		}
	}
	if unnamed != 0 {
		w.fragment(&sb, unnamedLabel, ^uint32(0), val&unnamed, unnamed, !first)
	}

	typ := ""
	if w.Type != "" {
		typ = " " + w.Type
	}
	if first {
		return fmt.Sprintf("%s%s %8s=%08x:%s", stamp, typ, w.Reg.Name, val, sb.String())
	}
	return fmt.Sprintf("%s%s %8s:%s", stamp, typ, w.Reg.Name, sb.String())
}

// fragment packs the bits of val selected by mask into the low bits of the
// output value. Changed bits are listed by absolute position when withList
// is set.
func (w Watch) fragment(sb *strings.Builder, label string, mask, val, changed uint32, withList bool) {
	var out uint32
	var pos []string
	n := 0
	for i := 0; i < bitfield.RegBits; i++ {
		bit := uint32(1) << i
		if bit&mask == 0 {
			continue
		}
		if bit&val != 0 {
			out |= 1 << n
		}
		if bit&changed != 0 {
			pos = append(pos, strconv.Itoa(w.Pos*bitfield.RegBits+i))
		}
		n++
	}

	if withList {
		fmt.Fprintf(sb, " %s(%s)=%x", label, strings.Join(pos, " "), out)
		return
	}
	fmt.Fprintf(sb, " %s=%x", label, out)
}
