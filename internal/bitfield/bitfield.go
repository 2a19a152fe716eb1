// Package bitfield compiles human written register bit descriptions into
// (mask, label) pairs.
//
// A description is either a single bit index or a string holding a comma
// separated list of bit indexes and descending hyphen ranges, e.g. "7-4,1"
// selects bits 7, 6, 5, 4 and 1.
package bitfield

import (
	"fmt"
	"strconv"
	"strings"

	"memalias/internal/common"
)

// RegBits is the width of a traced register word.
const RegBits = 32

// Field is a compiled bit field.
type Field struct {
	Mask  uint32
	Label string
}

// Bits selects the bits a field covers. Implemented by Bit and List only.
type Bits interface {
	mask() (uint32, error)
	fmt.Stringer
}

// Bit is a single bit index.
type Bit int

// List is a textual bit list such as "7-4,1".
type List string

// Spec is an uncompiled field description.
type Spec struct {
	Bits  Bits
	Label string
}

// S is shorthand for building a Spec from a single bit index.
func S(bit int, label string) Spec { return Spec{Bits: Bit(bit), Label: label} }

// L is shorthand for building a Spec from a bit list.
func L(bits string, label string) Spec { return Spec{Bits: List(bits), Label: label} }

func (b Bit) String() string  { return strconv.Itoa(int(b)) }
func (l List) String() string { return string(l) }

func (b Bit) mask() (uint32, error) {
	if b < 0 || b >= RegBits {
		return 0, badSpec("bit %d out of range", int(b))
	}
	return 1 << uint(b), nil
}

func (l List) mask() (uint32, error) {
	var m uint32
	for _, tok := range strings.Split(string(l), ",") {
		rng := strings.SplitN(tok, "-", 2)
		hi, err := parseBit(rng[0], l)
		if err != nil {
			return 0, err
		}
		lo := hi
		if len(rng) > 1 {
			if lo, err = parseBit(rng[1], l); err != nil {
				return 0, err
			}
			if lo > hi {
				return 0, badSpec("range %q in %q is not descending", tok, string(l))
			}
		}
		for bit := hi; bit >= lo; bit-- {
			m |= 1 << uint(bit)
		}
	}
	return m, nil
}

func parseBit(s string, l List) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, badSpec("bad bit %q in %q", s, string(l))
	}
	if n < 0 || n >= RegBits {
		return 0, badSpec("bit %d out of range in %q", n, string(l))
	}
	return n, nil
}

func badSpec(format string, args ...any) error {
	return common.Errorf(common.ErrMalformedBitSpec, format, args...)
}

// Compile resolves specs into fields, keeping their order.
func Compile(specs []Spec) ([]Field, error) {
	out := make([]Field, 0, len(specs))
	for _, s := range specs {
		if s.Bits == nil {
			return nil, badSpec("field %q has no bits", s.Label)
		}
		m, err := s.Bits.mask()
		if err != nil {
			return nil, err
		}
		if m == 0 {
			return nil, badSpec("field %q selects no bits", s.Label)
		}
		out = append(out, Field{Mask: m, Label: s.Label})
	}
	return out, nil
}

// MustCompile is like Compile but panics on error. Used for static tables.
func MustCompile(specs []Spec) []Field {
	f, err := Compile(specs)
	if err != nil {
		panic(err)
	}
	return f
}

// OneBits describes a register made of 32 one-bit fields named
// name<start>, name<start+1>, ...
func OneBits(name string, start int) []Spec {
	out := make([]Spec, 0, RegBits)
	for i := 0; i < RegBits; i++ {
		out = append(out, S(i, fmt.Sprintf("%s%d", name, i+start)))
	}
	return out
}

// TwoBits describes a register made of 16 two-bit fields named
// name<start>, name<start+1>, ...
func TwoBits(name string, start int) []Spec {
	out := make([]Spec, 0, RegBits/2)
	for i := 0; i < RegBits; i += 2 {
		out = append(out, L(fmt.Sprintf("%d,%d", i, i+1), fmt.Sprintf("%s%d", name, i/2+start)))
	}
	return out
}
