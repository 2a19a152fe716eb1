// Package regs holds the register catalog: per architecture, a map from
// physical address to a named register and its compiled bit fields.
package regs

import (
	"fmt"
	"maps"
	"sort"

	"memalias/internal/bitfield"
	"memalias/internal/common"
)

// ArchPrefix is prepended to an architecture family name to form the
// fallback catalog key used when no machine specific table exists.
const ArchPrefix = "ARCH:"

// Descriptor is a named register. It is never modified once built.
type Descriptor struct {
	Name   string
	Fields []bitfield.Field
}

// Def is an uncompiled register definition: either Name or WithFields.
type Def interface {
	compile() (*Descriptor, error)
}

// Name is a bare register name with no bit fields.
type Name string

type fieldsDef struct {
	name  string
	specs []bitfield.Spec
}

// WithFields defines a register together with its bit field descriptions.
func WithFields(name string, specs ...bitfield.Spec) Def {
	return fieldsDef{name: name, specs: specs}
}

func (n Name) compile() (*Descriptor, error) {
	return &Descriptor{Name: string(n)}, nil
}

func (d fieldsDef) compile() (*Descriptor, error) {
	f, err := bitfield.Compile(d.specs)
	if err != nil {
		return nil, err
	}
	return &Descriptor{Name: d.name, Fields: f}, nil
}

// Table is the raw register table for one catalog key.
type Table map[uint64]Def

// ArchRegs is the compiled register set for one catalog key.
type ArchRegs map[uint64]*Descriptor

// Catalog maps catalog keys (machine names or ArchPrefix+family) to
// register sets.
type Catalog struct {
	archs map[string]ArchRegs
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{archs: make(map[string]ArchRegs)}
}

// Build compiles raw tables into a catalog. The first malformed bit
// description aborts the build.
func Build(tables map[string]Table) (*Catalog, error) {
	c := NewCatalog()
	if err := c.Merge(tables); err != nil {
		return nil, err
	}
	return c, nil
}

// Merge compiles tables and layers them over the catalog; an address already
// present under the same key is replaced. On error the catalog is unchanged.
func (c *Catalog) Merge(tables map[string]Table) error {
	compiled := make(map[string]ArchRegs, len(tables))
	for key, tbl := range tables {
		ar := make(ArchRegs, len(tbl))
		for addr, def := range tbl {
			if def == nil {
				return common.Errorf(common.ErrBadConfig, "%s: register %#x has no definition", key, addr)
			}
			d, err := def.compile()
			if err != nil {
				return fmt.Errorf("%s: register %#x: %w", key, addr, err)
			}
			ar[addr] = d
		}
		compiled[key] = ar
	}

	for key, ar := range compiled {
		if cur, ok := c.archs[key]; ok {
			maps.Copy(cur, ar)
			continue
		}
		c.archs[key] = ar
	}
	return nil
}

// Get returns the register set stored under key.
func (c *Catalog) Get(key string) (ArchRegs, bool) {
	ar, ok := c.archs[key]
	return ar, ok
}

// Select finds the register set for a detected machine: the machine name
// first, then ArchPrefix+arch. If neither exists an empty set is returned
// with ok false.
func (c *Catalog) Select(name, arch string) (regs ArchRegs, key string, ok bool) {
	if ar, found := c.archs[name]; found {
		return ar, name, true
	}
	key = ArchPrefix + arch
	if ar, found := c.archs[key]; found {
		return ar, key, true
	}
	return ArchRegs{}, "", false
}

// Keys lists the catalog keys in sorted order.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.archs))
	for k := range c.archs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the total number of registers over all keys.
func (c *Catalog) Len() int {
	n := 0
	for _, ar := range c.archs {
		n += len(ar)
	}
	return n
}
