package regfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"memalias/internal/bitfield"
	"memalias/internal/common"
	"memalias/internal/regs"
)

// IniFile represents a parsed INI file: section names to key/value pairs.
// Properties before any section land in the "" section. Each entry keeps the
// line it came from for error reporting.
type IniFile struct {
	Sections map[string]map[string]IniValue
	order    []string
}

// IniValue is one key's value and its source line.
type IniValue struct {
	Value string
	Line  int
}

// NewIniFile creates a new empty IniFile
func NewIniFile() *IniFile {
	return &IniFile{
		Sections: make(map[string]map[string]IniValue),
	}
}

// ParseIni reads an INI file from an io.Reader.
func ParseIni(r io.Reader) (*IniFile, error) {
	ini := NewIniFile()
	scanner := bufio.NewScanner(r)
	currentSection := ""
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		// Ignore empty lines and comments
		if line == "" || strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.TrimSpace(line[1 : len(line)-1])
			ini.section(currentSection)
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, common.Errorf(common.ErrRegFile, "line %d: expected key = value, got %q", lineNo, line)
		}
		key := strings.TrimSpace(parts[0])
		ini.section(currentSection)[key] = IniValue{Value: strings.TrimSpace(parts[1]), Line: lineNo}
	}
	if err := scanner.Err(); err != nil {
		return nil, common.Errorf(common.ErrIO, "reading ini: %v", err)
	}
	return ini, nil
}

func (ini *IniFile) section(name string) map[string]IniValue {
	sec, ok := ini.Sections[name]
	if !ok {
		sec = make(map[string]IniValue)
		ini.Sections[name] = sec
		ini.order = append(ini.order, name)
	}
	return sec
}

// SectionNames returns section names in file order.
func (ini *IniFile) SectionNames() []string {
	return ini.order
}

// GetSection returns the key-value map for a given section, or nil if not found
func (ini *IniFile) GetSection(sectionName string) map[string]IniValue {
	return ini.Sections[sectionName]
}

// ParseIniTables reads register tables in INI form:
//
//	[ARCH:PXA]
//	0x40a00010 = OSCR
//	0x40a00014 = OSSR; 0=M0; 1=M1; 3-2=M23
//	0x40e00000 = GPLR0; onebits(PL)
//
// Each section is a catalog key. A value is a register name optionally
// followed by ';' separated bits=label fields, or onebits(prefix[,start]) /
// twobits(prefix[,start]) helpers.
func ParseIniTables(r io.Reader) (map[string]regs.Table, error) {
	ini, err := ParseIni(r)
	if err != nil {
		return nil, err
	}

	out := make(map[string]regs.Table)
	for _, name := range ini.SectionNames() {
		sec := ini.Sections[name]
		if name == "" {
			if len(sec) != 0 {
				return nil, common.Errorf(common.ErrRegFile, "registers defined outside a section")
			}
			continue
		}
		tbl := make(regs.Table, len(sec))
		for key, v := range sec {
			addr, err := parseAddr(key)
			if err != nil {
				return nil, common.Errorf(common.ErrRegFile, "line %d: bad address %q", v.Line, key)
			}
			def, err := parseIniDef(v.Value)
			if err != nil {
				return nil, common.Errorf(common.ErrRegFile, "line %d: %v", v.Line, err)
			}
			tbl[addr] = def
		}
		out[name] = tbl
	}
	return out, nil
}

func parseIniDef(val string) (regs.Def, error) {
	parts := strings.Split(val, ";")
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return nil, fmt.Errorf("missing register name in %q", val)
	}
	if len(parts) == 1 {
		return regs.Name(name), nil
	}

	var specs []bitfield.Spec
	for _, p := range parts[1:] {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if h, ok, err := parseHelper(p); ok {
			if err != nil {
				return nil, err
			}
			specs = append(specs, h...)
			continue
		}
		bits, label, found := strings.Cut(p, "=")
		if !found {
			return nil, fmt.Errorf("field %q is not bits=label", p)
		}
		specs = append(specs, bitfield.L(strings.TrimSpace(bits), strings.TrimSpace(label)))
	}
	return regs.WithFields(name, specs...), nil
}

// parseHelper expands onebits(PFX[,start]) and twobits(PFX[,start]).
func parseHelper(p string) ([]bitfield.Spec, bool, error) {
	var gen func(string, int) []bitfield.Spec
	var args string
	switch {
	case strings.HasPrefix(p, "onebits(") && strings.HasSuffix(p, ")"):
		gen, args = bitfield.OneBits, p[len("onebits("):len(p)-1]
	case strings.HasPrefix(p, "twobits(") && strings.HasSuffix(p, ")"):
		gen, args = bitfield.TwoBits, p[len("twobits("):len(p)-1]
	default:
		return nil, false, nil
	}

	prefix, startStr, hasStart := strings.Cut(args, ",")
	start := 0
	if hasStart {
		n, err := strconv.Atoi(strings.TrimSpace(startStr))
		if err != nil {
			return nil, true, fmt.Errorf("bad start in %q", p)
		}
		start = n
	}
	return gen(strings.TrimSpace(prefix), start), true, nil
}

func parseAddr(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	return strconv.ParseUint(s, 16, 64)
}
