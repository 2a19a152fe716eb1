// Package regfile loads register tables from definition files so machines
// not compiled into the binary can be translated.
package regfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"memalias/internal/common"
	"memalias/internal/regs"
)

// Load reads register definition files in order. The format follows the file
// extension: ".ini" or ".lua". Tables for the same key from later files
// are merged over earlier ones.
func Load(paths ...string) (map[string]regs.Table, error) {
	out := make(map[string]regs.Table)
	for _, p := range paths {
		tables, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		for key, tbl := range tables {
			cur, ok := out[key]
			if !ok {
				out[key] = tbl
				continue
			}
			for addr, def := range tbl {
				cur[addr] = def
			}
		}
	}
	return out, nil
}

// LoadFile reads a single register definition file.
func LoadFile(path string) (map[string]regs.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.Errorf(common.ErrIO, "%v", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ini":
		tables, err := ParseIniTables(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return tables, nil
	case ".lua":
		return ParseLuaTables(path, string(data))
	default:
		return nil, common.Errorf(common.ErrRegFile, "%s: unknown register file type %q", path, ext)
	}
}
