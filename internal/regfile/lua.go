package regfile

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"memalias/internal/bitfield"
	"memalias/internal/common"
	"memalias/internal/regs"
)

// name of the Lua global a register script fills in
const luaRegsGlobal = "regs"

// ParseLuaTables runs a register script and collects the global "regs"
// table:
//
//	regs["ARCH:PXA"] = {
//	  [0x40a00010] = "OSCR",
//	  [0x40a00014] = {"OSSR", {{0, "M0"}, {1, "M1"}, {"3-2", "M23"}}},
//	  ["40e00000"] = {"GPLR0", onebits("PL")},
//	}
//
// onebits(prefix[, start]) and twobits(prefix[, start]) are predeclared.
func ParseLuaTables(name, src string) (map[string]regs.Table, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.LoadLibName, lua.OpenPackage},
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}

	L.SetGlobal(luaRegsGlobal, L.NewTable())
	L.SetGlobal("onebits", L.NewFunction(luaHelper(bitfield.OneBits)))
	L.SetGlobal("twobits", L.NewFunction(luaHelper(bitfield.TwoBits)))

	fn, err := L.LoadString(src)
	if err != nil {
		return nil, common.Errorf(common.ErrRegFile, "%s: %v", name, err)
	}
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return nil, common.Errorf(common.ErrRegFile, "%s: %v", name, err)
	}

	root, ok := L.GetGlobal(luaRegsGlobal).(*lua.LTable)
	if !ok {
		return nil, common.Errorf(common.ErrRegFile, "%s: global %q is not a table", name, luaRegsGlobal)
	}

	out := make(map[string]regs.Table)
	var walkErr error
	root.ForEach(func(k, v lua.LValue) {
		if walkErr != nil {
			return
		}
		key, ok := k.(lua.LString)
		if !ok {
			walkErr = fmt.Errorf("catalog key %v is not a string", k)
			return
		}
		tbl, ok := v.(*lua.LTable)
		if !ok {
			walkErr = fmt.Errorf("%s: register list is not a table", key)
			return
		}
		var t regs.Table
		if t, walkErr = luaTable(string(key), tbl); walkErr == nil {
			out[string(key)] = t
		}
	})
	if walkErr != nil {
		return nil, common.Errorf(common.ErrRegFile, "%s: %v", name, walkErr)
	}
	return out, nil
}

func luaTable(key string, tbl *lua.LTable) (regs.Table, error) {
	t := make(regs.Table)
	var err error
	tbl.ForEach(func(k, v lua.LValue) {
		if err != nil {
			return
		}
		var addr uint64
		switch a := k.(type) {
		case lua.LNumber:
			if a < 0 || a != lua.LNumber(uint64(a)) {
				err = fmt.Errorf("%s: bad address %v", key, a)
				return
			}
			addr = uint64(a)
		case lua.LString:
			if addr, err = parseAddr(string(a)); err != nil {
				err = fmt.Errorf("%s: bad address %q", key, string(a))
				return
			}
		default:
			err = fmt.Errorf("%s: bad address %v", key, k)
			return
		}

		def, derr := luaDef(v)
		if derr != nil {
			err = fmt.Errorf("%s: register %#x: %v", key, addr, derr)
			return
		}
		t[addr] = def
	})
	return t, err
}

func luaDef(v lua.LValue) (regs.Def, error) {
	switch d := v.(type) {
	case lua.LString:
		return regs.Name(string(d)), nil
	case *lua.LTable:
		name, ok := d.RawGetInt(1).(lua.LString)
		if !ok {
			return nil, fmt.Errorf("first element must be the register name")
		}
		fields := d.RawGetInt(2)
		if fields == lua.LNil {
			return regs.Name(string(name)), nil
		}
		ft, ok := fields.(*lua.LTable)
		if !ok {
			return nil, fmt.Errorf("field list of %s is not a table", name)
		}
		specs, err := luaSpecs(ft)
		if err != nil {
			return nil, fmt.Errorf("%s: %v", name, err)
		}
		return regs.WithFields(string(name), specs...), nil
	}
	return nil, fmt.Errorf("unsupported definition %v", v.Type())
}

func luaSpecs(ft *lua.LTable) ([]bitfield.Spec, error) {
	n := ft.Len()
	specs := make([]bitfield.Spec, 0, n)
	for i := 1; i <= n; i++ {
		pair, ok := ft.RawGetInt(i).(*lua.LTable)
		if !ok {
			return nil, fmt.Errorf("field %d is not a {bits, label} pair", i)
		}
		label, ok := pair.RawGetInt(2).(lua.LString)
		if !ok {
			return nil, fmt.Errorf("field %d has no label", i)
		}
		switch b := pair.RawGetInt(1).(type) {
		case lua.LNumber:
			if b != lua.LNumber(int(b)) {
				return nil, fmt.Errorf("field %d: bit %v is not an integer", i, b)
			}
			specs = append(specs, bitfield.S(int(b), string(label)))
		case lua.LString:
			specs = append(specs, bitfield.L(string(b), string(label)))
		default:
			return nil, fmt.Errorf("field %d: bad bit description", i)
		}
	}
	return specs, nil
}

func luaHelper(gen func(string, int) []bitfield.Spec) lua.LGFunction {
	return func(L *lua.LState) int {
		prefix := L.CheckString(1)
		start := L.OptInt(2, 0)
		out := L.NewTable()
		for _, sp := range gen(prefix, start) {
			pair := L.NewTable()
			switch b := sp.Bits.(type) {
			case bitfield.Bit:
				pair.Append(lua.LNumber(b))
			default:
				pair.Append(lua.LString(b.String()))
			}
			pair.Append(lua.LString(sp.Label))
			out.Append(pair)
		}
		L.Push(out)
		return 1
	}
}
