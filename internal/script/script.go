// Package script runs the optional Lua init hook. The script sees a small
// `gust` table for adjusting settings and defining command aliases; errors
// are reported and non-fatal.
package script

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"
)

// Bindings are the editor callbacks exposed to the init script.
type Bindings struct {
	// Set applies a configuration key/value pair; the error is raised
	// into the script.
	Set func(key, value string) error
	// Alias registers a command alias.
	Alias func(from, to string)
}

// RunFile executes the Lua script at path with the bindings installed.
// A missing file is not an error.
func RunFile(path string, b Bindings) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	L := lua.NewState()
	defer L.Close()
	register(L, b)
	if err := L.DoFile(path); err != nil {
		return fmt.Errorf("init script %s: %w", path, err)
	}
	return nil
}

// RunString executes an inline script with the bindings installed.
func RunString(src string, b Bindings) error {
	L := lua.NewState()
	defer L.Close()
	register(L, b)
	if err := L.DoString(src); err != nil {
		return fmt.Errorf("init script: %w", err)
	}
	return nil
}

// register installs the `gust` table into the state.
func register(L *lua.LState, b Bindings) {
	tbl := L.NewTable()

	L.SetField(tbl, "set", L.NewFunction(func(L *lua.LState) int {
		key := L.CheckString(1)
		value := scalarString(L.Get(2))
		if b.Set == nil {
			return 0
		}
		if err := b.Set(key, value); err != nil {
			L.RaiseError("gust.set(%q): %s", key, err.Error())
		}
		return 0
	}))

	L.SetField(tbl, "alias", L.NewFunction(func(L *lua.LState) int {
		from := L.CheckString(1)
		to := L.CheckString(2)
		if b.Alias != nil {
			b.Alias(from, to)
		}
		return 0
	}))

	L.SetGlobal("gust", tbl)
}

// scalarString renders a Lua scalar as the string form the settings layer
// expects. Integral numbers drop the decimal point.
func scalarString(lv lua.LValue) string {
	switch v := lv.(type) {
	case lua.LBool:
		if bool(v) {
			return "true"
		}
		return "false"
	case lua.LNumber:
		f := float64(v)
		if f == float64(int64(f)) {
			return fmt.Sprintf("%d", int64(f))
		}
		return fmt.Sprintf("%g", f)
	case lua.LString:
		return string(v)
	default:
		return lv.String()
	}
}
