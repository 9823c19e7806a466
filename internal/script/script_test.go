package script

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunStringSetAndAlias(t *testing.T) {
	set := map[string]string{}
	aliases := map[string]string{}
	b := Bindings{
		Set:   func(k, v string) error { set[k] = v; return nil },
		Alias: func(from, to string) { aliases[from] = to },
	}

	src := `
gust.set("theme", "matrix")
gust.set("autosave_sec", 60)
gust.set("backup", false)
gust.alias("wq!", "wq")
`
	if err := RunString(src, b); err != nil {
		t.Fatalf("RunString: %v", err)
	}
	if set["theme"] != "matrix" {
		t.Errorf("theme = %q", set["theme"])
	}
	if set["autosave_sec"] != "60" {
		t.Errorf("autosave_sec = %q, want integral rendering", set["autosave_sec"])
	}
	if set["backup"] != "false" {
		t.Errorf("backup = %q", set["backup"])
	}
	if aliases["wq!"] != "wq" {
		t.Errorf("alias = %q", aliases["wq!"])
	}
}

func TestRunStringSetErrorRaises(t *testing.T) {
	b := Bindings{
		Set: func(k, v string) error { return errors.New("unknown key") },
	}
	err := RunString(`gust.set("bogus", 1)`, b)
	if err == nil {
		t.Fatal("set error did not surface")
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Errorf("error %q lacks the failing key", err)
	}
}

func TestRunStringSyntaxError(t *testing.T) {
	if err := RunString(`gust.set(`, Bindings{}); err == nil {
		t.Fatal("syntax error not reported")
	}
}

func TestRunFileMissingIsNotAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "init.lua")
	if err := RunFile(path, Bindings{}); err != nil {
		t.Fatalf("missing init script reported: %v", err)
	}
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "init.lua")
	if err := os.WriteFile(path, []byte(`gust.alias("x", "quit")`), 0o644); err != nil {
		t.Fatal(err)
	}
	var from, to string
	b := Bindings{Alias: func(f, tto string) { from, to = f, tto }}
	if err := RunFile(path, b); err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	if from != "x" || to != "quit" {
		t.Errorf("alias = %q -> %q", from, to)
	}
}

func TestNilBindingsAreSafe(t *testing.T) {
	if err := RunString(`gust.set("a", 1); gust.alias("b", "c")`, Bindings{}); err != nil {
		t.Fatalf("nil bindings: %v", err)
	}
}
