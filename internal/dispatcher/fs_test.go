package dispatcher

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// chdir stands in for t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func TestPwdAndCd(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	ctx, out := testContext(t)
	d := New()
	dispatch(t, d, ctx, "cd sub")
	if !strings.Contains(out.String(), "cd: sub") {
		t.Errorf("cd output = %q", out.String())
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(wd) != "sub" {
		t.Errorf("wd = %q", wd)
	}

	out.Reset()
	dispatch(t, d, ctx, "pwd")
	if !strings.Contains(out.String(), "sub") {
		t.Errorf("pwd output = %q", out.String())
	}
}

func TestCdMissingTarget(t *testing.T) {
	ctx, out := testContext(t)
	d := New()
	dispatch(t, d, ctx, "cd /definitely/not/here")
	if !strings.Contains(out.String(), "cd: ") {
		t.Errorf("output = %q", out.String())
	}
}

func TestLs(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "vis.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".hidden"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	ctx, out := testContext(t)
	d := New()

	dispatch(t, d, ctx, "ls")
	got := out.String()
	if !strings.Contains(got, "vis.txt") || !strings.Contains(got, "sub/") {
		t.Errorf("ls output = %q", got)
	}
	if strings.Contains(got, ".hidden") {
		t.Error("dotfile listed without -a")
	}

	out.Reset()
	dispatch(t, d, ctx, "ls -a")
	if !strings.Contains(out.String(), ".hidden") {
		t.Errorf("ls -a output = %q", out.String())
	}

	out.Reset()
	dispatch(t, d, ctx, "ls -l")
	if !strings.Contains(out.String(), "-rw-") {
		t.Errorf("ls -l output = %q", out.String())
	}
}
