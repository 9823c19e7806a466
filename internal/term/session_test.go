package term

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenRawOnNonTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "plain"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, err := OpenRaw(int(f.Fd())); !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("OpenRaw on a regular file = %v, want ErrNotTerminal", err)
	}
	if IsTerminal(int(f.Fd())) {
		t.Error("regular file reported as a terminal")
	}
}

func TestRestoreNilSession(t *testing.T) {
	var s *RawSession
	if err := s.Restore(); err != nil {
		t.Errorf("nil session Restore: %v", err)
	}
}

func TestWidthHasFloor(t *testing.T) {
	if w := Width(); w <= 0 {
		t.Errorf("Width = %d, want positive", w)
	}
}
