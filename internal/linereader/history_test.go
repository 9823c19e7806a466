package linereader

import (
	"fmt"
	"testing"
)

func TestHistoryRemember(t *testing.T) {
	h := NewHistory(10)
	h.Remember("open a.go")
	h.Remember("")
	h.Remember("open a.go")
	h.Remember("write")
	h.Remember("open a.go")
	if h.Len() != 3 {
		t.Fatalf("Len = %d, want 3", h.Len())
	}
	want := []string{"open a.go", "write", "open a.go"}
	for i, w := range want {
		if got := h.At(i); got != w {
			t.Errorf("At(%d) = %q, want %q", i, got, w)
		}
	}
}

func TestHistoryEviction(t *testing.T) {
	h := NewHistory(3)
	for i := 0; i < 5; i++ {
		h.Remember(fmt.Sprintf("cmd %d", i))
	}
	if h.Len() != 3 {
		t.Fatalf("Len = %d, want 3", h.Len())
	}
	if got := h.At(0); got != "cmd 2" {
		t.Errorf("oldest = %q, want %q", got, "cmd 2")
	}
	if got := h.At(2); got != "cmd 4" {
		t.Errorf("newest = %q, want %q", got, "cmd 4")
	}
}

func TestHistoryAtOutOfRange(t *testing.T) {
	h := NewHistory(10)
	h.Remember("x")
	if got := h.At(-1); got != "" {
		t.Errorf("At(-1) = %q, want empty", got)
	}
	if got := h.At(1); got != "" {
		t.Errorf("At(1) = %q, want empty", got)
	}
}

func TestNewHistoryDefaultLimit(t *testing.T) {
	h := NewHistory(0)
	if h.limit != HistoryLimit {
		t.Errorf("limit = %d, want %d", h.limit, HistoryLimit)
	}
}
