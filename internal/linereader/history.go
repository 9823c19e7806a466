package linereader

// HistoryLimit is the default input-history capacity.
const HistoryLimit = 800

// History is the bounded, append-only log of submitted input lines.
// Eviction is oldest-first. There is no cross-process persistence.
type History struct {
	entries []string
	limit   int
}

// NewHistory creates a history with the given capacity.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = HistoryLimit
	}
	return &History{limit: limit}
}

// Remember appends a submitted line. Empty lines and lines equal to the
// immediately preceding entry are skipped; a repeated value separated by
// other entries is stored again.
func (h *History) Remember(s string) {
	if s == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == s {
		return
	}
	if len(h.entries) >= h.limit {
		h.entries = append(h.entries[:0], h.entries[1:]...)
	}
	h.entries = append(h.entries, s)
}

// At returns the entry at index i, oldest first.
func (h *History) At(i int) string {
	if i < 0 || i >= len(h.entries) {
		return ""
	}
	return h.entries[i]
}

// Len returns the number of stored entries.
func (h *History) Len() int {
	return len(h.entries)
}
