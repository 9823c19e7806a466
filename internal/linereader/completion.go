package linereader

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

// complete computes the candidate set for the current input.
//
// An empty buffer completes to every registered command; a single token not
// yet followed by whitespace prefix-filters the commands. Anything later in
// the line completes against the filesystem, with the directory-change
// command restricted to directories.
func (r *Reader) complete(buf string) []string {
	toks := strings.Fields(buf)
	fresh := buf != "" && endsWithSpace(buf)
	if len(toks) == 0 {
		return append([]string(nil), r.commands...)
	}
	if len(toks) == 1 && !fresh {
		pref := toks[0]
		var out []string
		for _, c := range r.commands {
			if strings.HasPrefix(c, pref) {
				out = append(out, c)
			}
		}
		return out
	}
	last := ""
	if !fresh {
		last = toks[len(toks)-1]
	}
	if toks[0] == "cd" {
		return completeDirsOnly(last)
	}
	return completeFS(last)
}

func endsWithSpace(s string) bool {
	runes := []rune(s)
	return len(runes) > 0 && unicode.IsSpace(runes[len(runes)-1])
}

// ExpandHome expands a leading ~ or ~/ to the user's home directory.
func ExpandHome(token string) string {
	if token == "~" {
		return homeDir()
	}
	if strings.HasPrefix(token, "~/") {
		return filepath.Join(homeDir(), token[2:])
	}
	return token
}

func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home
	}
	return "."
}

// splitToken splits a path token at its last separator into the directory
// to scan and the name prefix to match. A bare name scans ".".
func splitToken(token string) (dir, base string) {
	if idx := strings.LastIndexByte(token, '/'); idx >= 0 {
		return token[:idx], token[idx+1:]
	}
	return ".", token
}

// completeFS returns directory entries matching the last token's path
// segment, lexicographically sorted, with directories suffixed by a
// separator.
func completeFS(token string) []string {
	token = ExpandHome(token)
	dir, base := splitToken(token)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, base) {
			continue
		}
		path := name
		if dir != "." {
			path = dir + "/" + name
		}
		if e.IsDir() {
			path += "/"
		}
		out = append(out, path)
	}
	sort.Strings(out)
	return out
}

// completeDirsOnly is completeFS restricted to directories.
func completeDirsOnly(token string) []string {
	token = ExpandHome(token)
	dir, base := splitToken(token)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasPrefix(name, base) {
			continue
		}
		if dir == "." {
			out = append(out, name+"/")
		} else {
			out = append(out, dir+"/"+name+"/")
		}
	}
	sort.Strings(out)
	return out
}

// applyCompletion replaces the last whitespace-delimited token of buf with
// the candidate, or the entire buffer when it holds at most one token.
func applyCompletion(buf, candidate string) string {
	if idx := strings.LastIndexByte(buf, ' '); idx >= 0 {
		return buf[:idx+1] + candidate
	}
	return candidate
}
