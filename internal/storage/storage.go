// Package storage persists buffers: whole-file load, atomic save with
// optional backup, and the autosave/recovery side channel.
package storage

import (
	"bufio"
	"fmt"
	"hash/fnv"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// recoverPattern names recovery files in the user's home directory. The hex
// digits are the FNV-1a hash of the buffer's source path.
const recoverPattern = ".gust-recover-%016x"

// Load reads the file at path into terminator-free lines.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readLines(f)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// BackupPath returns the sibling backup path for a save target: the
// extension is replaced with "~" ("main.go" becomes "main.~").
func BackupPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".~"
}

// Save writes lines to path atomically: the content goes to a fresh
// temporary file in the same directory (same filesystem, so the final
// rename is atomic), is flushed and fsynced, and is then renamed onto the
// target. A mid-write crash leaves the target either fully old or fully
// new, never a partial mix.
//
// When backup is set and the target already exists, it is first copied to
// its backup path; a backup failure never aborts the save.
func Save(path string, lines []string, backup bool) error {
	if backup {
		if _, err := os.Stat(path); err == nil {
			_ = copyFile(path, BackupPath(path))
		}
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".gust-*.tmp")
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if err := writeLines(tmp, lines); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// writeLines writes every line followed by exactly one newline, in order,
// including the final line.
func writeLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		if _, err := bw.WriteString(l); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// RecoveryPath returns the recovery file path for a buffer source path:
// a fixed name in the user's home directory derived from a stable,
// non-cryptographic 64-bit hash of the source path string.
func RecoveryPath(source string) string {
	h := fnv.New64a()
	h.Write([]byte(source))
	name := fmt.Sprintf(recoverPattern, h.Sum64())
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "."
	}
	return filepath.Join(home, name)
}

// WriteRecovery writes lines to the recovery file for source. It does not
// touch the original file.
func WriteRecovery(source string, lines []string) (string, error) {
	path := RecoveryPath(source)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := writeLines(f, lines); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}

// ReadRecovery loads the recovery file previously written for source.
func ReadRecovery(source string) ([]string, error) {
	return Load(RecoveryPath(source))
}
