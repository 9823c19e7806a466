// Package theme holds the color themes and prompt rendering. Theme state is
// carried explicitly by the execution context, never as ambient globals.
package theme

import "strings"

// Theme selects a color palette.
type Theme int

const (
	Default Theme = iota
	Dark
	Neon
	Matrix
	Paper
)

// Parse maps a theme name to a Theme; unknown names fall back to Default.
func Parse(name string) Theme {
	switch strings.ToLower(name) {
	case "dark":
		return Dark
	case "neon":
		return Neon
	case "matrix":
		return Matrix
	case "paper":
		return Paper
	default:
		return Default
	}
}

func (t Theme) String() string {
	switch t {
	case Dark:
		return "dark"
	case Neon:
		return "neon"
	case Matrix:
		return "matrix"
	case Paper:
		return "paper"
	default:
		return "default"
	}
}

// Reset clears all attributes.
const Reset = "\x1b[0m"

// ANSI building blocks.
const (
	dim       = "\x1b[2m"
	green     = "\x1b[32m"
	red       = "\x1b[31m"
	cyan      = "\x1b[36m"
	yellow    = "\x1b[33m"
	brBlack   = "\x1b[90m"
	brWhite   = "\x1b[97m"
	brCyan    = "\x1b[96m"
	brGreen   = "\x1b[92m"
	brYellow  = "\x1b[93m"
	brRed     = "\x1b[91m"
	brMagenta = "\x1b[95m"
	boldCyan  = "\x1b[1;36m"
	boldMag   = "\x1b[1;95m"
	boldGreen = "\x1b[1;32m"
	boldBlack = "\x1b[1;90m"
)

// Palette is the set of color prefixes used by rendering and messages.
// Every field is empty when color output is off, so callers can always
// interpolate the fields unconditionally.
type Palette struct {
	Accent   string
	OK       string
	Warn     string
	Err      string
	Dim      string
	Prompt   string
	Input    string
	Gutter   string
	Title    string
	HelpCmd  string
	HelpArg  string
	HelpText string
}

// PaletteFor returns the palette for a theme. With color false every field
// is empty.
func PaletteFor(t Theme, color bool) Palette {
	if !color {
		return Palette{}
	}
	switch t {
	case Dark:
		return Palette{
			Accent: cyan, OK: green, Warn: yellow, Err: red,
			Dim: brBlack, Prompt: brCyan, Input: brBlack, Gutter: brBlack,
			Title: boldCyan, HelpCmd: brCyan, HelpArg: brBlack, HelpText: brBlack,
		}
	case Neon:
		return Palette{
			Accent: brMagenta, OK: brGreen, Warn: brYellow, Err: brRed,
			Dim: brBlack, Prompt: brMagenta, Input: brCyan, Gutter: brBlack,
			Title: boldMag, HelpCmd: brMagenta, HelpArg: brBlack, HelpText: brBlack,
		}
	case Matrix:
		return Palette{
			Accent: green, OK: brGreen, Warn: yellow, Err: red,
			Dim: brBlack, Prompt: brGreen, Input: brGreen, Gutter: brBlack,
			Title: boldGreen, HelpCmd: brGreen, HelpArg: brBlack, HelpText: brBlack,
		}
	case Paper:
		return Palette{
			Accent: brBlack, OK: green, Warn: yellow, Err: red,
			Dim: brBlack, Prompt: brBlack, Input: brBlack, Gutter: brBlack,
			Title: boldBlack, HelpCmd: brBlack, HelpArg: brBlack, HelpText: brBlack,
		}
	default:
		return Palette{
			Accent: cyan, OK: green, Warn: yellow, Err: red,
			Dim: dim, Prompt: cyan, Input: brWhite, Gutter: brBlack,
			Title: boldCyan, HelpCmd: cyan, HelpArg: dim, HelpText: dim,
		}
	}
}

// Gradient colors each character of s by cycling through a few palette
// colors, used for titles.
func Gradient(s string, pal Palette, color bool) string {
	if !color {
		return s
	}
	colors := []string{pal.Title, pal.Accent, pal.HelpCmd, pal.HelpText}
	var b strings.Builder
	for i, ch := range s {
		b.WriteString(colors[i%len(colors)])
		b.WriteRune(ch)
	}
	b.WriteString(Reset)
	return b.String()
}

// PromptText renders the editor prompt, star-prefixed when the buffer holds
// unsaved changes. The trailing input color is left open; the line reader
// resets after echoing typed input.
func PromptText(dirty bool, pal Palette, color bool) string {
	base := "gust>"
	if dirty {
		base = "*gust>"
	}
	if !color {
		return base + " "
	}
	colors := []string{pal.Title, pal.Accent, pal.HelpCmd, pal.Input}
	var b strings.Builder
	for i, ch := range base {
		b.WriteString(colors[i%len(colors)])
		b.WriteRune(ch)
	}
	b.WriteByte(' ')
	return b.String()
}
