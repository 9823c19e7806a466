package dispatcher

import (
	"fmt"
	"strings"
)

// searchPlain prints every line containing the query.
func (c *Context) searchPlain(q string, icase bool) {
	needle := q
	if icase {
		needle = strings.ToLower(q)
	}
	hits := 0
	for i, line := range c.Buf.Lines {
		hay := line
		if icase {
			hay = strings.ToLower(line)
		}
		if strings.Contains(hay, needle) {
			fmt.Fprintf(c.Out, "match at %d: %s\n", i+1, line)
			hits++
		}
	}
	if hits == 0 {
		fmt.Fprintln(c.Out, "no matches")
	}
}

func cmdFind(ctx *Context, arg string) error {
	if arg == "" {
		ctx.warnf("usage: find <text>")
		return nil
	}
	ctx.LastSearch = arg
	ctx.LastICase = false
	ctx.searchPlain(arg, false)
	return nil
}

func cmdFindI(ctx *Context, arg string) error {
	if arg == "" {
		ctx.warnf("usage: findi <text>")
		return nil
	}
	ctx.LastSearch = arg
	ctx.LastICase = true
	ctx.searchPlain(arg, true)
	return nil
}
