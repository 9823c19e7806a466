package dispatcher

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/gustedit/gust/internal/linereader"
)

func cmdPwd(ctx *Context, _ string) error {
	dir, err := os.Getwd()
	if err != nil {
		ctx.errf("pwd: %v", err)
		return nil
	}
	fmt.Fprintln(ctx.Out, dir)
	return nil
}

func cmdCd(ctx *Context, arg string) error {
	if arg == "" {
		ctx.warnf("cd: missing path")
		return nil
	}
	target := linereader.ExpandHome(arg)
	if err := os.Chdir(target); err != nil {
		ctx.errf("cd: %v", err)
		return nil
	}
	ctx.okf("cd: %s", target)
	return nil
}

func cmdLs(ctx *Context, arg string) error {
	all, long := false, false
	target := "."
	for _, tok := range strings.Fields(arg) {
		switch tok {
		case "-a":
			all = true
		case "-l":
			long = true
		case "-la", "-al":
			all = true
			long = true
		default:
			target = tok
		}
	}

	path := linereader.ExpandHome(target)
	info, err := os.Stat(path)
	if err != nil {
		ctx.errf("ls: %v", err)
		return nil
	}

	if !info.IsDir() {
		printEntry(ctx, info.Name(), info.Mode().String(), info.Size(), false, long)
		return nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		ctx.errf("ls: %v", err)
		return nil
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	for _, e := range entries {
		name := e.Name()
		if !all && strings.HasPrefix(name, ".") {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			fmt.Fprintf(ctx.Out, "??????????        ?  %s\n", name)
			continue
		}
		printEntry(ctx, name, fi.Mode().String(), fi.Size(), e.IsDir(), long)
	}
	return nil
}

func printEntry(ctx *Context, name, perms string, size int64, isDir, long bool) {
	if isDir {
		name += "/"
	}
	if long {
		fmt.Fprintf(ctx.Out, "%-10s %8d  %s\n", perms, size, name)
	} else {
		fmt.Fprintln(ctx.Out, name)
	}
}
