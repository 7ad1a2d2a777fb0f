package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	apppkg "github.com/ked-lab/ked/internal/app"
	"github.com/ked-lab/ked/internal/buffer"
	termpkg "github.com/ked-lab/ked/internal/term"
	renderui "github.com/ked-lab/ked/internal/ui/render"
)

func printHelp() {
	fmt.Print(`ked - Terminal text editor

USAGE:
    ked [OPTIONS] [FILE]

Opens FILE for editing. When FILE is omitted or does not exist yet,
ked starts with an empty document and asks for a name on save.

OPTIONS:
    -h, --help           Show this help message and exit
    -V, --version        Print the version and exit
    -t, --tab-width N    Columns per tab stop (default 8)

KEYS:
    Ctrl-S    Save the document
    Ctrl-Q    Quit (with unsaved changes, press again to discard them)
`)
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "ked: "+format+"\n", args...)
	os.Exit(2)
}

func main() {
	filename := ""
	tabWidth := buffer.DefaultTabWidth

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			printHelp()
			os.Exit(0)
		case arg == "-V" || arg == "--version":
			fmt.Printf("ked %s\n", renderui.Version)
			os.Exit(0)
		case arg == "-t" || arg == "--tab-width":
			if i+1 >= len(args) {
				fail("%s requires a value", arg)
			}
			i++
			tabWidth = parseTabWidth(args[i])
		case strings.HasPrefix(arg, "--tab-width="):
			tabWidth = parseTabWidth(strings.TrimPrefix(arg, "--tab-width="))
		case strings.HasPrefix(arg, "-") && arg != "-":
			fail("unknown option %s (try --help)", arg)
		default:
			if filename != "" {
				fail("expected at most one file argument")
			}
			filename = arg
		}
	}

	console, err := termpkg.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing editor: %v\n", err)
		os.Exit(1)
	}

	// Raw mode comes first: sizing may need to query the terminal with an
	// escape sequence, and the reply is only readable byte-by-byte.
	if err := console.EnterRaw(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing editor: %v\n", err)
		os.Exit(1)
	}
	defer console.Restore()

	editor, err := apppkg.New(console, filename, tabWidth)
	if err != nil {
		console.Restore()
		fmt.Fprintf(os.Stderr, "Error initializing editor: %v\n", err)
		os.Exit(1)
	}

	if err := editor.Run(); err != nil {
		console.Restore()
		fmt.Fprintf(os.Stderr, "Error running editor: %v\n", err)
		os.Exit(1)
	}
}

func parseTabWidth(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		fail("invalid tab width %q", value)
	}
	return n
}
