// cmd/ctrlplay/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"ctrlplay/internal/diagram"
	"ctrlplay/internal/eval"
	"ctrlplay/internal/hostenv"
	"ctrlplay/internal/repl"
	"ctrlplay/internal/value"
)

// commandAliases holds single-letter shortcuts for the two subcommands
// this DSL has.
var commandAliases = map[string]string{
	"r": "run",
	"i": "repl",
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		showUsage()
		return
	}

	cmd := args[0]
	if alias, ok := commandAliases[cmd]; ok {
		cmd = alias
	}

	switch cmd {
	case "--help", "-h", "help":
		showUsage()
	case "--version", "-v", "version":
		fmt.Println("ctrlplay 0.1.0")
	case "repl":
		repl.Start(hostenv.MapEnv{})
	case "run":
		if len(args) < 2 {
			log.Fatal("run requires a script path")
		}
		runFile(args[1])
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", cmd)
		showUsage()
		os.Exit(1)
	}
}

// runFile evaluates a whole program read from path, with load() served
// by a directory-backed host: every sibling file ending in .csv is
// loaded eagerly into an in-memory MapEnv keyed by its base name, so
// load("data.csv") resolves the same way in a script as it would from
// an uploaded blob in the hosted evaluator.
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("could not read file: %v", err)
	}

	host := directoryHost(filepath.Dir(path))
	outputs := eval.EvalSource(string(source), host)
	for _, out := range outputs {
		printOutput(out)
	}
}

func directoryHost(dir string) hostenv.MapEnv {
	host := hostenv.MapEnv{}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return host
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".csv") {
			continue
		}
		text, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		host[entry.Name()] = string(text)
	}
	return host
}

func printOutput(out *value.Output) {
	switch out.Kind {
	case value.OutputErr:
		fmt.Fprintln(os.Stderr, "error:", out.Err.Error())
	case value.OutputText:
		fmt.Println(out.Text)
	case value.OutputPlot:
		fmt.Printf("<plot %dx%d>\n", out.Plot.Rows(), out.Plot.Cols())
	case value.OutputSystemDiagram:
		fmt.Print(diagram.Render(out.Diagram))
	}
}

func showUsage() {
	fmt.Println("ctrlplay - discrete-time control systems playground")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  ctrlplay run <file>   Evaluate a program file           (alias: r)")
	fmt.Println("  ctrlplay repl         Start the interactive REPL        (alias: i)")
	fmt.Println()
	fmt.Println("  ctrlplay help         Show this message")
	fmt.Println("  ctrlplay version      Show the version")
}
