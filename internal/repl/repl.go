// internal/repl/repl.go
package repl

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/exp/slices"

	"ctrlplay/internal/diagram"
	"ctrlplay/internal/eval"
	"ctrlplay/internal/hostenv"
	"ctrlplay/internal/value"
)

// Start runs an interactive read-eval-print loop: one fresh lex/parse
// pass per line against a persistent Evaluator, so assignments made on
// one line are visible on the next.
func Start(host hostenv.Env) {
	interactive := isatty.IsTerminal(os.Stdin.Fd())
	prompt := ">>> "
	if !interactive {
		prompt = ""
	}

	fmt.Println("ctrlplay REPL | type :exit to quit, :env to list bound names")
	scanner := bufio.NewScanner(os.Stdin)
	ev := eval.NewEvaluator(host)

	for {
		if interactive {
			fmt.Print(prompt)
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()

		switch strings.TrimSpace(line) {
		case ":exit":
			return
		case ":env":
			printEnv(ev)
			continue
		case "":
			continue
		}

		outputs := eval.EvalOn(ev, line)
		for _, out := range outputs {
			printOutput(out)
		}
	}
}

func printEnv(ev *eval.Evaluator) {
	names := ev.Env.Names()
	slices.Sort(names)
	for _, name := range names {
		fmt.Println(name)
	}
}

func printOutput(out *value.Output) {
	switch out.Kind {
	case value.OutputErr:
		fmt.Println("error:", out.Err.Error())
	case value.OutputText:
		fmt.Println(out.Text)
	case value.OutputPlot:
		fmt.Printf("<plot %dx%d>\n", out.Plot.Rows(), out.Plot.Cols())
	case value.OutputSystemDiagram:
		fmt.Print(diagram.Render(out.Diagram))
	}
}
