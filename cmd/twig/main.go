/*
File    : twig/cmd/twig/main.go
*/

// Command twig is the CLI entry point: the other external collaborator
// spec.md section 1 keeps outside the core. It owns argument parsing,
// file loading, and translating a twig.RunResult's ExitKind into the
// conventional process exit codes (0 success, 65 syntax/static error,
// 70 runtime error) — the core itself never calls os.Exit.
//
// Grounded on _examples/akashmaji946-go-mix/main/main.go: the
// --help/--version flags, file-mode vs. REPL-mode dispatch, and the
// colored error output all carry over from there.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/twiglang/twig"
	"github.com/twiglang/twig/config"
	"github.com/twiglang/twig/diag"
	"github.com/twiglang/twig/repl"
)

const version = "0.1.0"

var redColor = color.New(color.FgRed)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--help", "-h":
			printHelp()
			return
		case "--version", "-v":
			fmt.Printf("twig %s\n", version)
			return
		}
	}

	cfg, err := config.Load(".twigrc.yaml")
	if err != nil {
		redColor.Fprintf(os.Stderr, "twig: %v\n", err)
		os.Exit(1)
	}
	color.NoColor = !cfg.Color

	if len(os.Args) > 1 {
		runFile(os.Args[1])
		return
	}
	repl.New(cfg).Start(os.Stdout)
}

func printHelp() {
	fmt.Println("twig - a small tree-walking interpreter")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  twig                start the interactive REPL")
	fmt.Println("  twig <path>          run a .twig source file")
	fmt.Println("  twig --help          show this message")
	fmt.Println("  twig --version       show the interpreter version")
}

// runFile reads and runs one source file, exiting with the conventional
// 0/65/70 codes spec.md section 6 describes (success, syntax-or-static
// error, runtime error) — twig.Run itself reports ExitKind but never
// calls os.Exit, so that mapping is the CLI's job alone.
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "twig: could not read '%s': %v\n", path, err)
		os.Exit(1)
	}

	res := twig.Run(string(source), twig.Options{Out: os.Stdout})
	for _, d := range res.Diagnostics {
		if d.Stage == diag.StageRuntime {
			redColor.Fprintln(os.Stderr, d.RuntimeError())
		} else {
			redColor.Fprintln(os.Stderr, d.Error())
		}
	}

	switch res.Exit {
	case diag.ExitSyntaxOrStatic:
		os.Exit(65)
	case diag.ExitRuntime:
		os.Exit(70)
	}
}
