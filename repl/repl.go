/*
File    : twig/repl/repl.go
*/

// Package repl implements the interactive Read-Eval-Print Loop — one of
// the "external collaborators" spec.md section 1 says sits outside the
// interpreter core, consuming it purely through twig.Run. It owns
// readline-based line editing, command history, and colored output;
// it owns no interpreter state of its own beyond the single
// long-lived evaluator a session needs so that declarations from one
// line stay visible on the next.
//
// Grounded on _examples/akashmaji946-go-mix/repl/repl.go: the color
// palette (blue separators, green banner, red errors, cyan info; results
// are printed uncolored),
// the banner/prompt fields, and the readline history/.exit handling all
// carry over; only the parse-eval plumbing changes, since it now goes
// through twig.Run instead of calling an evaluator directly.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/twiglang/twig"
	"github.com/twiglang/twig/config"
	"github.com/twiglang/twig/diag"
	"github.com/twiglang/twig/eval"
)

var (
	blueColor  = color.New(color.FgBlue)
	redColor   = color.New(color.FgRed)
	greenColor = color.New(color.FgGreen)
	cyanColor  = color.New(color.FgCyan)
)

// Repl is one interactive session's configuration.
type Repl struct {
	Banner      string
	Prompt      string
	Line        string
	HistoryFile string
}

// New builds a Repl from a loaded Config. cfg.Color gates fatih/color's
// package-level output globally, exactly the knob the library itself
// exposes for non-interactive or no-color environments.
func New(cfg *config.Config) *Repl {
	color.NoColor = !cfg.Color
	return &Repl{
		Banner:      cfg.Banner,
		Prompt:      cfg.Prompt,
		Line:        strings.Repeat("-", 60),
		HistoryFile: cfg.HistoryFile,
	}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintln(w, "Type an expression or statement and press enter.")
	cyanColor.Fprintln(w, "Type '.exit' to quit.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the REPL loop until the user exits or EOF/Ctrl+D is seen.
// Each accepted line runs through twig.Run against one session
// evaluator shared across the whole loop, so `var`/`fun` declarations
// persist from one line to the next.
func (r *Repl) Start(w io.Writer) {
	r.printBanner(w)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      r.Prompt,
		HistoryFile: r.HistoryFile,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	session := twig.NewSession(w)

	for {
		line, err := rl.Readline()
		if err != nil {
			io.WriteString(w, "Good bye!\n")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			io.WriteString(w, "Good bye!\n")
			return
		}
		rl.SaveHistory(line)

		r.evalLine(w, line, session)
	}
}

func (r *Repl) evalLine(w io.Writer, line string, session *eval.Evaluator) {
	res := twig.Run(line, twig.Options{Out: w, REPLMode: true, Evaluator: session})
	for _, d := range res.Diagnostics {
		if d.Stage == diag.StageRuntime {
			redColor.Fprintln(w, d.RuntimeError())
		} else {
			redColor.Fprintln(w, d.Error())
		}
	}
}
