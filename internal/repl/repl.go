// Package repl implements an interactive snippet translator: each
// blank-line-terminated block of source is run through the full
// pipeline and its emitted C (or diagnostics) printed immediately.
// Grounded on the teacher's internal/repl/repl.go liner-based
// read-eval-print loop (history file in os.TempDir, SetMultiLineMode,
// command completion, fatih/color for status output), adapted here
// from "one expression per line" to "one blank-line-delimited module
// per block" since the source subset has no expression-level REPL
// form.
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/sunholo/cgen/internal/pipeline"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	dim   = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

const historyFileName = ".cgen_history"

// REPL is an interactive translation session.
type REPL struct {
	version string
	history []string
}

// New creates a REPL with an unspecified version string.
func New() *REPL { return NewWithVersion("dev") }

// NewWithVersion creates a REPL reporting version in its banner.
func NewWithVersion(version string) *REPL {
	if version == "" {
		version = "dev"
	}
	return &REPL{version: version}
}

// Start runs the read-translate-print loop until EOF or :quit.
func (r *REPL) Start(out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetMultiLineMode(true)
	line.SetCompleter(func(in string) (c []string) {
		if !strings.HasPrefix(in, ":") {
			return nil
		}
		for _, cmd := range []string{":help", ":quit", ":history", ":reset"} {
			if strings.HasPrefix(cmd, in) {
				c = append(c, cmd)
			}
		}
		return c
	})

	histPath := filepath.Join(os.TempDir(), historyFileName)
	if f, err := os.Open(histPath); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	fmt.Fprintf(out, "%s %s\n", bold("cgen"), bold(r.version))
	fmt.Fprintln(out, dim("Type a function or record declaration, blank line to translate, :quit to exit."))
	fmt.Fprintln(out)

	var buf []string
	for {
		prompt := "cgen> "
		if len(buf) > 0 {
			prompt = " ...> "
		}
		input, err := line.Prompt(prompt)
		if err == io.EOF {
			fmt.Fprintln(out, green("\nGoodbye!"))
			break
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("Error"), err)
			continue
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			if len(buf) == 0 {
				continue
			}
			src := strings.Join(buf, "\n")
			buf = nil
			line.AppendHistory(src)
			r.history = append(r.history, src)
			r.translate(src, out)
			continue
		}
		if len(buf) == 0 && strings.HasPrefix(trimmed, ":") {
			if trimmed == ":quit" || trimmed == ":q" || trimmed == ":exit" {
				fmt.Fprintln(out, green("Goodbye!"))
				break
			}
			r.handleCommand(trimmed, out)
			continue
		}
		buf = append(buf, input)
	}

	if f, err := os.Create(histPath); err == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}

func (r *REPL) translate(src string, out io.Writer) {
	res, err := pipeline.Run(pipeline.Config{}, pipeline.Source{Code: src, Filename: "<repl>"})
	if err != nil {
		fmt.Fprintf(out, "%s (%s)\n", red("translation failed"), res.Phase)
		for _, d := range res.Diagnostics {
			fmt.Fprintf(out, "  %s\n", d.String())
		}
		return
	}
	fmt.Fprint(out, res.C)
}

func (r *REPL) handleCommand(cmd string, out io.Writer) {
	switch cmd {
	case ":help":
		fmt.Fprintln(out, "Commands: :help  :history  :reset  :quit")
	case ":history":
		for i, h := range r.history {
			fmt.Fprintf(out, "%d:\n%s\n", i+1, h)
		}
	case ":reset":
		r.history = nil
		fmt.Fprintln(out, dim("history cleared"))
	default:
		fmt.Fprintf(out, "%s: unknown command %s\n", red("Error"), cmd)
	}
}
