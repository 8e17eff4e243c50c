// Command cgen translates the statically-typed source subset into
// portable C11. Grounded on the teacher's cmd/ailang/main.go CLI shape
// (stdlib flag package, fatih/color status output, a command-dispatch
// switch over flag.Arg(0)).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/sunholo/cgen/internal/pipeline"
	"github.com/sunholo/cgen/internal/repl"
)

var (
	// Set by ldflags during release builds.
	Version = "dev"

	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

func main() {
	var (
		versionFlag = flag.Bool("version", false, "Print version information")
		helpFlag    = flag.Bool("help", false, "Show help")
		outFlag     = flag.String("o", "", "Output file for translate (default: stdout)")
	)
	flag.Parse()

	if *versionFlag {
		printVersion()
		return
	}
	if *helpFlag || flag.NArg() == 0 {
		printHelp()
		return
	}

	switch flag.Arg(0) {
	case "translate":
		if flag.NArg() < 2 {
			fmt.Fprintf(os.Stderr, "%s: missing file argument\n", red("Error"))
			fmt.Println("Usage: cgen [-o out.c] translate <file>")
			os.Exit(1)
		}
		translate(flag.Arg(1), *outFlag)
	case "check":
		if flag.NArg() < 2 {
			fmt.Fprintf(os.Stderr, "%s: missing file argument\n", red("Error"))
			fmt.Println("Usage: cgen check <file>")
			os.Exit(1)
		}
		check(flag.Arg(1))
	case "repl":
		repl.NewWithVersion(Version).Start(os.Stdout)
	case "version":
		printVersion()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command '%s'\n", red("Error"), flag.Arg(0))
		printHelp()
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("cgen %s\n", bold(Version))
}

func printHelp() {
	fmt.Println(bold("cgen - translate the source subset to C11"))
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  cgen <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Printf("  %s <file>   Translate a file to C and print it (or write with -o)\n", cyan("translate"))
	fmt.Printf("  %s <file>   Parse, analyze, and lower a file without emitting C\n", cyan("check"))
	fmt.Printf("  %s           Start the interactive translation REPL\n", cyan("repl"))
	fmt.Printf("  %s         Print version information\n", cyan("version"))
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -o <file>   Output file for translate (default: stdout)")
	fmt.Println("  --version   Print version information")
	fmt.Println("  --help      Show this help message")
}

func readSource(filename string) string {
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read file '%s': %v\n", red("Error"), filename, err)
		os.Exit(1)
	}
	return string(content)
}

func translate(filename, out string) {
	src := readSource(filename)
	res, err := pipeline.Run(pipeline.Config{}, pipeline.Source{Code: src, Filename: filename})
	if err != nil {
		reportDiagnostics(res)
		os.Exit(1)
	}
	if out == "" {
		fmt.Print(res.C)
		return
	}
	if err := os.WriteFile(out, []byte(res.C), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot write file '%s': %v\n", red("Error"), out, err)
		os.Exit(1)
	}
	fmt.Printf("%s wrote %s\n", green("✓"), out)
}

func check(filename string) {
	src := readSource(filename)
	fmt.Printf("%s checking %s...\n", cyan("→"), filename)
	res, err := pipeline.Run(pipeline.Config{}, pipeline.Source{Code: src, Filename: filename})
	if err != nil {
		reportDiagnostics(res)
		os.Exit(1)
	}
	fmt.Printf("%s no errors found\n", green("✓"))
}

func reportDiagnostics(res pipeline.Result) {
	fmt.Fprintf(os.Stderr, "%s during %s\n", red("Error"), res.Phase)
	for _, d := range res.Diagnostics {
		fmt.Fprintf(os.Stderr, "  %s\n", d.String())
	}
}
