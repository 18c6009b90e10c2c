// Command simpil runs a simpIL script from a file, or starts an interactive
// prompt when no file is given.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"github.com/pterm/pterm"

	"github.com/LiHRaM/simpil"
)

const appName = "simpil"

// exitAssert is the dedicated exit code for a failed assert. It must stay
// distinguishable from every other termination path.
const (
	exitOK     = 0
	exitError  = 1
	exitUsage  = 2
	exitAssert = 1337
)

var (
	valueColor = pterm.NewStyle(pterm.FgLightBlue)
	errColor   = pterm.NewStyle(pterm.FgRed)
	infoColor  = pterm.NewStyle(pterm.FgLightGreen)
)

func main() {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a simpil.toml config file")
	traceAST := fs.Bool("ast", false, "print the parsed program before running")
	steps := fs.Int("steps", 0, "statement execution cap (0 = unlimited)")
	fs.Usage = usage(fs)
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(exitUsage)
	}
	if fs.NArg() > 1 {
		fs.Usage()
		os.Exit(exitUsage)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(exitError)
	}
	if *traceAST {
		cfg.TraceAST = true
	}
	if *steps > 0 {
		cfg.StepLimit = *steps
	}

	if fs.NArg() == 1 {
		os.Exit(runFile(fs.Arg(0), cfg))
	}
	os.Exit(runPrompt(cfg))
}

func usage(fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintf(fs.Output(), `Usage:
  %s [flags] [file]

Runs the simpIL script in file, or starts an interactive prompt when no file
is given. Settings are read from %s in the working directory if present.

Flags:
`, appName, simpil.ConfigFileName)
		fs.PrintDefaults()
	}
}

// loadConfig resolves the effective configuration: an explicit -config path
// must exist; otherwise simpil.toml is picked up only when present.
func loadConfig(path string) (*simpil.Config, error) {
	if path != "" {
		return simpil.LoadConfig(path)
	}
	if _, err := os.Stat(simpil.ConfigFileName); err == nil {
		return simpil.LoadConfig(simpil.ConfigFileName)
	}
	return simpil.DefaultConfig(), nil
}

// -----------------------------------------------------------------------------
// file mode
// -----------------------------------------------------------------------------

func runFile(file string, cfg *simpil.Config) int {
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return exitError
	}
	return run(string(src), file, cfg)
}

// run executes one complete source text and prints the per-statement values.
func run(src, name string, cfg *simpil.Config) int {
	reporter := &simpil.ConsoleReporter{Out: os.Stderr, Color: cfg.Color}
	stmts, err := simpil.ParseSource(src, reporter)
	if err != nil {
		printErr(cfg, simpil.WrapErrorWithName(err, name, src))
		return exitError
	}
	if cfg.TraceAST {
		infoColor.Print(simpil.FormatProgram(stmts))
	}

	ip := simpil.NewInterpreter(stmts)
	ip.StepLimit = cfg.StepLimit
	values, err := ip.Run()
	for _, v := range values {
		if cfg.Color {
			valueColor.Println(v)
		} else {
			fmt.Println(v)
		}
	}
	if err != nil {
		printErr(cfg, err)
		var ae *simpil.AssertionError
		if errors.As(err, &ae) {
			return exitAssert
		}
		return exitError
	}
	return exitOK
}

func printErr(cfg *simpil.Config, err error) {
	if cfg.Color {
		fmt.Fprintln(os.Stderr, errColor.Sprint(err.Error()))
		return
	}
	fmt.Fprintln(os.Stderr, err.Error())
}

// -----------------------------------------------------------------------------
// interactive prompt
// -----------------------------------------------------------------------------

func runPrompt(cfg *simpil.Config) int {
	fmt.Println("simpIL interactive prompt. Ctrl+D exits, :quit exits.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, cfg.HistoryFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(cfg.Prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return exitOK
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return exitError
		}

		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}
		if strings.HasPrefix(code, ":") {
			if strings.EqualFold(code, ":quit") {
				return exitOK
			}
			fmt.Println("unknown command. Type :quit to exit.")
			continue
		}

		ln.AppendHistory(line)

		// Each submitted line is a complete, self-contained program.
		if ret := run(code, "<repl>", cfg); ret == exitAssert {
			// A failed assert stops the whole process, prompt included.
			return exitAssert
		}
	}
}
