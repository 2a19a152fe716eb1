package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/profile"
	"golang.org/x/term"

	"memalias/common"
	"memalias/internal/translate"
)

func main() {
	os.Exit(run())
}

// run returns the exit code so deferred cleanup happens before os.Exit.
func run() int {
	inPath := flag.String("in", "", "Trace file to translate (default stdin)")
	regFiles := flag.String("regs", "", "Comma separated register definition files (.ini, .lua)")
	noBuiltin := flag.Bool("no_builtin", false, "Do not load the built-in register tables")
	skipBad := flag.Bool("skip_bad_lines", false, "Echo lines with malformed numbers instead of stopping")
	colorMode := flag.String("color", "auto", "Colour output: auto, always or never")
	logLevel := flag.String("log", "warning", "Log level: debug, info, warning or error")
	profMode := flag.String("profile", "", "Write a cpu or mem profile to the current directory")
	stats := flag.Bool("stats", false, "Print line counts to stderr when done")

	flag.Parse()

	sev, err := common.ParseSeverity(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "memalias : Error: %v\n", err)
		return 1
	}
	logger := common.NewStdLogger(sev)

	switch *profMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	default:
		fmt.Fprintf(os.Stderr, "memalias : Error: unknown -profile mode %q\n", *profMode)
		return 1
	}

	var useColor bool
	switch *colorMode {
	case "auto":
		useColor = term.IsTerminal(int(os.Stdout.Fd()))
	case "always":
		useColor = true
	case "never":
	default:
		fmt.Fprintf(os.Stderr, "memalias : Error: unknown -color mode %q\n", *colorMode)
		return 1
	}

	cfg := translate.Config{
		Output:       os.Stdout,
		NoBuiltin:    *noBuiltin,
		SkipBadLines: *skipBad,
		Color:        useColor,
		Logger:       logger,
	}
	for _, p := range strings.Split(*regFiles, ",") {
		if p = strings.TrimSpace(p); p != "" {
			cfg.RegFiles = append(cfg.RegFiles, p)
		}
	}

	if *inPath != "" {
		f, err := os.Open(*inPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "memalias : Error: %v\n", err)
			return 1
		}
		defer f.Close()
		cfg.Input = f
	} else {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			logger.Infof("reading trace from terminal, end with EOF")
		}
		cfg.Input = os.Stdin
	}

	st, err := translate.Run(cfg)
	if *stats {
		fmt.Fprintf(os.Stderr, "memalias : %d lines, %d translated, %d unwatched, %d skipped\n",
			st.Lines, st.Translated, st.Defaulted, st.Skipped)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
