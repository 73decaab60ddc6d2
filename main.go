package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirkon/forsight/internal/forsight"
	"github.com/sirkon/forsight/internal/report"
)

var exit = os.Exit

func main() {
	exit(forsightMain(os.Stdout, os.Stderr, os.Args...))
}

func forsightMain(stdout, stderr io.Writer, args ...string) int {
	flags := flag.NewFlagSet(filepath.Base(args[0]), flag.ContinueOnError)
	flags.SetOutput(stderr)

	var configPath string
	flags.StringVar(&configPath, "config", "",
		"path to a YAML file with spelling overrides")
	var at int
	flags.IntVar(&at, "at", -1,
		"report whether this byte offset falls inside a recognized loop")

	if err := flags.Parse(args[1:]); err != nil {
		return 2
	}
	dumps := flags.Args()
	if len(dumps) == 0 {
		fmt.Fprintln(stderr, "usage: forsight [-config config.yaml] [-at offset] dump.yaml …")
		return 2
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "load config: %s\n", err)
		return 2
	}

	var rep report.Reporter
	eng := forsight.New(cfg.Spellings, &rep)

	for _, dump := range dumps {
		data, err := os.ReadFile(dump)
		if err != nil {
			fmt.Fprintf(stderr, "read dump: %s\n", err)
			return 2
		}

		eng.AnalyzeDump(filepath.Base(dump), data)
		if at >= 0 {
			eng.Suppress(filepath.Base(dump), at)
		}
	}

	rep.Summary(stdout)
	return 0
}
