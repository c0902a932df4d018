package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/mattiaspuhk/sound-btree/btree"
	"github.com/mattiaspuhk/sound-btree/cli"
	"github.com/mattiaspuhk/sound-btree/config"
)

var configPath, traceLevel *string
var shouldSeed, noColor, quiet *bool
var seedNumRecords *int

func main() {
	setupFlags()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}
	setupTracing(cfg.Trace.Level, os.Stderr)
	if !cfg.Output.Color {
		color.NoColor = true
	}

	tree := btree.NewBTree()
	if cfg.Seed.Enabled {
		if err := cli.Seed(tree, cfg.Seed.Records); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Seeded %d records.\n", tree.Len())
	}

	scanner := bufio.NewScanner(os.Stdin)
	demo := cli.NewCli(scanner, os.Stdout, tree, cfg.Output.Color)
	demo.DumpAfterSet = cfg.Output.DumpAfterSet
	demo.Start()
}

// setupTracing routes all tracers to a Go logger writing to w.
func setupTracing(level string, w io.Writer) tracing.Trace {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	t := tracing.Select("btree")
	t.SetOutput(w)
	t.SetTraceLevel(tracing.TraceLevelFromString(level))
	return t
}

// loadConfig reads the config file, if any, and lets explicitly set flags
// override it.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return cfg, err
		}
	}
	var given config.Flags
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			given.Seed = shouldSeed
		case "records":
			given.Records = seedNumRecords
		case "no-color":
			given.NoColor = noColor
		case "quiet":
			given.Quiet = quiet
		case "trace":
			given.Trace = traceLevel
		}
	})
	cfg.Override(given)
	return cfg, cfg.Validate()
}

func setupFlags() {
	configPath = flag.String("config", "", "Read settings from this TOML file.")
	shouldSeed = flag.Bool("seed", false, "Seed the tree with random records created with go-faker.")
	seedNumRecords = flag.Int("records", 1000, "Amount of records to seed the tree with upon startup.")
	noColor = flag.Bool("no-color", false, "Disable colored output.")
	quiet = flag.Bool("quiet", false, "Do not print the tree after every SET.")
	traceLevel = flag.String("trace", "info", "Trace level of the btree package: debug, info or error.")
	flag.Usage = func() {
		fmt.Println("\nB-Tree CLI\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
}
