package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/go-faker/faker/v4"

	"github.com/mattiaspuhk/sound-btree/btree"
)

type Cli struct {
	scanner    *bufio.Scanner
	out        io.Writer
	tree       *btree.Btree
	visualizer *btree.Visualizer

	// DumpAfterSet prints the tree shape after every SET.
	DumpAfterSet bool

	errColor *color.Color
	okColor  *color.Color
}

func NewCli(s *bufio.Scanner, out io.Writer, t *btree.Btree, useColor bool) *Cli {
	v := &btree.Visualizer{
		Tree:  t,
		Color: useColor,
	}
	c := &Cli{
		scanner:      s,
		out:          out,
		tree:         t,
		visualizer:   v,
		DumpAfterSet: true,
		errColor:     color.New(color.FgRed),
		okColor:      color.New(color.FgGreen),
	}
	if !useColor {
		c.errColor.DisableColor()
		c.okColor.DisableColor()
	}
	return c
}

// Start reads commands until EXIT or end of input.
func (c *Cli) Start() {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		if !c.processInput(c.scanner.Text()) {
			return
		}
		c.printPrompt()
	}
}

func (c *Cli) printHelp() {
	fmt.Fprint(c.out, `
B-Tree CLI

Available Commands:
  SET <key> <val> Insert or update a key-value pair (unsigned integers)
  GET <key>       Retrieve the value for key
  DUMP            Print the shape of the tree
  STATS           Print node, split and height counters
  CHECK           Validate the tree's structural invariants
  SEED <n>        Insert n random key-value pairs
  HELP            Show this message
  EXIT            Terminate this session

`)
}

func (c *Cli) printPrompt() {
	fmt.Fprint(c.out, "> ")
}

// processInput runs one command line. It returns false when the session ends.
func (c *Cli) processInput(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return true
	}
	command := strings.ToLower(fields[0])
	switch command {
	default:
		c.errorf("Unknown command \"%s\"\n", command)
	case "set":
		c.processSetCommand(fields[1:])
	case "get":
		c.processGetCommand(fields[1:])
	case "dump":
		c.visualizer.WriteTo(c.out)
	case "stats":
		c.processStatsCommand()
	case "check":
		c.processCheckCommand()
	case "seed":
		c.processSeedCommand(fields[1:])
	case "help":
		c.printHelp()
	case "exit":
		return false
	}
	return true
}

func (c *Cli) processSetCommand(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(c.out, "Usage: SET <key> <value>")
		return
	}
	key, err := parseUint(args[0])
	if err != nil {
		c.errorf("invalid key: %v\n", err)
		return
	}
	val, err := parseUint(args[1])
	if err != nil {
		c.errorf("invalid value: %v\n", err)
		return
	}
	c.tree.Insert(key, val)
	if c.DumpAfterSet {
		c.visualizer.WriteTo(c.out)
	}
}

func (c *Cli) processGetCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: GET <key>")
		return
	}
	key, err := parseUint(args[0])
	if err != nil {
		c.errorf("invalid key: %v\n", err)
		return
	}
	val, ok := c.tree.Search(key)
	if !ok {
		fmt.Fprintln(c.out, "Key not found.")
		return
	}
	fmt.Fprintln(c.out, val)
}

func (c *Cli) processStatsCommand() {
	s := c.tree.Stats()
	fmt.Fprintf(c.out, "keys=%d nodes=%d splits=%d root-splits=%d height=%d\n",
		s.Keys, s.Nodes, s.Splits, s.RootSplits, s.Height)
}

func (c *Cli) processCheckCommand() {
	if err := c.tree.Check(); err != nil {
		c.errorf("%v\n", err)
		return
	}
	c.okColor.Fprintln(c.out, "OK")
}

func (c *Cli) processSeedCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: SEED <n>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		c.errorf("invalid count %q\n", args[0])
		return
	}
	if err := Seed(c.tree, n); err != nil {
		c.errorf("seeding failed: %v\n", err)
		return
	}
	c.processStatsCommand()
}

func (c *Cli) errorf(format string, args ...interface{}) {
	c.errColor.Fprintf(c.out, format, args...)
}

func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

type record struct {
	Key   uint64
	Value uint64
}

// Seed inserts n key-value pairs generated by faker into t.
func Seed(t *btree.Btree, n int) error {
	for i := 0; i < n; i++ {
		var r record
		if err := faker.FakeData(&r); err != nil {
			return err
		}
		t.Insert(r.Key, r.Value)
	}
	return nil
}
