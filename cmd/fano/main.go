// Command fano compresses and decompresses files with Shannon–Fano coding.
//
//	fano encode [-c] [-t] [-runes] [-compression none|zstd|s2|lz4] <input> <output>
//	fano decode [-c] [-t] <input> <output>
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/arloliu/fano"
	"github.com/arloliu/fano/code"
	"github.com/arloliu/fano/format"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// cli carries the per-invocation state of one command.
type cli struct {
	cfg        config
	showCodes  bool
	showTree   bool
	stdout     io.Writer
	logger     *log.Logger
	verboseLog func(format string, v ...any)
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "fano: ", 0)
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}

	c := &cli{stdout: stdout, logger: logger, verboseLog: func(string, ...any) {}}
	cmd, rest := args[0], args[1:]

	var err error
	switch cmd {
	case "encode":
		err = c.parse(cmd, rest, stderr, c.encode)
	case "decode":
		err = c.parse(cmd, rest, stderr, c.decode)
	case "-h", "-help", "--help", "help":
		usage(stdout)
		return exitOK
	default:
		logger.Printf("unknown command %q", cmd)
		usage(stderr)

		return exitUsage
	}

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage):
		return exitUsage
	default:
		logger.Print(err)
		return exitError
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: fano encode [flags] <input> <output>")
	fmt.Fprintln(w, "       fano decode [flags] <input> <output>")
	fmt.Fprintln(w, "run 'fano <command> -h' for the flags of a command")
}

// parse reads the flags and positional arguments of cmd and runs action.
func (c *cli) parse(cmd string, args []string, stderr io.Writer, action func(in, out string) error) error {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)

	codesHelp := "Print the Shannon–Fano code table"
	if cmd == "decode" {
		codesHelp = "Print the decoded text"
	}
	fs.BoolVar(&c.showCodes, "c", false, codesHelp)
	fs.BoolVar(&c.showTree, "t", false, "Print the Shannon–Fano tree")
	configFile := fs.String("config", "", "YAML configuration file")
	verbose := fs.Bool("v", false, "Verbose logging")

	var compression *string
	var runes *bool
	var parallelism *int
	if cmd == "encode" {
		compression = fs.String("compression", "", "Payload compression: none, zstd, s2 or lz4")
		runes = fs.Bool("runes", false, "Use UTF-8 code points instead of bytes as symbols")
		parallelism = fs.Int("parallelism", 0, "Goroutines used to count symbol frequencies")
	}

	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 2 {
		fmt.Fprintf(stderr, "usage: fano %s [flags] <input> <output>\n", cmd)
		fs.PrintDefaults()

		return errUsage
	}

	if *configFile != "" {
		cfg, err := loadConfig(*configFile)
		if err != nil {
			return err
		}
		c.cfg = cfg
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "compression":
			c.cfg.Compression = *compression
		case "runes":
			c.cfg.Runes = *runes
		case "parallelism":
			c.cfg.Parallelism = *parallelism
		case "v":
			c.cfg.Verbose = *verbose
		}
	})
	if c.cfg.Verbose {
		c.verboseLog = c.logger.Printf
	}

	return action(fs.Arg(0), fs.Arg(1))
}

func (c *cli) encode(in, out string) error {
	opts, err := c.cfg.encodeOptions()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		fmt.Fprintln(c.stdout, "Input file is empty.")
	}

	enc, err := fano.Encode(data, opts...)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", in, err)
	}
	blob, err := enc.Bytes()
	if err != nil {
		return fmt.Errorf("encoding %s: %w", in, err)
	}
	if err := os.WriteFile(out, blob, 0o644); err != nil {
		return err
	}

	c.verboseLog("encoded %s: %d bytes -> %d bytes (%d symbols, %d distinct, %d payload bits)",
		in, len(data), len(blob), enc.Container.Header.OriginalLength, enc.Table.Len(), enc.Bits.Len())

	if c.showCodes {
		fmt.Fprintln(c.stdout, "Shannon–Fano codes:")
		if _, err := enc.Table.Dump(c.stdout, enc.Width); err != nil {
			return err
		}
	}
	if c.showTree {
		return c.printTree(enc.Tree, enc.Width)
	}

	return nil
}

func (c *cli) decode(in, out string) error {
	blob, err := os.ReadFile(in)
	if err != nil {
		return err
	}

	dec, err := fano.Decode(blob)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", in, err)
	}
	if dec.Tree.Empty() {
		fmt.Fprintln(c.stdout, "Input file contains no data to decode.")
	}
	if c.showTree {
		if err := c.printTree(dec.Tree, dec.Width); err != nil {
			return err
		}
	}

	if err := os.WriteFile(out, dec.Data, 0o644); err != nil {
		return err
	}
	c.verboseLog("decoded %s: %d bytes -> %d bytes", in, len(blob), len(dec.Data))

	if c.showCodes {
		fmt.Fprintln(c.stdout, "Decoded text:")
		if _, err := io.Copy(c.stdout, bytes.NewReader(dec.Data)); err != nil {
			return err
		}
		fmt.Fprintln(c.stdout)
	}

	return nil
}

func (c *cli) printTree(tree *code.Tree, width format.SymbolWidth) error {
	fmt.Fprintln(c.stdout, "Shannon–Fano tree:")
	_, err := tree.Dump(c.stdout, width)

	return err
}
