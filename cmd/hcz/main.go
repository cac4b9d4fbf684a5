// Command hcz compresses and decompresses files with Huffman coding.
//
// Usage:
//
//     hcz compress [-ascii] [-bufsize N] [-verify] [-v] <input> <output>
//     hcz decompress [-ascii] [-bufsize N] [-v] <input> <output>
//
// A zero-length input produces a zero-length output.  Setting HCZ_VERBOSE=1
// has the same effect as -v.
//
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"

	huffman "github.com/chronos-tachyon/hcz"
	"github.com/chronos-tachyon/hcz/internal/logger"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errInvalidInputPath = errors.New("input path is missing or unreadable")

type options struct {
	compress bool
	ascii    bool
	bufSize  int
	verify   bool
	verbose  bool
	input    string
	output   string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}

	var opts options
	switch args[0] {
	case "compress":
		opts.compress = true
	case "decompress":
	case "help", "-h", "-help", "--help":
		usage(stderr)
		return exitOK
	default:
		fmt.Fprintf(stderr, "hcz: unknown command %q\n", args[0])
		usage(stderr)
		return exitUsage
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.ascii, "ascii", false, "read or write the human-readable ascii format instead of the bit stream")
	fs.IntVar(&opts.bufSize, "bufsize", huffman.DefaultBufferSize, "bit buffer size in bytes")
	fs.BoolVar(&opts.verbose, "v", false, "log digests and the code table")
	if opts.compress {
		fs.BoolVar(&opts.verify, "verify", false, "decompress the result in memory and compare digests before writing")
	}
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: hcz %s [flags] <input> <output>\n", args[0])
		fs.PrintDefaults()
	}

	positional, err := parseInterspersed(fs, args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			return exitOK
		}
		return exitUsage
	}
	if len(positional) != 2 || positional[1] == "" {
		fs.Usage()
		return exitUsage
	}
	opts.input, opts.output = positional[0], positional[1]
	if os.Getenv("HCZ_VERBOSE") == "1" {
		opts.verbose = true
	}

	log := logger.New(stderr, opts.verbose)
	if err := execute(opts, log, stderr); err != nil {
		log.Errorf("%v", err)
		if errors.Is(err, errInvalidInputPath) {
			fs.Usage()
		}
		return exitError
	}
	return exitOK
}

// parseInterspersed lets flags appear before, between or after the
// positional arguments.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

func execute(opts options, log logger.Logger, stderr io.Writer) error {
	input, err := readInput(opts.input)
	if err != nil {
		return err
	}
	log.Debugf("read %s: %d bytes, xxhash %016x", opts.input, len(input), xxhash.Sum64(input))

	codec := huffman.Codec{BufferSize: opts.bufSize}
	if opts.verbose && !opts.ascii {
		codec.DumpTree = stderr
	}
	var output []byte
	switch {
	case opts.compress && opts.ascii:
		output, err = huffman.CompressASCII(input)
	case opts.compress:
		output, err = codec.Compress(input)
	case opts.ascii:
		output, err = huffman.DecompressASCII(input)
	default:
		output, err = codec.Decompress(input)
	}
	if err != nil {
		return errors.Wrapf(err, "%s", opts.input)
	}

	if opts.verify {
		if err := verify(input, output, codec, opts.ascii); err != nil {
			return err
		}
		log.Debugf("verified round trip of %d bytes", len(input))
	}

	if err := writeOutput(opts.output, output); err != nil {
		return err
	}
	log.Debugf("wrote %s: %d bytes, xxhash %016x", opts.output, len(output), xxhash.Sum64(output))
	if opts.compress && len(input) != 0 {
		log.Infof("%s: %d -> %d bytes (%.02f%%)", opts.input, len(input), len(output), float64(len(output))*100/float64(len(input)))
	}
	return nil
}

func verify(input, archive []byte, codec huffman.Codec, ascii bool) error {
	codec.DumpTree = nil
	var decoded []byte
	var err error
	if ascii {
		decoded, err = huffman.DecompressASCII(archive)
	} else {
		decoded, err = codec.Decompress(archive)
	}
	if err != nil {
		return errors.Wrap(err, "verify")
	}
	if want, got := xxhash.Sum64(input), xxhash.Sum64(decoded); want != got {
		return errors.Errorf("verify: round trip digest %016x does not match input digest %016x", got, want)
	}
	return nil
}

func readInput(path string) ([]byte, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(errInvalidInputPath, "%s: %v", path, err)
	}
	if !fi.Mode().IsRegular() {
		return nil, errors.Wrapf(errInvalidInputPath, "%s: not a regular file", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(errInvalidInputPath, "%s: %v", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return data, nil
}

func writeOutput(path string, data []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.WithStack(cerr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}

func usage(w io.Writer) {
	fmt.Fprint(w, `usage:
    hcz compress [-ascii] [-bufsize N] [-verify] [-v] <input> <output>
    hcz decompress [-ascii] [-bufsize N] [-v] <input> <output>
`)
}
