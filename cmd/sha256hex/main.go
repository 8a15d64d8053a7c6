// sha256hex prints SHA-256 digests of files, standard input, or text given
// on the command line, and verifies digest lists in the sha256sum format.
//
// Digests are printed as 64 lowercase hex characters by default. With
// --format multihash or --format cid the digest is wrapped for content
// addressing and encoded with the multibase named by --base.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/zeebo/sha256"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "sha256hex: %v\n", err)
		os.Exit(2)
	}
}

// checkFailed is returned when --check finds mismatched or unreadable files.
// The per-file results have already been printed.
type checkFailed int

func (c checkFailed) Error() string { return fmt.Sprintf("%d checks failed", int(c)) }

func (c checkFailed) ExitCode() int { return 1 }

type options struct {
	texts   []string
	format  string
	base    string
	check   string
	verbose bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var opts options

	flagSet := pflag.NewFlagSet("sha256hex", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringArrayVarP(&opts.texts, "text", "t", nil, "hash this text instead of a file (repeatable)")
	flagSet.StringVarP(&opts.format, "format", "f", "hex", "output format: hex, multihash, or cid")
	flagSet.StringVar(&opts.base, "base", "base32", "multibase encoding for the multihash format")
	flagSet.StringVarP(&opts.check, "check", "c", "", "verify the digests listed in this file (\"-\" for stdin)")
	flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")
	flagSet.Usage = func() {
		fmt.Fprintf(stderr, "Usage: sha256hex [flags] [file ...]\n\n")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if opts.check != "" {
		return runCheck(logger, opts.check, stdin, stdout)
	}

	format, err := formatter(opts.format, opts.base)
	if err != nil {
		return err
	}

	for _, text := range opts.texts {
		logger.Debug("hashing text", "bytes", len(text))
		out, err := format(sha256.Sum256([]byte(text)))
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s  %q\n", out, text)
	}

	files := flagSet.Args()
	if len(files) == 0 && len(opts.texts) == 0 {
		files = []string{"-"}
	}

	for _, name := range files {
		d, err := hashFile(logger, name, stdin)
		if err != nil {
			return err
		}
		out, err := format(d)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s  %s\n", out, name)
	}

	return nil
}

func formatter(format, base string) (func(sha256.Digest) (string, error), error) {
	switch format {
	case "hex":
		return func(d sha256.Digest) (string, error) { return d.Hex(), nil }, nil
	case "multihash":
		return func(d sha256.Digest) (string, error) { return d.Multibase(base) }, nil
	case "cid":
		return func(d sha256.Digest) (string, error) { return d.CID().String(), nil }, nil
	default:
		return nil, errors.Errorf("unknown format %q", format)
	}
}

func hashFile(logger *slog.Logger, name string, stdin io.Reader) (sha256.Digest, error) {
	r := stdin
	if name != "-" {
		fh, err := os.Open(name)
		if err != nil {
			return sha256.Digest{}, errors.WithStack(err)
		}
		defer fh.Close()
		r = fh
	}
	if r == nil {
		return sha256.Digest{}, errors.New("standard input is not available")
	}

	h := sha256.New()
	n, err := io.Copy(h, r)
	if err != nil {
		return sha256.Digest{}, errors.Wrapf(err, "reading %s", name)
	}
	logger.Debug("hashed file", "name", name, "bytes", n)

	return h.Digest(), nil
}

// runCheck verifies lines of the form "<hex>  <name>" or "<hex> *<name>".
func runCheck(logger *slog.Logger, list string, stdin io.Reader, stdout io.Writer) error {
	var r io.Reader = stdin
	if list != "-" {
		fh, err := os.Open(list)
		if err != nil {
			return errors.WithStack(err)
		}
		defer fh.Close()
		r = fh
	}

	failed := 0
	scanner := bufio.NewScanner(r)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		exp, name, ok := parseCheckLine(line)
		if !ok {
			logger.Warn("skipping malformed line", "file", list, "line", lineno)
			continue
		}

		got, err := hashFile(logger, name, nil)
		switch {
		case err != nil:
			logger.Debug("unable to hash", "name", name, "error", err)
			fmt.Fprintf(stdout, "%s: FAILED open or read\n", name)
			failed++
		case got != exp:
			fmt.Fprintf(stdout, "%s: FAILED\n", name)
			failed++
		default:
			fmt.Fprintf(stdout, "%s: OK\n", name)
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "reading %s", list)
	}

	if failed > 0 {
		return checkFailed(failed)
	}
	return nil
}

func parseCheckLine(line string) (sha256.Digest, string, bool) {
	if len(line) < 2*sha256.Size+2 {
		return sha256.Digest{}, "", false
	}

	d, err := sha256.ParseHex(line[:2*sha256.Size])
	if err != nil {
		return sha256.Digest{}, "", false
	}

	rest := line[2*sha256.Size:]
	switch {
	case strings.HasPrefix(rest, "  "), strings.HasPrefix(rest, " *"):
		rest = rest[2:]
	default:
		return sha256.Digest{}, "", false
	}
	if rest == "" {
		return sha256.Digest{}, "", false
	}
	return d, rest, true
}
