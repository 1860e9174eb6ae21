package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/gohan"
	"pkt.systems/version"
)

func init() {
	version.SetDefaultModule("pkt.systems/gohan")
}

func main() {
	var (
		configPath  string
		showVersion bool
	)

	flags := pflag.NewFlagSet("gohan", pflag.ExitOnError)
	flags.StringVarP(&configPath, "config", "c", "", "Config file (default $XDG_CONFIG_HOME/gohan/gohan.yaml)")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")
	flags.StringP("output", "o", "", "Output file instead of stdout")
	flags.Bool("tokens", false, "Dump the token stream instead of HTML")
	flags.Bool("ast", false, "Dump the document tree instead of HTML")
	flags.IntP("width", "w", 0, "Literal width in dumps (0 uses terminal width if available)")
	flags.String("wrap", "", "Wrap the HTML output in an element, e.g. article")
	flags.Bool("strip-front-matter", true, "Remove a leading front matter block")
	flags.Bool("nfc", false, "Normalize input to Unicode NFC")
	flags.Bool("validate", true, "Reject invalid UTF-8 and binary input")
	flags.Duration("timeout", 30*time.Second, "Time limit for reading inputs (0 disables)")
	flags.BoolP("verbose", "v", false, "Log diagnostics to stderr")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: gohan [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nInputs are files, file:// or http(s):// URLs. Without inputs, Markdown is read from stdin.")
		fmt.Fprintln(os.Stderr, "Flags can also be set in the config file or as GOHAN_<FLAG> environment variables.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	if showVersion {
		fmt.Fprintln(os.Stdout, version.Module(), version.Current())
		return
	}

	v, err := loadConfig(flags, configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	opts := optionsFrom(v)
	log := newLogger(os.Stderr, opts.verbose)
	if used := v.ConfigFileUsed(); used != "" {
		log.Debug().Str("path", used).Msg("loaded config")
	}
	if opts.tokens && opts.ast {
		fmt.Fprintln(os.Stderr, "--tokens and --ast are mutually exclusive")
		os.Exit(2)
	}

	args := flags.Args()
	if len(args) == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		flags.Usage()
		os.Exit(2)
	}

	if code := run(opts, args, log); code != 0 {
		os.Exit(code)
	}
}

func run(opts options, args []string, log zerolog.Logger) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	start := time.Now()
	src, err := readInputs(ctx, http.DefaultClient, args, os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		return 1
	}

	var writer io.Writer = os.Stdout
	if opts.output != "" {
		f, err := createOutput(opts.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open output: %v\n", err)
			return 1
		}
		defer func() { _ = f.Close() }()
		writer = f
	}

	out := &countingWriter{w: writer}
	switch {
	case opts.tokens || opts.ast:
		err = dump(bytes.NewReader(src), out, opts)
	default:
		err = gohan.RenderTo(gohan.RenderRequest{
			Reader:  bytes.NewReader(src),
			Writer:  out,
			Options: opts.renderOptions(),
		})
		if err == nil && isTerminal(writer) {
			_, err = io.WriteString(out, "\n")
		}
	}
	if err != nil {
		log.Debug().Err(err).Msg("render failed")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	log.Debug().
		Int("inputs", len(args)).
		Str("read", humanize.Bytes(uint64(len(src)))).
		Str("written", humanize.Bytes(uint64(out.n))).
		Dur("took", time.Since(start)).
		Msg("done")
	return 0
}

func dump(r io.Reader, w io.Writer, opts options) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("dump: read: %w", err)
	}
	src, err = gohan.PrepareSource(src, opts.renderOptions()...)
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	width := resolveWidth(opts.width, w)
	toks := gohan.Scan(string(src))
	if opts.tokens {
		return gohan.DumpTokens(w, toks, width)
	}
	return gohan.DumpTree(w, gohan.Parse(toks), width)
}

func resolveWidth(width int, w io.Writer) int {
	if width > 0 {
		return width
	}
	if !isTerminal(w) {
		return 0
	}
	return terminalWidth(0)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func isTerminal(w io.Writer) bool {
	if c, ok := w.(*countingWriter); ok {
		w = c.w
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
