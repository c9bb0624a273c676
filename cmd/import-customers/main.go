package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mohammadpnp/customer-import/internal/client"
	infrafile "github.com/mohammadpnp/customer-import/internal/infrastructure/file"
	"github.com/mohammadpnp/customer-import/internal/importfile"
	"go.uber.org/zap"
)

const defaultAPIURL = "http://localhost:8080"

type options struct {
	file   string
	format string
	url    string
	token  string
	sample bool
}

var errValidation = errors.New("validation failed")

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, logger); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			logger.Error("import customers", zap.Error(err))
		}
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("import-customers", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.file, "file", "", `customer file (.csv or .json), or "-" for stdin`)
	fs.StringVar(&opts.format, "format", "", "csv or json; detected from the file extension when empty")
	fs.StringVar(&opts.url, "url", envOr("IMPORT_API_URL", defaultAPIURL), "base URL of the import API")
	fs.StringVar(&opts.token, "token", os.Getenv("ADMIN_API_TOKEN"), "admin API token")
	fs.BoolVar(&opts.sample, "sample", false, "print sample JSON and exit")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if !opts.sample && opts.file == "" {
		return options{}, errors.New("-file is required")
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer, logger *zap.Logger) error {
	opts, err := parseFlags(args, stdout)
	if err != nil {
		return err
	}

	if opts.sample {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(importfile.SampleRecords())
	}

	records, err := readRecords(ctx, opts, stdin)
	if err != nil {
		return err
	}

	if problems := importfile.Validate(records); len(problems) > 0 {
		for _, problem := range problems {
			fmt.Fprintln(stdout, problem)
		}
		return fmt.Errorf("%w: %d problem(s)", errValidation, len(problems))
	}
	if len(records) == 0 {
		fmt.Fprintln(stdout, importfile.ErrNoCustomers.Error())
		return importfile.ErrNoCustomers
	}

	logger.Debug("submitting customers", zap.Int("count", len(records)), zap.String("url", opts.url))
	out, err := client.New(opts.url, opts.token).Import(ctx, records)
	if err != nil {
		return err
	}

	for _, line := range out.Summary() {
		fmt.Fprintln(stdout, line)
	}
	if out.Imported == 0 && out.Failed > 0 {
		return fmt.Errorf("no customers imported")
	}
	return nil
}

func readRecords(ctx context.Context, opts options, stdin io.Reader) ([]importfile.Record, error) {
	format := importfile.Format(strings.ToLower(opts.format))
	if format == "" {
		detected, err := importfile.DetectFormat(opts.file)
		if err != nil {
			return nil, err
		}
		format = detected
	}

	source := infrafile.NewLocalSource(".")
	source.Stdin = stdin
	rc, err := source.Open(ctx, opts.file)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return importfile.Parse(rc, format)
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
