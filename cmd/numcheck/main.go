// Command numcheck validates numbers against N(m,k) document formats.
//
//	numcheck [-format N(m,k)] value...
//	numcheck -schema schema.yaml -doc values.yaml
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/docnum/pkg/config"
	"github.com/dmitrymomot/docnum/pkg/logger"
	"github.com/dmitrymomot/docnum/pkg/numfmt"
	"github.com/dmitrymomot/docnum/pkg/schema"
	"github.com/dmitrymomot/docnum/pkg/validator"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitConfig  = 2
)

// Config is read from the environment and optional .env files.
type Config struct {
	Format   string `env:"NUMCHECK_FORMAT" envDefault:"N(17,2)"`
	Schema   string `env:"NUMCHECK_SCHEMA"`
	LogLevel string `env:"NUMCHECK_LOG_LEVEL" envDefault:"info"`
	Env      string `env:"NUMCHECK_ENV" envDefault:"development"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("numcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), `Validate numbers against an N(m,k) format.

Usage: numcheck [flags] <value>...
       numcheck [flags] -schema <schema.yaml> -doc <values.yaml>
FLAGS:`)
		fs.PrintDefaults()
	}

	var fFormat, fSchema, fDoc, fEnvFile string
	fs.StringVar(&fFormat, "format", "", "number format, e.g. N(17,2) or N(10)+; Env: NUMCHECK_FORMAT")
	fs.StringVar(&fSchema, "schema", "", "YAML schema describing document fields; Env: NUMCHECK_SCHEMA")
	fs.StringVar(&fDoc, "doc", "", "YAML document of field values to check against -schema")
	fs.StringVar(&fEnvFile, "env-file", "", "load environment from this file instead of ./.env")
	if err := fs.Parse(args); err != nil {
		return exitConfig
	}

	var files []string
	if fEnvFile != "" {
		files = append(files, fEnvFile)
	}
	var cfg Config
	if err := config.Load(&cfg, files...); err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}
	if fFormat != "" {
		cfg.Format = fFormat
	}
	if fSchema != "" {
		cfg.Schema = fSchema
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}
	log := logger.New(
		logger.WithOutput(stderr),
		logger.WithEnvironment(cfg.Env, "numcheck"),
		logger.WithLevel(level),
	)

	if fDoc != "" {
		return checkDocument(log, stdout, cfg.Schema, fDoc)
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitConfig
	}
	return checkValues(log, stdout, cfg.Format, fs.Args())
}

func checkValues(log *slog.Logger, out io.Writer, notation string, values []string) int {
	format, err := numfmt.Parse(notation)
	if err != nil {
		log.Error("invalid number format", logger.Error(err))
		return exitConfig
	}

	code := exitOK
	for _, value := range values {
		err := format.Check(value)
		log.Debug("checked value",
			logger.Value(value),
			logger.NumberFormat(format),
			logger.Valid(err == nil),
			logger.Error(err),
		)
		if err != nil {
			fmt.Fprintf(out, "%q: invalid: %v\n", value, err)
			code = exitInvalid
			continue
		}
		fmt.Fprintf(out, "%q: ok\n", value)
	}
	return code
}

func checkDocument(log *slog.Logger, out io.Writer, schemaPath, docPath string) int {
	if schemaPath == "" {
		log.Error("a schema is required to check a document")
		return exitConfig
	}

	s, err := schema.LoadFile(schemaPath)
	if err != nil {
		log.Error("failed to load schema", slog.String("path", schemaPath), logger.Error(err))
		return exitConfig
	}

	f, err := os.Open(docPath)
	if err != nil {
		log.Error("failed to open document", slog.String("path", docPath), logger.Error(err))
		return exitConfig
	}
	defer f.Close()

	values, err := schema.DecodeValues(f)
	if err != nil {
		log.Error("failed to decode document", slog.String("path", docPath), logger.Error(err))
		return exitConfig
	}

	err = s.Validate(values)
	switch {
	case err == nil:
		log.Debug("document is valid", slog.Int("fields", len(values)))
		fmt.Fprintln(out, "ok")
		return exitOK
	case !errors.Is(err, validator.ErrValidationFailed):
		log.Error("validation failed", logger.Error(err))
		return exitConfig
	}

	verrs := validator.ExtractValidationErrors(err)
	for _, ve := range verrs {
		log.Debug("invalid field", logger.Field(ve.Field), slog.String("reason", ve.Message))
		fmt.Fprintf(out, "%s: %s\n", ve.Field, ve.Message)
	}
	log.Info("document rejected", slog.Int("errors", len(verrs)))
	return exitInvalid
}
