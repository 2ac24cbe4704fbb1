package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/akeren/email-collector/config"
	"github.com/akeren/email-collector/domain/submission"
	"github.com/akeren/email-collector/internal/log"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

type exportOptions struct {
	format string
	out    string
}

func parseExportFlags(args []string) (exportOptions, error) {
	var opts exportOptions

	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.StringVar(&opts.format, "format", formatJSON, "output format: json or yaml")
	fs.StringVar(&opts.out, "out", "", "write to this file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.format = strings.ToLower(strings.TrimSpace(opts.format))
	if opts.format != formatJSON && opts.format != formatYAML {
		return opts, fmt.Errorf("unsupported format %q (expected %q or %q)", opts.format, formatJSON, formatYAML)
	}

	return opts, nil
}

func runExport(logger *log.Logger, args []string, stdout io.Writer) error {
	opts, err := parseExportFlags(args)
	if err != nil {
		return err
	}

	db, err := config.NewDatabase(logger, &config.DBConfig{})
	if err != nil {
		return fmt.Errorf("connect to database for export: %w", err)
	}
	defer config.CloseDatabase(db, logger)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	service := submission.NewSubmissionService(logger, submission.NewSubmissionRepository(db), nil)
	emails, err := service.GetAllEmails(ctx)
	if err != nil {
		return fmt.Errorf("load submissions: %w", err)
	}

	w := stdout
	if opts.out != "" {
		f, err := os.Create(opts.out)
		if err != nil {
			return fmt.Errorf("create %s: %w", opts.out, err)
		}
		defer f.Close()
		w = f
	}

	if err := writeSubmissions(w, opts.format, emails); err != nil {
		return err
	}

	logger.Info("Exported submissions", "count", len(emails), "format", opts.format, "out", opts.out)
	return nil
}

func writeSubmissions(w io.Writer, format string, emails []submission.SubmissionResponse) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(emails); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(emails); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}
