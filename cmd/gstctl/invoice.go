package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"gstinvoice/internal/config"
	"gstinvoice/internal/domain"
	"gstinvoice/internal/invoicemath"
	"gstinvoice/internal/pdf"
	"gstinvoice/internal/port"
	"gstinvoice/internal/repository"
	"gstinvoice/internal/repository/kvstore"
	"gstinvoice/internal/service"
	"gstinvoice/internal/validator/invoice"
)

// readInvoice loads and validates an invoice JSON document.
func readInvoice(path string) (*domain.InvoiceData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var data domain.InvoiceData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if err := invoice.New().Struct(&data); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return &data, nil
}

func nextNumberCommand() *cli.Command {
	return &cli.Command{
		Name:  "next-number",
		Usage: "draw the next invoice number from the configured record store",
		Action: func(c *cli.Context) error {
			cfg, store, err := openStore(c)
			if err != nil {
				return err
			}
			defer store.Close()

			numbering := service.NewNumberingService(kvstore.NewCounterRepo(store), cfg.Numbering.AprilCutover, nil)
			no, err := numbering.Next(c.Context)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.App.Writer, no)
			return err
		},
	}
}

func totalsCommand() *cli.Command {
	return &cli.Command{
		Name:      "totals",
		Usage:     "print the computed totals of an invoice JSON file",
		ArgsUsage: "<invoice.json>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected an invoice file")
			}
			data, err := readInvoice(c.Args().First())
			if err != nil {
				return err
			}
			summary := invoicemath.Summarize(data)

			w := c.App.Writer
			fmt.Fprintf(w, "%s %s dated %s\n", summary.Title, data.InvoiceNo, summary.InvoiceDate)
			fmt.Fprintf(w, "%-12s %14s\n", "Subtotal", invoicemath.FormatCurrency(summary.Subtotal))
			fmt.Fprintf(w, "%-12s %14s\n", "CGST", invoicemath.FormatCurrency(summary.CGST))
			fmt.Fprintf(w, "%-12s %14s\n", "SGST", invoicemath.FormatCurrency(summary.SGST))
			if summary.IGST != 0 {
				fmt.Fprintf(w, "%-12s %14s\n", "IGST", invoicemath.FormatCurrency(summary.IGST))
			}
			fmt.Fprintf(w, "%-12s %14s\n", "P&F", invoicemath.FormatCurrency(summary.PAndF))
			fmt.Fprintf(w, "%-12s %14s\n", "Round Off", invoicemath.FormatCurrency(summary.RoundOff))
			fmt.Fprintf(w, "%-12s %14s\n", "Grand Total", invoicemath.FormatCurrency(summary.GrandTotal))
			_, err = fmt.Fprintln(w, summary.AmountInWords)
			return err
		},
	}
}

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "render an invoice JSON file to PDF",
		ArgsUsage: "<invoice.json>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: ".", Usage: "output directory"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected an invoice file")
			}
			data, err := readInvoice(c.Args().First())
			if err != nil {
				return err
			}

			invoices := service.NewInvoiceService(nil, nil, nil, pdf.NewRenderer(), nil, nil, service.ArchiveConfig{})
			rendered, err := invoices.RenderDraftPDF(data)
			if err != nil {
				return err
			}

			dir := c.String("output")
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("creating %s: %w", dir, err)
			}
			path := filepath.Join(dir, rendered.FileName)
			if err := os.WriteFile(path, rendered.Content, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			logrus.WithFields(logrus.Fields{"file": path, "bytes": len(rendered.Content)}).Info("invoice rendered")
			return nil
		},
	}
}

// openStore loads config and opens the configured record store. The memory
// store is refused: gstctl exits after one command, so nothing would be kept.
func openStore(c *cli.Context) (*config.Config, port.KVStore, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if !cfg.Store.Persistent() {
		return nil, nil, fmt.Errorf("%s: %w", c.Command.Name, config.ErrEphemeralStore)
	}
	store, err := repository.Open(c.Context, cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, store, nil
}
