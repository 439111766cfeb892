package main

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"github.com/xuri/excelize/v2"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/repository/kvstore"
	"gstinvoice/internal/service"
	"gstinvoice/internal/validator/invoice"
)

// Catalog sheet columns: A=Description, B=HSN/SAC, C=GST Rate, D=Rate.
const (
	colDescription = 0
	colHSNSAC      = 1
	colGSTRate     = 2
	colRate        = 3
)

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

// parseNumber reads a spreadsheet number that may carry a "%" suffix or
// thousands separators.
func parseNumber(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSuffix(strings.TrimSpace(s), "%"), ",", "")
	if s == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	f, _ := d.Float64()
	return f, nil
}

// parseCatalogRows converts sheet rows into catalog items. The first row is a
// header and blank rows are ignored. Rows that fail to parse or validate are
// reported by their 1-based sheet row number and skipped.
func parseCatalogRows(rows [][]string, v *validator.Validate) ([]domain.SavedItem, []error) {
	var items []domain.SavedItem
	var errs []error
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if cellVal(row, colDescription) == "" && cellVal(row, colHSNSAC) == "" {
			continue
		}

		gstRate, err := parseNumber(cellVal(row, colGSTRate))
		if err != nil {
			errs = append(errs, fmt.Errorf("row %d: invalid GST rate %q", i+1, cellVal(row, colGSTRate)))
			continue
		}
		// Percent-formatted cells can come back as fractions.
		if gstRate > 0 && gstRate < 1 {
			gstRate = decimal.NewFromFloat(gstRate).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
		}
		rate, err := parseNumber(cellVal(row, colRate))
		if err != nil {
			errs = append(errs, fmt.Errorf("row %d: invalid rate %q", i+1, cellVal(row, colRate)))
			continue
		}

		item := domain.SavedItem{
			Description: cellVal(row, colDescription),
			HSNSAC:      cellVal(row, colHSNSAC),
			GSTRate:     gstRate,
			Rate:        rate,
		}
		if err := v.Struct(&item); err != nil {
			errs = append(errs, fmt.Errorf("row %d: %w", i+1, err))
			continue
		}
		items = append(items, item)
	}
	return items, errs
}

func importCatalogCommand() *cli.Command {
	return &cli.Command{
		Name:      "import-catalog",
		Usage:     "load catalog items from an Excel sheet into the record store",
		ArgsUsage: "<file.xlsx>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "sheet", Usage: "sheet name (default: first sheet)"},
			&cli.BoolFlag{Name: "dry-run", Usage: "parse and validate without saving"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected an Excel file")
			}
			path := c.Args().First()

			var catalog service.CatalogService
			if !c.Bool("dry-run") {
				_, store, err := openStore(c)
				if err != nil {
					return err
				}
				defer store.Close()
				catalog = service.NewCatalogService(kvstore.NewCatalogRepo(store))
			}

			f, err := excelize.OpenFile(path)
			if err != nil {
				return fmt.Errorf("open Excel file: %w", err)
			}
			defer func() { _ = f.Close() }()

			sheet := c.String("sheet")
			if sheet == "" {
				sheet = f.GetSheetName(0)
			}
			rows, err := f.GetRows(sheet)
			if err != nil {
				return fmt.Errorf("read sheet %q: %w", sheet, err)
			}

			items, rowErrs := parseCatalogRows(rows, invoice.New())
			for _, rerr := range rowErrs {
				logrus.WithField("file", path).Warn(rerr.Error())
			}
			if c.Bool("dry-run") {
				logrus.Infof("%d items valid, %d rows skipped", len(items), len(rowErrs))
				return nil
			}

			for i := range items {
				if _, err := catalog.Save(c.Context, &items[i]); err != nil {
					return fmt.Errorf("saving %q: %w", items[i].Description, err)
				}
			}
			logrus.Infof("imported %d catalog items, %d rows skipped", len(items), len(rowErrs))
			return nil
		},
	}
}
