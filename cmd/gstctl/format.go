package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"gstinvoice/internal/invoicemath"
)

// amountArg parses the first positional argument as a rupee amount.
func amountArg(c *cli.Context) (float64, error) {
	if c.NArg() != 1 {
		return 0, fmt.Errorf("expected exactly one amount argument")
	}
	d, err := decimal.NewFromString(c.Args().First())
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", c.Args().First(), err)
	}
	f, _ := d.Float64()
	return f, nil
}

func wordsCommand() *cli.Command {
	return &cli.Command{
		Name:      "words",
		Usage:     "spell an amount in Indian English",
		ArgsUsage: "<amount>",
		Action: func(c *cli.Context) error {
			amount, err := amountArg(c)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.App.Writer, invoicemath.NumberToWords(amount))
			return err
		},
	}
}

func currencyCommand() *cli.Command {
	return &cli.Command{
		Name:      "currency",
		Usage:     "format an amount to two decimal places",
		ArgsUsage: "<amount>",
		Action: func(c *cli.Context) error {
			amount, err := amountArg(c)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.App.Writer, invoicemath.FormatCurrency(amount))
			return err
		},
	}
}

func dateCommand() *cli.Command {
	return &cli.Command{
		Name:      "date",
		Usage:     "format a YYYY-MM-DD date as printed on invoices",
		ArgsUsage: "<date>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected exactly one date argument")
			}
			_, err := fmt.Fprintln(c.App.Writer, invoicemath.FormatDate(c.Args().First()))
			return err
		},
	}
}
