// Command gstctl exposes the invoice calculations and record store from the
// command line.
//
// Usage:
//
//	gstctl words 1234.50
//	gstctl totals invoice.json
//	gstctl render invoice.json -o out/
//	gstctl import-catalog items.xlsx
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "gstctl",
		Usage: "GST invoice toolkit",
		Commands: []*cli.Command{
			wordsCommand(),
			currencyCommand(),
			dateCommand(),
			nextNumberCommand(),
			totalsCommand(),
			renderCommand(),
			importCatalogCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}
