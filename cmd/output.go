package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/padma/internal/cli"
)

const (
	formatTable    = "table"
	formatMarkdown = "markdown"
)

var flagFormat string

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", formatTable, "List output format: table or markdown")
}

// printTable writes t in the format chosen by --format.
func printTable(t cli.Table) error {
	switch flagFormat {
	case formatTable, "":
		fmt.Print(cli.RenderTable(t))
	case formatMarkdown:
		cli.WriteMarkdown(os.Stdout, t)
	default:
		return fmt.Errorf("unknown format %q (want table or markdown)", flagFormat)
	}
	return nil
}
