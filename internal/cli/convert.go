package cli

import (
	"github.com/julianstephens/practicelog/internal/convert"
	"github.com/julianstephens/practicelog/internal/report"
)

type ConvertCmd struct {
	Input          string `help:"Wide-format practice record exported from the spreadsheet." type:"path" default:"${default_wide_input}"`
	Output         string `help:"Activity log to write." type:"path" default:"${default_long_output}"`
	NormalizeNames bool   `help:"Canonicalize piece names (quotes, whitespace, Unicode) the way the app does on import."`
	Backup         bool   `help:"Keep a timestamped copy of an existing output file before overwriting it."`
}

func (cmd *ConvertCmd) Run(ctx *Context) error {
	if cmd.Backup {
		if err := ctx.BackupOutput(cmd.Output); err != nil {
			return err
		}
	}

	summary, err := convert.ConvertFile(cmd.Input, cmd.Output, convert.Options{
		NormalizeNames: cmd.NormalizeNames,
	})
	if err != nil {
		return err
	}

	report.Conversion(ctx.Out, summary)
	return nil
}
