package cli

import (
	"github.com/julianstephens/practicelog/internal/expand"
	"github.com/julianstephens/practicelog/internal/report"
)

type ExpandCmd struct {
	Input  string `help:"Sample activity log to inflate." type:"path" default:"${default_sample_input}"`
	Output string `help:"Inflated activity log to write." type:"path" default:"${default_sample_output}"`
	Years  []int  `help:"Years to replay the sample under, in output order." default:"${default_sample_years}"`
	Source int    `help:"Year the sample rows start with (defaults to the first of --years)."`
	Backup bool   `help:"Keep a timestamped copy of an existing output file before overwriting it."`
}

func (cmd *ExpandCmd) Run(ctx *Context) error {
	opts := expand.Options{Source: cmd.Source, Targets: cmd.Years}
	if opts.Source == 0 && len(cmd.Years) > 0 {
		opts.Source = cmd.Years[0]
	}
	return runExpand(ctx, cmd.Input, cmd.Output, opts, cmd.Backup)
}

type ShiftCmd struct {
	Input  string `help:"Sample activity log to shift." type:"path" default:"${default_sample_input}"`
	Output string `help:"Shifted activity log to write." type:"path" default:"${default_sample_output}"`
	From   int    `help:"Year the sample rows start with." default:"2024"`
	To     int    `help:"Year to move the rows to." default:"2023"`
	Backup bool   `help:"Keep a timestamped copy of an existing output file before overwriting it."`
}

func (cmd *ShiftCmd) Run(ctx *Context) error {
	return runExpand(ctx, cmd.Input, cmd.Output, expand.Options{Source: cmd.From, Targets: []int{cmd.To}}, cmd.Backup)
}

func runExpand(ctx *Context, input, output string, opts expand.Options, keepBackup bool) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if keepBackup {
		if err := ctx.BackupOutput(output); err != nil {
			return err
		}
	}

	stats, err := expand.ExpandFile(input, output, opts)
	if err != nil {
		return err
	}

	report.Expansion(ctx.Out, output, opts, stats)
	return nil
}
