package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/practicelog/internal/cli"
	"github.com/julianstephens/practicelog/internal/config"
	"github.com/julianstephens/practicelog/internal/constants"
	"github.com/julianstephens/practicelog/internal/errors"
	"github.com/julianstephens/practicelog/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Config  kong.ConfigFlag `help:"YAML config file." type:"path"`
	Debug   bool            `help:"Log debug output to stderr."`
	LogDir  string          `help:"Directory that holds the logs/ folder." type:"path" default:"${default_log_dir}"`

	Convert    cli.ConvertCmd `cmd:"" help:"Convert the wide practice record into the app's activity log." default:"1"`
	Expand     cli.ExpandCmd  `cmd:"" help:"Inflate a sample activity log by replaying it under several years."`
	Shift      cli.ShiftCmd   `cmd:"" help:"Move a sample activity log from one year to another."`
	Check      cli.CheckCmd   `cmd:"" help:"Check an activity log against the app's import rules."`
	Doctor     cli.DoctorCmd  `cmd:"" help:"Run diagnostics on input and output paths."`
	DebugTools cli.DebugCmd   `cmd:"" name:"debug" help:"Inspect how the practice record is decoded."`
}

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		errors.Fatal(err)
	}

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Convert and generate practice activity logs for the piano tracker app"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Configuration(config.YAML, constants.DefaultConfigPath),
		kong.DefaultEnvars(constants.EnvPrefix),
		kong.Vars{
			"version":               constants.Version,
			"default_log_dir":       constants.DefaultLogDir,
			"default_wide_input":    constants.DefaultWideInput,
			"default_long_output":   constants.DefaultLongOutput,
			"default_sample_input":  constants.DefaultSampleInput,
			"default_sample_output": constants.DefaultSampleOutput,
			"default_sample_years":  constants.DefaultSampleYears,
		},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, LogDir: CLI.LogDir}); err != nil {
		errors.Fatalf("failed to initialize logger: %v", err)
	}
	logger.Debug("Starting command", "command", ctx.Command(), "version", constants.Version)

	appCtx := &cli.Context{Out: os.Stdout}
	errors.Fatal(ctx.Run(appCtx))
}
