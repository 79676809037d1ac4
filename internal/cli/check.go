package cli

import (
	"fmt"
	"os"

	"github.com/julianstephens/practicelog/internal/logger"
	"github.com/julianstephens/practicelog/internal/report"
	"github.com/julianstephens/practicelog/internal/validation"
)

type CheckCmd struct {
	Input string `arg:"" optional:"" help:"Activity log to check." type:"path" default:"${default_long_output}"`
}

func (cmd *CheckCmd) Run(ctx *Context) error {
	f, err := os.Open(cmd.Input)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	result, err := validation.New().ValidateLog(f)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", cmd.Input, err)
	}

	report.Check(ctx.Out, cmd.Input, result)

	rejected := 0
	for _, c := range result.Conflicts {
		if !c.IsWarning() {
			rejected++
		}
	}
	if rejected > 0 {
		logger.Warn("Activity log has lines the app would reject", "path", cmd.Input, "lines", rejected)
		return fmt.Errorf("%d line(s) would be rejected on import", rejected)
	}
	return nil
}
