package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/julianstephens/practicelog/internal/convert"
	"github.com/julianstephens/practicelog/internal/models"
)

type DebugCmd struct {
	Decode  *DebugDecodeCmd  `cmd:"" help:"Show how activity codes are decoded."`
	DumpRow *DebugDumpRowCmd `cmd:"" help:"Dump the activities converted from one piece row as JSON."`
}

type DebugDecodeCmd struct {
	Codes []string `arg:"" help:"Activity codes as they appear in the spreadsheet."`
}

type decodedCode struct {
	Code     string              `json:"code"`
	Clean    string              `json:"clean"`
	Rule     string              `json:"rule,omitempty"`
	Activity models.ActivityType `json:"activity_type,omitempty"`
	Level    int                 `json:"level,omitempty"`
	Ignored  bool                `json:"ignored"`
}

func (cmd *DebugDecodeCmd) Run(ctx *Context) error {
	output := make([]decodedCode, 0, len(cmd.Codes))
	for _, code := range cmd.Codes {
		entry := decodedCode{Code: code, Clean: convert.CleanCode(code)}
		if rule, ok := convert.Match(code); ok {
			entry.Rule = rule.Name
			entry.Activity = rule.Result.Type
			entry.Level = rule.Result.Level
		} else {
			entry.Ignored = true
		}
		output = append(output, entry)
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Fprintln(ctx.Out, string(jsonBytes))
	return nil
}

type DebugDumpRowCmd struct {
	Piece string `arg:"" help:"Piece name as written in the first column."`
	Input string `help:"Wide-format practice record." type:"path" default:"${default_wide_input}"`
}

func (cmd *DebugDumpRowCmd) Run(ctx *Context) error {
	f, err := os.Open(cmd.Input)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	sheet, err := convert.ReadSheet(f)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", cmd.Input, err)
	}

	var row *models.WideRecord
	for i := range sheet.Records {
		if sheet.Records[i].PieceName == cmd.Piece {
			row = &sheet.Records[i]
			break
		}
	}
	if row == nil {
		return fmt.Errorf("piece not found: %s", cmd.Piece)
	}

	single := &convert.Sheet{Labels: sheet.Labels, Records: []models.WideRecord{*row}}
	result := convert.Convert(single, convert.Options{})

	jsonBytes, err := json.MarshalIndent(result.Activities, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal activities: %w", err)
	}

	fmt.Fprintln(ctx.Out, string(jsonBytes))
	return nil
}
