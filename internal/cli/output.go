package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/zamm-dev/zamm-select/internal/cli/interactive/common"
)

// Output formatting helpers

const maxLabelWidth = 50

type optionOutput struct {
	Index int    `json:"index"`
	Label string `json:"label"`
	Value any    `json:"value"`
}

func (a *App) outputJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func (a *App) outputOptions(w io.Writer, opts []*common.Option, asJSON bool) error {
	if asJSON {
		out := make([]optionOutput, 0, len(opts))
		for i, o := range opts {
			out = append(out, optionOutput{Index: i, Label: o.Label, Value: o.Value})
		}
		return a.outputJSON(w, out)
	}
	return a.outputOptionTable(w, opts)
}

func (a *App) outputOptionTable(w io.Writer, opts []*common.Option) error {
	if len(opts) == 0 {
		fmt.Fprintln(w, "No options found")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tLABEL\tVALUE")

	for i, o := range opts {
		fmt.Fprintf(tw, "%d\t%s\t%v\n", i, truncateLabel(o.Label, maxLabelWidth), o.Value)
	}

	return tw.Flush()
}

// truncateLabel shortens label to at most width runes, ending in "..."
func truncateLabel(label string, width int) string {
	runes := []rune(label)
	if len(runes) <= width {
		return label
	}
	return string(runes[:width-3]) + "..."
}
