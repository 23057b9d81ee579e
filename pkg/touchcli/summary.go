package touchcli

import (
	"io"
	"strconv"

	"github.com/dansimau/coreutils/pkg/touch"
	"github.com/olekukonko/tablewriter"
)

// printSummary writes one table row per file, in input order.
func printSummary(w io.Writer, outcomes touch.Outcomes) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "File", "Outcome", "Error"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)

	for _, o := range outcomes {
		errText := ""
		if o.Err != nil {
			errText = reason(o.Err).Error()
		}

		table.Append([]string{strconv.Itoa(o.Index + 1), o.Path, o.Kind.String(), errText})
	}

	table.Render()
}
