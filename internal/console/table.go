package console

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// table prints rows with aligned columns under a header and a rule.
func (c *Console) table(headers []string, rows [][]string) {
	tw := tabwriter.NewWriter(c.out, 0, 0, 1, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t| "))
	rule := make([]string, len(headers))
	for i, h := range headers {
		rule[i] = strings.Repeat("-", max(len(h), 5))
	}
	fmt.Fprintln(tw, strings.Join(rule, "\t| "))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t| "))
	}
	_ = tw.Flush()
}
