package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// floorsCommand lists the configured floors.
func (c *CLI) floorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "floors",
		Short: "List the floors dots can be placed on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.cfg.Registry()
			if err != nil {
				return err
			}
			rows := [][]string{}
			for _, f := range reg.Floors() {
				image := f.Image
				if image == "" {
					image = "—"
				}
				rows = append(rows, []string{f.Name, strconv.Itoa(f.Ordinal), image})
			}
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(StyleDim).
				Headers("Floor", "Ordinal", "Image").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return lipgloss.NewStyle().Foreground(colorGray).Bold(true)
					}
					if col == 1 {
						return StyleNumber
					}
					return StyleValue
				})
			fmt.Fprintln(out, t.Render())
			if hop := c.cfg.Policy.FloorHopCost; hop > 0 {
				printDetail("floor hop cost %.2f", hop)
			}
			return nil
		},
	}
}
