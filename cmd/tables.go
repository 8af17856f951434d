package cmd

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"
	"github.com/zhubert/enigmavision/internal/enigma"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the rotor and reflector wirings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printTables(cmd.OutOrStdout(), enigma.NewRegistry())
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}

// printTables writes one row per rotor type plus the reflector.
func printTables(out io.Writer, reg *enigma.Registry) error {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ROTOR", "WIRING", "NOTCH").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	t.Row("", enigma.Alphabet, "")
	for _, rt := range enigma.RotorTypes {
		spec := reg.Spec(rt)
		t.Row(rt.String(), spec.Wiring, string(spec.Notch))
	}
	t.Row("UKW-B", reg.Reflector().Wiring, "")

	_, err := fmt.Fprintln(out, t.Render())
	return err
}
