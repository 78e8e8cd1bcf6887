package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the games this build knows",
	Args:  cobra.NoArgs,
	Run:   runList,
}

var listCell = lipgloss.NewStyle().PaddingRight(2)

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	games := registry.List()
	if len(games) == 0 {
		fmt.Fprintln(out, "no games registered")
		return
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		StyleFunc(func(row, col int) lipgloss.Style { return listCell }).
		Headers("ID", "TITLE")
	for _, g := range games {
		t.Row(g.ID, g.Title)
	}

	fmt.Fprintln(out, t.Render())
	fmt.Fprintln(out, "\nStart one with: arcade play <id>")
}
