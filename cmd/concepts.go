package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/kidwise/kidwise/internal/catalog"
)

var (
	categoryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8FAFC"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8")).
			Italic(true)
)

var conceptsCmd = &cobra.Command{
	Use:   "concepts",
	Short: "List the concept catalogue by category",
	Run: func(cmd *cobra.Command, args []string) {
		for _, group := range catalog.ByCategory() {
			fmt.Println(categoryStyle.Render(fmt.Sprintf("%s %s", group.Emoji, group.Category)))
			for _, c := range group.Concepts {
				fmt.Printf("  %s  %s\n",
					titleStyle.Render(c.Title),
					metaStyle.Render(fmt.Sprintf("(%s · %s · %d min)", c.ID, c.Difficulty, c.ReadTimeMinutes)),
				)
			}
			fmt.Println()
		}
	},
}
