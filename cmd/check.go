package cmd

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/M0hammad-yasin/portfolio/internal/config"
	"github.com/M0hammad-yasin/portfolio/internal/content"
	"github.com/M0hammad-yasin/portfolio/internal/tracker"
)

func newCheckCmd() *cobra.Command {
	var contentFile string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate config and content, then print a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if cmd.Flags().Changed("content") {
				cfg.ContentFile = contentFile
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			p, err := content.Load(cfg.ContentFile)
			if err != nil {
				return err
			}

			source := cfg.ContentFile
			if source == "" {
				source = "embedded"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Content OK (%s)\n\n%s", source, summary(p, cfg))
			return nil
		},
	}
	cmd.Flags().StringVar(&contentFile, "content", "", "content manifest (YAML); empty uses the embedded one")
	return cmd
}

// summary renders one row per page section in navigation order.
func summary(p *content.Portfolio, cfg *config.Config) string {
	rows := map[string][]string{
		"hero":       {"1", p.Profile.Name},
		"about":      {fmt.Sprint(len(p.About.Cards)), p.About.Heading},
		"skills":     {fmt.Sprint(len(p.Skills)), titles(len(p.Skills), func(i int) string { return p.Skills[i].Title })},
		"projects":   {fmt.Sprint(len(p.Projects)), titles(len(p.Projects), func(i int) string { return p.Projects[i].Title })},
		"experience": {fmt.Sprint(len(p.Experience)), titles(len(p.Experience), func(i int) string { return p.Experience[i].Title })},
		"contact":    {"1", p.Profile.Links.Email},
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Section", "Entries", "Detail"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	for _, id := range tracker.New(cfg.TrackerOptions()...).Order() {
		row, ok := rows[string(id)]
		if !ok {
			continue
		}
		table.Append(append([]string{string(id)}, row...))
	}
	table.SetFooter([]string{
		fmt.Sprintf("bias %.0fpx", cfg.ScrollBias),
		"",
		fmt.Sprintf("fallback %s", cfg.Fallback),
	})
	table.Render()
	return buf.String()
}

func titles(n int, title func(int) string) string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, title(i))
	}
	return strings.Join(out, ", ")
}
