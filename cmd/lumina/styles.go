package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var stylesFile string

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the available design styles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := stylesFile
		if path == "" {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			path = cfg.StylesFile
		}
		styles, err := loadStyles(path)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPREVIEW")
		for _, s := range styles.All() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", s.ID, s.Name, s.Preview)
		}
		return w.Flush()
	},
}

func init() {
	stylesCmd.Flags().StringVar(&stylesFile, "file", "", "YAML style catalog (defaults to LUMINA_STYLES_FILE, then the built-in one)")
	rootCmd.AddCommand(stylesCmd)
}
