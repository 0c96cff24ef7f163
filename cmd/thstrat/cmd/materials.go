package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/openenvelope/thstrat/catalog"
)

var (
	materialsDBPath string
	materialDesc    string
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "Manage the materials catalog database",
}

var materialsAddCmd = &cobra.Command{
	Use:   "add <name> <conductivity>",
	Short: "Insert or update a material",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cnd, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("conductivity %q: %w", args[1], err)
		}

		db, err := catalog.Open(materialsDBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		return db.Put(catalog.Material{
			Name:         args[0],
			Conductivity: cnd,
			Description:  materialDesc,
		})
	},
}

var materialsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all materials in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := catalog.Open(materialsDBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		materials, err := db.List()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, m := range materials {
			fmt.Fprintf(out, "%-24s %8.3f W/(K·m)  %s\n", m.Name, m.Conductivity, m.Description)
		}

		return nil
	},
}

func init() {
	materialsCmd.PersistentFlags().StringVar(&materialsDBPath, "db", "materials.db", "path of the catalog database")
	materialsAddCmd.Flags().StringVar(&materialDesc, "desc", "", "free-text description")
	materialsCmd.AddCommand(materialsAddCmd)
	materialsCmd.AddCommand(materialsListCmd)
	rootCmd.AddCommand(materialsCmd)
}
