package cmd

import (
	"fmt"
	"os"

	"github.com/backwind1233/taskguard/internal/rules"
	"github.com/spf13/cobra"
)

var rulesPackFile string

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Lista o catálogo de regras ativo",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		catalog := rules.Default()
		if rulesPackFile != "" {
			pack, err := rules.LoadPack(rulesPackFile)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Erro ao carregar rule pack:", err)
				os.Exit(2)
			}
			catalog.Merge(pack)
		}

		for _, r := range catalog.All() {
			fmt.Printf("%-10s  %-28s  %s\n", r.Category, r.Label, r.Pattern.String())
		}
	},
}

func init() {
	rulesCmd.Flags().StringVar(&rulesPackFile, "rules", "", "Arquivo YAML com regras adicionais")
	rootCmd.AddCommand(rulesCmd)
}
