package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "taskguard",
	Short: "TaskGuard - Scanner de segurança para arquivos de task",
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
