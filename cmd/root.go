package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "melodiff",
	Short: "Compares musical performances",
	Long: `melodiff reduces a reference recording and a student attempt to note
sequences and rhythm profiles, then scores how closely they match.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
