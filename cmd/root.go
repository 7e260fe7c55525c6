package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kikuyu-hub",
	Short: "Study Kikuyu-English flashcards with spaced repetition",
	Long: `Kikuyu Language Hub is a CLI for learning Kikuyu vocabulary with
bilingual flashcards scheduled by a spaced repetition algorithm (SM-2).`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
