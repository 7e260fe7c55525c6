package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear all progress, sessions, stats and preferences",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print("⚠️ This erases ALL study progress. Type 'yes' to confirm: ")
		reader := bufio.NewReader(os.Stdin)
		input, _ := reader.ReadString('\n')
		if strings.TrimSpace(input) != "yes" {
			fmt.Println("Cancelled.")
			return
		}

		s, err := openStore()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer s.Close()

		if err := s.ClearAll(); err != nil {
			fmt.Println("❌ Reset failed:", err)
			return
		}
		fmt.Println("✅ All data cleared.")
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
