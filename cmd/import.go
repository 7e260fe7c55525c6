package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nkmathew/kikuyu-language-hub-sub004/internal/models"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import progress from a JSON snapshot",
	Long: `Import progress from a snapshot produced by export. Sections present
in the snapshot replace the corresponding store sections; absent sections
are left untouched. A malformed snapshot is rejected without changes.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Println("❌ Cannot read snapshot:", err)
			return
		}

		var snap models.Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			fmt.Println("❌ Malformed snapshot:", err)
			return
		}

		s, err := openStore()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer s.Close()

		if err := s.ImportAll(snap); err != nil {
			fmt.Println("❌ Import failed, nothing was changed:", err)
			return
		}

		fmt.Printf("✅ Imported snapshot from %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
