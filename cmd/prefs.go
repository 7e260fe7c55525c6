package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change preferences",
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openStore()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer s.Close()

		prefs := loadPreferences(s)

		var diffs []string
		for _, d := range prefs.DefaultDifficulty {
			diffs = append(diffs, string(d))
		}

		fmt.Println("⚙️ Preferences")
		fmt.Println("--------------")
		fmt.Printf("defaultDifficulty: %s\n", strings.Join(diffs, ","))
		fmt.Printf("autoPlayAudio:     %t\n", prefs.AutoPlayAudio)
		fmt.Printf("showCulturalNotes: %t\n", prefs.ShowCulturalNotes)
		fmt.Printf("cardAutoAdvance:   %t\n", prefs.CardAutoAdvance)
		fmt.Printf("theme:             %s\n", prefs.Theme)
	},
}

var prefsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a single preference",
	Long: `Set a single preference. Keys: defaultDifficulty (comma-separated
levels), autoPlayAudio, showCulturalNotes, cardAutoAdvance (true/false),
theme (light/dark/system).`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		key, raw := args[0], args[1]

		value, err := parsePreferenceValue(key, raw)
		if err != nil {
			fmt.Println("❌", err)
			return
		}

		s, err := openStore()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer s.Close()

		if err := s.UpdatePreference(key, value); err != nil {
			fmt.Println("❌ Preference may not have saved:", err)
			return
		}
		fmt.Printf("✅ %s = %s\n", key, raw)
	},
}

func parsePreferenceValue(key, raw string) (any, error) {
	switch key {
	case "defaultDifficulty":
		return parseDifficulties(raw)
	case "autoPlayAudio", "showCulturalNotes", "cardAutoAdvance":
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%s wants true or false", key)
		}
		return b, nil
	case "theme":
		return raw, nil
	}
	return nil, fmt.Errorf("unknown preference %q", key)
}

func init() {
	rootCmd.AddCommand(prefsCmd)
	prefsCmd.AddCommand(prefsSetCmd)
}
