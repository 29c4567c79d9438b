package cmd

import (
	"fmt"
	"slices"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriMap/internal/config"
	"github.com/Rorical/RoriMap/internal/i18n"
)

var useCmd = &cobra.Command{
	Use:   "use [locale]",
	Short: "Switch the display language and start the app",
	Long:  `Switch the configured locale (en, de, fr) and immediately start RoriMap.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		var locale string
		if len(args) > 0 {
			locale = i18n.Match(args[0])
			if locale != args[0] {
				fmt.Printf("Using closest supported locale '%s'\n", locale)
			}
		} else {
			locales := i18n.Supported()
			prompt := promptui.Select{
				Label:     "Select language",
				Items:     locales,
				CursorPos: max(slices.Index(locales, i18n.Match(cfg.Locale)), 0),
			}
			_, locale, err = prompt.Run()
			if err != nil {
				return fmt.Errorf("selection failed: %w", err)
			}
		}

		cfg.SetLocale(locale)
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		return runApp()
	},
}

func init() {
	rootCmd.AddCommand(useCmd)
}
