package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriMap/internal/app"
	"github.com/Rorical/RoriMap/internal/i18n"
	"github.com/Rorical/RoriMap/internal/icons"
	"github.com/Rorical/RoriMap/internal/models"
	"github.com/Rorical/RoriMap/internal/utils"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Inspect and toggle map routes",
}

var listRoutesCmd = &cobra.Command{
	Use:   "list",
	Short: "List all routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := openServices()
		if err != nil {
			return err
		}
		defer services.Close()

		text := i18n.NewLocalizer(services.Store.Locale())
		routes := services.Config.Routes

		fmt.Println("Routes:")
		for _, key := range routes.Keys() {
			meta := routes[key]
			marker := "hidden"
			if services.Store.RouteDisplayed(key) {
				marker = "shown"
			}
			if !meta.Enabled {
				marker = "disabled"
			}
			fmt.Printf("  %s %-20s %s (%s)\n", icons.Glyph(meta.Icons.Filter), key, text.Localize(meta.Name), marker)
		}
		return nil
	},
}

var showRouteCmd = &cobra.Command{
	Use:   "show [route-key]",
	Short: "Show route details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := openServices()
		if err != nil {
			return err
		}
		defer services.Close()

		routes := services.Config.Routes
		key := args[0]
		meta, ok := routes.Lookup(key)
		if !ok {
			return unknownRouteError(key, routes)
		}

		resolver := icons.NewResolver(services.Config.Icons.BaseURL, services.Config.Icons.Format)
		iconURL, err := resolver.ResolveURL(meta.Icons.Filter, "")
		if err != nil {
			iconURL = "(" + err.Error() + ")"
		}

		fmt.Printf("Route: %s\n", key)
		fmt.Printf("Enabled: %t\n", meta.Enabled)
		fmt.Printf("Displayed: %t\n", services.Store.RouteDisplayed(key))
		fmt.Printf("Icon: %s %s\n", icons.Glyph(meta.Icons.Filter), iconURL)
		fmt.Println("Names:")
		for _, locale := range meta.Name.Locales() {
			fmt.Printf("  %s: %s\n", locale, meta.Name[locale])
		}
		return nil
	},
}

var toggleRouteCmd = &cobra.Command{
	Use:   "toggle [route-key]",
	Short: "Show or hide a route",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := openServices()
		if err != nil {
			return err
		}
		defer services.Close()

		routes := services.Config.Routes
		var key string
		if len(args) > 0 {
			key = args[0]
		} else {
			keys := routes.EnabledKeys()
			if len(keys) == 0 {
				return errors.New("no enabled routes to toggle")
			}
			prompt := promptui.Select{
				Label: "Select route to toggle",
				Items: keys,
			}
			_, key, err = prompt.Run()
			if err != nil {
				return fmt.Errorf("selection failed: %w", err)
			}
		}

		meta, ok := routes.Lookup(key)
		if !ok {
			return unknownRouteError(key, routes)
		}
		if !meta.Enabled {
			return fmt.Errorf("route '%s' is disabled", key)
		}

		next := !services.Store.RouteDisplayed(key)
		services.Store.Dispatch(models.SetRouteDisplayed{Key: key, Value: next})

		state := "hidden"
		if next {
			state = "shown"
		}
		fmt.Printf("Route '%s' is now %s\n", key, state)
		return nil
	},
}

func openServices() (*app.Services, error) {
	services, err := app.OpenServices(configPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start: %w", err)
	}
	return services, nil
}

func unknownRouteError(key string, routes models.RouteTable) error {
	msg := fmt.Sprintf("route '%s' does not exist", key)
	if suggestions := utils.Suggest(key, routes.Keys(), 3); len(suggestions) > 0 {
		msg += "; did you mean " + strings.Join(suggestions, ", ") + "?"
	}
	return errors.New(msg)
}

func init() {
	routesCmd.AddCommand(listRoutesCmd)
	routesCmd.AddCommand(showRouteCmd)
	routesCmd.AddCommand(toggleRouteCmd)
}
