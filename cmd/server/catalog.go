package main

import (
	"fmt"

	"model-catalog-service/internal/adapters/secondary/catalogfile"
	"model-catalog-service/internal/core/domain"
	"model-catalog-service/internal/core/services"

	"github.com/spf13/cobra"
)

var (
	catalogQuery    string
	catalogCategory string
	catalogAccess   string
	catalogKind     string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print filtered catalog entries as YAML",
	Long: `Print catalog entries as YAML, filtered the same way as the browse API.
A search query overrides the category and access filters.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		catalog, err := catalogfile.Load(&cfg.Catalog)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		svc := services.NewCatalogService(catalog)

		tiers, err := domain.ParseAccessTiers(catalogAccess)
		if err != nil {
			return err
		}
		state := domain.FilterState{
			SearchQuery:    catalogQuery,
			ActiveCategory: catalogCategory,
			AccessTiers:    tiers,
		}

		var entries []domain.CatalogEntry
		switch catalogKind {
		case "models":
			entries = svc.ListModels(state)
		case "tools":
			entries = svc.ListTools(state)
		default:
			return fmt.Errorf("unknown kind %q: must be models or tools", catalogKind)
		}

		out, err := catalogfile.Encode(entries)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogQuery, "query", "q", "", "search title, description and model reference")
	catalogCmd.Flags().StringVar(&catalogCategory, "category", "", "category id, or all / trending")
	catalogCmd.Flags().StringVar(&catalogAccess, "access", "", "comma separated access tiers (free, pro)")
	catalogCmd.Flags().StringVar(&catalogKind, "kind", "models", "entries to list: models or tools")
	rootCmd.AddCommand(catalogCmd)
}
