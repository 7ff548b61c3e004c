package main

import (
	"encoding/json"

	"model-catalog-service/internal/adapters/primary/http/dto"
	"model-catalog-service/internal/adapters/secondary/huggingface"
	"model-catalog-service/internal/core/services"

	"github.com/spf13/cobra"
)

var modelCmd = &cobra.Command{
	Use:   "model <owner/name>",
	Short: "Fetch a registry model and print the normalized record as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		svc := services.NewModelDetailService(huggingface.NewRegistryClient(&cfg.Registry))
		detail, err := svc.GetRegistryModel(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(dto.ModelDetailEnvelope{Model: dto.ToModelDetailResponse(detail)})
	},
}

func init() {
	rootCmd.AddCommand(modelCmd)
}
