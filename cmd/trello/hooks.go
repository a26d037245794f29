package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var hooksCmd = &cobra.Command{
	Use:   "hooks",
	Short: "Manage webhooks for your token",
}

var hooksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered webhooks",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		hooks, err := client.ListHooks(cmd.Context(), "")
		if err != nil {
			return err
		}
		for _, h := range hooks {
			fmt.Printf("%s  model=%s active=%t  %s\n", h.ID, h.ModelID, h.Active, h.CallbackURL)
		}
		return nil
	},
}

var hooksCreateCmd = &cobra.Command{
	Use:   "create <callback-url> <model-id>",
	Short: "Register a new webhook",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		desc, _ := cmd.Flags().GetString("description")
		hook, err := client.CreateHook(cmd.Context(), args[0], args[1], desc, "")
		if err != nil {
			return err
		}
		fmt.Printf("created webhook %s\n", hook.ID)
		return nil
	},
}

var hooksDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a webhook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		hooks, err := client.ListHooks(cmd.Context(), "")
		if err != nil {
			return err
		}
		for _, h := range hooks {
			if h.ID == args[0] {
				if err := h.Delete(cmd.Context()); err != nil {
					return err
				}
				fmt.Printf("deleted webhook %s\n", h.ID)
				return nil
			}
		}
		return fmt.Errorf("no webhook with id %s", args[0])
	},
}

func init() {
	hooksCreateCmd.Flags().String("description", "", "webhook description")
	hooksCmd.AddCommand(hooksListCmd, hooksCreateCmd, hooksDeleteCmd)
	rootCmd.AddCommand(hooksCmd)
}
