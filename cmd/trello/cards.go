package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cardCmd = &cobra.Command{
	Use:   "card <id>",
	Short: "Show a card with its list, board and attachments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		card, err := client.GetCard(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s  %s\n", card.ID, card.Name)
		fmt.Printf("  list:  %s  %s\n", card.List.ID, card.List.Name)
		fmt.Printf("  board: %s  %s\n", card.List.Board.ID, card.List.Board.Name)
		if card.Due != "" {
			fmt.Printf("  due:   %s\n", card.Due)
		}
		attachments, err := card.Attachments(cmd.Context())
		if err != nil {
			return err
		}
		for _, a := range attachments {
			fmt.Printf("  attachment: %s  %s (%d bytes)\n", a.ID, a.Name, a.Bytes)
		}
		return nil
	},
}

var memberCmd = &cobra.Command{
	Use:   "member <id>",
	Short: "Show a member",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		m, err := client.GetMember(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s  %s (%s)\n", m.ID, m.FullName, m.Username)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cardCmd, memberCmd)
}
