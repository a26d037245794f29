package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var boardsFilter string

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "List your boards",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		boards, err := client.ListBoards(cmd.Context(), boardsFilter)
		if err != nil {
			return err
		}
		for _, b := range boards {
			closed := ""
			if b.Closed {
				closed = " (closed)"
			}
			fmt.Printf("%s  %s%s\n", b.ID, b.Name, closed)
		}
		return nil
	},
}

var boardCmd = &cobra.Command{
	Use:   "board <id>",
	Short: "Show a board and its lists",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		board, err := client.GetBoard(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s  %s\n", board.ID, board.Name)
		if board.Desc != nil && *board.Desc != "" {
			fmt.Println(*board.Desc)
		}
		lists, err := board.Lists(cmd.Context())
		if err != nil {
			return err
		}
		for _, l := range lists {
			fmt.Printf("  %s  %s\n", l.ID, l.Name)
		}
		return nil
	},
}

var addBoardCmd = &cobra.Command{
	Use:   "add-board <name>",
	Short: "Create a new board",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		board, err := client.AddBoard(cmd.Context(), args[0], nil)
		if err != nil {
			return err
		}
		fmt.Printf("created %s  %s\n", board.ID, board.Name)
		return nil
	},
}

var orgsCmd = &cobra.Command{
	Use:   "orgs",
	Short: "List your organizations",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		orgs, err := client.ListOrganizations(cmd.Context())
		if err != nil {
			return err
		}
		for _, o := range orgs {
			fmt.Printf("%s  %s\n", o.ID, o.DisplayName)
		}
		return nil
	},
}

func init() {
	boardsCmd.Flags().StringVar(&boardsFilter, "filter", "all", "board filter keyword")
	rootCmd.AddCommand(boardsCmd, boardCmd, addBoardCmd, orgsCmd)
}
