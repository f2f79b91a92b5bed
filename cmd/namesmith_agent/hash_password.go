package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/namesmith/namesmith/internal/config"
)

var hashPasswordCost int

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Hash an access password for ACCESS_PASSWORD_HASH",
	Args:  cobra.ExactArgs(1),
	RunE:  runHashPassword,
}

func init() {
	hashPasswordCmd.Flags().IntVar(&hashPasswordCost, "cost", 12, "bcrypt cost (10-14)")
	rootCmd.AddCommand(hashPasswordCmd)
}

func runHashPassword(_ *cobra.Command, args []string) error {
	hash, err := config.HashPassword(args[0], hashPasswordCost)
	if err != nil {
		return err
	}
	fmt.Println(hash)
	return nil
}
