package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/namesmith/namesmith/internal/server"
)

var (
	servePort       int
	serveConfigFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for generating and scoring domain name candidates.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVarP(&serveConfigFile, "config", "c", "", "Path to config JSON file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	pipe, registry, client, err := buildStack(context.Background(), serveConfigFile, "")
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	srv, err := server.New(server.Config{Port: servePort}, pipe, registry)
	if err != nil {
		return err
	}
	return srv.Start()
}
