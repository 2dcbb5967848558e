// Package main implements an MCP server exposing gofind's walker.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/taigrr/gofind/internal/config"
	"github.com/taigrr/gofind/internal/filesystem"
	"github.com/taigrr/gofind/internal/version"
)

var fileSystem *filesystem.Service

func main() {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "gofind-mcp [base-dir]",
		Short: "MCP server for finding files",
		Long: `gofind-mcp is a Model Context Protocol (MCP) server that lets any
MCP-compatible AI harness list and filter files beneath a base directory.
Searches cannot escape the base directory.`,
		Example: `gofind-mcp ~/src`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd, args, logLevel)
		},
	}
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(version.Get()),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, args []string, logLevel string) error {
	var basePath string
	if len(args) > 0 {
		basePath = args[0]
	} else {
		var err error
		basePath, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	info, err := os.Stat(basePath)
	if err != nil {
		return fmt.Errorf("base directory not found: %s", basePath)
	}
	if !info.IsDir() {
		return fmt.Errorf("base path is not a directory: %s", basePath)
	}

	level, err := config.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	// stdout carries the protocol, so logs go to stderr
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	fileSystem = filesystem.New(basePath, logger)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "gofind-mcp",
		Version: version.Get(),
	}, nil)

	registerTools(server)

	logger.Info("serving", "base", fileSystem.GetBasePath())
	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	return nil
}
