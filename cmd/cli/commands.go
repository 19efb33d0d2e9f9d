package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

const defaultHost = "http://localhost:8080"

func newRootCmd(out io.Writer) *cobra.Command {
	var host string
	client := func() *apiClient {
		return &apiClient{host: host, http: &http.Client{Timeout: 15 * time.Second}}
	}

	root := &cobra.Command{
		Use:          "fixtures",
		Short:        "Browse football fixtures served by football-fixtures-service",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&host, "host", defaultHost, "Base URL of the fixtures service")
	root.SetOut(out)

	root.AddCommand(
		newListCmd(client),
		newLeaguesCmd(client),
		newMatchCmd(client),
		newReloadCmd(client),
		newHealthCmd(client),
	)
	return root
}

func newListCmd(client func() *apiClient) *cobra.Command {
	var (
		league string
		page   int
		width  int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show one page of fixtures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := client().matches(cmd.Context(), league, page, width)
			if err != nil {
				return err
			}
			renderView(cmd.OutOrStdout(), view)
			return nil
		},
	}
	cmd.Flags().StringVar(&league, "league", "all", "League to show, or \"all\"")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&width, "width", 0, "Viewport width in px; narrow widths show fewer page controls")
	return cmd
}

func newLeaguesCmd(client func() *apiClient) *cobra.Command {
	return &cobra.Command{
		Use:   "leagues",
		Short: "List the league filter options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			leagues, err := client().leagues(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "all")
			for _, l := range leagues {
				fmt.Fprintln(out, l)
			}
			return nil
		},
	}
}

func newMatchCmd(client func() *apiClient) *cobra.Command {
	return &cobra.Command{
		Use:   "match <id>",
		Short: "Show a single fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := client().match(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderMatch(cmd.OutOrStdout(), m)
			return nil
		},
	}
}

func newReloadCmd(client func() *apiClient) *cobra.Command {
	var token string
	cmd := &cobra.Command{
		Use:   "reload",
		Short: "Ask the service to reload fixtures now (requires the admin token)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				token = os.Getenv("ADMIN_TOKEN")
			}
			status, err := client().reload(cmd.Context(), token)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "reload: %s\n", status)
			return nil
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "Admin token (defaults to $ADMIN_TOKEN)")
	return cmd
}

func newHealthCmd(client func() *apiClient) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check service health and readiness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client()
			out := cmd.OutOrStdout()
			for _, path := range []string{"/health", "/ready"} {
				status, err := c.probe(cmd.Context(), path)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s: %s\n", path, status)
			}
			return nil
		},
	}
}
