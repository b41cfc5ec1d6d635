package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/spf13/cobra"
)

var baseURL string

var rootCmd = &cobra.Command{
	Use:   "cardbase",
	Short: "Query a cardbase server",
}

func main() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", envOr("CARDBASE_URL", "http://localhost:8000"), "Base URL of the cardbase server")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// get fetches path from the server and pretty-prints the JSON response.
// Non-2xx responses are reported with the server's error payload.
func get(path string) error {
	resp, err := http.Get(baseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("server returned %s: %s", resp.Status, bytes.TrimSpace(body))
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		// Not JSON; print as-is.
		fmt.Println(string(body))
		return nil
	}
	fmt.Println(pretty.String())
	return nil
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cards with optional pagination",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")
		q := url.Values{}
		if limit > 0 {
			q.Set("limit", fmt.Sprint(limit))
		}
		if offset > 0 {
			q.Set("offset", fmt.Sprint(offset))
		}
		path := "/cards"
		if len(q) > 0 {
			path += "?" + q.Encode()
		}
		return get(path)
	},
}

var getCmd = &cobra.Command{
	Use:   "get <setId> <cardId>",
	Short: "Get one card by its composite key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return get("/cards/" + url.PathEscape(args[0]) + "/" + url.PathEscape(args[1]))
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Search cards by name substring",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return get("/cards/search/name/" + url.PathEscape(args[0]))
	},
}

var filterCmd = &cobra.Command{
	Use:       "filter <type|rarity|set> <value>",
	Short:     "Filter cards by an exact field value",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"type", "rarity", "set"},
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "type", "rarity", "set":
		default:
			return fmt.Errorf("unknown filter field %q (want type, rarity or set)", args[0])
		}
		return get("/cards/filter/" + args[0] + "/" + url.PathEscape(args[1]))
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show collection statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return get("/stats")
	},
}

func init() {
	listCmd.Flags().Int("limit", 0, "Maximum number of cards to return (1-1000)")
	listCmd.Flags().Int("offset", 0, "Number of cards to skip")
	rootCmd.AddCommand(listCmd, getCmd, searchCmd, filterCmd, statsCmd)
}
