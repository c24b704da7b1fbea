// Command linkgen works with stateless compressed share links: the payload
// is carried entirely in the URL fragment, so these links need no server and
// never expire. It also maintains the local published and history lists.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"promptlink/internal/config"
	"promptlink/internal/fragment"
	"promptlink/internal/locallist"
	"promptlink/internal/models"
)

var rootCmd = &cobra.Command{
	Use:          "linkgen",
	Short:        "Generate and inspect stateless prompt share links",
	SilenceUsage: true,
}

var (
	encodeTranscript string
	encodePrompt     string
	encodeModes      string
	encodeTheme      string
	encodeModel      string
	encodeOrigin     string
	encodeNoRecord   bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Compress a payload into a shareable fragment URL",
	RunE: func(cmd *cobra.Command, args []string) error {
		if encodePrompt == "" || encodeTranscript == "" {
			return errors.New("both --prompt and --transcript are required")
		}

		now := time.Now().UnixMilli()
		data := &models.SharedPromptData{
			Transcript: encodeTranscript,
			Prompt:     encodePrompt,
			Modes:      encodeModes,
			Timestamp:  now,
			Theme:      encodeTheme,
			Model:      encodeModel,
		}

		encoded, err := fragment.Encode(data)
		if err != nil {
			return fmt.Errorf("encode payload: %w", err)
		}

		origin := encodeOrigin
		if origin == "" {
			origin = config.Load().BaseURL
		}
		url := strings.TrimSuffix(origin, "/") + "/shared#" + encoded

		fmt.Println(url)

		if !encodeNoRecord {
			store := publishedStore()
			items := locallist.Prepend(store.Load(), models.PublishedItem{
				ID:         models.ItemID(now),
				Timestamp:  now,
				Transcript: encodeTranscript,
				Prompt:     encodePrompt,
				Modes:      encodeModes,
				URL:        url,
			})
			store.Save(items)
		}
		return nil
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode <link-or-fragment>",
	Short: "Decode a fragment URL and print its payload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		encoded := args[0]
		if i := strings.LastIndex(encoded, "#"); i >= 0 {
			encoded = encoded[i+1:]
		}

		data := fragment.Decode(encoded)
		if data == nil {
			return errors.New("invalid or expired link")
		}

		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the local published list",
	RunE: func(cmd *cobra.Command, args []string) error {
		items := publishedStore().Load()
		if len(items) == 0 {
			fmt.Println("nothing published yet")
			return nil
		}
		for _, item := range items {
			fmt.Printf("%s  %s\n    %s\n",
				time.UnixMilli(item.Timestamp).Format("2006-01-02 15:04"),
				firstLine(item.Transcript),
				item.URL,
			)
		}
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the local prompt-generation history",
	RunE: func(cmd *cobra.Command, args []string) error {
		items := historyStore().Load()
		if len(items) == 0 {
			fmt.Println("no history yet")
			return nil
		}
		for _, item := range items {
			fmt.Printf("%s  %s\n",
				time.UnixMilli(item.Timestamp).Format("2006-01-02 15:04"),
				firstLine(item.Transcript),
			)
		}
		return nil
	},
}

var (
	historyAddTranscript string
	historyAddPrompt     string
	historyAddModes      string
)

var historyAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a generated prompt in the history list",
	RunE: func(cmd *cobra.Command, args []string) error {
		if historyAddPrompt == "" {
			return errors.New("--prompt is required")
		}

		now := time.Now().UnixMilli()
		store := historyStore()
		items := locallist.Prepend(store.Load(), models.HistoryItem{
			ID:         models.ItemID(now),
			Timestamp:  now,
			Transcript: historyAddTranscript,
			Prompt:     historyAddPrompt,
			Modes:      historyAddModes,
		})
		store.Save(items)
		return nil
	},
}

func publishedStore() *locallist.Store[models.PublishedItem] {
	return locallist.NewStore[models.PublishedItem](
		filepath.Join(config.Load().DataDir, locallist.PublishedFile))
}

func historyStore() *locallist.Store[models.HistoryItem] {
	return locallist.NewStore[models.HistoryItem](
		filepath.Join(config.Load().DataDir, locallist.HistoryFile))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func init() {
	encodeCmd.Flags().StringVar(&encodeTranscript, "transcript", "", "spoken or typed input the prompt was built from")
	encodeCmd.Flags().StringVar(&encodePrompt, "prompt", "", "generated prompt text")
	encodeCmd.Flags().StringVar(&encodeModes, "modes", "", "comma-joined mode ids")
	encodeCmd.Flags().StringVar(&encodeTheme, "theme", "", "optional theme")
	encodeCmd.Flags().StringVar(&encodeModel, "model", "", "optional model name")
	encodeCmd.Flags().StringVar(&encodeOrigin, "origin", "", "origin for the generated URL (default: BASE_URL)")
	encodeCmd.Flags().BoolVar(&encodeNoRecord, "no-record", false, "do not add the link to the published list")

	historyAddCmd.Flags().StringVar(&historyAddTranscript, "transcript", "", "input the prompt was built from")
	historyAddCmd.Flags().StringVar(&historyAddPrompt, "prompt", "", "generated prompt text")
	historyAddCmd.Flags().StringVar(&historyAddModes, "modes", "", "comma-joined mode ids")

	historyCmd.AddCommand(historyAddCmd)
	rootCmd.AddCommand(encodeCmd, decodeCmd, listCmd, historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
