package cmd

import (
	"encoding/json"
	"fmt"

	"ewintr.nl/ytsummary/storage"
	"github.com/spf13/cobra"
)

var (
	outDir     string
	jsonOutput bool
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <url>",
	Short: "Summarize a single video",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		summarizer, err := newSummarizer(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}

		result := summarizer.Summarize(cmd.Context(), args[0])
		if jsonOutput {
			body, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(body))
		}
		if !result.OK() {
			return fmt.Errorf("%s", result.Error)
		}
		if !jsonOutput {
			fmt.Fprintln(cmd.OutOrStdout(), result.Response)
		}

		if outDir == "" {
			return nil
		}
		store, err := storage.NewTextStore(outDir)
		if err != nil {
			return err
		}
		path, err := store.Save(result)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "summary saved to %s\n", path)

		return nil
	},
}

func init() {
	summarizeCmd.Flags().StringVarP(&outDir, "out", "o", "", "also save the summary as <video id>.txt in this directory")
	summarizeCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the full result as JSON")
	rootCmd.AddCommand(summarizeCmd)
}
