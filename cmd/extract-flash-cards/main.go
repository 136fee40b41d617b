package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mristin/extract-flash-cards/internal/cli"
	"github.com/mristin/extract-flash-cards/internal/extract"
	"github.com/mristin/extract-flash-cards/internal/llm"
	"github.com/mristin/extract-flash-cards/internal/models"
	"github.com/mristin/extract-flash-cards/internal/vocab"
)

func main() {
	flags := cli.NewExtractFlags()

	rootCmd := cli.CreateExtractCommand(flags)

	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, flags)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, flags *cli.ExtractFlags) error {
	ctx := cmd.Context()

	openAIKey, err := cli.ResolveOpenAIKey(
		flags.OpenAIKeyPath, cmd.Flags().Changed("openai-key-path"))
	if err != nil {
		return err
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(openAIKey)
		return lister.ListAvailableModels(ctx)
	}

	text, err := cli.ReadInputText(flags.Text, flags.TextPath)
	if err != nil {
		return err
	}

	completer, err := llm.NewCompleter(ctx, &llm.Config{
		Provider:  flags.LLMProvider,
		Model:     flags.LLMModel,
		OpenAIKey: openAIKey,
		GeminiKey: cli.ResolveGeminiKey(),
	})
	if err != nil {
		return err
	}

	extractor := extract.NewExtractor(completer, &extract.Options{
		SourceLanguage: flags.SourceLanguage,
		TargetLanguage: flags.TargetLanguage,
		MaxBatchLength: flags.MaxBatchLength,
	})

	entries, err := extractor.Run(ctx, text)
	if err != nil {
		return err
	}

	if flags.OutputPath == "" {
		return vocab.Write(os.Stdout, entries)
	}

	if err := vocab.WriteFile(flags.OutputPath, entries); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Wrote %d vocabulary entries to %s\n",
		len(entries), flags.OutputPath)
	return nil
}
