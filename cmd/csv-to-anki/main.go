package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mristin/extract-flash-cards/internal/audio"
	"github.com/mristin/extract-flash-cards/internal/cli"
	"github.com/mristin/extract-flash-cards/internal/deck"
)

func main() {
	flags := cli.NewDeckFlags()

	rootCmd := cli.CreateDeckCommand(flags)

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

func runCommand(cmd *cobra.Command, flags *cli.DeckFlags) error {
	var provider audio.Provider

	if flags.SynthesizeAudio != "" {
		config := audio.DefaultProviderConfig()
		config.Provider = flags.AudioProvider
		config.Language = flags.SynthesizeAudio
		config.OpenAIModel = flags.OpenAIModel
		config.OpenAIVoice = flags.OpenAIVoice
		config.OpenAISpeed = flags.OpenAISpeed
		config.OpenAIInstruction = flags.OpenAIInstruction

		if config.Provider == "openai" {
			key, err := cli.ResolveOpenAIKey(
				flags.OpenAIKeyPath, cmd.Flags().Changed("openai-key-path"))
			if err != nil {
				return err
			}
			config.OpenAIKey = key
		}

		var err error
		provider, err = audio.NewProvider(config)
		if err != nil {
			return err
		}

		// Optional espeak-ng fallback; without it the first failed
		// synthesis call aborts the run.
		if flags.AudioFallback && config.Provider == "openai" {
			espeakConfig := audio.DefaultESpeakConfig()
			espeakConfig.Voice = flags.SynthesizeAudio

			fallback, err := audio.NewESpeakProvider(espeakConfig)
			if err != nil {
				fmt.Fprintf(os.Stderr,
					"Warning: espeak-ng fallback not available: %v\n", err)
			} else {
				provider = audio.NewProviderWithFallback(provider, fallback)
			}
		}
	}

	builder, err := deck.NewBuilder(&deck.Options{
		CSVPath:       flags.CSVPath,
		AnkiPath:      flags.AnkiPath,
		AnkiCSVPath:   flags.AnkiCSVPath,
		DeckName:      flags.DeckName,
		AudioProvider: provider,
	})
	if err != nil {
		return err
	}

	return builder.Build(cmd.Context())
}
