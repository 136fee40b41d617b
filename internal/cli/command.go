package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mristin/extract-flash-cards/internal"
)

// CreateExtractCommand creates and configures the extract-flash-cards root command
func CreateExtractCommand(flags *ExtractFlags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "extract-flash-cards",
		Short: "Extract flash cards from a text using a chat-completion model",
		Long: `extract-flash-cards sends newline-delimited text to a chat-completion
model and extracts vocabulary pairs (source term, target translation) as CSV.

The text is assumed to be already split in sentences by newlines, so every
line is considered a phrase or a sentence in itself.

Examples:
  extract-flash-cards --text "Die Katze schläft." --source-language German --target-language English
  extract-flash-cards --text-path text.txt --output-path cards.csv
  extract-flash-cards --list-models`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	setupExtractFlags(rootCmd, flags)

	return rootCmd
}

func setupExtractFlags(cmd *cobra.Command, flags *ExtractFlags) {
	cmd.SetGlobalNormalizationFunc(normalizeFlagName)

	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.extract-flash-cards.yaml)")

	cmd.Flags().StringVar(&flags.SourceLanguage, "source-language", flags.SourceLanguage, "Source language of the text")
	cmd.Flags().StringVar(&flags.TargetLanguage, "target-language", flags.TargetLanguage, "Target language which we already master")
	cmd.Flags().StringVar(&flags.Text, "text", "", "Text that we want to extract the flash cards from")
	cmd.Flags().StringVar(&flags.TextPath, "text-path", "", "Path to the text file that we want to extract the flash cards from. Either --text or --text-path needs to be specified, but not both")
	cmd.Flags().StringVar(&flags.OpenAIKeyPath, "openai-key-path", flags.OpenAIKeyPath, "Path to the text file containing the OpenAI key")
	cmd.Flags().StringVarP(&flags.OutputPath, "output-path", "o", "", "Output CSV path (default is standard output)")
	cmd.Flags().StringVar(&flags.LLMProvider, "llm-provider", flags.LLMProvider, "Completion provider (openai or gemini)")
	cmd.Flags().StringVar(&flags.LLMModel, "llm-model", "", "Completion model (default depends on the provider)")
	cmd.Flags().IntVar(&flags.MaxBatchLength, "max-batch-length", flags.MaxBatchLength, "Maximum text length fed into a single prompt")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI models for the current API key")

	viper.BindPFlag("llm.provider", cmd.Flags().Lookup("llm-provider"))
	viper.BindPFlag("llm.model", cmd.Flags().Lookup("llm-model"))
}

// CreateDeckCommand creates and configures the csv-to-anki root command
func CreateDeckCommand(flags *DeckFlags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "csv-to-anki",
		Short: "Convert a vocabulary CSV file to an Anki deck",
		Long: `csv-to-anki reads a CSV of (source term, target translation) pairs and
assembles an Anki .apkg deck with one card per row. Audio for the source
terms can optionally be synthesized with OpenAI TTS or espeak-ng.

Examples:
  csv-to-anki --csv-path cards.csv --anki-path deck.apkg --deck-name "German A2"
  csv-to-anki --csv-path cards.csv --anki-path deck.apkg --deck-name "German A2" --synthesize-audio de`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	setupDeckFlags(rootCmd, flags)

	return rootCmd
}

func setupDeckFlags(cmd *cobra.Command, flags *DeckFlags) {
	cmd.SetGlobalNormalizationFunc(normalizeFlagName)

	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.extract-flash-cards.yaml)")

	cmd.Flags().StringVar(&flags.CSVPath, "csv-path", "", "Path to the CSV file with the generated cards")
	cmd.Flags().StringVar(&flags.AnkiPath, "anki-path", "", "Path to the file with the Anki deck")
	cmd.Flags().StringVar(&flags.AnkiCSVPath, "anki-csv-path", "", "Optional path for a legacy Anki CSV import file written next to the deck")
	cmd.Flags().StringVar(&flags.DeckName, "deck-name", "", "Name of the Anki deck")
	cmd.Flags().StringVar(&flags.SynthesizeAudio, "synthesize-audio", "", "Language code to synthesize the source terms with; if not specified, the audio is not synthesized")
	cmd.Flags().StringVar(&flags.AudioProvider, "audio-provider", flags.AudioProvider, "Audio provider (openai or espeak)")
	cmd.Flags().BoolVar(&flags.AudioFallback, "audio-fallback", false, "Fall back to espeak-ng when OpenAI TTS fails instead of aborting")
	cmd.Flags().StringVar(&flags.OpenAIKeyPath, "openai-key-path", flags.OpenAIKeyPath, "Path to the text file containing the OpenAI key")

	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI TTS model: tts-1, tts-1-hd, gpt-4o-mini-tts")
	cmd.Flags().StringVar(&flags.OpenAIVoice, "openai-voice", flags.OpenAIVoice, "OpenAI voice: alloy, ash, ballad, coral, echo, fable, onyx, nova, sage, shimmer, verse")
	cmd.Flags().Float64Var(&flags.OpenAISpeed, "openai-speed", flags.OpenAISpeed, "OpenAI speech speed (0.25 to 4.0)")
	cmd.Flags().StringVar(&flags.OpenAIInstruction, "openai-instruction", "", "Voice instructions for the gpt-4o-mini-tts model")

	cmd.MarkFlagRequired("csv-path")
	cmd.MarkFlagRequired("anki-path")
	cmd.MarkFlagRequired("deck-name")

	viper.BindPFlag("audio.provider", cmd.Flags().Lookup("audio-provider"))
	viper.BindPFlag("audio.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("audio.openai_voice", cmd.Flags().Lookup("openai-voice"))
	viper.BindPFlag("audio.openai_speed", cmd.Flags().Lookup("openai-speed"))
	viper.BindPFlag("audio.openai_instruction", cmd.Flags().Lookup("openai-instruction"))
}

// normalizeFlagName maps the underscore flag spellings of the historical
// tool (--text_path, --source_language, ...) onto the dashed ones so that
// documented invocations keep working. --output stays as a shorthand for
// --output-path.
func normalizeFlagName(f *pflag.FlagSet, name string) pflag.NormalizedName {
	name = strings.ReplaceAll(name, "_", "-")
	if name == "output" {
		name = "output-path"
	}
	return pflag.NormalizedName(name)
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".extract-flash-cards")
	}

	viper.SetEnvPrefix("EXTRACT_FLASH_CARDS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// ReadInputText resolves the extraction input from --text XOR --text-path.
// Both or neither given is a configuration error and nothing is written.
func ReadInputText(text, textPath string) (string, error) {
	if text != "" && textPath != "" {
		return "", fmt.Errorf("%w: both --text and --text-path have been specified; "+
			"you must specify only either one of them", internal.ErrConfiguration)
	}

	if text == "" && textPath == "" {
		return "", fmt.Errorf("%w: neither --text nor --text-path has been specified",
			internal.ErrConfiguration)
	}

	if textPath != "" {
		data, err := os.ReadFile(textPath)
		if err != nil {
			return "", fmt.Errorf("%w: failed to read --text-path %s: %v",
				internal.ErrFileIO, textPath, err)
		}
		return string(data), nil
	}

	return text, nil
}

// ResolveOpenAIKey retrieves the OpenAI API key: the key file first, then
// the environment, then the config file. keyPathSet tells whether the user
// set --openai-key-path explicitly; a missing default key file falls through
// to the other sources, a missing explicit one is an error.
func ResolveOpenAIKey(keyPath string, keyPathSet bool) (string, error) {
	if keyPath != "" {
		data, err := os.ReadFile(keyPath)
		if err == nil {
			return strings.TrimSpace(string(data)), nil
		}
		if keyPathSet {
			return "", fmt.Errorf("%w: failed to read --openai-key-path %s: %v",
				internal.ErrConfiguration, keyPath, err)
		}
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key, nil
	}

	return viper.GetString("llm.openai_key"), nil
}

// ResolveGeminiKey retrieves the Gemini API key from environment or config
func ResolveGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}

	return viper.GetString("llm.gemini_key")
}
