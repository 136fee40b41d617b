package cli

// ExtractFlags holds the command-line flag values of extract-flash-cards
type ExtractFlags struct {
	CfgFile        string
	SourceLanguage string
	TargetLanguage string
	Text           string
	TextPath       string
	OpenAIKeyPath  string
	OutputPath     string
	LLMProvider    string
	LLMModel       string
	MaxBatchLength int
	ListModels     bool
}

// NewExtractFlags creates a new ExtractFlags instance with default values
func NewExtractFlags() *ExtractFlags {
	return &ExtractFlags{
		SourceLanguage: "Russian",
		TargetLanguage: "English",
		OpenAIKeyPath:  "openai-key.txt",
		LLMProvider:    "openai",
		MaxBatchLength: 3000,
	}
}

// DeckFlags holds the command-line flag values of csv-to-anki
type DeckFlags struct {
	CfgFile         string
	CSVPath         string
	AnkiPath        string
	AnkiCSVPath     string // Optional legacy CSV import file next to the deck
	DeckName        string
	SynthesizeAudio string // Language code; empty disables audio
	AudioProvider   string
	AudioFallback   bool
	OpenAIKeyPath   string

	// OpenAI TTS flags
	OpenAIModel       string
	OpenAIVoice       string
	OpenAISpeed       float64
	OpenAIInstruction string
}

// NewDeckFlags creates a new DeckFlags instance with default values
func NewDeckFlags() *DeckFlags {
	return &DeckFlags{
		AudioProvider: "openai",
		OpenAIKeyPath: "openai-key.txt",
		OpenAIModel:   "gpt-4o-mini-tts",
		OpenAIVoice:   "alloy",
		OpenAISpeed:   1.0,
	}
}
