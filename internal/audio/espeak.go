package audio

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mristin/extract-flash-cards/internal"
)

// ESpeakConfig holds configuration for espeak-ng audio generation
type ESpeakConfig struct {
	Voice     string // Voice / language code (e.g., "de", "bg", "bg+f1")
	Speed     int    // Speech speed in words per minute (default: 150)
	Pitch     int    // Pitch adjustment, 0 to 99 (default: 50)
	Amplitude int    // Volume/amplitude, 0 to 200 (default: 100)
	WordGap   int    // Gap between words in 10ms units (default: 0)
}

// DefaultESpeakConfig returns the default configuration
func DefaultESpeakConfig() *ESpeakConfig {
	return &ESpeakConfig{
		Voice:     "en",
		Speed:     150,
		Pitch:     50,
		Amplitude: 100,
		WordGap:   0,
	}
}

// ESpeak provides an interface to the espeak-ng text-to-speech engine
type ESpeak struct {
	config *ESpeakConfig
}

// New creates a new ESpeak instance with the given configuration
func New(config *ESpeakConfig) (*ESpeak, error) {
	if err := checkESpeakInstalled(); err != nil {
		return nil, err
	}

	if config == nil {
		config = DefaultESpeakConfig()
	}
	if config.Voice == "" {
		config.Voice = "en"
	}

	return &ESpeak{config: config}, nil
}

// GenerateAudio generates a WAV audio file for the given text
func (e *ESpeak) GenerateAudio(text string, outputFile string) error {
	if err := ValidateText(text); err != nil {
		return err
	}

	// Ensure output directory exists
	dir := filepath.Dir(outputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: failed to create output directory: %v",
				internal.ErrFileIO, err)
		}
	}

	args := []string{
		"-v", e.config.Voice,
		"-s", fmt.Sprintf("%d", e.config.Speed),
		"-p", fmt.Sprintf("%d", e.config.Pitch),
		"-a", fmt.Sprintf("%d", e.config.Amplitude),
	}

	if e.config.WordGap > 0 {
		args = append(args, "-g", fmt.Sprintf("%d", e.config.WordGap))
	}

	args = append(args, "-w", outputFile, text)

	cmd := exec.Command("espeak-ng", args...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: espeak-ng failed: %v\nOutput: %s",
			internal.ErrExternalService, err, string(output))
	}

	return nil
}

// GenerateMP3 generates an MP3 file by converting espeak-ng's WAV output
func (e *ESpeak) GenerateMP3(text string, outputFile string) error {
	tempWAV := strings.TrimSuffix(outputFile, filepath.Ext(outputFile)) + "_temp.wav"

	if err := e.GenerateAudio(text, tempWAV); err != nil {
		return err
	}

	if err := ConvertWAVToMP3(tempWAV, outputFile); err != nil {
		os.Remove(tempWAV)
		return err
	}

	return os.Remove(tempWAV)
}

// checkESpeakInstalled verifies that espeak-ng is available on the system
func checkESpeakInstalled() error {
	cmd := exec.Command("espeak-ng", "--version")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: espeak-ng is not installed or not in PATH: %v",
			internal.ErrConfiguration, err)
	}
	return nil
}

// ConvertWAVToMP3 converts a WAV file to MP3 using ffmpeg
func ConvertWAVToMP3(wavFile, mp3File string) error {
	if err := exec.Command("ffmpeg", "-version").Run(); err != nil {
		return fmt.Errorf("%w: ffmpeg is not installed or not in PATH: %v",
			internal.ErrConfiguration, err)
	}

	cmd := exec.Command("ffmpeg", "-i", wavFile, "-acodec", "mp3", "-y", mp3File)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: ffmpeg conversion failed: %v\nOutput: %s",
			internal.ErrExternalService, err, string(output))
	}

	return nil
}
