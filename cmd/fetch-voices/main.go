// Command fetch-voices retrieves the ElevenLabs voice catalog and prints
// it as a single JSON line on stdout so the editor process can capture
// it. Every failure becomes a single JSON error envelope on stderr and a
// non-zero exit code; the two streams are never both written.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Adwait10-prog/Rian-Audio-Editor2/config"
	"github.com/Adwait10-prog/Rian-Audio-Editor2/services/providers"
	"github.com/Adwait10-prog/Rian-Audio-Editor2/services/providers/elevenlabs"
	"go.uber.org/zap"
)

// errorEnvelope is the normalized failure shape consumed by the parent
// process.
type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func main() {
	if fetchVoices(os.Stdout, os.Stderr) {
		os.Exit(0)
	}
	os.Exit(1)
}

// fetchVoices performs the single fetch and writes exactly one JSON line
// to exactly one of stdout/stderr. It reports success for the exit code.
func fetchVoices(stdout, stderr io.Writer) bool {
	logger := initLogger()
	defer logger.Sync()

	cfg, err := config.New()
	if err != nil {
		emitError(stderr, err)
		return false
	}

	client := elevenlabs.NewClient(providers.ProviderConfig{
		APIKey:  cfg.ElevenLabs.APIKey,
		BaseURL: cfg.ElevenLabs.BaseURL,
		Timeout: cfg.ElevenLabs.Timeout,
	}, logger)

	return fetchAndEmit(context.Background(), client, stdout, stderr)
}

func fetchAndEmit(ctx context.Context, client providers.VoiceLister, stdout, stderr io.Writer) bool {
	payload, err := client.FetchVoices(ctx)
	if err != nil {
		emitError(stderr, err)
		return false
	}

	fmt.Fprintln(stdout, string(payload))
	return true
}

func emitError(stderr io.Writer, err error) {
	line, merr := json.Marshal(envelopeFor(err))
	if merr != nil {
		fmt.Fprintln(stderr, `{"error":"Unexpected error","message":"failed to encode error envelope"}`)
		return
	}
	fmt.Fprintln(stderr, string(line))
}

// envelopeFor maps the provider error taxonomy onto the envelope
// categories the parent process matches on.
func envelopeFor(err error) errorEnvelope {
	var provErr *providers.ProviderError
	if errors.As(err, &provErr) {
		switch provErr.Kind {
		case providers.KindStatus:
			return errorEnvelope{
				Error:   fmt.Sprintf("ElevenLabs API returned status %d", provErr.StatusCode),
				Message: provErr.Message,
			}
		case providers.KindTransport:
			return errorEnvelope{
				Error:   "Request failed",
				Message: provErr.Message,
			}
		default:
			return errorEnvelope{
				Error:   "Unexpected error",
				Message: provErr.Message,
			}
		}
	}

	return errorEnvelope{
		Error:   "Unexpected error",
		Message: err.Error(),
	}
}

// initLogger returns a nop logger unless FETCH_VOICES_DEBUG is set:
// stdout and stderr are the data plane here, so diagnostics are opt-in.
func initLogger() *zap.Logger {
	if os.Getenv("FETCH_VOICES_DEBUG") == "" {
		return zap.NewNop()
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
