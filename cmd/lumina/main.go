package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/PabloGalante/lumina/internal/adapters/llm"
	"github.com/PabloGalante/lumina/internal/adapters/storage/memory"
	"github.com/PabloGalante/lumina/internal/app/catalog"
	"github.com/PabloGalante/lumina/internal/app/studio"
	"github.com/PabloGalante/lumina/internal/config"
	"github.com/PabloGalante/lumina/internal/domain"
	"github.com/PabloGalante/lumina/internal/observability"
)

var rootCmd = &cobra.Command{
	Use:   "lumina",
	Short: "Restyle room photos with an AI image model and talk the result over",
	Long: `Lumina takes a photo of a room, re-renders it in a chosen interior style,
lets you compare before and after with a drag slider, and answers design
questions about the current render.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return cfg, nil
}

// loadStyles returns the catalog at path, or the built-in one.
func loadStyles(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	styles, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("error loading styles: %w", err)
	}
	return styles, nil
}

// bootstrap sets up logging and builds the studio service shared by every
// front end.
func bootstrap(ctx context.Context, cfg *config.Config, logOut io.Writer) (*studio.Service, error) {
	observability.Configure(logOut, cfg.LogLevel)
	log := observability.Logger()

	styles, err := loadStyles(cfg.StylesFile)
	if err != nil {
		return nil, err
	}

	var gateway domain.Gateway
	if cfg.UseMockGateway {
		log.Info("using mock gateway")
		gateway = llm.NewMockGateway()
	} else {
		log.Info("using gemini gateway", "mode", cfg.Mode, "image_model", cfg.ImageModel, "chat_model", cfg.ChatModel)
		gemini, err := llm.NewGeminiGateway(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("error initializing gemini gateway: %w", err)
		}
		gateway = gemini
	}

	svc := studio.NewService(llm.NewInstrumented(gateway), memory.NewSessionStore(), styles)
	return svc, nil
}
