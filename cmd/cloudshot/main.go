package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/ytget/cloudshot/internal/config"
	"github.com/ytget/cloudshot/internal/history"
	"github.com/ytget/cloudshot/internal/model"
	"github.com/ytget/cloudshot/internal/platform"
	"github.com/ytget/cloudshot/internal/texture"
	"github.com/ytget/cloudshot/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.cloudshot"
	AppName = "CloudShot"
)

// Flag names
const (
	FlagCapturesDir = "captures-dir"
	FlagHistory     = "history"
	FlagLang        = "lang"
)

type options struct {
	capturesDir string
	historyFile string
	lang        string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "cloudshot",
		Short:         "Browse recent screenshots and screen recordings",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.capturesDir, FlagCapturesDir, "", "directory holding capture images (saved to settings)")
	cmd.Flags().StringVar(&opts.historyFile, FlagHistory, "", "capture-history TOML file, empty for built-in samples (saved to settings)")
	cmd.Flags().StringVar(&opts.lang, FlagLang, "", "interface language: system, en, ru or pt (saved to settings)")

	cmd.AddCommand(newHistoryCmd())
	return cmd
}

func newHistoryCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "history-init <file>",
		Short: "Write the built-in sample captures as a history file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if dir == "" {
				dir = filepath.Dir(path)
			}
			now := time.Now()
			if err := history.Save(path, dir, model.SampleRecords(dir, now), now); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "captures directory the entries are relative to (default: the file's directory)")
	return cmd
}

// applyFlags persists explicitly set flags into settings
func applyFlags(cmd *cobra.Command, settings *config.Settings, opts options) {
	flags := cmd.Flags()
	if flags.Changed(FlagCapturesDir) {
		settings.SetCapturesDirectory(opts.capturesDir)
	}
	if flags.Changed(FlagHistory) {
		settings.SetHistoryFile(opts.historyFile)
	}
	if flags.Changed(FlagLang) {
		settings.SetLanguage(opts.lang)
	}
}

// loadCaptures reads the capture list and decodes every image into a frozen cache
func loadCaptures(settings *config.Settings, now time.Time) ([]model.CaptureRecord, *texture.Cache, error) {
	dir := settings.GetCapturesDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		log.Printf("failed to ensure captures dir %s: %v", dir, err)
	}

	records, err := history.Load(settings.GetHistoryFile(), dir, now)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load capture history: %w", err)
	}

	cache := texture.New()
	texture.Populate(cache, records, platform.Load)
	return records, cache, nil
}

func run(cmd *cobra.Command, opts options) error {
	log.Printf("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewBrandTheme())

	settings := config.NewSettings(myApp)
	applyFlags(cmd, settings, opts)

	records, cache, err := loadCaptures(settings, time.Now())
	if err != nil {
		return err
	}

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	ui.NewRootUI(myWindow, myApp, records, cache)

	myWindow.ShowAndRun()
	return nil
}
