package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"ocr-shim/internal/config"
	"ocr-shim/internal/logger"
	"ocr-shim/internal/ocr"
	"ocr-shim/internal/ocr/engine"
	"ocr-shim/internal/output"
)

type CLI struct {
	configPath string
	engineType string
	lang       string
	noAngleCls bool

	stdout    io.Writer
	stderr    io.Writer
	newEngine func(engineType string, opts ocr.Options) (ocr.OCREngine, error)
}

func NewCLI() *CLI {
	return &CLI{
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		newEngine: engine.New,
	}
}

func (c *CLI) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ocr-shim <image_path>",
		Short: "Run OCR on one image and print the result as JSON",
		Long: `Runs one OCR pass over the given image and prints a single line of JSON:
the recognized lines as [box, [text, confidence]] entries, or {"error": "..."}
when the engine fails.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return c.run(cmd, args[0])
		},
	}
	// stdout carries the JSON line only; usage and help go to stderr
	cmd.SetOut(c.stderr)
	cmd.SetErr(c.stderr)

	cmd.Flags().StringVarP(&c.configPath, "config", "c", "", "config file path")
	cmd.Flags().StringVarP(&c.engineType, "engine", "e", "", "OCR engine type (tesseract, ollama)")
	cmd.Flags().StringVarP(&c.lang, "lang", "l", "", "recognition language code")
	cmd.Flags().BoolVar(&c.noAngleCls, "no-angle-cls", false, "disable text orientation classification")

	return cmd
}

func (c *CLI) Run(args []string) error {
	cmd := c.Command()
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	cmd.SetArgs(args)
	return cmd.Execute()
}

func (c *CLI) run(cmd *cobra.Command, imagePath string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.applyFlags(cmd, cfg)
	logger.Configure(c.stderr, cfg.LogLevel)

	logger.DebugLog("[CLI]: engine=%s lang=%s use_angle_cls=%t image=%s", cfg.Engine, cfg.Lang, cfg.UseAngleCls, imagePath)
	outcome := ocr.Run(func() (ocr.OCREngine, error) {
		return c.newEngine(cfg.Engine, cfg.EngineOptions())
	}, imagePath)

	if err := output.Render(c.stdout, outcome); err != nil {
		return fmt.Errorf("printing result: %w", err)
	}
	return nil
}

// applyFlags lets explicitly set flags override the loaded configuration.
func (c *CLI) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("engine") {
		cfg.Engine = c.engineType
	}
	if cmd.Flags().Changed("lang") {
		cfg.Lang = c.lang
	}
	if c.noAngleCls {
		cfg.UseAngleCls = false
	}
}
