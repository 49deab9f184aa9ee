package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/lixenwraith/field-sketch/audio"
	"github.com/lixenwraith/field-sketch/config"
	"github.com/lixenwraith/field-sketch/logging"
)

// runFunc receives the validated configuration, run in production
type runFunc func(ctx context.Context, cfg *config.Config) error

// newRootCmd wires flags, config file and environment into one viper instance
func newRootCmd(runner runFunc) *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "field-sketch",
		Short:         "Sketch charged shapes and current loops, watch their fields",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeConfig(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfigFromViper(v)
			if err != nil {
				return err
			}
			return runner(cmd.Context(), cfg)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default is ./field-sketch.yaml)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-file", "", "log file path, logging is off when empty")
	flags.Bool("mute", false, "start with audio cues muted")
	flags.String("color", config.ColorAuto, "color mode: auto, truecolor, 256")

	config.SetDefaults(v)
	_ = v.BindPFlag("logger.level", flags.Lookup("log-level"))
	_ = v.BindPFlag("logger.log_file", flags.Lookup("log-file"))
	_ = v.BindPFlag("audio.muted", flags.Lookup("mute"))
	_ = v.BindPFlag("display.color", flags.Lookup("color"))

	return cmd
}

// initializeConfig reads the config file and environment, a missing default file is not an error
func initializeConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("field-sketch")
	}

	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(config.EnvKeyReplacer)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}

// run owns the terminal for the lifetime of the program
func run(ctx context.Context, cfg *config.Config) error {
	log, closeLog, err := logging.New(cfg.Logger)
	if err != nil {
		return err
	}
	defer closeLog()

	applyColorMode(cfg.Display.Color)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Panic recovery: restore the terminal even if a handler crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			log.Error("crashed", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
			_ = closeLog()

			fmt.Fprintf(os.Stderr, "\n\x1b[31mFIELD-SKETCH CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	sound := audio.NewSoundManager(cfg.AudioConfig(), log)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, the sketch runs without sound
		log.Warn("audio unavailable", zap.Error(err))
	}
	defer sound.Cleanup()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := NewApp(screen, cfg, sound, log)
	log.Info("started", zap.Int("width", app.width), zap.Int("height", app.height))
	return app.Run(ctx)
}

// applyColorMode steers tcell's capability detection before the screen is created
func applyColorMode(mode string) {
	switch mode {
	case config.ColorTrueColor:
		os.Setenv("COLORTERM", "truecolor")
	case config.Color256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	}
}
