package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/urfave/cli/v2"
)

// Config is the probe configuration. Flags override the TOML file.
type Config struct {
	Quest        string `toml:"quest"`
	Width        int    `toml:"width"`
	Height       int    `toml:"height"`
	Acceleration bool   `toml:"acceleration"`
	Verbose      bool   `toml:"verbose"`
}

var defaultConfig = Config{
	Quest:        ".",
	Width:        320,
	Height:       240,
	Acceleration: true,
}

var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	questFlag = &cli.StringFlag{
		Name:  "quest",
		Usage: "quest data directory holding shaders/",
	}
	widthFlag = &cli.IntFlag{
		Name:  "width",
		Usage: "probe window width",
	}
	heightFlag = &cli.IntFlag{
		Name:  "height",
		Usage: "probe window height",
	}
	noAccelFlag = &cli.BoolFlag{
		Name:  "no-acceleration",
		Usage: "skip the GLSL backend and use the fixed-function fallback",
	}
	verboseFlag = &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "log debug output to stderr",
	}
)

func loadConfig(ctx *cli.Context) (Config, error) {
	cfg := defaultConfig

	if file := ctx.String(configFlag.Name); file != "" {
		md, err := toml.DecodeFile(file, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("config %s: %w", file, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, fmt.Errorf("config %s: unknown key %q", file, undecoded[0].String())
		}
	}

	if ctx.IsSet(questFlag.Name) {
		cfg.Quest = ctx.String(questFlag.Name)
	}
	if ctx.IsSet(widthFlag.Name) {
		cfg.Width = ctx.Int(widthFlag.Name)
	}
	if ctx.IsSet(heightFlag.Name) {
		cfg.Height = ctx.Int(heightFlag.Name)
	}
	if ctx.Bool(noAccelFlag.Name) {
		cfg.Acceleration = false
	}
	if ctx.Bool(verboseFlag.Name) {
		cfg.Verbose = true
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, fmt.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	return cfg, nil
}
