package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-tennis/config"
)

var (
	configFlag      = flag.String("config", "", "TOML config file (default $VITENNIS_CONFIG)")
	envFileFlag     = flag.String("env", ".env", "env file with VITENNIS_* overrides")
	debugFlag       = flag.Bool("debug", false, "log to file and draw debug overlays")
	recordFlag      = flag.String("record", "", "write a replay journal to this path on exit")
	writeConfigFlag = flag.String("write-config", "", "write the effective config to this path and exit")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-tennis: %v\n", err)
		os.Exit(2)
	}

	if *writeConfigFlag != "" {
		if err := config.Save(*writeConfigFlag, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "vi-tennis: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if logFile := setupLogging(cfg.Log.Dir, cfg.Log.Debug); logFile != nil {
		defer logFile.Close()
	}

	keys, err := cfg.KeyMap()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-tennis: %v\n", err)
		os.Exit(2)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			log.Printf("crash: %v\n%s", r, debug.Stack())
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-TENNIS CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	r := newRunner(screen, cfg, keys)
	r.run()
	screen.Fini()

	if err := r.finish(cfg.Record.Path); err != nil {
		fmt.Fprintf(os.Stderr, "vi-tennis: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig layers defaults, the TOML file, the environment and flags, in that order
func loadConfig() (config.Config, error) {
	if err := config.LoadEnvFile(*envFileFlag); err != nil {
		return config.Config{}, err
	}

	path := *configFlag
	if path == "" {
		path = os.Getenv(config.EnvConfig)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	if *debugFlag {
		cfg.Log.Debug = true
		cfg.Display.DebugHitboxes = true
	}
	if *recordFlag != "" {
		cfg.Record.Path = *recordFlag
	}
	return cfg, nil
}
