package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sheikhrachel/pixel-gol/display"
	"github.com/sheikhrachel/pixel-gol/utils"
)

func main() {
	var (
		configPath = flag.String("config", "config.json", "Path to the JSON configuration file.")
		variant    = flag.String("variant", "", "Override the configured variant: static, life or cell.")
		headless   = flag.Bool("headless", false, "Render to the terminal instead of opening a window.")
	)
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if !utils.IsNotExist(err) {
			exit(err)
		}
		fmt.Printf("Using default configuration (%s not found)\n", *configPath)
		config = utils.DefaultConfig()
	}
	if *variant != "" {
		config.Variant = *variant
	}
	if *headless {
		config.Headless = true
	}
	if err = config.Validate(); err != nil {
		exit(err)
	}

	scene, err := newScene(config)
	if err != nil {
		exit(err)
	}
	displayGameInfo(os.Stdout, config)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if config.Headless {
		err = runHeadless(ctx, config, scene, readInputs(ctx, os.Stdin), os.Stdout)
	} else {
		err = display.Run(ctx, config, scene)
	}
	if err != nil {
		stop()
		exit(err)
	}
}

func exit(err error) {
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	os.Exit(1)
}
