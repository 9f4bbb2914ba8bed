package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/pixel-gol/model"
	"github.com/sheikhrachel/pixel-gol/utils"
)

// newScene builds the scene for the configured variant
func newScene(config utils.Config) (model.Scene, error) {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	switch config.Variant {
	case utils.VariantStatic, utils.VariantLife:
		board, err := model.NewBoard(config.Width, config.Height, rng)
		if err != nil {
			return nil, errors.Wrap(err, "[newScene] failed to create board")
		}
		if config.Variant == utils.VariantStatic {
			return model.NewStaticScene(board), nil
		}
		return model.NewLifeScene(board), nil
	case utils.VariantCell:
		cell := model.Cell{X: config.Width / 2, Y: config.Height / 2, Status: model.Alive}
		return model.NewCellScene(cell, config.Width, config.Height), nil
	default:
		return nil, errors.Errorf("[newScene] unknown variant %q", config.Variant)
	}
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config) {
	fmt.Fprintf(out, "Variant: %s | Grid: %dx%d | Headless: %v\n",
		config.Variant, config.Width, config.Height, config.Headless)
	if config.Headless {
		fmt.Fprintln(out, "Press Enter to step, Ctrl+C to exit")
	} else {
		fmt.Fprintln(out, "Press any key to step, Escape to exit")
	}
}

// displayGameStatus shows the current game status
func displayGameStatus(out io.Writer, stats *utils.Stats) {
	fmt.Fprintf(out, "Gen: %d | Living: %d | Avg Pop: %.1f | Status: %s\n",
		stats.Generation, stats.Population, stats.AveragePopulation, stats.Status())
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Runtime: %.1fs\n",
		stats.GenerationsPerSecond(), time.Since(stats.StartTime).Seconds())
}

// readInputs turns every line read from in into an input signal. The goroutine
// outlives ctx if in blocks, so it is not part of any errgroup.
func readInputs(ctx context.Context, in io.Reader) <-chan struct{} {
	inputs := make(chan struct{})
	go func() {
		defer close(inputs)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case inputs <- struct{}{}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return inputs
}

// tick emits a step signal every interval until ctx is done
func tick(ctx context.Context, interval time.Duration, ticks chan<- struct{}) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			select {
			case ticks <- struct{}{}:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// runHeadless drives a scene from input signals and an optional ticker,
// presenting each frame to out. It returns when ctx is cancelled, the
// generation limit is reached, or inputs close with no ticker configured.
func runHeadless(
	ctx context.Context,
	config utils.Config,
	scene model.Scene,
	inputs <-chan struct{},
	out io.Writer,
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		width, height = scene.Size()
		frame         = make([]byte, 4*width*height)
		renderer      = model.NewTerminalRenderer(out)
		stats         = utils.NewStats()
		ticks         = make(chan struct{})
		eg, egCtx     = errgroup.WithContext(ctx)
	)

	evolving, isEvolving := scene.(model.Evolving)
	present := func() error {
		scene.Redraw(frame)
		if err := renderer.Clear(); err != nil {
			return err
		}
		if err := renderer.Display(frame, width, height); err != nil {
			return errors.Wrap(err, "[runHeadless] failed to present frame")
		}
		if isEvolving {
			displayGameStatus(out, stats)
		}
		return nil
	}

	if config.FrameRate > 0 {
		eg.Go(func() error {
			return tick(egCtx, config.FrameRate, ticks)
		})
	}

	eg.Go(func() error {
		defer cancel()

		if isEvolving {
			board := evolving.Board()
			stats.Update(evolving.Generation(), board.CountLivingCells(), board.GetBoardHash())
		}
		if err := present(); err != nil {
			return err
		}

		for {
			select {
			case <-egCtx.Done():
				return nil
			case _, ok := <-inputs:
				if !ok {
					if config.FrameRate <= 0 {
						return nil
					}
					inputs = nil
					continue
				}
			case <-ticks:
			}

			scene.Input()
			if isEvolving {
				board := evolving.Board()
				stats.Update(evolving.Generation(), board.CountLivingCells(), board.GetBoardHash())
			}
			if err := present(); err != nil {
				return err
			}

			if isEvolving && config.MaxGenerations > 0 && evolving.Generation() >= config.MaxGenerations {
				fmt.Fprintf(out, "Reached maximum generations limit (%d)\n", config.MaxGenerations)
				return nil
			}
		}
	})

	return eg.Wait()
}
