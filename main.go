package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/faiface/pixel/pixelgl"

	"github.com/vaclav-dvorak/go-fractals/canvas"
	"github.com/vaclav-dvorak/go-fractals/canvas/terminal"
	"github.com/vaclav-dvorak/go-fractals/canvas/window"
	"github.com/vaclav-dvorak/go-fractals/chime"
	"github.com/vaclav-dvorak/go-fractals/explorer"
	"github.com/vaclav-dvorak/go-fractals/fractal"
	"github.com/vaclav-dvorak/go-fractals/input"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "config.toml", "path to the TOML config file")
	flag.Parse()

	conf, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	// both already checked by validate
	kind, _ := fractal.ParseKind(conf.App.Start)
	bindings, _ := input.NewBindings(conf.Keys)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch conf.App.Backend {
	case "terminal":
		err = runTerminal(ctx, conf, kind, bindings)
	default:
		pixelgl.Run(func() {
			err = runWindow(ctx, conf, kind, bindings)
		})
	}
	if err != nil {
		log.Printf("%v", err)
		stop()
		os.Exit(1)
	}
}

func runWindow(ctx context.Context, conf config, kind fractal.Kind, b input.Bindings) error {
	title := fmt.Sprintf("Fractal explorer @%s", version)
	win, err := window.New(title, conf.App.Width, conf.App.Height, b)
	if err != nil {
		return err
	}
	defer win.Close()

	explore(ctx, conf, win, win, kind)
	return nil
}

func runTerminal(ctx context.Context, conf config, kind fractal.Kind, b input.Bindings) error {
	// the terminal owns the tty; keep the log off it
	log.SetOutput(io.Discard)
	if conf.App.LogFile != "" {
		f, err := os.OpenFile(conf.App.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("error opening log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	term, err := terminal.New(b)
	if err != nil {
		return err
	}
	defer term.Close()

	explore(ctx, conf, term, term, kind)
	return nil
}

func explore(ctx context.Context, conf config, c canvas.Canvas, src input.Source, kind fractal.Kind) {
	w, h := c.Size()
	log.Printf("canvas: %dx%d, start: %s, steps: %d, seed: %d", w, h, kind, conf.Render.Steps, conf.Render.Seed)

	e := explorer.New(c, src, conf.presets(), kind, conf.Render, conf.Explorer)
	if conf.App.Chime {
		ch, err := chime.New()
		if err != nil {
			// non-fatal, explorer runs without sound
			log.Printf("Audio initialization failed: %v", err)
		}
		defer ch.Close()
		e.SetNotifier(ch)
	}
	e.Run(ctx)
}
