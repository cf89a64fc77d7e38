package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/chipfield/audio"
	"github.com/lixenwraith/chipfield/config"
	"github.com/lixenwraith/chipfield/constants"
	"github.com/lixenwraith/chipfield/engine"
	"github.com/lixenwraith/chipfield/input"
	"github.com/lixenwraith/chipfield/logging"
	"github.com/lixenwraith/chipfield/render"
)

func main() {
	app := &cli.App{
		Name:  "chipfield",
		Usage: "Infinite pannable suggestion-chip canvas",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "fps", Usage: "Render frame rate"},
			&cli.StringFlag{Name: "log", Usage: "Diagnostics log file"},
			&cli.BoolFlag{Name: "debug", Usage: "Debug logging (to file, never the terminal)"},
			&cli.BoolFlag{Name: "no-audio", Usage: "Disable sound cues"},
			&cli.Int64Flag{Name: "seed", Usage: "Session shuffle seed (0 = clock)"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "chipfield: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	// Flags override the environment
	if c.IsSet("fps") {
		cfg.FPS = c.Int("fps")
	}
	if c.IsSet("log") {
		cfg.LogPath = c.String("log")
	}
	if c.Bool("debug") {
		cfg.Debug = true
	}
	if c.Bool("no-audio") {
		cfg.Audio = false
	}
	if c.IsSet("seed") {
		cfg.Seed = c.Int64("seed")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.LogPath, cfg.Debug)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Panic recovery: finalize the screen before printing, so the trace is
	// readable and the terminal is sane
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nchipfield crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse()
	screen.Clear()

	ctx := engine.NewContext(screen, cfg, log)
	defer ctx.Teardown()

	if cfg.Audio {
		if err := ctx.Audio.Initialize(); err != nil {
			// Non-fatal: the field runs silent
			log.Warn("audio init failed", zap.Error(err))
		}
	}

	orchestrator := render.NewOrchestrator(screen, ctx.WidthCells, ctx.HeightCells)

	canvas := render.NewCanvasRenderer(ctx)
	statusBar := render.NewStatusBarRenderer(ctx)

	type rendererDef struct {
		renderer render.Renderer
		priority render.Priority
	}
	rendererList := []rendererDef{
		{canvas, render.PriorityCanvas},
		{statusBar, render.PriorityHUD},
		{render.NewHelpRenderer(ctx), render.PriorityOverlay},
	}
	for _, def := range rendererList {
		orchestrator.Register(def.renderer, def.priority)
	}

	ctx.Controller.SetSurface(canvas)
	ctx.SetHitTester(canvas)
	ctx.Router.Register(statusBar)
	ctx.Router.Register(audio.NewCueHandler[*engine.Context](ctx.Audio))

	pump := engine.NewEventPump(screen, constants.EventQueueSize)
	pump.SetCrashHandler(func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\nevent pump crashed: %v\n", r)
		fmt.Fprintf(os.Stderr, "stack trace:\n%s\n", debug.Stack())
		os.Exit(1)
	})
	pump.Start()

	frameTicker := time.NewTicker(cfg.FrameInterval())
	defer frameTicker.Stop()

	machine := input.NewMachine()
	log.Info("running", zap.Int("fps", cfg.FPS))

	for {
		select {
		case ev, open := <-pump.Events():
			if !open {
				return nil
			}
			// Gesture intents hit the controller synchronously; the live
			// transform and surface update here, culling waits for a frame
			if !ctx.Dispatch(machine.Process(ev)) {
				log.Info("quit")
				return nil
			}
			if resize, ok := ev.(*tcell.EventResize); ok {
				cols, rows := resize.Size()
				orchestrator.Resize(cols, rows)
			}

		case <-frameTicker.C:
			ctx.BeginFrame()
			ctx.Sched.RunFrame()
			ctx.Router.DispatchAll(ctx)
			orchestrator.RenderFrame()
		}
	}
}
