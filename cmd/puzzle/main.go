package main

import (
	"flag"
	"os"
	"time"

	"gem-puzzle/internal/board"
	"gem-puzzle/internal/commands"
	"gem-puzzle/internal/config"
	"gem-puzzle/internal/debug"
	"gem-puzzle/internal/gems"
	"gem-puzzle/internal/graphics"
	"gem-puzzle/internal/logging"
	"gem-puzzle/internal/placement"
	"gem-puzzle/internal/scene"
	"gem-puzzle/internal/terminal"
	"gem-puzzle/internal/view"
)

func main() {
	if err := config.Load("config"); err != nil {
		fallback := logging.New("info", os.Stderr)
		fallback.Fatal().Err(err).Msg("loading config")
	}

	log := logging.New(config.GetString("log.level"), os.Stderr)
	if f, err := logging.OpenSessionFile(logging.DefaultLogsDir, time.Now()); err == nil {
		defer f.Close()
		log = logging.New(config.GetString("log.level"), os.Stderr, f)
	} else {
		log.Warn().Err(err).Msg("session log file unavailable")
	}

	reg := board.NewRegistry()
	ctrl := placement.New(reg, log)
	ctrl.SetHoverRadius(float32(config.GetFloat64("placement.hoverRadius")))
	ctrl.SetSuppressWindow(time.Duration(config.GetInt("placement.suppressWindowMs")) * time.Millisecond)

	scn := scene.New(
		float32(config.GetFloat64("camera.yaw")),
		float32(config.GetFloat64("camera.pitch")),
		float32(config.GetFloat64("camera.distance")),
	)
	scn.SetGridVisible(config.GetBool("grid.visible"))

	overlay := debug.New()
	overlay.SetShowFPS(config.GetBool("overlay.fps"))
	overlay.SetShowMem(config.GetBool("overlay.mem"))

	cmds := commands.NewRegistry()

	resetFlags := flag.NewFlagSet("reset", flag.ContinueOnError)
	cmds.Register("reset", resetFlags, func() error {
		ctrl.Reset()
		return nil
	})

	gridFlags := flag.NewFlagSet("grid", flag.ContinueOnError)
	gridVisible := gridFlags.Bool("visible", true, "show the board grid")
	cmds.Register("grid", gridFlags, func() error {
		scn.SetGridVisible(*gridVisible)
		return nil
	})

	fpsFlags := flag.NewFlagSet("fps", flag.ContinueOnError)
	cmds.Register("fps", fpsFlags, func() error {
		overlay.SetShowFPS(!overlay.ShowFPS)
		return nil
	})

	memFlags := flag.NewFlagSet("mem", flag.ContinueOnError)
	cmds.Register("mem", memFlags, func() error {
		overlay.SetShowMem(!overlay.ShowMem)
		return nil
	})

	term := terminal.New(log, cmds)
	gemReg := gems.NewRegistry()
	v := view.New(ctrl, scn, gemReg, log)

	update := func() {
		term.Update()
		if term.IsOpen() {
			return
		}
		scn.Update()
		v.Update()
	}
	draw := func() {
		v.Draw()
		term.Draw()
		overlay.Draw()
	}

	graphics.Run(
		config.GetInt("window.width"),
		config.GetInt("window.height"),
		config.GetString("window.title"),
		update, draw,
	)
}
