// Package terminal is the ESC-toggled command bar at the bottom of the
// screen. When open it captures typing and shows recent output; lines
// starting with "cmd " are parsed as subcommand + flags and run through the
// command registry. While the bar is open, board input is paused.
package terminal

import (
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"gem-puzzle/internal/commands"
)

const (
	BarHeight        = 40
	prompt           = "> "
	fontSize         = 20
	padding          = 8
	maxLinesOnScreen = 10
	lineHeight       = fontSize + 4
	maxHistory       = 200
)

// Reused every frame when drawing the bar to avoid per-frame color
// allocations.
var (
	barColor  = rl.NewColor(40, 40, 40, 255)
	lineColor = rl.NewColor(80, 80, 80, 255)
	historyBg = rl.NewColor(24, 24, 24, 240)
)

// Terminal is the command bar. It starts closed; ESC toggles it.
type Terminal struct {
	log      zerolog.Logger
	reg      *commands.Registry
	inputBuf string
	history  []string
	open     bool
}

// New returns a closed terminal that runs "cmd ..." lines through reg and
// logs every submitted line.
func New(log zerolog.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{
		log: log.With().Str("component", "terminal").Logger(),
		reg: reg,
	}
}

// IsOpen returns true when the bar is visible and capturing input.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// Println appends a line to the on-screen history (bounded).
func (t *Terminal) Println(line string) {
	t.history = append(t.history, line)
	if len(t.history) > maxHistory {
		t.history = t.history[len(t.history)-maxHistory:]
	}
}

// Update handles ESC (toggle), and when open: typing, backspace, enter.
// Call once per frame before board input.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.open = !t.open
	}
	if !t.open {
		return
	}
	for {
		c := rl.GetCharPressed()
		if c == 0 {
			break
		}
		t.inputBuf += string(rune(c))
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && t.inputBuf != "" {
		line := t.inputBuf
		t.inputBuf = ""
		t.Println(prompt + line)
		t.log.Info().Str("line", line).Msg("terminal input")

		args, isCmd := commands.Parse(line)
		if !isCmd {
			t.Println("commands start with \"cmd\", e.g. \"cmd reset\"")
			return
		}
		if err := t.reg.Execute(args); err != nil {
			t.Println(err.Error())
			t.log.Warn().Err(err).Msg("command failed")
		}
	}
}

// Draw draws the bar at the bottom when open, with recent history above it.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int(rl.GetScreenWidth())
	screenH := int(rl.GetScreenHeight())
	barY := screenH - BarHeight

	historyHeight := maxLinesOnScreen * lineHeight
	historyY := barY - historyHeight
	if historyY < 0 {
		historyHeight = barY
		historyY = 0
	}
	if historyHeight > 0 {
		rl.DrawRectangle(0, int32(historyY), int32(screenW), int32(historyHeight), historyBg)
	}
	start := 0
	if len(t.history) > maxLinesOnScreen {
		start = len(t.history) - maxLinesOnScreen
	}
	for i := start; i < len(t.history); i++ {
		y := historyY + (i-start)*lineHeight + padding
		line := t.history[i]
		if len(line) > 200 {
			line = line[:197] + "..."
		}
		rl.DrawText(line, int32(padding), int32(y), int32(fontSize), rl.LightGray)
	}

	rl.DrawRectangle(0, int32(barY), int32(screenW), int32(BarHeight), barColor)
	rl.DrawRectangle(0, int32(barY), int32(screenW), 1, lineColor)
	rl.DrawText(prompt+t.inputBuf+"|", int32(padding), int32(barY+padding), int32(fontSize), rl.White)
}
