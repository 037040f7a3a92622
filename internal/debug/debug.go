// Package debug draws optional runtime overlays (FPS, heap use). All
// overlays are off by default and toggled from config or the command bar.
package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: refresh overlay text every N frames to limit allocations.
	updateInterval = 30
)

// Overlay holds the debug overlay state.
type Overlay struct {
	ShowFPS bool
	ShowMem bool

	frameCount uint32
	fpsText    string
	memText    string
	memStats   runtime.MemStats
}

// New returns an overlay with everything hidden.
func New() *Overlay {
	return &Overlay{}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (o *Overlay) SetShowFPS(show bool) {
	o.ShowFPS = show
}

// SetShowMem sets whether heap allocation is drawn under the FPS counter.
func (o *Overlay) SetShowMem(show bool) {
	o.ShowMem = show
}

// Draw renders any enabled overlays. Call last in the draw loop. Text is
// only recomputed every updateInterval frames.
func (o *Overlay) Draw() {
	o.frameCount++
	update := o.frameCount%updateInterval == 0
	if o.ShowFPS && o.fpsText == "" {
		update = true
	}
	if o.ShowMem && o.memText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if o.ShowFPS {
		if update {
			o.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(o.fpsText, screenW, y)
		y += lineHeight
	}
	if o.ShowMem {
		if update {
			runtime.ReadMemStats(&o.memStats)
			o.memText = fmt.Sprintf("Mem: %.2f MiB", float64(o.memStats.Alloc)/(1024*1024))
		}
		drawRight(o.memText, screenW, y)
	}
}

func drawRight(text string, screenW, y int32) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
}
