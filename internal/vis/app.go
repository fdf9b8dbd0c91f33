// Package vis implements a Gio-based playback view for solved grid
// schedules.
package vis

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/cbsta-grid/internal/core"
)

// App renders a solved instance and animates the schedule.
type App struct {
	inst     *core.Instance
	sol      *core.Solution
	playback *Playback
	theme    *material.Theme

	timelineTag int
}

// NewApp creates the playback application for a solved instance.
func NewApp(inst *core.Instance, sol *core.Solution) *App {
	return &App{
		inst:     inst,
		sol:      sol,
		playback: NewPlayback(sol.Makespan),
		theme:    material.NewTheme(),
	}
}

// Run starts the application event loop.
func (a *App) Run(w *app.Window) error {
	var ops op.Ops
	tag := new(int)

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			for {
				ev, ok := gtx.Event(key.Filter{Focus: tag})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					a.handleKey(ke)
				}
			}
			event.Op(gtx.Ops, tag)

			a.layout(gtx)
			e.Frame(gtx.Ops)

			if a.playback.Playing {
				a.playback.Advance()
				w.Invalidate()
			}
		}
	}
}

func (a *App) handleKey(e key.Event) {
	switch e.Name {
	case key.NameSpace:
		a.playback.TogglePlay()
	case key.NameLeftArrow:
		a.playback.StepBack()
	case key.NameRightArrow:
		a.playback.StepForward()
	case key.NameHome:
		a.playback.Reset()
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	paint.Fill(gtx.Ops, colorBackground)

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(a.layoutStatus),
		layout.Flexed(1, a.layoutGrid),
		layout.Rigid(a.layoutTimeline),
	)
}

func (a *App) layoutStatus(gtx layout.Context) layout.Dimensions {
	text := fmt.Sprintf("cost %d  makespan %d  t=%.1f  (space: play, arrows: step, home: reset)",
		a.sol.Cost, a.sol.Makespan, a.playback.CurrentTime)
	label := material.Label(a.theme, 14, text)
	label.Color = color.NRGBA{R: 210, G: 210, B: 215, A: 255}
	return layout.UniformInset(unit.Dp(8)).Layout(gtx, label.Layout)
}

func (a *App) layoutGrid(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	v := newGridView(a.inst.Grid, size)

	drawGrid(gtx, v, a.inst.Grid)
	for i := range a.sol.Plans {
		drawPath(gtx, v, &a.sol.Plans[i], colorPath)
	}
	for i, task := range a.sol.Tasks {
		drawGoal(gtx, v, a.inst.Goals[task], AgentColor(i))
	}
	for i := range a.sol.Plans {
		x, y := positionAt(&a.sol.Plans[i], a.playback.CurrentTime)
		drawAgent(gtx, v, x, y, AgentColor(i))
	}
	return layout.Dimensions{Size: size}
}

func (a *App) layoutTimeline(gtx layout.Context) layout.Dimensions {
	const height = 48
	const margin = 20
	width := gtx.Constraints.Max.X

	rect := image.Rect(0, 0, width, height)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 35, G: 38, B: 42, A: 255}, clip.Rect(rect).Op())

	// Scrub on press or drag.
	defer clip.Rect(rect).Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, &a.timelineTag)
	for {
		ev, ok := gtx.Event(pointer.Filter{Target: &a.timelineTag, Kinds: pointer.Press | pointer.Drag})
		if !ok {
			break
		}
		if pe, ok := ev.(pointer.Event); ok {
			frac := float64(pe.Position.X-margin) / float64(width-2*margin)
			a.playback.Playing = false
			a.playback.SetTime(frac * a.playback.MaxTime)
		}
	}

	trackY := height / 2
	track := image.Rect(margin, trackY-3, width-margin, trackY+3)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 60, G: 65, B: 70, A: 255}, clip.Rect(track).Op())

	fill := int(float64(width-2*margin) * a.playback.Progress())
	if fill > 0 {
		progress := image.Rect(margin, trackY-3, margin+fill, trackY+3)
		paint.FillShape(gtx.Ops, color.NRGBA{R: 100, G: 180, B: 255, A: 255}, clip.Rect(progress).Op())
	}

	head := image.Rect(margin+fill-5, trackY-8, margin+fill+5, trackY+8)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, clip.Rect(head).Op())

	return layout.Dimensions{Size: image.Point{X: width, Y: height}}
}
