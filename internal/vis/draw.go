package vis

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/elektrokombinacija/cbsta-grid/internal/core"
)

var (
	colorBackground = color.NRGBA{R: 30, G: 30, B: 35, A: 255}
	colorCell       = color.NRGBA{R: 48, G: 50, B: 56, A: 255}
	colorObstacle   = color.NRGBA{R: 18, G: 18, B: 22, A: 255}
	colorPath       = color.NRGBA{R: 90, G: 95, B: 105, A: 255}

	agentPalette = []color.NRGBA{
		{R: 100, G: 200, B: 255, A: 255},
		{R: 255, G: 150, B: 100, A: 255},
		{R: 160, G: 230, B: 120, A: 255},
		{R: 230, G: 120, B: 220, A: 255},
		{R: 255, G: 220, B: 110, A: 255},
		{R: 140, G: 140, B: 255, A: 255},
	}
)

// AgentColor returns the display color for an agent index.
func AgentColor(agent int) color.NRGBA {
	return agentPalette[agent%len(agentPalette)]
}

// gridView maps grid cells onto a screen viewport.
type gridView struct {
	cell     float32
	offsetX  float32
	offsetY  float32
	gridDimY int
}

// newGridView fits the grid into the viewport with a margin. Grid y
// grows upward, screen y downward, so rows are flipped.
func newGridView(grid core.Grid, size image.Point) gridView {
	const margin = 24
	w := float32(size.X - 2*margin)
	h := float32(size.Y - 2*margin)
	cell := w / float32(grid.DimX)
	if c := h / float32(grid.DimY); c < cell {
		cell = c
	}
	return gridView{
		cell:     cell,
		offsetX:  (float32(size.X) - cell*float32(grid.DimX)) / 2,
		offsetY:  (float32(size.Y) - cell*float32(grid.DimY)) / 2,
		gridDimY: grid.DimY,
	}
}

// cellOrigin returns the top-left screen corner of a cell.
func (v gridView) cellOrigin(l core.Location) (float32, float32) {
	x := v.offsetX + float32(l.X)*v.cell
	y := v.offsetY + float32(v.gridDimY-1-l.Y)*v.cell
	return x, y
}

// center returns the screen center of fractional grid coordinates.
func (v gridView) center(x, y float64) (float32, float32) {
	sx := v.offsetX + (float32(x)+0.5)*v.cell
	sy := v.offsetY + (float32(v.gridDimY)-0.5-float32(y))*v.cell
	return sx, sy
}

func drawGrid(gtx layout.Context, v gridView, grid core.Grid) {
	gap := v.cell * 0.04
	for y := 0; y < grid.DimY; y++ {
		for x := 0; x < grid.DimX; x++ {
			loc := core.Location{X: x, Y: y}
			cx, cy := v.cellOrigin(loc)
			col := colorCell
			if grid.Blocked(loc) {
				col = colorObstacle
			}
			rect := image.Rect(int(cx+gap), int(cy+gap), int(cx+v.cell-gap), int(cy+v.cell-gap))
			paint.FillShape(gtx.Ops, col, clip.Rect(rect).Op())
		}
	}
}

func drawPath(gtx layout.Context, v gridView, plan *core.PlanResult, col color.NRGBA) {
	if len(plan.States) < 2 {
		return
	}
	var path clip.Path
	path.Begin(gtx.Ops)
	x0, y0 := v.center(float64(plan.States[0].State.X), float64(plan.States[0].State.Y))
	path.MoveTo(f32.Pt(x0, y0))
	for _, e := range plan.States[1:] {
		x, y := v.center(float64(e.State.X), float64(e.State.Y))
		path.LineTo(f32.Pt(x, y))
	}
	paint.FillShape(gtx.Ops, col, clip.Stroke{Path: path.End(), Width: 2}.Op())
}

func drawGoal(gtx layout.Context, v gridView, goal core.Location, col color.NRGBA) {
	cx, cy := v.center(float64(goal.X), float64(goal.Y))
	r := v.cell * 0.34
	outer := image.Rect(int(cx-r), int(cy-r), int(cx+r), int(cy+r))
	paint.FillShape(gtx.Ops, col, clip.Stroke{Path: clip.RRect{Rect: outer}.Path(gtx.Ops), Width: 2}.Op())
}

func drawAgent(gtx layout.Context, v gridView, x, y float64, col color.NRGBA) {
	cx, cy := v.center(x, y)
	r := v.cell * 0.3
	rect := image.Rect(int(cx-r), int(cy-r), int(cx+r), int(cy+r))
	paint.FillShape(gtx.Ops, col, clip.Ellipse(rect).Op(gtx.Ops))
}

// positionAt interpolates an agent's position at fractional time t.
func positionAt(plan *core.PlanResult, t float64) (float64, float64) {
	i := int(math.Floor(t))
	frac := t - float64(i)
	a := plan.StateAt(i)
	b := plan.StateAt(i + 1)
	return float64(a.X) + frac*float64(b.X-a.X), float64(a.Y) + frac*float64(b.Y-a.Y)
}
