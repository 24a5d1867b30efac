package main

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
)

var (
	colorFree     = color.White
	colorObstacle = color.Black
	colorGridLine = color.Black
	colorStart    = color.RGBA{255, 0, 0, 255}
	colorTarget   = color.RGBA{0, 0, 255, 255}
	colorPath     = color.RGBA{0, 255, 0, 255}
)

const markerRadius = 5

// RenderFrame draws the grid, the start marker and the frame's path
func RenderFrame(grid *Grid, frame Frame, cellSize int) image.Image {
	return drawFrame(grid, frame, cellSize).Image()
}

// WriteFramePNG encodes the rendered frame as PNG
func WriteFramePNG(w io.Writer, grid *Grid, frame Frame, cellSize int) error {
	return drawFrame(grid, frame, cellSize).EncodePNG(w)
}

func drawFrame(grid *Grid, frame Frame, cellSize int) *gg.Context {
	width, height := grid.Width()*cellSize, grid.Height()*cellSize
	size := float64(cellSize)

	dc := gg.NewContext(width, height)
	dc.SetColor(colorFree)
	dc.Clear()

	// Cells
	dc.SetColor(colorObstacle)
	for row := 0; row < grid.Height(); row++ {
		for col := 0; col < grid.Width(); col++ {
			if grid.blocked(Position{Row: row, Col: col}) {
				dc.DrawRectangle(float64(col*cellSize), float64(row*cellSize), size, size)
			}
		}
	}
	dc.Fill()

	// Grid lines
	dc.SetColor(colorGridLine)
	dc.SetLineWidth(1)
	for x := 0; x <= width; x += cellSize {
		dc.DrawLine(float64(x), 0, float64(x), float64(height))
	}
	for y := 0; y <= height; y += cellSize {
		dc.DrawLine(0, float64(y), float64(width), float64(y))
	}
	dc.Stroke()

	// Path, without the start cell
	if len(frame.Path) > 1 {
		dc.SetColor(colorPath)
		for _, p := range frame.Path[1:] {
			center := CellCenter(p, cellSize)
			dc.DrawCircle(center.X(), center.Y(), markerRadius)
		}
		dc.Fill()
	}

	if frame.Blocked {
		center := CellCenter(frame.Target, cellSize)
		dc.SetColor(colorTarget)
		dc.DrawCircle(center.X(), center.Y(), markerRadius)
		dc.Fill()
	}

	start := CellCenter(frame.Start, cellSize)
	dc.SetColor(colorStart)
	dc.DrawCircle(start.X(), start.Y(), markerRadius)
	dc.Fill()

	return dc
}
