package main

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewGrid_Errors(t *testing.T) {
	tests := []struct {
		name   string
		matrix [][]int
		want   error
	}{
		{"nil matrix", nil, ErrEmptyGrid},
		{"empty row", [][]int{{}}, ErrEmptyGrid},
		{"ragged rows", [][]int{{0, 0}, {0}}, ErrNotRectangular},
		{"invalid value", [][]int{{0, 2}}, ErrInvalidCell},
		{"negative value", [][]int{{-1}}, ErrInvalidCell},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := NewGrid(tt.matrix)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
			if grid != nil {
				t.Error("Expected nil grid on error")
			}
		})
	}
}

func TestGrid_Dimensions(t *testing.T) {
	grid := mustGrid(t, [][]int{
		{0, 1, 0},
		{0, 0, 1},
	})

	if grid.Height() != 2 || grid.Width() != 3 {
		t.Errorf("Expected 2x3 grid, got %dx%d", grid.Height(), grid.Width())
	}
	if grid.PassableCount() != 4 {
		t.Errorf("Expected 4 free cells, got %d", grid.PassableCount())
	}
}

func TestGrid_IsObstacle(t *testing.T) {
	grid := mustGrid(t, [][]int{
		{0, 1},
		{1, 0},
	})

	blocked, err := grid.IsObstacle(Position{0, 1})
	if err != nil || !blocked {
		t.Errorf("Expected (0,1) blocked, got %v (err=%v)", blocked, err)
	}
	blocked, err = grid.IsObstacle(Position{1, 1})
	if err != nil || blocked {
		t.Errorf("Expected (1,1) free, got %v (err=%v)", blocked, err)
	}

	for _, p := range []Position{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if _, err := grid.IsObstacle(p); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("%v: expected ErrOutOfBounds, got %v", p, err)
		}
	}
}

func TestGrid_NeighborOrder(t *testing.T) {
	grid := mustGrid(t, emptyMatrix(3, 3))

	got := grid.Neighbors(Position{1, 1})
	want := []Position{{2, 1}, {0, 1}, {1, 2}, {1, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestGrid_NeighborsSkipEdgesAndObstacles(t *testing.T) {
	grid := mustGrid(t, [][]int{
		{0, 1, 0},
		{0, 0, 0},
		{0, 0, 0},
	})

	got := grid.Neighbors(Position{0, 0})
	want := []Position{{1, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	got = grid.Neighbors(Position{2, 2})
	want = []Position{{1, 2}, {2, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestGrid_MatrixIsCopy(t *testing.T) {
	source := [][]int{
		{0, 1},
		{0, 0},
	}
	grid := mustGrid(t, source)

	source[1][1] = 1
	matrix := grid.Matrix()
	if !reflect.DeepEqual(matrix, [][]int{{0, 1}, {0, 0}}) {
		t.Errorf("Expected layout unaffected by source edits, got %v", matrix)
	}

	matrix[0][0] = 1
	if blocked, _ := grid.IsObstacle(Position{0, 0}); blocked {
		t.Error("Expected grid unaffected by edits to Matrix result")
	}
}

func TestPosition_String(t *testing.T) {
	if got := (Position{Row: 3, Col: -1}).String(); got != "(3,-1)" {
		t.Errorf("Expected (3,-1), got %s", got)
	}
}
