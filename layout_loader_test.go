package main

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeLayoutFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadLayout_MatrixJSON(t *testing.T) {
	want := [][]int{{0, 1}, {0, 0}}

	//region Bare matrix
	path := writeLayoutFile(t, "bare.json", `[[0,1],[0,0]]`)
	got, err := LoadLayout(path, 0, 0, 50)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	//endregion

	//region Object with cells
	path = writeLayoutFile(t, "object.JSON", `{"cells": [[0,1],[0,0]]}`)
	got, err = LoadLayout(path, 0, 0, 50)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	//endregion
}

func TestLoadLayout_BadMatrixJSON(t *testing.T) {
	path := writeLayoutFile(t, "nocells.json", `{"rows": 2}`)
	if _, err := LoadLayout(path, 0, 0, 50); !errors.Is(err, ErrUnsupportedLayout) {
		t.Errorf("Expected ErrUnsupportedLayout, got %v", err)
	}

	path = writeLayoutFile(t, "broken.json", `[[0,1`)
	if _, err := LoadLayout(path, 0, 0, 50); err == nil {
		t.Error("Expected parse error for truncated JSON")
	}
}

func TestLoadLayout_GeoJSON(t *testing.T) {
	path := writeLayoutFile(t, "obstacles.geojson", `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"name": "wall"},
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[50, 50], [150, 50], [150, 100], [50, 100], [50, 50]]]
      }
    },
    {
      "type": "Feature",
      "properties": {"name": "marker"},
      "geometry": {"type": "Point", "coordinates": [10, 10]}
    },
    {
      "type": "Feature",
      "properties": {"name": "towers"},
      "geometry": {
        "type": "MultiPolygon",
        "coordinates": [
          [[[0, 100], [40, 100], [40, 150], [0, 150], [0, 100]]],
          [[[160, 0], [200, 0], [200, 40], [160, 40], [160, 0]]]
        ]
      }
    }
  ]
}`)

	got, err := LoadLayout(path, 3, 4, 50)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	want := [][]int{
		{0, 0, 0, 1},
		{0, 1, 1, 0},
		{1, 0, 0, 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestLoadLayout_Errors(t *testing.T) {
	path := writeLayoutFile(t, "layout.txt", "0 1\n1 0\n")
	if _, err := LoadLayout(path, 2, 2, 50); !errors.Is(err, ErrUnsupportedLayout) {
		t.Errorf("Expected ErrUnsupportedLayout, got %v", err)
	}

	missing := filepath.Join(t.TempDir(), "missing.json")
	if _, err := LoadLayout(missing, 2, 2, 50); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}

	path = writeLayoutFile(t, "broken.geojson", `{"type": "Feature"`)
	if _, err := LoadLayout(path, 2, 2, 50); err == nil {
		t.Error("Expected parse error for broken GeoJSON")
	}
}

func TestRasterizeObstacles_PatchOverHole(t *testing.T) {
	obstacles := []Obstacle{
		squareWithHole(0, 0, 100, 100, 40, 60),
		square(20, 20, 80, 80),
	}

	merged := RasterizeObstacles(obstacles, 10, 10, 10)
	direct := NewSpatialIndex(obstacles).Rasterize(10, 10, 10)
	if !reflect.DeepEqual(merged, direct) {
		t.Errorf("Expected merging not to change the raster, got %v vs %v", merged, direct)
	}
	if merged[4][4] != 1 || merged[5][5] != 1 {
		t.Errorf("Expected hole cells covered by the patch, got %d and %d", merged[4][4], merged[5][5])
	}
}

func TestRasterizeObstacles_Empty(t *testing.T) {
	got := RasterizeObstacles(nil, 2, 3, 50)
	want := [][]int{{0, 0, 0}, {0, 0, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
