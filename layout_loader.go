package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

var ErrUnsupportedLayout = errors.New("unsupported layout file")

// matrixLayout is the object form of a .json layout file
type matrixLayout struct {
	Cells [][]int `json:"cells"`
}

// LoadLayout reads an obstacle matrix from a .json matrix file or rasterises
// the polygons of a .geojson file onto a rows x cols grid
func LoadLayout(path string, rows, cols, cellSize int) ([][]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return parseMatrixLayout(data)
	case ".geojson":
		obstacles, err := parseObstacles(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		log.Printf("   ✅ Loaded %d obstacles from %s\n", len(obstacles), filepath.Base(path))
		return RasterizeObstacles(obstacles, rows, cols, cellSize), nil
	}

	return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedLayout)
}

// parseMatrixLayout accepts either a bare matrix or {"cells": matrix}
func parseMatrixLayout(data []byte) ([][]int, error) {
	var matrix [][]int
	if err := json.Unmarshal(data, &matrix); err == nil {
		return matrix, nil
	}

	var layout matrixLayout
	if err := json.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("parse matrix layout: %w", err)
	}
	if layout.Cells == nil {
		return nil, fmt.Errorf("matrix layout has no cells: %w", ErrUnsupportedLayout)
	}
	return layout.Cells, nil
}

// parseObstacles converts the polygon features of a FeatureCollection
func parseObstacles(data []byte) ([]Obstacle, error) {
	featureCollection, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, err
	}

	var obstacles []Obstacle
	for _, feature := range featureCollection.Features {
		switch geometry := feature.Geometry.(type) {
		case nil:
			continue
		case orb.Polygon:
			obstacles = append(obstacles, Obstacle{Polygon: geometry})
		case orb.MultiPolygon:
			for _, polygon := range geometry {
				obstacles = append(obstacles, Obstacle{Polygon: polygon})
			}
		default:
			log.Printf("⚠️  Skipping %s feature, only polygons block cells\n", feature.Geometry.GeoJSONType())
		}
	}

	return obstacles, nil
}

// RasterizeObstacles blocks every cell whose center falls inside an obstacle
func RasterizeObstacles(obstacles []Obstacle, rows, cols, cellSize int) [][]int {
	index := NewSpatialIndex(MergeOverlappingObstacles(obstacles))
	return index.Rasterize(rows, cols, cellSize)
}
