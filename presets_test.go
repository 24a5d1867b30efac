package main

import (
	"errors"
	"reflect"
	"testing"
)

func TestPresetNames(t *testing.T) {
	want := []string{"maze", "maze2", "open"}
	if got := PresetNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestPresetLayout_ValidGrids(t *testing.T) {
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			grid := mustPreset(t, name)
			if grid.Height() != 10 || grid.Width() != 10 {
				t.Errorf("Expected 10x10, got %dx%d", grid.Height(), grid.Width())
			}
			if blocked, _ := grid.IsObstacle(Position{0, 0}); blocked {
				t.Error("Expected (0,0) free")
			}
		})
	}
}

func TestPresetLayout_ReturnsCopy(t *testing.T) {
	first, err := PresetLayout("open")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	first[0][0] = 1

	second, _ := PresetLayout("open")
	if second[0][0] != 0 {
		t.Error("Expected preset unaffected by edits to a previous copy")
	}
}

func TestPresetLayout_Unknown(t *testing.T) {
	if _, err := PresetLayout("labyrinth"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("Expected ErrUnknownPreset, got %v", err)
	}
}
