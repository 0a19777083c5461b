package main

import (
	"testing"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"facing scene", "facing", false},
		{"cubes scene", "cubes", false},
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, err := createScene(tt.sceneType)

			if tt.expectError {
				if err == nil {
					t.Error("Expected error, got none")
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if scene == nil {
				t.Fatal("Expected a scene, got nil")
			}
			if scene.Width <= 0 || scene.Height <= 0 {
				t.Errorf("Expected positive default dimensions, got %dx%d",
					scene.Width, scene.Height)
			}
		})
	}
}

func TestCreateScene_DefaultDimensions(t *testing.T) {
	scene, err := createScene("default")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if scene.Width != 800 || scene.Height != 600 {
		t.Errorf("Expected 800x600, got %dx%d", scene.Width, scene.Height)
	}
	if scene.FOV != 90 {
		t.Errorf("Expected fov 90, got %g", scene.FOV)
	}
}
