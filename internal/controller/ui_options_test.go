package controller

import "testing"

func TestStartOptions(t *testing.T) {
	cfg := &StartConfig{}
	WithBuildMode()(cfg)
	if cfg.mode != ModeBuild {
		t.Fatalf("WithBuildMode() mode = %v, want %v", cfg.mode, ModeBuild)
	}

	WithListMode()(cfg)
	if cfg.mode != ModeList {
		t.Fatalf("WithListMode() mode = %v, want %v", cfg.mode, ModeList)
	}
}
