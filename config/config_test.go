package config

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()
	if cfg.StepHz != 60 {
		t.Errorf("StepHz = %d", cfg.StepHz)
	}
	if step := cfg.FixedStep(); step < 0.0166 || step > 0.0167 {
		t.Errorf("FixedStep = %g", step)
	}
	if cfg.ZapLevel() != zapcore.InfoLevel {
		t.Errorf("ZapLevel = %v", cfg.ZapLevel())
	}
}

func TestLoadLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim2d.yaml")
	data := "stepHz: 120\nlogLevel: debug\nbackground:\n  r: 1\n  g: 2\n  b: 3\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.StepHz != 120 {
		t.Errorf("StepHz = %d, want 120", cfg.StepHz)
	}
	if cfg.ZapLevel() != zapcore.DebugLevel {
		t.Errorf("ZapLevel = %v", cfg.ZapLevel())
	}
	rgb := cfg.BackgroundRGB()
	if rgb.R != 1 || rgb.G != 2 || rgb.B != 3 {
		t.Errorf("BackgroundRGB = %+v", rgb)
	}
	// Untouched fields keep their defaults
	if cfg.MaxCatchUpSteps != Default().MaxCatchUpSteps {
		t.Errorf("MaxCatchUpSteps = %d", cfg.MaxCatchUpSteps)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/does/not/exist.yaml"); err == nil {
		t.Error("missing file must error")
	}
}

func TestBadLevelFallsBack(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "shouting"
	if cfg.ZapLevel() != zapcore.InfoLevel {
		t.Errorf("ZapLevel = %v, want info fallback", cfg.ZapLevel())
	}
}
