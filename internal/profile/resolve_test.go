package profile

import (
	"testing"

	"github.com/matheus3301/wave/internal/config"
)

func TestResolve(t *testing.T) {
	t.Setenv("WAVE_HOME", t.TempDir())
	t.Setenv(EnvName, "")

	if got := Resolve(""); got != DefaultName {
		t.Errorf("Resolve(\"\") without config = %q, want %q", got, DefaultName)
	}

	if err := config.Save(ConfigPath(), &config.Config{DefaultProfile: "work"}); err != nil {
		t.Fatal(err)
	}
	if got := Resolve(""); got != "work" {
		t.Errorf("Resolve(\"\") = %q, want work", got)
	}
	if got := Resolve("play"); got != "play" {
		t.Errorf("Resolve(play) = %q, want play", got)
	}

	t.Setenv(EnvName, "phone")
	if got := Resolve(""); got != "phone" {
		t.Errorf("Resolve(\"\") with %s = %q, want phone", EnvName, got)
	}
	if got := Resolve("play"); got != "play" {
		t.Errorf("flag lost to %s: %q", EnvName, got)
	}
}
