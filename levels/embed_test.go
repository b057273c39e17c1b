package levels

import (
	"errors"
	"testing"
)

func TestLoadEmbeddedLevel(t *testing.T) {
	lvl, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if lvl.Name != "meadow" || lvl.Lives != 3 {
		t.Fatalf("unexpected level header %q lives=%d", lvl.Name, lvl.Lives)
	}
	if lvl.Spawn.Y() != 5 {
		t.Fatalf("spawn = %v, want y=5", lvl.Spawn)
	}
	if len(lvl.Enemies) != 4 {
		t.Fatalf("expected 4 enemies, got %d", len(lvl.Enemies))
	}
	if lvl.CoinField == nil || lvl.CoinField.Count != 30 {
		t.Fatalf("expected a 30 coin field, got %+v", lvl.CoinField)
	}
	if lvl.Platforms[0].Size.X() != 100 {
		t.Fatalf("ground size = %v", lvl.Platforms[0].Size)
	}
}

func TestParseRejectsInvalidLevels(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"no_lives", "lives: 0\n"},
		{"flat_platform", "lives: 1\nplatforms:\n  - {center: [0,0,0], size: [1,0,1]}\n"},
		{"zero_length_route", "lives: 1\nenemies:\n  - {start: [1,1,1], end: [1,1,1]}\n"},
		{"inverted_field", "lives: 1\ncoin_field: {count: 2, min: [5,0,0], max: [0,1,1]}\n"},
		{"powerup_without_kind", "lives: 1\npowerups:\n  - {position: [0,1,0]}\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Parse([]byte(c.yaml)); !errors.Is(err, ErrInvalidLevel) {
				t.Fatalf("expected ErrInvalidLevel, got %v", err)
			}
		})
	}

	if _, err := Parse([]byte("lives: [1, 2]\n")); err == nil {
		t.Fatalf("expected malformed yaml to fail")
	}
}
