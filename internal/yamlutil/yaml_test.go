package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

func TestUnmarshal(t *testing.T) {
	type meta struct {
		Title string `yaml:"title"`
	}

	t.Run("valid document", func(t *testing.T) {
		var m meta
		if err := Unmarshal([]byte("title: Paper\n"), &m); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if m.Title != "Paper" {
			t.Errorf("Title = %q, want %q", m.Title, "Paper")
		}
	})

	t.Run("unknown fields tolerated", func(t *testing.T) {
		var m meta
		err := Unmarshal([]byte("title: Paper\nauthor: someone\n"), &m)
		if err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if m.Title != "Paper" {
			t.Errorf("Title = %q, want %q", m.Title, "Paper")
		}
	})

	t.Run("empty data", func(t *testing.T) {
		var m meta
		if err := Unmarshal(nil, &m); !errors.Is(err, ErrNilData) {
			t.Errorf("error = %v, want ErrNilData", err)
		}
	})

	t.Run("nil destination", func(t *testing.T) {
		if err := Unmarshal([]byte("a: 1"), nil); !errors.Is(err, ErrNilDestination) {
			t.Errorf("error = %v, want ErrNilDestination", err)
		}
	})

	t.Run("oversized input", func(t *testing.T) {
		var m meta
		data := []byte("title: " + strings.Repeat("x", MaxInputSize))
		if err := Unmarshal(data, &m); !errors.Is(err, ErrInputTooLarge) {
			t.Errorf("error = %v, want ErrInputTooLarge", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		var m meta
		if err := Unmarshal([]byte("title: [unclosed"), &m); err == nil {
			t.Error("Unmarshal() with malformed YAML, want error")
		}
	})
}
