package support

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tebeka/selenium"

	"github.com/wanmail/selenium-support/internal/fakes"
)

func TestEscapeKeys(t *testing.T) {
	for in, want := range map[string]string{
		"plain": "plain",
		"f(x)":  "f" + selenium.ShiftKey + "9" + selenium.NullKey + "x)",
		"((":    openParenChord + openParenChord,
		"":      "",
	} {
		if got := EscapeKeys(in); got != want {
			t.Errorf("EscapeKeys(%q) = %q, want %q", in, got, want)
		}
	}
}

func viewportDriver(width, height interface{}) *fakes.Driver {
	return &fakes.Driver{ScriptResults: map[string]interface{}{
		"return document.documentElement.clientWidth":  width,
		"return document.documentElement.clientHeight": height,
	}}
}

func TestViewportSize(t *testing.T) {
	got, err := ViewportSize(viewportDriver(float64(1024), float64(768)))
	if err != nil {
		t.Fatalf("ViewportSize() returned error: %v", err)
	}
	if diff := cmp.Diff(selenium.Size{Width: 1024, Height: 768}, got); diff != "" {
		t.Fatalf("ViewportSize() returned diff (-want/+got):\n%s", diff)
	}

	if _, err := ViewportSize(viewportDriver("wide", float64(768))); err == nil {
		t.Fatal("ViewportSize() with a string width returned nil error")
	}
}

func TestScrollIntoView(t *testing.T) {
	wd := viewportDriver(float64(800), float64(600))
	el := &fakes.Element{Loc: selenium.Point{X: 10, Y: 1000}, Sz: selenium.Size{Width: 100, Height: 50}}
	if err := ScrollIntoView(wd, el); err != nil {
		t.Fatalf("ScrollIntoView() returned error: %v", err)
	}
	last := wd.Scripts[len(wd.Scripts)-1]
	if want := "window.scrollTo(0, 450)"; last != want {
		t.Fatalf("ScrollIntoView() ran %q, want %q", last, want)
	}
}
