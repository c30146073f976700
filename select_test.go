package support

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tebeka/selenium"

	"github.com/wanmail/selenium-support/internal/fakes"
)

func toggle(e *fakes.Element) { e.Selected = !e.Selected }

func newOption(index int, text, value string, selected bool) *fakes.Element {
	return &fakes.Element{
		Name:      value,
		Tag:       "option",
		TextValue: text,
		Attrs:     map[string]string{"value": value, "index": strconv.Itoa(index)},
		Selected:  selected,
		OnClick:   toggle,
	}
}

func newSelectElement(multiple bool, opts ...*fakes.Element) *fakes.Element {
	children := map[string][]selenium.WebElement{}
	key := fakes.Key(selenium.ByTagName, "option")
	for _, o := range opts {
		children[key] = append(children[key], o)
		valueKey := fakes.Key(selenium.ByXPATH, `.//option[@value = "`+o.Attrs["value"]+`"]`)
		children[valueKey] = append(children[valueKey], o)
	}
	attrs := map[string]string{}
	if multiple {
		attrs["multiple"] = "true"
	}
	return &fakes.Element{Tag: "select", Attrs: attrs, Children: children}
}

func selectedNames(t *testing.T, s *Select) []string {
	t.Helper()
	opts, err := s.SelectedOptions()
	if err != nil {
		t.Fatalf("SelectedOptions() returned error: %v", err)
	}
	return names(opts)
}

func TestNewSelect(t *testing.T) {
	if _, err := NewSelect(&fakes.Element{Tag: "input"}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("NewSelect(input) returned error %v, want ErrInvalidArgument", err)
	}

	for _, tc := range []struct {
		attrs map[string]string
		want  bool
	}{
		{nil, false},
		{map[string]string{"multiple": "true"}, true},
		{map[string]string{"multiple": "multiple"}, true},
		{map[string]string{"multiple": "false"}, false},
	} {
		s, err := NewSelect(&fakes.Element{Tag: "SELECT", Attrs: tc.attrs})
		if err != nil {
			t.Fatalf("NewSelect(%v) returned error: %v", tc.attrs, err)
		}
		if s.IsMultiple() != tc.want {
			t.Errorf("NewSelect(%v).IsMultiple() = %t, want %t", tc.attrs, s.IsMultiple(), tc.want)
		}
	}
}

func TestSelectSingle(t *testing.T) {
	a := newOption(0, "Apple", "a", true)
	b := newOption(1, " Banana ", "b", false)
	c := newOption(2, "Cherry", "c", false)
	s, err := NewSelect(newSelectElement(false, a, b, c))
	if err != nil {
		t.Fatalf("NewSelect() returned error: %v", err)
	}

	if err := s.SelectByVisibleText("Banana"); err != nil {
		t.Fatalf("SelectByVisibleText() returned error: %v", err)
	}
	a.Selected = false
	if diff := cmp.Diff([]string{"b"}, selectedNames(t, s)); diff != "" {
		t.Fatalf("selected options diff (-want/+got):\n%s", diff)
	}

	if err := s.SelectByValue("c"); err != nil {
		t.Fatalf("SelectByValue() returned error: %v", err)
	}
	first, err := s.FirstSelectedOption()
	if err != nil {
		t.Fatalf("FirstSelectedOption() returned error: %v", err)
	}
	if first != selenium.WebElement(b) {
		t.Fatalf("FirstSelectedOption() = %v, want %v", first, b)
	}

	if err := s.SelectByIndex(0); err != nil {
		t.Fatalf("SelectByIndex() returned error: %v", err)
	}
	if !a.Selected {
		t.Fatal("SelectByIndex(0) did not select the first option")
	}

	// Selecting an already selected option does not click it.
	clicks := len(a.Calls)
	if err := s.SelectByIndex(0); err != nil {
		t.Fatalf("SelectByIndex() returned error: %v", err)
	}
	if len(a.Calls) != clicks {
		t.Fatalf("SelectByIndex() clicked a selected option: %v", a.Calls)
	}

	for name, err := range map[string]error{
		"SelectByVisibleText": s.SelectByVisibleText("Durian"),
		"SelectByValue":       s.SelectByValue("d"),
		"SelectByIndex":       s.SelectByIndex(7),
		"DeselectAll":         s.DeselectAll(),
		"DeselectByValue":     s.DeselectByValue("a"),
	} {
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s() returned error %v, want ErrInvalidArgument", name, err)
		}
	}
}

func TestSelectMultiple(t *testing.T) {
	a := newOption(0, "Apple", "a", false)
	b := newOption(1, "Banana", "b", false)
	s, err := NewSelect(newSelectElement(true, a, b))
	if err != nil {
		t.Fatalf("NewSelect() returned error: %v", err)
	}
	if err := s.SelectByValue("a"); err != nil {
		t.Fatalf("SelectByValue() returned error: %v", err)
	}
	if err := s.SelectByVisibleText("Banana"); err != nil {
		t.Fatalf("SelectByVisibleText() returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, selectedNames(t, s)); diff != "" {
		t.Fatalf("selected options diff (-want/+got):\n%s", diff)
	}

	if err := s.DeselectByIndex(1); err != nil {
		t.Fatalf("DeselectByIndex() returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"a"}, selectedNames(t, s)); diff != "" {
		t.Fatalf("selected options diff (-want/+got):\n%s", diff)
	}

	if err := s.DeselectAll(); err != nil {
		t.Fatalf("DeselectAll() returned error: %v", err)
	}
	if got := selectedNames(t, s); len(got) != 0 {
		t.Fatalf("SelectedOptions() = %v after DeselectAll(), want none", got)
	}
	if _, err := s.FirstSelectedOption(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("FirstSelectedOption() returned error %v, want ErrNotFound", err)
	}
}

func TestXPathLiteral(t *testing.T) {
	for in, want := range map[string]string{
		`plain`:     `"plain"`,
		`say "hi"`:  `'say "hi"'`,
		`it's "ok"`: `concat("it's ", '"', "ok", '"', "")`,
	} {
		if got := xpathLiteral(in); got != want {
			t.Errorf("xpathLiteral(%q) = %s, want %s", in, got, want)
		}
	}
}
