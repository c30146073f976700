package select2

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/tebeka/selenium"

	support "github.com/wanmail/selenium-support"
	"github.com/wanmail/selenium-support/internal/fakes"
)

func shortTimeouts(t *testing.T) {
	savedItem, savedClear := ItemTimeout, ClearTimeout
	ItemTimeout, ClearTimeout = 20*time.Millisecond, 20*time.Millisecond
	t.Cleanup(func() { ItemTimeout, ClearTimeout = savedItem, savedClear })
}

func elements(elems ...*fakes.Element) []selenium.WebElement {
	var out []selenium.WebElement
	for _, e := range elems {
		out = append(out, e)
	}
	return out
}

// openList makes the result list visible with the given items.
func openList(wd *fakes.Driver, items ...*fakes.Element) {
	wd.Set(selenium.ByClassName, "select2-result-label", &fakes.Element{Displayed: true})
	wd.Set(selenium.ByCSSSelector, ".select2-result", elements(items...)...)
}

func TestInput(t *testing.T) {
	wd := &fakes.Driver{}
	input := &fakes.Element{}
	wd.Set(selenium.ByCSSSelector, "#s2id_x input.select2-input", input)

	got, err := Input(wd, "x")
	if err != nil {
		t.Fatalf("Input() returned error: %v", err)
	}
	if got != selenium.WebElement(input) {
		t.Fatalf("Input() = %v, want %v", got, input)
	}
}

func TestValues(t *testing.T) {
	wd := &fakes.Driver{}
	got, err := Values(wd, "z")
	if err != nil {
		t.Fatalf("Values() returned error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Values() = %v, want none", got)
	}

	wd.Set(selenium.ByCSSSelector, "#s2id_z li.select2-search-choice", item("x", ""), item("y", ""))
	got, err = Values(wd, "z")
	if err != nil {
		t.Fatalf("Values() returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"x", "y"}, got); diff != "" {
		t.Fatalf("Values() returned diff (-want/+got):\n%s", diff)
	}
}

func TestSuggestions(t *testing.T) {
	t.Run("open list", func(t *testing.T) {
		wd := &fakes.Driver{}
		x, y := item("x", ""), item("y", "")
		wd.Set(selenium.ByCSSSelector, ".select2-result", x, y)

		got, err := Suggestions(wd, "z")
		if err != nil {
			t.Fatalf("Suggestions() returned error: %v", err)
		}
		if len(got) != 2 || !got[0].Equal(NewSuggestion(x)) || !got[1].Equal(NewSuggestion(y)) {
			t.Fatalf("Suggestions() = %v, want x and y", got)
		}
	})

	t.Run("opens the widget", func(t *testing.T) {
		wd := &fakes.Driver{}
		x := item("x", "")
		choice := &fakes.Element{OnClick: func(*fakes.Element) {
			wd.Set(selenium.ByCSSSelector, ".select2-result", x)
		}}
		wd.Set(selenium.ByCSSSelector, "#s2id_z a.select2-choice", choice)

		got, err := Suggestions(wd, "z")
		if err != nil {
			t.Fatalf("Suggestions() returned error: %v", err)
		}
		if len(got) != 1 || !got[0].Equal(NewSuggestion(x)) {
			t.Fatalf("Suggestions() = %v, want x", got)
		}
		if diff := cmp.Diff([]string{"Click"}, choice.Calls); diff != "" {
			t.Fatalf("choice calls diff (-want/+got):\n%s", diff)
		}
	})
}

func TestDropdownItemNames(t *testing.T) {
	shortTimeouts(t)
	wd := &fakes.Driver{}
	field := &fakes.Element{}
	wd.Set(selenium.ByCSSSelector, "#s2id_z a.select2-choice", field)

	if _, err := DropdownItemNames(wd, "z"); !errors.Is(err, support.ErrTimeout) {
		t.Fatalf("DropdownItemNames() without results returned error %v, want ErrTimeout", err)
	}

	openList(wd, item("x", ""), item("y", ""))
	got, err := DropdownItemNames(wd, "z")
	if err != nil {
		t.Fatalf("DropdownItemNames() returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"x", "y"}, got); diff != "" {
		t.Fatalf("DropdownItemNames() returned diff (-want/+got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Click", "Click"}, field.Calls); diff != "" {
		t.Fatalf("field calls diff (-want/+got):\n%s", diff)
	}
}

func TestItems(t *testing.T) {
	shortTimeouts(t)
	wd := &fakes.Driver{}
	wd.Set(selenium.ByClassName, "select2-result-label", &fakes.Element{Displayed: false})
	if _, err := Items(wd); !errors.Is(err, support.ErrTimeout) {
		t.Fatalf("Items() with hidden results returned error %v, want ErrTimeout", err)
	}

	openList(wd, item("x", ""))
	got, err := Items(wd)
	if err != nil {
		t.Fatalf("Items() returned error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(Items()) = %d, want 1", len(got))
	}
}

func TestAddValue(t *testing.T) {
	shortTimeouts(t)
	wd := &fakes.Driver{}
	input := &fakes.Element{}
	wd.Set(selenium.ByCSSSelector, "#s2id_x input.select2-input", input)
	other, want := item("f", ""), item("New f(x)", "select2-result x-select2-new")
	openList(wd, other, want)

	if err := AddValue(wd, "x", "f(x)"); err != nil {
		t.Fatalf("AddValue() returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"SendKeys:" + support.EscapeKeys("f(x)")}, input.Calls); diff != "" {
		t.Errorf("input calls diff (-want/+got):\n%s", diff)
	}
	if len(other.Calls) != 0 || len(want.Calls) != 1 {
		t.Errorf("clicks = %v, %v; want only the new item clicked", other.Calls, want.Calls)
	}
}

func TestAddPartialValue(t *testing.T) {
	shortTimeouts(t)
	wd := &fakes.Driver{}
	input := &fakes.Element{}
	wd.Set(selenium.ByCSSSelector, "#s2id_x input.select2-input", input)
	london := item("London", "")
	openList(wd, london)

	if err := AddPartialValue(wd, "x", "Lon", " London "); err != nil {
		t.Fatalf("AddPartialValue() returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"SendKeys:Lon"}, input.Calls); diff != "" {
		t.Errorf("input calls diff (-want/+got):\n%s", diff)
	}
	if len(london.Calls) != 1 {
		t.Errorf("item calls = %v, want one click", london.Calls)
	}

	if err := AddPartialValue(wd, "x", "Ma", "Madrid"); !errors.Is(err, support.ErrTimeout) {
		t.Fatalf("AddPartialValue() for a missing item returned error %v, want ErrTimeout", err)
	}
}

func TestSetSearchText(t *testing.T) {
	shortTimeouts(t)
	wd := &fakes.Driver{}
	input := &fakes.Element{}
	wd.Set(selenium.ByCSSSelector, "#s2id_x input.select2-input", input)
	openList(wd, item("abc", ""))

	if err := SetSearchText(wd, "x", "abc"); err != nil {
		t.Fatalf("SetSearchText() returned error: %v", err)
	}
	if err := SetSearchText(wd, "x", "ab"); !errors.Is(err, support.ErrTimeout) {
		t.Fatalf("SetSearchText() returned error %v, want ErrTimeout", err)
	}
	want := "Select2 item 'ab' to be visible"
	if err := SetSearchText(wd, "x", "ab"); err == nil || !strings.Contains(err.Error(), want) {
		t.Fatalf("SetSearchText() returned error %v, want it to mention %q", err, want)
	}
}

func TestSetDropdownSearchText(t *testing.T) {
	wd := &fakes.Driver{}
	choice, search := &fakes.Element{}, &fakes.Element{}
	wd.Set(selenium.ByCSSSelector, "#s2id_x a.select2-choice", choice)
	wd.Set(selenium.ByCSSSelector, "#select2-drop input.select2-input", search)

	if err := SetDropdownSearchText(wd, "x", "abc"); err != nil {
		t.Fatalf("SetDropdownSearchText() returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"Click"}, choice.Calls); diff != "" {
		t.Errorf("choice calls diff (-want/+got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"SendKeys:abc"}, search.Calls); diff != "" {
		t.Errorf("search calls diff (-want/+got):\n%s", diff)
	}
}

func closer() *fakes.Element {
	return &fakes.Element{OnClick: func(e *fakes.Element) { e.Stale = true }}
}

func TestClear(t *testing.T) {
	shortTimeouts(t)
	wd := &fakes.Driver{}
	a, b := closer(), closer()
	wd.Set(selenium.ByCSSSelector, "#s2id_x li.select2-search-choice a.select2-search-choice-close", a, b)

	if err := Clear(wd, "x"); err != nil {
		t.Fatalf("Clear() returned error: %v", err)
	}
	if len(a.Calls) != 1 || len(b.Calls) != 1 {
		t.Fatalf("clicks = %v, %v; want one each", a.Calls, b.Calls)
	}

	stuck := &fakes.Element{Enabled: true}
	wd.Set(selenium.ByCSSSelector, "#s2id_x li.select2-search-choice a.select2-search-choice-close", stuck)
	if err := Clear(wd, "x"); !errors.Is(err, support.ErrTimeout) {
		t.Fatalf("Clear() returned error %v, want ErrTimeout", err)
	}
}

func TestSetValues(t *testing.T) {
	shortTimeouts(t)
	wd := &fakes.Driver{}
	old := closer()
	wd.Set(selenium.ByCSSSelector, "#s2id_x li.select2-search-choice a.select2-search-choice-close", old)
	input := &fakes.Element{}
	wd.Set(selenium.ByCSSSelector, "#s2id_x input.select2-input", input)
	a, b := item("a", ""), item("b", "")
	openList(wd, a, b)

	if err := SetValues(wd, "x", []string{"a", "b"}); err != nil {
		t.Fatalf("SetValues() returned error: %v", err)
	}
	if len(old.Calls) != 1 {
		t.Errorf("old value calls = %v, want one click", old.Calls)
	}
	if diff := cmp.Diff([]string{"SendKeys:a", "SendKeys:b"}, input.Calls); diff != "" {
		t.Errorf("input calls diff (-want/+got):\n%s", diff)
	}
	if len(a.Calls) != 1 || len(b.Calls) != 1 {
		t.Errorf("item clicks = %v, %v; want one each", a.Calls, b.Calls)
	}
}

func TestHighlighted(t *testing.T) {
	shortTimeouts(t)
	wd := &fakes.Driver{}
	wd.Set(selenium.ByCSSSelector, "#select2-drop", &fakes.Element{Displayed: true})
	openList(wd, item("x", ""))

	_, ok, err := HighlightedSuggestion(wd, "x")
	if err != nil {
		t.Fatalf("HighlightedSuggestion() returned error: %v", err)
	}
	if ok {
		t.Fatal("HighlightedSuggestion() found an entry, want none")
	}

	h := item("y", "select2-highlighted")
	wd.Set(selenium.ByCSSSelector, "#select2-drop .select2-highlighted", h)
	got, ok, err := HighlightedSuggestion(wd, "x")
	if err != nil {
		t.Fatalf("HighlightedSuggestion() returned error: %v", err)
	}
	if !ok || !got.Equal(NewSuggestion(h)) {
		t.Fatalf("HighlightedSuggestion() = %v, %t; want y, true", got, ok)
	}

	if _, _, err := HighlightedSuggestion(&fakes.Driver{}, "x"); !errors.Is(err, support.ErrTimeout) {
		t.Fatalf("HighlightedSuggestion() without a dropdown returned error %v, want ErrTimeout", err)
	}
}

func TestMessages(t *testing.T) {
	wd := &fakes.Driver{}
	for name, f := range map[string]func(selenium.WebDriver) (bool, error){
		"IsSelectionLimitMessageVisible":   IsSelectionLimitMessageVisible,
		"IsTooFewCharactersMessageVisible": IsTooFewCharactersMessageVisible,
	} {
		if got, err := f(wd); err != nil || got {
			t.Errorf("%s() = %t, %v; want false, nil", name, got, err)
		}
	}

	wd.Set(selenium.ByCSSSelector, ".select2-selection-limit", &fakes.Element{})
	wd.Set(selenium.ByCSSSelector, ".select2-no-results", &fakes.Element{})
	if got, err := IsSelectionLimitMessageVisible(wd); err != nil || !got {
		t.Errorf("IsSelectionLimitMessageVisible() = %t, %v; want true, nil", got, err)
	}
	if got, err := IsTooFewCharactersMessageVisible(wd); err != nil || !got {
		t.Errorf("IsTooFewCharactersMessageVisible() = %t, %v; want true, nil", got, err)
	}
}
