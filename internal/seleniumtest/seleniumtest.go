// Package seleniumtest exercises the support helpers against a real browser.
// The tests are in a separate package so that other harnesses can run them
// against their own WebDriver servers.
package seleniumtest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"

	support "github.com/wanmail/selenium-support"
	"github.com/wanmail/selenium-support/bootstrap"
	"github.com/wanmail/selenium-support/jqueryui"
	"github.com/wanmail/selenium-support/select2"
)

// Config says where the WebDriver server and the fixture server are.
type Config struct {
	Addr, Browser, Path, ServerURL string
	// AssetsDir holds the jQuery, jQuery UI and Select2 assets. Widget tests
	// are skipped when it is empty.
	AssetsDir string
	Headless  bool
}

func runTest(f func(*testing.T, Config), c Config) func(*testing.T) {
	return func(t *testing.T) {
		f(t, c)
	}
}

// NewRemote starts a session. Harnesses may replace it.
var NewRemote = func(_ *testing.T, caps selenium.Capabilities, addr string) (selenium.WebDriver, error) {
	return selenium.NewRemote(caps, addr)
}

func newRemote(t *testing.T, c Config) selenium.WebDriver {
	caps := newTestCapabilities(c)
	wd, err := NewRemote(t, caps, c.Addr)
	require.NoError(t, err, "NewRemote(%+v, %q)", caps, c.Addr)
	t.Cleanup(func() {
		if err := wd.Quit(); err != nil {
			t.Errorf("wd.Quit() returned error: %v", err)
		}
	})
	return wd
}

func newTestCapabilities(c Config) selenium.Capabilities {
	caps := selenium.Capabilities{
		"browserName": c.Browser,
	}
	if c.Browser == "chrome" {
		chrCaps := chrome.Capabilities{
			Path: c.Path,
			Args: []string{
				// Snapshot builds are not installed setuid, so the sandbox
				// cannot start.
				"--no-sandbox",
				"--window-size=1024,768",
			},
			// The mouse gestures in package actions use the JSON wire
			// endpoints.
			W3C: false,
		}
		if c.Headless {
			chrCaps.Args = append(chrCaps.Args, "--headless")
		}
		caps.AddChrome(chrCaps)
	}
	return caps
}

func get(t *testing.T, wd selenium.WebDriver, url string) {
	require.NoError(t, wd.Get(url), "wd.Get(%q)", url)
}

func find(t *testing.T, wd selenium.WebDriver, l support.Locator) selenium.WebElement {
	el, err := l.FindIn(wd)
	require.NoError(t, err, "finding %s", l)
	return el
}

// RunTests runs the tests that need nothing but the fixture pages.
func RunTests(t *testing.T, c Config) {
	t.Run("CompositeElement", runTest(testCompositeElement, c))
	t.Run("WaitForURL", runTest(testWaitForURL, c))
	t.Run("WaitForElements", runTest(testWaitForElements, c))
	t.Run("WaitTimeout", runTest(testWaitTimeout, c))
	t.Run("AcceptAlert", runTest(testAcceptAlert, c))
	t.Run("DismissAlert", runTest(testDismissAlert, c))
	t.Run("NoAlert", runTest(testNoAlert, c))
	t.Run("AnotherWindow", runTest(testAnotherWindow, c))
	t.Run("FormHelpers", runTest(testFormHelpers, c))
	t.Run("Select", runTest(testSelect, c))
	t.Run("SafeFindElement", runTest(testSafeFindElement, c))
	t.Run("ScrollIntoView", runTest(testScrollIntoView, c))
	t.Run("BootstrapDropdown", runTest(testBootstrapDropdown, c))
}

// RunWidgetTests runs the jQuery UI and Select2 tests.
func RunWidgetTests(t *testing.T, c Config) {
	if c.AssetsDir == "" {
		t.Skip("Skipping widget tests because no assets directory is set")
	}
	t.Run("AutoComplete", runTest(testAutoComplete, c))
	t.Run("DatePicker", runTest(testDatePicker, c))
	t.Run("NextMonthIsEnabled", runTest(testNextMonthIsEnabled, c))
	t.Run("Slider", runTest(testSlider, c))
	t.Run("Select2Tags", runTest(testSelect2Tags, c))
	t.Run("Select2Dropdown", runTest(testSelect2Dropdown, c))
}

func testCompositeElement(t *testing.T, c Config) {
	wd := newRemote(t, c)
	get(t, wd, c.ServerURL)

	left := find(t, wd, support.ByID("left"))
	right := find(t, wd, support.ByID("right"))
	hidden := find(t, wd, support.ByID("hidden"))

	panels := support.NewCompositeWebElement(left, right)
	links, err := panels.FindElements(selenium.ByTagName, "a")
	require.NoError(t, err)
	texts, err := support.Texts(links)
	require.NoError(t, err)
	require.Equal(t, []string{"one", "two", "three"}, texts)

	displayed, err := panels.IsDisplayed()
	require.NoError(t, err)
	require.True(t, displayed)

	displayed, err = support.NewCompositeWebElement(left, hidden).IsDisplayed()
	require.NoError(t, err)
	require.False(t, displayed)

	_, err = panels.FindElement(selenium.ByID, "bottom")
	require.ErrorIs(t, err, support.ErrNotFound)
}

func testWaitForURL(t *testing.T, c Config) {
	wd := newRemote(t, c)
	get(t, wd, c.ServerURL+"/redirect")

	err := support.NewWait(wd, 5*time.Second).Until(support.URLIs(c.ServerURL + "/other"))
	require.NoError(t, err)
}

func testWaitForElements(t *testing.T, c Config) {
	wd := newRemote(t, c)
	get(t, wd, c.ServerURL+"/delayed")

	err := support.NewWait(wd, 5*time.Second).Until(support.And(
		support.VisibilityOfElementLocated(support.ByID("late")),
		support.InvisibilityOfElementLocated(support.ByID("gone")),
	))
	require.NoError(t, err)
}

func testWaitTimeout(t *testing.T, c Config) {
	wd := newRemote(t, c)
	get(t, wd, c.ServerURL+"/other")

	w := support.NewWait(wd, 500*time.Millisecond, support.WithInterval(100*time.Millisecond))
	err := w.Until(support.VisibilityOfElementLocated(support.ByID("never")))
	require.ErrorIs(t, err, support.ErrTimeout)
	require.Contains(t, err.Error(), "By.id: never")

	ok, err := support.Until(w, support.VisibilityOfElementLocated(support.ByID("never")))
	require.NoError(t, err)
	require.False(t, ok)
}

func testAcceptAlert(t *testing.T, c Config) {
	wd := newRemote(t, c)
	get(t, wd, c.ServerURL+"/alert")

	require.NoError(t, support.AcceptAlert(wd))
	require.Equal(t, "accepted", text(t, find(t, wd, support.ByID("answer"))))
}

func testDismissAlert(t *testing.T, c Config) {
	wd := newRemote(t, c)
	get(t, wd, c.ServerURL+"/alert")

	require.NoError(t, support.DismissAlert(wd))
	require.Equal(t, "dismissed", text(t, find(t, wd, support.ByID("answer"))))
}

func testNoAlert(t *testing.T, c Config) {
	wd := newRemote(t, c)
	get(t, wd, c.ServerURL+"/other")

	require.ErrorIs(t, support.AcceptAlert(wd), support.ErrNoAlert)
}

func testAnotherWindow(t *testing.T, c Config) {
	wd := newRemote(t, c)
	get(t, wd, c.ServerURL)

	require.NoError(t, find(t, wd, support.ByID("popup")).Click())
	require.NoError(t, support.NewWait(wd, 5*time.Second).Until(support.AnotherWindowToBeAvailableAndSwitchToIt()))

	title, err := wd.Title()
	require.NoError(t, err)
	require.Equal(t, "Support Test Suite - Other Page", title)
}

func text(t *testing.T, el selenium.WebElement) string {
	s, err := el.Text()
	require.NoError(t, err)
	return s
}

func testFormHelpers(t *testing.T, c Config) {
	wd := newRemote(t, c)
	get(t, wd, c.ServerURL)

	radios, err := support.ByName("plan").FindAllIn(wd)
	require.NoError(t, err)
	value, err := support.RadioValue(radios)
	require.NoError(t, err)
	require.Empty(t, value)
	require.NoError(t, support.SetRadioValue(radios, "pro"))
	value, err = support.RadioValue(radios)
	require.NoError(t, err)
	require.Equal(t, "pro", value)
	require.ErrorIs(t, support.SetRadioValue(radios, "gold"), support.ErrInvalidArgument)

	terms := find(t, wd, support.ByID("terms"))
	require.NoError(t, support.SetCheckboxValue(terms, true))
	require.NoError(t, support.SetCheckboxValue(terms, true))
	selected, err := terms.IsSelected()
	require.NoError(t, err)
	require.True(t, selected)

	name := find(t, wd, support.ByID("name"))
	require.NoError(t, support.SetControlValue(name, "new"))
	value, err = support.ControlValue(name)
	require.NoError(t, err)
	require.Equal(t, "new", value)

	formula := find(t, wd, support.ByID("formula"))
	require.NoError(t, formula.SendKeys(support.EscapeKeys("f(x)")))
	value, err = support.ControlValue(formula)
	require.NoError(t, err)
	require.Equal(t, "f(x)", value)

	fruit := find(t, wd, support.ByID("fruit"))
	values, err := support.OptionValues(fruit)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, values)
	labels, err := support.OptionLabels(fruit)
	require.NoError(t, err)
	require.Equal(t, []string{"Apple", "Banana", "Cherry"}, labels)

	enabled, err := support.IsEnabled(find(t, wd, support.ByID("locked")))
	require.NoError(t, err)
	require.False(t, enabled)
	enabled, err = support.IsEnabled(name)
	require.NoError(t, err)
	require.True(t, enabled)

	hasError, err := support.HasFormGroupError(find(t, wd, support.ByID("email")))
	require.NoError(t, err)
	require.True(t, hasError)
	hasError, err = support.HasFormGroupError(find(t, wd, support.ByID("phone")))
	require.NoError(t, err)
	require.False(t, hasError)
	hasError, err = support.HasFormGroupError(formula)
	require.NoError(t, err)
	require.False(t, hasError)
}

func testSelect(t *testing.T, c Config) {
	wd := newRemote(t, c)
	get(t, wd, c.ServerURL)

	fruit, err := support.NewSelect(find(t, wd, support.ByID("fruit")))
	require.NoError(t, err)
	require.False(t, fruit.IsMultiple())
	require.NoError(t, fruit.SelectByVisibleText("Banana"))
	first, err := fruit.FirstSelectedOption()
	require.NoError(t, err)
	require.Equal(t, "Banana", text(t, first))
	require.ErrorIs(t, fruit.DeselectAll(), support.ErrInvalidArgument)

	colours, err := support.NewSelect(find(t, wd, support.ByID("colours")))
	require.NoError(t, err)
	require.True(t, colours.IsMultiple())
	require.NoError(t, colours.SelectByValue("r"))
	require.NoError(t, colours.SelectByIndex(2))
	chosen, err := colours.SelectedOptions()
	require.NoError(t, err)
	texts, err := support.Texts(chosen)
	require.NoError(t, err)
	require.Equal(t, []string{"Red", "Blue"}, texts)

	require.NoError(t, colours.DeselectAll())
	chosen, err = colours.SelectedOptions()
	require.NoError(t, err)
	require.Empty(t, chosen)

	_, err = support.NewSelect(find(t, wd, support.ByID("name")))
	require.ErrorIs(t, err, support.ErrInvalidArgument)
}

func testSafeFindElement(t *testing.T, c Config) {
	wd := newRemote(t, c)
	get(t, wd, c.ServerURL)

	missing, err := support.SafeFindElement(wd, support.ByID("missing"))
	require.NoError(t, err)
	require.False(t, missing.IsPresent())

	found, err := support.SafeFindElement(wd, support.ByID("name"))
	require.NoError(t, err)
	require.True(t, found.IsPresent())
}

func testScrollIntoView(t *testing.T, c Config) {
	wd := newRemote(t, c)
	get(t, wd, c.ServerURL)

	size, err := support.ViewportSize(wd)
	require.NoError(t, err)
	require.Positive(t, size.Height)

	require.NoError(t, support.ScrollIntoView(wd, find(t, wd, support.ByID("bottom"))))
	offset, err := wd.ExecuteScript("return window.pageYOffset", nil)
	require.NoError(t, err)
	require.Greater(t, offset.(float64), float64(0))
}

func testBootstrapDropdown(t *testing.T, c Config) {
	wd := newRemote(t, c)
	get(t, wd, c.ServerURL)

	labels, err := bootstrap.DropdownMenuOptionLabels(wd, "menu")
	require.NoError(t, err)
	require.Equal(t, []string{"Edit", "Delete"}, labels)
}

func testAutoComplete(t *testing.T, c Config) {
	wd := newRemote(t, c)
	get(t, wd, c.ServerURL+"/widgets")

	visible, err := jqueryui.AutoCompleteIsVisible(wd)
	require.NoError(t, err)
	require.False(t, visible)

	city := find(t, wd, support.ByID("city"))
	require.NoError(t, city.SendKeys("L"))
	suggestions, err := jqueryui.AutoCompleteSuggestions(wd)
	require.NoError(t, err)
	require.Equal(t, []string{"London", "Leeds", "Liverpool"}, suggestions)

	require.ErrorIs(t, jqueryui.ClickAutoCompleteSuggestion(wd, "Madrid"), support.ErrInvalidArgument)
	require.NoError(t, jqueryui.ClickAutoCompleteSuggestion(wd, "Leeds"))
	value, err := support.ControlValue(city)
	require.NoError(t, err)
	require.Equal(t, "Leeds", value)
}

func testDatePicker(t *testing.T, c Config) {
	wd := newRemote(t, c)
	get(t, wd, c.ServerURL+"/widgets")

	start := find(t, wd, support.ByID("start"))
	require.NoError(t, start.Click())
	visible, err := jqueryui.DatePickerIsVisible(wd)
	require.NoError(t, err)
	require.True(t, visible)

	date, err := jqueryui.DatePickerDate(wd)
	require.NoError(t, err)
	require.True(t, date.Equal(time.Date(2014, time.March, 7, 0, 0, 0, 0, time.Local)), "DatePickerDate() = %v", date)

	require.NoError(t, jqueryui.ClickDayOfMonth(wd, 12))
	value, err := support.ControlValue(start)
	require.NoError(t, err)
	require.Equal(t, "03/12/2014", value)
}

func testNextMonthIsEnabled(t *testing.T, c Config) {
	wd := newRemote(t, c)

	get(t, wd, c.ServerURL+"/widgets")
	enabled, err := jqueryui.NextMonthIsEnabled(wd, "start")
	require.NoError(t, err)
	require.False(t, enabled)

	get(t, wd, c.ServerURL+"/widgets")
	enabled, err = jqueryui.NextMonthIsEnabled(wd, "end")
	require.NoError(t, err)
	require.True(t, enabled)
}

func testSlider(t *testing.T, c Config) {
	wd := newRemote(t, c)
	get(t, wd, c.ServerURL+"/widgets")

	slider := find(t, wd, support.ByID("volume"))
	require.NoError(t, jqueryui.DragSliderHandle(wd, slider, 50))

	moved := support.NewCondition("slider value to change", func(wd selenium.WebDriver) (bool, error) {
		el, err := support.ByID("volume-value").FindIn(wd)
		if err != nil {
			return false, err
		}
		s, err := el.Text()
		return s != "0", err
	})
	require.NoError(t, support.NewWait(wd, 2*time.Second).Until(moved))
}

func testSelect2Tags(t *testing.T, c Config) {
	wd := newRemote(t, c)
	get(t, wd, c.ServerURL+"/widgets")

	require.NoError(t, select2.SetValues(wd, "tags", []string{"red", "blue"}))
	values, err := select2.Values(wd, "tags")
	require.NoError(t, err)
	require.Equal(t, []string{"red", "blue"}, values)

	require.NoError(t, select2.Clear(wd, "tags"))
	values, err = select2.Values(wd, "tags")
	require.NoError(t, err)
	require.Empty(t, values)
}

func testSelect2Dropdown(t *testing.T, c Config) {
	wd := newRemote(t, c)
	get(t, wd, c.ServerURL+"/widgets")

	names, err := select2.DropdownItemNames(wd, "country")
	require.NoError(t, err)
	require.Equal(t, []string{"France", "Spain", "United Kingdom"}, names)

	suggestion, ok, err := select2.HighlightedSuggestion(wd, "country")
	require.NoError(t, err)
	require.True(t, ok)
	label, err := suggestion.Text()
	require.NoError(t, err)
	require.Equal(t, "France", label)
}
