// Package fakes provides in-memory stand-ins for selenium.WebDriver and
// selenium.WebElement. They embed the interfaces, so calling a method that a
// fake does not implement panics; tests only exercise what they set up.
package fakes

import (
	"errors"
	"fmt"

	"github.com/tebeka/selenium"
)

// Errors shaped like the ones the WebDriver client returns.
var (
	ErrStale   = errors.New("stale element reference: element is not attached to the page document")
	ErrNoAlert = errors.New("no such alert: no such alert")
	ErrUnknown = errors.New("unknown error: cannot determine loading status")
)

// NoSuchElement returns the client's error for a failed lookup.
func NoSuchElement(by, value string) error {
	return fmt.Errorf("no such element: Unable to locate element: {\"method\":%q,\"selector\":%q}", by, value)
}

// Key identifies a lookup in Driver.Elements and Element.Children.
func Key(by, value string) string { return by + "=" + value }

// Element is a fake selenium.WebElement.
type Element struct {
	selenium.WebElement

	Name        string
	Tag         string
	TextValue   string
	Attrs       map[string]string
	Displayed   bool
	DisplayErr  error
	Selected    bool
	Enabled     bool
	Stale       bool
	Loc         selenium.Point
	Sz          selenium.Size
	SizeErr     error
	Children    map[string][]selenium.WebElement
	ChildErr    error
	ClickErr    error
	MoveErr     error
	OnClick     func(*Element)
	Calls       []string
	Displays    int
	FindsByKeys []string
}

func (e *Element) record(call string) { e.Calls = append(e.Calls, call) }

func (e *Element) String() string { return "fakes.Element(" + e.Name + ")" }

func (e *Element) Click() error {
	if e.Stale {
		return ErrStale
	}
	e.record("Click")
	if e.ClickErr != nil {
		return e.ClickErr
	}
	if e.OnClick != nil {
		e.OnClick(e)
	}
	return nil
}

func (e *Element) SendKeys(keys string) error {
	if e.Stale {
		return ErrStale
	}
	e.record("SendKeys:" + keys)
	return nil
}

func (e *Element) Clear() error {
	if e.Stale {
		return ErrStale
	}
	e.record("Clear")
	return nil
}

func (e *Element) MoveTo(x, y int) error {
	e.record(fmt.Sprintf("MoveTo:%d,%d", x, y))
	return e.MoveErr
}

func (e *Element) FindElement(by, value string) (selenium.WebElement, error) {
	elems, err := e.FindElements(by, value)
	if err != nil {
		return nil, err
	}
	if len(elems) == 0 {
		return nil, NoSuchElement(by, value)
	}
	return elems[0], nil
}

func (e *Element) FindElements(by, value string) ([]selenium.WebElement, error) {
	e.FindsByKeys = append(e.FindsByKeys, Key(by, value))
	if e.Stale {
		return nil, ErrStale
	}
	if e.ChildErr != nil {
		return nil, e.ChildErr
	}
	return e.Children[Key(by, value)], nil
}

func (e *Element) TagName() (string, error) { return e.Tag, nil }

func (e *Element) Text() (string, error) {
	if e.Stale {
		return "", ErrStale
	}
	return e.TextValue, nil
}

func (e *Element) IsSelected() (bool, error) {
	if e.Stale {
		return false, ErrStale
	}
	return e.Selected, nil
}

func (e *Element) IsEnabled() (bool, error) {
	if e.Stale {
		return false, ErrStale
	}
	return e.Enabled, nil
}

func (e *Element) IsDisplayed() (bool, error) {
	e.Displays++
	if e.Stale {
		return false, ErrStale
	}
	return e.Displayed, e.DisplayErr
}

// GetAttribute returns the attribute, or the client's "nil return value"
// error when it is absent.
func (e *Element) GetAttribute(name string) (string, error) {
	if e.Stale {
		return "", ErrStale
	}
	v, ok := e.Attrs[name]
	if !ok {
		return "", errors.New("nil return value")
	}
	return v, nil
}

func (e *Element) Location() (*selenium.Point, error) {
	p := e.Loc
	return &p, nil
}

func (e *Element) Size() (*selenium.Size, error) {
	if e.SizeErr != nil {
		return nil, e.SizeErr
	}
	s := e.Sz
	return &s, nil
}

// Driver is a fake selenium.WebDriver.
type Driver struct {
	selenium.WebDriver

	Elements map[string][]selenium.WebElement
	FindErr  map[string]error
	// BeforeFind, when set, runs before every lookup; tests use it to change
	// the page between polls.
	BeforeFind func(d *Driver, by, value string)

	URL     string
	URLErr  error
	Handles []string
	Current string

	AcceptErrs   []error
	DismissErrs  []error
	AcceptCalls  int
	DismissCalls int

	ScriptResults map[string]interface{}
	Scripts       []string

	Calls []string
}

func (d *Driver) lookup(by, value string) ([]selenium.WebElement, error) {
	if d.BeforeFind != nil {
		d.BeforeFind(d, by, value)
	}
	if err := d.FindErr[Key(by, value)]; err != nil {
		return nil, err
	}
	return d.Elements[Key(by, value)], nil
}

// Set replaces the elements found by (by, value).
func (d *Driver) Set(by, value string, elems ...selenium.WebElement) {
	if d.Elements == nil {
		d.Elements = map[string][]selenium.WebElement{}
	}
	d.Elements[Key(by, value)] = elems
}

func (d *Driver) FindElement(by, value string) (selenium.WebElement, error) {
	elems, err := d.lookup(by, value)
	if err != nil {
		return nil, err
	}
	if len(elems) == 0 {
		return nil, NoSuchElement(by, value)
	}
	return elems[0], nil
}

func (d *Driver) FindElements(by, value string) ([]selenium.WebElement, error) {
	return d.lookup(by, value)
}

func (d *Driver) CurrentURL() (string, error) { return d.URL, d.URLErr }

func (d *Driver) WindowHandles() ([]string, error) { return d.Handles, nil }

func (d *Driver) CurrentWindowHandle() (string, error) { return d.Current, nil }

func (d *Driver) SwitchWindow(name string) error {
	d.Calls = append(d.Calls, "SwitchWindow:"+name)
	d.Current = name
	return nil
}

func next(errs *[]error) error {
	if len(*errs) == 0 {
		return nil
	}
	err := (*errs)[0]
	*errs = (*errs)[1:]
	return err
}

// AcceptAlert fails with the queued AcceptErrs, one per call, then succeeds.
func (d *Driver) AcceptAlert() error {
	d.AcceptCalls++
	return next(&d.AcceptErrs)
}

// DismissAlert fails with the queued DismissErrs, one per call, then
// succeeds.
func (d *Driver) DismissAlert() error {
	d.DismissCalls++
	return next(&d.DismissErrs)
}

func (d *Driver) ExecuteScript(script string, args []interface{}) (interface{}, error) {
	d.Scripts = append(d.Scripts, script)
	return d.ScriptResults[script], nil
}

func (d *Driver) Click(button int) error {
	d.Calls = append(d.Calls, fmt.Sprintf("Click:%d", button))
	return nil
}

func (d *Driver) DoubleClick() error {
	d.Calls = append(d.Calls, "DoubleClick")
	return nil
}

func (d *Driver) ButtonDown() error {
	d.Calls = append(d.Calls, "ButtonDown")
	return nil
}

func (d *Driver) ButtonUp() error {
	d.Calls = append(d.Calls, "ButtonUp")
	return nil
}
