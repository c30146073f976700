package support

import (
	"fmt"

	"github.com/tebeka/selenium"
)

// Condition is a named predicate over the browser state, evaluated each time
// a Wait polls it. String describes what is being waited for and is used in
// timeout errors.
type Condition interface {
	Apply(wd selenium.WebDriver) (bool, error)
	String() string
}

type funcCondition struct {
	desc string
	fn   selenium.Condition
}

func (c funcCondition) Apply(wd selenium.WebDriver) (bool, error) { return c.fn(wd) }

func (c funcCondition) String() string { return c.desc }

// NewCondition names a plain selenium.Condition.
func NewCondition(desc string, fn selenium.Condition) Condition {
	return funcCondition{desc: desc, fn: fn}
}

// Func converts c to a selenium.Condition, for use with the driver's own
// Wait methods.
func Func(c Condition) selenium.Condition {
	return c.Apply
}

type andCondition struct {
	a, b Condition
}

// And holds when both a and b hold on the same evaluation. Both sides are
// always evaluated.
func And(a, b Condition) Condition {
	return andCondition{a: a, b: b}
}

func (c andCondition) Apply(wd selenium.WebDriver) (bool, error) {
	v1, err1 := c.a.Apply(wd)
	v2, err2 := c.b.Apply(wd)
	if err1 != nil {
		return false, err1
	}
	if err2 != nil {
		return false, err2
	}
	return v1 && v2, nil
}

func (c andCondition) String() string {
	return fmt.Sprintf("%s and %s", c.a, c.b)
}

type notCondition struct {
	c Condition
}

// Not inverts c. Errors from c propagate unchanged.
func Not(c Condition) Condition {
	return notCondition{c}
}

func (n notCondition) Apply(wd selenium.WebDriver) (bool, error) {
	v, err := n.c.Apply(wd)
	if err != nil {
		return false, err
	}
	return !v, nil
}

func (n notCondition) String() string {
	return fmt.Sprintf("condition to not be valid: %s", n.c)
}

type urlCondition struct {
	url     string
	current string
}

// URLIs holds when the browser's current URL equals url. Its description
// includes the URL seen on the last evaluation.
func URLIs(url string) Condition {
	return &urlCondition{url: url}
}

func (c *urlCondition) Apply(wd selenium.WebDriver) (bool, error) {
	current, err := wd.CurrentURL()
	if err != nil {
		return false, err
	}
	c.current = current
	return current == c.url, nil
}

func (c *urlCondition) String() string {
	return fmt.Sprintf("URL to be %q. Current URL: %q", c.url, c.current)
}

// VisibilityOfElementLocated holds when the first element matching l exists
// and is displayed.
func VisibilityOfElementLocated(l Locator) Condition {
	return NewCondition(fmt.Sprintf("visibility of element located by %s", l), func(wd selenium.WebDriver) (bool, error) {
		elem, err := l.FindIn(wd)
		if err != nil {
			if IsNoSuchElement(err) || IsStaleElement(err) {
				return false, nil
			}
			return false, err
		}
		displayed, err := elem.IsDisplayed()
		if IsStaleElement(err) {
			return false, nil
		}
		return displayed, err
	})
}

// InvisibilityOfElementLocated holds when no element matches l or the first
// match is hidden.
func InvisibilityOfElementLocated(l Locator) Condition {
	return NewCondition(fmt.Sprintf("element to no longer be visible: %s", l), func(wd selenium.WebDriver) (bool, error) {
		elem, err := l.FindIn(wd)
		if err != nil {
			if IsNoSuchElement(err) || IsStaleElement(err) {
				return true, nil
			}
			return false, err
		}
		displayed, err := elem.IsDisplayed()
		if IsStaleElement(err) {
			return true, nil
		}
		if err != nil {
			return false, err
		}
		return !displayed, nil
	})
}

// AnyVisible holds when at least one element matching l is displayed. Widget
// helpers use it to wait for asynchronously rendered popups.
func AnyVisible(desc string, l Locator) Condition {
	return NewCondition(desc, func(wd selenium.WebDriver) (bool, error) {
		elems, err := l.FindAllIn(wd)
		if err != nil {
			return false, err
		}
		for _, e := range elems {
			displayed, err := e.IsDisplayed()
			if IsStaleElement(err) {
				continue
			}
			if err != nil {
				return false, err
			}
			if displayed {
				return true, nil
			}
		}
		return false, nil
	})
}

// StalenessOf holds once elem is no longer attached to the document.
func StalenessOf(elem selenium.WebElement) Condition {
	return NewCondition("element to become stale", func(selenium.WebDriver) (bool, error) {
		_, err := elem.IsEnabled()
		switch {
		case err == nil:
			return false, nil
		case IsStaleElement(err), IsNoSuchElement(err):
			return true, nil
		default:
			return false, err
		}
	})
}

// AnotherWindowToBeAvailableAndSwitchToIt holds once a window other than the
// current one exists, and switches the driver to it.
func AnotherWindowToBeAvailableAndSwitchToIt() Condition {
	return NewCondition("another window to be available", func(wd selenium.WebDriver) (bool, error) {
		handles, err := wd.WindowHandles()
		if err != nil {
			return false, err
		}
		current, err := wd.CurrentWindowHandle()
		if err != nil {
			return false, err
		}
		for _, h := range handles {
			if h == current {
				continue
			}
			if err := wd.SwitchWindow(h); err != nil {
				return false, err
			}
			return true, nil
		}
		return false, nil
	})
}
