package support

import (
	"fmt"
	"strings"

	"github.com/tebeka/selenium"
)

// openParenChord types "(" as Shift+9, which some drivers need
// (https://code.google.com/p/selenium/issues/detail?id=1723).
var openParenChord = selenium.ShiftKey + "9" + selenium.NullKey

// EscapeKeys rewrites characters that WebElement.SendKeys mistypes.
func EscapeKeys(keys string) string {
	return strings.Replace(keys, "(", openParenChord, -1)
}

// ScrollIntoView scrolls the window just far enough for the bottom edge of el
// to be inside the viewport.
func ScrollIntoView(wd selenium.WebDriver, el selenium.WebElement) error {
	loc, err := el.Location()
	if err != nil {
		return err
	}
	size, err := el.Size()
	if err != nil {
		return err
	}
	viewport, err := ViewportSize(wd)
	if err != nil {
		return err
	}
	y := loc.Y + size.Height
	_, err = wd.ExecuteScript(fmt.Sprintf("window.scrollTo(0, %d)", y-viewport.Height), nil)
	return err
}

// ViewportSize returns the size of the document's client area.
func ViewportSize(wd selenium.WebDriver) (selenium.Size, error) {
	width, err := intScript(wd, "return document.documentElement.clientWidth")
	if err != nil {
		return selenium.Size{}, err
	}
	height, err := intScript(wd, "return document.documentElement.clientHeight")
	if err != nil {
		return selenium.Size{}, err
	}
	return selenium.Size{Width: width, Height: height}, nil
}

func intScript(wd selenium.WebDriver, script string) (int, error) {
	v, err := wd.ExecuteScript(script, nil)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case float64:
		return int(n), nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("script %q returned %T, want a number", script, v)
	}
}
