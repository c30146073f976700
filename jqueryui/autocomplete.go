package jqueryui

import (
	"github.com/tebeka/selenium"

	support "github.com/wanmail/selenium-support"
)

var (
	autoCompleteMenu        = support.ByCSSSelector(".ui-autocomplete")
	autoCompleteSuggestions = support.ByCSSSelector(".ui-autocomplete li a")
)

func autoCompleteVisible() support.Condition {
	return support.AnyVisible("jQueryUI auto-complete to be visible", autoCompleteMenu)
}

// AutoCompleteIsVisible reports whether an auto-complete menu shows up within
// ItemTimeout.
func AutoCompleteIsVisible(wd selenium.WebDriver) (bool, error) {
	return support.Until(newWait(wd), autoCompleteVisible())
}

// AutoCompleteSuggestions waits for the menu and returns the text of each
// suggestion in it.
func AutoCompleteSuggestions(wd selenium.WebDriver) ([]string, error) {
	if err := newWait(wd).Until(autoCompleteVisible()); err != nil {
		return nil, err
	}
	elems, err := autoCompleteSuggestions.FindAllIn(wd)
	if err != nil {
		return nil, err
	}
	return support.Texts(elems)
}

// ClickAutoCompleteSuggestion waits for the menu and clicks the suggestion
// whose text is suggestion.
func ClickAutoCompleteSuggestion(wd selenium.WebDriver, suggestion string) error {
	if err := newWait(wd).Until(autoCompleteVisible()); err != nil {
		return err
	}
	elems, err := autoCompleteSuggestions.FindAllIn(wd)
	if err != nil {
		return err
	}
	for _, e := range elems {
		text, err := e.Text()
		if err != nil {
			return err
		}
		if text == suggestion {
			return e.Click()
		}
	}
	return support.InvalidArgument("Suggestion not found: %s", suggestion)
}
