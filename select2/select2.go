// Package select2 drives Select2 3.x widgets, addressed by the id of the
// underlying input.
package select2

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/tebeka/selenium"

	support "github.com/wanmail/selenium-support"
)

const (
	dropdownSelector      = "#select2-drop"
	dropdownInputSelector = dropdownSelector + " input.select2-input"
	widgetSelector        = "#s2id_%s"
	choiceSelector        = widgetSelector + " a.select2-choice"
	choicesSelector       = widgetSelector + " li.select2-search-choice"
	closeChoicesSelector  = choicesSelector + " a.select2-search-choice-close"
	inputSelector         = widgetSelector + " input.select2-input"
	itemsSelector         = ".select2-result"
	highlightedSelector   = dropdownSelector + " .select2-highlighted"
)

var (
	// ClearTimeout bounds the wait for a removed choice to leave the page.
	ClearTimeout = time.Second
	// ItemTimeout bounds the wait for the result list and its items.
	ItemTimeout = time.Second
)

func byChoice(id string) support.Locator {
	return support.ByCSSSelector(fmt.Sprintf(choiceSelector, id))
}

func byChoices(id string) support.Locator {
	return support.ByCSSSelector(fmt.Sprintf(choicesSelector, id))
}

func byCloseChoices(id string) support.Locator {
	return support.ByCSSSelector(fmt.Sprintf(closeChoicesSelector, id))
}

func byInput(id string) support.Locator {
	return support.ByCSSSelector(fmt.Sprintf(inputSelector, id))
}

var (
	byItems          = support.ByCSSSelector(itemsSelector)
	byDropdown       = support.ByCSSSelector(dropdownSelector)
	byDropdownInput  = support.ByCSSSelector(dropdownInputSelector)
	byHighlighted    = support.ByCSSSelector(highlightedSelector)
	byResultLabel    = support.ByClassName("select2-result-label")
	bySelectionLimit = support.ByCSSSelector(".select2-selection-limit")
	byNoResults      = support.ByCSSSelector(".select2-no-results")
)

// Input returns the search input of the widget.
func Input(wd selenium.WebDriver, id string) (selenium.WebElement, error) {
	return byInput(id).FindIn(wd)
}

// Values returns the text of every chosen value of a multi-value widget.
func Values(wd selenium.WebDriver, id string) ([]string, error) {
	elems, err := byChoices(id).FindAllIn(wd)
	if err != nil {
		return nil, err
	}
	return support.Texts(elems)
}

// Suggestions returns the entries of the result list, opening the widget
// first when no list is shown.
func Suggestions(wd selenium.WebDriver, id string) ([]Suggestion, error) {
	items, err := byItems.FindAllIn(wd)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		field, err := byChoice(id).FindIn(wd)
		if err != nil {
			return nil, err
		}
		if err := field.Click(); err != nil {
			return nil, err
		}
		if items, err = byItems.FindAllIn(wd); err != nil {
			return nil, err
		}
	}
	return suggestions(items), nil
}

// DropdownItemNames opens a single-value widget and returns the text of its
// items.
func DropdownItemNames(wd selenium.WebDriver, id string) ([]string, error) {
	field, err := byChoice(id).FindIn(wd)
	if err != nil {
		return nil, err
	}
	if err := field.Click(); err != nil {
		return nil, err
	}
	return ItemNames(wd)
}

// ItemNames waits for the result list and returns the text of its items.
func ItemNames(wd selenium.WebDriver) ([]string, error) {
	items, err := Items(wd)
	if err != nil {
		return nil, err
	}
	return support.Texts(items)
}

// Items waits for the result list and returns its items.
func Items(wd selenium.WebDriver) ([]selenium.WebElement, error) {
	if err := waitForItems(wd); err != nil {
		return nil, err
	}
	return byItems.FindAllIn(wd)
}

// SetValues replaces the chosen values with values.
func SetValues(wd selenium.WebDriver, id string, values []string) error {
	if err := Clear(wd, id); err != nil {
		return err
	}
	return AddValues(wd, id, values)
}

// AddValues chooses each of values in turn.
func AddValues(wd selenium.WebDriver, id string, values []string) error {
	for _, v := range values {
		if err := AddValue(wd, id, v); err != nil {
			return err
		}
	}
	return nil
}

// AddValue types value into the widget and clicks the matching item.
func AddValue(wd selenium.WebDriver, id, value string) error {
	return AddPartialValue(wd, id, value, value)
}

// AddPartialValue types partialValue into the widget and clicks the item
// whose text is value.
func AddPartialValue(wd selenium.WebDriver, id, partialValue, value string) error {
	input, err := byInput(id).FindIn(wd)
	if err != nil {
		return err
	}
	if err := input.SendKeys(support.EscapeKeys(partialValue)); err != nil {
		return err
	}
	if err := waitForItem(wd, value); err != nil {
		return err
	}
	return ClickItem(wd, value)
}

// SetDropdownSearchText opens a single-value widget and types searchText
// into the dropdown's search box.
func SetDropdownSearchText(wd selenium.WebDriver, id, searchText string) error {
	field, err := byChoice(id).FindIn(wd)
	if err != nil {
		return err
	}
	if err := field.Click(); err != nil {
		return err
	}
	input, err := byDropdownInput.FindIn(wd)
	if err != nil {
		return err
	}
	return input.SendKeys(support.EscapeKeys(searchText))
}

// SetSearchText types text into the widget and waits for an item with that
// exact text.
func SetSearchText(wd selenium.WebDriver, id, text string) error {
	input, err := byInput(id).FindIn(wd)
	if err != nil {
		return err
	}
	if err := input.SendKeys(support.EscapeKeys(text)); err != nil {
		return err
	}
	return waitForItem(wd, text)
}

// Clear removes every chosen value, waiting for each to leave the page.
func Clear(wd selenium.WebDriver, id string) error {
	closers, err := byCloseChoices(id).FindAllIn(wd)
	if err != nil {
		return err
	}
	for _, c := range closers {
		if err := c.Click(); err != nil {
			return err
		}
		if err := support.NewWait(wd, ClearTimeout).Until(support.StalenessOf(c)); err != nil {
			return err
		}
	}
	glog.V(2).Infof("select2 %s: cleared %d values", id, len(closers))
	return nil
}

// ClickItem waits for the item whose text is value and clicks it.
func ClickItem(wd selenium.WebDriver, value string) error {
	if err := waitForItem(wd, value); err != nil {
		return err
	}
	item, err := findItem(wd, value)
	if err != nil {
		return err
	}
	if item == nil {
		return support.InvalidArgument("Select2 item not found: %s", value)
	}
	return item.Click()
}

// HighlightedSuggestion waits for the dropdown and returns its highlighted
// entry, if any.
func HighlightedSuggestion(wd selenium.WebDriver, id string) (Suggestion, bool, error) {
	if err := support.NewWait(wd, ItemTimeout).Until(dropdownVisible()); err != nil {
		return Suggestion{}, false, err
	}
	item, err := HighlightedItem(wd, id)
	if err != nil {
		return Suggestion{}, false, err
	}
	el, ok := item.Get()
	if !ok {
		return Suggestion{}, false, nil
	}
	return NewSuggestion(el), true, nil
}

// HighlightedItem waits for the result list and returns the highlighted
// item, if any.
func HighlightedItem(wd selenium.WebDriver, id string) (support.OptionalElement, error) {
	if err := waitForItems(wd); err != nil {
		return support.OptionalElement{}, err
	}
	return support.SafeFindElement(wd, byHighlighted)
}

// IsSelectionLimitMessageVisible reports whether the widget says no more
// values can be chosen.
func IsSelectionLimitMessageVisible(wd selenium.WebDriver) (bool, error) {
	return present(wd, bySelectionLimit)
}

// IsTooFewCharactersMessageVisible reports whether the widget asks for more
// input before searching.
func IsTooFewCharactersMessageVisible(wd selenium.WebDriver) (bool, error) {
	// TODO: match the "Please enter N more character" text, not just the node.
	return present(wd, byNoResults)
}

func present(wd selenium.WebDriver, l support.Locator) (bool, error) {
	elems, err := l.FindAllIn(wd)
	if err != nil {
		return false, err
	}
	return len(elems) > 0, nil
}

// findItem returns the result element whose text equals value with
// surrounding space removed, or nil.
func findItem(wd selenium.WebDriver, value string) (selenium.WebElement, error) {
	items, err := byItems.FindAllIn(wd)
	if err != nil {
		return nil, err
	}
	want := strings.TrimSpace(value)
	for _, s := range suggestions(items) {
		text, err := s.Text()
		if err != nil {
			return nil, err
		}
		if text == want {
			return s.Element(), nil
		}
	}
	return nil, nil
}

func waitForItem(wd selenium.WebDriver, value string) error {
	cond := support.NewCondition(fmt.Sprintf("Select2 item '%s' to be visible", value), func(wd selenium.WebDriver) (bool, error) {
		item, err := findItem(wd, value)
		return item != nil, err
	})
	return support.NewWait(wd, ItemTimeout).Until(cond)
}

func dropdownVisible() support.Condition {
	return support.NewCondition("Select2 drop to be visible", func(wd selenium.WebDriver) (bool, error) {
		_, err := byDropdown.FindIn(wd)
		return err == nil, err
	})
}

func waitForItems(wd selenium.WebDriver) error {
	return support.NewWait(wd, ItemTimeout).Until(support.NewCondition("Select2 items to be visible", func(wd selenium.WebDriver) (bool, error) {
		label, err := byResultLabel.FindIn(wd)
		if err != nil {
			return false, err
		}
		return label.IsDisplayed()
	}))
}
