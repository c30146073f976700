package jqueryui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tebeka/selenium"

	support "github.com/wanmail/selenium-support"
)

var (
	datePickerDiv  = support.ByID("ui-datepicker-div")
	datePickerYear = support.ByClassName("ui-datepicker-year")
	// The month is rendered as its full English name.
	datePickerMonth = support.ByClassName("ui-datepicker-month")
	datePickerDay   = support.ByClassName("ui-state-active")
	datePickerNext  = support.ByClassName("ui-datepicker-next")
)

func datePickerVisible() support.Condition {
	return support.AnyVisible("jQueryUI date-picker to be visible", datePickerDiv)
}

// DatePickerIsVisible reports whether the date picker shows up within
// ItemTimeout.
func DatePickerIsVisible(wd selenium.WebDriver) (bool, error) {
	return support.Until(newWait(wd), datePickerVisible())
}

// ClickDayOfMonth waits for the date picker and clicks the given day.
func ClickDayOfMonth(wd selenium.WebDriver, day int) error {
	if err := newWait(wd).Until(datePickerVisible()); err != nil {
		return err
	}
	button, err := support.ByLinkText(strconv.Itoa(day)).FindIn(wd)
	if err != nil {
		if support.IsNoSuchElement(err) {
			return support.InvalidArgument("Day of month not found: %d", day)
		}
		return err
	}
	return button.Click()
}

// DatePickerDate waits for the date picker and returns the selected date at
// local midnight.
func DatePickerDate(wd selenium.WebDriver) (time.Time, error) {
	if err := newWait(wd).Until(datePickerVisible()); err != nil {
		return time.Time{}, err
	}
	year, err := intText(wd, datePickerYear)
	if err != nil {
		return time.Time{}, err
	}
	month, err := monthText(wd)
	if err != nil {
		return time.Time{}, err
	}
	day, err := intText(wd, datePickerDay)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local), nil
}

// NextMonthIsEnabled opens the date picker of the input with the given id
// and reports whether its "next month" button is enabled.
func NextMonthIsEnabled(wd selenium.WebDriver, id string) (bool, error) {
	input, err := support.ByID(id).FindIn(wd)
	if err != nil {
		return false, err
	}
	if err := input.Click(); err != nil {
		return false, err
	}
	if err := newWait(wd).Until(datePickerVisible()); err != nil {
		return false, err
	}
	next, err := datePickerNext.FindIn(wd)
	if err != nil {
		return false, err
	}
	disabled, err := support.HasClass(next, "ui-state-disabled")
	if err != nil {
		return false, err
	}
	return !disabled, nil
}

func intText(wd selenium.WebDriver, l support.Locator) (int, error) {
	el, err := l.FindIn(wd)
	if err != nil {
		return 0, err
	}
	text, err := el.Text()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", l, err)
	}
	return n, nil
}

func monthText(wd selenium.WebDriver) (time.Month, error) {
	el, err := datePickerMonth.FindIn(wd)
	if err != nil {
		return 0, err
	}
	text, err := el.Text()
	if err != nil {
		return 0, err
	}
	t, err := time.Parse("January", strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", datePickerMonth, err)
	}
	return t.Month(), nil
}
