package support

import (
	"strings"

	"github.com/tebeka/selenium"
)

// ControlValue returns the value attribute of a form control.
func ControlValue(control selenium.WebElement) (string, error) {
	return control.GetAttribute("value")
}

// SetControlValue clears control and types value into it.
func SetControlValue(control selenium.WebElement, value string) error {
	if err := control.Clear(); err != nil {
		return err
	}
	return control.SendKeys(value)
}

// SetCheckboxValue clicks checkbox if its state differs from checked.
func SetCheckboxValue(checkbox selenium.WebElement, checked bool) error {
	selected, err := checkbox.IsSelected()
	if err != nil {
		return err
	}
	if selected != checked {
		return checkbox.Click()
	}
	return nil
}

// RadioValue returns the value of the first selected radio button, or "" if
// none is selected.
func RadioValue(radios []selenium.WebElement) (string, error) {
	for _, r := range radios {
		selected, err := r.IsSelected()
		if err != nil {
			return "", err
		}
		if selected {
			return r.GetAttribute("value")
		}
	}
	return "", nil
}

// SetRadioValue clicks the radio button whose value is value. It returns an
// *InvalidArgumentError if there is none.
func SetRadioValue(radios []selenium.WebElement, value string) error {
	for _, r := range radios {
		v, err := r.GetAttribute("value")
		if err != nil {
			return err
		}
		if v == value {
			return r.Click()
		}
	}
	return InvalidArgument("Unknown radio value: %s", value)
}

// OptionValues returns the value attribute of every option of a select.
func OptionValues(el selenium.WebElement) ([]string, error) {
	return mapOptions(el, func(o selenium.WebElement) (string, error) {
		return o.GetAttribute("value")
	})
}

// OptionLabels returns the text of every option of a select.
func OptionLabels(el selenium.WebElement) ([]string, error) {
	return mapOptions(el, func(o selenium.WebElement) (string, error) {
		return o.Text()
	})
}

func mapOptions(el selenium.WebElement, f func(selenium.WebElement) (string, error)) ([]string, error) {
	s, err := NewSelect(el)
	if err != nil {
		return nil, err
	}
	opts, err := s.Options()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		v, err := f(o)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// IsEnabled reports whether el lacks disabled="true".
func IsEnabled(el selenium.WebElement) (bool, error) {
	disabled, err := el.GetAttribute("disabled")
	if err != nil {
		if IsNilAttribute(err) {
			return true, nil
		}
		return false, err
	}
	return disabled != "true", nil
}

var formGroup = ByXPATH("ancestor::*[contains(concat(' ', @class, ' '), ' form-group ')]")

// HasFormGroupError reports whether the first Bootstrap form-group enclosing
// el, in document order, is marked has-error. An element outside any
// form-group has no error.
func HasFormGroupError(el selenium.WebElement) (bool, error) {
	groups, err := formGroup.FindAllIn(el)
	if err != nil {
		return false, err
	}
	if len(groups) == 0 {
		return false, nil
	}
	return HasError(groups[0])
}

// HasError reports whether el carries the has-error class.
func HasError(el selenium.WebElement) (bool, error) {
	return HasClass(el, "has-error")
}

// HasClass reports whether className is one of el's space separated classes.
func HasClass(el selenium.WebElement, className string) (bool, error) {
	class, err := el.GetAttribute("class")
	if err != nil {
		if IsNilAttribute(err) {
			return false, nil
		}
		return false, err
	}
	for _, c := range strings.Split(class, " ") {
		if c == className {
			return true, nil
		}
	}
	return false, nil
}
