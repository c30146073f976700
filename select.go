package support

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tebeka/selenium"
)

// Select wraps a <select> element.
type Select struct {
	element selenium.WebElement
	multi   bool
}

// NewSelect wraps el, which must be a select element.
func NewSelect(el selenium.WebElement) (*Select, error) {
	tagName, err := el.TagName()
	if err != nil {
		return nil, err
	}
	if strings.ToLower(tagName) != "select" {
		return nil, InvalidArgument("element should have been %q but was %q", "select", tagName)
	}
	multiple, err := el.GetAttribute("multiple")
	if err != nil && !IsNilAttribute(err) {
		return nil, err
	}
	return &Select{
		element: el,
		multi:   multiple != "" && strings.ToLower(multiple) != "false",
	}, nil
}

// Element returns the wrapped select element.
func (s *Select) Element() selenium.WebElement { return s.element }

// IsMultiple reports whether the select accepts several selected options.
func (s *Select) IsMultiple() bool { return s.multi }

// Options returns every option of the select.
func (s *Select) Options() ([]selenium.WebElement, error) {
	return ByTagName("option").FindAllIn(s.element)
}

// SelectedOptions returns the selected options.
func (s *Select) SelectedOptions() ([]selenium.WebElement, error) {
	opts, err := s.Options()
	if err != nil {
		return nil, err
	}
	var selected []selenium.WebElement
	for _, o := range opts {
		ok, err := o.IsSelected()
		if err != nil {
			return nil, err
		}
		if ok {
			selected = append(selected, o)
		}
	}
	return selected, nil
}

// FirstSelectedOption returns the first selected option, or a
// *NotFoundError when none is selected.
func (s *Select) FirstSelectedOption() (selenium.WebElement, error) {
	opts, err := s.SelectedOptions()
	if err != nil {
		return nil, err
	}
	if len(opts) == 0 {
		return nil, &NotFoundError{Locator: ByTagName("option")}
	}
	return opts[0], nil
}

// SelectByVisibleText selects every option whose text is text, ignoring
// surrounding white space.
func (s *Select) SelectByVisibleText(text string) error {
	return s.setByVisibleText(text, true)
}

// DeselectByVisibleText deselects every option whose text is text.
func (s *Select) DeselectByVisibleText(text string) error {
	if err := s.requireMultiple(); err != nil {
		return err
	}
	return s.setByVisibleText(text, false)
}

// SelectByValue selects every option whose value attribute is value.
func (s *Select) SelectByValue(value string) error {
	return s.setMatching(ByXPATH(`.//option[@value = `+xpathLiteral(value)+`]`), "value", value, true)
}

// DeselectByValue deselects every option whose value attribute is value.
func (s *Select) DeselectByValue(value string) error {
	if err := s.requireMultiple(); err != nil {
		return err
	}
	return s.setMatching(ByXPATH(`.//option[@value = `+xpathLiteral(value)+`]`), "value", value, false)
}

// SelectByIndex selects the option whose index property is idx.
func (s *Select) SelectByIndex(idx int) error {
	return s.setByIndex(idx, true)
}

// DeselectByIndex deselects the option whose index property is idx.
func (s *Select) DeselectByIndex(idx int) error {
	if err := s.requireMultiple(); err != nil {
		return err
	}
	return s.setByIndex(idx, false)
}

// DeselectAll clears the selection of a multi-select.
func (s *Select) DeselectAll() error {
	if err := s.requireMultiple(); err != nil {
		return err
	}
	opts, err := s.Options()
	if err != nil {
		return err
	}
	for _, o := range opts {
		if err := setSelected(o, false); err != nil {
			return err
		}
	}
	return nil
}

func (s *Select) requireMultiple() error {
	if !s.multi {
		return InvalidArgument("you may only deselect options of a multi-select")
	}
	return nil
}

func (s *Select) setMatching(l Locator, kind, want string, selected bool) error {
	opts, err := l.FindAllIn(s.element)
	if err != nil {
		return err
	}
	if len(opts) == 0 {
		return InvalidArgument("cannot locate option with %s: %s", kind, want)
	}
	for _, o := range opts {
		if err := setSelected(o, selected); err != nil {
			return err
		}
		if selected && !s.multi {
			return nil
		}
	}
	return nil
}

func (s *Select) setByVisibleText(text string, selected bool) error {
	opts, err := s.Options()
	if err != nil {
		return err
	}
	trimmed := strings.TrimSpace(text)
	matched := false
	for _, o := range opts {
		t, err := o.Text()
		if err != nil {
			return err
		}
		if strings.TrimSpace(t) != trimmed {
			continue
		}
		matched = true
		if err := setSelected(o, selected); err != nil {
			return err
		}
		if selected && !s.multi {
			return nil
		}
	}
	if !matched {
		return InvalidArgument("cannot locate option with text: %s", text)
	}
	return nil
}

func (s *Select) setByIndex(idx int, selected bool) error {
	opts, err := s.Options()
	if err != nil {
		return err
	}
	want := strconv.Itoa(idx)
	for _, o := range opts {
		i, err := o.GetAttribute("index")
		if err != nil {
			return err
		}
		if i == want {
			return setSelected(o, selected)
		}
	}
	return InvalidArgument("cannot locate option with index: %d", idx)
}

func setSelected(option selenium.WebElement, selected bool) error {
	sel, err := option.IsSelected()
	if err != nil {
		return err
	}
	if sel != selected {
		return option.Click()
	}
	return nil
}

// xpathLiteral quotes s for use in an XPath expression, including strings
// that contain both kinds of quote.
func xpathLiteral(s string) string {
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	parts := strings.Split(s, `"`)
	quoted := make([]string, len(parts))
	for i, p := range parts {
		quoted[i] = `"` + p + `"`
	}
	return fmt.Sprintf("concat(%s)", strings.Join(quoted, `, '"', `))
}
