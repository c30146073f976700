package select2

import (
	"strings"

	"github.com/tebeka/selenium"

	support "github.com/wanmail/selenium-support"
)

const newItemClass = "x-select2-new"

// Suggestion is one entry of an open Select2 result list.
type Suggestion struct {
	element selenium.WebElement
}

// NewSuggestion wraps a result element. el must not be nil.
func NewSuggestion(el selenium.WebElement) Suggestion {
	if el == nil {
		panic("select2: nil suggestion element")
	}
	return Suggestion{element: el}
}

// Element returns the wrapped result element.
func (s Suggestion) Element() selenium.WebElement { return s.element }

// IsNew reports whether the entry offers to create a new value.
func (s Suggestion) IsNew() (bool, error) {
	class, err := s.element.GetAttribute("class")
	if err != nil {
		if support.IsNilAttribute(err) {
			return false, nil
		}
		return false, err
	}
	return strings.Contains(class, newItemClass), nil
}

// Text returns the entry's text. For a new value entry the "New " prefix is
// dropped so the text matches the value that will be created.
func (s Suggestion) Text() (string, error) {
	text, err := s.element.Text()
	if err != nil {
		return "", err
	}
	isNew, err := s.IsNew()
	if err != nil {
		return "", err
	}
	if isNew {
		text = strings.TrimPrefix(text, "New ")
	}
	return text, nil
}

// Equal reports whether s and other wrap the same element.
func (s Suggestion) Equal(other Suggestion) bool {
	return s.element == other.element
}

func suggestions(elems []selenium.WebElement) []Suggestion {
	out := make([]Suggestion, 0, len(elems))
	for _, e := range elems {
		out = append(out, NewSuggestion(e))
	}
	return out
}
