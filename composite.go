package support

import (
	"github.com/tebeka/selenium"
)

// SearchContext is the search capability shared by selenium.WebDriver,
// selenium.WebElement and the composites in this package.
type SearchContext interface {
	FindElement(by, value string) (selenium.WebElement, error)
	FindElements(by, value string) ([]selenium.WebElement, error)
}

// Displayable is a SearchContext that can also report whether it is
// displayed. selenium.WebElement satisfies it.
type Displayable interface {
	SearchContext
	IsDisplayed() (bool, error)
}

// CompositeSearchContext presents several search contexts as one. The member
// list is fixed at construction and members are never modified.
type CompositeSearchContext struct {
	contexts []SearchContext
}

// NewCompositeSearchContext returns a composite over contexts, searched in
// the given order.
func NewCompositeSearchContext(contexts ...SearchContext) *CompositeSearchContext {
	return &CompositeSearchContext{contexts: append([]SearchContext(nil), contexts...)}
}

// FindElements returns the concatenation, in member order, of each member's
// matches. Duplicates are kept.
func (c *CompositeSearchContext) FindElements(by, value string) ([]selenium.WebElement, error) {
	results := []selenium.WebElement{}
	for _, sc := range c.contexts {
		elems, err := sc.FindElements(by, value)
		if err != nil {
			if IsNoSuchElement(err) {
				continue
			}
			return nil, err
		}
		results = append(results, elems...)
	}
	return results, nil
}

// FindElement returns the first match of the first member that has one. It
// returns a *NotFoundError when no member matches.
func (c *CompositeSearchContext) FindElement(by, value string) (selenium.WebElement, error) {
	for _, sc := range c.contexts {
		elem, err := sc.FindElement(by, value)
		if err == nil {
			return elem, nil
		}
		if !IsNoSuchElement(err) {
			return nil, err
		}
	}
	return nil, &NotFoundError{Locator: Locator{By: by, Value: value}}
}

// Children returns a copy of the members.
func (c *CompositeSearchContext) Children() []SearchContext {
	return append([]SearchContext(nil), c.contexts...)
}

// CompositeElement presents several elements as one displayable, searchable
// unit. It does not implement selenium.WebElement: clicking or typing into a
// group of elements has no single meaning.
type CompositeElement struct {
	CompositeSearchContext
	elements []Displayable
}

// NewCompositeElement returns a composite over elements. Members may
// themselves be composites.
func NewCompositeElement(elements ...Displayable) *CompositeElement {
	elems := append([]Displayable(nil), elements...)
	contexts := make([]SearchContext, len(elems))
	for i, e := range elems {
		contexts[i] = e
	}
	return &CompositeElement{
		CompositeSearchContext: CompositeSearchContext{contexts: contexts},
		elements:               elems,
	}
}

// NewCompositeWebElement composes driver elements.
func NewCompositeWebElement(elements ...selenium.WebElement) *CompositeElement {
	ds := make([]Displayable, len(elements))
	for i, e := range elements {
		ds[i] = e
	}
	return NewCompositeElement(ds...)
}

// IsDisplayed reports whether every member is displayed. Every member is
// asked, and a composite with no members is displayed.
func (c *CompositeElement) IsDisplayed() (bool, error) {
	displayed := true
	var firstErr error
	for _, e := range c.elements {
		d, err := e.IsDisplayed()
		if err != nil && firstErr == nil {
			firstErr = err
		}
		displayed = displayed && d
	}
	if firstErr != nil {
		return false, firstErr
	}
	return displayed, nil
}

// Elements returns a copy of the members.
func (c *CompositeElement) Elements() []Displayable {
	return append([]Displayable(nil), c.elements...)
}

// AsWebElement adapts c to selenium.WebElement for APIs that require one.
// Only searching and IsDisplayed are delegated; every other method fails with
// an *UnsupportedOperationError.
func (c *CompositeElement) AsWebElement() selenium.WebElement {
	return compositeWebElement{c}
}

type compositeWebElement struct {
	c *CompositeElement
}

var _ selenium.WebElement = compositeWebElement{}

func unsupported(op string) error { return &UnsupportedOperationError{Op: op} }

func (w compositeWebElement) FindElement(by, value string) (selenium.WebElement, error) {
	return w.c.FindElement(by, value)
}

func (w compositeWebElement) FindElements(by, value string) ([]selenium.WebElement, error) {
	return w.c.FindElements(by, value)
}

func (w compositeWebElement) IsDisplayed() (bool, error) { return w.c.IsDisplayed() }

func (compositeWebElement) Click() error { return unsupported("Click") }

func (compositeWebElement) SendKeys(string) error { return unsupported("SendKeys") }

func (compositeWebElement) Submit() error { return unsupported("Submit") }

func (compositeWebElement) Clear() error { return unsupported("Clear") }

func (compositeWebElement) MoveTo(int, int) error { return unsupported("MoveTo") }

func (compositeWebElement) TagName() (string, error) { return "", unsupported("TagName") }

func (compositeWebElement) Text() (string, error) { return "", unsupported("Text") }

func (compositeWebElement) IsSelected() (bool, error) { return false, unsupported("IsSelected") }

func (compositeWebElement) IsEnabled() (bool, error) { return false, unsupported("IsEnabled") }

func (compositeWebElement) GetAttribute(string) (string, error) {
	return "", unsupported("GetAttribute")
}

func (compositeWebElement) Location() (*selenium.Point, error) {
	return nil, unsupported("Location")
}

func (compositeWebElement) LocationInView() (*selenium.Point, error) {
	return nil, unsupported("LocationInView")
}

func (compositeWebElement) Size() (*selenium.Size, error) { return nil, unsupported("Size") }

func (compositeWebElement) CSSProperty(string) (string, error) {
	return "", unsupported("CSSProperty")
}

func (compositeWebElement) Screenshot(bool) ([]byte, error) {
	return nil, unsupported("Screenshot")
}
