package support

import (
	"github.com/tebeka/selenium"
)

// OptionalElement is the result of a lookup that may legitimately find
// nothing.
type OptionalElement struct {
	elem selenium.WebElement
}

// Get returns the element and whether one was found.
func (o OptionalElement) Get() (selenium.WebElement, bool) {
	return o.elem, o.elem != nil
}

// IsPresent reports whether an element was found.
func (o OptionalElement) IsPresent() bool { return o.elem != nil }

// SafeFindElement looks up the first element matching l. Finding nothing is
// not an error; other driver failures are.
func SafeFindElement(sc SearchContext, l Locator) (OptionalElement, error) {
	elem, err := QuietFindElement(sc, l)
	if err != nil {
		return OptionalElement{}, err
	}
	return OptionalElement{elem: elem}, nil
}

// QuietFindElement returns the first element matching l, or nil and no error
// when there is none.
func QuietFindElement(sc SearchContext, l Locator) (selenium.WebElement, error) {
	elem, err := l.FindIn(sc)
	if err != nil {
		if IsNoSuchElement(err) {
			return nil, nil
		}
		return nil, err
	}
	return elem, nil
}

// Texts returns the visible text of each element, in order.
func Texts(elems []selenium.WebElement) ([]string, error) {
	texts := make([]string, 0, len(elems))
	for _, e := range elems {
		text, err := e.Text()
		if err != nil {
			return nil, err
		}
		texts = append(texts, text)
	}
	return texts, nil
}

// AcceptAlert accepts the open alert, retrying according to
// AlertRetryPolicy. When no alert is open it fails at once with a
// *NoAlertError.
func AcceptAlert(wd selenium.WebDriver) error {
	return alertAction("accept alert", wd.AcceptAlert)
}

// DismissAlert dismisses the open alert, retrying according to
// AlertRetryPolicy. When no alert is open it fails at once with a
// *NoAlertError.
func DismissAlert(wd selenium.WebDriver) error {
	return alertAction("dismiss alert", wd.DismissAlert)
}

func alertAction(desc string, action func() error) error {
	return Retry(AlertRetryPolicy, desc, func() error {
		err := action()
		if IsNoSuchAlert(err) {
			return &NoAlertError{Err: err}
		}
		return err
	})
}
