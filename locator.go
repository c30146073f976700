package support

import (
	"fmt"

	"github.com/tebeka/selenium"
)

// Locator describes how to find elements: a WebDriver location strategy and
// the value to search for. It is passed to the driver unchanged.
type Locator struct {
	By, Value string
}

// ByID locates elements whose id attribute is id.
func ByID(id string) Locator { return Locator{selenium.ByID, id} }

// ByXPATH locates elements matching an XPath expression.
func ByXPATH(xpath string) Locator { return Locator{selenium.ByXPATH, xpath} }

// ByLinkText locates anchors whose visible text is text.
func ByLinkText(text string) Locator { return Locator{selenium.ByLinkText, text} }

// ByPartialLinkText locates anchors whose visible text contains text.
func ByPartialLinkText(text string) Locator { return Locator{selenium.ByPartialLinkText, text} }

// ByName locates elements whose name attribute is name.
func ByName(name string) Locator { return Locator{selenium.ByName, name} }

// ByTagName locates elements by tag name.
func ByTagName(tag string) Locator { return Locator{selenium.ByTagName, tag} }

// ByClassName locates elements carrying the class name.
func ByClassName(class string) Locator { return Locator{selenium.ByClassName, class} }

// ByCSSSelector locates elements matching a CSS selector.
func ByCSSSelector(selector string) Locator { return Locator{selenium.ByCSSSelector, selector} }

// String renders the locator as `By.<strategy>: <value>`.
func (l Locator) String() string {
	return fmt.Sprintf("By.%s: %s", l.By, l.Value)
}

// FindIn finds the first element matching l under sc.
func (l Locator) FindIn(sc SearchContext) (selenium.WebElement, error) {
	return sc.FindElement(l.By, l.Value)
}

// FindAllIn finds every element matching l under sc.
func (l Locator) FindAllIn(sc SearchContext) ([]selenium.WebElement, error) {
	return sc.FindElements(l.By, l.Value)
}
