// Package bootstrap reads Bootstrap components.
package bootstrap

import (
	"github.com/tebeka/selenium"

	support "github.com/wanmail/selenium-support"
)

// DropdownMenuOptionLabels returns the label of every option of the dropdown
// menu with the given id.
func DropdownMenuOptionLabels(wd selenium.WebDriver, id string) ([]string, error) {
	menu, err := support.ByID(id).FindIn(wd)
	if err != nil {
		return nil, err
	}
	options, err := support.ByTagName("li").FindAllIn(menu)
	if err != nil {
		return nil, err
	}
	return support.Texts(options)
}
