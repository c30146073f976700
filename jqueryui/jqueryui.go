// Package jqueryui drives jQuery UI widgets: the auto-complete menu, the date
// picker and the slider.
package jqueryui

import (
	"time"

	"github.com/tebeka/selenium"

	support "github.com/wanmail/selenium-support"
)

// ItemTimeout bounds how long helpers wait for a widget to render.
var ItemTimeout = time.Second

func newWait(wd selenium.WebDriver) *support.Wait {
	return support.NewWait(wd, ItemTimeout)
}
