package jqueryui

import (
	"github.com/tebeka/selenium"

	support "github.com/wanmail/selenium-support"
	"github.com/wanmail/selenium-support/actions"
)

var sliderHandle = support.ByClassName("ui-slider-handle")

// DragSliderHandle drags the handle of slider horizontally by percent of the
// slider's width.
func DragSliderHandle(wd selenium.WebDriver, slider selenium.WebElement, percent int) error {
	handle, err := SliderHandle(slider)
	if err != nil {
		return err
	}
	amount, err := DragAmount(slider, percent)
	if err != nil {
		return err
	}
	return actions.New(wd).DragAndDropBy(handle, amount, 0).Perform()
}

// SliderHandle returns the draggable handle of slider.
func SliderHandle(slider selenium.WebElement) (selenium.WebElement, error) {
	return sliderHandle.FindIn(slider)
}

// DragAmount converts percent of slider's rendered width into pixels,
// truncating toward zero. percent must lie strictly between -100 and 100.
func DragAmount(slider selenium.WebElement, percent int) (int, error) {
	if percent <= -100 || percent >= 100 {
		return 0, support.InvalidArgument("percent must be between -100 and 100")
	}
	size, err := slider.Size()
	if err != nil {
		return 0, err
	}
	widthPercent := float64(size.Width) / 100.0
	return int(widthPercent * float64(percent)), nil
}
