// Package actions builds mouse gestures out of the WebDriver mouse commands
// and performs them in order.
package actions

import (
	"fmt"
	"time"

	"github.com/golang/glog"
	"github.com/tebeka/selenium"
)

type step struct {
	name string
	do   func() error
}

// Chain is an ordered list of mouse actions against one driver. Nothing is
// sent to the browser until Perform is called.
type Chain struct {
	wd    selenium.WebDriver
	steps []step
}

// New returns an empty chain for wd.
func New(wd selenium.WebDriver) *Chain {
	return &Chain{wd: wd}
}

func (c *Chain) add(name string, do func() error) *Chain {
	c.steps = append(c.steps, step{name: name, do: do})
	return c
}

// Len returns the number of queued steps.
func (c *Chain) Len() int { return len(c.steps) }

// Perform runs the queued steps in order and stops at the first failure.
// The chain is left intact and can be performed again.
func (c *Chain) Perform() error {
	for i, s := range c.steps {
		glog.V(2).Infof("action %d/%d: %s", i+1, len(c.steps), s.name)
		if err := s.do(); err != nil {
			return fmt.Errorf("action %d (%s): %w", i+1, s.name, err)
		}
	}
	return nil
}

// Reset drops every queued step.
func (c *Chain) Reset() *Chain {
	c.steps = nil
	return c
}

// MoveToElement moves the mouse to the middle of el.
func (c *Chain) MoveToElement(el selenium.WebElement) *Chain {
	return c.add("move to element", func() error { return moveToMiddle(el, 0, 0) })
}

// MoveToElementWithOffset moves the mouse to the given offset from the middle
// of el.
func (c *Chain) MoveToElementWithOffset(el selenium.WebElement, xOffset, yOffset int) *Chain {
	return c.add(fmt.Sprintf("move to element offset (%d, %d)", xOffset, yOffset), func() error {
		return moveToMiddle(el, xOffset, yOffset)
	})
}

// moveToMiddle offsets from the middle of el. The mouse command measures
// offsets from the element's top-left corner.
func moveToMiddle(el selenium.WebElement, xOffset, yOffset int) error {
	size, err := el.Size()
	if err != nil {
		return err
	}
	return el.MoveTo(size.Width/2+xOffset, size.Height/2+yOffset)
}

// Click clicks the left button, first moving to el when it is not nil.
func (c *Chain) Click(el selenium.WebElement) *Chain {
	c.moveIfSet(el)
	return c.add("click", func() error { return c.wd.Click(selenium.LeftButton) })
}

// ContextClick clicks the right button, first moving to el when it is not
// nil.
func (c *Chain) ContextClick(el selenium.WebElement) *Chain {
	c.moveIfSet(el)
	return c.add("context click", func() error { return c.wd.Click(selenium.RightButton) })
}

// DoubleClick double clicks the left button, first moving to el when it is
// not nil.
func (c *Chain) DoubleClick(el selenium.WebElement) *Chain {
	c.moveIfSet(el)
	return c.add("double click", c.wd.DoubleClick)
}

// ClickAndHold presses the left button, first moving to el when it is not
// nil.
func (c *Chain) ClickAndHold(el selenium.WebElement) *Chain {
	c.moveIfSet(el)
	return c.add("button down", c.wd.ButtonDown)
}

// Release releases the left button, first moving to el when it is not nil.
func (c *Chain) Release(el selenium.WebElement) *Chain {
	c.moveIfSet(el)
	return c.add("button up", c.wd.ButtonUp)
}

// DragAndDrop drags source onto target.
func (c *Chain) DragAndDrop(source, target selenium.WebElement) *Chain {
	return c.ClickAndHold(source).Release(target)
}

// DragAndDropBy drags source by the given offset.
func (c *Chain) DragAndDropBy(source selenium.WebElement, xOffset, yOffset int) *Chain {
	return c.ClickAndHold(source).
		MoveToElementWithOffset(source, xOffset, yOffset).
		Release(nil)
}

// Pause waits for d before the next step.
func (c *Chain) Pause(d time.Duration) *Chain {
	return c.add(fmt.Sprintf("pause %v", d), func() error {
		time.Sleep(d)
		return nil
	})
}

func (c *Chain) moveIfSet(el selenium.WebElement) {
	if el != nil {
		c.MoveToElement(el)
	}
}
