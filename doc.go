/*
Package support provides helpers on top of the github.com/tebeka/selenium
WebDriver client for writing browser tests: composite elements, named
conditions and waits, a bounded retry for alerts, and form helpers.
Subpackages target specific widgets (jqueryui, select2, bootstrap) and mouse
gestures (actions).

Every helper runs synchronously in the calling goroutine and returns once the
browser has answered or a timeout or retry budget is spent. A WebDriver
session is not safe for concurrent use, so neither are these helpers: drive a
session from one goroutine at a time.

Example usage:

	// Errors are ignored for brevity.
	wd, _ := selenium.NewRemote(selenium.Capabilities{"browserName": "chrome"}, "")
	defer wd.Quit()

	wd.Get("http://localhost:8080/signup")

	// Wait for the redirect and for the form to render.
	w := support.NewWait(wd, 5*time.Second)
	w.Until(support.And(
		support.URLIs("http://localhost:8080/signup/details"),
		support.VisibilityOfElementLocated(support.ByID("details")),
	))

	radios, _ := wd.FindElements(selenium.ByName, "plan")
	support.SetRadioValue(radios, "pro")

	// Search two panels as if they were one.
	left, _ := wd.FindElement(selenium.ByID, "left")
	right, _ := wd.FindElement(selenium.ByID, "right")
	panels := support.NewCompositeWebElement(left, right)
	links, _ := panels.FindElements(selenium.ByTagName, "a")
	fmt.Println(len(links))

	support.AcceptAlert(wd)
*/
package support
