// Binary fetchtestdeps downloads the browser, driver and widget assets that
// the integration tests need.
package main

import (
	"context"
	"flag"

	"github.com/golang/glog"

	"github.com/wanmail/selenium-support/internal/download"
)

var (
	dir              = flag.String("dir", "third_party", "Directory to download into.")
	chromeBuild      = flag.String("chrome_build", "", "Chromium snapshot build to download. Empty means the latest.")
	downloadBrowsers = flag.Bool("download_browsers", true, "If true, download the Chromium browser as well as ChromeDriver.")
	select2Major     = flag.Uint64("select2_major", 3, "Select2 major version to download.")
	manifest         = flag.String("manifest", "", "Optional YAML file listing extra files to download.")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	opts := download.Options{
		ChromeBuild:  *chromeBuild,
		Browsers:     *downloadBrowsers,
		Select2Major: *select2Major,
		Manifest:     *manifest,
	}
	if err := download.DownloadAll(context.Background(), *dir, opts); err != nil {
		glog.Exitf("Error downloading test dependencies: %v", err)
	}
}
