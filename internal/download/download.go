// Package download fetches the browser, driver and widget assets the
// integration tests run against.
package download

import (
	"context"
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/blang/semver"
	"github.com/golang/glog"
	"github.com/google/go-github/v63/github"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"
)

// File describes how to download one dependency.
type File struct {
	url      string
	Name     string
	hash     string
	hashType string // sha256 unless set
	// Rename, when it holds two names, moves the unpacked Rename[0] to
	// Rename[1].
	Rename  []string
	Browser bool

	directory string
}

// Path is where the file is stored.
func (f File) Path() string {
	if f.directory != "" {
		return filepath.Join(f.directory, f.Name)
	}
	return f.Name
}

// URL is where the file is downloaded from.
func (f File) URL() string { return f.url }

var (
	// JQueryFile is the jQuery build the widget fixtures load.
	JQueryFile = File{
		url:  "https://code.jquery.com/jquery-1.12.4.min.js",
		Name: "jquery.min.js",
	}

	// JQueryUIFile is the jQuery UI bundle with the auto-complete, date
	// picker and slider widgets.
	JQueryUIFile = File{
		url:    "https://jqueryui.com/resources/download/jquery-ui-1.12.1.zip",
		Name:   "jquery-ui.zip",
		Rename: []string{"jquery-ui-1.12.1", "jquery-ui"},
	}
)

// Options selects what AllFiles returns.
type Options struct {
	// ChromeBuild pins a Chromium snapshot; empty means the latest one.
	ChromeBuild string
	// Browsers includes the Chromium snapshot itself. ChromeDriver is always
	// included.
	Browsers bool
	// Select2Major is the Select2 major version to fetch. The helpers target
	// the 3.x markup.
	Select2Major uint64
	// HTTPClient is used for the GitHub API; nil means http.DefaultClient.
	HTTPClient *http.Client
	// Manifest, if set, is a YAML file listing extra files to fetch.
	Manifest string
}

// AllFiles lists every dependency of the integration tests.
func AllFiles(ctx context.Context, opts Options) ([]File, error) {
	files := []File{JQueryFile, JQueryUIFile}

	chrome, err := ChromeFiles(ctx, opts.ChromeBuild)
	if err != nil {
		return nil, err
	}
	for _, f := range chrome {
		if f.Browser && !opts.Browsers {
			glog.Infof("Skipping %q because browsers are not requested.", f.Name)
			continue
		}
		files = append(files, f)
	}

	major := opts.Select2Major
	if major == 0 {
		major = 3
	}
	select2, err := Select2File(ctx, github.NewClient(opts.HTTPClient), major)
	if err != nil {
		return nil, err
	}
	files = append(files, select2)

	if opts.Manifest != "" {
		extra, err := LoadManifest(opts.Manifest)
		if err != nil {
			return nil, fmt.Errorf("error loading %s: %v", opts.Manifest, err)
		}
		for _, f := range extra {
			if f.Browser && !opts.Browsers {
				glog.Infof("Skipping %q because browsers are not requested.", f.Name)
				continue
			}
			files = append(files, f)
		}
	}
	return files, nil
}

// ChromeFiles describes the Chromium snapshot and the matching ChromeDriver
// for build, or for the latest build when build is empty.
func ChromeFiles(ctx context.Context, build string) ([]File, error) {
	const (
		// https://console.cloud.google.com/storage/browser/chromium-browser-snapshots
		bucketName       = "chromium-browser-snapshots"
		prefix           = "Linux_x64"
		lastChangeFile   = prefix + "/LAST_CHANGE"
		chromeArchive    = "chrome-linux.zip"
		driverArchive    = "chromedriver_linux64.zip"
		driverTargetName = "chromedriver.zip"
	)

	client, err := storage.NewClient(ctx, option.WithoutAuthentication())
	if err != nil {
		return nil, fmt.Errorf("cannot create a storage client: %v", err)
	}
	defer client.Close()
	bkt := client.Bucket(bucketName)

	if build == "" {
		r, err := bkt.Object(lastChangeFile).NewReader(ctx)
		if err != nil {
			return nil, fmt.Errorf("cannot open gs://%s/%s: %v", bucketName, lastChangeFile, err)
		}
		defer r.Close()
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("cannot read gs://%s/%s: %v", bucketName, lastChangeFile, err)
		}
		build = strings.TrimSpace(string(data))
	}
	glog.V(1).Infof("Using Chromium snapshot %s", build)

	var files []File
	for _, a := range []struct {
		object string
		file   File
	}{
		{chromeArchive, File{Name: chromeArchive, Browser: true}},
		{driverArchive, File{Name: driverTargetName, Rename: []string{"chromedriver_linux64/chromedriver", "chromedriver"}}},
	} {
		object := path.Join(prefix, build, a.object)
		attrs, err := bkt.Object(object).Attrs(ctx)
		if err != nil {
			return nil, fmt.Errorf("cannot get the attributes of gs://%s/%s: %v", bucketName, object, err)
		}
		f := a.file
		f.url = attrs.MediaLink
		f.hash = hex.EncodeToString(attrs.MD5)
		f.hashType = "md5"
		files = append(files, f)
	}
	return files, nil
}

// Select2File describes the source archive of the newest Select2 release
// with the given major version.
func Select2File(ctx context.Context, client *github.Client, major uint64) (File, error) {
	tags, _, err := client.Repositories.ListTags(ctx, "select2", "select2", &github.ListOptions{PerPage: 100})
	if err != nil {
		return File{}, fmt.Errorf("cannot list Select2 tags: %v", err)
	}
	tag, version, err := latestTag(tags, major)
	if err != nil {
		return File{}, err
	}
	glog.V(1).Infof("Using Select2 %s", version)
	sha := tag.GetCommit().GetSHA()
	if len(sha) > 7 {
		sha = sha[:7]
	}
	return File{
		url:    tag.GetZipballURL(),
		Name:   "select2.zip",
		Rename: []string{"select2-select2-" + sha, "select2"},
	}, nil
}

// latestTag returns the highest non-prerelease tag with the given major
// version. Tags that are not versions are ignored.
func latestTag(tags []*github.RepositoryTag, major uint64) (*github.RepositoryTag, semver.Version, error) {
	var (
		best    *github.RepositoryTag
		version semver.Version
	)
	for _, t := range tags {
		v, err := semver.ParseTolerant(t.GetName())
		if err != nil || v.Major != major || len(v.Pre) > 0 {
			continue
		}
		if best == nil || v.GT(version) {
			best, version = t, v
		}
	}
	if best == nil {
		return nil, semver.Version{}, fmt.Errorf("no Select2 release with major version %d", major)
	}
	return best, version, nil
}

// Download fetches file into directory unless a copy with the expected hash
// is already there, then unpacks it.
func Download(ctx context.Context, file File, directory string) error {
	file.directory = directory

	if file.hash != "" && fileSameHash(file) {
		glog.Infof("Skipping file %q which has already been downloaded.", file.Name)
	} else {
		glog.Infof("Downloading %q from %q", file.Name, file.url)
		if err := downloadFile(ctx, file); err != nil {
			return err
		}
	}

	if err := unzipArchive(file); err != nil {
		return err
	}

	if rename := file.Rename; len(rename) == 2 {
		from := filepath.Join(directory, rename[0])
		to := filepath.Join(directory, rename[1])
		glog.Infof("Renaming %q to %q", from, to)
		os.RemoveAll(to) // Ignore error.
		if err := os.Rename(from, to); err != nil {
			glog.Warningf("Error renaming %q to %q: %v", from, to, err)
		}
	}
	return nil
}

// DownloadAll fetches every file AllFiles lists, in parallel.
func DownloadAll(ctx context.Context, directory string, opts Options) error {
	files, err := AllFiles(ctx, opts)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(directory, 0755); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, file := range files {
		file := file
		g.Go(func() error {
			if err := Download(ctx, file, directory); err != nil {
				return fmt.Errorf("error handling %s: %v", file.Name, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func newHash(hashType string) hash.Hash {
	if strings.ToLower(hashType) == "md5" {
		return md5.New()
	}
	return sha256.New()
}

func downloadFile(ctx context.Context, file File) (err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: error downloading %q: %v", file.Name, file.url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: error downloading %q: %s", file.Name, file.url, resp.Status)
	}

	f, err := os.Create(file.Path())
	if err != nil {
		return fmt.Errorf("error creating %q: %v", file.Path(), err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("error closing %q: %v", file.Path(), closeErr)
		}
	}()

	h := newHash(file.hashType)
	if _, err := io.Copy(io.MultiWriter(f, h), resp.Body); err != nil {
		return fmt.Errorf("%s: error downloading %q: %v", file.Name, file.url, err)
	}
	if file.hash == "" {
		return nil
	}
	if sum := hex.EncodeToString(h.Sum(nil)); sum != file.hash {
		return fmt.Errorf("%s: got hash %q, want %q", file.Name, sum, file.hash)
	}
	return nil
}

func fileSameHash(file File) bool {
	f, err := os.Open(file.Path())
	if err != nil {
		return false
	}
	defer f.Close()

	h := newHash(file.hashType)
	if _, err := io.Copy(h, f); err != nil {
		return false
	}
	sum := hex.EncodeToString(h.Sum(nil))
	if sum != file.hash {
		glog.Warningf("File %q: got hash %q, expect hash %q", file.Name, sum, file.hash)
		return false
	}
	return true
}

func unzipArchive(file File) error {
	dir := "."
	if file.directory != "" {
		dir = file.directory
	}

	var cmd []string
	switch path.Ext(file.Name) {
	case ".zip":
		cmd = []string{"unzip", "-o", "-q", "-d", dir, file.Path()}
	case ".gz":
		cmd = []string{"tar", "-xzf", file.Path(), "-C", dir}
	default:
		return nil
	}

	glog.Infof("Unzipping %q", file.Path())
	if out, err := exec.Command(cmd[0], cmd[1:]...).CombinedOutput(); err != nil {
		return fmt.Errorf("error unzipping %q: %v: %s", file.Name, err, out)
	}
	return nil
}
