// Package version provides application version tracking and update discovery.
package version

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/framex-cli/framex/constant"
	"github.com/framex-cli/framex/filesystem"
	"github.com/framex-cli/framex/network"
	"github.com/framex-cli/framex/util"
	"github.com/framex-cli/framex/where"
	"github.com/metafates/gache"
)

var (
	versionCacheOnce sync.Once
	versionCacher    *gache.Cache[string]
)

func releases() *gache.Cache[string] {
	versionCacheOnce.Do(func() {
		versionCacher = gache.New[string](&gache.Options{
			Path:       where.Release(),
			Lifetime:   time.Hour * 24 * 2,
			FileSystem: &filesystem.GacheFs{},
		})
	})
	return versionCacher
}

// latestURL is the GitHub endpoint describing the newest release.
var latestURL = fmt.Sprintf("https://api.github.com/repos/%s/releases/latest", constant.Repository)

// Latest returns the most recent released version without the "v" prefix.
// The answer is cached for two days.
func Latest() (version string, err error) {
	ver, expired, err := releases().Get()
	if err != nil {
		return "", err
	}

	if !expired && ver != "" {
		return ver, nil
	}

	resp, err := network.Client.Get(latestURL)
	if err != nil {
		return
	}

	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("releases: unexpected status %s", resp.Status)
		return
	}

	var release struct {
		TagName string `json:"tag_name"`
	}

	err = json.NewDecoder(resp.Body).Decode(&release)
	if err != nil {
		return
	}

	if release.TagName == "" {
		err = errors.New("empty tag name")
		return
	}

	version = strings.TrimPrefix(release.TagName, "v")
	_ = releases().Set(version)
	return
}
