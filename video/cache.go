package video

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/framex-cli/framex/filesystem"
	"github.com/framex-cli/framex/log"
	"github.com/framex-cli/framex/where"
	"github.com/metafates/gache"
)

const probeCacheLifetime = 7 * 24 * time.Hour

var (
	probeCacheOnce sync.Once
	probeCacher    *gache.Cache[map[string]Metadata]
)

// probes lazily creates the on-disk probe cache, so merely importing the
// package does not touch the cache directory.
func probes() *gache.Cache[map[string]Metadata] {
	probeCacheOnce.Do(func() {
		probeCacher = gache.New[map[string]Metadata](&gache.Options{
			Path:       where.Probes(),
			Lifetime:   probeCacheLifetime,
			FileSystem: &filesystem.GacheFs{},
		})
	})
	return probeCacher
}

// probeCacheKey identifies a file by absolute path, size and modification time,
// so a replaced file is probed again.
func probeCacheKey(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	info, err := filesystem.API().Stat(abs)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s|%d|%d", abs, info.Size(), info.ModTime().UnixNano()), nil
}

// cachedProbe consults the probe cache before running ffprobe.
// Cache failures are logged and never fail the probe itself.
func cachedProbe(ctx context.Context, path string, opts Options) (Metadata, error) {
	if !opts.CacheProbe {
		return probe(ctx, path, opts)
	}

	cacheKey, err := probeCacheKey(path)
	if err != nil {
		return probe(ctx, path, opts)
	}

	saved, expired, err := probes().Get()
	if err != nil {
		log.Warnf("read probe cache: %v", err)
	}
	if expired || saved == nil {
		saved = make(map[string]Metadata)
	}

	if meta, ok := saved[cacheKey]; ok {
		log.Debugf("probe cache hit for %s", path)
		return meta, nil
	}

	meta, err := probe(ctx, path, opts)
	if err != nil {
		return Metadata{}, err
	}

	pruneStale(saved)
	saved[cacheKey] = meta
	if err := probes().Set(saved); err != nil {
		log.Warnf("write probe cache: %v", err)
	}

	return meta, nil
}

// pruneStale drops entries for files that were removed or changed since they
// were probed.
func pruneStale(saved map[string]Metadata) {
	for cacheKey := range saved {
		if current, err := probeCacheKey(keyPath(cacheKey)); err != nil || current != cacheKey {
			delete(saved, cacheKey)
		}
	}
}

// keyPath recovers the path from a key; paths may themselves contain "|".
func keyPath(cacheKey string) string {
	for range 2 {
		if i := strings.LastIndex(cacheKey, "|"); i >= 0 {
			cacheKey = cacheKey[:i]
		}
	}
	return cacheKey
}
