package api

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/alvinbaena/pwd-meter/pkg/strength"
	"github.com/dgraph-io/ristretto"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const reportTTL = 10 * time.Minute

// reportCache memoizes full reports. Keys are SHA-256 digests so plain passwords are never
// held as map keys.
type reportCache struct {
	cache *ristretto.Cache
}

// newReportCache returns nil when size is 0, which disables caching.
func newReportCache(size int64) (*reportCache, error) {
	if size <= 0 {
		return nil, nil
	}

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: size * 10,
		MaxCost:     size,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}

	p := message.NewPrinter(language.English)
	log.Info().Msgf("report cache enabled for up to %s entries", p.Sprintf("%d", size))
	return &reportCache{cache: cache}, nil
}

func cacheKey(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// report returns the cached report for a password, computing and storing it on a miss.
func (c *reportCache) report(password string) strength.Report {
	if c == nil {
		return strength.Analyze(password)
	}

	key := cacheKey(password)
	if v, ok := c.cache.Get(key); ok {
		if r, ok := v.(strength.Report); ok {
			return r
		}
	}

	r := strength.Analyze(password)
	c.cache.SetWithTTL(key, r, 1, reportTTL)
	return r
}

func (c *reportCache) wait() {
	if c != nil {
		c.cache.Wait()
	}
}

func (c *reportCache) close() {
	if c == nil {
		return
	}

	m := c.cache.Metrics
	p := message.NewPrinter(language.English)
	log.Debug().Msgf("report cache hits: %s, misses: %s (%.2f%% hit ratio)",
		p.Sprintf("%d", m.Hits()), p.Sprintf("%d", m.Misses()), m.Ratio()*100)
	c.cache.Close()
}
