package landindex

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/lintang-b-s/landgrid/pkg"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const retryBaseDelay = 500 * time.Millisecond

// Loader fetches a country-boundary FeatureCollection from a fixed dataset
// URL and builds the bounding-box index. Built indexes are memoized by
// content checksum, so refetching an unchanged dataset skips the bbox pass.
type Loader struct {
	url    string
	client *http.Client
	logger *zap.Logger

	mu   sync.Mutex
	memo map[uint64]*Index
}

func NewLoader(url string, client *http.Client, logger *zap.Logger) *Loader {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Loader{
		url:    url,
		client: client,
		logger: logger,
		memo:   make(map[uint64]*Index),
	}
}

func (l *Loader) Load(ctx context.Context) (*Index, error) {
	body, err := l.fetch(ctx)
	if err != nil {
		return nil, err
	}

	sum := checksum(body)
	l.mu.Lock()
	cached, ok := l.memo[sum]
	l.mu.Unlock()
	if ok {
		l.logger.Sugar().Debugf("dataset unchanged (checksum %x), reusing index", sum)
		return cached, nil
	}

	idx, err := decodeIndex(body, l.logger)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.memo[sum] = idx
	l.mu.Unlock()
	return idx, nil
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= pkg.FETCH_MAX_ATTEMPTS; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt-1) * retryBaseDelay):
			}
		}
		body, retryable, err := l.fetchOnce(ctx)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
		l.logger.Sugar().Warnf("dataset fetch attempt %d/%d failed: %v", attempt, pkg.FETCH_MAX_ATTEMPTS, err)
	}
	return nil, fmt.Errorf("fetching %s: %w", l.url, lastErr)
}

func (l *Loader) fetchOnce(ctx context.Context) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, false, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// only server-side failures are worth retrying
		retryable := resp.StatusCode >= 500
		return nil, retryable, fmt.Errorf("unexpected status %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, err
	}
	return body, false, nil
}

// decodeIndex decodes features one by one so a single malformed feature (or a
// null geometry) drops that feature instead of failing the whole dataset.
func decodeIndex(body []byte, logger *zap.Logger) (*Index, error) {
	var envelope struct {
		Type     string            `json:"type"`
		Features []json.RawMessage `json:"features"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}
	if envelope.Type != "FeatureCollection" {
		return nil, fmt.Errorf("expected FeatureCollection, got %q", envelope.Type)
	}

	fc := geojson.NewFeatureCollection()
	var dropped error
	for i, raw := range envelope.Features {
		f, err := geojson.UnmarshalFeature(raw)
		if err != nil {
			dropped = multierr.Append(dropped, fmt.Errorf("feature %d: %w", i, err))
			continue
		}
		fc.Append(f)
	}
	if dropped != nil {
		logger.Sugar().Debugf("dropped %d malformed features: %v", len(multierr.Errors(dropped)), dropped)
	}

	idx := NewIndex(fc)
	logger.Sugar().Infof("built land index: %d features, %d skipped", idx.NumFeatures(), idx.NumSkipped())
	return idx, nil
}

func checksum(body []byte) uint64 {
	h := fnv.New64a()
	h.Write(body)
	return h.Sum64()
}
