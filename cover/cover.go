// Package cover builds and checks book cover image URLs.
package cover

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultBaseURL = "https://covers.openlibrary.org"
	Placeholder    = "/book-placeholder.png"
)

// Image is the source of one cover. It starts at the remote cover (or the
// placeholder when the record has no cover) and falls back to the placeholder
// at most once.
type Image struct {
	src      string
	fallback bool
}

// NewImage returns the large cover for coverID. A zero ID means no cover.
func NewImage(baseURL string, coverID int) Image {
	if coverID == 0 {
		return Image{src: Placeholder, fallback: true}
	}
	return Image{src: fmt.Sprintf("%s/b/id/%d-L.jpg", strings.TrimRight(baseURL, "/"), coverID)}
}

// Src is the URL (or placeholder path) to load
func (i Image) Src() string {
	return i.src
}

// IsPlaceholder reports whether the placeholder is being shown
func (i Image) IsPlaceholder() bool {
	return i.fallback
}

// MarshalJSON encodes the image as its current source
func (i Image) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.src)
}

func (i *Image) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &i.src); err != nil {
		return err
	}
	i.fallback = i.src == Placeholder
	return nil
}

// Fail handles a load error. It swaps to the placeholder and returns true the
// first time; afterwards it does nothing and returns false.
func (i *Image) Fail() bool {
	if i.fallback {
		return false
	}
	i.src = Placeholder
	i.fallback = true
	return true
}

// Resolver checks that cover images actually load
type Resolver struct {
	httpClient  *http.Client
	logger      *log.Logger
	concurrency int
}

// NewResolver creates a resolver. A nil httpClient gets a 10 second timeout client.
func NewResolver(httpClient *http.Client, logger *log.Logger) *Resolver {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Resolver{
		httpClient:  httpClient,
		logger:      logger,
		concurrency: 4,
	}
}

// Resolve probes img and returns it, swapped to the placeholder if the cover
// cannot be loaded. Failures never propagate.
func (r *Resolver) Resolve(ctx context.Context, img Image) Image {
	if img.IsPlaceholder() {
		return img
	}

	if err := r.probe(ctx, img.Src()); err != nil {
		if r.logger != nil {
			r.logger.Debug("Cover unavailable, using placeholder", "url", img.Src(), "error", err)
		}
		img.Fail()
	}
	return img
}

// ResolveAll resolves every image concurrently and returns them in input order
func (r *Resolver) ResolveAll(ctx context.Context, images []Image) []Image {
	out := make([]Image, len(images))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, img := range images {
		i, img := i, img
		g.Go(func() error {
			out[i] = r.Resolve(ctx, img)
			return nil
		})
	}
	_ = g.Wait()

	return out
}

func (r *Resolver) probe(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build cover request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch cover: %w", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cover request failed with status %d", resp.StatusCode)
	}
	return nil
}
