package testutil

import (
	"context"
	"fmt"
	"sync"
)

// FakeFetcher serves canned page text keyed by URL.
type FakeFetcher struct {
	mu    sync.Mutex
	Pages map[string]string
	Errs  map[string]error
	Hits  int
}

// FetchText returns the canned text for url, or its scripted error.
func (f *FakeFetcher) FetchText(ctx context.Context, url string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Hits++
	if err, ok := f.Errs[url]; ok {
		return "", err
	}
	if s, ok := f.Pages[url]; ok {
		return s, nil
	}
	return "", fmt.Errorf("GET %s: 404 Not Found", url)
}
