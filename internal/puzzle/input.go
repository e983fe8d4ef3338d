package puzzle

import (
	"fmt"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// inputCacheSize comfortably covers a whole event's worth of inputs.
const inputCacheSize = 64

// Loader reads puzzle inputs from disk through a small LRU cache, so a
// check run over both parts of every day reads each file once.
type Loader struct {
	cache *lru.Cache[string, string]
	log   *zap.Logger
}

// NewLoader returns a Loader logging through log. A nil logger is
// replaced with a no-op one.
func NewLoader(log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	cache, err := lru.New[string, string](inputCacheSize)
	if err != nil {
		// lru.New only fails on a non-positive size.
		panic(err)
	}
	return &Loader{cache: cache, log: log}
}

// Load returns the full contents of the input file at path.
func (l *Loader) Load(path string) (string, error) {
	if input, ok := l.cache.Get(path); ok {
		l.log.Debug("input cache hit", zap.String("path", path))
		return input, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load input: %w", err)
	}
	input := string(b)
	l.cache.Add(path, input)
	l.log.Debug("input loaded", zap.String("path", path), zap.Int("bytes", len(b)))
	return input, nil
}
