// Package mapping maintains the cross-source identifier mappings: display
// key to metrics key (risk-ratio sheet) and display key to scheme code
// (financial-ratios API).
package mapping

import (
	"encoding/json"
	"os"
	"strings"
	"sync"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sshravan91/fundscope/internal/model"
)

// Document is the on-disk mapping format.
type Document struct {
	Funds      []model.MappingRecord `json:"funds"`
	Categories []string              `json:"categories"`
}

// Store resolves display keys to metrics keys and scheme codes. Lookups are
// safe for concurrent readers; Load replaces the whole state in one step so
// a reader never observes a partially-built mapping.
type Store struct {
	mu          sync.RWMutex
	metricsKeys map[string]string
	schemeCodes map[string]string
	displayKeys []string
	categories  []string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		metricsKeys: make(map[string]string),
		schemeCodes: make(map[string]string),
	}
}

// Load reads a mapping document and rebuilds all lookup structures from it.
// Records with missing or malformed fields contribute what they have; no
// record aborts the load. On a read or parse failure the previous state is
// left untouched and the error is returned. Re-loading replaces, never
// merges.
func (s *Store) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return eris.Wrapf(err, "mapping: read %s", path)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return eris.Wrapf(err, "mapping: parse %s", path)
	}

	metricsKeys := make(map[string]string)
	schemeCodes := make(map[string]string)
	var displayKeys []string
	for _, rec := range doc.Funds {
		ak := strings.TrimSpace(rec.DisplayKey)
		if ak == "" {
			continue
		}
		displayKeys = append(displayKeys, ak)
		if mk := strings.TrimSpace(rec.MetricsKey); mk != "" {
			metricsKeys[ak] = mk
		}
		if sc := strings.TrimSpace(rec.SchemeCode); sc != "" {
			schemeCodes[ak] = sc
		}
	}

	s.mu.Lock()
	s.metricsKeys = metricsKeys
	s.schemeCodes = schemeCodes
	s.displayKeys = displayKeys
	s.categories = doc.Categories
	s.mu.Unlock()

	zap.L().Info("mapping loaded",
		zap.String("path", path),
		zap.Int("funds", len(displayKeys)),
		zap.Int("categories", len(doc.Categories)),
	)
	return nil
}

// MetricsKey returns the metrics key for a display key, if mapped.
func (s *Store) MetricsKey(displayKey string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	mk, ok := s.metricsKeys[displayKey]
	return mk, ok
}

// SchemeCode returns the scheme code for a display key, if mapped.
func (s *Store) SchemeCode(displayKey string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sc, ok := s.schemeCodes[displayKey]
	return sc, ok
}

// DisplayKeys returns the ordered display keys of the loaded document.
func (s *Store) DisplayKeys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, len(s.displayKeys))
	copy(keys, s.displayKeys)
	return keys
}

// Categories returns the configured category export order.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cats := make([]string, len(s.categories))
	copy(cats, s.categories)
	return cats
}
