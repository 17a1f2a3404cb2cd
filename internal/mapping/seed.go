package mapping

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sshravan91/fundscope/internal/model"
)

// Seed is the operator-maintained fund list: display keys (optionally
// "key:slug") and the category export order.
type Seed struct {
	Funds      []string `yaml:"funds"`
	Categories []string `yaml:"categories"`
}

// LoadSeed reads the seed YAML document.
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "seed: read %s", path)
	}
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, eris.Wrapf(err, "seed: parse %s", path)
	}
	return &seed, nil
}

// RecordsFromSeed builds mapping records from seed entries, splitting the
// secondary-source slug off each identifier.
func RecordsFromSeed(funds []string) []model.MappingRecord {
	records := make([]model.MappingRecord, 0, len(funds))
	for _, entry := range funds {
		id := model.Identifier(entry)
		records = append(records, model.MappingRecord{
			DisplayKey: id.Primary(),
			Slug:       id.Slug(),
		})
	}
	return records
}

// AttachSchemeCodes copies Scheme Code and Category from parsed fund data
// back onto the matching records, keyed by display key.
func AttachSchemeCodes(records []model.MappingRecord, results []model.ValueMap) {
	index := make(map[string]*model.MappingRecord, len(records))
	for i := range records {
		index[records[i].DisplayKey] = &records[i]
	}

	for _, vm := range results {
		ak := vm.Text(model.FieldFund)
		code := vm.Text(model.FieldSchemeCode)
		if ak == "" || code == "" {
			continue
		}
		rec, ok := index[ak]
		if !ok {
			continue
		}
		rec.SchemeCode = code
		rec.Category = vm.Text(model.FieldCategory)
	}
}

// ExportJSON writes a mapping document with the given records and category
// order.
func ExportJSON(path string, records []model.MappingRecord, categories []string) error {
	doc := Document{Funds: records, Categories: categories}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return eris.Wrap(err, "mapping: marshal document")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "mapping: write %s", path)
	}
	return nil
}
