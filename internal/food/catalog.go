package food

import "strings"

// DefaultRecommendationLimit caps SimilarFoods / BetterAlternatives
// result sets when the caller passes no explicit limit.
const DefaultRecommendationLimit = 3

// Catalog is the immutable set of pre-vetted food records shipped with
// the application. It is loaded once at startup and never mutated.
type Catalog struct {
	records []Record
}

// NewCatalog builds a catalog over the given records. The slice is
// copied so later mutation by the caller cannot leak in.
func NewCatalog(records []Record) *Catalog {
	copied := make([]Record, len(records))
	copy(copied, records)
	for i := range copied {
		copied[i].Source = SourceCatalog
	}
	return &Catalog{records: copied}
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() *Catalog {
	return NewCatalog(builtinRecords)
}

// All returns the catalog contents in catalog order.
func (c *Catalog) All() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// Search returns every record whose name contains the query,
// case-insensitively, preserving catalog order. An empty query matches
// nothing.
func (c *Catalog) Search(query string) []Record {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	var out []Record
	for _, r := range c.records {
		if strings.Contains(strings.ToLower(r.Name), query) {
			out = append(out, r)
		}
	}
	return out
}

// FindByID returns the record with the given id, or nil.
func (c *Catalog) FindByID(id string) *Record {
	for i := range c.records {
		if c.records[i].ID == id {
			r := c.records[i]
			return &r
		}
	}
	return nil
}

// FindByExactName returns the record whose name matches exactly,
// ignoring case, or nil.
func (c *Catalog) FindByExactName(name string) *Record {
	name = strings.ToLower(strings.TrimSpace(name))
	for i := range c.records {
		if strings.ToLower(c.records[i].Name) == name {
			r := c.records[i]
			return &r
		}
	}
	return nil
}

// SimilarFoods returns catalog entries sharing the category, excluding
// excludeID, truncated to limit (DefaultRecommendationLimit when
// limit <= 0), in catalog order.
func (c *Catalog) SimilarFoods(category Category, excludeID string, limit int) []Record {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}
	var out []Record
	for _, r := range c.records {
		if r.Category != category || r.ID == excludeID {
			continue
		}
		out = append(out, r)
		if len(out) == limit {
			break
		}
	}
	return out
}

// BetterAlternatives suggests catalog entries of the same category with
// a better verdict. It returns nothing unless the given food is one to
// limit; there is nothing to improve on otherwise.
func (c *Catalog) BetterAlternatives(rec Record, limit int) []Record {
	if rec.Recommendation != RecommendationLimit {
		return nil
	}
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}
	var out []Record
	for _, r := range c.records {
		if r.Category != rec.Category || r.ID == rec.ID {
			continue
		}
		if r.Recommendation == RecommendationLimit {
			continue
		}
		out = append(out, r)
		if len(out) == limit {
			break
		}
	}
	return out
}
