package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Catalog is the immutable, ordered table of tag records together with the
// ordered category set. Construct it with New or one of the Load functions;
// the zero value is empty.
type Catalog struct {
	all        string
	categories []string
	records    []TagRecord
	byName     map[string]int
}

// New validates the inputs and returns a catalog holding private copies of them.
// all is the distinguished label that bypasses category filtering; categories
// lists the real partitions in tab order.
func New(all string, categories []string, records []TagRecord) (*Catalog, error) {
	c := &Catalog{
		all:        strings.TrimSpace(all),
		categories: slices.Clone(categories),
		records:    slices.Clone(records),
		byName:     make(map[string]int, len(records)),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	for i, rec := range c.records {
		c.byName[rec.Name] = i
	}
	return c, nil
}

// Validate checks the catalog invariants and reports every violation at once.
func (c *Catalog) Validate() error {
	var errs []error

	if c.all == "" {
		errs = append(errs, errors.New("all-categories label is empty"))
	}
	if len(c.categories) == 0 {
		errs = append(errs, errors.New("category set is empty"))
	}

	known := make(map[string]struct{}, len(c.categories))
	for _, label := range c.categories {
		switch {
		case strings.TrimSpace(label) == "":
			errs = append(errs, errors.New("category label is blank"))
			continue
		case label == c.all:
			errs = append(errs, fmt.Errorf("category %q duplicates the all-categories label", label))
			continue
		}
		if _, dup := known[label]; dup {
			errs = append(errs, fmt.Errorf("category %q listed twice", label))
			continue
		}
		known[label] = struct{}{}
	}

	seen := make(map[string]struct{}, len(c.records))
	for i, rec := range c.records {
		if rec.Name == "" {
			errs = append(errs, fmt.Errorf("record %d: name is empty", i))
			continue
		}
		if _, dup := seen[rec.Name]; dup {
			errs = append(errs, fmt.Errorf("record %q: duplicate name", rec.Name))
		}
		seen[rec.Name] = struct{}{}
		if _, ok := known[rec.Category]; !ok {
			errs = append(errs, fmt.Errorf("record %q: unknown category %q", rec.Name, rec.Category))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid catalog: %w", errors.Join(errs...))
	}
	return nil
}

// AllLabel returns the label that selects every category.
func (c *Catalog) AllLabel() string {
	return c.all
}

// Categories returns the tab labels in order, starting with the all label.
func (c *Catalog) Categories() []string {
	out := make([]string, 0, len(c.categories)+1)
	out = append(out, c.all)
	return append(out, c.categories...)
}

// Partitions returns the real categories, without the all label.
func (c *Catalog) Partitions() []string {
	return slices.Clone(c.categories)
}

// HasCategory reports whether label is a tab of this catalog, the all label included.
func (c *Catalog) HasCategory(label string) bool {
	return label == c.all || slices.Contains(c.categories, label)
}

// Records returns the records in catalog order. The slice is a copy; nested
// slices are shared and must be treated as read-only.
func (c *Catalog) Records() []TagRecord {
	return slices.Clone(c.records)
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Lookup finds a record by exact, case-sensitive name.
func (c *Catalog) Lookup(name string) (TagRecord, bool) {
	i, ok := c.byName[name]
	if !ok {
		return TagRecord{}, false
	}
	return c.records[i], true
}

// CategoryCount pairs a category label with its record total.
type CategoryCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// CountByCategory returns the record total for each partition in tab order.
func (c *Catalog) CountByCategory() []CategoryCount {
	totals := make(map[string]int, len(c.categories))
	for _, rec := range c.records {
		totals[rec.Category]++
	}
	out := make([]CategoryCount, len(c.categories))
	for i, label := range c.categories {
		out[i] = CategoryCount{Label: label, Count: totals[label]}
	}
	return out
}
