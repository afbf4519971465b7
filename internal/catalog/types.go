package catalog

// Example is a titled code sample shown on the detail page.
type Example struct {
	Title string `yaml:"title" json:"title"`
	Code  string `yaml:"code" json:"code"`
}

// Attribute documents one attribute a tag accepts.
type Attribute struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// TagRecord is one entry of the reference catalog. Name is the lookup key.
type TagRecord struct {
	Name            string      `yaml:"name" json:"name"`
	Category        string      `yaml:"category" json:"category"`
	Description     string      `yaml:"description" json:"description"`
	FullDescription string      `yaml:"full_description" json:"full_description,omitempty"`
	Example         string      `yaml:"example" json:"example"`
	Examples        []Example   `yaml:"examples" json:"examples,omitempty"`
	Attributes      []Attribute `yaml:"attributes" json:"attributes,omitempty"`
	BrowserSupport  string      `yaml:"browser_support" json:"browser_support,omitempty"`
	Notes           []string    `yaml:"notes" json:"notes,omitempty"`
}

// AttributeNames returns the attribute names in catalog order.
func (r TagRecord) AttributeNames() []string {
	if len(r.Attributes) == 0 {
		return nil
	}
	names := make([]string, len(r.Attributes))
	for i, attr := range r.Attributes {
		names[i] = attr.Name
	}
	return names
}

// HasNotes reports whether the record carries at least one note.
func (r TagRecord) HasNotes() bool {
	return len(r.Notes) > 0
}
