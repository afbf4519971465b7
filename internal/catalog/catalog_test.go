package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReference_Loads(t *testing.T) {
	c, err := Reference()
	require.NoError(t, err)

	assert.Equal(t, 30, c.Len())
	assert.Equal(t, "Все теги", c.AllLabel())
	assert.Equal(t, []string{"Все теги", "Структура", "Текст", "Формы", "Медиа", "Семантика"}, c.Categories())
	assert.Equal(t, "div", c.Records()[0].Name)
	assert.Equal(t, "hr", c.Records()[c.Len()-1].Name)
}

func TestReference_FormsCategory(t *testing.T) {
	c := MustReference()

	var names []string
	for _, rec := range c.Records() {
		if rec.Category == "Формы" {
			names = append(names, rec.Name)
		}
	}
	assert.Equal(t, []string{"input", "button", "form", "select", "textarea"}, names)
}

func TestReference_EveryRecordComplete(t *testing.T) {
	for _, rec := range MustReference().Records() {
		t.Run(rec.Name, func(t *testing.T) {
			assert.NotEmpty(t, rec.Description)
			assert.NotEmpty(t, rec.FullDescription)
			assert.NotEmpty(t, rec.Example)
			assert.NotEmpty(t, rec.BrowserSupport)
			for _, ex := range rec.Examples {
				assert.NotEmpty(t, ex.Title)
				assert.NotEmpty(t, ex.Code)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	c := MustReference()

	t.Run("every name resolves to itself", func(t *testing.T) {
		for _, rec := range c.Records() {
			got, ok := c.Lookup(rec.Name)
			require.True(t, ok, rec.Name)
			assert.Equal(t, rec, got)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		_, ok := c.Lookup("nonexistent-tag")
		assert.False(t, ok)
	})

	t.Run("case sensitive", func(t *testing.T) {
		_, ok := c.Lookup("DIV")
		assert.False(t, ok)
	})
}

func TestRecords_ReturnsCopy(t *testing.T) {
	c := MustReference()

	recs := c.Records()
	recs[0].Name = "mutated"

	assert.Equal(t, "div", c.Records()[0].Name)
	_, ok := c.Lookup("div")
	assert.True(t, ok)
}

func TestCountByCategory(t *testing.T) {
	counts := MustReference().CountByCategory()

	want := []CategoryCount{
		{Label: "Структура", Count: 8},
		{Label: "Текст", Count: 8},
		{Label: "Формы", Count: 5},
		{Label: "Медиа", Count: 3},
		{Label: "Семантика", Count: 6},
	}
	assert.Equal(t, want, counts)

	total := 0
	for _, cc := range counts {
		total += cc.Count
	}
	assert.Equal(t, 30, total)
}

func TestHasCategory(t *testing.T) {
	c := MustReference()
	assert.True(t, c.HasCategory("Все теги"))
	assert.True(t, c.HasCategory("Медиа"))
	assert.False(t, c.HasCategory("Прочее"))
	assert.NotContains(t, c.Partitions(), "Все теги")
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name       string
		all        string
		categories []string
		records    []TagRecord
		wantErr    []string
	}{
		{
			name:       "valid",
			all:        "all",
			categories: []string{"a", "b"},
			records:    []TagRecord{{Name: "x", Category: "a"}, {Name: "y", Category: "b"}},
		},
		{
			name:       "duplicate name",
			all:        "all",
			categories: []string{"a"},
			records:    []TagRecord{{Name: "x", Category: "a"}, {Name: "x", Category: "a"}},
			wantErr:    []string{`record "x": duplicate name`},
		},
		{
			name:       "unknown category",
			all:        "all",
			categories: []string{"a"},
			records:    []TagRecord{{Name: "x", Category: "zzz"}},
			wantErr:    []string{`unknown category "zzz"`},
		},
		{
			name:       "record in all label",
			all:        "all",
			categories: []string{"a"},
			records:    []TagRecord{{Name: "x", Category: "all"}},
			wantErr:    []string{`unknown category "all"`},
		},
		{
			name:       "empty name and empty label",
			all:        " ",
			categories: []string{"a"},
			records:    []TagRecord{{Name: "", Category: "a"}},
			wantErr:    []string{"all-categories label is empty", "record 0: name is empty"},
		},
		{
			name:       "bad category set",
			all:        "all",
			categories: []string{"a", "a", "all", ""},
			wantErr:    []string{`category "a" listed twice`, "duplicates the all-categories label", "category label is blank"},
		},
		{
			name:    "no categories",
			all:     "all",
			wantErr: []string{"category set is empty"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.all, tt.categories, tt.records)
			if len(tt.wantErr) == 0 {
				require.NoError(t, err)
				assert.Equal(t, len(tt.records), c.Len())
				return
			}
			require.Error(t, err)
			assert.Nil(t, c)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestNew_CopiesInputs(t *testing.T) {
	cats := []string{"a"}
	recs := []TagRecord{{Name: "x", Category: "a"}}

	c, err := New("all", cats, recs)
	require.NoError(t, err)

	cats[0] = "changed"
	recs[0].Name = "changed"

	assert.Equal(t, []string{"all", "a"}, c.Categories())
	_, ok := c.Lookup("x")
	assert.True(t, ok)
}

func TestDecode(t *testing.T) {
	t.Run("minimal document", func(t *testing.T) {
		c, err := Decode(strings.NewReader(`
all: All
categories: [Text]
tags:
  - name: b
    category: Text
    description: Bold text
    example: <b>x</b>
`))
		require.NoError(t, err)
		rec, ok := c.Lookup("b")
		require.True(t, ok)
		assert.Equal(t, "Bold text", rec.Description)
		assert.Empty(t, rec.Examples)
		assert.False(t, rec.HasNotes())
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		_, err := Decode(strings.NewReader("all: All\ncategories: [A]\ncolour: red\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode catalog")
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := Decode(strings.NewReader(""))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "document is empty")
	})

	t.Run("invalid invariants surface", func(t *testing.T) {
		_, err := Decode(strings.NewReader("all: All\ncategories: [A]\ntags:\n  - name: x\n    category: B\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid catalog")
	})
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses reference", func(t *testing.T) {
		c, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 30, c.Len())
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tags.yaml")
		require.NoError(t, os.WriteFile(path, []byte("all: All\ncategories: [A]\ntags:\n  - name: x\n    category: A\n"), 0o600))

		c, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "open catalog")
	})
}

func TestAttributeNames(t *testing.T) {
	rec, ok := MustReference().Lookup("a")
	require.True(t, ok)
	assert.Equal(t, []string{"href", "target", "rel"}, rec.AttributeNames())

	br, ok := MustReference().Lookup("br")
	require.True(t, ok)
	assert.Nil(t, br.AttributeNames())
}
