package filter

import (
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/five82/htmlref/internal/catalog"
)

const allLabel = "Все теги"

func reference(t *testing.T) []catalog.TagRecord {
	t.Helper()
	c, err := catalog.Reference()
	if err != nil {
		t.Fatalf("Reference: %v", err)
	}
	return c.Records()
}

func names(records []catalog.TagRecord) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.Name
	}
	return out
}

// isSubsequence reports whether got appears in want's order without repeats.
func isSubsequence(got, want []string) bool {
	j := 0
	for _, name := range got {
		for j < len(want) && want[j] != name {
			j++
		}
		if j == len(want) {
			return false
		}
		j++
	}
	return true
}

func TestComputeVisible_AllEmptyReturnsCatalog(t *testing.T) {
	records := reference(t)
	got := ComputeVisible(records, allLabel, allLabel, "")
	if !reflect.DeepEqual(got, records) {
		t.Fatalf("ComputeVisible(all, \"\") = %v, want full catalog", names(got))
	}
}

func TestComputeVisible_CategoryOnly(t *testing.T) {
	records := reference(t)
	for _, category := range []string{"Структура", "Текст", "Формы", "Медиа", "Семантика"} {
		t.Run(category, func(t *testing.T) {
			var want []string
			for _, rec := range records {
				if rec.Category == category {
					want = append(want, rec.Name)
				}
			}
			got := names(ComputeVisible(records, allLabel, category, ""))
			if !slices.Equal(got, want) {
				t.Fatalf("ComputeVisible(%s) = %v, want %v", category, got, want)
			}
		})
	}
}

func TestComputeVisible_FormsScenario(t *testing.T) {
	got := names(ComputeVisible(reference(t), allLabel, "Формы", ""))
	want := []string{"input", "button", "form", "select", "textarea"}
	if !slices.Equal(got, want) {
		t.Fatalf("forms = %v, want %v", got, want)
	}
}

func TestComputeVisible_DivScenario(t *testing.T) {
	records := reference(t)
	got := ComputeVisible(records, allLabel, allLabel, "div")
	if !slices.Contains(names(got), "div") {
		t.Fatalf("query div = %v, want it to contain div", names(got))
	}
	for _, rec := range got {
		if !strings.Contains(strings.ToLower(rec.Name), "div") && !strings.Contains(strings.ToLower(rec.Description), "div") {
			t.Fatalf("record %q does not mention div", rec.Name)
		}
	}
}

func TestComputeVisible_NoMatch(t *testing.T) {
	got := ComputeVisible(reference(t), allLabel, allLabel, "zzzznotfound")
	if len(got) != 0 {
		t.Fatalf("ComputeVisible(zzzznotfound) = %v, want empty", names(got))
	}
	if got == nil {
		t.Fatalf("ComputeVisible returned nil, want empty slice")
	}
}

func TestComputeVisible_CaseInsensitive(t *testing.T) {
	records := reference(t)
	cases := []struct{ upper, lower string }{
		{"DIV", "div"},
		{"ФОРМА", "форма"},
		{"Таблиц", "таблиц"},
	}
	for _, tc := range cases {
		t.Run(tc.lower, func(t *testing.T) {
			a := ComputeVisible(records, allLabel, allLabel, tc.upper)
			b := ComputeVisible(records, allLabel, allLabel, tc.lower)
			if !reflect.DeepEqual(a, b) {
				t.Fatalf("%q = %v, %q = %v", tc.upper, names(a), tc.lower, names(b))
			}
			if len(a) == 0 {
				t.Fatalf("%q matched nothing", tc.upper)
			}
		})
	}
}

func TestComputeVisible_DescriptionMatch(t *testing.T) {
	got := names(ComputeVisible(reference(t), allLabel, allLabel, "таблицы"))
	want := []string{"tr", "td"}
	if !slices.Equal(got, want) {
		t.Fatalf("таблицы = %v, want %v", got, want)
	}
}

func TestComputeVisible_WhitespaceQueryIgnored(t *testing.T) {
	records := reference(t)
	for _, q := range []string{" ", "\t", "  \n "} {
		if got := ComputeVisible(records, allLabel, "Медиа", q); len(got) != 3 {
			t.Fatalf("query %q under Медиа = %v, want 3 records", q, names(got))
		}
	}
}

func TestComputeVisible_SubstringOfEveryRecord(t *testing.T) {
	records := reference(t)
	for _, rec := range records {
		for _, field := range []string{rec.Name, rec.Description} {
			runes := []rune(field)
			for _, q := range []string{field, string(runes[:1]), string(runes[len(runes)/2:])} {
				if IsBlank(q) {
					continue
				}
				got := names(ComputeVisible(records, allLabel, allLabel, q))
				if !slices.Contains(got, rec.Name) {
					t.Fatalf("query %q = %v, want it to include %q", q, got, rec.Name)
				}
			}
		}
	}
}

func TestComputeVisible_SubsequenceAndIdempotent(t *testing.T) {
	records := reference(t)
	catalogOrder := names(records)
	categories := []string{allLabel, "Структура", "Текст", "Формы", "Медиа", "Семантика", "Несуществующая"}
	queries := []string{"", "a", "Т", "li", "элемент", "<", "zzzznotfound", "   "}

	for _, category := range categories {
		for _, q := range queries {
			first := ComputeVisible(records, allLabel, category, q)
			second := ComputeVisible(records, allLabel, category, q)
			if !reflect.DeepEqual(first, second) {
				t.Fatalf("(%s, %q) not idempotent", category, q)
			}
			if !isSubsequence(names(first), catalogOrder) {
				t.Fatalf("(%s, %q) = %v is not an ordered subsequence", category, q, names(first))
			}
		}
	}
}

func TestComputeVisible_FiltersCommute(t *testing.T) {
	records := reference(t)
	textFirst := ComputeVisible(ComputeVisible(records, allLabel, allLabel, "страниц"), allLabel, "Семантика", "")
	categoryFirst := ComputeVisible(ComputeVisible(records, allLabel, "Семантика", ""), allLabel, allLabel, "страниц")
	combined := ComputeVisible(records, allLabel, "Семантика", "страниц")

	if !reflect.DeepEqual(textFirst, combined) || !reflect.DeepEqual(categoryFirst, combined) {
		t.Fatalf("text-first %v, category-first %v, combined %v", names(textFirst), names(categoryFirst), names(combined))
	}
	if want := []string{"header", "main", "footer"}; !slices.Equal(names(combined), want) {
		t.Fatalf("combined = %v, want %v", names(combined), want)
	}
}

func TestComputeVisible_DoesNotAliasInput(t *testing.T) {
	records := reference(t)
	got := ComputeVisible(records, allLabel, allLabel, "")
	got[0].Name = "mutated"
	if records[0].Name == "mutated" {
		t.Fatalf("result shares backing array with input")
	}
}

func TestIsBlank(t *testing.T) {
	if !IsBlank("") || !IsBlank(" \t\n") {
		t.Fatalf("IsBlank should accept empty and whitespace")
	}
	if IsBlank(" a ") {
		t.Fatalf("IsBlank(\" a \") = true, want false")
	}
}
