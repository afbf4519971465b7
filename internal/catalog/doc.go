// Package catalog holds the immutable table of HTML tag records that every
// view reads from.
//
// # Overview
//
// A Catalog is built once at startup, before any view exists, and is never
// mutated afterwards. It carries two things:
//
//   - the ordered records (TagRecord), keyed by their unique, case-sensitive Name
//   - the ordered category set, whose first tab is the distinguished "all" label
//
// The "all" label is not a partition. It is a filter bypass: no record belongs
// to it, and Validate rejects records that claim it.
//
// # Supply
//
// The reference catalog ships embedded in the binary as YAML (data/html.yaml).
// Load accepts an optional path to a replacement file with the same schema:
//
//	all: Все теги
//	categories: [Структура, Текст]
//	tags:
//	  - name: div
//	    category: Структура
//	    description: Универсальный контейнер
//	    full_description: ...
//	    example: <div>...</div>
//	    examples:
//	      - title: ...
//	        code: ...
//	    attributes:
//	      - name: class
//	        description: ...
//	    browser_support: ...
//	    notes: [...]
//
// Unknown fields are rejected. Invariant violations are aggregated and returned
// together so a broken data file is fixed in one pass.
//
// # Lookup
//
// Lookup returns (record, false) for an unknown name. A miss is an ordinary
// outcome: names arrive from navigable addresses and are untrusted.
package catalog
