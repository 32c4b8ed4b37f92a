// Package catalog holds the static registry of game assets grouped the way
// they are laid out under the assets root.
package catalog

import (
	"fmt"
	"sort"
	"sync"

	"github.com/agnivade/levenshtein"

	"assetgen/internal/domain"
)

// Group is a named, ordered list of specs.
type Group struct {
	Name  string             `json:"name"`
	Specs []domain.AssetSpec `json:"specs"`
}

// Catalog is an immutable, validated set of groups. Accessors return copies.
type Catalog struct {
	groups []Group
	byPath map[string]int
}

// New validates every spec and the uniqueness of output paths and group names.
func New(groups []Group) (*Catalog, error) {
	c := &Catalog{byPath: make(map[string]int)}
	seenGroups := make(map[string]struct{}, len(groups))
	for gi, g := range groups {
		if g.Name == "" {
			return nil, fmt.Errorf("catalog: group %d has no name", gi)
		}
		if _, dup := seenGroups[g.Name]; dup {
			return nil, fmt.Errorf("catalog: duplicate group %q", g.Name)
		}
		seenGroups[g.Name] = struct{}{}
		for _, s := range g.Specs {
			if err := s.Validate(); err != nil {
				return nil, fmt.Errorf("catalog: group %s: %w", g.Name, err)
			}
			if _, dup := c.byPath[s.OutputPath]; dup {
				return nil, fmt.Errorf("catalog: %w: duplicate output path %s", domain.ErrInvalidSpec, s.OutputPath)
			}
			c.byPath[s.OutputPath] = gi
		}
		c.groups = append(c.groups, copyGroup(g))
	}
	return c, nil
}

var defaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	return New(defaultGroups())
})

// Default returns the built-in catalog. It panics if the built-in tables are
// inconsistent, which is a programming error caught by the package tests.
func Default() *Catalog {
	c, err := defaultCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

func defaultGroups() []Group {
	tables := []struct {
		name    string
		entries []entry
	}{
		{"tiles", tileEntries},
		{"buildings", buildingEntries},
		{"resources", resourceEntries},
		{"items", itemEntries},
		{"characters", characterEntries},
		{"ui", uiEntries},
	}
	groups := make([]Group, 0, len(tables))
	for _, t := range tables {
		g := Group{Name: t.name, Specs: make([]domain.AssetSpec, 0, len(t.entries))}
		for _, e := range t.entries {
			g.Specs = append(g.Specs, e.spec())
		}
		groups = append(groups, g)
	}
	return groups
}

// Groups returns the groups in declaration order.
func (c *Catalog) Groups() []Group {
	out := make([]Group, len(c.groups))
	for i, g := range c.groups {
		out[i] = copyGroup(g)
	}
	return out
}

// GroupNames returns group names in declaration order.
func (c *Catalog) GroupNames() []string {
	names := make([]string, len(c.groups))
	for i, g := range c.groups {
		names[i] = g.Name
	}
	return names
}

// Len is the total number of specs.
func (c *Catalog) Len() int {
	n := 0
	for _, g := range c.groups {
		n += len(g.Specs)
	}
	return n
}

// Lookup finds a spec by output path.
func (c *Catalog) Lookup(path string) (domain.AssetSpec, string, bool) {
	gi, ok := c.byPath[path]
	if !ok {
		return domain.AssetSpec{}, "", false
	}
	for _, s := range c.groups[gi].Specs {
		if s.OutputPath == path {
			return s, c.groups[gi].Name, true
		}
	}
	return domain.AssetSpec{}, "", false
}

// Filter restricts the catalog to one group. An empty name returns c.
func (c *Catalog) Filter(name string) (*Catalog, error) {
	if name == "" {
		return c, nil
	}
	for _, g := range c.groups {
		if g.Name != name {
			continue
		}
		out := &Catalog{groups: []Group{copyGroup(g)}, byPath: make(map[string]int, len(g.Specs))}
		for _, s := range g.Specs {
			out.byPath[s.OutputPath] = 0
		}
		return out, nil
	}
	names := c.GroupNames()
	return nil, &domain.UnknownCategoryError{
		Name:       name,
		Available:  names,
		Suggestion: closestName(name, names),
	}
}

func closestName(name string, candidates []string) string {
	type scored struct {
		val  string
		dist int
	}
	var results []scored
	for _, cand := range candidates {
		dist := levenshtein.ComputeDistance(name, cand)
		if dist > suggestionLimit(len(cand)) {
			continue
		}
		results = append(results, scored{val: cand, dist: dist})
	}
	if len(results) == 0 {
		return ""
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].dist < results[j].dist })
	return results[0].val
}

func suggestionLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func copyGroup(g Group) Group {
	specs := make([]domain.AssetSpec, len(g.Specs))
	copy(specs, g.Specs)
	return Group{Name: g.Name, Specs: specs}
}
