package views

import (
	"antenna_ops/internal/domain/entities"
	"slices"
)

// SectorNode is one branch of the implicit product taxonomy. Nodes appear in the order
// their first product appears.
type SectorNode struct {
	Sector     entities.Sector `json:"sector"`
	Categories []CategoryNode  `json:"categories"`
}

type CategoryNode struct {
	Name       string          `json:"name"`
	ItemGroups []ItemGroupNode `json:"itemGroups"`
}

type ItemGroupNode struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	// Cover is the first image of the group's first product, if any.
	Cover entities.Attachment `json:"cover,omitempty"`
}

// Taxonomy groups products into Sector -> Category -> ItemGroup. There is no backing
// table; the tree is whatever distinct values the catalog holds. Dashboard and catalog
// both read this tree.
func Taxonomy(products []entities.Product) []SectorNode {
	var tree []SectorNode
	for _, p := range products {
		si := slices.IndexFunc(tree, func(n SectorNode) bool { return n.Sector == p.Sector })
		if si < 0 {
			tree = append(tree, SectorNode{Sector: p.Sector})
			si = len(tree) - 1
		}
		sector := &tree[si]

		ci := slices.IndexFunc(sector.Categories, func(n CategoryNode) bool { return n.Name == p.Category })
		if ci < 0 {
			sector.Categories = append(sector.Categories, CategoryNode{Name: p.Category})
			ci = len(sector.Categories) - 1
		}
		category := &sector.Categories[ci]

		gi := slices.IndexFunc(category.ItemGroups, func(n ItemGroupNode) bool { return n.Name == p.ItemGroup })
		if gi < 0 {
			node := ItemGroupNode{Name: p.ItemGroup}
			if len(p.Images) > 0 {
				node.Cover = p.Images[0]
			}
			category.ItemGroups = append(category.ItemGroups, node)
			gi = len(category.ItemGroups) - 1
		}
		category.ItemGroups[gi].Count++
	}
	if tree == nil {
		tree = []SectorNode{}
	}
	return tree
}

// CatalogScope narrows the catalog browser. Empty levels match everything.
type CatalogScope struct {
	Sector    entities.Sector `form:"sector" json:"sector,omitempty"`
	Category  string          `form:"category" json:"category,omitempty"`
	ItemGroup string          `form:"itemGroup" json:"itemGroup,omitempty"`
}

func (s CatalogScope) Match(p entities.Product) bool {
	return (s.Sector == "" || p.Sector == s.Sector) &&
		(s.Category == "" || p.Category == s.Category) &&
		(s.ItemGroup == "" || p.ItemGroup == s.ItemGroup)
}

func ProductsInScope(products []entities.Product, scope CatalogScope) []entities.Product {
	out := make([]entities.Product, 0, len(products))
	for _, p := range products {
		if scope.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// SpecFilters collects specification values per label across products, keeping only
// labels with more than one distinct value. Values are sorted.
func SpecFilters(products []entities.Product) map[string][]string {
	seen := map[string][]string{}
	for _, p := range products {
		for _, spec := range p.Specifications {
			if spec.Label == "" || spec.Value == "" {
				continue
			}
			if !slices.Contains(seen[spec.Label], spec.Value) {
				seen[spec.Label] = append(seen[spec.Label], spec.Value)
			}
		}
	}
	out := make(map[string][]string, len(seen))
	for label, values := range seen {
		if len(values) > 1 {
			slices.Sort(values)
			out[label] = values
		}
	}
	return out
}
