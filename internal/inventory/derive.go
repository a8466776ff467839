package inventory

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
)

// View is the fully derived read model: the filtered and sorted
// collection, the slice for the current page, and pagination totals.
type View struct {
	Categories []string
	Filtered   []Product
	Page       []Product
	TotalItems int
	TotalPages int
}

// DistinctCategories returns the distinct category values in byte-wise
// ascending order.
func DistinctCategories(products []Product) []string {
	seen := make(map[string]struct{}, len(products))
	var out []string
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}

// FilterProducts keeps products whose name contains the trimmed keyword
// (case-insensitive substring) and, when category is non-empty, whose
// category matches exactly. An empty keyword and empty category pass
// everything through.
func FilterProducts(products []Product, keyword, category string) []Product {
	keyword = strings.ToLower(strings.TrimSpace(keyword))

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if keyword != "" && !strings.Contains(strings.ToLower(p.Name), keyword) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SortProducts returns a stably sorted copy of products. Name and
// category compare through the collator when one is supplied (locale
// aware); price, quantity, and creation time compare numerically. The
// comparison is negated for descending order; equal keys keep their
// original relative order.
func SortProducts(products []Product, cfg SortConfig, coll *collate.Collator) []Product {
	out := make([]Product, len(products))
	copy(out, products)

	compareText := func(a, b string) int {
		if coll != nil {
			return coll.CompareString(a, b)
		}
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}

	sort.SliceStable(out, func(i, j int) bool {
		var cmp int
		switch cfg.Field {
		case SortByName:
			cmp = compareText(out[i].Name, out[j].Name)
		case SortByCategory:
			cmp = compareText(out[i].Category, out[j].Category)
		case SortByPrice:
			switch {
			case out[i].Price < out[j].Price:
				cmp = -1
			case out[i].Price > out[j].Price:
				cmp = 1
			}
		case SortByQuantity:
			cmp = out[i].Quantity - out[j].Quantity
		default: // SortByCreatedAt
			cmp = out[i].CreatedAt.Compare(out[j].CreatedAt)
		}
		if cfg.Direction == Descending {
			cmp = -cmp
		}
		return cmp < 0
	})
	return out
}

// TotalPages returns ceil(totalItems/perPage), never less than one.
func TotalPages(totalItems, perPage int) int {
	if perPage <= 0 {
		perPage = DefaultItemsPerPage
	}
	pages := (totalItems + perPage - 1) / perPage
	if pages < 1 {
		return 1
	}
	return pages
}

// Paginate slices out the requested page. The last page may be short;
// a page past the end yields an empty slice.
func Paginate(products []Product, page, perPage int) []Product {
	if perPage <= 0 {
		perPage = DefaultItemsPerPage
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * perPage
	if start >= len(products) {
		return nil
	}
	end := min(start+perPage, len(products))
	return products[start:end]
}
