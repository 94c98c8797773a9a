package product

// Predicate selects products from a collection. Predicates are stateless and
// can be applied to any in-memory product set.
type Predicate func(*Product) bool

// ActiveProducts returns a predicate matching products available for sale.
func ActiveProducts() Predicate {
	return func(p *Product) bool {
		return p.active
	}
}

// InactiveProducts returns a predicate matching products withdrawn from sale.
// Together with ActiveProducts it partitions any product set: every product
// matches exactly one of the two.
func InactiveProducts() Predicate {
	return func(p *Product) bool {
		return !p.active
	}
}

// Filter returns the products matching the predicate, preserving order.
func Filter(products []*Product, pred Predicate) []*Product {
	matched := make([]*Product, 0, len(products))
	for _, p := range products {
		if pred(p) {
			matched = append(matched, p)
		}
	}
	return matched
}
