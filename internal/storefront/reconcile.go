package storefront

import "github.com/manohar12-max/Qkart-Ecommerce-Application/internal/model"

// Reconcile merges cart lines with catalog products into display items.
//
// The result has one item per line in line order. A line whose product is
// not in products yields an item with only ProductID and Qty set and
// Resolved false. nil lines (no session, or the cart fetch failed) return
// nil so callers can render the empty state.
func Reconcile(lines []model.CartLine, products []model.Product) []model.CartItem {
	if lines == nil {
		return nil
	}
	items := make([]model.CartItem, 0, len(lines))
	for _, l := range lines {
		item := model.CartItem{ProductID: l.ProductID, Qty: l.Qty}
		for i := range products {
			p := &products[i]
			if p.ID != l.ProductID {
				continue
			}
			item.Name = p.Name
			item.Category = p.Category
			item.Cost = p.Cost
			item.Rating = p.Rating
			item.Image = p.Image
			item.Resolved = true
			break
		}
		items = append(items, item)
	}
	return items
}

// TotalValue is the sum of qty*cost. Unresolved items cost 0.
func TotalValue(items []model.CartItem) int64 {
	var total int64
	for _, it := range items {
		total += int64(it.Qty) * it.Cost
	}
	return total
}

// TotalCount is the number of units in the cart.
func TotalCount(items []model.CartItem) int {
	n := 0
	for _, it := range items {
		n += it.Qty
	}
	return n
}

// Visible drops items with a zero quantity.
func Visible(items []model.CartItem) []model.CartItem {
	out := make([]model.CartItem, 0, len(items))
	for _, it := range items {
		if it.Qty > 0 {
			out = append(out, it)
		}
	}
	return out
}
