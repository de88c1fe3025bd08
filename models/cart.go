package models

// CartLine is one (service, quantity) pair held before checkout, with
// display fields copied from the catalog at add-time.
type CartLine struct {
	ServiceID       string  `json:"service_id"`
	Name            string  `json:"name"`
	UnitPrice       float64 `json:"unit_price"` // Snapshot only; checkout re-prices from the catalog
	DurationMinutes int     `json:"duration_minutes"`
	ImageURL        string  `json:"image_url,omitempty"`
	Quantity        int     `json:"quantity"` // Always >= 1
}

// Cart holds the active line items for one customer session.
type Cart struct {
	CustomerID string     `json:"customer_id"`
	Lines      []CartLine `json:"lines"`
}

// Total produces the sum of unit price x quantity over all lines.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.Lines {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return total
}

// ItemCount is the total number of units across all lines.
func (c *Cart) ItemCount() int {
	var count int
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}
