package model

// Cart accumulates lines for a table before they are submitted to the
// kitchen. Adding the same menu item twice bumps the quantity of the
// existing line; a line whose quantity drops to zero is removed. None of
// the merge rules apply after submission: the order's line list is
// append-only.
type Cart struct {
	lines []OrderLine
}

func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) Add(item MenuItem, note string) {
	for i := range c.lines {
		if c.lines[i].ItemID == item.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, OrderLine{
		ItemID:   item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: 1,
		Note:     note,
	})
}

// Decrement lowers the quantity of the line for itemID by one, removing
// the line entirely when it reaches zero.
func (c *Cart) Decrement(itemID string) {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines[i].Quantity--
			if c.lines[i].Quantity <= 0 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			}
			return
		}
	}
}

func (c *Cart) Remove(itemID string) {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Lines returns a copy so callers cannot bypass the merge rules.
func (c *Cart) Lines() []OrderLine {
	out := make([]OrderLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.LineTotal()
	}
	return total
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Clear() {
	c.lines = nil
}
