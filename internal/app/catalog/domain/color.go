package domain

// Color is a purchasable sub-configuration of a variant, carrying its own
// images, price slots and stock. Price slot 0 is authoritative.
type Color struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	PrimaryImage  string       `json:"primaryImage"`
	ProductImages []ImageRef   `json:"productImages"`
	GalleryImages []ImageRef   `json:"galleryImages"`
	Prices        []PriceBlock `json:"prices"`
	Stock         int64        `json:"stock"`
	Attributes    []KeyValue   `json:"attributes"`
}

// SetPricing patches price and/or discount on the authoritative slot 0,
// creating the slot when the color has no price yet, and recomputes the
// derived final price. Nil arguments leave the corresponding value as is.
func (c *Color) SetPricing(price, discountPercent *float64) error {
	if price == nil && discountPercent == nil {
		return nil
	}

	slot := PriceBlock{}
	if len(c.Prices) > 0 {
		slot = c.Prices[0]
	}
	if price != nil {
		slot.Price = *price
	}
	if discountPercent != nil {
		slot.Discount = *discountPercent
	}
	if err := slot.Validate(); err != nil {
		return err
	}
	slot.Recompute()

	if len(c.Prices) == 0 {
		c.Prices = []PriceBlock{slot}
	} else {
		c.Prices[0] = slot
	}
	return nil
}

// RecomputePrices re-derives the final price of every slot. Used on write
// paths that replace the price list wholesale, so no client-supplied final
// price is ever persisted.
func (c *Color) RecomputePrices() error {
	for i := range c.Prices {
		if err := c.Prices[i].Validate(); err != nil {
			return err
		}
		c.Prices[i].Recompute()
	}
	return nil
}
