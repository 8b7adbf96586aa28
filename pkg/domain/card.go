package domain

import "fmt"

// Card is a catalog entry from the Pokémon TCG API. Every field is
// optional: the API omits prices, images, even rarity for some cards,
// and display code must degrade per field rather than fail.
type Card struct {
	ID         string       `json:"id,omitempty"`
	Name       string       `json:"name,omitempty"`
	Rarity     string       `json:"rarity,omitempty"`
	Set        CardSet      `json:"set,omitempty"`
	Images     CardImages   `json:"images,omitempty"`
	TCGPlayer  *PriceSource `json:"tcgplayer,omitempty"`
	CardMarket *PriceSource `json:"cardmarket,omitempty"`
}

// CardSet is the expansion a card belongs to.
type CardSet struct {
	Name string `json:"name,omitempty"`
}

// CardImages holds the card artwork URLs.
type CardImages struct {
	Small string `json:"small,omitempty"`
	Large string `json:"large,omitempty"`
}

// PriceSource is one price provider's entry (tcgplayer or cardmarket).
type PriceSource struct {
	URL    string  `json:"url,omitempty"`
	Prices *Prices `json:"prices,omitempty"`
}

// Prices is a variant-keyed price map. Known variants are decoded into
// their own buckets; the market/low/high fields catch provider payloads
// that put the numbers directly on the prices object.
type Prices struct {
	Holofoil        *PriceBucket `json:"holofoil,omitempty"`
	Normal          *PriceBucket `json:"normal,omitempty"`
	ReverseHolofoil *PriceBucket `json:"reverseHolofoil,omitempty"`

	Market *float64 `json:"market,omitempty"`
	Low    *float64 `json:"low,omitempty"`
	High   *float64 `json:"high,omitempty"`
}

// PriceBucket is a market/low/high triple. Nil pointers mean the
// provider did not report that number.
type PriceBucket struct {
	Market *float64 `json:"market,omitempty"`
	Low    *float64 `json:"low,omitempty"`
	High   *float64 `json:"high,omitempty"`
}

// Display placeholders for absent card fields.
const (
	placeholderName   = "Unknown"
	placeholderSet    = "Unknown"
	placeholderRarity = "N/A"
	placeholderPrice  = "N/A"
)

// PriceInfo resolves the card's price provider: tcgplayer wins over
// cardmarket, and a provider without a prices object counts as absent.
func (c Card) PriceInfo() *Prices {
	if c.TCGPlayer != nil && c.TCGPlayer.Prices != nil {
		return c.TCGPlayer.Prices
	}
	if c.CardMarket != nil && c.CardMarket.Prices != nil {
		return c.CardMarket.Prices
	}
	return nil
}

// Bucket resolves the display bucket from a prices object. The variant
// chain is holofoil, then normal, then reverseHolofoil; if no variant is
// present the object's own market/low/high fields stand in. First
// present wins, and a nil receiver yields the empty bucket.
func (p *Prices) Bucket() PriceBucket {
	if p == nil {
		return PriceBucket{}
	}
	for _, b := range []*PriceBucket{p.Holofoil, p.Normal, p.ReverseHolofoil} {
		if b != nil {
			return *b
		}
	}
	return PriceBucket{Market: p.Market, Low: p.Low, High: p.High}
}

// PriceBucket resolves the display bucket for a card, walking both
// fallback chains and never failing.
func (c Card) PriceBucket() PriceBucket {
	return c.PriceInfo().Bucket()
}

// DisplayName returns the card name or its placeholder.
func (c Card) DisplayName() string {
	if c.Name == "" {
		return placeholderName
	}
	return c.Name
}

// DisplaySet returns the set name or its placeholder.
func (c Card) DisplaySet() string {
	if c.Set.Name == "" {
		return placeholderSet
	}
	return c.Set.Name
}

// DisplayRarity returns the rarity or its placeholder.
func (c Card) DisplayRarity() string {
	if c.Rarity == "" {
		return placeholderRarity
	}
	return c.Rarity
}

// ImageURL prefers the large artwork and falls back to the small one.
// Empty means the card has no artwork at all.
func (c Card) ImageURL() string {
	if c.Images.Large != "" {
		return c.Images.Large
	}
	return c.Images.Small
}

// FormatPrice renders a price as $ with two decimals, or "N/A" when the
// provider did not report it.
func FormatPrice(v *float64) string {
	if v == nil {
		return placeholderPrice
	}
	return fmt.Sprintf("$%.2f", *v)
}
