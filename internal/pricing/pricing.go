package pricing

import "math"

// Converter turns an upstream provider cost into a local-currency charge.
// Rounding is always up so the platform never under-charges.
type Converter struct {
	Rate          float64
	MarkupPercent float64
}

func New(rate, markupPercent float64) *Converter {
	return &Converter{
		Rate:          rate,
		MarkupPercent: markupPercent,
	}
}

// Charge converts an upstream cost into an integer local-currency charge:
// ceil(cost * rate * (1 + markup/100)).
func (c *Converter) Charge(cost float64) int64 {
	return int64(math.Ceil(cost * c.Rate * (1 + c.MarkupPercent/100)))
}

// ChargePerThousand prices quantity units of a service whose rate is quoted
// per 1000 units: ceil(rate * (1 + markup/100) * quantity / 1000).
func (c *Converter) ChargePerThousand(rate float64, quantity int) int64 {
	return int64(math.Ceil(rate * (1 + c.MarkupPercent/100) * float64(quantity) / 1000))
}
