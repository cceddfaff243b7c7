package customorder

// PriceRange is the estimate bracket quoted back on a bespoke order.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// EstimateRange maps a material to its quote bracket. Total by construction:
// the default arm is the bracket for MaterialOther and anything unrecognized,
// so an odd material degrades to the default quote instead of failing the
// submission.
func (m Material) EstimateRange() PriceRange {
	switch m {
	case MaterialMosaic:
		return PriceRange{Min: 50, Max: 150}
	case MaterialCharcoal:
		return PriceRange{Min: 20, Max: 60}
	case MaterialAcrylic:
		return PriceRange{Min: 30, Max: 90}
	default:
		return PriceRange{Min: 20, Max: 100}
	}
}
