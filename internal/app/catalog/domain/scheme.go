package domain

// Scheme flag names recognized by the aggregator. Unknown names in incoming
// payloads are ignored; missing names normalize to false on every read path.
const (
	SchemeSale        = "saleProduct"
	SchemeTrading     = "tradingProduct"
	SchemeCompany     = "companyProduct"
	SchemeValuable    = "valuableProduct"
	SchemeRecommended = "recommendedProduct"
)

// SchemeNames lists every recognized flag, in display order.
var SchemeNames = []string{
	SchemeSale,
	SchemeTrading,
	SchemeCompany,
	SchemeValuable,
	SchemeRecommended,
}

// IsSchemeName reports whether name is a recognized scheme flag.
func IsSchemeName(name string) bool {
	for _, n := range SchemeNames {
		if n == name {
			return true
		}
	}
	return false
}

// SchemeFlags are the merchandising tags attached to a variant detail block.
// The zero value (all false) is the normalized form of a missing record.
type SchemeFlags struct {
	SaleProduct        bool `json:"saleProduct"`
	TradingProduct     bool `json:"tradingProduct"`
	CompanyProduct     bool `json:"companyProduct"`
	ValuableProduct    bool `json:"valuableProduct"`
	RecommendedProduct bool `json:"recommendedProduct"`
}

// Get returns the value of a recognized flag, false for unknown names.
func (f SchemeFlags) Get(name string) bool {
	switch name {
	case SchemeSale:
		return f.SaleProduct
	case SchemeTrading:
		return f.TradingProduct
	case SchemeCompany:
		return f.CompanyProduct
	case SchemeValuable:
		return f.ValuableProduct
	case SchemeRecommended:
		return f.RecommendedProduct
	default:
		return false
	}
}

// Any reports whether at least one flag is set.
func (f SchemeFlags) Any() bool {
	return f.SaleProduct || f.TradingProduct || f.CompanyProduct ||
		f.ValuableProduct || f.RecommendedProduct
}

// Or merges flag records from duplicate sources for the same root+variant
// pair: a flag is set if either source sets it.
func (f SchemeFlags) Or(other SchemeFlags) SchemeFlags {
	return SchemeFlags{
		SaleProduct:        f.SaleProduct || other.SaleProduct,
		TradingProduct:     f.TradingProduct || other.TradingProduct,
		CompanyProduct:     f.CompanyProduct || other.CompanyProduct,
		ValuableProduct:    f.ValuableProduct || other.ValuableProduct,
		RecommendedProduct: f.RecommendedProduct || other.RecommendedProduct,
	}
}

// Merge applies a partial update: only recognized names present in partial
// change their flag, everything else is preserved.
func (f SchemeFlags) Merge(partial map[string]bool) SchemeFlags {
	out := f
	for name, val := range partial {
		switch name {
		case SchemeSale:
			out.SaleProduct = val
		case SchemeTrading:
			out.TradingProduct = val
		case SchemeCompany:
			out.CompanyProduct = val
		case SchemeValuable:
			out.ValuableProduct = val
		case SchemeRecommended:
			out.RecommendedProduct = val
		}
	}
	return out
}

// NormalizeFlags produces a record where every recognized name is present
// with a boolean value, missing names defaulting to false.
func NormalizeFlags(sparse map[string]bool) SchemeFlags {
	return SchemeFlags{}.Merge(sparse)
}
