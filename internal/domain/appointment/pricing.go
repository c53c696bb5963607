package appointment

import "errors"

var (
	ErrInvalidPriceMode      = errors.New("invalid price mode")
	ErrInvalidCustomPrice    = errors.New("invalid custom price")
	ErrCustomPriceNotAllowed = errors.New("custom price not allowed with standard pricing")
)

// ResolvePrice computes the chargeable amount in cents.
// Standard mode charges the service's current price; custom mode charges the
// operator-supplied amount, which must be strictly positive.
// Resolution is pure: validation happens here, persistence elsewhere.
func ResolvePrice(mode PriceMode, customPriceCents *int64, servicePriceCents int64) (int64, error) {
	switch mode {
	case PriceModeStandard:
		if customPriceCents != nil {
			return 0, ErrCustomPriceNotAllowed
		}
		return servicePriceCents, nil
	case PriceModeCustom:
		if customPriceCents == nil || *customPriceCents <= 0 {
			return 0, ErrInvalidCustomPrice
		}
		return *customPriceCents, nil
	default:
		return 0, ErrInvalidPriceMode
	}
}

// validatePricing checks the mode/custom-price pairing invariant without
// resolving an amount. Used when reconstructing or mutating an aggregate.
func validatePricing(mode PriceMode, customPriceCents *int64) error {
	switch mode {
	case PriceModeStandard:
		if customPriceCents != nil {
			return ErrCustomPriceNotAllowed
		}
	case PriceModeCustom:
		if customPriceCents == nil || *customPriceCents <= 0 {
			return ErrInvalidCustomPrice
		}
	default:
		return ErrInvalidPriceMode
	}
	return nil
}
