package services

import "errors"

var (
	ErrZeroConcentration = errors.New("stock concentration cannot be zero")
	ErrInsufficientStock = errors.New("not enough stock solution")
	ErrUnknownUnit       = errors.New("unknown concentration unit")
)

// Dilution solves C1V1 = C2V2 for the stock volume V1. All three inputs
// share whatever units the caller uses; the result is in v2's unit.
func Dilution(c1 float64, c2 float64, v2 float64) (float64, error) {
	if c1 == 0 {
		return 0, ErrZeroConcentration
	}
	return c2 * v2 / c1, nil
}

// DilutionWithStock additionally checks that the available stock volume
// covers the required V1.
func DilutionWithStock(c1 float64, c2 float64, v2 float64, availableStock float64) (float64, error) {
	required, err := Dilution(c1, c2, v2)
	if err != nil {
		return 0, err
	}
	if required > availableStock {
		return required, ErrInsufficientStock
	}
	return required, nil
}

// Concentration units accepted by MassForSolution.
const (
	UnitMolar       = "M"
	UnitMillimolar  = "mM"
	UnitMicromolar  = "µM"
	UnitGramPerL    = "g/L"
	UnitMgPerMl     = "mg/mL"
	UnitPercentWV   = "% (w/v)"
	VolumeUnitLiter = "L"
	VolumeUnitMl    = "mL"
)

// MassForSolution returns the solute mass in grams needed to prepare a
// solution of the target concentration. Molar units need the compound's
// molecular weight; weight-based units ignore it.
func MassForSolution(concentration float64, unit string, molecularWeight float64, volume float64, volumeUnit string) (float64, error) {
	liters := volume
	milliliters := volume * 1000
	if volumeUnit == VolumeUnitMl {
		liters = volume / 1000
		milliliters = volume
	}

	switch unit {
	case UnitMolar:
		return concentration * molecularWeight * liters, nil
	case UnitMillimolar:
		return concentration / 1e3 * molecularWeight * liters, nil
	case UnitMicromolar:
		return concentration / 1e6 * molecularWeight * liters, nil
	case UnitGramPerL:
		return concentration * liters, nil
	case UnitMgPerMl:
		return concentration * milliliters, nil
	case UnitPercentWV:
		return concentration / 100 * milliliters, nil
	default:
		return 0, ErrUnknownUnit
	}
}

// MolarMass returns grams of solute for a molar solution: molarity times
// molecular weight times volume in liters.
func MolarMass(molarity float64, molecularWeight float64, volumeLiters float64) float64 {
	return molarity * molecularWeight * volumeLiters
}
