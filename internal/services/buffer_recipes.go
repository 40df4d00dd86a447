package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/labassistantpro/labassistant/internal/models"
)

// Formula masses (g/mol) for the guided buffer recipes.
const (
	TrisBaseMolecularWeight = 121.14

	// Simplified Henderson-Hasselbalch: the mono/dibasic split uses a
	// single pKa of 6.86 for both phosphate pairs.
	PhosphatePKa = 6.86

	monosodiumPhosphateMW    = 119.98 // NaH2PO4
	disodiumPhosphateMW      = 141.96 // Na2HPO4
	monopotassiumPhosphateMW = 136.09 // KH2PO4
	dipotassiumPhosphateMW   = 174.18 // K2HPO4
)

const (
	PhosphatePairSodium    = "NaH2PO4/Na2HPO4"
	PhosphatePairPotassium = "KH2PO4/K2HPO4"
)

var (
	ErrPHOutOfRange         = errors.New("target pH outside the supported range")
	ErrInvalidVolume        = errors.New("volume must be positive")
	ErrInvalidConcentration = errors.New("concentration must be positive")
	ErrUnknownPhosphatePair = errors.New("unknown phosphate component pair")
)

// BufferRecipe is the output of a guided buffer calculation: what to
// weigh out plus a preparation narrative, ready to persist as a Buffer.
type BufferRecipe struct {
	Name        string
	PH          float64
	Components  []models.BufferComponent
	Preparation string
}

// TrisRecipe computes a Tris buffer: mass of Tris base for the target
// concentration and volume, pH set afterwards with acid or base.
func TrisRecipe(targetPH float64, concentration float64, volumeLiters float64, adjustWith string) (BufferRecipe, error) {
	if targetPH < 7.0 || targetPH > 9.0 {
		return BufferRecipe{}, ErrPHOutOfRange
	}
	if concentration <= 0 {
		return BufferRecipe{}, ErrInvalidConcentration
	}
	if volumeLiters <= 0 {
		return BufferRecipe{}, ErrInvalidVolume
	}
	if adjustWith != "HCl" && adjustWith != "NaOH" {
		adjustWith = "HCl"
	}

	trisMass := TrisBaseMolecularWeight * concentration * volumeLiters
	return BufferRecipe{
		Name: fmt.Sprintf("Tris %.1f", targetPH),
		PH:   targetPH,
		Components: []models.BufferComponent{
			{Name: "Tris base", Amount: round2(trisMass), Unit: "g"},
		},
		Preparation: fmt.Sprintf(
			"Dissolve %.2f g Tris base in about %.1f L of water, adjust pH to %.1f with %s, bring to %g L.",
			trisMass, volumeLiters*0.8, targetPH, adjustWith, volumeLiters,
		),
	}, nil
}

// PhosphateRecipe splits the total phosphate between the conjugate pair
// using ratio = 10^(pH-pKa).
func PhosphateRecipe(targetPH float64, concentration float64, volumeLiters float64, pair string) (BufferRecipe, error) {
	if targetPH < 5.8 || targetPH > 8.0 {
		return BufferRecipe{}, ErrPHOutOfRange
	}
	if concentration <= 0 {
		return BufferRecipe{}, ErrInvalidConcentration
	}
	if volumeLiters <= 0 {
		return BufferRecipe{}, ErrInvalidVolume
	}

	var acidName, baseName string
	var acidMW, baseMW float64
	switch pair {
	case PhosphatePairSodium, "":
		acidName, baseName = "NaH2PO4", "Na2HPO4"
		acidMW, baseMW = monosodiumPhosphateMW, disodiumPhosphateMW
	case PhosphatePairPotassium:
		acidName, baseName = "KH2PO4", "K2HPO4"
		acidMW, baseMW = monopotassiumPhosphateMW, dipotassiumPhosphateMW
	default:
		return BufferRecipe{}, ErrUnknownPhosphatePair
	}

	ratio := math.Pow(10, targetPH-PhosphatePKa)
	acidMass := concentration * volumeLiters * acidMW / (1 + ratio)
	baseMass := concentration * volumeLiters * baseMW * ratio / (1 + ratio)

	return BufferRecipe{
		Name: fmt.Sprintf("Phosphate %.1f", targetPH),
		PH:   targetPH,
		Components: []models.BufferComponent{
			{Name: acidName, Amount: round2(acidMass), Unit: "g"},
			{Name: baseName, Amount: round2(baseMass), Unit: "g"},
		},
		Preparation: fmt.Sprintf(
			"Dissolve %.2f g %s and %.2f g %s in about %.1f L water, adjust pH to %.1f if needed, bring to %g L.",
			acidMass, acidName, baseMass, baseName, volumeLiters*0.8, targetPH, volumeLiters,
		),
	}, nil
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
