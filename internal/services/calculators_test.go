package services

import (
	"errors"
	"math"
	"testing"
)

func TestDilution(t *testing.T) {
	volume, err := Dilution(2.0, 0.5, 100.0)
	if err != nil {
		t.Fatalf("dilution failed: %v", err)
	}
	if volume != 25.0 {
		t.Fatalf("expected stock volume 25.0, got %v", volume)
	}
}

func TestDilutionZeroStockConcentration(t *testing.T) {
	if _, err := Dilution(0, 1, 10); !errors.Is(err, ErrZeroConcentration) {
		t.Fatalf("expected ErrZeroConcentration, got %v", err)
	}
}

func TestDilutionWithStock(t *testing.T) {
	volume, err := DilutionWithStock(1.0, 0.1, 100.0, 50.0)
	if err != nil {
		t.Fatalf("dilution failed: %v", err)
	}
	if volume != 10.0 {
		t.Fatalf("expected stock volume 10.0, got %v", volume)
	}

	required, err := DilutionWithStock(1.0, 0.9, 100.0, 50.0)
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if required != 90.0 {
		t.Fatalf("expected required volume 90.0, got %v", required)
	}
}

func TestMassForSolution(t *testing.T) {
	cases := []struct {
		name          string
		concentration float64
		unit          string
		mw            float64
		volume        float64
		volumeUnit    string
		want          float64
	}{
		{"molar liter", 1.0, UnitMolar, 58.44, 1.0, VolumeUnitLiter, 58.44},
		{"molar milliliter", 1.0, UnitMolar, 58.44, 100.0, VolumeUnitMl, 5.844},
		{"millimolar", 500.0, UnitMillimolar, 58.44, 1.0, VolumeUnitLiter, 29.22},
		{"micromolar", 1e6, UnitMicromolar, 58.44, 1.0, VolumeUnitLiter, 58.44},
		{"gram per liter", 5.0, UnitGramPerL, 0, 2.0, VolumeUnitLiter, 10.0},
		{"mg per ml", 2.0, UnitMgPerMl, 0, 100.0, VolumeUnitMl, 200.0},
		{"mg per ml in liters", 2.0, UnitMgPerMl, 0, 1.0, VolumeUnitLiter, 2000.0},
		{"percent wv", 10.0, UnitPercentWV, 0, 100.0, VolumeUnitMl, 10.0},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			mass, err := MassForSolution(
				testCase.concentration, testCase.unit, testCase.mw, testCase.volume, testCase.volumeUnit)
			if err != nil {
				t.Fatalf("calculation failed: %v", err)
			}
			if math.Abs(mass-testCase.want) > 1e-9 {
				t.Fatalf("expected mass %v, got %v", testCase.want, mass)
			}
		})
	}
}

func TestMassForSolutionUnknownUnit(t *testing.T) {
	if _, err := MassForSolution(1, "furlongs", 1, 1, VolumeUnitLiter); !errors.Is(err, ErrUnknownUnit) {
		t.Fatalf("expected ErrUnknownUnit, got %v", err)
	}
}

func TestMolarMass(t *testing.T) {
	if mass := MolarMass(1.0, 58.44, 1.0); mass != 58.44 {
		t.Fatalf("expected 58.44 g, got %v", mass)
	}
	if mass := MolarMass(0.5, 121.14, 2.0); math.Abs(mass-121.14) > 1e-9 {
		t.Fatalf("expected 121.14 g, got %v", mass)
	}
}
