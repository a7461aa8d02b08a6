package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Simplici0/scanquote/internal/pricing"
)

// Defaults holds the job parameters the calculator form starts from.
type Defaults struct {
	StaffingMode pricing.StaffingMode `yaml:"staffing_mode" json:"staffing_mode"`
	LaborMode    pricing.LaborMode    `yaml:"labor_mode" json:"labor_mode"`
	Inputs       pricing.Inputs       `yaml:"inputs" json:"inputs"`
}

// BuiltinDefaults returns the sample job used when no defaults file is configured.
func BuiltinDefaults() Defaults {
	return Defaults{
		StaffingMode: pricing.FixedHeadcount,
		LaborMode:    pricing.PerPage,
		Inputs: pricing.Inputs{
			Pages:                   20000,
			LaborPerPage:            0.3,
			MonthlySalaryPerWorker:  15000,
			ScannerMonthly:          4500,
			PCMonthly:               3000,
			WorkingDaysPerMonth:     22,
			OfficePerJob:            10000,
			RiskRate:                0.03,
			GPRate:                  0.35,
			CapacityPerPersonPerDay: 1500,
			WorkersManual:           1,
			DeadlineDays:            30,
		},
	}
}

// LoadDefaults reads a YAML defaults file on top of BuiltinDefaults. Keys
// absent from the file keep their built-in values. An empty path returns
// the built-in defaults.
func LoadDefaults(path string) (Defaults, error) {
	d := BuiltinDefaults()
	if path == "" {
		return d, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Defaults{}, fmt.Errorf("read defaults file: %w", err)
	}
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Defaults{}, fmt.Errorf("decode defaults file: %w", err)
	}

	if d.StaffingMode, err = pricing.ParseStaffingMode(string(d.StaffingMode)); err != nil {
		return Defaults{}, fmt.Errorf("defaults file: %w", err)
	}
	if d.LaborMode, err = pricing.ParseLaborMode(string(d.LaborMode)); err != nil {
		return Defaults{}, fmt.Errorf("defaults file: %w", err)
	}

	return d, nil
}
