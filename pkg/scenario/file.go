package scenario

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/solarquote/solarquote/pkg/common"
	"github.com/solarquote/solarquote/pkg/market"
	"github.com/solarquote/solarquote/pkg/simulation"
	"github.com/solarquote/solarquote/pkg/tariff"
	"github.com/solarquote/solarquote/pkg/types"
	"gopkg.in/yaml.v3"
)

const seriesFetchTimeout = 30 * time.Second

// File is the on-disk shape of a quote scenario (YAML).
type File struct {
	Name string `yaml:"name"`

	AnnualProductionKWh  float64 `yaml:"annual_production_kwh"`
	AnnualConsumptionKWh float64 `yaml:"annual_consumption_kwh"`

	// Operator and Tariff select a tariff from the operator tables. A custom
	// tariff overrides both.
	Operator     string           `yaml:"operator"`
	Tariff       types.TariffType `yaml:"tariff"`
	CustomTariff *types.Tariff    `yaml:"custom_tariff"`

	// ClearingPriceFile is a CSV path or URL. Without it the synthetic series
	// for ClearingPriceYear is used.
	ClearingPriceFile string `yaml:"clearing_price_file"`
	ClearingPriceYear int    `yaml:"clearing_price_year"`

	ProductionProfileFile  string `yaml:"production_profile_file"`
	ConsumptionProfileFile string `yaml:"consumption_profile_file"`

	Battery     *types.BatteryConfig `yaml:"battery"`
	BatteryTier string               `yaml:"battery_tier"`
	Household   types.Household      `yaml:"household"`

	// dir resolves relative series paths.
	dir string
}

// Load reads and validates a scenario file.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", path, err)
	}
	f.dir = filepath.Dir(path)
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) Validate() error {
	if f == nil {
		return errors.New("scenario is nil")
	}
	if f.AnnualConsumptionKWh <= 0 && f.ConsumptionProfileFile == "" {
		return errors.New("annual_consumption_kwh or consumption_profile_file is required")
	}
	if f.AnnualProductionKWh < 0 {
		return errors.New("annual_production_kwh must not be negative")
	}
	if f.CustomTariff != nil {
		if err := f.CustomTariff.Validate(); err != nil {
			return fmt.Errorf("custom_tariff invalid: %w", err)
		}
	}
	if _, err := ParseTier(f.BatteryTier); err != nil {
		return err
	}
	if f.Battery != nil && f.Battery.Efficiency > 1 {
		return fmt.Errorf("battery efficiency must be at most 1, got %v", f.Battery.Efficiency)
	}
	return nil
}

// Tier returns the battery tier of the scenario.
func (f *File) Tier() Tier {
	t, _ := ParseTier(f.BatteryTier)
	return t
}

func (f *File) resolve(location string) string {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") || filepath.IsAbs(location) {
		return location
	}
	// prefer paths relative to the scenario file, falling back to the cwd
	cand := filepath.Join(f.dir, location)
	if _, err := os.Stat(cand); err == nil {
		return cand
	}
	return location
}

// Input resolves the tariff and loads every referenced series.
func (f *File) Input(ctx context.Context, catalog *tariff.Catalog) (simulation.Input, error) {
	in := simulation.Input{
		AnnualProductionKWh:  f.AnnualProductionKWh,
		AnnualConsumptionKWh: f.AnnualConsumptionKWh,
		Battery:              f.Battery.Battery(),
		Household:            f.Household,
	}
	if f.CustomTariff != nil {
		in.Tariff = *f.CustomTariff
	} else {
		in.Tariff = catalog.Lookup(f.Operator, f.Tariff)
	}

	client := common.HTTPClient(seriesFetchTimeout)
	load := func(name, location string) ([]float64, error) {
		series, err := market.Load(ctx, client, f.resolve(location))
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", name, err)
		}
		return series, nil
	}

	var err error
	if f.ClearingPriceFile != "" {
		if in.ClearingPrices, err = load("clearing prices", f.ClearingPriceFile); err != nil {
			return simulation.Input{}, err
		}
	} else {
		year := f.ClearingPriceYear
		if year == 0 {
			year = market.BaseYear
		}
		in.ClearingPrices = market.Hourly(year)
	}
	if f.ProductionProfileFile != "" {
		if in.ProductionProfile, err = load("production profile", f.ProductionProfileFile); err != nil {
			return simulation.Input{}, err
		}
	}
	if f.ConsumptionProfileFile != "" {
		if in.ConsumptionProfile, err = load("consumption profile", f.ConsumptionProfileFile); err != nil {
			return simulation.Input{}, err
		}
		if in.AnnualConsumptionKWh <= 0 {
			for _, v := range in.ConsumptionProfile {
				in.AnnualConsumptionKWh += v
			}
		}
	}
	return in, nil
}
