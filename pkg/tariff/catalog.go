package tariff

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/levenlabs/go-lflag"
	"github.com/solarquote/solarquote/pkg/types"
)

const (
	fallbackOperator = "pge"
	fallbackType     = types.TariffG11

	// annual consumption whose capacity fee List reports
	referenceConsumptionKWh = 4000
)

var operatorNames = map[string]string{
	"pge":    "PGE Dystrybucja",
	"tauron": "Tauron Dystrybucja",
	"enea":   "Enea Operator",
	"energa": "Energa Operator",
	"eon":    "E.ON Polska (Stoen Operator)",
}

// Catalog resolves operator tariffs into retail price schedules.
type Catalog struct {
	operators       map[string]map[types.TariffType]Rates
	defaultOperator string
	defaultType     types.TariffType
}

// Configured returns a Catalog of the built-in operator tariffs whose
// defaults come from flags.
func Configured() *Catalog {
	c := NewCatalog()

	operator := lflag.String("default-operator", fallbackOperator, "Distribution operator used when a request does not name one ("+strings.Join(c.operatorIDs(), ", ")+")")
	tt := lflag.String("default-tariff", string(fallbackType), "Tariff type used when a request does not name one (g11, g12, g12w)")

	lflag.Do(func() {
		if err := c.SetDefaults(*operator, types.TariffType(*tt)); err != nil {
			panic(err)
		}
	})
	return c
}

// NewCatalog returns a Catalog of the built-in operator tariffs defaulting to
// PGE G11.
func NewCatalog() *Catalog {
	return &Catalog{
		operators:       operatorRates,
		defaultOperator: fallbackOperator,
		defaultType:     fallbackType,
	}
}

// SetDefaults changes the operator and tariff used for empty lookups.
func (c *Catalog) SetDefaults(operator string, tt types.TariffType) error {
	operator = strings.ToLower(operator)
	tt = types.TariffType(strings.ToLower(string(tt)))
	rates, ok := c.operators[operator]
	if !ok {
		return fmt.Errorf("unknown operator: %s", operator)
	}
	if _, ok := rates[tt]; !ok {
		return fmt.Errorf("operator %s has no %s tariff", operator, tt)
	}
	c.defaultOperator = operator
	c.defaultType = tt
	return nil
}

// Rates returns the rates for the operator and tariff type along with the
// operator and type that were actually used. Empty values use the catalog
// defaults, an unknown operator falls back to PGE and an unknown tariff type
// falls back to the operator's G11.
func (c *Catalog) Rates(operator string, tt types.TariffType) (string, types.TariffType, Rates) {
	operator = strings.ToLower(operator)
	if operator == "" {
		operator = c.defaultOperator
	}
	tt = types.TariffType(strings.ToLower(string(tt)))
	if tt == "" {
		tt = c.defaultType
	}

	op, ok := c.operators[operator]
	if !ok {
		operator = fallbackOperator
		op = c.operators[operator]
	}
	r, ok := op[tt]
	if !ok {
		tt = fallbackType
		r = op[tt]
	}
	return operator, tt, r
}

// Lookup returns the retail tariff for the operator and tariff type.
func (c *Catalog) Lookup(operator string, tt types.TariffType) types.Tariff {
	operator, tt, r := c.Rates(operator, tt)
	return FromRates(operator, tt, r)
}

// List returns every operator with its tariffs, sorted by operator ID.
func (c *Catalog) List() []types.OperatorInfo {
	infos := make([]types.OperatorInfo, 0, len(c.operators))
	for _, id := range c.operatorIDs() {
		info := types.OperatorInfo{
			ID:   id,
			Name: operatorNames[id],
		}
		for _, tt := range []types.TariffType{types.TariffG11, types.TariffG12, types.TariffG12W} {
			r, ok := c.operators[id][tt]
			if !ok {
				continue
			}
			comp := r.Decompose(tt)
			opt := types.TariffOption{
				Type:                  tt,
				PeakPLNPerKWh:         round4(r.PeakPLNPerKWh()),
				EnergyPLNPerKWh:       comp.EnergyPLNPerKWh,
				DistributionPLNPerKWh: comp.DistributionPLNPerKWh,
				TotalPLNPerKWh:        comp.TotalPLNPerKWh,
				FixedMonthlyPLN:       math.Round((r.NetworkFixedMonthlyPLN+r.SubscriptionMonthlyPLN)*100) / 100,

				FixedAnnualPLN:          r.AnnualFixedPLN(referenceConsumptionKWh),
				ReferenceConsumptionKWh: referenceConsumptionKWh,
			}
			if tt != types.TariffG11 {
				opt.OffPeakPLNPerKWh = round4(r.OffPeakPLNPerKWh())
			}
			info.Tariffs = append(info.Tariffs, opt)
		}
		infos = append(infos, info)
	}
	return infos
}

func (c *Catalog) operatorIDs() []string {
	ids := make([]string, 0, len(c.operators))
	for id := range c.operators {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
