package types

// Result is the outcome of one annual hourly simulation.
type Result struct {
	AnnualCashflow Cashflow         `json:"annualCashflow"`
	EnergyFlow     EnergyFlow       `json:"energyFlow"`
	Rates          Rates            `json:"rates"`
	NetBilling     NetBillingLedger `json:"netBilling"`
	TariffInfo     TariffInfo       `json:"tariffInfo"`
	SeasonalCharts SeasonalCharts   `json:"seasonalCharts"`
}

// Cashflow is the annual value of the installation in PLN.
type Cashflow struct {
	// AutoconsumptionPLN is PV energy used directly, valued at the retail tariff.
	AutoconsumptionPLN float64 `json:"autoconsumptionPLN"`
	// NetBillingPLN is the usable net-billing deposit after forfeiture.
	NetBillingPLN float64 `json:"netBillingPLN"`
	// BatteryBenefitPLN is BatteryDischargeBenefitPLN minus
	// BatteryOpportunityCostPLN.
	BatteryBenefitPLN          float64 `json:"batteryBenefitPLN"`
	BatteryDischargeBenefitPLN float64 `json:"batteryDischargeBenefitPLN"`
	BatteryOpportunityCostPLN  float64 `json:"batteryOpportunityCostPLN"`
	LostDepositPLN             float64 `json:"lostDepositPLN"`
	RefundPLN                  float64 `json:"refundPLN"`
	DistributionCostPLN        float64 `json:"distributionCostPLN"`
	GridImportCostPLN          float64 `json:"gridImportCostPLN"`
	// NetPLN is the annual saving: autoconsumption, net billing and battery
	// benefit.
	NetPLN float64 `json:"netPLN"`
}

// EnergyFlow holds annual energy totals and the hourly series they came from.
type EnergyFlow struct {
	ProductionKWh        float64 `json:"productionKWh"`
	ConsumptionKWh       float64 `json:"consumptionKWh"`
	AutoconsumptionKWh   float64 `json:"autoconsumptionKWh"`
	SurplusKWh           float64 `json:"surplusKWh"`
	GridImportKWh        float64 `json:"gridImportKWh"`
	BatteryChargedKWh    float64 `json:"batteryChargedKWh"`
	BatteryDischargedKWh float64 `json:"batteryDischargedKWh"`
	// InternalUsageKWh is autoconsumption plus battery discharge.
	InternalUsageKWh float64 `json:"internalUsageKWh"`

	Monthly MonthlyEnergy `json:"monthly"`

	ProductionProfile  []float64 `json:"productionProfile"`
	ConsumptionProfile []float64 `json:"consumptionProfile"`
	SoCProfile         []float64 `json:"socProfile"`
}

// MonthlyEnergy is energy per calendar month. SurplusKWh is the gross
// surplus before the battery takes its share.
type MonthlyEnergy struct {
	ProductionKWh      [MonthsPerYear]float64 `json:"productionKWh"`
	ConsumptionKWh     [MonthsPerYear]float64 `json:"consumptionKWh"`
	AutoconsumptionKWh [MonthsPerYear]float64 `json:"autoconsumptionKWh"`
	SurplusKWh         [MonthsPerYear]float64 `json:"surplusKWh"`
	GridImportKWh      [MonthsPerYear]float64 `json:"gridImportKWh"`
}

// Rates are the dimensionless performance ratios of the installation.
type Rates struct {
	AutoconsumptionRate float64 `json:"autoconsumptionRate"`
	SelfSufficiencyRate float64 `json:"selfSufficiencyRate"`
}

// NetBillingLedger is the net-billing deposit account for the year.
type NetBillingLedger struct {
	MonthlySurplusKWh [MonthsPerYear]float64 `json:"monthlySurplusKWh"`
	MonthlyDepositPLN [MonthsPerYear]float64 `json:"monthlyDepositPLN"`

	// AnnualDepositPLN is the deposit before the annual cap is applied and
	// always equals AnnualDepositUsedPLN plus AnnualDepositLostPLN.
	AnnualDepositPLN     float64 `json:"annualDepositPLN"`
	AnnualDepositUsedPLN float64 `json:"annualDepositUsedPLN"`
	AnnualDepositLostPLN float64 `json:"annualDepositLostPLN"`
	RefundPLN            float64 `json:"refundPLN"`
	UnusedSurplusKWh     float64 `json:"unusedSurplusKWh"`

	AverageClearingPricePLNPerKWh float64 `json:"averageClearingPricePLNPerKWh"`
	EffectiveRatePLNPerKWh        float64 `json:"effectiveRatePLNPerKWh"`
}

// TariffInfo echoes the tariff and battery the simulation ran with.
type TariffInfo struct {
	Operator              string       `json:"operator,omitempty"`
	Type                  TariffType   `json:"type"`
	FlatPLNPerKWh         float64      `json:"flatPLNPerKWh"`
	EnergyPLNPerKWh       float64      `json:"energyPLNPerKWh"`
	DistributionPLNPerKWh float64      `json:"distributionPLNPerKWh"`
	Zones                 []TariffZone `json:"zones,omitempty"`

	BatteryCapacityKWh float64 `json:"batteryCapacityKWh"`
	BatteryPowerKW     float64 `json:"batteryPowerKW"`
	BatteryEfficiency  float64 `json:"batteryEfficiency"`
}

// SeasonalCharts are 24-hour snapshots of a summer and a winter day.
type SeasonalCharts struct {
	Summer []ChartPoint `json:"summer"`
	Winter []ChartPoint `json:"winter"`
}

// ChartPoint is one hour of a seasonal chart.
type ChartPoint struct {
	Hour                string  `json:"hour"`
	PVKWh               float64 `json:"pvKWh"`
	ConsumptionKWh      float64 `json:"consumptionKWh"`
	BatteryChargeKWh    float64 `json:"batteryChargeKWh"`
	BatteryDischargeKWh float64 `json:"batteryDischargeKWh"`
	GridImportKWh       float64 `json:"gridImportKWh"`
	SoCPercent          float64 `json:"socPercent"`
}
