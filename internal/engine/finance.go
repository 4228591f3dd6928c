package engine

import (
	"sort"

	"github.com/shopspring/decimal"

	"propfolio/internal/models"
)

// UnknownLabel replaces empty firm/stage values so grouping keys stay
// well-defined.
const UnknownLabel = "unknown"

// AccountCost is the derived total cost: base cost plus every record's extra
// cost.
func AccountCost(a *models.Account) decimal.Decimal {
	if a == nil {
		return decimal.Zero
	}
	cost := a.BaseCost
	for i := range a.Records {
		cost = cost.Add(a.Records[i].ExtraCost)
	}
	return cost
}

// AccountRevenue is the realized revenue: only payouts flagged as arrived
// count.
func AccountRevenue(a *models.Account) decimal.Decimal {
	if a == nil {
		return decimal.Zero
	}
	revenue := decimal.Zero
	for i := range a.Payouts {
		if a.Payouts[i].Arrived == models.ArrivedYes {
			revenue = revenue.Add(a.Payouts[i].Amount)
		}
	}
	return revenue
}

type FinanceStats struct {
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	NetProfit     decimal.Decimal `json:"netProfit"`
	ROI           decimal.Decimal `json:"roi"`
}

// ComputeFinanceStats sums the KPI totals. Costs are taken as absolute values
// since upstream rows store them with inconsistent sign. ROI is zero, not a
// division error, when there are no expenses.
func ComputeFinanceStats(accounts []*models.Account) FinanceStats {
	expenses := decimal.Zero
	revenue := decimal.Zero
	for _, a := range accounts {
		expenses = expenses.Add(AccountCost(a).Abs())
		revenue = revenue.Add(AccountRevenue(a))
	}
	roi := decimal.Zero
	if expenses.IsPositive() {
		roi = revenue.Div(expenses).Mul(decimal.NewFromInt(100))
	}
	return FinanceStats{
		TotalExpenses: expenses,
		TotalRevenue:  revenue,
		NetProfit:     revenue.Sub(expenses),
		ROI:           roi,
	}
}

// FirmRollup is the per-firm cost/revenue aggregate behind the chart series
// and the daily snapshot detail.
type FirmRollup struct {
	Firm    string          `json:"firm"`
	Cost    decimal.Decimal `json:"cost"`
	Revenue decimal.Decimal `json:"revenue"`
	Net     decimal.Decimal `json:"net"`
}

// FirmRollups groups accounts by firm (empty firm degrades to "unknown") and
// returns the aggregates sorted by firm name.
func FirmRollups(accounts []*models.Account) []FirmRollup {
	byFirm := map[string]*FirmRollup{}
	order := []string{}
	for _, a := range accounts {
		if a == nil {
			continue
		}
		firm := a.Firm
		if firm == "" {
			firm = UnknownLabel
		}
		roll, ok := byFirm[firm]
		if !ok {
			roll = &FirmRollup{Firm: firm, Cost: decimal.Zero, Revenue: decimal.Zero}
			byFirm[firm] = roll
			order = append(order, firm)
		}
		roll.Cost = roll.Cost.Add(AccountCost(a).Abs())
		roll.Revenue = roll.Revenue.Add(AccountRevenue(a))
	}
	sort.Strings(order)
	out := make([]FirmRollup, 0, len(order))
	for _, firm := range order {
		roll := byFirm[firm]
		roll.Net = roll.Revenue.Sub(roll.Cost)
		out = append(out, *roll)
	}
	return out
}

type ChartSlice struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
	Color string          `json:"color"`
}

type ChartStats struct {
	PayoutStats            []ChartSlice    `json:"payoutStats"`
	CostStats              []ChartSlice    `json:"costStats"`
	MarginStats            []ChartSlice    `json:"marginStats"`
	TotalPayoutForChart    decimal.Decimal `json:"totalPayoutForChart"`
	TotalCostForChart      decimal.Decimal `json:"totalCostForChart"`
	TotalPositiveNetProfit decimal.Decimal `json:"totalPositiveNetProfit"`
}

// Palette cycled for chart slice colors. Each series starts at a different
// offset so a firm's slice color differs across the three donuts.
var defaultPalette = []string{
	"#6366f1", "#10b981", "#f59e0b", "#ef4444", "#8b5cf6",
	"#06b6d4", "#ec4899", "#84cc16", "#f97316", "#14b8a6",
}

const (
	payoutColorOffset = 0
	costColorOffset   = 2
	marginColorOffset = 4
)

// ComputeChartStats builds the three donut series from per-firm rollups.
// Payout and cost series keep only firms strictly above zero; the margin
// series keeps only firms with strictly positive net profit, and
// TotalPositiveNetProfit sums exactly those — it is not the global net, which
// may be lower when some firms lost money.
func ComputeChartStats(accounts []*models.Account) ChartStats {
	rollups := FirmRollups(accounts)

	stats := ChartStats{
		TotalPayoutForChart:    decimal.Zero,
		TotalCostForChart:      decimal.Zero,
		TotalPositiveNetProfit: decimal.Zero,
	}
	for _, roll := range rollups {
		if roll.Revenue.IsPositive() {
			stats.PayoutStats = append(stats.PayoutStats, ChartSlice{Label: roll.Firm, Value: roll.Revenue})
			stats.TotalPayoutForChart = stats.TotalPayoutForChart.Add(roll.Revenue)
		}
		if roll.Cost.IsPositive() {
			stats.CostStats = append(stats.CostStats, ChartSlice{Label: roll.Firm, Value: roll.Cost})
			stats.TotalCostForChart = stats.TotalCostForChart.Add(roll.Cost)
		}
		if roll.Net.IsPositive() {
			stats.MarginStats = append(stats.MarginStats, ChartSlice{Label: roll.Firm, Value: roll.Net})
			stats.TotalPositiveNetProfit = stats.TotalPositiveNetProfit.Add(roll.Net)
		}
	}
	sortSlices(stats.PayoutStats)
	sortSlices(stats.CostStats)
	sortSlices(stats.MarginStats)
	colorize(stats.PayoutStats, payoutColorOffset)
	colorize(stats.CostStats, costColorOffset)
	colorize(stats.MarginStats, marginColorOffset)
	return stats
}

func sortSlices(slices []ChartSlice) {
	sort.SliceStable(slices, func(i, j int) bool {
		cmp := slices[i].Value.Cmp(slices[j].Value)
		if cmp != 0 {
			return cmp > 0
		}
		return slices[i].Label < slices[j].Label
	})
}

func colorize(slices []ChartSlice, offset int) {
	for i := range slices {
		slices[i].Color = defaultPalette[(i+offset)%len(defaultPalette)]
	}
}
