package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FineGoldEpsilon is the tolerance, in grams, between a stored fine gold value and its
// recomputation from gross weight and purity.
var FineGoldEpsilon = decimal.New(1, -6)

var hundred = decimal.NewFromInt(100)

// PurityPlaces is the number of decimal places purity is stored with.
const PurityPlaces = 4

// RoundPurity rounds a purity percentage to the stored precision. Fine gold must be
// computed from the rounded value so it survives a round trip through storage.
func RoundPurity(purity decimal.Decimal) decimal.Decimal {
	return purity.Round(PurityPlaces)
}

// RoundPurityPtr is RoundPurity for optional purities.
func RoundPurityPtr(purity *decimal.Decimal) *decimal.Decimal {
	if purity == nil {
		return nil
	}
	r := RoundPurity(*purity)
	return &r
}

// ComputeFineGold returns gross × purity / 100.
func ComputeFineGold(gross, purity decimal.Decimal) decimal.Decimal {
	return gross.Mul(purity).Div(hundred)
}

// GhaatType is the direction of a jewellery transaction.
type GhaatType string

const (
	GhaatBuy  GhaatType = "buy"
	GhaatSell GhaatType = "sell"
)

// SaleStatus tracks a jewellery sale through the give → confirm workflow.
// Buys and direct sells carry an empty status.
type SaleStatus string

const (
	StatusNone      SaleStatus = ""
	StatusPending   SaleStatus = "pending"
	StatusConfirmed SaleStatus = "confirmed"
)

// LaborType says how making charges were paid.
type LaborType string

const (
	LaborNone LaborType = ""
	LaborCash LaborType = "cash"
	LaborGold LaborType = "gold"
)

// GhaatTransaction is a jewellery purchase or sale line.
type GhaatTransaction struct {
	ID                 string           `json:"id"`
	Type               GhaatType        `json:"type"`
	Category           string           `json:"category"`
	MerchantID         string           `json:"merchantID,omitempty"`
	MerchantName       string           `json:"merchantName,omitempty"`
	Units              int              `json:"units"`
	GrossWeightPerUnit decimal.Decimal  `json:"grossWeightPerUnit"`
	Purity             decimal.Decimal  `json:"purity"` // 0-100
	TotalGrossWeight   decimal.Decimal  `json:"totalGrossWeight"`
	FineGold           decimal.Decimal  `json:"fineGold"`
	LaborType          LaborType        `json:"laborType,omitempty"`
	LaborAmount        *decimal.Decimal `json:"laborAmount,omitempty"`
	GoldGivenFine      *decimal.Decimal `json:"goldGivenFine,omitempty"`
	CashPaid           *decimal.Decimal `json:"cashPaid,omitempty"`
	AmountReceived     *decimal.Decimal `json:"amountReceived,omitempty"`
	GoldReturnedFine   *decimal.Decimal `json:"goldReturnedFine,omitempty"`
	RatePerGram        *decimal.Decimal `json:"ratePerGram,omitempty"`
	Status             SaleStatus       `json:"status,omitempty"`
	GroupID            string           `json:"groupID,omitempty"`
	GroupSize          int              `json:"groupSize,omitempty"`
	TransactionDate    time.Time        `json:"transactionDate"`
	AuditFields
}

// ExpectedFineGold recomputes fine gold from gross weight and purity.
func (g GhaatTransaction) ExpectedFineGold() decimal.Decimal {
	return ComputeFineGold(g.TotalGrossWeight, g.Purity)
}

// FineGoldConsistent reports whether the stored fine gold matches its recomputation.
func (g GhaatTransaction) FineGoldConsistent() bool {
	return g.FineGold.Sub(g.ExpectedFineGold()).Abs().LessThan(FineGoldEpsilon)
}
