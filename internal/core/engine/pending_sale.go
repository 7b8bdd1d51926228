package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/bullion_ledger/internal/apperrors"
	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleState is the workflow state of a pending sale group.
type SaleState string

const (
	StateDraft     SaleState = "DRAFT"
	StatePending   SaleState = "PENDING"
	StateConfirmed SaleState = "CONFIRMED"
	StateDeleted   SaleState = "DELETED"
	// StateBroken marks a group whose members disagree (mixed statuses or missing rows).
	StateBroken SaleState = "BROKEN"
)

// IDFunc produces fresh record identifiers.
type IDFunc func() string

// NewPendingSale moves a draft to PENDING: every line shares one fresh group id and becomes
// its own pending sell transaction.
func NewPendingSale(draft domain.PendingSaleDraft, newID IDFunc, userID string, now time.Time) ([]domain.GhaatTransaction, error) {
	if draft.MerchantID == "" {
		return nil, fmt.Errorf("%w: merchant is required", apperrors.ErrValidation)
	}
	if len(draft.Items) == 0 {
		return nil, fmt.Errorf("%w: at least one item is required", apperrors.ErrValidation)
	}
	if draft.DateGiven.IsZero() {
		return nil, fmt.Errorf("%w: date given is required", apperrors.ErrValidation)
	}

	groupID := newID()
	audit := domain.AuditFields{CreatedAt: now, CreatedBy: userID, LastUpdatedAt: now, LastUpdatedBy: userID}
	out := make([]domain.GhaatTransaction, 0, len(draft.Items))
	for i, item := range draft.Items {
		if err := validatePendingItem(i, item); err != nil {
			return nil, err
		}
		gross := item.GrossWeightPerUnit.Mul(decimal.NewFromInt(int64(item.Units)))
		out = append(out, domain.GhaatTransaction{
			ID:                 newID(),
			Type:               domain.GhaatSell,
			Category:           item.Category,
			MerchantID:         draft.MerchantID,
			MerchantName:       draft.MerchantName,
			Units:              item.Units,
			GrossWeightPerUnit: item.GrossWeightPerUnit,
			Purity:             item.Purity,
			TotalGrossWeight:   gross,
			FineGold:           domain.ComputeFineGold(gross, item.Purity),
			LaborType:          item.LaborType,
			LaborAmount:        item.LaborAmount,
			Status:             domain.StatusPending,
			GroupID:            groupID,
			GroupSize:          len(draft.Items),
			TransactionDate:    domain.DateOf(draft.DateGiven),
			AuditFields:        audit,
		})
	}
	return out, nil
}

func validatePendingItem(i int, item domain.PendingSaleItem) error {
	switch {
	case item.Category == "":
		return fmt.Errorf("%w: item %d: category is required", apperrors.ErrValidation, i)
	case item.Units <= 0:
		return fmt.Errorf("%w: item %d: units must be positive", apperrors.ErrValidation, i)
	case !item.GrossWeightPerUnit.IsPositive():
		return fmt.Errorf("%w: item %d: weight per unit must be positive", apperrors.ErrValidation, i)
	case item.Purity.IsNegative() || item.Purity.GreaterThan(hundred):
		return fmt.Errorf("%w: item %d: purity must be between 0 and 100", apperrors.ErrValidation, i)
	}
	return nil
}

type groupKey struct{ merchantID, groupID string }

// GroupPendingSales builds one PendingSaleGroup per (merchant, group) whose members are all
// pending and all present. A group vanishes as soon as any member is confirmed or deleted.
// Groups come back newest first.
func GroupPendingSales(txns []domain.GhaatTransaction) ([]domain.PendingSaleGroup, []domain.DataQualityWarning) {
	members := make(map[groupKey][]domain.GhaatTransaction)
	var order []groupKey
	for _, g := range txns {
		if g.Type != domain.GhaatSell || g.GroupID == "" {
			continue
		}
		k := groupKey{g.MerchantID, g.GroupID}
		if _, ok := members[k]; !ok {
			order = append(order, k)
		}
		members[k] = append(members[k], g)
	}

	var warnings []domain.DataQualityWarning
	groups := make([]domain.PendingSaleGroup, 0, len(order))
	for _, k := range order {
		items := members[k]
		state, w := GroupState(items)
		warnings = append(warnings, w...)
		if state != StatePending {
			continue
		}
		sortGhaatByCreation(items)
		group := domain.PendingSaleGroup{
			GroupID:       k.groupID,
			MerchantID:    k.merchantID,
			MerchantName:  items[0].MerchantName,
			DateGiven:     items[0].TransactionDate,
			TotalFineGold: decimal.Zero,
			Items:         make([]domain.GhaatTransaction, 0, len(items)),
		}
		for _, raw := range items {
			g, nw := normalizeGhaat(raw)
			warnings = append(warnings, nw...)
			if g.TransactionDate.Before(group.DateGiven) {
				group.DateGiven = g.TransactionDate
			}
			group.TotalFineGold = group.TotalFineGold.Add(g.FineGold)
			group.Items = append(group.Items, g)
		}
		groups = append(groups, group)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if !groups[i].DateGiven.Equal(groups[j].DateGiven) {
			return groups[i].DateGiven.After(groups[j].DateGiven)
		}
		return groups[i].GroupID < groups[j].GroupID
	})
	return groups, warnings
}

// GroupState classifies the members of one group.
func GroupState(items []domain.GhaatTransaction) (SaleState, []domain.DataQualityWarning) {
	if len(items) == 0 {
		return StateDeleted, nil
	}
	pending, confirmed := 0, 0
	for _, g := range items {
		switch g.Status {
		case domain.StatusPending:
			pending++
		case domain.StatusConfirmed:
			confirmed++
		}
	}
	groupID := items[0].GroupID
	expected := items[0].GroupSize
	switch {
	case confirmed == len(items):
		return StateConfirmed, nil
	case pending == len(items) && (expected == 0 || expected == len(items)):
		return StatePending, nil
	case pending == len(items):
		return StateBroken, []domain.DataQualityWarning{{
			RecordID: groupID, Field: "groupSize",
			Message: fmt.Sprintf("group has %d of %d items; hidden from pending sales", len(items), expected),
		}}
	default:
		return StateBroken, []domain.DataQualityWarning{{
			RecordID: groupID, Field: "status",
			Message: fmt.Sprintf("group mixes %d pending and %d confirmed items", pending, confirmed),
		}}
	}
}

// ConfirmPendingSale moves a complete PENDING group to CONFIRMED. Settlement cash and returned
// gold are booked on the anchor item (the first one entered); every item gets the settlement
// rate. When gold comes back, a merchant_return ledger entry referencing the anchor is built.
func ConfirmPendingSale(items []domain.GhaatTransaction, terms domain.SettlementTerms, newID IDFunc, userID string, now time.Time) (domain.GroupConfirmation, error) {
	state, _ := GroupState(items)
	if state != StatePending {
		return domain.GroupConfirmation{}, fmt.Errorf("%w: group is %s, only a complete pending group can be confirmed",
			apperrors.ErrInvalidState, state)
	}
	if err := terms.Validate(); err != nil {
		return domain.GroupConfirmation{}, err
	}

	updated := make([]domain.GhaatTransaction, len(items))
	copy(updated, items)
	sortGhaatByCreation(updated)

	returnedFine := terms.GoldReturnedFine()
	zero := decimal.Zero
	for i := range updated {
		g := &updated[i]
		g.Status = domain.StatusConfirmed
		g.RatePerGram = terms.RatePerGram
		g.LastUpdatedAt = now
		g.LastUpdatedBy = userID
		if i == 0 {
			received := terms.AmountReceived
			g.AmountReceived = &received
			if terms.ReturnsGold() {
				g.GoldReturnedFine = &returnedFine
			}
			continue
		}
		g.AmountReceived = &zero
	}

	confirmation := domain.GroupConfirmation{GroupID: updated[0].GroupID, Items: updated}
	if terms.ReturnsGold() {
		anchor := updated[0]
		confirmation.LedgerEffect = &domain.RawGoldLedgerEntry{
			ID:               newID(),
			Type:             domain.LedgerIn,
			Source:           domain.SourceMerchantReturn,
			ReferenceID:      anchor.ID,
			GrossWeight:      *terms.GoldReturnedGross,
			Purity:           *terms.GoldReturnedPurity,
			FineGold:         returnedFine,
			CounterpartyName: anchor.MerchantName,
			CounterpartyID:   anchor.MerchantID,
			TransactionDate:  domain.DateOf(terms.SettledOn),
			AuditFields:      domain.AuditFields{CreatedAt: now, CreatedBy: userID, LastUpdatedAt: now, LastUpdatedBy: userID},
		}
	}
	return confirmation, nil
}

func sortGhaatByCreation(items []domain.GhaatTransaction) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		}
		return items[i].ID < items[j].ID
	})
}
