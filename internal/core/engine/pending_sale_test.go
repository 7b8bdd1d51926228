package engine_test

import (
	"testing"
	"time"

	"github.com/SscSPs/bullion_ledger/internal/apperrors"
	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	"github.com/SscSPs/bullion_ledger/internal/core/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draft() domain.PendingSaleDraft {
	return domain.PendingSaleDraft{
		MerchantID: "m1", MerchantName: "Shah Jewellers", DateGiven: day("2024-05-01"),
		Items: []domain.PendingSaleItem{
			{Category: "Rings", Units: 3, GrossWeightPerUnit: dec("4"), Purity: dec("91.6")},
			{Category: "Chains", Units: 1, GrossWeightPerUnit: dec("12.5"), Purity: dec("91.6")},
		},
	}
}

func pendingItems(t *testing.T) []domain.GhaatTransaction {
	t.Helper()
	items, err := engine.NewPendingSale(draft(), sequentialIDs("id"), "u1", day("2024-05-01"))
	require.NoError(t, err)
	// distinct creation times so the anchor is obvious
	for i := range items {
		items[i].CreatedAt = items[i].CreatedAt.Add(time.Duration(i) * time.Minute)
	}
	return items
}

func TestNewPendingSale_SharesGroup(t *testing.T) {
	items := pendingItems(t)
	require.Len(t, items, 2)
	assert.Equal(t, "id-1", items[0].GroupID)
	for _, g := range items {
		assert.Equal(t, items[0].GroupID, g.GroupID)
		assert.Equal(t, domain.StatusPending, g.Status)
		assert.Equal(t, domain.GhaatSell, g.Type)
		assert.Equal(t, 2, g.GroupSize)
		assert.True(t, g.FineGoldConsistent())
	}
	assert.True(t, dec("12").Equal(items[0].TotalGrossWeight))
	assert.True(t, dec("10.992").Equal(items[0].FineGold))
}

func TestNewPendingSale_Validation(t *testing.T) {
	d := draft()
	d.Items[1].Purity = dec("101")
	_, err := engine.NewPendingSale(d, sequentialIDs("id"), "u1", time.Now())
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	d = draft()
	d.Items = nil
	_, err = engine.NewPendingSale(d, sequentialIDs("id"), "u1", time.Now())
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGroupPendingSales(t *testing.T) {
	items := pendingItems(t)
	groups, warnings := engine.GroupPendingSales(items)
	assert.Empty(t, warnings)
	require.Len(t, groups, 1)
	g := groups[0]
	assert.Equal(t, "m1", g.MerchantID)
	assert.Equal(t, "Shah Jewellers", g.MerchantName)
	assert.Len(t, g.Items, 2)
	assert.True(t, items[0].FineGold.Add(items[1].FineGold).Equal(g.TotalFineGold))
}

func TestGroupPendingSales_HidesPartiallyConfirmedAndIncompleteGroups(t *testing.T) {
	items := pendingItems(t)

	mixed := append([]domain.GhaatTransaction(nil), items...)
	mixed[1].Status = domain.StatusConfirmed
	groups, warnings := engine.GroupPendingSales(mixed)
	assert.Empty(t, groups)
	require.Len(t, warnings, 1)
	assert.Equal(t, "status", warnings[0].Field)

	groups, warnings = engine.GroupPendingSales(items[:1])
	assert.Empty(t, groups)
	require.Len(t, warnings, 1)
	assert.Equal(t, "groupSize", warnings[0].Field)
}

func TestConfirmPendingSale_AllOrNothing(t *testing.T) {
	items := pendingItems(t)
	terms := domain.SettlementTerms{
		AmountReceived:     dec("50000"),
		RatePerGram:        decPtr("6500"),
		GoldReturnedGross:  decPtr("5"),
		GoldReturnedPurity: decPtr("99.5"),
		SettledOn:          day("2024-05-20"),
	}
	conf, err := engine.ConfirmPendingSale(items, terms, sequentialIDs("ledger"), "u2", day("2024-05-20"))
	require.NoError(t, err)

	require.Len(t, conf.Items, 2)
	for _, g := range conf.Items {
		assert.Equal(t, domain.StatusConfirmed, g.Status)
		assert.True(t, dec("6500").Equal(*g.RatePerGram))
		assert.Equal(t, "u2", g.LastUpdatedBy)
	}
	anchor := conf.Items[0]
	assert.Equal(t, items[0].ID, anchor.ID)
	assert.True(t, dec("50000").Equal(*anchor.AmountReceived))
	assert.True(t, dec("4.975").Equal(*anchor.GoldReturnedFine))
	assert.True(t, conf.Items[1].AmountReceived.IsZero())

	require.NotNil(t, conf.LedgerEffect)
	assert.Equal(t, domain.SourceMerchantReturn, conf.LedgerEffect.Source)
	assert.Equal(t, domain.LedgerIn, conf.LedgerEffect.Type)
	assert.Equal(t, anchor.ID, conf.LedgerEffect.ReferenceID)
	assert.Equal(t, "ledger-1", conf.LedgerEffect.ID)

	// the input is untouched
	assert.Equal(t, domain.StatusPending, items[0].Status)

	// confirmed group is gone from the pending view
	groups, _ := engine.GroupPendingSales(conf.Items)
	assert.Empty(t, groups)
}

func TestConfirmPendingSale_CashOnlyHasNoLedgerEffect(t *testing.T) {
	conf, err := engine.ConfirmPendingSale(pendingItems(t), domain.SettlementTerms{
		AmountReceived: dec("1000"), SettledOn: day("2024-05-20"),
	}, sequentialIDs("ledger"), "u1", time.Now())
	require.NoError(t, err)
	assert.Nil(t, conf.LedgerEffect)
}

func TestConfirmPendingSale_Rejections(t *testing.T) {
	items := pendingItems(t)

	_, err := engine.ConfirmPendingSale(items, domain.SettlementTerms{SettledOn: day("2024-05-20")}, sequentialIDs("l"), "u1", time.Now())
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = engine.ConfirmPendingSale(items[:1], domain.SettlementTerms{AmountReceived: dec("1"), SettledOn: day("2024-05-20")}, sequentialIDs("l"), "u1", time.Now())
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)

	_, err = engine.ConfirmPendingSale(nil, domain.SettlementTerms{AmountReceived: dec("1"), SettledOn: day("2024-05-20")}, sequentialIDs("l"), "u1", time.Now())
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
}
