package services_test

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	"github.com/SscSPs/bullion_ledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock FinancialRecordRepository ---
type MockFinancialRecordRepository struct {
	mock.Mock
}

func (m *MockFinancialRecordRepository) FindFinancialRecordByID(ctx context.Context, recordID string) (*domain.FinancialRecord, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialRecord), args.Error(1)
}

func (m *MockFinancialRecordRepository) ListFinancialRecords(ctx context.Context, userID string, kind domain.RecordKind) ([]domain.FinancialRecord, error) {
	args := m.Called(ctx, userID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialRecord), args.Error(1)
}

func (m *MockFinancialRecordRepository) SaveFinancialRecord(ctx context.Context, record domain.FinancialRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockFinancialRecordRepository) UpdateFinancialRecord(ctx context.Context, record domain.FinancialRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockFinancialRecordRepository) DeleteFinancialRecord(ctx context.Context, recordID string) error {
	return m.Called(ctx, recordID).Error(0)
}

// --- Mock MerchantRepository ---
type MockMerchantRepository struct {
	mock.Mock
}

func (m *MockMerchantRepository) FindMerchantByID(ctx context.Context, merchantID string) (*domain.Merchant, error) {
	args := m.Called(ctx, merchantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Merchant), args.Error(1)
}

func (m *MockMerchantRepository) ListMerchants(ctx context.Context, userID string) ([]domain.Merchant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Merchant), args.Error(1)
}

func (m *MockMerchantRepository) SaveMerchant(ctx context.Context, merchant domain.Merchant) error {
	return m.Called(ctx, merchant).Error(0)
}

func (m *MockMerchantRepository) DeleteMerchant(ctx context.Context, merchantID string) error {
	return m.Called(ctx, merchantID).Error(0)
}

// --- Mock TradeRepository ---
type MockTradeRepository struct {
	mock.Mock
}

func (m *MockTradeRepository) FindTradeByID(ctx context.Context, tradeID string) (*domain.Trade, error) {
	args := m.Called(ctx, tradeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trade), args.Error(1)
}

func (m *MockTradeRepository) ListTradesByMerchant(ctx context.Context, userID, merchantID string) ([]domain.Trade, error) {
	args := m.Called(ctx, userID, merchantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trade), args.Error(1)
}

func (m *MockTradeRepository) SaveTrade(ctx context.Context, trade domain.Trade, derived *domain.RawGoldLedgerEntry) error {
	return m.Called(ctx, trade, derived).Error(0)
}

func (m *MockTradeRepository) UpdateTrade(ctx context.Context, trade domain.Trade, derived *domain.RawGoldLedgerEntry) error {
	return m.Called(ctx, trade, derived).Error(0)
}

func (m *MockTradeRepository) DeleteTrade(ctx context.Context, tradeID string) error {
	return m.Called(ctx, tradeID).Error(0)
}

// --- Mock GhaatRepository ---
type MockGhaatRepository struct {
	mock.Mock
}

func (m *MockGhaatRepository) FindGhaatTransactionByID(ctx context.Context, id string) (*domain.GhaatTransaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GhaatTransaction), args.Error(1)
}

func (m *MockGhaatRepository) ListGhaatTransactions(ctx context.Context, userID string) ([]domain.GhaatTransaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GhaatTransaction), args.Error(1)
}

func (m *MockGhaatRepository) ListGhaatTransactionsByGroup(ctx context.Context, userID, groupID string) ([]domain.GhaatTransaction, error) {
	args := m.Called(ctx, userID, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GhaatTransaction), args.Error(1)
}

func (m *MockGhaatRepository) SaveGhaatTransactions(ctx context.Context, txns []domain.GhaatTransaction, derived []domain.RawGoldLedgerEntry) error {
	return m.Called(ctx, txns, derived).Error(0)
}

func (m *MockGhaatRepository) ConfirmPendingGroup(ctx context.Context, confirmation domain.GroupConfirmation) error {
	return m.Called(ctx, confirmation).Error(0)
}

func (m *MockGhaatRepository) DeleteGhaatTransactions(ctx context.Context, ids []string) error {
	return m.Called(ctx, ids).Error(0)
}

// --- Mock RawGoldRepository ---
type MockRawGoldRepository struct {
	mock.Mock
}

func (m *MockRawGoldRepository) FindRawGoldEntryByID(ctx context.Context, entryID string) (*domain.RawGoldLedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RawGoldLedgerEntry), args.Error(1)
}

func (m *MockRawGoldRepository) ListRawGoldEntries(ctx context.Context, userID string) ([]domain.RawGoldLedgerEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RawGoldLedgerEntry), args.Error(1)
}

func (m *MockRawGoldRepository) SaveRawGoldEntry(ctx context.Context, entry domain.RawGoldLedgerEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockRawGoldRepository) DeleteRawGoldEntry(ctx context.Context, entryID string) error {
	return m.Called(ctx, entryID).Error(0)
}

// --- shared fixtures ---

const (
	testUser  = "user-1"
	otherUser = "user-2"
)

var fixedNow = time.Date(2024, time.May, 10, 9, 30, 0, 0, time.UTC)

// testOptions gives services sequential ids (id-1, id-2, ...) and a fixed clock.
func testOptions() []services.ServiceOption {
	n := 0
	return []services.ServiceOption{
		services.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
		services.WithClock(func() time.Time { return fixedNow }),
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func date(s string) time.Time {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func owned(userID string) domain.AuditFields {
	return domain.AuditFields{CreatedAt: fixedNow.Add(-time.Hour), CreatedBy: userID, LastUpdatedAt: fixedNow.Add(-time.Hour), LastUpdatedBy: userID}
}

func merchant(id, userID string) *domain.Merchant {
	return &domain.Merchant{ID: id, Name: "Shah Jewellers", Kind: domain.CounterpartyMerchant, AuditFields: owned(userID)}
}
