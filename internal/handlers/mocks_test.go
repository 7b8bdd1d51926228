package handlers_test

import (
	"context"

	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	"github.com/SscSPs/bullion_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock FinancialRecordService ---
type MockFinancialRecordService struct {
	mock.Mock
}

func (m *MockFinancialRecordService) ListFinancialRecords(ctx context.Context, kind domain.RecordKind, userID string) ([]domain.FinancialRecord, error) {
	args := m.Called(ctx, kind, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialRecord), args.Error(1)
}
func (m *MockFinancialRecordService) CreateFinancialRecord(ctx context.Context, kind domain.RecordKind, req dto.FinancialRecordRequest, userID string) (*domain.FinancialRecord, error) {
	args := m.Called(ctx, kind, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialRecord), args.Error(1)
}
func (m *MockFinancialRecordService) UpdateFinancialRecord(ctx context.Context, kind domain.RecordKind, recordID string, req dto.FinancialRecordRequest, userID string) (*domain.FinancialRecord, error) {
	args := m.Called(ctx, kind, recordID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialRecord), args.Error(1)
}
func (m *MockFinancialRecordService) DeleteFinancialRecord(ctx context.Context, kind domain.RecordKind, recordID string, userID string) error {
	return m.Called(ctx, kind, recordID, userID).Error(0)
}
func (m *MockFinancialRecordService) ComputePeriodAnalytics(ctx context.Context, kind domain.RecordKind, params dto.AnalyticsParams, userID string) (*domain.PeriodAnalytics, error) {
	args := m.Called(ctx, kind, params, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodAnalytics), args.Error(1)
}

// --- Mock MerchantService ---
type MockMerchantService struct {
	mock.Mock
}

func (m *MockMerchantService) GetMerchantByID(ctx context.Context, merchantID string, userID string) (*domain.Merchant, error) {
	args := m.Called(ctx, merchantID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Merchant), args.Error(1)
}
func (m *MockMerchantService) ListMerchants(ctx context.Context, userID string) ([]domain.Merchant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Merchant), args.Error(1)
}
func (m *MockMerchantService) CreateMerchant(ctx context.Context, req dto.CreateMerchantRequest, userID string) (*domain.Merchant, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Merchant), args.Error(1)
}
func (m *MockMerchantService) DeleteMerchant(ctx context.Context, merchantID string, userID string) error {
	return m.Called(ctx, merchantID, userID).Error(0)
}
func (m *MockMerchantService) GetPartyLedger(ctx context.Context, merchantID string, params dto.PartyLedgerParams, userID string) (*domain.PartyLedger, *string, error) {
	args := m.Called(ctx, merchantID, params, userID)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).(*domain.PartyLedger), next, args.Error(2)
}
func (m *MockMerchantService) GetJewelleryDues(ctx context.Context, merchantID string, userID string) (*domain.MerchantJewelleryDues, error) {
	args := m.Called(ctx, merchantID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MerchantJewelleryDues), args.Error(1)
}

// --- Mock TradeService ---
type MockTradeService struct {
	mock.Mock
}

func (m *MockTradeService) RecordTrade(ctx context.Context, req dto.TradeRequest, userID string) (*domain.Trade, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trade), args.Error(1)
}
func (m *MockTradeService) UpdateTrade(ctx context.Context, tradeID string, req dto.TradeRequest, userID string) (*domain.Trade, error) {
	args := m.Called(ctx, tradeID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trade), args.Error(1)
}
func (m *MockTradeService) DeleteTrade(ctx context.Context, tradeID string, userID string) error {
	return m.Called(ctx, tradeID, userID).Error(0)
}

// --- Mock RawGoldService ---
type MockRawGoldService struct {
	mock.Mock
}

func (m *MockRawGoldService) GetRawGoldLedger(ctx context.Context, params dto.RawGoldLedgerParams, userID string) (*domain.RawGoldLedgerView, error) {
	args := m.Called(ctx, params, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RawGoldLedgerView), args.Error(1)
}
func (m *MockRawGoldService) CreateRawGoldEntry(ctx context.Context, req dto.RawGoldEntryRequest, userID string) (*domain.RawGoldLedgerEntry, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RawGoldLedgerEntry), args.Error(1)
}
func (m *MockRawGoldService) DeleteRawGoldEntry(ctx context.Context, entryID string, userID string) error {
	return m.Called(ctx, entryID, userID).Error(0)
}

// --- Mock JewelleryService ---
type MockJewelleryService struct {
	mock.Mock
}

func (m *MockJewelleryService) GetStock(ctx context.Context, userID string) ([]domain.CategoryStock, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryStock), args.Error(1)
}
func (m *MockJewelleryService) GetPnL(ctx context.Context, userID string) (*domain.JewelleryPnL, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JewelleryPnL), args.Error(1)
}
func (m *MockJewelleryService) RecordGhaatTransaction(ctx context.Context, req dto.GhaatTransactionRequest, userID string) (*domain.GhaatTransaction, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GhaatTransaction), args.Error(1)
}
func (m *MockJewelleryService) DeleteGhaatTransaction(ctx context.Context, id string, userID string) error {
	return m.Called(ctx, id, userID).Error(0)
}

// --- Mock PendingSaleService ---
type MockPendingSaleService struct {
	mock.Mock
}

func (m *MockPendingSaleService) CreatePendingSale(ctx context.Context, req dto.CreatePendingSaleRequest, userID string) (*domain.PendingSaleGroup, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PendingSaleGroup), args.Error(1)
}
func (m *MockPendingSaleService) ListPendingSales(ctx context.Context, userID string) ([]domain.PendingSaleGroup, []domain.DataQualityWarning, error) {
	args := m.Called(ctx, userID)
	var warnings []domain.DataQualityWarning
	if args.Get(1) != nil {
		warnings = args.Get(1).([]domain.DataQualityWarning)
	}
	if args.Get(0) == nil {
		return nil, warnings, args.Error(2)
	}
	return args.Get(0).([]domain.PendingSaleGroup), warnings, args.Error(2)
}
func (m *MockPendingSaleService) ConfirmPendingSale(ctx context.Context, groupID string, req dto.ConfirmPendingSaleRequest, userID string) (*domain.GroupConfirmation, error) {
	args := m.Called(ctx, groupID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GroupConfirmation), args.Error(1)
}
func (m *MockPendingSaleService) DeletePendingSale(ctx context.Context, groupID string, userID string) error {
	return m.Called(ctx, groupID, userID).Error(0)
}
