package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/bullion_ledger/internal/apperrors"
	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/bullion_ledger/internal/core/ports/services"
	"github.com/SscSPs/bullion_ledger/internal/dto"
	"github.com/SscSPs/bullion_ledger/internal/handlers"
	"github.com/SscSPs/bullion_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testUserID = "user-1"

type HandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	jwtSecret   string
	records     *MockFinancialRecordService
	merchants   *MockMerchantService
	trades      *MockTradeService
	rawGold     *MockRawGoldService
	jewellery   *MockJewelleryService
	pendingSale *MockPendingSaleService
}

func (suite *HandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	suite.Require().NoError(err)
	return signed
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.records = new(MockFinancialRecordService)
	suite.merchants = new(MockMerchantService)
	suite.trades = new(MockTradeService)
	suite.rawGold = new(MockRawGoldService)
	suite.jewellery = new(MockJewelleryService)
	suite.pendingSale = new(MockPendingSaleService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true,
		Catalog:      config.DefaultCatalog(),
	}
	cfg.Catalog.CategoryColors = map[string]string{"Rent": "#ff0000"}

	container := &portssvc.ServiceContainer{
		FinancialRecord: suite.records,
		Merchant:        suite.merchants,
		Trade:           suite.trades,
		RawGold:         suite.rawGold,
		Jewellery:       suite.jewellery,
		PendingSale:     suite.pendingSale,
	}
	handlers.RegisterRoutes(suite.router, cfg, container, nil)
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.records.AssertExpectations(suite.T())
	suite.merchants.AssertExpectations(suite.T())
	suite.trades.AssertExpectations(suite.T())
	suite.rawGold.AssertExpectations(suite.T())
	suite.jewellery.AssertExpectations(suite.T())
	suite.pendingSale.AssertExpectations(suite.T())
}

// do sends an authenticated request; body may be nil.
func (suite *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", suite.generateTestToken(testUserID)))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) decode(w *httptest.ResponseRecorder, out any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), out))
}

func (suite *HandlerTestSuite) errorMessage(w *httptest.ResponseRecorder) string {
	var body map[string]string
	suite.decode(w, &body)
	return body["error"]
}

// --- auth and health ---

func (suite *HandlerTestSuite) TestHealth() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestMissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/merchants", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Authorization header required", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestTokenSignedWithOtherSecret() {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: testUserID})
	signed, err := token.SignedString([]byte("some-other-secret"))
	suite.Require().NoError(err)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/merchants", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

// --- financial records ---

func (suite *HandlerTestSuite) TestCreateFinancialRecord_Success() {
	reqBody := dto.FinancialRecordRequest{
		Category: "Rent",
		Amount:   decimal.NewFromInt(1200),
		Date:     "2024-03-05",
	}
	created := &domain.FinancialRecord{
		ID:       "rec-1",
		Kind:     domain.KindExpense,
		Category: "Rent",
		Amount:   decimal.NewFromInt(1200),
		Date:     time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	}
	suite.records.On("CreateFinancialRecord", mock.Anything, domain.KindExpense,
		mock.MatchedBy(func(r dto.FinancialRecordRequest) bool { return r.Category == "Rent" && r.Amount.Equal(decimal.NewFromInt(1200)) }),
		testUserID).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/financial-records/expense", reqBody)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.FinancialRecordResponse
	suite.decode(w, &resp)
	suite.Equal("rec-1", resp.ID)
	suite.Equal("2024-03-05", resp.Date)
	suite.True(resp.Amount.Equal(decimal.NewFromInt(1200)))
}

func (suite *HandlerTestSuite) TestCreateFinancialRecord_MalformedBody() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/financial-records/expense", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(testUserID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorMessage(w), "Invalid request format")
}

func (suite *HandlerTestSuite) TestCreateFinancialRecord_ValidationError() {
	suite.records.On("CreateFinancialRecord", mock.Anything, domain.KindExpense, mock.Anything, testUserID).
		Return(nil, fmt.Errorf("%w: category is required", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodPost, "/api/v1/financial-records/expense", dto.FinancialRecordRequest{Date: "2024-03-05"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorMessage(w), "category is required")
}

func (suite *HandlerTestSuite) TestUpdateFinancialRecord_NotFound() {
	suite.records.On("UpdateFinancialRecord", mock.Anything, domain.KindIncome, "rec-9", mock.Anything, testUserID).
		Return(nil, fmt.Errorf("%w: financial record rec-9", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodPut, "/api/v1/financial-records/income/rec-9",
		dto.FinancialRecordRequest{Category: "Interest", Amount: decimal.NewFromInt(10), Date: "2024-03-05"})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteFinancialRecord_InternalErrorIsHidden() {
	suite.records.On("DeleteFinancialRecord", mock.Anything, domain.KindExpense, "rec-1", testUserID).
		Return(fmt.Errorf("pq: connection refused to 10.0.0.5")).Once()

	w := suite.do(http.MethodDelete, "/api/v1/financial-records/expense/rec-1", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to delete record", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestAnalytics_AppliesCategoryColors() {
	analytics := &domain.PeriodAnalytics{
		TotalForPeriod: decimal.NewFromInt(300),
		AveragePerDay:  decimal.RequireFromString("9.677419"),
		CategoryBreakdown: []domain.CategoryAmount{
			{Name: "Rent", Amount: decimal.NewFromInt(200)},
			{Name: "Utilities", Amount: decimal.NewFromInt(100)},
		},
		ItemCount: 2,
	}
	params := dto.AnalyticsParams{StartMonth: "2024-03", EndMonth: "2024-03", Categories: "Rent,Utilities", SortBy: "amount_desc"}
	suite.records.On("ComputePeriodAnalytics", mock.Anything, domain.KindExpense, params, testUserID).
		Return(analytics, nil).Once()

	w := suite.do(http.MethodGet,
		"/api/v1/analytics/expense?startMonth=2024-03&endMonth=2024-03&categories=Rent,Utilities&sortBy=amount_desc", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PeriodAnalyticsResponse
	suite.decode(w, &resp)
	suite.Require().NotNil(resp.TopCategory)
	suite.Equal("Rent", resp.TopCategory.Name)
	suite.Equal("#ff0000", resp.TopCategory.Color)
	suite.Equal("", resp.CategoryBreakdown[1].Color)
	suite.True(resp.AveragePerDay.Equal(decimal.RequireFromString("9.68")))
}

func (suite *HandlerTestSuite) TestAnalytics_InvalidRange() {
	suite.records.On("ComputePeriodAnalytics", mock.Anything, domain.KindExpense, mock.Anything, testUserID).
		Return(nil, fmt.Errorf("%w: start month after end month", apperrors.ErrInvalidRange)).Once()

	w := suite.do(http.MethodGet, "/api/v1/analytics/expense?startMonth=2024-05&endMonth=2024-03", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- merchants ---

func (suite *HandlerTestSuite) TestListMerchants_Success() {
	suite.merchants.On("ListMerchants", mock.Anything, testUserID).Return([]domain.Merchant{
		{ID: "m-1", Name: "Shah Jewellers", Kind: domain.CounterpartyMerchant, TotalDue: decimal.NewFromInt(500)},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/merchants", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.MerchantResponse
	suite.decode(w, &resp)
	suite.Require().Len(resp, 1)
	suite.Equal("Shah Jewellers", resp[0].Name)
	suite.True(resp[0].TotalDue.Equal(decimal.NewFromInt(500)))
}

func (suite *HandlerTestSuite) TestDeleteMerchant_WithDependents() {
	suite.merchants.On("DeleteMerchant", mock.Anything, "m-1", testUserID).
		Return(fmt.Errorf("%w: merchant m-1 has 3 trades", apperrors.ErrReferentialIntegrity)).Once()

	w := suite.do(http.MethodDelete, "/api/v1/merchants/m-1", nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestPartyLedger_ReturnsNextToken() {
	next := "token-2"
	ledger := &domain.PartyLedger{
		MerchantID: "m-1",
		ClosingDue: decimal.NewFromInt(700),
		ClosingOwe: decimal.Zero,
		Rows: []domain.PartyLedgerRow{{
			Trade:       domain.Trade{ID: "t-1", Type: domain.TradeSell, MerchantID: "m-1", TotalAmount: decimal.NewFromInt(700)},
			RunningDues: decimal.NewFromInt(700),
		}},
	}
	params := dto.PartyLedgerParams{From: "2024-01-01", To: "2024-01-31", Limit: 1}
	suite.merchants.On("GetPartyLedger", mock.Anything, "m-1", params, testUserID).Return(ledger, &next, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/merchants/m-1/ledger?from=2024-01-01&to=2024-01-31&limit=1", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PartyLedgerResponse
	suite.decode(w, &resp)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("token-2", *resp.NextToken)
	suite.Require().Len(resp.Rows, 1)
	suite.True(resp.ClosingDue.Equal(decimal.NewFromInt(700)))
}

func (suite *HandlerTestSuite) TestPartyLedger_NonNumericLimit() {
	w := suite.do(http.MethodGet, "/api/v1/merchants/m-1/ledger?limit=abc", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestJewelleryDues_OtherUsersMerchant() {
	suite.merchants.On("GetJewelleryDues", mock.Anything, "m-2", testUserID).
		Return(nil, fmt.Errorf("%w: merchant m-2", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/v1/merchants/m-2/jewellery-dues", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

// --- trades ---

func (suite *HandlerTestSuite) TestRecordTrade_Success() {
	reqBody := dto.TradeRequest{
		MerchantID:  "m-1",
		Type:        "buy",
		Weight:      decimal.NewFromInt(10),
		Rate:        decimal.NewFromInt(6000),
		TotalAmount: decimal.NewFromInt(60000),
		TradeDate:   "2024-02-01",
	}
	trade := &domain.Trade{
		ID: "t-1", Type: domain.TradeBuy, MerchantID: "m-1",
		Weight: decimal.NewFromInt(10), Rate: decimal.NewFromInt(6000), TotalAmount: decimal.NewFromInt(60000),
		TradeDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	suite.trades.On("RecordTrade", mock.Anything,
		mock.MatchedBy(func(r dto.TradeRequest) bool { return r.MerchantID == "m-1" && r.Type == "buy" }),
		testUserID).Return(trade, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/trades", reqBody)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TradeResponse
	suite.decode(w, &resp)
	suite.Equal("t-1", resp.ID)
	suite.Equal("m-1", resp.MerchantID)
}

func (suite *HandlerTestSuite) TestDeleteTrade_NotFound() {
	suite.trades.On("DeleteTrade", mock.Anything, "t-404", testUserID).
		Return(fmt.Errorf("%w: trade t-404", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodDelete, "/api/v1/trades/t-404", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

// --- raw gold ---

func (suite *HandlerTestSuite) TestRawGoldLedger_Success() {
	view := &domain.RawGoldLedgerView{
		OpeningBalance: decimal.NewFromInt(5),
		ClosingBalance: decimal.NewFromInt(15),
		Rows: []domain.RawGoldLedgerRow{{
			RawGoldLedgerEntry: domain.RawGoldLedgerEntry{
				ID: "r-1", Type: domain.LedgerIn, Source: domain.SourceManualAdjustment,
				FineGold: decimal.NewFromInt(10), TransactionDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			},
			RunningBalance: decimal.NewFromInt(15),
		}},
		Stats: domain.RawGoldStats{TotalIn: decimal.NewFromInt(15), TotalOut: decimal.Zero, Balance: decimal.NewFromInt(15), Count: 2},
	}
	suite.rawGold.On("GetRawGoldLedger", mock.Anything, dto.RawGoldLedgerParams{From: "2024-01-01", To: "2024-01-31"}, testUserID).
		Return(view, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/raw-gold/ledger?from=2024-01-01&to=2024-01-31", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.RawGoldLedgerResponse
	suite.decode(w, &resp)
	suite.True(resp.OpeningBalance.Equal(decimal.NewFromInt(5)))
	suite.Equal(2, resp.Stats.Count)
	suite.Require().Len(resp.Rows, 1)
}

func (suite *HandlerTestSuite) TestDeleteRawGoldEntry_Derived() {
	suite.rawGold.On("DeleteRawGoldEntry", mock.Anything, "r-2", testUserID).
		Return(fmt.Errorf("%w: raw gold entry r-2 was created by record t-1", apperrors.ErrReferentialIntegrity)).Once()

	w := suite.do(http.MethodDelete, "/api/v1/raw-gold/entries/r-2", nil)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(suite.errorMessage(w), "t-1")
}

func (suite *HandlerTestSuite) TestDeleteRawGoldEntry_Success() {
	suite.rawGold.On("DeleteRawGoldEntry", mock.Anything, "r-1", testUserID).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/raw-gold/entries/r-1", nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

// --- jewellery ---

func (suite *HandlerTestSuite) TestStock_Success() {
	suite.jewellery.On("GetStock", mock.Anything, testUserID).Return([]domain.CategoryStock{
		{Category: "Rings", TotalUnits: 4, TotalFineGold: decimal.RequireFromString("18.3"), Brackets: []domain.BracketStock{}},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/jewellery/stock", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.StockResponse
	suite.decode(w, &resp)
	suite.Require().Len(resp.Categories, 1)
	suite.Equal(4, resp.Categories[0].TotalUnits)
}

func (suite *HandlerTestSuite) TestPnL_Success() {
	suite.jewellery.On("GetPnL", mock.Anything, testUserID).Return(&domain.JewelleryPnL{
		TotalBuyFineGold:  decimal.NewFromInt(20),
		TotalSellFineGold: decimal.NewFromInt(25),
		GoldLaborPaid:     decimal.NewFromInt(1),
		NetGoldProfit:     decimal.NewFromInt(4),
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/jewellery/pnl", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.JewelleryPnLResponse
	suite.decode(w, &resp)
	suite.True(resp.NetGoldProfit.Equal(decimal.NewFromInt(4)))
}

func (suite *HandlerTestSuite) TestDeleteGhaatTransaction_PendingMember() {
	suite.jewellery.On("DeleteGhaatTransaction", mock.Anything, "g-1", testUserID).
		Return(fmt.Errorf("%w: transaction g-1 belongs to pending sale grp-1", apperrors.ErrInvalidState)).Once()

	w := suite.do(http.MethodDelete, "/api/v1/jewellery/transactions/g-1", nil)

	suite.Equal(http.StatusConflict, w.Code)
}

// --- pending sales ---

func (suite *HandlerTestSuite) TestCreatePendingSale_Success() {
	reqBody := dto.CreatePendingSaleRequest{
		MerchantID: "m-1",
		DateGiven:  "2024-04-01",
		Items: []dto.PendingSaleItemRequest{
			{Category: "Rings", Units: 2, GrossWeightPerUnit: decimal.NewFromInt(5), Purity: decimal.NewFromInt(90)},
		},
	}
	group := &domain.PendingSaleGroup{
		GroupID:       "grp-1",
		MerchantID:    "m-1",
		MerchantName:  "Shah Jewellers",
		DateGiven:     time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		TotalFineGold: decimal.NewFromInt(9),
		Items: []domain.GhaatTransaction{{
			ID: "g-1", Type: domain.GhaatSell, Category: "Rings", Units: 2,
			GrossWeightPerUnit: decimal.NewFromInt(5), Purity: decimal.NewFromInt(90),
			TotalGrossWeight: decimal.NewFromInt(10), FineGold: decimal.NewFromInt(9),
			Status: domain.StatusPending, GroupID: "grp-1", GroupSize: 1,
		}},
	}
	suite.pendingSale.On("CreatePendingSale", mock.Anything,
		mock.MatchedBy(func(r dto.CreatePendingSaleRequest) bool { return r.MerchantID == "m-1" && len(r.Items) == 1 }),
		testUserID).Return(group, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/pending-sales", reqBody)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.PendingSaleGroupResponse
	suite.decode(w, &resp)
	suite.Equal("grp-1", resp.GroupID)
	suite.Equal("2024-04-01", resp.DateGiven)
	suite.Require().Len(resp.Items, 1)
}

func (suite *HandlerTestSuite) TestListPendingSales_IncludesWarnings() {
	warnings := []domain.DataQualityWarning{{RecordID: "grp-9", Field: "groupSize", Message: "group has 1 of 2 items; hidden from pending sales"}}
	suite.pendingSale.On("ListPendingSales", mock.Anything, testUserID).
		Return([]domain.PendingSaleGroup{}, warnings, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/pending-sales", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListPendingSalesResponse
	suite.decode(w, &resp)
	suite.Empty(resp.Groups)
	suite.Require().Len(resp.Warnings, 1)
	suite.Equal("grp-9", resp.Warnings[0].RecordID)
}

func (suite *HandlerTestSuite) TestConfirmPendingSale_AlreadyConfirmed() {
	suite.pendingSale.On("ConfirmPendingSale", mock.Anything, "grp-1", mock.Anything, testUserID).
		Return(nil, fmt.Errorf("%w: group is CONFIRMED", apperrors.ErrInvalidState)).Once()

	w := suite.do(http.MethodPost, "/api/v1/pending-sales/grp-1/confirm",
		dto.ConfirmPendingSaleRequest{AmountReceived: decimal.NewFromInt(1000), SettledOn: "2024-04-10"})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestConfirmPendingSale_WithReturnedGold() {
	returned := decimal.NewFromInt(2)
	confirmation := &domain.GroupConfirmation{
		GroupID: "grp-1",
		Items: []domain.GhaatTransaction{{
			ID: "g-1", Type: domain.GhaatSell, Status: domain.StatusConfirmed, GroupID: "grp-1",
			GoldReturnedFine: &returned,
		}},
		LedgerEffect: &domain.RawGoldLedgerEntry{
			ID: "r-1", Type: domain.LedgerIn, Source: domain.SourceMerchantReturn, ReferenceID: "g-1",
			FineGold: returned, TransactionDate: time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
		},
	}
	suite.pendingSale.On("ConfirmPendingSale", mock.Anything, "grp-1",
		mock.MatchedBy(func(r dto.ConfirmPendingSaleRequest) bool { return r.SettledOn == "2024-04-10" }),
		testUserID).Return(confirmation, nil).Once()

	gross, purity := decimal.NewFromInt(2), decimal.NewFromInt(100)
	w := suite.do(http.MethodPost, "/api/v1/pending-sales/grp-1/confirm", dto.ConfirmPendingSaleRequest{
		AmountReceived:     decimal.NewFromInt(1000),
		GoldReturnedGross:  &gross,
		GoldReturnedPurity: &purity,
		SettledOn:          "2024-04-10",
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ConfirmPendingSaleResponse
	suite.decode(w, &resp)
	suite.Equal("grp-1", resp.GroupID)
	suite.Require().NotNil(resp.LedgerEntry)
	suite.Equal("g-1", resp.LedgerEntry.ReferenceID)
}

func (suite *HandlerTestSuite) TestDeletePendingSale_Success() {
	suite.pendingSale.On("DeletePendingSale", mock.Anything, "grp-1", testUserID).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/pending-sales/grp-1", nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
