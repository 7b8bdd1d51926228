package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/bullion_ledger/internal/apperrors"
	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/bullion_ledger/internal/core/ports/services"
	"github.com/SscSPs/bullion_ledger/internal/core/services"
	"github.com/SscSPs/bullion_ledger/internal/dto"
	"github.com/SscSPs/bullion_ledger/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type JewelleryServiceTestSuite struct {
	suite.Suite
	ghaatRepo    *MockGhaatRepository
	merchantRepo *MockMerchantRepository
	service      portssvc.JewellerySvcFacade
	ctx          context.Context
}

func (suite *JewelleryServiceTestSuite) SetupTest() {
	suite.ghaatRepo = new(MockGhaatRepository)
	suite.merchantRepo = new(MockMerchantRepository)
	catalog := config.DefaultCatalog()
	catalog.JewelleryCategories = []string{"Rings", "Chains"}
	suite.service = services.NewJewelleryService(suite.ghaatRepo, suite.merchantRepo, catalog, testOptions()...)
	suite.ctx = context.Background()
}

func ghaatLine(id string, typ domain.GhaatType, category string, units int, perUnit, purity string) domain.GhaatTransaction {
	g := domain.GhaatTransaction{
		ID: id, Type: typ, Category: category, Units: units,
		GrossWeightPerUnit: dec(perUnit), Purity: dec(purity), AuditFields: owned(testUser),
	}
	g.TotalGrossWeight = g.GrossWeightPerUnit.Mul(decimal.NewFromInt(int64(units)))
	g.FineGold = domain.ComputeFineGold(g.TotalGrossWeight, g.Purity)
	return g
}

func (suite *JewelleryServiceTestSuite) TestRecordGhaatTransaction_GoldGivenCreatesKarigarPayment() {
	suite.merchantRepo.On("FindMerchantByID", suite.ctx, "k-1").Return(merchant("k-1", testUser), nil).Once()
	suite.ghaatRepo.On("SaveGhaatTransactions", suite.ctx,
		mock.MatchedBy(func(txns []domain.GhaatTransaction) bool {
			return len(txns) == 1 && txns[0].ID == "id-1" && txns[0].MerchantName == "Shah Jewellers" &&
				txns[0].FineGold.Equal(dec("10.992"))
		}),
		mock.MatchedBy(func(derived []domain.RawGoldLedgerEntry) bool {
			return len(derived) == 1 && derived[0].ID == "id-2" && derived[0].ReferenceID == "id-1" &&
				derived[0].Type == domain.LedgerOut && derived[0].Source == domain.SourceKarigarPayment &&
				derived[0].FineGold.Equal(dec("11"))
		}),
	).Return(nil).Once()

	g, err := suite.service.RecordGhaatTransaction(suite.ctx, dto.GhaatTransactionRequest{
		Type: "buy", Category: "Rings", MerchantID: "k-1", Units: 3, GrossWeightPerUnit: dec("4"), Purity: dec("91.6"),
		GoldGivenFine: decPtr("11"), TransactionDate: "2024-05-01",
	}, testUser)

	suite.Require().NoError(err)
	suite.Equal("id-1", g.ID)
	suite.ghaatRepo.AssertExpectations(suite.T())
}

func (suite *JewelleryServiceTestSuite) TestRecordGhaatTransaction_UnknownCategory() {
	_, err := suite.service.RecordGhaatTransaction(suite.ctx, dto.GhaatTransactionRequest{
		Type: "buy", Category: "Anklets", Units: 1, GrossWeightPerUnit: dec("4"), Purity: dec("91.6"), TransactionDate: "2024-05-01",
	}, testUser)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JewelleryServiceTestSuite) TestGetStock_CatalogThenExtraCategories() {
	txns := []domain.GhaatTransaction{
		ghaatLine("g-1", domain.GhaatBuy, "Rings", 2, "3", "91.6"),
		ghaatLine("g-2", domain.GhaatBuy, "Bangles", 1, "12", "91.6"),
	}
	suite.ghaatRepo.On("ListGhaatTransactions", suite.ctx, testUser).Return(txns, nil).Once()

	stock, err := suite.service.GetStock(suite.ctx, testUser)

	suite.Require().NoError(err)
	suite.Require().Len(stock, 3)
	suite.Equal("Rings", stock[0].Category)
	suite.Equal(2, stock[0].TotalUnits)
	suite.Equal("Chains", stock[1].Category)
	suite.Empty(stock[1].Brackets)
	suite.Equal("Bangles", stock[2].Category)
}

func (suite *JewelleryServiceTestSuite) TestGetPnL() {
	txns := []domain.GhaatTransaction{
		ghaatLine("g-1", domain.GhaatBuy, "Rings", 2, "5", "100"),
		ghaatLine("g-2", domain.GhaatSell, "Rings", 1, "5", "100"),
	}
	suite.ghaatRepo.On("ListGhaatTransactions", suite.ctx, testUser).Return(txns, nil).Once()

	pnl, err := suite.service.GetPnL(suite.ctx, testUser)

	suite.Require().NoError(err)
	suite.True(pnl.NetGoldProfit.Equal(dec("-5")))
}

func (suite *JewelleryServiceTestSuite) TestDeleteGhaatTransaction_PendingMemberRefused() {
	g := ghaatLine("g-1", domain.GhaatSell, "Rings", 1, "5", "91.6")
	g.Status, g.GroupID = domain.StatusPending, "grp-1"
	suite.ghaatRepo.On("FindGhaatTransactionByID", suite.ctx, "g-1").Return(&g, nil).Once()

	err := suite.service.DeleteGhaatTransaction(suite.ctx, "g-1", testUser)

	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.ghaatRepo.AssertNotCalled(suite.T(), "DeleteGhaatTransactions", mock.Anything, mock.Anything)
}

func (suite *JewelleryServiceTestSuite) TestDeleteGhaatTransaction_SettledGroupAnchorRefused() {
	g := ghaatLine("g-1", domain.GhaatSell, "Rings", 1, "4", "91.6")
	g.Status, g.GroupID, g.GroupSize = domain.StatusConfirmed, "grp-1", 2
	g.MerchantID, g.MerchantName = "m-1", "Shah Jewellers"
	g.AmountReceived, g.RatePerGram = decPtr("50000"), decPtr("6000")
	suite.ghaatRepo.On("FindGhaatTransactionByID", suite.ctx, "g-1").Return(&g, nil).Once()

	err := suite.service.DeleteGhaatTransaction(suite.ctx, "g-1", testUser)

	suite.ErrorIs(err, apperrors.ErrReferentialIntegrity)
	suite.ghaatRepo.AssertNotCalled(suite.T(), "DeleteGhaatTransactions", mock.Anything, mock.Anything)
}

func (suite *JewelleryServiceTestSuite) TestDeleteGhaatTransaction_SettledGroupMemberRefused() {
	g := ghaatLine("g-2", domain.GhaatSell, "Rings", 2, "4", "91.6")
	g.Status, g.GroupID, g.GroupSize = domain.StatusConfirmed, "grp-1", 2
	suite.ghaatRepo.On("FindGhaatTransactionByID", suite.ctx, "g-2").Return(&g, nil).Once()

	err := suite.service.DeleteGhaatTransaction(suite.ctx, "g-2", testUser)

	suite.ErrorIs(err, apperrors.ErrReferentialIntegrity)
	suite.ghaatRepo.AssertNotCalled(suite.T(), "DeleteGhaatTransactions", mock.Anything, mock.Anything)
}

func (suite *JewelleryServiceTestSuite) TestDeleteGhaatTransaction() {
	g := ghaatLine("g-1", domain.GhaatBuy, "Rings", 1, "5", "91.6")
	suite.ghaatRepo.On("FindGhaatTransactionByID", suite.ctx, "g-1").Return(&g, nil).Once()
	suite.ghaatRepo.On("DeleteGhaatTransactions", suite.ctx, []string{"g-1"}).Return(nil).Once()

	suite.NoError(suite.service.DeleteGhaatTransaction(suite.ctx, "g-1", testUser))
	suite.ghaatRepo.AssertExpectations(suite.T())
}

func TestJewelleryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JewelleryServiceTestSuite))
}
