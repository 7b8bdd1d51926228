package services

import (
	portsrepo "github.com/SscSPs/bullion_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bullion_ledger/internal/core/ports/services"
	"github.com/SscSPs/bullion_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, opts ...ServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		FinancialRecord: NewFinancialRecordService(repos.FinancialRecordRepo, cfg.Catalog, opts...),
		Merchant:        NewMerchantService(repos.MerchantRepo, repos.TradeRepo, repos.GhaatRepo, opts...),
		Trade:           NewTradeService(repos.TradeRepo, repos.MerchantRepo, opts...),
		RawGold:         NewRawGoldService(repos.RawGoldRepo, opts...),
		Jewellery:       NewJewelleryService(repos.GhaatRepo, repos.MerchantRepo, cfg.Catalog, opts...),
		PendingSale:     NewPendingSaleService(repos.GhaatRepo, repos.MerchantRepo, cfg.Catalog, opts...),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.FinancialRecordSvcFacade = (*financialRecordService)(nil)
	_ portssvc.MerchantSvcFacade        = (*merchantService)(nil)
	_ portssvc.TradeSvcFacade           = (*tradeService)(nil)
	_ portssvc.RawGoldSvcFacade         = (*rawGoldService)(nil)
	_ portssvc.JewellerySvcFacade       = (*jewelleryService)(nil)
	_ portssvc.PendingSaleSvcFacade     = (*pendingSaleService)(nil)
)
