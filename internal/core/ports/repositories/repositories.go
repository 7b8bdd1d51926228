package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	FinancialRecordRepo FinancialRecordRepositoryFacade
	MerchantRepo        MerchantRepositoryFacade
	TradeRepo           TradeRepositoryFacade
	GhaatRepo           GhaatRepositoryFacade
	RawGoldRepo         RawGoldRepositoryFacade
}
