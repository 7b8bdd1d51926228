package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	JWTSecret          string
	JWTIssuer          string
	RateLimit          string // limiter format, e.g. "100-M"
	CORSAllowedOrigins []string
	CatalogFile        string

	Catalog Catalog
}

// Catalog is the static vocabulary shown to users: category lists, colours and the
// weight brackets used for jewellery stock.
type Catalog struct {
	ExpenseCategories   []string
	IncomeCategories    []string
	JewelleryCategories []string
	CategoryColors      map[string]string
	WeightBrackets      domain.WeightBracketSet
}

// catalogFile mirrors the YAML layout. Bracket bounds are read as strings so they can be
// parsed into exact decimals.
type catalogFile struct {
	ExpenseCategories   []string          `mapstructure:"expenseCategories"`
	IncomeCategories    []string          `mapstructure:"incomeCategories"`
	JewelleryCategories []string          `mapstructure:"jewelleryCategories"`
	CategoryColors      map[string]string `mapstructure:"categoryColors"`
	WeightBrackets      []struct {
		Label string `mapstructure:"label"`
		Min   string `mapstructure:"min"`
		Max   string `mapstructure:"max"`
	} `mapstructure:"weightBrackets"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("JWT_ISSUER", "bullion-ledger")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("CATALOG_FILE", "")
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:   v.GetString("PGSQL_URL"),
		Port:          v.GetString("PORT"),
		IsProduction:  v.GetBool("IS_PRODUCTION"),
		EnableDBCheck: v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		JWTIssuer:     v.GetString("JWT_ISSUER"),
		RateLimit:     v.GetString("RATE_LIMIT"),
		CatalogFile:   v.GetString("CATALOG_FILE"),
	}
	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.IsProduction && cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		return nil, fmt.Errorf("JWT_SECRET must be set in production")
	}

	catalog, err := LoadCatalog(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}
	cfg.Catalog = catalog
	return cfg, nil
}

// DefaultCatalog is used when no catalog file is configured.
func DefaultCatalog() Catalog {
	return Catalog{
		ExpenseCategories:   []string{"Rent", "Salary", "Utilities", "Transport", "Refining", "Miscellaneous"},
		IncomeCategories:    []string{"Making Charges", "Commission", "Interest", "Miscellaneous"},
		JewelleryCategories: []string{"Rings", "Chains", "Bangles", "Earrings", "Necklaces"},
		CategoryColors:      map[string]string{},
		WeightBrackets:      domain.MustWeightBracketSet(domain.DefaultWeightBrackets()),
	}
}

// LoadCatalog reads a YAML catalog. Sections missing from the file keep their defaults.
// The weight brackets are validated here, once, so the engines can rely on them.
func LoadCatalog(path string) (Catalog, error) {
	catalog := DefaultCatalog()
	if path == "" {
		return catalog, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return Catalog{}, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	var raw catalogFile
	if err := v.Unmarshal(&raw); err != nil {
		return Catalog{}, fmt.Errorf("failed to decode catalog file %s: %w", path, err)
	}

	if len(raw.ExpenseCategories) > 0 {
		catalog.ExpenseCategories = raw.ExpenseCategories
	}
	if len(raw.IncomeCategories) > 0 {
		catalog.IncomeCategories = raw.IncomeCategories
	}
	if len(raw.JewelleryCategories) > 0 {
		catalog.JewelleryCategories = raw.JewelleryCategories
	}
	if len(raw.CategoryColors) > 0 {
		catalog.CategoryColors = raw.CategoryColors
	}
	if len(raw.WeightBrackets) > 0 {
		brackets := make([]domain.WeightBracket, 0, len(raw.WeightBrackets))
		for _, b := range raw.WeightBrackets {
			min, err := decimal.NewFromString(b.Min)
			if err != nil {
				return Catalog{}, fmt.Errorf("weight bracket %q: invalid min %q: %w", b.Label, b.Min, err)
			}
			bracket := domain.WeightBracket{Label: b.Label, Min: min}
			if b.Max != "" {
				max, err := decimal.NewFromString(b.Max)
				if err != nil {
					return Catalog{}, fmt.Errorf("weight bracket %q: invalid max %q: %w", b.Label, b.Max, err)
				}
				bracket.Max = &max
			}
			brackets = append(brackets, bracket)
		}
		set, err := domain.NewWeightBracketSet(brackets)
		if err != nil {
			return Catalog{}, fmt.Errorf("catalog file %s: %w", path, err)
		}
		catalog.WeightBrackets = set
	}
	return catalog, nil
}

// Categories returns the configured categories for a financial record kind.
func (c Catalog) Categories(kind domain.RecordKind) []string {
	if kind == domain.KindIncome {
		return c.IncomeCategories
	}
	return c.ExpenseCategories
}
