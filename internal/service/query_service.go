package service

import (
	"context"
	"fmt"
	"time"

	"fractional-share-registry/internal/core/domain"
	"fractional-share-registry/internal/core/ports"
	"fractional-share-registry/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultEventLimit = 50
	maxEventLimit     = 200
)

// QueryServiceImpl implements ports.RegistryQueryService. Reads go
// straight to the repositories; only prices pass through the cache.
type QueryServiceImpl struct {
	accountRepo   ports.AccountRepository
	assetRepo     ports.AssetRepository
	balanceRepo   ports.BalanceRepository
	holderRepo    ports.HolderRepository
	portfolioRepo ports.PortfolioRepository
	treasuryRepo  ports.TreasuryRepository
	eventRepo     ports.EventRepository
	priceCache    ports.PriceCache
	cacheTTL      time.Duration
	collection    string
	collectionURI string
	log           zerolog.Logger
}

// NewQueryService creates a new QueryServiceImpl.
func NewQueryService(
	accountRepo ports.AccountRepository,
	assetRepo ports.AssetRepository,
	balanceRepo ports.BalanceRepository,
	holderRepo ports.HolderRepository,
	portfolioRepo ports.PortfolioRepository,
	treasuryRepo ports.TreasuryRepository,
	eventRepo ports.EventRepository,
	priceCache ports.PriceCache,
	cacheTTL time.Duration,
	collection string,
	collectionURI string,
	log zerolog.Logger,
) *QueryServiceImpl {
	return &QueryServiceImpl{
		accountRepo:   accountRepo,
		assetRepo:     assetRepo,
		balanceRepo:   balanceRepo,
		holderRepo:    holderRepo,
		portfolioRepo: portfolioRepo,
		treasuryRepo:  treasuryRepo,
		eventRepo:     eventRepo,
		priceCache:    priceCache,
		cacheTTL:      cacheTTL,
		collection:    collection,
		collectionURI: collectionURI,
		log:           log,
	}
}

// AssetInfo returns the full record of a registered asset.
func (s *QueryServiceImpl) AssetInfo(ctx context.Context, assetID int64) (*domain.Asset, error) {
	asset, err := s.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load asset: %w", err))
	}
	if asset == nil {
		return nil, apperror.ErrUnregisteredAsset(assetID)
	}
	return asset, nil
}

// PriceOf returns the per-share price, read through the cache.
func (s *QueryServiceImpl) PriceOf(ctx context.Context, assetID int64) (int64, error) {
	price, found, err := s.priceCache.Get(ctx, assetID)
	if err != nil {
		s.log.Warn().Err(err).Int64("asset_id", assetID).Msg("price cache read failed, falling through to DB")
	}
	if found {
		return price, nil
	}

	asset, err := s.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("load asset: %w", err))
	}
	if asset == nil {
		return 0, apperror.ErrUnregisteredAsset(assetID)
	}

	if err := s.priceCache.Set(ctx, assetID, asset.PricePerShare, s.cacheTTL); err != nil {
		s.log.Warn().Err(err).Int64("asset_id", assetID).Msg("price cache write failed")
	}
	return asset.PricePerShare, nil
}

// BalanceOf returns an account's share balance for one asset.
func (s *QueryServiceImpl) BalanceOf(ctx context.Context, assetID int64, accountID uuid.UUID) (int64, error) {
	asset, err := s.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("load asset: %w", err))
	}
	if asset == nil {
		return 0, apperror.ErrUnregisteredAsset(assetID)
	}

	balance, err := s.balanceRepo.Get(ctx, assetID, accountID)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("get balance: %w", err))
	}
	return balance, nil
}

// HoldersOf lists the holders of an asset. The operator's unsold supply
// does not count as a holding.
func (s *QueryServiceImpl) HoldersOf(ctx context.Context, assetID int64) ([]domain.Holder, error) {
	asset, err := s.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load asset: %w", err))
	}
	if asset == nil {
		return nil, apperror.ErrUnregisteredAsset(assetID)
	}

	exclude := []uuid.UUID{domain.BurnAccount}
	operator, err := s.accountRepo.GetOperator(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load operator: %w", err))
	}
	if operator != nil {
		exclude = append(exclude, operator.ID)
	}

	holders, err := s.holderRepo.ListByAsset(ctx, assetID, exclude)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list holders: %w", err))
	}
	return holders, nil
}

// PortfolioOf lists every asset an account has ever bought, in purchase
// order, with live balances.
func (s *QueryServiceImpl) PortfolioOf(ctx context.Context, accountID uuid.UUID) ([]domain.PortfolioEntry, error) {
	entries, err := s.portfolioRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list portfolio: %w", err))
	}
	return entries, nil
}

// CollectionInfo summarizes the registry.
func (s *QueryServiceImpl) CollectionInfo(ctx context.Context) (*ports.CollectionInfo, error) {
	total, err := s.assetRepo.Count(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("count assets: %w", err))
	}
	treasury, err := s.treasuryRepo.Balance(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("treasury balance: %w", err))
	}

	return &ports.CollectionInfo{
		Name:            s.collection,
		URI:             s.collectionURI,
		TotalAssets:     total,
		SharesPerAsset:  domain.TotalShares,
		TreasuryBalance: treasury,
	}, nil
}

// Capabilities reports the fixed behaviors of this registry.
func (s *QueryServiceImpl) Capabilities() ports.Capabilities {
	return ports.Capabilities{
		SharesPerAsset:   domain.TotalShares,
		FixedSupply:      true,
		PeerTransfers:    true,
		WhitelistGated:   true,
		Burnable:         true,
		BatchedPurchase:  true,
		RoyaltySemantics: true,
	}
}

// WalletBalance returns an account's wallet balance.
func (s *QueryServiceImpl) WalletBalance(ctx context.Context, accountID uuid.UUID) (int64, error) {
	balance, err := s.accountRepo.GetWalletBalance(ctx, accountID)
	if err != nil {
		return 0, apperror.ErrNotFound("account")
	}
	return balance, nil
}

// RecentEvents returns the newest ledger events.
func (s *QueryServiceImpl) RecentEvents(ctx context.Context, limit int) ([]domain.LedgerEvent, error) {
	events, err := s.eventRepo.ListRecent(ctx, clampLimit(limit))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list events: %w", err))
	}
	return events, nil
}

// AssetEvents returns the newest ledger events of one asset.
func (s *QueryServiceImpl) AssetEvents(ctx context.Context, assetID int64, limit int) ([]domain.LedgerEvent, error) {
	asset, err := s.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load asset: %w", err))
	}
	if asset == nil {
		return nil, apperror.ErrUnregisteredAsset(assetID)
	}

	events, err := s.eventRepo.ListByAsset(ctx, assetID, clampLimit(limit))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list asset events: %w", err))
	}
	return events, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultEventLimit
	}
	if limit > maxEventLimit {
		return maxEventLimit
	}
	return limit
}
