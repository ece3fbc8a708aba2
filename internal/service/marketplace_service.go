package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fractional-share-registry/internal/core/domain"
	"fractional-share-registry/internal/core/ports"
	"fractional-share-registry/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MarketplaceServiceImpl implements ports.MarketplaceService. Every
// operation runs in one database transaction: the balance moves, the
// holder index, the money legs and the event log commit together or not
// at all.
type MarketplaceServiceImpl struct {
	accountRepo   ports.AccountRepository
	assetRepo     ports.AssetRepository
	balanceRepo   ports.BalanceRepository
	portfolioRepo ports.PortfolioRepository
	treasuryRepo  ports.TreasuryRepository
	eventRepo     ports.EventRepository
	ledger        ports.ShareLedger
	channel       ports.PaymentChannel
	priceCache    ports.PriceCache
	notifier      ports.EventNotifier
	transactor    ports.DBTransactor
	log           zerolog.Logger
}

// NewMarketplaceService creates a new MarketplaceServiceImpl.
func NewMarketplaceService(
	accountRepo ports.AccountRepository,
	assetRepo ports.AssetRepository,
	balanceRepo ports.BalanceRepository,
	portfolioRepo ports.PortfolioRepository,
	treasuryRepo ports.TreasuryRepository,
	eventRepo ports.EventRepository,
	ledger ports.ShareLedger,
	channel ports.PaymentChannel,
	priceCache ports.PriceCache,
	notifier ports.EventNotifier,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *MarketplaceServiceImpl {
	return &MarketplaceServiceImpl{
		accountRepo:   accountRepo,
		assetRepo:     assetRepo,
		balanceRepo:   balanceRepo,
		portfolioRepo: portfolioRepo,
		treasuryRepo:  treasuryRepo,
		eventRepo:     eventRepo,
		ledger:        ledger,
		channel:       channel,
		priceCache:    priceCache,
		notifier:      notifier,
		transactor:    transactor,
		log:           log,
	}
}

// RegisterAssets registers a batch of assets. Each asset receives a
// sequential id and its full share supply is issued to the operator.
func (s *MarketplaceServiceImpl) RegisterAssets(ctx context.Context, actor uuid.UUID, specs []ports.AssetSpec) ([]domain.Asset, error) {
	operator, err := s.requireOperator(ctx, actor)
	if err != nil {
		return nil, err
	}
	if len(specs) == 0 {
		return nil, apperror.ErrBatchShape("registration batch is empty")
	}
	for _, spec := range specs {
		if spec.PricePerShare <= domain.PriceSentinel {
			return nil, apperror.ErrZeroPrice()
		}
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	now := time.Now().UTC()
	assets := make([]domain.Asset, 0, len(specs))
	for _, spec := range specs {
		asset := domain.Asset{
			PricePerShare:   spec.PricePerShare,
			Metadata:        spec.Metadata,
			URI:             spec.URI,
			RoyaltyReceiver: spec.RoyaltyReceiver,
			RoyaltyRateBps:  spec.RoyaltyRateBps,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := s.assetRepo.Create(ctx, dbTx, &asset); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("create asset: %w", err))
		}

		// Issue the full fixed supply to the operator.
		issue := ports.ShareTransfer{
			From:    domain.MintOrigin,
			To:      operator.ID,
			AssetID: asset.ID,
			Amount:  domain.TotalShares,
		}
		if err := s.ledger.Transfer(ctx, dbTx, issue); err != nil {
			return nil, err
		}

		assets = append(assets, asset)
	}

	ids := make([]int64, len(assets))
	for i, a := range assets {
		ids[i] = a.ID
	}
	event := newLedgerEvent(domain.EventAssetsRegistered, nil, &operator.ID, nil, map[string]any{
		"asset_ids": ids,
	})
	if err := s.eventRepo.Append(ctx, dbTx, event); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append event: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.notifier.Enqueue(event)

	s.log.Info().
		Ints64("asset_ids", ids).
		Msg("assets registered")

	return assets, nil
}

// PurchaseShares settles a batch purchase from the operator's supply.
// The whole batch succeeds or the whole batch rolls back.
func (s *MarketplaceServiceImpl) PurchaseShares(ctx context.Context, buyer uuid.UUID, req ports.PurchaseRequest) (*ports.PurchaseResult, error) {
	if len(req.Items) == 0 {
		return nil, apperror.ErrBatchShape("purchase batch is empty")
	}
	for _, item := range req.Items {
		if item.Amount <= 0 {
			return nil, apperror.ErrBatchShape("purchase amount must be positive")
		}
	}
	if req.PaymentSent < 0 {
		return nil, apperror.ErrBatchShape("payment must not be negative")
	}

	operator, err := s.accountRepo.GetOperator(ctx)
	if err != nil || operator == nil {
		return nil, apperror.InternalError(fmt.Errorf("load operator: %w", err))
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Validate each pair and accumulate cost. pending tracks shares already
	// claimed by earlier pairs of the same batch, so a duplicate asset id
	// cannot oversell the operator's supply.
	var totalCost int64
	pending := make(map[int64]int64)
	for _, item := range req.Items {
		asset, err := s.assetRepo.GetByIDForUpdate(ctx, dbTx, item.AssetID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("lock asset: %w", err))
		}
		if asset == nil || asset.PricePerShare == domain.PriceSentinel {
			return nil, apperror.ErrUnregisteredAsset(item.AssetID)
		}

		supply, err := s.balanceRepo.GetForUpdate(ctx, dbTx, item.AssetID, operator.ID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("lock supply: %w", err))
		}
		if supply-pending[item.AssetID] < item.Amount {
			return nil, apperror.ErrInsufficientSupply(item.AssetID)
		}
		pending[item.AssetID] += item.Amount

		// Cost arithmetic must not wrap. A wrapped product or sum would
		// read as a small (or zero) cost and hand out shares for free.
		cost := asset.PricePerShare * item.Amount
		if cost <= 0 || cost/item.Amount != asset.PricePerShare {
			return nil, apperror.ErrBatchShape("purchase cost out of range")
		}
		totalCost += cost
		if totalCost < 0 {
			return nil, apperror.ErrBatchShape("purchase cost out of range")
		}

		if err := s.portfolioRepo.RecordPurchase(ctx, dbTx, buyer, item.AssetID); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("record portfolio: %w", err))
		}
	}

	if req.PaymentSent < totalCost {
		return nil, apperror.ErrInsufficientPayment(totalCost, req.PaymentSent)
	}

	transfers := make([]ports.ShareTransfer, len(req.Items))
	for i, item := range req.Items {
		transfers[i] = ports.ShareTransfer{
			From:    operator.ID,
			To:      buyer,
			AssetID: item.AssetID,
			Amount:  item.Amount,
		}
	}
	if err := s.ledger.BatchTransfer(ctx, dbTx, transfers); err != nil {
		return nil, err
	}

	// Money legs: the full payment moves to the treasury, then any
	// overpayment comes straight back.
	if err := s.channel.Collect(ctx, dbTx, buyer, req.PaymentSent); err != nil {
		return nil, apperror.ErrPaymentRejected(err)
	}
	refund := req.PaymentSent - totalCost
	if refund > 0 {
		if err := s.channel.Disburse(ctx, dbTx, buyer, refund); err != nil {
			return nil, apperror.ErrPaymentRejected(err)
		}
	}

	events := make([]*domain.LedgerEvent, 0, len(req.Items))
	for _, item := range req.Items {
		assetID := item.AssetID
		amount := item.Amount
		event := newLedgerEvent(domain.EventSharesPurchased, &assetID, &buyer, &amount, map[string]any{
			"payment_sent": req.PaymentSent,
		})
		if err := s.eventRepo.Append(ctx, dbTx, event); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("append event: %w", err))
		}
		events = append(events, event)
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	for _, event := range events {
		s.notifier.Enqueue(event)
	}

	s.log.Info().
		Str("buyer", buyer.String()).
		Int("pairs", len(req.Items)).
		Int64("total_cost", totalCost).
		Int64("refund", refund).
		Msg("batch purchase settled")

	return &ports.PurchaseResult{
		TotalCost: totalCost,
		Refunded:  refund,
		Items:     req.Items,
	}, nil
}

// TransferShares settles a peer transfer (or a burn when the receiver is
// the burn account).
func (s *MarketplaceServiceImpl) TransferShares(ctx context.Context, sender uuid.UUID, req ports.TransferRequest) error {
	if req.Amount <= 0 {
		return apperror.Validation("transfer amount must be positive")
	}

	asset, err := s.assetRepo.GetByID(ctx, req.AssetID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load asset: %w", err))
	}
	if asset == nil {
		return apperror.ErrUnregisteredAsset(req.AssetID)
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	transfer := ports.ShareTransfer{
		From:    sender,
		To:      req.To,
		AssetID: req.AssetID,
		Amount:  req.Amount,
	}
	if err := s.ledger.Transfer(ctx, dbTx, transfer); err != nil {
		return err
	}

	assetID := req.AssetID
	amount := req.Amount
	event := newLedgerEvent(domain.EventSharesTransferred, &assetID, &sender, &amount, map[string]any{
		"to": req.To.String(),
	})
	if err := s.eventRepo.Append(ctx, dbTx, event); err != nil {
		return apperror.InternalError(fmt.Errorf("append event: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.notifier.Enqueue(event)
	return nil
}

// SetPrices updates per-share prices in one atomic batch.
func (s *MarketplaceServiceImpl) SetPrices(ctx context.Context, actor uuid.UUID, updates []ports.PriceUpdate) error {
	if _, err := s.requireOperator(ctx, actor); err != nil {
		return err
	}
	if len(updates) == 0 {
		return apperror.ErrBatchShape("price batch is empty")
	}
	for _, u := range updates {
		if u.Price <= domain.PriceSentinel {
			return apperror.ErrZeroPrice()
		}
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	events := make([]*domain.LedgerEvent, 0, len(updates))
	for _, u := range updates {
		asset, err := s.assetRepo.GetByIDForUpdate(ctx, dbTx, u.AssetID)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("lock asset: %w", err))
		}
		if asset == nil {
			return apperror.ErrUnregisteredAsset(u.AssetID)
		}
		if err := s.assetRepo.UpdatePrice(ctx, dbTx, u.AssetID, u.Price); err != nil {
			return apperror.InternalError(fmt.Errorf("update price: %w", err))
		}

		assetID := u.AssetID
		price := u.Price
		event := newLedgerEvent(domain.EventPriceChanged, &assetID, &actor, &price, map[string]any{
			"previous_price": asset.PricePerShare,
		})
		if err := s.eventRepo.Append(ctx, dbTx, event); err != nil {
			return apperror.InternalError(fmt.Errorf("append event: %w", err))
		}
		events = append(events, event)
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	// Drop stale cached prices after commit. Best-effort: a failed
	// invalidation expires with the TTL.
	for _, u := range updates {
		if err := s.priceCache.Invalidate(ctx, u.AssetID); err != nil {
			s.log.Warn().Err(err).Int64("asset_id", u.AssetID).Msg("price cache invalidation failed")
		}
	}
	for _, event := range events {
		s.notifier.Enqueue(event)
	}
	return nil
}

// SetWhitelisted flips an account's whitelist flag.
func (s *MarketplaceServiceImpl) SetWhitelisted(ctx context.Context, actor uuid.UUID, accountID uuid.UUID, whitelisted bool) error {
	if _, err := s.requireOperator(ctx, actor); err != nil {
		return err
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load account: %w", err))
	}
	if account == nil {
		return apperror.ErrNotFound("account")
	}

	if err := s.accountRepo.SetWhitelisted(ctx, accountID, whitelisted); err != nil {
		return apperror.InternalError(fmt.Errorf("set whitelisted: %w", err))
	}

	s.log.Info().
		Str("account_id", accountID.String()).
		Bool("whitelisted", whitelisted).
		Msg("whitelist flag updated")
	return nil
}

// Withdraw drains the entire treasury into the operator's wallet and
// returns the amount withdrawn.
func (s *MarketplaceServiceImpl) Withdraw(ctx context.Context, actor uuid.UUID) (int64, error) {
	operator, err := s.requireOperator(ctx, actor)
	if err != nil {
		return 0, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	balance, err := s.treasuryRepo.BalanceForUpdate(ctx, dbTx)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("lock treasury: %w", err))
	}
	if balance == 0 {
		return 0, apperror.ErrNothingToWithdraw()
	}

	if err := s.channel.Disburse(ctx, dbTx, operator.ID, balance); err != nil {
		return 0, apperror.ErrPaymentRejected(err)
	}

	event := newLedgerEvent(domain.EventFundsWithdrawn, nil, &operator.ID, &balance, nil)
	if err := s.eventRepo.Append(ctx, dbTx, event); err != nil {
		return 0, apperror.InternalError(fmt.Errorf("append event: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return 0, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.notifier.Enqueue(event)

	s.log.Info().
		Int64("amount", balance).
		Msg("treasury withdrawn")
	return balance, nil
}

// requireOperator loads the actor and checks the operator flag.
func (s *MarketplaceServiceImpl) requireOperator(ctx context.Context, actor uuid.UUID) (*domain.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, actor)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load actor: %w", err))
	}
	if account == nil || !account.IsOperator {
		return nil, apperror.ErrNotOperator()
	}
	return account, nil
}

// newLedgerEvent builds an event row. Payload marshaling cannot fail for
// the map shapes used here.
func newLedgerEvent(eventType domain.EventType, assetID *int64, accountID *uuid.UUID, amount *int64, payload map[string]any) *domain.LedgerEvent {
	var raw []byte
	if payload != nil {
		raw, _ = json.Marshal(payload)
	}
	return &domain.LedgerEvent{
		ID:        uuid.New(),
		Type:      eventType,
		AssetID:   assetID,
		AccountID: accountID,
		Amount:    amount,
		Payload:   raw,
		CreatedAt: time.Now().UTC(),
	}
}
