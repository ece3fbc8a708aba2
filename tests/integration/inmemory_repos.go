package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"fractional-share-registry/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Account Repo ---

type inMemoryAccountRepo struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*domain.Account
}

func newInMemoryAccountRepo() *inMemoryAccountRepo {
	return &inMemoryAccountRepo{accounts: make(map[uuid.UUID]*domain.Account)}
}

func (r *inMemoryAccountRepo) Create(ctx context.Context, a *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.accounts {
		if existing.Username == a.Username {
			return fmt.Errorf("username already exists")
		}
	}
	cp := *a
	r.accounts[a.ID] = &cp
	return nil
}

func (r *inMemoryAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *inMemoryAccountRepo) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if a.Username == username {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryAccountRepo) GetOperator(ctx context.Context) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if a.IsOperator {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryAccountRepo) SetWhitelisted(ctx context.Context, id uuid.UUID, whitelisted bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return fmt.Errorf("account not found")
	}
	a.Whitelisted = whitelisted
	return nil
}

func (r *inMemoryAccountRepo) GetWalletBalance(ctx context.Context, id uuid.UUID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[id]
	if !ok {
		return 0, fmt.Errorf("account not found")
	}
	return a.WalletBalance, nil
}

func (r *inMemoryAccountRepo) GetWalletBalanceForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (int64, error) {
	return r.GetWalletBalance(ctx, id)
}

func (r *inMemoryAccountRepo) DebitWallet(ctx context.Context, tx pgx.Tx, id uuid.UUID, amount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return fmt.Errorf("account not found")
	}
	if a.WalletBalance < amount {
		return fmt.Errorf("insufficient wallet balance")
	}
	a.WalletBalance -= amount
	return nil
}

func (r *inMemoryAccountRepo) CreditWallet(ctx context.Context, tx pgx.Tx, id uuid.UUID, amount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return fmt.Errorf("account not found")
	}
	a.WalletBalance += amount
	return nil
}

func (r *inMemoryAccountRepo) snapshot() func() {
	r.mu.RLock()
	saved := make(map[uuid.UUID]*domain.Account, len(r.accounts))
	for id, a := range r.accounts {
		cp := *a
		saved[id] = &cp
	}
	r.mu.RUnlock()
	return func() {
		r.mu.Lock()
		r.accounts = saved
		r.mu.Unlock()
	}
}

// --- In-Memory Asset Repo ---

type inMemoryAssetRepo struct {
	mu     sync.RWMutex
	assets map[int64]*domain.Asset
	nextID int64
}

func newInMemoryAssetRepo() *inMemoryAssetRepo {
	return &inMemoryAssetRepo{assets: make(map[int64]*domain.Asset), nextID: 1}
}

func (r *inMemoryAssetRepo) Create(ctx context.Context, tx pgx.Tx, a *domain.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = r.nextID
	r.nextID++
	cp := *a
	r.assets[a.ID] = &cp
	return nil
}

func (r *inMemoryAssetRepo) GetByID(ctx context.Context, id int64) (*domain.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.assets[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *inMemoryAssetRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.Asset, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryAssetRepo) UpdatePrice(ctx context.Context, tx pgx.Tx, id int64, pricePerShare int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.assets[id]
	if !ok {
		return fmt.Errorf("asset not found")
	}
	a.PricePerShare = pricePerShare
	a.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryAssetRepo) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.assets)), nil
}

func (r *inMemoryAssetRepo) snapshot() func() {
	r.mu.RLock()
	saved := make(map[int64]*domain.Asset, len(r.assets))
	for id, a := range r.assets {
		cp := *a
		saved[id] = &cp
	}
	savedNextID := r.nextID
	r.mu.RUnlock()
	return func() {
		r.mu.Lock()
		r.assets = saved
		r.nextID = savedNextID
		r.mu.Unlock()
	}
}

// --- In-Memory Balance Repo ---

type balanceKey struct {
	assetID   int64
	accountID uuid.UUID
}

type inMemoryBalanceRepo struct {
	mu       sync.RWMutex
	balances map[balanceKey]int64
}

func newInMemoryBalanceRepo() *inMemoryBalanceRepo {
	return &inMemoryBalanceRepo{balances: make(map[balanceKey]int64)}
}

func (r *inMemoryBalanceRepo) Get(ctx context.Context, assetID int64, accountID uuid.UUID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.balances[balanceKey{assetID, accountID}], nil
}

func (r *inMemoryBalanceRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, assetID int64, accountID uuid.UUID) (int64, error) {
	return r.Get(ctx, assetID, accountID)
}

func (r *inMemoryBalanceRepo) Add(ctx context.Context, tx pgx.Tx, assetID int64, accountID uuid.UUID, delta int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := balanceKey{assetID, accountID}
	next := r.balances[key] + delta
	if next < 0 {
		return 0, fmt.Errorf("balance constraint violated")
	}
	r.balances[key] = next
	return next, nil
}

func (r *inMemoryBalanceRepo) SumByAsset(ctx context.Context, assetID int64) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var sum int64
	for key, bal := range r.balances {
		if key.assetID == assetID {
			sum += bal
		}
	}
	return sum, nil
}

func (r *inMemoryBalanceRepo) snapshot() func() {
	r.mu.RLock()
	saved := make(map[balanceKey]int64, len(r.balances))
	for key, bal := range r.balances {
		saved[key] = bal
	}
	r.mu.RUnlock()
	return func() {
		r.mu.Lock()
		r.balances = saved
		r.mu.Unlock()
	}
}

// --- In-Memory Holder Repo ---

type inMemoryHolderRepo struct {
	mu      sync.RWMutex
	holders map[int64]map[uuid.UUID]bool
	balRepo *inMemoryBalanceRepo
}

func newInMemoryHolderRepo(balRepo *inMemoryBalanceRepo) *inMemoryHolderRepo {
	return &inMemoryHolderRepo{holders: make(map[int64]map[uuid.UUID]bool), balRepo: balRepo}
}

func (r *inMemoryHolderRepo) Add(ctx context.Context, tx pgx.Tx, assetID int64, accountID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.holders[assetID] == nil {
		r.holders[assetID] = make(map[uuid.UUID]bool)
	}
	r.holders[assetID][accountID] = true
	return nil
}

func (r *inMemoryHolderRepo) Remove(ctx context.Context, tx pgx.Tx, assetID int64, accountID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.holders[assetID], accountID)
	return nil
}

func (r *inMemoryHolderRepo) ListByAsset(ctx context.Context, assetID int64, exclude []uuid.UUID) ([]domain.Holder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	excluded := make(map[uuid.UUID]bool, len(exclude))
	for _, id := range exclude {
		excluded[id] = true
	}
	var out []domain.Holder
	for accountID := range r.holders[assetID] {
		if excluded[accountID] {
			continue
		}
		bal, _ := r.balRepo.Get(ctx, assetID, accountID)
		out = append(out, domain.Holder{AccountID: accountID, Balance: bal})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AccountID.String() < out[j].AccountID.String()
	})
	return out, nil
}

func (r *inMemoryHolderRepo) snapshot() func() {
	r.mu.RLock()
	saved := make(map[int64]map[uuid.UUID]bool, len(r.holders))
	for assetID, members := range r.holders {
		cp := make(map[uuid.UUID]bool, len(members))
		for id, v := range members {
			cp[id] = v
		}
		saved[assetID] = cp
	}
	r.mu.RUnlock()
	return func() {
		r.mu.Lock()
		r.holders = saved
		r.mu.Unlock()
	}
}

// --- In-Memory Portfolio Repo ---

type inMemoryPortfolioRepo struct {
	mu      sync.RWMutex
	entries map[uuid.UUID][]int64
	balRepo *inMemoryBalanceRepo
}

func newInMemoryPortfolioRepo(balRepo *inMemoryBalanceRepo) *inMemoryPortfolioRepo {
	return &inMemoryPortfolioRepo{entries: make(map[uuid.UUID][]int64), balRepo: balRepo}
}

func (r *inMemoryPortfolioRepo) RecordPurchase(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, assetID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.entries[accountID] {
		if existing == assetID {
			return nil
		}
	}
	r.entries[accountID] = append(r.entries[accountID], assetID)
	return nil
}

func (r *inMemoryPortfolioRepo) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.PortfolioEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.PortfolioEntry, 0, len(r.entries[accountID]))
	for i, assetID := range r.entries[accountID] {
		bal, _ := r.balRepo.Get(ctx, assetID, accountID)
		out = append(out, domain.PortfolioEntry{AssetID: assetID, Position: int32(i), Balance: bal})
	}
	return out, nil
}

func (r *inMemoryPortfolioRepo) snapshot() func() {
	r.mu.RLock()
	saved := make(map[uuid.UUID][]int64, len(r.entries))
	for id, assets := range r.entries {
		saved[id] = append([]int64(nil), assets...)
	}
	r.mu.RUnlock()
	return func() {
		r.mu.Lock()
		r.entries = saved
		r.mu.Unlock()
	}
}

// --- In-Memory Treasury Repo ---

type inMemoryTreasuryRepo struct {
	mu      sync.RWMutex
	balance int64
}

func newInMemoryTreasuryRepo() *inMemoryTreasuryRepo {
	return &inMemoryTreasuryRepo{}
}

func (r *inMemoryTreasuryRepo) Balance(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.balance, nil
}

func (r *inMemoryTreasuryRepo) BalanceForUpdate(ctx context.Context, tx pgx.Tx) (int64, error) {
	return r.Balance(ctx)
}

func (r *inMemoryTreasuryRepo) Add(ctx context.Context, tx pgx.Tx, delta int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.balance+delta < 0 {
		return fmt.Errorf("treasury constraint violated")
	}
	r.balance += delta
	return nil
}

func (r *inMemoryTreasuryRepo) snapshot() func() {
	r.mu.RLock()
	saved := r.balance
	r.mu.RUnlock()
	return func() {
		r.mu.Lock()
		r.balance = saved
		r.mu.Unlock()
	}
}

// --- In-Memory Event Repo ---

type inMemoryEventRepo struct {
	mu     sync.RWMutex
	events []domain.LedgerEvent
}

func newInMemoryEventRepo() *inMemoryEventRepo {
	return &inMemoryEventRepo{}
}

func (r *inMemoryEventRepo) Append(ctx context.Context, tx pgx.Tx, event *domain.LedgerEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *event)
	return nil
}

func (r *inMemoryEventRepo) ListByAsset(ctx context.Context, assetID int64, limit int) ([]domain.LedgerEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.LedgerEvent
	for i := len(r.events) - 1; i >= 0 && len(out) < limit; i-- {
		e := r.events[i]
		if e.AssetID != nil && *e.AssetID == assetID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *inMemoryEventRepo) ListRecent(ctx context.Context, limit int) ([]domain.LedgerEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.LedgerEvent
	for i := len(r.events) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.events[i])
	}
	return out, nil
}

func (r *inMemoryEventRepo) snapshot() func() {
	r.mu.RLock()
	saved := append([]domain.LedgerEvent(nil), r.events...)
	r.mu.RUnlock()
	return func() {
		r.mu.Lock()
		r.events = saved
		r.mu.Unlock()
	}
}

// --- In-Memory Transactor ---

// restorer captures a repo's full state and hands back a func that puts
// it back.
type restorer interface {
	snapshot() func()
}

// inMemoryTransactor models transactional rollback over the in-memory
// repos: Begin snapshots every registered repo, Rollback restores the
// snapshots, Commit discards them. Transactions are serialized on the
// transactor mutex, so a rollback never clobbers another transaction's
// committed writes.
type inMemoryTransactor struct {
	mu    sync.Mutex
	repos []restorer
}

func newInMemoryTransactor(repos ...restorer) *inMemoryTransactor {
	return &inMemoryTransactor{repos: repos}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	restores := make([]func(), len(t.repos))
	for i, r := range t.repos {
		restores[i] = r.snapshot()
	}
	return &memTx{transactor: t, restores: restores}, nil
}

// memTx is the pgx.Tx handed out by inMemoryTransactor. Commit keeps the
// repo state as-is; Rollback restores the Begin-time snapshots. The
// deferred Rollback after a successful Commit is a no-op, matching pgx.
type memTx struct {
	noopTx
	transactor *inMemoryTransactor
	restores   []func()
	done       bool
}

func (t *memTx) Commit(ctx context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	t.transactor.mu.Unlock()
	return nil
}

func (t *memTx) Rollback(ctx context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	for i := len(t.restores) - 1; i >= 0; i-- {
		t.restores[i]()
	}
	t.done = true
	t.transactor.mu.Unlock()
	return nil
}

// noopTx supplies the pgx.Tx surface the services never exercise.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
