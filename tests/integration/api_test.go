package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fractional-share-registry/config"
	httpHandler "fractional-share-registry/internal/adapter/http/handler"
	redisStorage "fractional-share-registry/internal/adapter/storage/redis"
	"fractional-share-registry/internal/core/domain"
	"fractional-share-registry/internal/core/ports"
	"fractional-share-registry/internal/service"
	"fractional-share-registry/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	operatorUsername = "operator"
	operatorPassword = "OperatorPass123!"
	testPassword     = "StrongPass123!"
)

// testApp builds a full application stack: real HTTP layer, middleware,
// handlers and services over in-memory repos and miniredis. Repos stay
// reachable so tests can assert ledger-level facts directly.
type testApp struct {
	server      *httptest.Server
	redis       *miniredis.Miniredis
	accountRepo *inMemoryAccountRepo
	balanceRepo *inMemoryBalanceRepo
	treasury    *inMemoryTreasuryRepo
	operatorID  uuid.UUID
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	priceCache := redisStorage.NewPriceCache(rdb)
	deliveryMarker := redisStorage.NewDeliveryMarker(rdb)

	sigSvc := service.NewHMACSignatureService()
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService("test-jwt-secret-key-32bytes!!", 24*time.Hour, "test-issuer")

	accountRepo := newInMemoryAccountRepo()
	assetRepo := newInMemoryAssetRepo()
	balanceRepo := newInMemoryBalanceRepo()
	holderRepo := newInMemoryHolderRepo(balanceRepo)
	portfolioRepo := newInMemoryPortfolioRepo(balanceRepo)
	treasuryRepo := newInMemoryTreasuryRepo()
	eventRepo := newInMemoryEventRepo()
	transactor := newInMemoryTransactor(
		accountRepo, assetRepo, balanceRepo, holderRepo,
		portfolioRepo, treasuryRepo, eventRepo,
	)

	log := logger.New("debug", false)

	gate := service.NewWhitelistGate(accountRepo)
	holderHook := service.NewHolderIndexHook(holderRepo)
	ledger := service.NewLedgerService(balanceRepo, gate, []ports.TransferHook{holderHook}, log)
	channel := service.NewWalletChannel(accountRepo, treasuryRepo)

	// Blank URL keeps the webhook notifier quiet
	notifier := service.NewWebhookNotifier(config.WebhookConfig{}, sigSvc, deliveryMarker, http.DefaultClient, log)

	marketSvc := service.NewMarketplaceService(
		accountRepo, assetRepo, balanceRepo, portfolioRepo, treasuryRepo, eventRepo,
		ledger, channel, priceCache, notifier, transactor, log,
	)
	querySvc := service.NewQueryService(
		accountRepo, assetRepo, balanceRepo, holderRepo, portfolioRepo, treasuryRepo, eventRepo,
		priceCache, 5*time.Minute, "Fractional Shares", "ipfs://collection", log,
	)
	authSvc := service.NewAuthService(accountRepo, hashSvc, tokenSvc)
	walletSvc := service.NewWalletService(accountRepo, transactor, log)

	// Seed the operator account
	passwordHash, err := hashSvc.Hash(operatorPassword)
	require.NoError(t, err)
	now := time.Now().UTC()
	operator := &domain.Account{
		ID:           uuid.New(),
		Username:     operatorUsername,
		PasswordHash: passwordHash,
		Whitelisted:  true,
		IsOperator:   true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, accountRepo.Create(t.Context(), operator))

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:     authSvc,
		MarketSvc:   marketSvc,
		QuerySvc:    querySvc,
		WalletSvc:   walletSvc,
		AccountRepo: accountRepo,
		TokenSvc:    tokenSvc,
		Logger:      log,
	})

	return &testApp{
		server:      httptest.NewServer(router),
		redis:       mr,
		accountRepo: accountRepo,
		balanceRepo: balanceRepo,
		treasury:    treasuryRepo,
		operatorID:  operator.ID,
	}
}

func (a *testApp) close() {
	a.server.Close()
	a.redis.Close()
}

// --- Integration Tests ---

func TestIntegration_RegisterAndLogin(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	status, body := app.postJSON(t, "", "/api/v1/auth/register", map[string]string{
		"username": "alice",
		"password": testPassword,
	})
	assert.Equal(t, http.StatusCreated, status)
	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["account_id"])
	assert.Equal(t, false, data["whitelisted"])

	status, body = app.postJSON(t, "", "/api/v1/auth/login", map[string]string{
		"username": "alice",
		"password": testPassword,
	})
	assert.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body["data"].(map[string]interface{})["token"])
}

func TestIntegration_LoginWrongCredentials(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	status, _ := app.postJSON(t, "", "/api/v1/auth/login", map[string]string{
		"username": "nobody",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestIntegration_DuplicateUsername(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	reg := map[string]string{"username": "alice", "password": testPassword}
	status, _ := app.postJSON(t, "", "/api/v1/auth/register", reg)
	assert.Equal(t, http.StatusCreated, status)

	status, body := app.postJSON(t, "", "/api/v1/auth/register", reg)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "AUTH_002", body["error_code"])
}

func TestIntegration_RegisterAssets_IssuesFullSupplyToOperator(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	opToken := app.login(t, operatorUsername, operatorPassword)

	status, body := app.postJSON(t, opToken, "/api/v1/assets", map[string]interface{}{
		"assets": []map[string]interface{}{
			{"price_per_share": 100, "uri": "ipfs://QmAsset1"},
			{"price_per_share": 250},
		},
	})
	require.Equal(t, http.StatusCreated, status)
	assets := body["data"].([]interface{})
	require.Len(t, assets, 2)
	assert.Equal(t, float64(1), assets[0].(map[string]interface{})["id"])
	assert.Equal(t, float64(2), assets[1].(map[string]interface{})["id"])

	// The full fixed supply sits with the operator
	supply, err := app.balanceRepo.Get(t.Context(), 1, app.operatorID)
	require.NoError(t, err)
	assert.Equal(t, domain.TotalShares, supply)
}

func TestIntegration_RegisterAssets_RequiresOperator(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token := app.registerAndLogin(t, "alice")
	status, body := app.postJSON(t, token, "/api/v1/assets", map[string]interface{}{
		"assets": []map[string]interface{}{{"price_per_share": 100}},
	})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "AUTH_004", body["error_code"])
}

func TestIntegration_RegisterAssets_ZeroPriceRejected(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	opToken := app.login(t, operatorUsername, operatorPassword)
	status, _ := app.postJSON(t, opToken, "/api/v1/assets", map[string]interface{}{
		"assets": []map[string]interface{}{{"price_per_share": 0}},
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestIntegration_Purchase_ExactPayment(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	opToken := app.login(t, operatorUsername, operatorPassword)
	app.registerAsset(t, opToken, 100)

	token := app.registerAndLogin(t, "buyer")
	buyerID := app.whitelist(t, opToken, "buyer")
	app.topup(t, token, 50_000)

	status, body := app.postJSON(t, token, "/api/v1/market/purchase", map[string]interface{}{
		"items":        []map[string]interface{}{{"asset_id": 1, "amount": 300}},
		"payment_sent": 30_000,
	})
	require.Equal(t, http.StatusCreated, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(30_000), data["total_cost"])
	assert.Equal(t, float64(0), data["refunded"])

	// Wallet debited, treasury credited, shares moved
	status, body = app.getJSON(t, token, "/api/v1/wallet/balance")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(20_000), body["data"].(map[string]interface{})["balance"])

	treasury, err := app.treasury.Balance(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(30_000), treasury)

	bal, err := app.balanceRepo.Get(t.Context(), 1, buyerID)
	require.NoError(t, err)
	assert.Equal(t, int64(300), bal)

	// Conservation: every share of the asset is accounted for
	sum, err := app.balanceRepo.SumByAsset(t.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.TotalShares, sum)
}

func TestIntegration_Purchase_OverpaymentRefunded(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	opToken := app.login(t, operatorUsername, operatorPassword)
	app.registerAsset(t, opToken, 100)

	token := app.registerAndLogin(t, "buyer")
	app.whitelist(t, opToken, "buyer")
	app.topup(t, token, 50_000)

	status, body := app.postJSON(t, token, "/api/v1/market/purchase", map[string]interface{}{
		"items":        []map[string]interface{}{{"asset_id": 1, "amount": 300}},
		"payment_sent": 30_050,
	})
	require.Equal(t, http.StatusCreated, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(30_000), data["total_cost"])
	assert.Equal(t, float64(50), data["refunded"])

	// Only the cost stays collected
	status, body = app.getJSON(t, token, "/api/v1/wallet/balance")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(20_000), body["data"].(map[string]interface{})["balance"])
}

func TestIntegration_Purchase_InsufficientPaymentLeavesStateUntouched(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	opToken := app.login(t, operatorUsername, operatorPassword)
	app.registerAsset(t, opToken, 100)

	token := app.registerAndLogin(t, "buyer")
	buyerID := app.whitelist(t, opToken, "buyer")
	app.topup(t, token, 50_000)

	status, body := app.postJSON(t, token, "/api/v1/market/purchase", map[string]interface{}{
		"items":        []map[string]interface{}{{"asset_id": 1, "amount": 300}},
		"payment_sent": 29_999,
	})
	assert.Equal(t, http.StatusPaymentRequired, status)
	assert.Equal(t, "MKT_002", body["error_code"])

	// No shares moved, no money collected
	bal, err := app.balanceRepo.Get(t.Context(), 1, buyerID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), bal)
	supply, err := app.balanceRepo.Get(t.Context(), 1, app.operatorID)
	require.NoError(t, err)
	assert.Equal(t, domain.TotalShares, supply)
	treasury, err := app.treasury.Balance(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(0), treasury)

	// Registry entries rolled back too: the portfolio write made while
	// validating the batch must not survive the failed purchase
	status, body = app.getJSON(t, token, "/api/v1/portfolio")
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["data"])
	status, body = app.getJSON(t, "", "/api/v1/assets/1/holders")
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["data"])
}

func TestIntegration_Purchase_CostOverflowRejected(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	opToken := app.login(t, operatorUsername, operatorPassword)
	app.registerAsset(t, opToken, 1<<61)

	token := app.registerAndLogin(t, "buyer")
	buyerID := app.whitelist(t, opToken, "buyer")

	// 8 * 2^61 wraps int64 to zero; without an overflow guard a zero
	// payment would cover the "cost" and release the shares for free.
	status, body := app.postJSON(t, token, "/api/v1/market/purchase", map[string]interface{}{
		"items":        []map[string]interface{}{{"asset_id": 1, "amount": 8}},
		"payment_sent": 0,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "MKT_007", body["error_code"])

	bal, err := app.balanceRepo.Get(t.Context(), 1, buyerID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), bal)
	supply, err := app.balanceRepo.Get(t.Context(), 1, app.operatorID)
	require.NoError(t, err)
	assert.Equal(t, domain.TotalShares, supply)
}

func TestIntegration_Purchase_UnregisteredAssetAbortsBatch(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	opToken := app.login(t, operatorUsername, operatorPassword)
	app.registerAsset(t, opToken, 100)

	token := app.registerAndLogin(t, "buyer")
	app.whitelist(t, opToken, "buyer")
	app.topup(t, token, 50_000)

	status, body := app.postJSON(t, token, "/api/v1/market/purchase", map[string]interface{}{
		"items": []map[string]interface{}{
			{"asset_id": 99, "amount": 10},
			{"asset_id": 1, "amount": 300},
		},
		"payment_sent": 50_000,
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "REG_001", body["error_code"])

	// The valid pair did not settle either
	supply, err := app.balanceRepo.Get(t.Context(), 1, app.operatorID)
	require.NoError(t, err)
	assert.Equal(t, domain.TotalShares, supply)
}

func TestIntegration_Purchase_DuplicatePairsCannotOversell(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	opToken := app.login(t, operatorUsername, operatorPassword)
	app.registerAsset(t, opToken, 1)

	token := app.registerAndLogin(t, "buyer")
	app.whitelist(t, opToken, "buyer")
	app.topup(t, token, 50_000)

	status, body := app.postJSON(t, token, "/api/v1/market/purchase", map[string]interface{}{
		"items": []map[string]interface{}{
			{"asset_id": 1, "amount": 6_000},
			{"asset_id": 1, "amount": 6_000},
		},
		"payment_sent": 12_000,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "MKT_001", body["error_code"])
}

func TestIntegration_TransferAndBurn(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	opToken := app.login(t, operatorUsername, operatorPassword)
	app.registerAsset(t, opToken, 100)

	aliceToken := app.registerAndLogin(t, "alice")
	aliceID := app.whitelist(t, opToken, "alice")
	app.registerAndLogin(t, "bob")
	bobID := app.whitelist(t, opToken, "bob")
	app.topup(t, aliceToken, 50_000)

	status, _ := app.postJSON(t, aliceToken, "/api/v1/market/purchase", map[string]interface{}{
		"items":        []map[string]interface{}{{"asset_id": 1, "amount": 300}},
		"payment_sent": 30_000,
	})
	require.Equal(t, http.StatusCreated, status)

	// Peer transfer
	status, _ = app.postJSON(t, aliceToken, "/api/v1/market/transfer", map[string]interface{}{
		"to":       bobID.String(),
		"asset_id": 1,
		"amount":   100,
	})
	require.Equal(t, http.StatusOK, status)

	bal, err := app.balanceRepo.Get(t.Context(), 1, bobID)
	require.NoError(t, err)
	assert.Equal(t, int64(100), bal)

	// Burn the rest: supply shrinks but the burn row keeps the sum intact
	status, _ = app.postJSON(t, aliceToken, "/api/v1/market/transfer", map[string]interface{}{
		"to":       domain.BurnAccount.String(),
		"asset_id": 1,
		"amount":   200,
	})
	require.Equal(t, http.StatusOK, status)

	bal, err = app.balanceRepo.Get(t.Context(), 1, aliceID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), bal)
	burned, err := app.balanceRepo.Get(t.Context(), 1, domain.BurnAccount)
	require.NoError(t, err)
	assert.Equal(t, int64(200), burned)
	sum, err := app.balanceRepo.SumByAsset(t.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.TotalShares, sum)

	// Holders shows bob but no longer alice; the burn account never appears
	status, body := app.getJSON(t, "", "/api/v1/assets/1/holders")
	require.Equal(t, http.StatusOK, status)
	holders := body["data"].([]interface{})
	require.Len(t, holders, 1)
	assert.Equal(t, bobID.String(), holders[0].(map[string]interface{})["account_id"])

	// Portfolio keeps the divested asset at balance zero
	status, body = app.getJSON(t, aliceToken, "/api/v1/portfolio")
	require.Equal(t, http.StatusOK, status)
	entries := body["data"].([]interface{})
	require.Len(t, entries, 1)
	entry := entries[0].(map[string]interface{})
	assert.Equal(t, float64(1), entry["asset_id"])
	assert.Equal(t, float64(0), entry["balance"])
}

func TestIntegration_Transfer_RejectsUnwhitelistedReceiver(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	opToken := app.login(t, operatorUsername, operatorPassword)
	app.registerAsset(t, opToken, 100)

	aliceToken := app.registerAndLogin(t, "alice")
	app.whitelist(t, opToken, "alice")
	app.registerAndLogin(t, "bob") // never whitelisted
	bob, err := app.accountRepo.GetByUsername(t.Context(), "bob")
	require.NoError(t, err)
	app.topup(t, aliceToken, 50_000)

	status, _ := app.postJSON(t, aliceToken, "/api/v1/market/purchase", map[string]interface{}{
		"items":        []map[string]interface{}{{"asset_id": 1, "amount": 100}},
		"payment_sent": 10_000,
	})
	require.Equal(t, http.StatusCreated, status)

	status, body := app.postJSON(t, aliceToken, "/api/v1/market/transfer", map[string]interface{}{
		"to":       bob.ID.String(),
		"asset_id": 1,
		"amount":   50,
	})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "MKT_004", body["error_code"])
	assert.Contains(t, body["message"], "receiver")
}

func TestIntegration_SetPrices_TakesEffect(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	opToken := app.login(t, operatorUsername, operatorPassword)
	app.registerAsset(t, opToken, 100)

	status, _ := app.putJSON(t, opToken, "/api/v1/assets/prices", map[string]interface{}{
		"updates": []map[string]interface{}{{"asset_id": 1, "price": 175}},
	})
	require.Equal(t, http.StatusOK, status)

	status, body := app.getJSON(t, "", "/api/v1/assets/1/price")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(175), body["data"].(map[string]interface{})["price"])
}

func TestIntegration_Withdraw_DrainsTreasuryOnce(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	opToken := app.login(t, operatorUsername, operatorPassword)
	app.registerAsset(t, opToken, 100)

	token := app.registerAndLogin(t, "buyer")
	app.whitelist(t, opToken, "buyer")
	app.topup(t, token, 50_000)

	status, _ := app.postJSON(t, token, "/api/v1/market/purchase", map[string]interface{}{
		"items":        []map[string]interface{}{{"asset_id": 1, "amount": 300}},
		"payment_sent": 30_000,
	})
	require.Equal(t, http.StatusCreated, status)

	status, body := app.postJSON(t, opToken, "/api/v1/treasury/withdraw", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(30_000), body["data"].(map[string]interface{})["amount"])

	// Second withdrawal finds nothing
	status, body = app.postJSON(t, opToken, "/api/v1/treasury/withdraw", nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "MKT_005", body["error_code"])
}

func TestIntegration_EventsAndCapabilities(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	opToken := app.login(t, operatorUsername, operatorPassword)
	app.registerAsset(t, opToken, 100)

	status, body := app.getJSON(t, "", "/api/v1/events")
	require.Equal(t, http.StatusOK, status)
	events := body["data"].([]interface{})
	require.NotEmpty(t, events)
	assert.Equal(t, string(domain.EventAssetsRegistered), events[0].(map[string]interface{})["type"])

	status, body = app.getJSON(t, "", "/api/v1/capabilities")
	require.Equal(t, http.StatusOK, status)
	caps := body["data"].(map[string]interface{})
	assert.Equal(t, float64(domain.TotalShares), caps["shares_per_asset"])
	assert.Equal(t, true, caps["fixed_supply"])
	assert.Equal(t, true, caps["royalty_semantics"])

	status, body = app.getJSON(t, "", "/api/v1/collection")
	require.Equal(t, http.StatusOK, status)
	info := body["data"].(map[string]interface{})
	assert.Equal(t, "Fractional Shares", info["name"])
	assert.Equal(t, float64(1), info["total_assets"])
}

func TestIntegration_JWT_Unauthorized(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	status, _ := app.getJSON(t, "", "/api/v1/wallet/balance")
	assert.Equal(t, http.StatusUnauthorized, status)
}

// --- Helpers ---

func (a *testApp) doJSON(t *testing.T, method, token, path string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, a.server.URL+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &body), "body: %s", string(raw))
	}
	return resp.StatusCode, body
}

func (a *testApp) postJSON(t *testing.T, token, path string, payload interface{}) (int, map[string]interface{}) {
	return a.doJSON(t, http.MethodPost, token, path, payload)
}

func (a *testApp) putJSON(t *testing.T, token, path string, payload interface{}) (int, map[string]interface{}) {
	return a.doJSON(t, http.MethodPut, token, path, payload)
}

func (a *testApp) getJSON(t *testing.T, token, path string) (int, map[string]interface{}) {
	return a.doJSON(t, http.MethodGet, token, path, nil)
}

func (a *testApp) login(t *testing.T, username, password string) string {
	t.Helper()
	status, body := a.postJSON(t, "", "/api/v1/auth/login", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, status)
	return body["data"].(map[string]interface{})["token"].(string)
}

func (a *testApp) registerAndLogin(t *testing.T, username string) string {
	t.Helper()
	status, _ := a.postJSON(t, "", "/api/v1/auth/register", map[string]string{
		"username": username,
		"password": testPassword,
	})
	require.Equal(t, http.StatusCreated, status)
	return a.login(t, username, testPassword)
}

func (a *testApp) registerAsset(t *testing.T, opToken string, price int64) {
	t.Helper()
	status, _ := a.postJSON(t, opToken, "/api/v1/assets", map[string]interface{}{
		"assets": []map[string]interface{}{{"price_per_share": price}},
	})
	require.Equal(t, http.StatusCreated, status)
}

func (a *testApp) whitelist(t *testing.T, opToken, username string) uuid.UUID {
	t.Helper()
	account, err := a.accountRepo.GetByUsername(t.Context(), username)
	require.NoError(t, err)
	require.NotNil(t, account)
	status, _ := a.putJSON(t, opToken, "/api/v1/accounts/"+account.ID.String()+"/whitelist", map[string]interface{}{
		"whitelisted": true,
	})
	require.Equal(t, http.StatusOK, status)
	return account.ID
}

func (a *testApp) topup(t *testing.T, token string, amount int64) {
	t.Helper()
	status, _ := a.postJSON(t, token, "/api/v1/wallet/topup", map[string]interface{}{
		"amount": amount,
	})
	require.Equal(t, http.StatusOK, status)
}
