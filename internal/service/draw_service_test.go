package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"solana-lottery/internal/core/domain"
	"solana-lottery/internal/core/ports"
	"solana-lottery/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// memDeposits is an in-memory ports.DepositRepository.
type memDeposits struct {
	mu          sync.Mutex
	rows        []domain.Deposit
	deleteLimit int // >0 caps how many rows DeleteByIDs removes
}

func (m *memDeposits) Create(_ context.Context, d *domain.Deposit) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.Signature == d.Signature {
			return ports.ErrDuplicate
		}
	}
	m.rows = append(m.rows, *d)
	return nil
}

func (m *memDeposits) List(_ context.Context) ([]domain.Deposit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Deposit(nil), m.rows...), nil
}

func (m *memDeposits) SumAmount(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var total int64
	for _, r := range m.rows {
		total += r.Amount
	}
	return total, nil
}

func (m *memDeposits) DeleteByIDs(_ context.Context, ids []uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	drop := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	var kept []domain.Deposit
	var deleted int64
	for _, r := range m.rows {
		if drop[r.ID] && (m.deleteLimit == 0 || deleted < int64(m.deleteLimit)) {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	m.rows = kept
	return deleted, nil
}

func (m *memDeposits) CountByIDs(_ context.Context, ids []uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	want := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var n int64
	for _, r := range m.rows {
		if want[r.ID] {
			n++
		}
	}
	return n, nil
}

func (m *memDeposits) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

// memWinners is an in-memory ports.WinnerRepository.
type memWinners struct {
	mu      sync.Mutex
	rows    []domain.Winner
	failErr error
}

func (m *memWinners) Create(_ context.Context, w *domain.Winner) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	m.rows = append(m.rows, *w)
	return nil
}

func (m *memWinners) Latest(_ context.Context) (*domain.Winner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.rows) == 0 {
		return nil, nil
	}
	w := m.rows[len(m.rows)-1]
	return &w, nil
}

func (m *memWinners) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

type fixedPicker int

func (p fixedPicker) Pick(n int) (int, error) {
	if int(p) >= n {
		return 0, errors.New("index out of range")
	}
	return int(p), nil
}

type drawTestDeps struct {
	engine   *DrawEngine
	deposits *memDeposits
	winners  *memWinners
	chain    *mocks.MockChainClient
	wallet   *mocks.MockCustodialWallet
	lock     *mocks.MockDrawLock
}

func setupDrawEngine(t *testing.T, picker Picker, wallets ...string) *drawTestDeps {
	ctrl := gomock.NewController(t)
	d := &drawTestDeps{
		deposits: &memDeposits{},
		winners:  &memWinners{},
		chain:    mocks.NewMockChainClient(ctrl),
		wallet:   mocks.NewMockCustodialWallet(ctrl),
		lock:     mocks.NewMockDrawLock(ctrl),
	}
	for i, w := range wallets {
		d.deposits.rows = append(d.deposits.rows, domain.Deposit{
			ID:            uuid.New(),
			WalletAddress: w,
			Amount:        10_000_000,
			Signature:     uuid.NewString(),
			CreatedAt:     time.Unix(int64(1_800_000_000+i), 0),
		})
	}
	d.engine = NewDrawEngine(d.deposits, d.winners, d.chain, d.wallet, d.lock, picker, DrawConfig{
		NetworkFeeLamports: 5000,
		ConfirmTimeout:     time.Second,
		LockTTL:            time.Minute,
	}, zerolog.Nop())

	d.wallet.EXPECT().Address().Return(custodialAddr).AnyTimes()
	return d
}

func (d *drawTestDeps) expectLock() {
	d.lock.EXPECT().Acquire(gomock.Any(), time.Minute).Return("lock-token", nil)
	d.lock.EXPECT().Release(gomock.Any(), "lock-token").Return(nil)
}

func (d *drawTestDeps) expectPayout(to string, lamports uint64, status domain.ConfirmationStatus) {
	d.chain.EXPECT().GetBalance(gomock.Any(), custodialAddr).Return(lamports+5000, nil)
	d.chain.EXPECT().GetLatestBlockhash(gomock.Any()).Return(testBlockhash, nil)
	d.wallet.EXPECT().SignTransfer(to, lamports, testBlockhash).Return([]byte{1, 2, 3}, nil)
	d.chain.EXPECT().SubmitTransaction(gomock.Any(), []byte{1, 2, 3}).Return("payout-sig", nil)
	d.chain.EXPECT().ConfirmTransaction(gomock.Any(), "payout-sig", time.Second).Return(status, nil)
}

func TestDrawEngine_NoParticipants(t *testing.T) {
	d := setupDrawEngine(t, fixedPicker(0))
	d.expectLock()

	result, err := d.engine.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DrawOutcomeNoParticipants, result.Outcome)
	assert.Equal(t, "No participants", result.Message())
	assert.Zero(t, d.winners.len())
	assert.Equal(t, domain.DrawStateIdle, d.engine.State())
}

func TestDrawEngine_NoPot(t *testing.T) {
	d := setupDrawEngine(t, fixedPicker(0), walletA)
	d.deposits.rows[0].Amount = 0
	d.expectLock()

	result, err := d.engine.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DrawOutcomeNoPot, result.Outcome)
	assert.Equal(t, 1, d.deposits.len())
	assert.Zero(t, d.winners.len())
}

func TestDrawEngine_PaysWholePotAndClears(t *testing.T) {
	d := setupDrawEngine(t, fixedPicker(2), walletA, walletA, walletB)
	d.expectLock()
	d.expectPayout(walletB, 30_000_000, domain.ConfirmationConfirmed)

	result, err := d.engine.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DrawOutcomePaid, result.Outcome)
	require.NotNil(t, result.Winner)
	assert.Equal(t, walletB, result.Winner.WalletAddress)
	assert.Equal(t, int64(30_000_000), result.Winner.Amount)
	assert.Equal(t, "payout-sig", result.Winner.PayoutSignature)
	assert.True(t, result.Winner.Confirmed)
	assert.Equal(t, int64(3), result.Cleared)

	assert.Equal(t, 1, d.winners.len())
	assert.Zero(t, d.deposits.len())
	assert.Equal(t, domain.DrawStateIdle, d.engine.State())
}

func TestDrawEngine_TimedOutConfirmationRecordedUnconfirmed(t *testing.T) {
	d := setupDrawEngine(t, fixedPicker(0), walletA)
	d.expectLock()
	d.expectPayout(walletA, 10_000_000, domain.ConfirmationTimedOut)

	result, err := d.engine.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, result.Winner.Confirmed)
	assert.Equal(t, "Winner paid, confirmation pending", result.Message())
	assert.Equal(t, 1, d.winners.len())
	assert.Zero(t, d.deposits.len())
}

func TestDrawEngine_FailedPayoutAborts(t *testing.T) {
	d := setupDrawEngine(t, fixedPicker(0), walletA, walletB)
	d.expectLock()
	d.expectPayout(walletA, 20_000_000, domain.ConfirmationFailed)

	_, err := d.engine.Run(context.Background())
	assertAppError(t, err, "DRAW_005")
	assert.Zero(t, d.winners.len())
	assert.Equal(t, 2, d.deposits.len())
}

func TestDrawEngine_InvalidWinnerAddressAborts(t *testing.T) {
	d := setupDrawEngine(t, fixedPicker(1), walletA, "not-a-chain-address")
	d.expectLock()

	_, err := d.engine.Run(context.Background())
	assertAppError(t, err, "DRAW_004")
	assert.Zero(t, d.winners.len())
	assert.Equal(t, 2, d.deposits.len())
}

func TestDrawEngine_InsufficientCustodialBalanceAborts(t *testing.T) {
	d := setupDrawEngine(t, fixedPicker(0), walletA, walletB)
	d.expectLock()
	d.chain.EXPECT().GetBalance(gomock.Any(), custodialAddr).Return(uint64(20_004_999), nil)

	_, err := d.engine.Run(context.Background())
	assertAppError(t, err, "DRAW_001")
	assert.Zero(t, d.winners.len())
	assert.Equal(t, 2, d.deposits.len())
}

func TestDrawEngine_SubmitRejectedForFunds(t *testing.T) {
	d := setupDrawEngine(t, fixedPicker(0), walletA)
	d.expectLock()
	d.chain.EXPECT().GetBalance(gomock.Any(), custodialAddr).Return(uint64(1_000_000_000), nil)
	d.chain.EXPECT().GetLatestBlockhash(gomock.Any()).Return(testBlockhash, nil)
	d.wallet.EXPECT().SignTransfer(walletA, uint64(10_000_000), testBlockhash).Return([]byte{1}, nil)
	d.chain.EXPECT().SubmitTransaction(gomock.Any(), []byte{1}).Return("", ports.ErrInsufficientFunds)

	_, err := d.engine.Run(context.Background())
	assertAppError(t, err, "DRAW_001")
	assert.Equal(t, 1, d.deposits.len())
}

func TestDrawEngine_WinnerRecordFailureKeepsDeposits(t *testing.T) {
	d := setupDrawEngine(t, fixedPicker(0), walletA)
	d.winners.failErr = errors.New("db down")
	d.expectLock()
	d.expectPayout(walletA, 10_000_000, domain.ConfirmationConfirmed)

	_, err := d.engine.Run(context.Background())
	assertAppError(t, err, "DRAW_002")
	assert.Equal(t, 1, d.deposits.len())
}

func TestDrawEngine_PartialClearIsFatal(t *testing.T) {
	d := setupDrawEngine(t, fixedPicker(0), walletA, walletA, walletB)
	d.deposits.deleteLimit = 2
	d.expectLock()
	d.expectPayout(walletA, 30_000_000, domain.ConfirmationConfirmed)

	_, err := d.engine.Run(context.Background())
	assertAppError(t, err, "DRAW_002")
	assert.Contains(t, err.Error(), "payout-sig")
	assert.Equal(t, 1, d.winners.len())
	assert.Equal(t, 1, d.deposits.len())
}

func TestDrawEngine_KeepsDepositsArrivingDuringDraw(t *testing.T) {
	d := setupDrawEngine(t, fixedPicker(0), walletA)
	d.expectLock()
	d.chain.EXPECT().GetBalance(gomock.Any(), custodialAddr).Return(uint64(10_005_000), nil)
	d.chain.EXPECT().GetLatestBlockhash(gomock.Any()).Return(testBlockhash, nil)
	d.wallet.EXPECT().SignTransfer(walletA, uint64(10_000_000), testBlockhash).Return([]byte{1}, nil)
	d.chain.EXPECT().SubmitTransaction(gomock.Any(), []byte{1}).DoAndReturn(func(ctx context.Context, _ []byte) (string, error) {
		require.NoError(t, d.deposits.Create(ctx, &domain.Deposit{
			ID: uuid.New(), WalletAddress: walletB, Amount: 10_000_000, Signature: "late",
		}))
		return "payout-sig", nil
	})
	d.chain.EXPECT().ConfirmTransaction(gomock.Any(), "payout-sig", time.Second).Return(domain.ConfirmationConfirmed, nil)

	result, err := d.engine.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(10_000_000), result.Winner.Amount)

	left, err := d.deposits.List(context.Background())
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "late", left[0].Signature)
}

func TestDrawEngine_RejectsOverlappingRun(t *testing.T) {
	d := setupDrawEngine(t, fixedPicker(0), walletA)
	d.engine.state.Store(int32(domain.DrawStatePayoutSubmitted))

	_, err := d.engine.Run(context.Background())
	assertAppError(t, err, "DRAW_003")
	assert.Equal(t, domain.DrawStatePayoutSubmitted, d.engine.State())
}

func TestDrawEngine_RejectsWhenLockHeldElsewhere(t *testing.T) {
	d := setupDrawEngine(t, fixedPicker(0), walletA)
	d.lock.EXPECT().Acquire(gomock.Any(), time.Minute).Return("", nil)

	_, err := d.engine.Run(context.Background())
	assertAppError(t, err, "DRAW_003")
	assert.Equal(t, domain.DrawStateIdle, d.engine.State())
	assert.Equal(t, 1, d.deposits.len())
}

func TestDrawEngine_ConcurrentRunsPayOnce(t *testing.T) {
	d := setupDrawEngine(t, fixedPicker(0), walletA)
	release := make(chan struct{})
	d.lock.EXPECT().Acquire(gomock.Any(), time.Minute).Return("lock-token", nil)
	d.lock.EXPECT().Release(gomock.Any(), "lock-token").Return(nil)
	d.chain.EXPECT().GetBalance(gomock.Any(), custodialAddr).DoAndReturn(func(context.Context, string) (uint64, error) {
		<-release
		return 1_000_000_000, nil
	})
	d.chain.EXPECT().GetLatestBlockhash(gomock.Any()).Return(testBlockhash, nil)
	d.wallet.EXPECT().SignTransfer(walletA, uint64(10_000_000), testBlockhash).Return([]byte{1}, nil)
	d.chain.EXPECT().SubmitTransaction(gomock.Any(), []byte{1}).Return("payout-sig", nil)
	d.chain.EXPECT().ConfirmTransaction(gomock.Any(), "payout-sig", time.Second).Return(domain.ConfirmationConfirmed, nil)

	first := make(chan error, 1)
	go func() {
		_, err := d.engine.Run(context.Background())
		first <- err
	}()

	require.Eventually(t, func() bool {
		return d.engine.State() == domain.DrawStateWinnerSelected
	}, time.Second, time.Millisecond)

	_, err := d.engine.Run(context.Background())
	assertAppError(t, err, "DRAW_003")

	close(release)
	require.NoError(t, <-first)
	assert.Equal(t, 1, d.winners.len())
}

func TestCryptoPicker_WeightsByEntries(t *testing.T) {
	entries := []string{walletA, walletA, walletB}
	const rounds = 30_000

	counts := map[string]int{}
	for i := 0; i < rounds; i++ {
		idx, err := CryptoPicker{}.Pick(len(entries))
		require.NoError(t, err)
		counts[entries[idx]]++
	}

	share := float64(counts[walletA]) / rounds
	assert.InDelta(t, 2.0/3.0, share, 0.02)
}

func TestCryptoPicker_Empty(t *testing.T) {
	_, err := CryptoPicker{}.Pick(0)
	assert.Error(t, err)
}
