package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tokengate/ticketing-service/internal/config"
	"github.com/tokengate/ticketing-service/internal/domain"
)

const (
	testTxHash  = "0x" + "ab12cd34ef56ab12cd34ef56ab12cd34ef56ab12cd34ef56ab12cd34ef56ab12"
	testWalletA = "0x1111111111111111111111111111111111111111"
	testWalletB = "0x2222222222222222222222222222222222222222"
)

type ticketEnv struct {
	users        *fakeUserRepo
	events       *fakeEventRepo
	templates    *fakeTemplateRepo
	tickets      *fakeTicketRepo
	transactions *fakeTransactionRepo
	service      *TicketService
	event        *domain.Event
	template     *domain.TicketTemplate
}

func newTicketEnv(t *testing.T, cfg config.TicketingConfig) *ticketEnv {
	t.Helper()
	env := &ticketEnv{
		users:        newFakeUserRepo(),
		events:       newFakeEventRepo(),
		templates:    newFakeTemplateRepo(),
		tickets:      newFakeTicketRepo(),
		transactions: newFakeTransactionRepo(),
	}
	logger := zap.NewNop()
	identity := NewIdentityService(env.users, logger)
	env.service = NewTicketService(TicketDependencies{
		TicketRepo:      env.tickets,
		TemplateRepo:    env.templates,
		EventRepo:       env.events,
		TransactionRepo: env.transactions,
		Identity:        identity,
		TxManager:       fakeTxManager{},
		Verifier:        fakeVerifier{},
	}, cfg, logger)

	now := time.Now()
	env.event = &domain.Event{
		Name:      "Summer Fest",
		StartDate: now.Add(-time.Hour),
		EndDate:   now.Add(time.Hour),
	}
	require.NoError(t, env.events.Create(context.Background(), env.event))

	env.template = &domain.TicketTemplate{
		EventID:     env.event.ID,
		Name:        "General Admission",
		TotalSupply: 100,
		TierRank:    1,
	}
	require.NoError(t, env.templates.Create(context.Background(), env.template))
	return env
}

func (e *ticketEnv) mint(t *testing.T, tokenID, wallet string) *domain.Ticket {
	t.Helper()
	ticket, err := e.service.RecordMint(context.Background(), MintInput{
		TokenID:     tokenID,
		TemplateID:  e.template.ID,
		EventID:     e.event.ID,
		OwnerWallet: wallet,
		TxHash:      testTxHash,
	})
	require.NoError(t, err)
	return ticket
}

func TestRecordMint(t *testing.T) {
	env := newTicketEnv(t, config.TicketingConfig{})
	ticket := env.mint(t, "token-1", testWalletA)

	assert.Equal(t, domain.TicketStatusMinted, ticket.Status)
	assert.Equal(t, testWalletA, ticket.OwnerWallet)
	assert.Equal(t, testWalletA, ticket.OriginalOwner)
	assert.NotEmpty(t, ticket.QRHash)
	assert.False(t, ticket.IsCheckedIn)

	template, err := env.templates.GetByID(context.Background(), env.template.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, template.SoldCount)

	event, err := env.events.GetByID(context.Background(), env.event.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, event.TotalSold)

	txns, err := env.transactions.ListByTicket(context.Background(), ticket.ID)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, domain.TransactionTypeMint, txns[0].Type)
	require.NotNil(t, txns[0].ToWallet)
	assert.Equal(t, testWalletA, *txns[0].ToWallet)
}

func TestRecordMintNormalizesWallet(t *testing.T) {
	env := newTicketEnv(t, config.TicketingConfig{})
	ticket := env.mint(t, "token-1", strings.ToUpper(testWalletA[2:]))
	assert.Equal(t, testWalletA, ticket.OwnerWallet)
}

func TestRecordMintDuplicateToken(t *testing.T) {
	env := newTicketEnv(t, config.TicketingConfig{})
	env.mint(t, "token-1", testWalletA)

	_, err := env.service.RecordMint(context.Background(), MintInput{
		TokenID:     "token-1",
		TemplateID:  env.template.ID,
		EventID:     env.event.ID,
		OwnerWallet: testWalletB,
		TxHash:      testTxHash,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateMint)
}

func TestRecordMintSupplyExhausted(t *testing.T) {
	env := newTicketEnv(t, config.TicketingConfig{})
	env.template.TotalSupply = 1
	require.NoError(t, env.templates.Create(context.Background(), env.template))

	_, err := env.service.RecordMint(context.Background(), MintInput{
		TokenID:     "token-1",
		TemplateID:  env.template.ID,
		EventID:     env.event.ID,
		OwnerWallet: testWalletA,
		TxHash:      testTxHash,
	})
	require.NoError(t, err)

	_, err = env.service.RecordMint(context.Background(), MintInput{
		TokenID:     "token-2",
		TemplateID:  env.template.ID,
		EventID:     env.event.ID,
		OwnerWallet: testWalletB,
		TxHash:      testTxHash,
	})
	assert.ErrorIs(t, err, domain.ErrSupplyExhausted)
}

func TestRecordMintTemplateEventMismatch(t *testing.T) {
	env := newTicketEnv(t, config.TicketingConfig{})
	other := &domain.Event{
		Name:      "Other",
		StartDate: time.Now(),
		EndDate:   time.Now().Add(time.Hour),
	}
	require.NoError(t, env.events.Create(context.Background(), other))

	_, err := env.service.RecordMint(context.Background(), MintInput{
		TokenID:     "token-1",
		TemplateID:  env.template.ID,
		EventID:     other.ID,
		OwnerWallet: testWalletA,
		TxHash:      testTxHash,
	})
	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestRecordMintRejectsFailedVerification(t *testing.T) {
	env := newTicketEnv(t, config.TicketingConfig{})
	env.service.verifier = fakeVerifier{err: domain.ErrInvalidTxHash}

	_, err := env.service.RecordMint(context.Background(), MintInput{
		TokenID:     "token-1",
		TemplateID:  env.template.ID,
		EventID:     env.event.ID,
		OwnerWallet: testWalletA,
		TxHash:      "nonsense",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTxHash)
}

func TestQRHashUniquePerMint(t *testing.T) {
	env := newTicketEnv(t, config.TicketingConfig{})
	fixed := time.Now()
	env.service.now = func() time.Time { return fixed }

	first := env.mint(t, "token-1", testWalletA)
	second := env.mint(t, "token-2", testWalletA)
	assert.NotEqual(t, first.QRHash, second.QRHash)
}

func TestRecordTransfer(t *testing.T) {
	env := newTicketEnv(t, config.TicketingConfig{})
	minted := env.mint(t, "token-1", testWalletA)

	transferred, err := env.service.RecordTransfer(context.Background(), TransferInput{
		TokenID:    "token-1",
		FromWallet: testWalletA,
		ToWallet:   testWalletB,
		TxHash:     testTxHash,
	})
	require.NoError(t, err)
	assert.Equal(t, testWalletB, transferred.OwnerWallet)
	assert.Equal(t, testWalletA, transferred.OriginalOwner)
	assert.Equal(t, domain.TicketStatusTransferred, transferred.Status)
	assert.Equal(t, minted.QRHash, transferred.QRHash)

	txns, err := env.transactions.ListByTicket(context.Background(), transferred.ID)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, domain.TransactionTypeTransfer, txns[1].Type)
}

func TestRecordTransferPreservesCheckinState(t *testing.T) {
	env := newTicketEnv(t, config.TicketingConfig{})
	minted := env.mint(t, "token-1", testWalletA)

	at := time.Now().UTC()
	changed, err := env.tickets.ConfirmCheckin(context.Background(), minted.ID, "staff-1", at)
	require.NoError(t, err)
	require.True(t, changed)

	transferred, err := env.service.RecordTransfer(context.Background(), TransferInput{
		TokenID:    "token-1",
		FromWallet: testWalletA,
		ToWallet:   testWalletB,
		TxHash:     testTxHash,
	})
	require.NoError(t, err)
	assert.True(t, transferred.IsCheckedIn)
	require.NotNil(t, transferred.CheckedInAt)
	assert.Equal(t, at, *transferred.CheckedInAt)
}

func TestRecordTransferSoulbound(t *testing.T) {
	env := newTicketEnv(t, config.TicketingConfig{EnforceSoulbound: true})
	env.template.IsSoulbound = true
	require.NoError(t, env.templates.Create(context.Background(), env.template))
	env.mint(t, "token-1", testWalletA)

	_, err := env.service.RecordTransfer(context.Background(), TransferInput{
		TokenID:    "token-1",
		FromWallet: testWalletA,
		ToWallet:   testWalletB,
		TxHash:     testTxHash,
	})
	assert.ErrorIs(t, err, domain.ErrSoulboundTransfer)
}

func TestRecordTransferSoulboundNotEnforced(t *testing.T) {
	env := newTicketEnv(t, config.TicketingConfig{})
	env.template.IsSoulbound = true
	require.NoError(t, env.templates.Create(context.Background(), env.template))
	env.mint(t, "token-1", testWalletA)

	_, err := env.service.RecordTransfer(context.Background(), TransferInput{
		TokenID:    "token-1",
		FromWallet: testWalletA,
		ToWallet:   testWalletB,
		TxHash:     testTxHash,
	})
	assert.NoError(t, err)
}

func TestRecordBurnThenTerminalRejected(t *testing.T) {
	env := newTicketEnv(t, config.TicketingConfig{})
	env.mint(t, "token-1", testWalletA)

	burned, err := env.service.RecordBurn(context.Background(), "token-1", testTxHash)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusBurned, burned.Status)

	_, err = env.service.RecordCancel(context.Background(), "token-1", testTxHash)
	assert.ErrorIs(t, err, domain.ErrTerminalStatus)

	_, err = env.service.RecordTransfer(context.Background(), TransferInput{
		TokenID:    "token-1",
		FromWallet: testWalletA,
		ToWallet:   testWalletB,
		TxHash:     testTxHash,
	})
	assert.ErrorIs(t, err, domain.ErrTerminalStatus)
}

func TestListTicketsByOwner(t *testing.T) {
	env := newTicketEnv(t, config.TicketingConfig{})
	env.mint(t, "token-1", testWalletA)
	env.mint(t, "token-2", testWalletB)

	owner := strings.ToUpper(testWalletA[2:])
	tickets, err := env.service.ListTickets(context.Background(), TicketListFilter{OwnerWallet: &owner})
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, "token-1", tickets[0].TokenID)
}
