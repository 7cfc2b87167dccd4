package pgsql

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/cuzdan_backend/internal/apperrors"
	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/cuzdan_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// fakeBatchResults replays one command tag or error per queued statement.
type fakeBatchResults struct {
	results []error
	tags    []string
	next    int
}

func (b *fakeBatchResults) Exec() (pgconn.CommandTag, error) {
	i := b.next
	b.next++
	if i < len(b.results) && b.results[i] != nil {
		return pgconn.CommandTag{}, b.results[i]
	}
	tag := "INSERT 0 1"
	if i < len(b.tags) {
		tag = b.tags[i]
	}
	return pgconn.NewCommandTag(tag), nil
}

func (b *fakeBatchResults) Query() (pgx.Rows, error) { return nil, errors.New("not implemented") }
func (b *fakeBatchResults) QueryRow() pgx.Row         { return nil }
func (b *fakeBatchResults) Close() error              { return nil }

type fakeTx struct {
	pgx.Tx
	batches     []*pgx.Batch
	results     *fakeBatchResults
	committed   bool
	rolledBack  bool
	rollbackErr error
}

func (t *fakeTx) SendBatch(_ context.Context, b *pgx.Batch) pgx.BatchResults {
	t.batches = append(t.batches, b)
	if t.results == nil {
		t.results = &fakeBatchResults{}
	}
	return t.results
}

func (t *fakeTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	t.rolledBack = true
	return t.rollbackErr
}

type fakeStarter struct {
	DBTX
	txs []*fakeTx
	tx  *fakeTx
}

func (s *fakeStarter) Begin(context.Context) (pgx.Tx, error) {
	tx := s.tx
	if tx == nil {
		tx = &fakeTx{}
	}
	s.txs = append(s.txs, tx)
	return tx, nil
}

type UnitOfWorkTestSuite struct {
	suite.Suite
	ctx     context.Context
	starter *fakeStarter
	uow     *unitOfWork
}

func (s *UnitOfWorkTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.starter = &fakeStarter{tx: &fakeTx{}}
	s.uow = newUnitOfWork(s.starter)
}

func (s *UnitOfWorkTestSuite) newAccount() *domain.Account {
	acc, err := domain.NewAccount("user-1", "Wallet", domain.Cash, domain.NewMoney(decimal.NewFromInt(100), domain.TRY), domain.AccountOptions{})
	s.Require().NoError(err)
	return acc
}

func (s *UnitOfWorkTestSuite) TestBeginTwice() {
	s.Require().NoError(s.uow.Begin(s.ctx))
	s.ErrorIs(s.uow.Begin(s.ctx), portsrepo.ErrTransactionAlreadyOpen)
}

func (s *UnitOfWorkTestSuite) TestCommitWithoutBegin() {
	s.ErrorIs(s.uow.Commit(s.ctx), portsrepo.ErrNoTransaction)
}

func (s *UnitOfWorkTestSuite) TestCommitFlushesQueuedWritesInOneBatch() {
	s.Require().NoError(s.uow.Begin(s.ctx))
	s.Equal(DBTX(s.starter.tx), s.uow.conn())

	acc := s.newAccount()
	s.Require().NoError(s.uow.Accounts().SaveAccount(s.ctx, acc))
	s.Require().NoError(s.uow.Accounts().UpdateAccount(s.ctx, acc))
	s.starter.tx.results = &fakeBatchResults{tags: []string{"INSERT 0 1", "UPDATE 1"}}

	s.Require().NoError(s.uow.Commit(s.ctx))
	s.Require().Len(s.starter.tx.batches, 1)
	s.Equal(2, s.starter.tx.batches[0].Len())
	s.True(s.starter.tx.committed)
	s.False(s.starter.tx.rolledBack)
	s.Nil(s.uow.tx)
	s.Empty(s.uow.pending)
}

func (s *UnitOfWorkTestSuite) TestCommitRollsBackWhenUpdateMissesRow() {
	s.Require().NoError(s.uow.Begin(s.ctx))
	s.Require().NoError(s.uow.Accounts().UpdateAccount(s.ctx, s.newAccount()))
	s.starter.tx.results = &fakeBatchResults{tags: []string{"UPDATE 0"}}

	err := s.uow.Commit(s.ctx)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.False(s.starter.tx.committed)
	s.True(s.starter.tx.rolledBack)
	s.Nil(s.uow.tx)
}

func (s *UnitOfWorkTestSuite) TestCommitMapsUniqueViolation() {
	s.Require().NoError(s.uow.Begin(s.ctx))
	s.Require().NoError(s.uow.Users().SaveUser(s.ctx, domain.NewUser("a@b.c", "hash", "A", "B", "")))
	s.starter.tx.results = &fakeBatchResults{results: []error{&pgconn.PgError{Code: pgUniqueViolation}}}

	err := s.uow.Commit(s.ctx)
	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.True(s.starter.tx.rolledBack)
}

func (s *UnitOfWorkTestSuite) TestSaveChangesWithoutTransactionUsesShortTransaction() {
	s.Require().NoError(s.uow.SaveChanges(s.ctx))
	s.Empty(s.starter.txs, "nothing queued, nothing begun")

	s.Require().NoError(s.uow.Accounts().SaveAccount(s.ctx, s.newAccount()))
	s.Require().NoError(s.uow.SaveChanges(s.ctx))
	s.Require().Len(s.starter.txs, 1)
	s.True(s.starter.tx.committed)
	s.Nil(s.uow.tx)
}

func (s *UnitOfWorkTestSuite) TestRollbackDiscardsPending() {
	s.Require().NoError(s.uow.Rollback(s.ctx))

	s.Require().NoError(s.uow.Begin(s.ctx))
	s.Require().NoError(s.uow.Accounts().SaveAccount(s.ctx, s.newAccount()))
	s.starter.tx.rollbackErr = pgx.ErrTxClosed

	s.Require().NoError(s.uow.Rollback(s.ctx))
	s.True(s.starter.tx.rolledBack)
	s.Empty(s.uow.pending)
	s.Nil(s.uow.tx)
	s.ErrorIs(s.uow.Commit(s.ctx), portsrepo.ErrNoTransaction)
}

func (s *UnitOfWorkTestSuite) TestRepositoriesAreCached() {
	s.Same(s.uow.Accounts(), s.uow.Accounts())
	s.Same(s.uow.Transactions(), s.uow.Transactions())
}

func TestUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}

func TestWhereLive(t *testing.T) {
	assert.Equal(t, "WHERE is_deleted = FALSE", whereLive(""))
	assert.Equal(t, "WHERE t.is_deleted = FALSE AND t.user_id = $1", whereLive("t", "t.user_id = $1"))
}

func TestArgList(t *testing.T) {
	var args argList
	assert.Equal(t, "$1", args.add("a"))
	assert.Equal(t, "$2", args.add(2))
	assert.Equal(t, []any{"a", 2}, args.args)
}
