package repository_test

import (
	"context"
	"errors"
	"time"

	"ledgerhook/internal/db"
	"ledgerhook/internal/repository"
	"ledgerhook/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LedgerRepository", func() {
	var (
		fakeStorage *fake.Storage
		repo        *repository.LedgerRepository
		ctx         context.Context

		fakeErr error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewLedgerRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("MigrateTables", func() {
		When("both migrations succeed", func() {
			It("migrates one table per ledger", func() {
				Expect(repo.MigrateTables()).To(Succeed())
				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(2))

				firstTable, _ := fakeStorage.MigrateTableArgsForCall(0)
				secondTable, _ := fakeStorage.MigrateTableArgsForCall(1)
				Expect(firstTable).To(Equal("subscription_entries"))
				Expect(secondTable).To(Equal("redemption_entries"))
			})
		})

		When("a migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(fakeErr)
			})

			It("stops and reports the error", func() {
				Expect(repo.MigrateTables()).To(MatchError(fakeErr))
				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
			})
		})
	})

	Describe("CreateEntry", func() {
		var entry repository.LedgerEntry

		BeforeEach(func() {
			entry = repository.LedgerEntry{
				ID:     "0190b43a-6d8f-7000-8000-000000000001",
				TxHash: "0xab12",
				User:   "0xcd34",
				Amount: "100",
			}
		})

		When("the insert succeeds", func() {
			BeforeEach(func() {
				fakeStorage.InsertIntoStub = func(_ context.Context, _ string, record any) error {
					e := record.(*repository.LedgerEntry)
					e.CreatedAt = time.Now()
					e.UpdatedAt = e.CreatedAt
					return nil
				}
			})

			It("writes to the ledger table and returns the stored entry", func() {
				created, err := repo.CreateEntry(ctx, repository.LedgerSubscription, entry)
				Expect(err).NotTo(HaveOccurred())
				Expect(created.ID).To(Equal(entry.ID))
				Expect(created.CreatedAt).NotTo(BeZero())

				Expect(fakeStorage.InsertIntoCallCount()).To(Equal(1))
				_, argTable, argRecord := fakeStorage.InsertIntoArgsForCall(0)
				Expect(argTable).To(Equal("subscription_entries"))
				Expect(argRecord.(*repository.LedgerEntry).TxHash).To(Equal("0xab12"))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.InsertIntoReturns(fakeErr)
			})

			It("reports the error", func() {
				_, err := repo.CreateEntry(ctx, repository.LedgerRedemption, entry)
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetAllEntries", func() {
		When("entries exist", func() {
			BeforeEach(func() {
				fakeStorage.GetAllFromStub = func(_ context.Context, _ string, dest any) error {
					entries := dest.(*[]repository.LedgerEntry)
					*entries = []repository.LedgerEntry{
						{ID: "id-1"},
						{ID: "id-2"},
					}
					return nil
				}
			})

			It("returns the entries from the ledger table", func() {
				entries, err := repo.GetAllEntries(ctx, repository.LedgerRedemption)
				Expect(err).NotTo(HaveOccurred())
				Expect(entries).To(HaveLen(2))

				_, argTable, _ := fakeStorage.GetAllFromArgsForCall(0)
				Expect(argTable).To(Equal("redemption_entries"))
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				fakeStorage.GetAllFromReturns(fakeErr)
			})

			It("reports the error", func() {
				_, err := repo.GetAllEntries(ctx, repository.LedgerSubscription)
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetEntryByTxHash", func() {
		When("an entry matches", func() {
			BeforeEach(func() {
				fakeStorage.GetOneFromStub = func(_ context.Context, _ string, _ string, _ any, dest any) error {
					e := dest.(*repository.LedgerEntry)
					e.ID = "id-1"
					e.TxHash = "0xab12"
					return nil
				}
			})

			It("queries the tx_hash column of the ledger table", func() {
				entry, err := repo.GetEntryByTxHash(ctx, repository.LedgerSubscription, "0xab12")
				Expect(err).NotTo(HaveOccurred())
				Expect(entry.ID).To(Equal("id-1"))

				_, argTable, argColumn, argValue, _ := fakeStorage.GetOneFromArgsForCall(0)
				Expect(argTable).To(Equal("subscription_entries"))
				Expect(argColumn).To(Equal("tx_hash"))
				Expect(argValue).To(Equal("0xab12"))
			})
		})

		When("no entry matches", func() {
			BeforeEach(func() {
				fakeStorage.GetOneFromReturns(db.ErrNotFound)
			})

			It("returns ErrEntryNotFound", func() {
				_, err := repo.GetEntryByTxHash(ctx, repository.LedgerRedemption, "0xmissing")
				Expect(err).To(MatchError(repository.ErrEntryNotFound))
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				fakeStorage.GetOneFromReturns(fakeErr)
			})

			It("reports the error", func() {
				_, err := repo.GetEntryByTxHash(ctx, repository.LedgerSubscription, "0xab12")
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Close", func() {
		It("closes the underlying storage", func() {
			fakeStorage.CloseReturns(nil)
			Expect(repo.Close()).To(Succeed())
			Expect(fakeStorage.CloseCallCount()).To(Equal(1))
		})
	})
})
