package db_test

import (
	"context"
	"database/sql"
	"ledgerhook/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	ID     uint `gorm:"primaryKey"`
	TxHash string
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
	)

	BeforeEach(func() {
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.PostgresDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("MigrateTable", func() {
		var err error

		BeforeEach(func() {
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"subscription_entries\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})

		JustBeforeEach(func() {
			err = testDB.MigrateTable("subscription_entries", &Test{})
		})

		It("should create the named table", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("InsertInto", func() {
		BeforeEach(func() {
			mock.ExpectBegin()

			mock.ExpectQuery(`^INSERT INTO "subscription_entries" \("tx_hash","id"\) VALUES \(\$1,\$2\) RETURNING "id"$`).
				WithArgs("0xab12", 1).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

			mock.ExpectCommit()
		})

		It("should insert the record into the named table", func() {
			err := testDB.InsertInto(context.Background(), "subscription_entries", &Test{
				ID:     1,
				TxHash: "0xab12",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("GetAllFrom", func() {
		When("records exist", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "redemption_entries"`).
					WillReturnRows(sqlmock.NewRows([]string{"id", "tx_hash"}).
						AddRow(1, "0xab12").
						AddRow(2, "0xcd34"))
			})

			It("should return every record", func() {
				var results []Test
				err := testDB.GetAllFrom(context.Background(), "redemption_entries", &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(results[0].TxHash).To(Equal("0xab12"))
				Expect(results[1].TxHash).To(Equal("0xcd34"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("an error occurs during the query", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "redemption_entries"`).
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []Test
				err := testDB.GetAllFrom(context.Background(), "redemption_entries", &results)
				Expect(err).To(MatchError(ContainSubstring("getting records from")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetOneFrom", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "subscription_entries" WHERE tx_hash = \$1.*LIMIT \$2.*`).
					WithArgs("0xab12", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "tx_hash"}).
						AddRow(1, "0xab12"))
			})

			It("should return the correct record", func() {
				var result Test
				err := testDB.GetOneFrom(context.Background(), "subscription_entries", "tx_hash", "0xab12", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.TxHash).To(Equal("0xab12"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "subscription_entries" WHERE tx_hash = \$1.*`).
					WithArgs("0xghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneFrom(context.Background(), "subscription_entries", "tx_hash", "0xghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})
})
