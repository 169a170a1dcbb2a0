package core_test

import (
	"ledgerhook/internal/core"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Normalize", func() {
	var (
		msg   core.WebhookMessage
		event core.NormalizedEvent
		err   error

		txHash   string
		bareHash string
		user     string
		bareUser string
	)

	BeforeEach(func() {
		txHash = crypto.Keccak256Hash([]byte("subscription-tx-1")).Hex()
		bareHash = strings.TrimPrefix(txHash, "0x")
		user = crypto.Keccak256Hash([]byte("user-1")).Hex()[:42]
		bareUser = strings.TrimPrefix(user, "0x")

		msg = core.WebhookMessage{
			Op: "INSERT",
			New: &core.EntityState{
				TransactionHash: txHash,
				User:            user,
				Amount:          "100",
			},
		}
	})

	JustBeforeEach(func() {
		event, err = core.Normalize(msg)
	})

	When("the payload is already canonical", func() {
		It("keeps the 0x prefixes and renders the amount", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(event.TxHash).To(Equal(txHash))
			Expect(event.User).To(Equal(user))
			Expect(event.Amount).To(Equal("100"))
		})
	})

	When("hashes carry the bytea escape prefix", func() {
		BeforeEach(func() {
			msg.New.TransactionHash = `\x` + bareHash
			msg.New.User = `\x` + bareUser
		})

		It("rewrites the prefix to 0x", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(event.TxHash).To(Equal(txHash))
			Expect(event.User).To(Equal(user))
		})
	})

	When("hashes arrive as bare hex", func() {
		BeforeEach(func() {
			msg.New.TransactionHash = bareHash
			msg.New.User = bareUser
		})

		It("prepends the 0x prefix", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(event.TxHash).To(Equal(txHash))
			Expect(event.User).To(Equal(user))
		})
	})

	When("the amount is a quoted decimal string", func() {
		BeforeEach(func() {
			msg.New.Amount = `"2500000000000000000"`
		})

		It("strips the quotes and keeps the digits", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(event.Amount).To(Equal("2500000000000000000"))
		})
	})

	When("the amount is a number beyond float64 precision", func() {
		BeforeEach(func() {
			msg.New.Amount = "115792089237316195423570985008687907853269984665640564039457584007913129639935"
		})

		It("preserves every digit", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(event.Amount).To(Equal("115792089237316195423570985008687907853269984665640564039457584007913129639935"))
		})
	})

	When("the amount number has a trailing fraction of zero", func() {
		BeforeEach(func() {
			msg.New.Amount = "12.0"
		})

		It("normalizes to the integer form", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(event.Amount).To(Equal("12"))
		})
	})

	When("the amount is fractional", func() {
		BeforeEach(func() {
			msg.New.Amount = "1.5"
		})

		It("rejects the payload", func() {
			Expect(err).To(MatchError(core.ErrInvalidAmount))
		})
	})

	When("the amount is negative", func() {
		BeforeEach(func() {
			msg.New.Amount = "-5"
		})

		It("rejects the payload", func() {
			Expect(err).To(MatchError(core.ErrInvalidAmount))
		})
	})

	When("a quoted amount contains non-digits", func() {
		BeforeEach(func() {
			msg.New.Amount = `"12abc"`
		})

		It("rejects the payload", func() {
			Expect(err).To(MatchError(core.ErrInvalidAmount))
		})
	})

	When("the envelope has no new entity", func() {
		BeforeEach(func() {
			msg.New = nil
		})

		It("reports the missing payload", func() {
			Expect(err).To(MatchError(core.ErrMissingPayload))
		})
	})

	When("the transaction hash is empty", func() {
		BeforeEach(func() {
			msg.New.TransactionHash = ""
		})

		It("reports the missing fields with the exact wording", func() {
			Expect(err).To(MatchError(core.ErrMissingFields))
			Expect(err.Error()).To(Equal("Missing required fields: transaction_hash, user, or amount"))
		})
	})

	When("the user is empty", func() {
		BeforeEach(func() {
			msg.New.User = ""
		})

		It("reports the missing fields", func() {
			Expect(err).To(MatchError(core.ErrMissingFields))
		})
	})

	When("the amount token is the JSON null literal", func() {
		BeforeEach(func() {
			msg.New.Amount = "null"
		})

		It("reports the missing fields", func() {
			Expect(err).To(MatchError(core.ErrMissingFields))
		})
	})

	When("the amount token is an empty string literal", func() {
		BeforeEach(func() {
			msg.New.Amount = `""`
		})

		It("reports the missing fields", func() {
			Expect(err).To(MatchError(core.ErrMissingFields))
		})
	})
})

var _ = Describe("NormalizeHex", func() {
	It("rewrites the bytea escape prefix", func() {
		Expect(core.NormalizeHex(`\xdeadbeef`)).To(Equal("0xdeadbeef"))
	})

	It("keeps an existing 0x prefix", func() {
		Expect(core.NormalizeHex("0xdeadbeef")).To(Equal("0xdeadbeef"))
	})

	It("prefixes bare hex", func() {
		Expect(core.NormalizeHex("deadbeef")).To(Equal("0xdeadbeef"))
	})
})
