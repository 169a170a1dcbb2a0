package payload_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"ledgerhook/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Decoder", func() {
	var (
		decoder payload.Decoder
		req     *http.Request
		target  payload.WebhookRequest
		err     error
	)

	BeforeEach(func() {
		decoder = payload.Decoder{}
		target = payload.WebhookRequest{}
	})

	JustBeforeEach(func() {
		err = decoder.DecodeJSONPayload(req, &target)
	})

	When("the envelope is a full indexer delivery", func() {
		BeforeEach(func() {
			body := `{
				"op": "INSERT",
				"data_source": "indexer",
				"data": {
					"old": null,
					"new": {
						"amount": 100,
						"transaction_hash": "\\x7a69ab12",
						"user": "\\xf39fd6e5"
					}
				},
				"webhook_name": "subscription-webhook",
				"webhook_id": "wh-1",
				"id": "delivery-1",
				"entity": "subscription"
			}`
			req = httptest.NewRequest("POST", "/webhook/subscription", strings.NewReader(body))
		})

		It("decodes the fields the pipeline consumes", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(target.Op).To(Equal("INSERT"))
			Expect(target.Entity).To(Equal("subscription"))
			Expect(target.Data).NotTo(BeNil())
			Expect(target.Data.New).NotTo(BeNil())
			Expect(target.Data.New.TransactionHash).To(Equal(`\x7a69ab12`))
			Expect(string(target.Data.New.Amount)).To(Equal("100"))
		})
	})

	When("the envelope carries fields the service does not know", func() {
		BeforeEach(func() {
			body := `{"op":"INSERT","data":{"new":{"amount":"5","transaction_hash":"0x1","user":"0x2","block_number":99}},"brand_new_field":{"nested":true}}`
			req = httptest.NewRequest("POST", "/webhook/subscription", strings.NewReader(body))
		})

		It("ignores them instead of failing", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(string(target.Data.New.Amount)).To(Equal(`"5"`))
		})
	})

	When("op is missing", func() {
		BeforeEach(func() {
			body := `{"data":{"new":{"amount":1,"transaction_hash":"0x1","user":"0x2"}}}`
			req = httptest.NewRequest("POST", "/webhook/subscription", strings.NewReader(body))
		})

		It("fails validation", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("validating payload"))
		})
	})

	When("the body is not JSON", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/webhook/subscription", strings.NewReader("nope"))
		})

		It("fails decoding", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("decoding json payload"))
		})
	})
})

var _ = Describe("WebhookRequest", func() {
	Describe("ToMessage", func() {
		It("carries the raw amount token through unchanged", func() {
			req := payload.WebhookRequest{
				Op: "INSERT",
				Data: &payload.WebhookData{
					New: &payload.EntityState{
						TransactionHash: `\xab`,
						User:            "0xcd",
						Amount:          []byte(`"250"`),
					},
				},
			}

			msg := req.ToMessage()
			Expect(msg.Op).To(Equal("INSERT"))
			Expect(msg.New).NotTo(BeNil())
			Expect(msg.New.TransactionHash).To(Equal(`\xab`))
			Expect(msg.New.Amount).To(Equal(`"250"`))
		})

		It("leaves New nil when the envelope had no data", func() {
			msg := payload.WebhookRequest{Op: "INSERT"}.ToMessage()
			Expect(msg.New).To(BeNil())
		})

		It("leaves New nil when data.new is null", func() {
			msg := payload.WebhookRequest{Op: "DELETE", Data: &payload.WebhookData{}}.ToMessage()
			Expect(msg.New).To(BeNil())
		})
	})
})
