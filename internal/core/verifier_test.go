package core_test

import (
	"ledgerhook/internal/core"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SecretVerifier", func() {
	var verifier *core.SecretVerifier

	BeforeEach(func() {
		verifier = core.NewSecretVerifier("top-secret")
	})

	When("the provided secret matches", func() {
		It("authorizes the delivery", func() {
			Expect(verifier.Check("top-secret")).To(Succeed())
		})
	})

	When("the provided secret does not match", func() {
		It("rejects the delivery", func() {
			Expect(verifier.Check("wrong")).To(MatchError(core.ErrInvalidSecret))
		})
	})

	When("the provided secret is empty", func() {
		It("rejects the delivery", func() {
			Expect(verifier.Check("")).To(MatchError(core.ErrInvalidSecret))
		})
	})

	When("no secret is configured", func() {
		BeforeEach(func() {
			verifier = core.NewSecretVerifier("")
		})

		It("rejects every delivery", func() {
			Expect(verifier.Check("anything")).To(MatchError(core.ErrSecretNotConfigured))
			Expect(verifier.Check("")).To(MatchError(core.ErrSecretNotConfigured))
		})
	})
})
