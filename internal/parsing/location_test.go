package parsing

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LocationValidator", func() {
	var (
		validator LocationValidator
		name      string
		verdict   Verdict
	)

	BeforeEach(func() {
		validator = NewLocationValidator()
	})

	JustBeforeEach(func() {
		verdict = validator.Validate(name)
	})

	When("the name is a plausible station name", func() {
		BeforeEach(func() {
			name = "Kbh H"
		})

		It("is valid", func() {
			Expect(verdict.Valid).To(BeTrue())
		})
	})

	When("the name carries Danish letters and punctuation", func() {
		BeforeEach(func() {
			name = "Høje Taastrup (øst)"
		})

		It("is valid", func() {
			Expect(verdict.Valid).To(BeTrue())
		})
	})

	When("the name is shorter than three characters", func() {
		BeforeEach(func() {
			name = "Kø"
		})

		It("is too short", func() {
			Expect(verdict.Valid).To(BeFalse())
			Expect(verdict.Reason).To(Equal("too short"))
		})
	})

	When("the name is longer than a hundred characters", func() {
		BeforeEach(func() {
			name = strings.Repeat("a", 110)
		})

		It("is too long", func() {
			Expect(verdict.Valid).To(BeFalse())
			Expect(verdict.Reason).To(Equal("too long"))
		})
	})

	When("half of the characters are symbols", func() {
		BeforeEach(func() {
			name = "ab!?cd#%"
		})

		It("has too many special characters", func() {
			Expect(verdict.Valid).To(BeFalse())
			Expect(verdict.Reason).To(Equal("too many special characters"))
		})
	})
})
