package billparse

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("extractSubtotal", func() {
	var (
		lines  []string
		items  []LineItem
		value  float64
		source amountSource
	)

	BeforeEach(func() {
		items = nil
	})

	JustBeforeEach(func() {
		value, source = extractSubtotal(lines, items)
	})

	When("an explicit subtotal line exists", func() {
		BeforeEach(func() {
			lines = []string{"Subtotal: $1,234.56", "Total: 1300.00"}
		})

		It("should return its value with thousands separators stripped", func() {
			Expect(value).To(Equal(1234.56))
		})

		It("should tag the result as keyword-matched", func() {
			Expect(source).To(Equal(amountFromKeyword))
		})
	})

	When("there is no subtotal line but items were extracted", func() {
		BeforeEach(func() {
			lines = []string{"Bread 2.00"}
			items = []LineItem{
				{Name: "Bread", Qty: 2, Price: 2.00},
				{Name: "Milk", Qty: 1, Price: 2.50},
			}
		})

		It("should derive the sum of qty times price", func() {
			Expect(value).To(Equal(6.50))
		})

		It("should tag the result as derived", func() {
			Expect(source).To(Equal(amountDerived))
		})
	})

	When("there are neither subtotal lines nor items", func() {
		BeforeEach(func() {
			lines = []string{"Thank you"}
		})

		It("should report the subtotal as missing", func() {
			Expect(source).To(Equal(amountMissing))
		})
	})
})

var _ = Describe("extractTax", func() {
	var (
		lines    []string
		subtotal float64
		value    float64
		source   amountSource
	)

	BeforeEach(func() {
		subtotal = 0
	})

	JustBeforeEach(func() {
		value, source = extractTax(lines, subtotal)
	})

	When("a tax line carries both a percentage and an amount", func() {
		BeforeEach(func() {
			lines = []string{"Tax 18% 45.00"}
		})

		It("should return the currency amount, not the percentage", func() {
			Expect(value).To(Equal(45.00))
			Expect(source).To(Equal(amountFromKeyword))
		})
	})

	When("the percentage on the tax line is larger than the amount", func() {
		BeforeEach(func() {
			lines = []string{"Tax 10% 0.70"}
		})

		It("should still pick the non-percentage number", func() {
			Expect(value).To(Equal(0.70))
		})
	})

	When("several numbers appear on the tax line", func() {
		BeforeEach(func() {
			lines = []string{"CGST 2.25 SGST 4.50"}
		})

		It("should take the maximum", func() {
			Expect(value).To(Equal(4.50))
		})
	})

	When("the tax line holds only a percentage", func() {
		BeforeEach(func() {
			lines = []string{"GST 10%"}
			subtotal = 7.00
		})

		It("should compute the tax from the subtotal", func() {
			Expect(value).To(Equal(0.70))
		})

		It("should tag the result as derived", func() {
			Expect(source).To(Equal(amountDerived))
		})
	})

	When("no tax evidence exists at all", func() {
		BeforeEach(func() {
			lines = []string{"Bread 2.00"}
		})

		It("should default to zero", func() {
			Expect(value).To(BeZero())
			Expect(source).To(Equal(amountDefaulted))
		})
	})
})

var _ = Describe("extractTotal", func() {
	var (
		lines         []string
		subtotal, tax float64
		value         float64
		source        amountSource
	)

	BeforeEach(func() {
		subtotal = 0
		tax = 0
	})

	JustBeforeEach(func() {
		value, source = extractTotal(lines, subtotal, tax)
	})

	When("an explicit total line exists", func() {
		BeforeEach(func() {
			lines = []string{"Subtotal: 7.00", "Total: 7.70"}
		})

		It("should not confuse the subtotal line for the total", func() {
			Expect(value).To(Equal(7.70))
			Expect(source).To(Equal(amountFromKeyword))
		})
	})

	When("the total line carries several numbers", func() {
		BeforeEach(func() {
			lines = []string{"Total: 2 items 19.99"}
		})

		It("should take the maximum", func() {
			Expect(value).To(Equal(19.99))
		})
	})

	When("no total line carries a number", func() {
		BeforeEach(func() {
			lines = []string{"Total due below"}
			subtotal = 7.00
			tax = 0.70
		})

		It("should derive subtotal plus tax", func() {
			Expect(value).To(Equal(7.70))
			Expect(source).To(Equal(amountDerived))
		})
	})
})

var _ = Describe("cleanNumberToken", func() {
	DescribeTable("cleaning raw tokens",
		func(tok string, expected float64, ok bool) {
			v, parsed := cleanNumberToken(tok)
			Expect(parsed).To(Equal(ok))
			if ok {
				Expect(v).To(Equal(expected))
			}
		},
		Entry("plain integer", "42", 42.0, true),
		Entry("decimal", "3.50", 3.50, true),
		Entry("currency prefix", "$12.99", 12.99, true),
		Entry("thousands separator", "1,234.56", 1234.56, true),
		Entry("letters only", "Coffee", 0.0, false),
		Entry("empty", "", 0.0, false),
		Entry("garbled multiple dots", "1.2.3", 0.0, false),
	)
})
