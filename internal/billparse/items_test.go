package billparse

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("extractItems", func() {
	var (
		lines []string
		items []LineItem
	)

	JustBeforeEach(func() {
		items = extractItems(lines)
	})

	When("a line has a single trailing price", func() {
		BeforeEach(func() {
			lines = []string{"Milk 2.50"}
		})

		It("should default the quantity to one", func() {
			Expect(items).To(ConsistOf(LineItem{Name: "Milk", Qty: 1, Price: 2.50}))
		})
	})

	When("a line leads with a quantity column", func() {
		BeforeEach(func() {
			lines = []string{"2 Coffee 3.50"}
		})

		It("should treat the trailing number as the line total", func() {
			Expect(items).To(ConsistOf(LineItem{Name: "Coffee", Qty: 2, Price: 1.75}))
		})
	})

	When("the quantity follows the name", func() {
		BeforeEach(func() {
			lines = []string{"Coffee 2 3.50"}
		})

		It("should treat the trailing number as the unit price", func() {
			Expect(items).To(ConsistOf(LineItem{Name: "Coffee", Qty: 2, Price: 3.50}))
		})
	})

	When("a line carries quantity, unit price and line total", func() {
		BeforeEach(func() {
			lines = []string{"3 Pen 10.00 30.00"}
		})

		It("should take the second number as the unit price", func() {
			Expect(items).To(ConsistOf(LineItem{Name: "Pen", Qty: 3, Price: 10.00}))
		})
	})

	When("the leading number does not look like a quantity", func() {
		BeforeEach(func() {
			lines = []string{"Candles 2.50 5.00"}
		})

		It("should take the first number as price and derive the quantity", func() {
			Expect(items).To(ConsistOf(LineItem{Name: "Candles", Qty: 2, Price: 2.50}))
		})
	})

	When("three numbers appear and the first is implausibly large", func() {
		BeforeEach(func() {
			lines = []string{"Bulk box 150 2.00 300.00"}
		})

		It("should use the second-to-last number as the price and default the quantity", func() {
			Expect(items).To(ConsistOf(LineItem{Name: "Bulk box", Qty: 1, Price: 2.00}))
		})
	})

	When("a line holds only a bare large integer", func() {
		BeforeEach(func() {
			lines = []string{"Reference 20250001"}
		})

		It("should not produce an item", func() {
			Expect(items).To(BeEmpty())
		})
	})

	When("a large lone number carries a thousands separator", func() {
		BeforeEach(func() {
			lines = []string{"Television 45,999"}
		})

		It("should still be treated as a price", func() {
			Expect(items).To(ConsistOf(LineItem{Name: "Television", Qty: 1, Price: 45999}))
		})
	})

	When("a line matches a financial keyword", func() {
		BeforeEach(func() {
			lines = []string{"Subtotal 100.00", "Total: 118.00", "GST 18.00"}
		})

		It("should never produce items from structural lines", func() {
			Expect(items).To(BeEmpty())
		})
	})

	When("a line matches the header-noise pattern", func() {
		BeforeEach(func() {
			lines = []string{"call 555 0100 phone orders"}
		})

		It("should be rejected", func() {
			Expect(items).To(BeEmpty())
		})
	})

	When("a line has numbers but no textual tokens", func() {
		BeforeEach(func() {
			lines = []string{"$4.50"}
		})

		It("should be dropped for lack of a name", func() {
			Expect(items).To(BeEmpty())
		})
	})

	When("a line has no numbers", func() {
		BeforeEach(func() {
			lines = []string{"Thank you for shopping"}
		})

		It("should be skipped", func() {
			Expect(items).To(BeEmpty())
		})
	})

	When("currency symbols wrap the price", func() {
		BeforeEach(func() {
			lines = []string{"Sandwich ₹120.00"}
		})

		It("should strip them from the name and keep the price", func() {
			Expect(items).To(ConsistOf(LineItem{Name: "Sandwich", Qty: 1, Price: 120.00}))
		})
	})

	When("several item lines appear", func() {
		BeforeEach(func() {
			lines = []string{"Bread 2.00", "Milk 2.50", "Butter 4.75"}
		})

		It("should preserve their order of appearance", func() {
			Expect(items).To(HaveLen(3))
			Expect(items[0].Name).To(Equal("Bread"))
			Expect(items[1].Name).To(Equal("Milk"))
			Expect(items[2].Name).To(Equal("Butter"))
		})
	})
})
