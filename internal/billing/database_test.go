package billing

import (
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Dhanashyamvk/Fintrax/internal/billparse"
)

var _ = Describe("BoltDB", func() {
	var (
		db     *BoltDB
		dbPath string
	)

	BeforeEach(func() {
		dbPath = filepath.Join(GinkgoT().TempDir(), "test.db")

		var err error
		db, err = NewBoltDB(dbPath)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		db.Close()
	})

	newBill := func(id string) *Bill {
		subtotal := 7.00
		return &Bill{
			ID:          id,
			Vendor:      "Joe's Cafe",
			Date:        "12/05/2024",
			Items:       []billparse.LineItem{{Name: "Coffee", Qty: 2, Price: 3.50}},
			Subtotal:    &subtotal,
			Tax:         0.70,
			Total:       7.70,
			PaymentMode: billparse.PaymentCash,
			RawText:     "Joe's Cafe\nCoffee 2 3.50\nTotal: 7.70",
			Filename:    id + "_receipt.jpg",
			ContentType: "image/jpeg",
			CreatedAt:   time.Date(2024, 5, 12, 9, 30, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 5, 12, 9, 30, 0, 0, time.UTC),
		}
	}

	Describe("SaveBill and GetBill", func() {
		It("should round-trip a bill", func() {
			Expect(db.SaveBill(newBill("bill-1"))).To(Succeed())

			got, err := db.GetBill("bill-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Vendor).To(Equal("Joe's Cafe"))
			Expect(got.Items).To(HaveLen(1))
			Expect(got.Items[0].Price).To(Equal(3.50))
			Expect(got.Subtotal).NotTo(BeNil())
			Expect(*got.Subtotal).To(Equal(7.00))
			Expect(got.PaymentMode).To(Equal(billparse.PaymentCash))
		})

		It("should preserve a nil subtotal", func() {
			bill := newBill("bill-2")
			bill.Subtotal = nil
			Expect(db.SaveBill(bill)).To(Succeed())

			got, err := db.GetBill("bill-2")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Subtotal).To(BeNil())
		})

		It("should overwrite an existing bill with the same ID", func() {
			bill := newBill("bill-1")
			Expect(db.SaveBill(bill)).To(Succeed())

			bill.Vendor = "Corrected Vendor"
			Expect(db.SaveBill(bill)).To(Succeed())

			got, err := db.GetBill("bill-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Vendor).To(Equal("Corrected Vendor"))
		})

		It("should return an error for a missing bill", func() {
			_, err := db.GetBill("nope")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("bill not found"))
		})
	})

	Describe("ListBills", func() {
		It("should return an empty slice when nothing is stored", func() {
			bills, err := db.ListBills()
			Expect(err).NotTo(HaveOccurred())
			Expect(bills).To(BeEmpty())
		})

		It("should return all stored bills", func() {
			Expect(db.SaveBill(newBill("bill-1"))).To(Succeed())
			Expect(db.SaveBill(newBill("bill-2"))).To(Succeed())

			bills, err := db.ListBills()
			Expect(err).NotTo(HaveOccurred())
			Expect(bills).To(HaveLen(2))
		})
	})

	Describe("DeleteBill", func() {
		It("should remove a stored bill", func() {
			Expect(db.SaveBill(newBill("bill-1"))).To(Succeed())
			Expect(db.DeleteBill("bill-1")).To(Succeed())

			_, err := db.GetBill("bill-1")
			Expect(err).To(HaveOccurred())
		})

		It("should not fail for a missing bill", func() {
			Expect(db.DeleteBill("nope")).To(Succeed())
		})
	})

	Describe("persistence", func() {
		It("should keep bills across close and reopen", func() {
			Expect(db.SaveBill(newBill("bill-1"))).To(Succeed())
			Expect(db.Close()).To(Succeed())

			reopened, err := NewBoltDB(dbPath)
			Expect(err).NotTo(HaveOccurred())
			defer reopened.Close()

			got, err := reopened.GetBill("bill-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Total).To(Equal(7.70))
		})
	})
})
