package billing

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const bucketName = "bills"

// DB defines the interface for database operations
type DB interface {
	// SaveBill saves a bill to the database
	SaveBill(bill *Bill) error

	// GetBill retrieves a bill by ID
	GetBill(id string) (*Bill, error)

	// ListBills returns all bills
	ListBills() ([]*Bill, error)

	// DeleteBill removes a bill from the database
	DeleteBill(id string) error

	// Close closes the database connection
	Close() error
}

// BoltDB implements the DB interface using BoltDB
type BoltDB struct {
	db *bbolt.DB
}

// NewBoltDB creates a new BoltDB instance
func NewBoltDB(path string) (*BoltDB, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening boltdb: %w", err)
	}

	// Create the bucket if it doesn't exist
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating bucket: %w", err)
	}

	return &BoltDB{db: db}, nil
}

// SaveBill saves a bill to the database
func (b *BoltDB) SaveBill(bill *Bill) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		data, err := json.Marshal(bill)
		if err != nil {
			return fmt.Errorf("marshaling bill: %w", err)
		}
		return bucket.Put([]byte(bill.ID), data)
	})
}

// GetBill retrieves a bill by ID
func (b *BoltDB) GetBill(id string) (*Bill, error) {
	var bill *Bill
	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		data := bucket.Get([]byte(id))
		if data == nil {
			return fmt.Errorf("bill not found: %s", id)
		}
		return json.Unmarshal(data, &bill)
	})
	if err != nil {
		return nil, err
	}
	return bill, nil
}

// ListBills returns all bills
func (b *BoltDB) ListBills() ([]*Bill, error) {
	bills := make([]*Bill, 0)
	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		return bucket.ForEach(func(k, v []byte) error {
			var bill Bill
			if err := json.Unmarshal(v, &bill); err != nil {
				return fmt.Errorf("unmarshaling bill: %w", err)
			}
			bills = append(bills, &bill)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return bills, nil
}

// DeleteBill removes a bill from the database
func (b *BoltDB) DeleteBill(id string) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		return bucket.Delete([]byte(id))
	})
}

// Close closes the database connection
func (b *BoltDB) Close() error {
	return b.db.Close()
}
