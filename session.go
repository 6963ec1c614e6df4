package relstore

import "github.com/aalhour/rockyardkv"

// Tx is a pessimistic transaction spanning both column families.
// Writes are buffered until Commit and become visible atomically;
// Rollback discards them. A Tx is not safe for concurrent use and must
// end in exactly one Commit or Rollback.
type Tx struct {
	store *Store
	txn   *rockyardkv.PessimisticTransaction
}

// Begin starts a transaction with a consistent snapshot of both
// families.
func (s *Store) Begin() (*Tx, error) {
	release, err := s.guard()
	if err != nil {
		return nil, err
	}
	defer release()

	opts := rockyardkv.DefaultPessimisticTransactionOptions()
	opts.SetSnapshot = true

	return &Tx{
		store: s,
		txn:   s.db.BeginTransaction(opts, rockyardkv.DefaultWriteOptions()),
	}, nil
}

// Put buffers a write of key in the given family.
func (tx *Tx) Put(f Family, key, value []byte) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}
	return tx.txn.PutCF(tx.store.handle(f), key, value)
}

// Get reads key from the given family, observing the transaction's own
// buffered writes before the snapshot.
func (tx *Tx) Get(f Family, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	return tx.txn.GetCF(tx.store.handle(f), key)
}

// Delete buffers a removal of key in the given family.
func (tx *Tx) Delete(f Family, key []byte) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}
	return tx.txn.DeleteCF(tx.store.handle(f), key)
}

// Commit atomically applies all buffered writes.
func (tx *Tx) Commit() error {
	return tx.txn.Commit()
}

// Rollback discards all buffered writes and releases the transaction's
// locks.
func (tx *Tx) Rollback() error {
	return tx.txn.Rollback()
}
