// Package tablestore is a small bolt-backed table store whose query
// cursors back datatable values.
package tablestore

import (
	"sort"
	"sync"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"
	"github.com/vilterp/balnative/pkg/lang"
)

type Store struct {
	boltDB *bolt.DB

	mu     sync.RWMutex
	tables map[string]*tableDescriptor
}

func Open(dataFile string) (*Store, error) {
	boltDB, err := bolt.Open(dataFile, 0600, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", dataFile)
	}
	store := &Store{
		boltDB: boltDB,
		tables: map[string]*tableDescriptor{},
	}
	if err := store.loadSchema(); err != nil {
		boltDB.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) Close() error {
	return s.boltDB.Close()
}

func (s *Store) loadSchema() error {
	return s.boltDB.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(tablesBucket))
		if err != nil {
			return err
		}
		return bucket.ForEach(func(_ []byte, tableBytes []byte) error {
			table, err := tableFromBytes(tableBytes)
			if err != nil {
				return err
			}
			s.tables[table.name] = table
			return nil
		})
	})
}

// Tables returns the names of all tables, sorted.
func (s *Store) Tables() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Store) table(name string) (*tableDescriptor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	table, ok := s.tables[name]
	if !ok {
		return nil, &noSuchTable{TableName: name}
	}
	return table, nil
}

func (s *Store) CreateTable(name string, columns []lang.Column) error {
	table, err := newTableDescriptor(name, columns)
	if err != nil {
		return err
	}
	tableBytes, err := table.toBytes()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tables[name]; ok {
		return &tableAlreadyExists{TableName: name}
	}
	if err := s.boltDB.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucket([]byte(name)); err != nil {
			return err
		}
		return tx.Bucket([]byte(tablesBucket)).Put([]byte(name), tableBytes)
	}); err != nil {
		return errors.Wrapf(err, "creating table %s", name)
	}
	s.tables[name] = table
	return nil
}

// Insert appends a row. Rows are keyed by the table's sequence, so cursors
// see them in insertion order.
func (s *Store) Insert(tableName string, values ...lang.Value) error {
	table, err := s.table(tableName)
	if err != nil {
		return err
	}
	row, err := table.rowFromValues(values)
	if err != nil {
		return err
	}
	rowBytes, err := encodeValues(row)
	if err != nil {
		return err
	}
	return s.boltDB.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(tableName))
		seq, err := bucket.NextSequence()
		if err != nil {
			return err
		}
		return bucket.Put(encodeInteger(seq), rowBytes)
	})
}

// Query opens a cursor over every row of the table. The cursor holds a read
// transaction until it is closed.
func (s *Store) Query(tableName string) (*Cursor, error) {
	table, err := s.table(tableName)
	if err != nil {
		return nil, err
	}
	tx, err := s.boltDB.Begin(false)
	if err != nil {
		return nil, errors.Wrap(err, "beginning read transaction")
	}
	bucket := tx.Bucket([]byte(tableName))
	if bucket == nil {
		tx.Rollback()
		return nil, &noSuchTable{TableName: tableName}
	}
	return &Cursor{
		tx:     tx,
		cursor: bucket.Cursor(),
		table:  table,
	}, nil
}
