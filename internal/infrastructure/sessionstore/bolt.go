package sessionstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/jhoicas/grinder-parts-api/internal/domain/repository"
)

var _ repository.SessionStorage = (*BoltStorage)(nil)

var sessionBucket = []byte("session")

// BoltStorage persiste la sesión en un archivo bbolt (equivalente al localStorage del navegador).
type BoltStorage struct {
	db *bolt.DB
}

// NewBoltStorage abre (o crea) el archivo y el bucket de sesión.
func NewBoltStorage(path string) (*BoltStorage, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("crear directorio %s: %w", dir, err)
		}
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("abrir bbolt %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(sessionBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("crear bucket: %w", err)
	}
	return &BoltStorage{db: db}, nil
}

func (s *BoltStorage) Get(_ context.Context, key string) (string, bool, error) {
	var (
		value string
		found bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(sessionBucket).Get([]byte(key))
		if v != nil {
			// v solo es válido dentro de la transacción: string() copia.
			value, found = string(v), true
		}
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("bbolt get %s: %w", key, err)
	}
	return value, found, nil
}

func (s *BoltStorage) Set(_ context.Context, key, value string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionBucket).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("bbolt set %s: %w", key, err)
	}
	return nil
}

func (s *BoltStorage) Remove(_ context.Context, key string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionBucket).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("bbolt delete %s: %w", key, err)
	}
	return nil
}

func (s *BoltStorage) Close() error {
	return s.db.Close()
}
