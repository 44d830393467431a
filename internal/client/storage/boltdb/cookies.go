package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/socialnet/internal/client/storage"
)

// SaveCookie stores a server cookie
func (s *Storage) SaveCookie(ctx context.Context, c *storage.StoredCookie) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCookies)
		if bucket == nil {
			return fmt.Errorf("cookies bucket not found")
		}

		data, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("failed to marshal cookie: %w", err)
		}

		if err := bucket.Put([]byte(c.Key()), data); err != nil {
			return fmt.Errorf("failed to save cookie %s: %w", c.Name, err)
		}
		return nil
	})
}

// DeleteCookie removes a stored cookie
func (s *Storage) DeleteCookie(ctx context.Context, host, path, name string) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCookies)
		if bucket == nil {
			return fmt.Errorf("cookies bucket not found")
		}

		if err := bucket.Delete([]byte(storage.CookieKey(host, path, name))); err != nil {
			return fmt.Errorf("failed to delete cookie %s: %w", name, err)
		}
		return nil
	})
}

// ListCookies returns all stored cookies
func (s *Storage) ListCookies(ctx context.Context) ([]storage.StoredCookie, error) {
	var cookies []storage.StoredCookie

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCookies)
		if bucket == nil {
			return fmt.Errorf("cookies bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			var c storage.StoredCookie
			if err := json.Unmarshal(v, &c); err != nil {
				return fmt.Errorf("failed to unmarshal cookie %s: %w", k, err)
			}
			cookies = append(cookies, c)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return cookies, nil
}
