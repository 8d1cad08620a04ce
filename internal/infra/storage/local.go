package storage

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strconv"
	"strings"
	"time"

	"neighbiz/internal/pkg/config"
	"neighbiz/internal/pkg/errs"

	bolt "github.com/boltdb/bolt"
)

var (
	objectsBucket      = []byte("objects")
	contentTypesBucket = []byte("content_types")
)

// FilesPath is where the HTTP layer serves signed local URLs.
const FilesPath = "/api/files/"

// LocalStorage keeps blobs in a bolt file and hands out HMAC-signed URLs
// served by the files handler. Development only.
type LocalStorage struct {
	db      *bolt.DB
	baseURL string
	key     []byte
	now     func() time.Time
}

func NewLocalStorage(cfg config.StorageConfig) (*LocalStorage, error) {
	if cfg.SigningKey == "" {
		return nil, errs.New("STORAGE_SIGNING_KEY is required for local storage")
	}
	db, err := bolt.Open(cfg.LocalPath, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errs.Wrap(err, "failed to open local storage")
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(objectsBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(contentTypesBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errs.Wrap(err, "failed to create storage buckets")
	}

	return &LocalStorage{
		db:      db,
		baseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		key:     []byte(cfg.SigningKey),
		now:     time.Now,
	}, nil
}

func (s *LocalStorage) Close() error {
	return s.db.Close()
}

func (s *LocalStorage) Put(_ context.Context, key, contentType string, data []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(objectsBucket).Put([]byte(key), data); err != nil {
			return err
		}
		return tx.Bucket(contentTypesBucket).Put([]byte(key), []byte(contentType))
	})
	if err != nil {
		return errs.Wrap(err, "failed to store object")
	}
	return nil
}

func (s *LocalStorage) Exists(_ context.Context, key string) (bool, error) {
	var found bool
	err := s.db.View(func(tx *bolt.Tx) error {
		found = tx.Bucket(objectsBucket).Get([]byte(key)) != nil
		return nil
	})
	return found, err
}

// Get returns a copy of the object and its content type.
func (s *LocalStorage) Get(key string) ([]byte, string, error) {
	var (
		data        []byte
		contentType string
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(objectsBucket).Get([]byte(key))
		if v == nil {
			return ErrObjectNotFound
		}
		// bolt values are only valid inside the transaction
		data = append([]byte(nil), v...)
		contentType = string(tx.Bucket(contentTypesBucket).Get([]byte(key)))
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	return data, contentType, nil
}

func (s *LocalStorage) PresignGet(_ context.Context, key string, ttl time.Duration) (string, error) {
	return s.signedURL("GET", key, "", ttl), nil
}

func (s *LocalStorage) PresignPut(_ context.Context, key, contentType string, ttl time.Duration) (string, error) {
	return s.signedURL("PUT", key, contentType, ttl), nil
}

// Verify checks a signed URL's parameters at the current time.
func (s *LocalStorage) Verify(method, key, contentType, exp, sig string) error {
	expUnix, err := strconv.ParseInt(exp, 10, 64)
	if err != nil || s.now().Unix() > expUnix {
		return ErrInvalidSignature
	}
	want := s.sign(method, key, contentType, expUnix)
	if !hmac.Equal([]byte(want), []byte(sig)) {
		return ErrInvalidSignature
	}
	return nil
}

func (s *LocalStorage) signedURL(method, key, contentType string, ttl time.Duration) string {
	exp := s.now().Add(ttl).Unix()
	q := url.Values{}
	q.Set("exp", strconv.FormatInt(exp, 10))
	q.Set("sig", s.sign(method, key, contentType, exp))
	return s.baseURL + FilesPath + key + "?" + q.Encode()
}

func (s *LocalStorage) sign(method, key, contentType string, exp int64) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(method + "\n" + key + "\n" + contentType + "\n" + strconv.FormatInt(exp, 10)))
	return hex.EncodeToString(mac.Sum(nil))
}
