// Package redisstore keeps book documents in Redis. Each book is a JSON
// string under "<prefix>:books:<id>" and the collection order lives in the
// sorted set "<prefix>:books:index", scored by creation time.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"

	"github.com/mrlokans/bookdirectory/internal/catalog"
	"github.com/mrlokans/bookdirectory/internal/entities"
)

const DefaultPrefix = "book-directory"

type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

type Store struct {
	client *redis.Client
	prefix string
}

// NewClient opens a Redis client and checks the connection.
func NewClient(ctx context.Context, opts Options) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr, err)
	}
	return client, nil
}

func New(client *redis.Client, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Store{client: client, prefix: prefix}
}

func (s *Store) bookKey(id string) string {
	return s.prefix + ":books:" + id
}

func (s *Store) indexKey() string {
	return s.prefix + ":books:index"
}

func (s *Store) InsertBook(ctx context.Context, book *entities.Book) error {
	if book.CreatedAt.IsZero() {
		book.CreatedAt = time.Now().UTC()
	}
	book.UpdatedAt = book.CreatedAt

	payload, err := encode(book)
	if err != nil {
		return err
	}

	var created *redis.BoolCmd
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		created = pipe.SetNX(ctx, s.bookKey(book.ID), payload, 0)
		pipe.ZAddNX(ctx, s.indexKey(), redis.Z{
			Score:  float64(book.CreatedAt.UnixMicro()),
			Member: book.ID,
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("insert book %s: %w", book.ID, err)
	}
	if !created.Val() {
		return fmt.Errorf("book %s already exists", book.ID)
	}
	return nil
}

func (s *Store) FindBookByID(ctx context.Context, id string) (*entities.Book, error) {
	raw, err := s.client.Get(ctx, s.bookKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("book %s: %w", id, catalog.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get book %s: %w", id, err)
	}
	return decode(raw)
}

func (s *Store) FindAllBooks(ctx context.Context) ([]entities.Book, error) {
	ids, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read books index: %w", err)
	}
	books := make([]entities.Book, 0, len(ids))
	if len(ids) == 0 {
		return books, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.bookKey(id)
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("read books: %w", err)
	}

	for _, value := range values {
		// Index entries can outlive their document between a delete's two writes.
		raw, ok := value.(string)
		if !ok {
			continue
		}
		book, err := decode([]byte(raw))
		if err != nil {
			return nil, err
		}
		books = append(books, *book)
	}
	return books, nil
}

func (s *Store) ReplaceBook(ctx context.Context, book *entities.Book) error {
	book.UpdatedAt = time.Now().UTC()
	payload, err := encode(book)
	if err != nil {
		return err
	}

	ok, err := s.client.SetXX(ctx, s.bookKey(book.ID), payload, redis.KeepTTL).Result()
	if err != nil {
		return fmt.Errorf("replace book %s: %w", book.ID, err)
	}
	if !ok {
		return fmt.Errorf("book %s: %w", book.ID, catalog.ErrNotFound)
	}
	return nil
}

func (s *Store) DeleteBook(ctx context.Context, id string) (*entities.Book, error) {
	var getCmd *redis.StringCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		getCmd = pipe.GetDel(ctx, s.bookKey(id))
		pipe.ZRem(ctx, s.indexKey(), id)
		return nil
	})
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("book %s: %w", id, catalog.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("delete book %s: %w", id, err)
	}

	raw, err := getCmd.Bytes()
	if err != nil {
		return nil, fmt.Errorf("delete book %s: %w", id, err)
	}
	return decode(raw)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// document is the stored form. Timestamps are hidden from the API payload
// but kept here so ordering survives a rebuild of the index.
type document struct {
	entities.Book
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func encode(book *entities.Book) ([]byte, error) {
	payload, err := json.Marshal(document{Book: *book, CreatedAt: book.CreatedAt, UpdatedAt: book.UpdatedAt})
	if err != nil {
		return nil, fmt.Errorf("encode book %s: %w", book.ID, err)
	}
	return payload, nil
}

func decode(raw []byte) (*entities.Book, error) {
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode book: %w", err)
	}
	book := doc.Book
	book.CreatedAt = doc.CreatedAt
	book.UpdatedAt = doc.UpdatedAt
	if book.Reviews == nil {
		book.Reviews = datatypes.JSONSlice[entities.Review]{}
	}
	return &book, nil
}
