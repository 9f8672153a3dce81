// Package memory implements the persistence gateway over mutex-guarded maps.
// It is the development backend: same ports as postgres, no external process.
package memory

import (
	"sync"

	"github.com/shoplabs/shop-api/internal/core/domain"
)

// Store holds all in-memory tables behind a single lock, mirroring a shared
// database instance accessed by all concurrent requests. IDs are assigned
// from per-table auto-increment counters.
type Store struct {
	mu sync.RWMutex

	categories map[int]domain.Category
	products   map[int]domain.Product
	users      map[int]domain.User

	nextCategoryID int
	nextProductID  int
	nextUserID     int
}

func NewStore() *Store {
	return &Store{
		categories:     make(map[int]domain.Category),
		products:       make(map[int]domain.Product),
		users:          make(map[int]domain.User),
		nextCategoryID: 1,
		nextProductID:  1,
		nextUserID:     1,
	}
}
