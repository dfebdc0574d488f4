package ports

import "go.trai.ch/weld/internal/core/domain"

// InvocationStore persists the compiler invocations captured by fat builds.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type InvocationStore interface {
	// Get retrieves the record stored under key in the project at root.
	// Returns nil, nil if not found.
	Get(root, key string) (*domain.InvocationRecord, error)

	// Put stores the record in the project at root.
	Put(root string, record domain.InvocationRecord) error
}
