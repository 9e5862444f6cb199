package repository

// KeyValueRepository defines durable key-value operations.
// Set must replace the whole value atomically.
type KeyValueRepository interface {
	Get(key string) (value string, found bool, err error)
	Set(key, value string) error
}
