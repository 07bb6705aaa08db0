package domain

// Store is a durable key-value slot store holding JSON values.
type Store interface {
	// Read decodes the slot into dest. Returns false if the slot is absent
	// or its contents do not decode into dest; dest should then be ignored.
	Read(key string, dest any) bool

	// Write encodes value and stores it. The in-memory copy is updated even
	// when the durable write fails.
	Write(key string, value any) error

	Delete(key string) error
	Close() error
}
