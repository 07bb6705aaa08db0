package domain

// CatalogReader provides read-only access to the static catalog.
type CatalogReader interface {
	Book(id string) (Book, bool)
	Books() []Book
}

// ChangeObserver receives a result after every state mutation.
type ChangeObserver interface {
	OnChange(result CommandResult)
}

// ObserverFunc adapts a function to ChangeObserver.
type ObserverFunc func(CommandResult)

func (f ObserverFunc) OnChange(result CommandResult) { f(result) }
