package store

import "fmt"

// ValidationError - документ не прошел проверку схемы коллекции.
// Запись при этом не выполняется.
type ValidationError struct {
	Collection string
	Field      string
	Reason     string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s.%s: %s", e.Collection, e.Field, e.Reason)
}

// ConflictError - вставка документа с уже занятым первичным ключом.
type ConflictError struct {
	Collection string
	ID         string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s already contains id %q", e.Collection, e.ID)
}

// StorageError - ошибка нижележащего слоя хранения (I/O, повреждение файла).
// Не ретраится автоматически, пробрасывается вызывающему.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
