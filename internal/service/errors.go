package service

import "fmt"

// DuplicateError - попытка создать роль с уже существующим именем.
type DuplicateError struct {
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("role %q already exists", e.Name)
}
