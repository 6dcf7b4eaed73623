package util

import "errors"

var (
	ErrModuleNotFound = errors.New("module not found")
	ErrResetDisabled  = errors.New("reset is disabled")
)

// ModuleNotFoundError 携带未找到的模块ID，errors.Is 可匹配 ErrModuleNotFound
type ModuleNotFoundError struct {
	ID string
}

func (e *ModuleNotFoundError) Error() string {
	return `Module with ID "` + e.ID + `" not found`
}

func (e *ModuleNotFoundError) Is(target error) bool {
	return target == ErrModuleNotFound
}

func NewModuleNotFoundError(id string) error {
	return &ModuleNotFoundError{ID: id}
}
