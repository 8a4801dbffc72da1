package repository

import "errors"

// ErrNotFound - записи с таким id нет. Это штатный исход, а не сбой.
var ErrNotFound = errors.New("запись не найдена")
