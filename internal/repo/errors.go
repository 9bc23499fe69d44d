package repo

import "errors"

// ErrNotFound возвращается, когда запись отсутствует или принадлежит другому
// пользователю. Эти случаи преднамеренно неразличимы для вызывающей стороны.
var ErrNotFound = errors.New("record not found")
