package notes

import "errors"

var ErrInvalidNotes = errors.New("invalid notes file")
