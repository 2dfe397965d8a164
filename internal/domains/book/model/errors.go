package model

import "library-catalog/internal/shared/apperror"

var (
	ErrBookNotFound   = apperror.New(apperror.KindNotFound, "BOOK_NOT_FOUND", "Book not found")
	ErrDuplicateTitle = apperror.New(apperror.KindConflict, "DUPLICATE_TITLE", "Book with this title already exists")

	// ErrUnknownAuthor - author_id does not reference an existing author
	ErrUnknownAuthor = apperror.New(apperror.KindReference, "UNKNOWN_AUTHOR", "Author not found")
)
