package model

import "library-catalog/internal/shared/apperror"

var (
	// ErrAuthorNotFound - no author with the requested id
	ErrAuthorNotFound = apperror.New(apperror.KindNotFound, "AUTHOR_NOT_FOUND", "Author not found")

	// ErrDuplicateName - another author already uses this name
	ErrDuplicateName = apperror.New(apperror.KindConflict, "DUPLICATE_NAME", "Author with this name already exists")

	// ErrAuthorHasBooks - deletion blocked while books reference the author
	ErrAuthorHasBooks = apperror.New(apperror.KindDependency, "AUTHOR_HAS_BOOKS", "Cannot delete author with books")
)
