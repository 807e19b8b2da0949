package repository

// Page is a limit/offset window for list queries. Services normalize it before it reaches SQL.
type Page struct {
	Limit  int
	Offset int
}

// PageResult is one page of items plus the total row count for the unpaged query.
type PageResult[T any] struct {
	Items []T
	Total int
}
