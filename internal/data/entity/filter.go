package entity

// ListFilter narrows a paginated listing. Max is an inclusive upper bound on
// the entity's numeric column (capacity for salles, duration for movies);
// nil means no bound.
type ListFilter struct {
	Limit  int
	Offset int
	Max    *int
}
