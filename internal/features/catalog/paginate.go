package catalog

// PageResult is one page cut from an ordered product sequence.
type PageResult struct {
	Items       []*Product
	TotalPages  int
	CurrentPage int
}

// Paginate slices the contiguous window [(page-1)*pageSize, page*pageSize)
// out of ordered. TotalPages is never below 1, even for an empty match set.
// A page past the end yields empty Items with TotalPages unchanged; it is
// neither an error nor a wraparound.
func Paginate(ordered []*Product, page, pageSize int) PageResult {
	totalPages := (len(ordered) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * pageSize
	if start >= len(ordered) {
		return PageResult{
			Items:       []*Product{},
			TotalPages:  totalPages,
			CurrentPage: page,
		}
	}

	end := start + pageSize
	if end > len(ordered) {
		end = len(ordered)
	}

	return PageResult{
		Items:       ordered[start:end],
		TotalPages:  totalPages,
		CurrentPage: page,
	}
}
