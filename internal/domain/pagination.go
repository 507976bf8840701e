package domain

type Pagination struct {
	Page     int
	PageSize int
}

func (p Pagination) Limit() int {
	return p.PageSize
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Paginate checks the requested page against totalRecords. It returns
// ErrRecordNotFound when there is nothing to list or the page is past the end.
func (p Pagination) Paginate(totalRecords int) (*Metadata, error) {
	if totalRecords == 0 {
		return nil, ErrRecordNotFound
	}

	metadata := NewMetadata(totalRecords, p.Page, p.PageSize)
	if p.Page > metadata.LastPage {
		return nil, ErrRecordNotFound
	}

	return metadata, nil
}
