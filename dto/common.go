package dto

type PaginatedResponse struct {
	Items   interface{} `json:"items"`
	Total   int64       `json:"total"`
	Page    int         `json:"page"`
	PerPage int         `json:"per_page"`
	Pages   int64       `json:"pages"`
}

func Paginate(items interface{}, total int64, skip, limit int) PaginatedResponse {
	return PaginatedResponse{
		Items:   items,
		Total:   total,
		Page:    skip/limit + 1,
		PerPage: limit,
		Pages:   (total + int64(limit) - 1) / int64(limit),
	}
}
