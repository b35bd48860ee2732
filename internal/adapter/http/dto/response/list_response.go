package response

type ListResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

// NewList never renders items as null.
func NewList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Count: len(items)}
}
