package resttr

import "context"

type PageFunc[T any] func(ctx context.Context, page string) (items []T, nextPage string, err error)

// Paginate follows opc-next-page tokens until the last page.
func Paginate[T any](ctx context.Context, fetch PageFunc[T]) ([]T, error) {
	var (
		all  []T
		page string
	)
	for {
		items, next, err := fetch(ctx, page)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)

		if next == "" || next == page {
			return all, nil
		}
		page = next
	}
}
