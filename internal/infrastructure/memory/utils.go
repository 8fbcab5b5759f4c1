package memory

import "github.com/jhoicas/coco-api/internal/domain/identity"

// paginate recorta items a [offset, offset+limit).
func paginate[T any](items []T, limit, offset int) []T {
	if offset < 0 || offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}

// sameEmail compara como el índice único lower(email) de PostgreSQL.
func sameEmail(a, b string) bool {
	return identity.NormalizeEmail(a) == identity.NormalizeEmail(b)
}
