package listing

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort fields. The values double as the query-parameter names of the list
// endpoint.
const (
	FieldClient       = "nombreCliente"
	FieldCourse       = "curso"
	FieldProvider     = "proveedor"
	FieldCategory     = "tipoPA"
	FieldRegisteredAt = "fechaRegistro"
	FieldDeliveredAt  = "fechaEntrega"
	FieldPrice        = "precio"
	FieldStatus       = "estado"
)

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Sort returns a newly ordered copy of jobs. Text fields use Spanish
// collation, numeric-aware and case/accent-insensitive ("Item 2" sorts before
// "Item 10"). Date fields compare lexicographically on their ISO form, so an
// empty delivery date sorts as the empty string. Price compares numerically.
// The sort is stable; an unknown or empty field leaves the order untouched.
func Sort(jobs []Job, field, order string) []Job {
	out := make([]Job, len(jobs))
	copy(out, jobs)
	if field == "" {
		return out
	}

	cmp := comparatorFor(field)
	if cmp == nil {
		return out
	}

	sort.SliceStable(out, func(i, k int) bool {
		c := cmp(out[i], out[k])
		if order == OrderDesc {
			return c > 0
		}
		return c < 0
	})
	return out
}

func comparatorFor(field string) func(a, b Job) int {
	switch field {
	case FieldClient:
		return textComparator(func(j Job) string { return j.ClientName })
	case FieldCourse:
		return textComparator(func(j Job) string { return j.Course })
	case FieldProvider:
		return textComparator(func(j Job) string { return j.Provider })
	case FieldCategory:
		return textComparator(func(j Job) string { return j.Category })
	case FieldStatus:
		return textComparator(func(j Job) string { return j.Status })
	case FieldRegisteredAt:
		return func(a, b Job) int { return compareString(a.RegisteredAt, b.RegisteredAt) }
	case FieldDeliveredAt:
		return func(a, b Job) int { return compareString(a.DeliveredAt, b.DeliveredAt) }
	case FieldPrice:
		return func(a, b Job) int {
			switch {
			case a.Price < b.Price:
				return -1
			case a.Price > b.Price:
				return 1
			default:
				return 0
			}
		}
	default:
		return nil
	}
}

func textComparator(key func(j Job) string) func(a, b Job) int {
	// A collator buffers state across comparisons, so each sort gets its own.
	c := collate.New(language.Spanish, collate.Numeric, collate.Loose)
	return func(a, b Job) int {
		return c.CompareString(key(a), key(b))
	}
}

func compareString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
