package attendance

// dedupeKey identifies one person's submission for one day.
type dedupeKey struct {
	customerID string
	employeeID string
	date       string
}

func keyOf(r Record) dedupeKey {
	return dedupeKey{customerID: r.CustomerID, employeeID: r.EmployeeID, date: r.Date}
}

// Dedupe keeps, for each (customer, employee, date), the record with the
// latest UpdatedAt, falling back to CreatedAt, then to the zero time. On a
// tie the earlier record in the input wins. The result preserves the order
// in which each key first appeared, so Dedupe is idempotent.
func Dedupe(records []Record) []Record {
	slots := make(map[dedupeKey]int, len(records))
	out := make([]Record, 0, len(records))
	for _, r := range records {
		k := keyOf(r)
		i, seen := slots[k]
		if !seen {
			slots[k] = len(out)
			out = append(out, r)
			continue
		}
		if r.orderingTime().After(out[i].orderingTime()) {
			out[i] = r
		}
	}
	return out
}
