package attendance

// Index buckets a record set by covered day, built once per record set, so
// classifying a whole cycle costs O(days + footprint) instead of
// O(days x records). Buckets keep input order, so results match Classify.
type Index struct {
	spans []span
	byDay map[int64][]int
}

// NewIndex prepares every record and buckets it under each day it covers.
func NewIndex(records []Record) (*Index, error) {
	spans, err := prepareAll(records)
	if err != nil {
		return nil, err
	}
	ix := &Index{spans: spans, byDay: make(map[int64][]int)}
	for i, s := range spans {
		for d := s.start; d.BeforeOrEqual(s.end); d = d.AddDays(1) {
			ix.byDay[d.ordinal()] = append(ix.byDay[d.ordinal()], i)
		}
	}
	return ix, nil
}

// Len is the number of indexed records.
func (ix *Index) Len() int { return len(ix.spans) }

// Covering returns the records covering d, in input order.
func (ix *Index) Covering(d Date) []Record {
	covering := ix.covering(d)
	out := make([]Record, len(covering))
	for i, s := range covering {
		out[i] = s.record
	}
	return out
}

func (ix *Index) covering(d Date) []span {
	slots := ix.byDay[d.ordinal()]
	if len(slots) == 0 {
		return nil
	}
	out := make([]span, len(slots))
	for i, slot := range slots {
		out[i] = ix.spans[slot]
	}
	return out
}
