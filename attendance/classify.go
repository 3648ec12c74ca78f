package attendance

// Classify returns the category date displays given every record that may
// cover it. Records should be deduplicated first; when several covering
// records would show, the earliest in records wins.
//
// Classify scans records linearly and does not cache. Engine.Classify adds
// memoization, Engine.Calendar adds a per-day index.
func Classify(date string, records []Record) (ClassificationResult, error) {
	d, err := ParseDate(date)
	if err != nil {
		return ClassificationResult{}, err
	}
	spans, err := prepareAll(records)
	if err != nil {
		return ClassificationResult{}, err
	}
	return classifyDay(d, spans, DefaultRules()), nil
}

// classifyDay walks spans in order and returns the first one the rule table
// shows on d. Spans not covering d are skipped.
func classifyDay(d Date, spans []span, rules []Rule) ClassificationResult {
	for _, s := range spans {
		in := s.ruleInput(d)
		if in.Position == PositionNone {
			continue
		}
		show, rule := decide(rules, in)
		if !show {
			continue
		}
		source := s.record
		return ClassificationResult{
			Type:   source.Type,
			Source: &source,
			Label:  source.Type.Label(),
			Rule:   rule,
		}
	}
	return normalResult()
}
