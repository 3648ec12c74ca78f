/*
rules.go - Classification rule table

PURPOSE:
  Decides whether a record covering a date should display its category on
  that date. The decision is an ordered table: the first row whose Applies
  matches a (record, date) pair decides, and its Show answers.

RULE ORDER:
  1. start-day border override  travel categories always show
  2. noon rule                  start day shows iff start time < 12:00
  3. end-day border override    travel categories always show
  4. end-day short duration     afternoon starts always show on the end day
  5. 24-hour rule               end day shows iff its footprint is 24h
  6. middle day                 middle days are full 24h and always show

  Row 4 pairs with row 2: when the noon rule hides the start day, the end day
  carries the category, so a short afternoon record is never lost.

EXTENDING:
  A new category with its own policy gets a row inserted ahead of the
  generic rows it overrides:

    rules := append([]attendance.Rule{remoteWorkRule}, attendance.DefaultRules()...)
    engine := attendance.NewEngine(attendance.WithRules(rules))

SEE ALSO:
  - classify.go: walks covering records through the table
  - coverage.go: Position values
*/
package attendance

// RuleInput is everything a rule row may look at.
type RuleInput struct {
	Position     Position
	Category     Category
	DaysOffset   int
	StartMinutes int
	EndMinutes   int

	// FootprintMinutes is the record's daily duration on the date.
	FootprintMinutes int
}

// StartsAfterNoon reports whether the record begins at or after 12:00.
func (in RuleInput) StartsAfterNoon() bool { return in.StartMinutes >= NoonMinutes }

// Rule is one row of the classification table.
type Rule struct {
	Name    string
	Applies func(in RuleInput) bool
	Show    func(in RuleInput) bool
}

const (
	RuleStartBorder   = "start_border_override"
	RuleNoon          = "noon"
	RuleEndBorder     = "end_border_override"
	RuleEndShort      = "end_short_duration"
	RuleTwentyFourHrs = "twenty_four_hour"
	RuleMiddleDay     = "middle_day"
)

func always(RuleInput) bool { return true }

func at(p Position) func(RuleInput) bool {
	return func(in RuleInput) bool { return in.Position == p }
}

func borderAt(p Position) func(RuleInput) bool {
	return func(in RuleInput) bool { return in.Position == p && in.Category.IsBorderCrossing() }
}

// DefaultRules returns a fresh copy of the built-in table.
func DefaultRules() []Rule {
	return []Rule{
		{Name: RuleStartBorder, Applies: borderAt(PositionStart), Show: always},
		{
			Name:    RuleNoon,
			Applies: at(PositionStart),
			Show:    func(in RuleInput) bool { return !in.StartsAfterNoon() },
		},
		{Name: RuleEndBorder, Applies: borderAt(PositionEnd), Show: always},
		{
			Name: RuleEndShort,
			Applies: func(in RuleInput) bool {
				return in.Position == PositionEnd && in.StartsAfterNoon()
			},
			Show: always,
		},
		{
			Name:    RuleTwentyFourHrs,
			Applies: at(PositionEnd),
			Show:    func(in RuleInput) bool { return in.FootprintMinutes >= MinutesPerDay },
		},
		{Name: RuleMiddleDay, Applies: at(PositionMiddle), Show: always},
	}
}

// decide returns the first applicable row's answer and its name. With no
// applicable row the record is not shown.
func decide(rules []Rule, in RuleInput) (bool, string) {
	for _, rule := range rules {
		if rule.Applies(in) {
			return rule.Show(in), rule.Name
		}
	}
	return false, ""
}

func (s span) ruleInput(d Date) RuleInput {
	return RuleInput{
		Position:         s.position(d),
		Category:         s.record.Type,
		DaysOffset:       s.record.DaysOffset,
		StartMinutes:     s.startMinutes,
		EndMinutes:       s.endMinutes,
		FootprintMinutes: s.dailyMinutes(d),
	}
}
