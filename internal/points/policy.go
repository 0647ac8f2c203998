package points

import "fmt"

// Policy maps a completed activity to the point grants it earns. Pure lookup,
// no I/O.
type Policy struct{}

// NewPolicy creates a new Policy.
func NewPolicy() *Policy {
	return &Policy{}
}

// GrantsFor returns the grants earned by one completed activity. A quiz
// completion earns its base grant plus an independent perfect-score bonus
// when every question was answered correctly.
func (p *Policy) GrantsFor(activityType ActivityType, outcome Outcome) ([]Grant, error) {
	base, ok := basePoints[activityType]
	if !ok {
		return nil, fmt.Errorf("%q: %w", activityType, ErrUnknownActivity)
	}

	grants := []Grant{{ActivityType: activityType, Points: base}}
	if activityType == ActivityQuizCompletion && outcome.Perfect() {
		grants = append(grants, Grant{
			ActivityType: ActivityQuizPerfectScore,
			Points:       basePoints[ActivityQuizPerfectScore],
		})
	}
	return grants, nil
}
