package models

// ActivityReport is the in-memory aggregate of one activity and its child
// collections. It is recomputed on demand to drive validation and rendering
// and is never persisted as a unit.
type ActivityReport struct {
	Activity     Activity         `json:"activity"`
	Speakers     []Speaker        `json:"speakers"`
	Participants []Participant    `json:"participants"`
	Preparers    []ReportPreparer `json:"report_preparers"`
	Photos       []ActivityPhoto  `json:"photos"`
}

// TotalParticipants sums the counts across all participant-type rows.
func (r ActivityReport) TotalParticipants() int {
	total := 0
	for _, p := range r.Participants {
		total += p.Count
	}
	return total
}
