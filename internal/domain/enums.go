package domain

// Canonical status values the tracker recognizes. Sheets may carry other
// statuses; these are only used for coloring and fallback matching.
const (
	StatusOnTrack  = "On Track"
	StatusAtRisk   = "At Risk"
	StatusDelayed  = "Delayed"
	StatusComplete = "Complete"
)

// KnownStatuses lists the canonical statuses in severity order.
var KnownStatuses = []string{StatusOnTrack, StatusAtRisk, StatusDelayed, StatusComplete}

// stageOrder is the canonical lifecycle order used to tie-break Gantt
// sorting. Stages not listed rank after all known stages.
var stageOrder = map[string]int{
	"discovery": 0,
	"design":    1,
	"build":     2,
	"test":      3,
	"uat":       4,
	"deploy":    5,
	"hypercare": 6,
	"complete":  7,
}

// StageRank returns the sort rank of a stage label. Unknown stages all get
// the same rank past the known ones; callers break that tie on the label.
func StageRank(stage string) int {
	if r, ok := stageOrder[Canonical(stage)]; ok {
		return r
	}
	return len(stageOrder)
}
