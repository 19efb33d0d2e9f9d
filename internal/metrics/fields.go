package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrOutcome  = "outcome"
)

// Enrichment outcomes.
const (
	OutcomeEnriched = "enriched"
	OutcomeFailed   = "failed"
	OutcomeEmpty    = "empty"
)
