package registry

import "strings"

// Status is the classified category of a free-text status/rating value.
type Status int

const (
	StatusUnknown Status = iota
	StatusApproved
	StatusPending
	StatusRejected
	StatusEmpty
)

func (s Status) String() string {
	switch s {
	case StatusApproved:
		return "approved"
	case StatusPending:
		return "pending"
	case StatusRejected:
		return "rejected"
	case StatusEmpty:
		return "empty"
	}
	return "unknown"
}

// Synonym sets per category. Membership is exact-token: status values are
// short codes, so substring matching would misfire (e.g. "A" inside almost
// anything).
var statusSynonyms = map[Status][]string{
	StatusApproved: {"APPROVED", "APPROVE", "A"},
	StatusPending:  {"PENDING", "IN REVIEW", "REVIEW"},
	StatusRejected: {"REJECTED", "REJECT", "DECLINED"},
}

// ClassifyStatus maps a raw status value onto its category,
// case-insensitively. Empty values are StatusEmpty, which is distinct from
// an unrecognized non-empty value (StatusUnknown).
func ClassifyStatus(raw string) Status {
	v := strings.ToUpper(strings.TrimSpace(raw))
	if v == "" {
		return StatusEmpty
	}
	for cat, syns := range statusSynonyms {
		for _, s := range syns {
			if v == s {
				return cat
			}
		}
	}
	return StatusUnknown
}

// StatusBadge is the display text for a raw status value: the category name
// for classified values, the value verbatim when unrecognized, and the "—"
// placeholder when empty.
func StatusBadge(raw string) string {
	switch ClassifyStatus(raw) {
	case StatusApproved:
		return "APPROVED"
	case StatusPending:
		return "PENDING"
	case StatusRejected:
		return "REJECTED"
	case StatusEmpty:
		return Placeholder
	}
	return raw
}

// Placeholder renders empty or unresolved values in detail views.
const Placeholder = "—"
