package hunt

import "github.com/goodnatureofminers/scavengerhunt-backend/internal/model"

// Reason explains why a check-in was rejected. The text is shown to the participant.
type Reason string

const (
	ReasonMissedFirstLocation  Reason = "You missed the first location, go back!"
	ReasonUnrecognizedPrevious Reason = "Unrecognized previous location, where did you go?"
	ReasonOutOfOrder           Reason = "You're at the wrong location, keep looking!"
	ReasonInvalidLocation      Reason = "Invalid location id"
)

// Verdict is the result of validating a check-in. Reason is empty when accepted.
type Verdict struct {
	Accepted bool
	Reason   Reason
}

func accept() Verdict {
	return Verdict{Accepted: true}
}

func reject(reason Reason) Verdict {
	return Verdict{Reason: reason}
}

// Validate decides whether a participant with the given progress may check in at requested.
// A nil progress means the participant has no record yet. The requested location must come
// from this registry; unknown ids are rejected by the caller with ReasonInvalidLocation.
func (r *Registry) Validate(progress *model.ProgressRecord, requested model.Location) Verdict {
	if progress == nil || !progress.HasLocation() {
		if requested.Index == 1 {
			return accept()
		}
		return reject(ReasonMissedFirstLocation)
	}

	last, ok := r.LookupKey(progress.LastLocation)
	if !ok {
		return reject(ReasonUnrecognizedPrevious)
	}
	if requested.Index != last.Index+1 {
		return reject(ReasonOutOfOrder)
	}
	return accept()
}
