package matchmaking

import (
	svcErr "github.com/oggyb/muzz-matchmaking/internal/errors"
)

// TargetKind names the profile element a like points at.
type TargetKind string

const (
	TargetPrompt TargetKind = "prompt"
	TargetPhoto  TargetKind = "photo"
)

// photoSnapshot is the content recorded on a match initiated by a photo like.
const photoSnapshot = "Photo"

// Target is the liked profile element. It is a closed set: PromptTarget or
// PhotoTarget.
type Target interface {
	Kind() TargetKind
	ID() string
	isTarget()
}

// PromptTarget points at one of the recipient's prompts.
type PromptTarget struct{ PromptID string }

// PhotoTarget points at one of the recipient's photos.
type PhotoTarget struct{ PhotoID string }

func (t PromptTarget) Kind() TargetKind { return TargetPrompt }
func (t PromptTarget) ID() string       { return t.PromptID }
func (PromptTarget) isTarget()          {}

func (t PhotoTarget) Kind() TargetKind { return TargetPhoto }
func (t PhotoTarget) ID() string       { return t.PhotoID }
func (PhotoTarget) isTarget()          {}

// ParseTarget builds a Target from its stored (type, id) columns.
func ParseTarget(kind, id string) (Target, error) {
	if id == "" {
		return nil, svcErr.Invalid("target_id is required")
	}
	switch TargetKind(kind) {
	case TargetPrompt:
		return PromptTarget{PromptID: id}, nil
	case TargetPhoto:
		return PhotoTarget{PhotoID: id}, nil
	default:
		return nil, svcErr.Invalid("target_type must be %q or %q, got %q", TargetPrompt, TargetPhoto, kind)
	}
}
