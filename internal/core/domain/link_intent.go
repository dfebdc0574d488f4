package domain

import (
	"encoding/json"
	"errors"

	"go.trai.ch/zerr"
)

// LinkActionEnv is the environment variable carrying the serialized LinkIntent.
const LinkActionEnv = "WELD_LINK_ACTION"

// LinkAction names what the substitute linker is asked to do.
type LinkAction string

const (
	// LinkActionBase delegates to the platform linker.
	LinkActionBase LinkAction = "base-link"
	// LinkActionThin patches an existing binary.
	LinkActionThin LinkAction = "thin-link"
)

// LinkIntent is the request weld passes to itself when it runs as the linker.
// It is built once per build and never mutated afterwards.
type LinkIntent struct {
	Action         LinkAction   `json:"action"`
	Platform       Platform     `json:"platform"`
	Linker         string       `json:"linker"`
	IncrementalDir string       `json:"incremental_dir"`
	Strip          bool         `json:"strip,omitempty"`
	PatchTarget    *PatchTarget `json:"patch_target,omitempty"`
}

// NewLinkIntent derives the intent for a build mode.
// Base and fat builds delegate to linker; only base builds strip.
func NewLinkIntent(mode BuildMode, platform Platform, linker, incrementalDir string) (LinkIntent, error) {
	switch mode.Kind {
	case ModeThin:
		if err := mode.Validate(); err != nil {
			return LinkIntent{}, err
		}
		patch := *mode.Patch
		return LinkIntent{
			Action:         LinkActionThin,
			Platform:       platform,
			Linker:         linker,
			IncrementalDir: incrementalDir,
			PatchTarget:    &patch,
		}, nil
	default:
		return LinkIntent{
			Action:         LinkActionBase,
			Platform:       platform,
			Linker:         linker,
			IncrementalDir: incrementalDir,
			Strip:          mode.Kind == ModeBase,
		}, nil
	}
}

// Encode serializes the intent for LinkActionEnv.
func (i LinkIntent) Encode() (string, error) {
	data, err := json.Marshal(i)
	if err != nil {
		return "", zerr.Wrap(err, ErrLinkIntentEncodeFailed.Error())
	}
	return string(data), nil
}

// DecodeLinkIntent parses a LinkActionEnv payload.
func DecodeLinkIntent(payload string) (LinkIntent, error) {
	var intent LinkIntent
	if err := json.Unmarshal([]byte(payload), &intent); err != nil {
		return LinkIntent{}, errors.Join(ErrLinkIntentDecodeFailed, err)
	}

	switch intent.Action {
	case LinkActionBase:
		return intent, nil
	case LinkActionThin:
		if intent.PatchTarget == nil || intent.PatchTarget.Binary == "" {
			return LinkIntent{}, ErrPatchTargetRequired
		}
		return intent, nil
	default:
		return LinkIntent{}, zerr.With(ErrUnknownLinkAction, "action", string(intent.Action))
	}
}
