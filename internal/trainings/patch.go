package trainings

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/fiufit/trainings/internal/telemetry/tracing"
)

type Column string

const (
	ColumnTitle        Column = "title"
	ColumnDescription  Column = "description"
	ColumnDifficultyID Column = "difficulty_id"
	ColumnMedia        Column = "media"
	ColumnBlocked      Column = "blocked"
)

func (c Column) patchable() bool {
	switch c {
	case ColumnTitle, ColumnDescription, ColumnDifficultyID, ColumnMedia, ColumnBlocked:
		return true
	}
	return false
}

// Columns maps a training column to its new value.
type Columns map[Column]any

// PatchRequest holds the fields of a partial update. Only fields with Set are applied.
type PatchRequest struct {
	Title       Optional[string] `json:"title"`
	Description Optional[string] `json:"description"`
	Difficulty  Optional[string] `json:"difficulty"`
	Media       Optional[string] `json:"media"`
	Blocked     Optional[bool]   `json:"blocked"`
}

type mediaSaver interface {
	Save(ctx context.Context, content []byte, ownerID string) (string, error)
}

type PatchResolver struct {
	resolver referenceResolver
	media    mediaSaver
}

func NewPatchResolver(resolver referenceResolver, media mediaSaver) *PatchResolver {
	return &PatchResolver{
		resolver: resolver,
		media:    media,
	}
}

// Resolve computes the columns to update for trainingID, owned by ownerID. A media payload
// is stored under the owner first and replaced by the returned handle.
// The media save is not part of the later update: if that update fails the blob stays orphaned.
func (pr *PatchResolver) Resolve(ctx context.Context, trainingID int, ownerID string, req PatchRequest) (_ Columns, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trainings.patch.resolve")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	columns := Columns{}
	if req.Title.Set {
		columns[ColumnTitle] = req.Title.Value
	}
	if req.Description.Set {
		columns[ColumnDescription] = req.Description.Value
	}
	if req.Blocked.Set {
		columns[ColumnBlocked] = req.Blocked.Value
	}
	if req.Difficulty.Set {
		difficulty, err := pr.resolver.ResolveDifficulty(ctx, req.Difficulty.Value)
		if err != nil {
			return nil, asReferenceError(err)
		}
		columns[ColumnDifficultyID] = difficulty.ID
	}

	if req.Media.Set {
		handle, err := pr.media.Save(ctx, []byte(req.Media.Value), ownerID)
		if err != nil {
			return nil, fmt.Errorf("save media: %w", err)
		}
		log.Debugf("training %d: media saved as [%s]", trainingID, handle)
		columns[ColumnMedia] = handle
	}

	return columns, nil
}
