package promotion

import (
	"time"

	"badge-promotion-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrTemplateInactive = errs.New("promotion template is inactive")

// Template is a catalog entry describing a promotion path step and the badge
// rules a candidate must satisfy.
type Template struct {
	id        uuid.UUID
	name      string
	path      Path
	fromLevel PositionLevel
	toLevel   PositionLevel
	rules     []Rule
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

func ReconstructTemplate(id uuid.UUID, name string, path Path, fromLevel, toLevel PositionLevel, rules []Rule, active bool, createdAt, updatedAt time.Time) *Template {
	return &Template{
		id:        id,
		name:      name,
		path:      path,
		fromLevel: fromLevel,
		toLevel:   toLevel,
		rules:     rules,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (t *Template) ID() uuid.UUID            { return t.id }
func (t *Template) Name() string             { return t.name }
func (t *Template) Path() Path               { return t.path }
func (t *Template) FromLevel() PositionLevel { return t.fromLevel }
func (t *Template) ToLevel() PositionLevel   { return t.toLevel }
func (t *Template) IsActive() bool           { return t.active }
func (t *Template) CreatedAt() time.Time     { return t.createdAt }
func (t *Template) UpdatedAt() time.Time     { return t.updatedAt }

func (t *Template) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}
