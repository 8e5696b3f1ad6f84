package badge

import (
	"badge-promotion-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNotReservable = errs.New("badge application is not reservable")

// Application is the slice of a catalog badge application the engine needs.
// Category and level come from the badge definition the application points at.
type Application struct {
	id                uuid.UUID
	applicantID       uuid.UUID
	definitionID      uuid.UUID
	definitionVersion int
	title             string
	category          Category
	level             Level
	status            ApplicationStatus
}

func ReconstructApplication(id, applicantID, definitionID uuid.UUID, definitionVersion int, title string, category Category, level Level, status ApplicationStatus) *Application {
	return &Application{
		id:                id,
		applicantID:       applicantID,
		definitionID:      definitionID,
		definitionVersion: definitionVersion,
		title:             title,
		category:          category,
		level:             level,
		status:            status,
	}
}

func (a *Application) ID() uuid.UUID             { return a.id }
func (a *Application) ApplicantID() uuid.UUID    { return a.applicantID }
func (a *Application) DefinitionID() uuid.UUID   { return a.definitionID }
func (a *Application) DefinitionVersion() int    { return a.definitionVersion }
func (a *Application) Title() string             { return a.title }
func (a *Application) Category() Category        { return a.category }
func (a *Application) Level() Level              { return a.level }
func (a *Application) Status() ApplicationStatus { return a.status }
func (a *Application) Key() Key                  { return Key{Category: a.category, Level: a.level} }

// EnsureReservable rejects anything but an accepted application.
func (a *Application) EnsureReservable() error {
	if a.status != StatusAccepted {
		return ErrNotReservable
	}
	return nil
}
