package dto

import (
	"time"
	"tzconv/internal/domains/catalog"
	"tzconv/internal/domains/savedtimezone/model"
	"tzconv/shared/constant"

	"github.com/google/uuid"
)

type CreateSavedTimezoneRequest struct {
	TimezoneID string `json:"timezone_id" validate:"required,max=64"`
	Name       string `json:"name" validate:"required,max=255"`
}

func (c *CreateSavedTimezoneRequest) ToModel(owner string, now time.Time) model.SavedTimezone {
	return model.SavedTimezone{
		ID:         uuid.NewString(),
		TimezoneID: c.TimezoneID,
		Name:       c.Name,
		Owner:      owner,
		CreatedAt:  now.UTC(),
	}
}

type SavedTimezoneResponse struct {
	ID         string `json:"id"`
	TimezoneID string `json:"timezone_id"`
	Name       string `json:"name"`
	Offset     string `json:"offset"`
	Region     string `json:"region"`
}

// FromModel fills display fields from the catalog, falling back to the stored name.
func (r *SavedTimezoneResponse) FromModel(model model.SavedTimezone, offset string) {
	r.ID = model.ID
	r.TimezoneID = model.TimezoneID
	r.Name = model.Name
	r.Region = constant.UnknownRegion
	r.Offset = offset

	if entry, ok := catalog.Lookup(model.TimezoneID); ok {
		r.Name = entry.Name
		r.Region = entry.Region
	}
}
