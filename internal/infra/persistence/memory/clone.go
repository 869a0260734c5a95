package memory

import (
	"maps"
	"slices"
	"time"

	"agriassist/internal/domain/entity"

	"github.com/mitchellh/copystructure"
)

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s

	return &v
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b

	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t

	return &v
}

func cloneUser(u entity.User) entity.User {
	u.Email = cloneString(u.Email)
	u.Language = cloneString(u.Language)

	return u
}

func cloneCrop(c entity.Crop) entity.Crop {
	c.ScientificName = cloneString(c.ScientificName)
	c.ImageURL = cloneString(c.ImageURL)
	c.Description = cloneString(c.Description)

	return c
}

func cloneDisease(d entity.Disease) entity.Disease {
	d.CropID = cloneString(d.CropID)
	d.Symptoms = slices.Clone(d.Symptoms)
	d.Causes = cloneString(d.Causes)
	d.OrganicTreatment = cloneString(d.OrganicTreatment)
	d.ChemicalTreatment = cloneString(d.ChemicalTreatment)
	d.Prevention = cloneString(d.Prevention)
	d.ImageURLs = slices.Clone(d.ImageURLs)
	d.Severity = cloneString(d.Severity)

	return d
}

func cloneDiagnosis(d entity.Diagnosis) entity.Diagnosis {
	d.ImageURL = cloneString(d.ImageURL)
	d.CropID = cloneString(d.CropID)
	d.Symptoms = slices.Clone(d.Symptoms)
	d.UserID = cloneString(d.UserID)
	d.Results = slices.Clone(d.Results)
	d.AIAnalysis = cloneString(d.AIAnalysis)
	d.Recommendations = cloneString(d.Recommendations)

	return d
}

func cloneExpert(e entity.Expert) entity.Expert {
	e.Specialization = slices.Clone(e.Specialization)
	e.District = cloneString(e.District)
	e.Languages = slices.Clone(e.Languages)
	e.ContactEmail = cloneString(e.ContactEmail)
	e.ContactPhone = cloneString(e.ContactPhone)
	e.AvatarURL = cloneString(e.AvatarURL)
	e.Verified = cloneBool(e.Verified)

	return e
}

func cloneAlert(a entity.Alert) entity.Alert {
	a.Severity = cloneString(a.Severity)
	a.Region = cloneString(a.Region)
	a.CropIDs = slices.Clone(a.CropIDs)
	a.ExpiresAt = cloneTime(a.ExpiresAt)

	return a
}

func cloneChatMessage(m entity.ChatMessage) entity.ChatMessage {
	m.UserID = cloneString(m.UserID)
	m.ImageURL = cloneString(m.ImageURL)
	m.Metadata = cloneMetadata(m.Metadata)

	return m
}

// cloneMetadata deep-copies nested maps and slices. It falls back to a top-level copy
// for values copystructure cannot walk.
func cloneMetadata(md map[string]any) map[string]any {
	if md == nil {
		return nil
	}

	copied, err := copystructure.Copy(md)
	if err != nil {
		return maps.Clone(md)
	}

	return copied.(map[string]any)
}

func cloneFeedback(f entity.Feedback) entity.Feedback {
	f.Name = cloneString(f.Name)
	f.Email = cloneString(f.Email)

	return f
}
