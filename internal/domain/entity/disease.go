package entity

// Disease describes a crop disease or pest and how to treat it.
type Disease struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	CropID            *string  `json:"crop_id"` // Weak reference to a Crop; not checked on write.
	Symptoms          []string `json:"symptoms"`
	Causes            *string  `json:"causes"`
	OrganicTreatment  *string  `json:"organic_treatment"`
	ChemicalTreatment *string  `json:"chemical_treatment"`
	Prevention        *string  `json:"prevention"`
	ImageURLs         []string `json:"image_urls"`
	Severity          *string  `json:"severity"`
}
