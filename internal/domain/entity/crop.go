package entity

// Crop is a reference crop that diseases and diagnoses point at.
type Crop struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	ScientificName *string `json:"scientific_name"`
	Category       string  `json:"category"` // e.g. "vegetables", "cereals", "fruits"
	ImageURL       *string `json:"image_url"`
	Description    *string `json:"description"`
}
