package memory

import (
	"context"

	"agriassist/internal/domain/entity"
)

func ptr[T any](v T) *T {
	return &v
}

// seed loads the reference crops, experts and alerts. Seeded records go through the
// normal create path and are indistinguishable from caller-created data afterwards.
func seed(store *Store) {
	ctx := context.Background()

	crops := NewCropRepository(store)
	for _, crop := range []entity.Crop{
		{Name: "Tomato", ScientificName: ptr("Solanum lycopersicum"), Category: "vegetables", ImageURL: ptr("/crops/tomato.jpg"), Description: ptr("Popular vegetable crop")},
		{Name: "Maize", ScientificName: ptr("Zea mays"), Category: "cereals", ImageURL: ptr("/crops/maize.jpg"), Description: ptr("Staple cereal crop")},
		{Name: "Rice", ScientificName: ptr("Oryza sativa"), Category: "cereals", ImageURL: ptr("/crops/rice.jpg"), Description: ptr("Primary food crop")},
		{Name: "Wheat", ScientificName: ptr("Triticum aestivum"), Category: "cereals", ImageURL: ptr("/crops/wheat.jpg"), Description: ptr("Essential grain crop")},
		{Name: "Potato", ScientificName: ptr("Solanum tuberosum"), Category: "vegetables", ImageURL: ptr("/crops/potato.jpg"), Description: ptr("Tuberous crop")},
		{Name: "Banana", ScientificName: ptr("Musa"), Category: "fruits", ImageURL: ptr("/crops/banana.jpg"), Description: ptr("Tropical fruit")},
	} {
		mustCreate(crops.CreateCrop(ctx, crop))
	}

	experts := NewExpertRepository(store)
	for _, expert := range []entity.Expert{
		{Name: "Dr. Rajesh Kumar", Specialization: []string{"vegetables", "pest_management"}, District: ptr("Punjab"), Languages: []string{"English", "Hindi"}, ContactEmail: ptr("rajesh@agri.gov"), AvatarURL: ptr(""), Verified: ptr(true)},
		{Name: "Mary Odhiambo", Specialization: []string{"cereals", "disease_control"}, District: ptr("Nakuru"), Languages: []string{"English", "Swahili"}, ContactEmail: ptr("mary@agri.ke"), AvatarURL: ptr(""), Verified: ptr(true)},
		{Name: "Ahmed Hassan", Specialization: []string{"fruits", "organic_farming"}, District: ptr("Fayoum"), Languages: []string{"Arabic", "English"}, ContactEmail: ptr("ahmed@agri.eg"), AvatarURL: ptr(""), Verified: ptr(true)},
	} {
		mustCreate(experts.CreateExpert(ctx, expert))
	}

	alerts := NewAlertRepository(store)
	for _, alert := range []entity.Alert{
		{Title: "Fall Armyworm Alert", Description: "Increased sightings in maize fields across the region", Type: "pest_outbreak", Severity: ptr("urgent"), Region: ptr("East Africa"), CropIDs: []string{}},
		{Title: "Late Blight Warning", Description: "Weather conditions favorable for potato late blight", Type: "weather", Severity: ptr("warning"), Region: ptr("South Asia"), CropIDs: []string{}},
		{Title: "New Subsidy Scheme", Description: "Government announces new crop insurance program", Type: "scheme", Severity: ptr("info"), Region: ptr("National"), CropIDs: []string{}},
	} {
		mustCreate(alerts.CreateAlert(ctx, alert))
	}
}

// mustCreate panics on a seed record the repositories reject; that is a programming error.
func mustCreate[T any](_ *T, err error) {
	if err != nil {
		panic(err)
	}
}
