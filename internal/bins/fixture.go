package bins

import "github.com/SimoSabev/sortex/internal/models"

// Fixture returns a static set of Sofia drop-off points, used when the
// Overpass provider is disabled in config.
func Fixture() []models.Bin {
	return []models.Bin{
		{ID: 1, Name: "NDK Recycling Point", Lat: 42.684569, Lng: 23.318631, Type: "plastic", Address: "bul. Bulgaria 1", Description: "plastic, paper", Hours: "24/7"},
		{ID: 2, Name: "Borisova Gradina Containers", Lat: 42.681570, Lng: 23.339712, Type: "glass", Address: "Borisova gradina", Description: "glass", Hours: "24/7"},
		{ID: 3, Name: "Serdika Center Drop-off", Lat: 42.691110, Lng: 23.353817, Type: "ewaste", Address: "bul. Sitnyakovo 48", Description: "electronics, metal", Hours: "Mo-Su 10:00-21:00"},
		{ID: 4, Name: "Student City Textile Bank", Lat: 42.650000, Lng: 23.345000, Type: "textile", Address: "Studentski grad", Description: "textile", Hours: "24/7"},
		{ID: 5, Name: "Lavov Most Mixed Point", Lat: 42.703748, Lng: 23.324397, Type: "mixed", Address: "pl. Lavov Most", Description: "cartons, batteries", Hours: "24/7"},
		{ID: 6, Name: "Vitosha Blvd Paper Bins", Lat: 42.689700, Lng: 23.319400, Type: "paper", Address: "bul. Vitosha 100", Description: "paper", Hours: "24/7"},
		{ID: 7, Name: "Mladost Metal Yard", Lat: 42.650900, Lng: 23.377900, Type: "metal", Address: "bul. Aleksandar Malinov 23", Description: "metal, cans", Hours: "Mo-Sa 08:00-18:00"},
	}
}
