package catalog

import "github.com/BruksfildServices01/service-marketplace/internal/models"

// DefaultMasterServices is the template catalog every store is seeded with.
// Seeding matches on name, so renaming an entry adds a row.
func DefaultMasterServices() []models.MasterService {
	return []models.MasterService{
		{Name: "Haircut", Description: "Cut and style", Type: "beauty"},
		{Name: "Manicure", Description: "Nail care and polish", Type: "beauty"},
		{Name: "Massage", Description: "Relaxing full body massage", Type: "wellness"},
		{Name: "Plumbing repair", Description: "Leaks, pipes and fixtures", Type: "home"},
		{Name: "House cleaning", Description: "Standard home cleaning", Type: "home"},
		{Name: "Personal training", Description: "One-on-one fitness session", Type: "fitness"},
	}
}
