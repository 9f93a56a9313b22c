package services

import "github.com/Githubuser289/Calories-BE/models"

// RestrictedTitles filters the catalog down to the titles a given blood
// type should avoid, preserving catalog order. Returns an empty slice,
// never nil, for an empty catalog.
func RestrictedTitles(products []models.Product, bloodType int) []string {
	titles := make([]string, 0)
	for i := range products {
		if products[i].NotAllowedFor(bloodType) {
			titles = append(titles, products[i].Title)
		}
	}
	return titles
}
