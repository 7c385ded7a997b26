package api

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the country and person endpoints on r.
func RegisterRoutes(r chi.Router, countries *CountryHandler, persons *PersonHandler) {
	r.Route("/countries", func(r chi.Router) {
		r.Post("/", countries.CreateCountry)
		r.Get("/", countries.ListCountries)
		r.Get("/{id}", countries.GetCountry)
	})

	r.Route("/persons", func(r chi.Router) {
		r.Get("/", persons.ListPersons)
		r.Post("/", persons.CreatePerson)
		r.Get("/export.csv", persons.ExportPersonsCSV)
		r.Get("/{id}", persons.GetPerson)
		r.Put("/{id}", persons.UpdatePerson)
		r.Delete("/{id}", persons.DeletePerson)
	})
}
