// Package refdata supplies randomly sampled contextual facts (names,
// cities, venues, jobs, courses, businesses) used to fill narrative
// placeholders. Tables come from the master source workbook when
// available; otherwise built-in fallback rows keep every sampler
// functional.
package refdata

import (
	"math/rand"
)

// Name is a sampled person with honorific.
type Name struct {
	FullName  string // Title + last name, e.g. "Ms. Chen"
	FirstName string
	LastName  string
	Title     string // "Mr.", "Ms.", "Dr.", ...
}

// City is a sampled place.
type City struct {
	City        string
	Region      string // Province or territory
	DisplayForm string // "Winnipeg, MB"
}

// Provider samples contextual facts from in-memory tables. Every call
// is an independent draw from the injected random stream; the provider
// holds no other mutable state.
type Provider struct {
	rng *rand.Rand

	names      []Name
	cities     []City
	venues     []string
	courses    []string
	jobs       []string
	businesses []string
}

// New returns a Provider backed by the built-in fallback tables.
func New(rng *rand.Rand) *Provider {
	return &Provider{
		rng:        rng,
		names:      fallbackNames(),
		cities:     fallbackCities(),
		venues:     fallbackVenues(),
		courses:    fallbackCourses(),
		jobs:       fallbackJobs(),
		businesses: fallbackBusinesses(),
	}
}

// SampleName returns a random name row. With an empty table the fixed
// fallback "Mr. Alex Chen" is returned.
func (p *Provider) SampleName() Name {
	if len(p.names) == 0 {
		return Name{FullName: "Mr. Chen", FirstName: "Alex", LastName: "Chen", Title: "Mr."}
	}
	return p.names[p.rng.Intn(len(p.names))]
}

// SampleCity returns a random city row, or Winnipeg as the fixed fallback.
func (p *Provider) SampleCity() City {
	if len(p.cities) == 0 {
		return City{City: "Winnipeg", Region: "Manitoba", DisplayForm: "Winnipeg, MB"}
	}
	return p.cities[p.rng.Intn(len(p.cities))]
}

// SampleVenue returns a random venue name, or "The Grand Theatre".
func (p *Provider) SampleVenue() string {
	return p.sampleString(p.venues, "The Grand Theatre")
}

// SampleCourse returns a random course title, or "Mathematics".
func (p *Provider) SampleCourse() string {
	return p.sampleString(p.courses, "Mathematics")
}

// SampleJob returns a random job description, or "mowing lawns".
func (p *Provider) SampleJob() string {
	return p.sampleString(p.jobs, "mowing lawns")
}

// SampleBusiness returns a random business name, or "Local Business".
func (p *Provider) SampleBusiness() string {
	return p.sampleString(p.businesses, "Local Business")
}

func (p *Provider) sampleString(table []string, fallback string) string {
	if len(table) == 0 {
		return fallback
	}
	return table[p.rng.Intn(len(table))]
}

func fallbackNames() []Name {
	return []Name{
		{FullName: "Mr. Chen", FirstName: "Alex", LastName: "Chen", Title: "Mr."},
		{FullName: "Ms. Smith", FirstName: "Jordan", LastName: "Smith", Title: "Ms."},
		{FullName: "Dr. Brown", FirstName: "Taylor", LastName: "Brown", Title: "Dr."},
		{FullName: "Ms. Lee", FirstName: "Morgan", LastName: "Lee", Title: "Ms."},
		{FullName: "Mr. Park", FirstName: "Casey", LastName: "Park", Title: "Mr."},
	}
}

func fallbackCities() []City {
	return []City{
		{City: "Winnipeg", Region: "Manitoba", DisplayForm: "Winnipeg, MB"},
		{City: "Brandon", Region: "Manitoba", DisplayForm: "Brandon, MB"},
		{City: "Thompson", Region: "Manitoba", DisplayForm: "Thompson, MB"},
		{City: "Portage la Prairie", Region: "Manitoba", DisplayForm: "Portage la Prairie, MB"},
		{City: "Steinbach", Region: "Manitoba", DisplayForm: "Steinbach, MB"},
	}
}

func fallbackVenues() []string {
	return []string{
		"The Grand Theatre",
		"Royal Concert Hall",
		"City Auditorium",
		"Community Playhouse",
		"Arts Centre",
	}
}

func fallbackCourses() []string {
	return []string{"Mathematics", "English", "Science", "History", "Art"}
}

func fallbackJobs() []string {
	return []string{"mowing lawns", "babysitting", "tutoring", "dog walking", "retail sales"}
}

func fallbackBusinesses() []string {
	return []string{
		"Prairie Outfitters",
		"Northside Hardware",
		"Maple Leaf Catering",
		"Red River Print Shop",
		"Lakeview Garden Centre",
	}
}
