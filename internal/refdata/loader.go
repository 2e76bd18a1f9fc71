package refdata

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet names in the master source workbook.
const (
	sheetNames      = "Names"
	sheetPlacesCDN  = "PlacesCDN"
	sheetTheaters   = "Theaters"
	sheetCourses    = "Courses"
	sheetSummerJobs = "SummerJobs"
	sheetBusinesses = "Businesses"
)

// Load reads the master source workbook and returns a Provider backed
// by its tables. Sheets that are missing or empty keep the built-in
// fallback rows, so a partially filled workbook still yields a fully
// functional provider.
func Load(path string, rng *rand.Rand) (*Provider, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	p := New(rng)

	if names, err := loadNames(f); err == nil && len(names) > 0 {
		p.names = names
	}
	if cities, err := loadCities(f); err == nil && len(cities) > 0 {
		p.cities = cities
	}
	if venues := loadColumn(f, sheetTheaters, "BusinessName"); len(venues) > 0 {
		p.venues = venues
	}
	if courses := loadColumn(f, sheetCourses, "Course Title"); len(courses) > 0 {
		p.courses = courses
	}
	if jobs := loadColumn(f, sheetSummerJobs, "Summer Job Descriptions"); len(jobs) > 0 {
		p.jobs = jobs
	}
	if businesses := loadColumn(f, sheetBusinesses, "BusinessName"); len(businesses) > 0 {
		p.businesses = businesses
	}

	slog.Info("reference data loaded",
		"names", len(p.names), "cities", len(p.cities), "venues", len(p.venues))
	return p, nil
}

func loadNames(f *excelize.File) ([]Name, error) {
	rows, err := f.GetRows(sheetNames)
	if err != nil {
		return nil, err
	}
	cols := headerIndex(rows)
	var names []Name
	for _, row := range dataRows(rows) {
		n := Name{
			FullName:  cell(row, col(cols, "FullName")),
			FirstName: cell(row, col(cols, "FirstName")),
			LastName:  cell(row, col(cols, "LastName")),
			Title:     cell(row, col(cols, "Title")),
		}
		if n.LastName == "" {
			continue
		}
		// Display form is title + last name when a title exists.
		if n.Title != "" {
			n.FullName = n.Title + " " + n.LastName
		} else if n.FullName == "" {
			n.FullName = strings.TrimSpace(n.FirstName + " " + n.LastName)
		}
		names = append(names, n)
	}
	return names, nil
}

func loadCities(f *excelize.File) ([]City, error) {
	rows, err := f.GetRows(sheetPlacesCDN)
	if err != nil {
		return nil, err
	}
	cols := headerIndex(rows)
	var cities []City
	for _, row := range dataRows(rows) {
		c := City{
			City:   cell(row, col(cols, "City")),
			Region: cell(row, col(cols, "Province/Territory")),
		}
		if c.City == "" {
			continue
		}
		abbr := cell(row, col(cols, "Abbr"))
		if abbr != "" {
			c.DisplayForm = c.City + ", " + abbr
		} else {
			c.DisplayForm = c.City
		}
		cities = append(cities, c)
	}
	return cities, nil
}

// loadColumn reads one named column from a sheet, skipping blank cells.
func loadColumn(f *excelize.File, sheet, column string) []string {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil
	}
	cols := headerIndex(rows)
	idx, ok := cols[column]
	if !ok {
		return nil
	}
	var values []string
	for _, row := range dataRows(rows) {
		if v := cell(row, idx); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// headerIndex maps header names in the first row to column positions.
func headerIndex(rows [][]string) map[string]int {
	cols := make(map[string]int)
	if len(rows) == 0 {
		return cols
	}
	for i, h := range rows[0] {
		cols[strings.TrimSpace(h)] = i
	}
	return cols
}

// col returns the position of a named column, or -1 when absent.
func col(cols map[string]int, name string) int {
	idx, ok := cols[name]
	if !ok {
		return -1
	}
	return idx
}

func dataRows(rows [][]string) [][]string {
	if len(rows) <= 1 {
		return nil
	}
	return rows[1:]
}

// cell returns the trimmed cell at idx, or "" when the row is short.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
