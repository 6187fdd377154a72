// Package countries resolves country names from the sample dataset to ISO
// 3166-1 alpha-3 codes using an embedded registry. Resolution is exact
// (case-insensitive) against alpha-2 and alpha-3 codes, registry names,
// official state names, and a table of common dataset spellings; there is
// no fuzzy matching and no network dependency.
package countries

import (
	"fmt"
	"strings"

	"github.com/theiaprok/amr-visualizer/internal/types"
)

// Country describes one ISO 3166-1 entry. Code is the alpha-2 key, filled
// in from the registry map key. Official is the full state name ("Islamic
// Republic of Iran") where it differs from the short name; surveillance
// datasets use both forms.
type Country struct {
	Code     string
	Name     string
	Official string
	Alpha3   string
}

// UnknownCountryError reports a country name that matches no registry entry
// or alias. Callers drop the country from the run; resolution failures are
// never retried.
type UnknownCountryError struct {
	Name string
}

func (e *UnknownCountryError) Error() string {
	return fmt.Sprintf("unknown country %q", e.Name)
}

// Lookup indexes derived from the registry.
var (
	byName   = make(map[string]string) // lowercase name -> alpha-2
	byAlpha3 = make(map[string]string) // alpha-3 -> alpha-2
)

func init() {
	for code, country := range countries {
		country.Code = code
		countries[code] = country

		byName[strings.ToLower(country.Name)] = code
		if country.Official != "" {
			byName[strings.ToLower(country.Official)] = code
		}
		byAlpha3[country.Alpha3] = code
	}
}

// Resolve maps a country name (or code) to its ISO alpha-3 code.
func Resolve(name string) (string, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	if norm == "" {
		return "", &UnknownCountryError{Name: name}
	}

	if len(norm) == 2 {
		if country, ok := countries[strings.ToUpper(norm)]; ok {
			return country.Alpha3, nil
		}
	}
	if len(norm) == 3 {
		if code, ok := byAlpha3[strings.ToUpper(norm)]; ok {
			return countries[code].Alpha3, nil
		}
	}
	if code, ok := byName[norm]; ok {
		return countries[code].Alpha3, nil
	}
	if code, ok := aliases[norm]; ok {
		return countries[code].Alpha3, nil
	}

	return "", &UnknownCountryError{Name: name}
}

// Get returns the registry entry for an alpha-2 code.
func Get(alpha2 string) (Country, bool) {
	country, ok := countries[alpha2]
	return country, ok
}

// Filter resolves each stat's country to an ISO alpha-3 code. Stats whose
// country is not recognized are dropped entirely; the distinct dropped
// names are returned in first-appearance order so callers can surface them
// in verbose diagnostics. The default behavior is silent exclusion.
func Filter(stats []types.TypeStat) ([]types.ResolvedStat, []string) {
	resolved := make([]types.ResolvedStat, 0, len(stats))
	codes := make(map[string]string)
	var dropped []string

	for _, stat := range stats {
		code, seen := codes[stat.Country]
		if !seen {
			c, err := Resolve(stat.Country)
			if err != nil {
				codes[stat.Country] = ""
				dropped = append(dropped, stat.Country)
				continue
			}
			code = c
			codes[stat.Country] = c
		}
		if code == "" {
			continue
		}
		resolved = append(resolved, types.ResolvedStat{TypeStat: stat, ISOAlpha3: code})
	}

	return resolved, dropped
}
