package itunes

import (
	"slices"
	"strings"
)

// Country is the lowercase ISO 3166-1 alpha-2 code of a store front
type Country string

// Store fronts
const (
	CountryArgentina          Country = "ar"
	CountryAustralia          Country = "au"
	CountryAustria            Country = "at"
	CountryBelgium            Country = "be"
	CountryBrazil             Country = "br"
	CountryBulgaria           Country = "bg"
	CountryCanada             Country = "ca"
	CountryChile              Country = "cl"
	CountryChina              Country = "cn"
	CountryColombia           Country = "co"
	CountryCzechRepublic      Country = "cz"
	CountryDenmark            Country = "dk"
	CountryEgypt              Country = "eg"
	CountryFinland            Country = "fi"
	CountryFrance             Country = "fr"
	CountryGermany            Country = "de"
	CountryGreece             Country = "gr"
	CountryHongKong           Country = "hk"
	CountryHungary            Country = "hu"
	CountryIndia              Country = "in"
	CountryIndonesia          Country = "id"
	CountryIreland            Country = "ie"
	CountryIsrael             Country = "il"
	CountryItaly              Country = "it"
	CountryJapan              Country = "jp"
	CountryKorea              Country = "kr"
	CountryLuxembourg         Country = "lu"
	CountryMalaysia           Country = "my"
	CountryMexico             Country = "mx"
	CountryNetherlands        Country = "nl"
	CountryNewZealand         Country = "nz"
	CountryNorway             Country = "no"
	CountryPeru               Country = "pe"
	CountryPhilippines        Country = "ph"
	CountryPoland             Country = "pl"
	CountryPortugal           Country = "pt"
	CountryRomania            Country = "ro"
	CountryRussia             Country = "ru"
	CountrySaudiArabia        Country = "sa"
	CountrySingapore          Country = "sg"
	CountrySlovakia           Country = "sk"
	CountrySouthAfrica        Country = "za"
	CountrySpain              Country = "es"
	CountrySweden             Country = "se"
	CountrySwitzerland        Country = "ch"
	CountryTaiwan             Country = "tw"
	CountryThailand           Country = "th"
	CountryTurkey             Country = "tr"
	CountryUkraine            Country = "ua"
	CountryUnitedArabEmirates Country = "ae"
	CountryUnitedKingdom      Country = "gb"
	CountryUnitedStates       Country = "us"
	CountryVietnam            Country = "vn"
)

var countries = []Country{
	CountryArgentina, CountryAustralia, CountryAustria, CountryBelgium, CountryBrazil, CountryBulgaria,
	CountryCanada, CountryChile, CountryChina, CountryColombia, CountryCzechRepublic, CountryDenmark,
	CountryEgypt, CountryFinland, CountryFrance, CountryGermany, CountryGreece, CountryHongKong,
	CountryHungary, CountryIndia, CountryIndonesia, CountryIreland, CountryIsrael, CountryItaly,
	CountryJapan, CountryKorea, CountryLuxembourg, CountryMalaysia, CountryMexico, CountryNetherlands,
	CountryNewZealand, CountryNorway, CountryPeru, CountryPhilippines, CountryPoland, CountryPortugal,
	CountryRomania, CountryRussia, CountrySaudiArabia, CountrySingapore, CountrySlovakia, CountrySouthAfrica,
	CountrySpain, CountrySweden, CountrySwitzerland, CountryTaiwan, CountryThailand, CountryTurkey,
	CountryUkraine, CountryUnitedArabEmirates, CountryUnitedKingdom, CountryUnitedStates, CountryVietnam,
}

// Countries returns every known store front
func Countries() []Country {
	return slices.Clone(countries)
}

// String returns the ISO code
func (c Country) String() string {
	return string(c)
}

// ParseCountry resolves a country code, ignoring case and surrounding whitespace
func ParseCountry(code string) (Country, error) {
	c := Country(strings.ToLower(strings.TrimSpace(code)))
	if !slices.Contains(countries, c) {
		return "", NewInputError("country", code, "unknown store front")
	}
	return c, nil
}

// Lang is the language of the returned results
type Lang string

const (
	// LangEnglish requests English (US) results
	LangEnglish Lang = "en_us"
	// LangJapanese requests Japanese results
	LangJapanese Lang = "ja_jp"
)

// String returns the wire code
func (l Lang) String() string {
	return string(l)
}

// ParseLang resolves a language code
func ParseLang(code string) (Lang, error) {
	switch l := Lang(strings.ToLower(strings.TrimSpace(code))); l {
	case LangEnglish, LangJapanese:
		return l, nil
	}
	return "", NewInputError("lang", code, "must be en_us or ja_jp")
}

// Sort orders Lookup results
type Sort string

const (
	// SortPopular orders by popularity
	SortPopular Sort = "popular"
	// SortRecent orders by release date
	SortRecent Sort = "recent"
)

// String returns the wire code
func (s Sort) String() string {
	return string(s)
}

// ParseSort resolves a sort order
func ParseSort(code string) (Sort, error) {
	switch s := Sort(strings.ToLower(strings.TrimSpace(code))); s {
	case SortPopular, SortRecent:
		return s, nil
	}
	return "", NewInputError("sort", code, "must be popular or recent")
}
