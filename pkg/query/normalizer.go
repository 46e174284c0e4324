package query

import (
	"regexp"
	"strings"
)

// Category is a JoSAA/CSAB seat type code.
type Category string

const (
	CategoryOpen      Category = "OPEN"
	CategoryOpenPwD   Category = "OPEN (PwD)"
	CategoryEWS       Category = "EWS"
	CategoryEWSPwD    Category = "EWS (PwD)"
	CategoryOBCNCL    Category = "OBC-NCL"
	CategoryOBCNCLPwD Category = "OBC-NCL (PwD)"
	CategorySC        Category = "SC"
	CategorySCPwD     Category = "SC (PwD)"
	CategoryST        Category = "ST"
	CategorySTPwD     Category = "ST (PwD)"
)

// Categories lists every seat type in the order the predictor forms offer them.
var Categories = []Category{
	CategoryOpen, CategoryOpenPwD,
	CategoryEWS, CategoryEWSPwD,
	CategoryOBCNCL, CategoryOBCNCLPwD,
	CategorySC, CategorySCPwD,
	CategoryST, CategorySTPwD,
}

// IsValid reports whether c is one of the known seat types.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ExamType identifies which rank list a candidate holds.
type ExamType string

const (
	ExamJEEMain     ExamType = "JEE Main"
	ExamJEEAdvanced ExamType = "JEE Advanced"
)

// IsValid reports whether e is a supported exam.
func (e ExamType) IsValid() bool {
	return e == ExamJEEMain || e == ExamJEEAdvanced
}

// synonym maps a lower-case phrase to its canonical value.
type synonym struct {
	phrase string
	value  string
}

// categorySynonyms is evaluated top to bottom and the first hit wins.
// Every PwD phrase sits above the base phrase it contains.
var categorySynonyms = []synonym{
	{"gen pwd", string(CategoryOpenPwD)},
	{"gen-pwd", string(CategoryOpenPwD)},
	{"general pwd", string(CategoryOpenPwD)},
	{"general-pwd", string(CategoryOpenPwD)},
	{"open pwd", string(CategoryOpenPwD)},
	{"open-pwd", string(CategoryOpenPwD)},

	{"ews pwd", string(CategoryEWSPwD)},
	{"ews-pwd", string(CategoryEWSPwD)},

	{"obc ncl pwd", string(CategoryOBCNCLPwD)},
	{"obc-ncl pwd", string(CategoryOBCNCLPwD)},
	{"obc-ncl-pwd", string(CategoryOBCNCLPwD)},

	{"sc pwd", string(CategorySCPwD)},
	{"sc-pwd", string(CategorySCPwD)},

	{"st pwd", string(CategorySTPwD)},
	{"st-pwd", string(CategorySTPwD)},

	{"obc ncl", string(CategoryOBCNCL)},
	{"obc-ncl", string(CategoryOBCNCL)},
	{"obc", string(CategoryOBCNCL)},
	{"sc", string(CategorySC)},
	{"st", string(CategoryST)},
	{"ews", string(CategoryEWS)},
	{"gen", string(CategoryOpen)},
	{"general", string(CategoryOpen)},
	{"open", string(CategoryOpen)},
}

// stateSynonyms is checked before citySynonyms.
var stateSynonyms = []synonym{
	{"andhra pradesh", "Andhra Pradesh"},
	{"arunachal pradesh", "Arunachal Pradesh"},
	{"assam", "Assam"},
	{"bihar", "Bihar"},
	{"chhattisgarh", "Chhattisgarh"},
	{"goa", "Goa"},
	{"gujarat", "Gujarat"},
	{"haryana", "Haryana"},
	{"himachal pradesh", "Himachal Pradesh"},
	{"jammu", "Jammu and Kashmir"},
	{"kashmir", "Jammu and Kashmir"},
	{"jharkhand", "Jharkhand"},
	{"karnataka", "Karnataka"},
	{"kerala", "Kerala"},
	{"madhya pradesh", "Madhya Pradesh"},
	{"maharashtra", "Maharashtra"},
	{"manipur", "Manipur"},
	{"meghalaya", "Meghalaya"},
	{"mizoram", "Mizoram"},
	{"nagaland", "Nagaland"},
	{"odisha", "Odisha"},
	{"orissa", "Odisha"},
	{"punjab", "Punjab"},
	{"rajasthan", "Rajasthan"},
	{"sikkim", "Sikkim"},
	{"tamil nadu", "Tamil Nadu"},
	{"telangana", "Telangana"},
	{"tripura", "Tripura"},
	{"uttar pradesh", "Uttar Pradesh"},
	{"uttarakhand", "Uttarakhand"},
	{"west bengal", "West Bengal"},
	{"delhi", "Delhi"},
	{"ladakh", "Ladakh"},
	{"chandigarh", "Chandigarh"},
	{"andaman and nicobar", "Andaman and Nicobar Islands"},
	{"dadra and nagar haveli", "Dadra and Nagar Haveli and Daman and Diu"},
	{"daman and diu", "Dadra and Nagar Haveli and Daman and Diu"},
	{"puducherry", "Puducherry"},
	{"lakshadweep", "Lakshadweep"},
}

// citySynonyms maps NIT host cities to their state.
var citySynonyms = []synonym{
	{"warangal", "Telangana"},
	{"trichy", "Tamil Nadu"},
	{"kurukshetra", "Haryana"},
	{"jaipur", "Rajasthan"},
	{"surat", "Gujarat"},
	{"gandhinagar", "Gujarat"},
}

// branchSynonyms canonicalizes whatever the branch pattern captured.
var branchSynonyms = map[string]string{
	"cse":                    "CSE",
	"computer science":       "CSE",
	"ece":                    "ECE",
	"electronics":            "ECE",
	"electrical":             "Electrical",
	"mechanical":             "Mechanical",
	"civil":                  "Civil",
	"it":                     "IT",
	"information technology": "IT",
}

// boundaryMatcher pairs a compiled word-boundary pattern with its value.
type boundaryMatcher struct {
	pattern *regexp.Regexp
	value   string
}

var (
	categoryMatchers = compileBoundary(categorySynonyms)
	stateMatchers    = compileBoundary(stateSynonyms)
	cityMatchers     = compileBoundary(citySynonyms)
)

func compileBoundary(table []synonym) []boundaryMatcher {
	matchers := make([]boundaryMatcher, 0, len(table))
	for _, s := range table {
		matchers = append(matchers, boundaryMatcher{
			pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(s.phrase) + `\b`),
			value:   s.value,
		})
	}
	return matchers
}

// NormalizeCategory returns the seat type of the first synonym found in
// lower, which must already be lower-cased. Synonyms only match as whole
// words so "st" never fires inside "best".
func NormalizeCategory(lower string) (Category, bool) {
	for _, m := range categoryMatchers {
		if m.pattern.MatchString(lower) {
			return Category(m.value), true
		}
	}
	return "", false
}

// NormalizeState resolves a state or UT, trying explicit state names before
// city names.
func NormalizeState(lower string) (string, bool) {
	for _, m := range stateMatchers {
		if m.pattern.MatchString(lower) {
			return m.value, true
		}
	}
	for _, m := range cityMatchers {
		if m.pattern.MatchString(lower) {
			return m.value, true
		}
	}
	return "", false
}

// NormalizeBranch maps a captured branch mention to its short name.
func NormalizeBranch(raw string) (string, bool) {
	v, ok := branchSynonyms[strings.ToLower(strings.TrimSpace(raw))]
	return v, ok
}

// States returns the distinct canonical state names in table order.
func States() []string {
	seen := make(map[string]bool, len(stateSynonyms))
	out := make([]string, 0, len(stateSynonyms))
	for _, s := range stateSynonyms {
		if !seen[s.value] {
			seen[s.value] = true
			out = append(out, s.value)
		}
	}
	return out
}

// branchNames holds the fragment of the official programme name each short
// branch appears under in cutoff tables.
var branchNames = map[string]string{
	"CSE":        "Computer Science",
	"ECE":        "Electronics",
	"Electrical": "Electrical",
	"Mechanical": "Mechanical",
	"Civil":      "Civil",
	"IT":         "Information Technology",
}

// BranchSearchTerm returns the programme-name fragment for a short branch.
func BranchSearchTerm(short string) string {
	if name, ok := branchNames[short]; ok {
		return name
	}
	return short
}
