package model

import "strings"

// OfficeLocation identifies the purchasing office. The numeric order is the
// listing order.
type OfficeLocation int

const (
	OfficeUnknown OfficeLocation = iota
	OfficeSpain
	OfficeSweden
	OfficeUSA
)

var officeNames = [...]string{
	OfficeUnknown: "Unknown",
	OfficeSpain:   "Spain",
	OfficeSweden:  "Sweden",
	OfficeUSA:     "USA",
}

func (o OfficeLocation) String() string {
	if o < 0 || int(o) >= len(officeNames) {
		return officeNames[OfficeUnknown]
	}
	return officeNames[o]
}

// Known reports whether o is one of the supported offices.
func (o OfficeLocation) Known() bool {
	return o > OfficeUnknown && int(o) < len(officeNames)
}

// ParseOfficeCode maps the single-letter menu code to an office.
// "S" is Sweden, "E" is Spain, "U" is USA; anything else is OfficeUnknown.
func ParseOfficeCode(code string) OfficeLocation {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "S":
		return OfficeSweden
	case "E":
		return OfficeSpain
	case "U":
		return OfficeUSA
	default:
		return OfficeUnknown
	}
}

// ParseOfficeName accepts either an office name as produced by String or a
// single-letter code.
func ParseOfficeName(name string) OfficeLocation {
	name = strings.TrimSpace(name)
	for i := OfficeSpain; i <= OfficeUSA; i++ {
		if strings.EqualFold(name, officeNames[i]) {
			return i
		}
	}
	return ParseOfficeCode(name)
}
