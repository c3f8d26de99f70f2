package model

// DefaultRegions lists every administrative region code in the national
// registry, in the order a full run iterates them.
var DefaultRegions = []string{
	"AC", "AL", "AM", "AP", "BA", "CE", "DF", "ES", "GO",
	"MA", "MG", "MS", "MT", "PA", "PB", "PE", "PI", "PR",
	"RJ", "RN", "RO", "RR", "RS", "SC", "SE", "SP", "TO",
}

// KnownRegion reports whether code is one of the registry's region codes.
func KnownRegion(code string) bool {
	for _, r := range DefaultRegions {
		if r == code {
			return true
		}
	}
	return false
}
