// Package bio resolves codex specimen identifiers into genus, species
// and variant color. Identifiers look like
// "$Codex_Ent_Bacterial_01_F_Name;": a species prefix plus a color
// token naming either the local star class or a surface element.
package bio

import (
	"slices"
	"strings"
)

type suffixKind int

const (
	kindUnknown suffixKind = iota
	kindStar
	kindElement
)

var suffixKinds = map[string]suffixKind{
	"O": kindStar, "B": kindStar, "A": kindStar, "F": kindStar,
	"G": kindStar, "K": kindStar, "M": kindStar, "L": kindStar,
	"T": kindStar, "TTS": kindStar, "Y": kindStar, "W": kindStar,
	"D": kindStar, "N": kindStar, "H": kindStar,
	"Antimony": kindElement, "Polonium": kindElement, "Ruthenium": kindElement,
	"Technetium": kindElement, "Tellurium": kindElement, "Yttrium": kindElement,
	"Cadmium": kindElement, "Mercury": kindElement, "Molybdenum": kindElement,
	"Niobium": kindElement, "Tungsten": kindElement, "Tin": kindElement,
}

// ParseVariant resolves a specimen identifier into its genus id,
// species id and variant color. A bare species identifier resolves
// with an empty color. Identifiers that match no known species return
// three empty strings.
func ParseVariant(name string) (genus, species, color string) {
	for _, g := range genusOrder {
		if slices.Contains(speciesByGenus[g], name) {
			return g, name, ""
		}
		for _, prefix := range speciesPrefixes[g] {
			if !strings.HasPrefix(name, prefix) {
				continue
			}
			for _, sp := range speciesByGenus[g] {
				if !strings.HasPrefix(sp, prefix) {
					continue
				}
				token := strings.TrimPrefix(name, prefix)
				if i := strings.Index(token, "_Name"); i >= 0 {
					token = token[:i]
				}
				switch suffixKinds[token] {
				case kindStar:
					return g, sp, starColor(g, sp, token)
				case kindElement:
					return g, sp, genera[g].species[sp].element[strings.ToLower(token)]
				}
			}
		}
	}
	return "", "", ""
}

// starColor resolves a star class token against the exception table
// for species that double as genus ids, then the genus' per-species
// table, then the genus-wide table.
func starColor(genus, species, class string) string {
	if exc, ok := genera[species]; ok {
		return exc.star[class]
	}
	g := genera[genus]
	if table, ok := g.species[species]; ok {
		if color, ok := table.star[class]; ok {
			return color
		}
	}
	return g.star[class]
}
