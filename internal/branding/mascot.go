// Package branding holds the deterministic pieces of a team's look: the mascot
// word derived from its name, the league palette and color sanitizing.
// Everything here is pure and safe for concurrent use.
package branding

import (
	"strings"
	"unicode"
	"unicode/utf16"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// vocabulary is scanned in order; the first word present in the team name wins.
var vocabulary = []string{
	"Tigers", "Tiger",
	"Lions", "Lion",
	"Bears", "Bear",
	"Wolves", "Wolf",
	"Foxes", "Fox",
	"Eagles", "Eagle",
	"Hawks", "Hawk",
	"Falcons", "Falcon",
	"Owls", "Owl",
	"Cardinals", "Cardinal",
	"Bulls", "Bull",
	"Rams", "Ram",
	"Broncos", "Bronco",
	"Mustangs", "Mustang",
	"Stallions", "Stallion",
	"Colts", "Colt",
	"Bison",
	"Buffaloes", "Buffalo",
	"Panthers", "Panther",
	"Jaguars", "Jaguar",
	"Cougars", "Cougar",
	"Bobcats", "Bobcat",
	"Wildcats", "Wildcat",
	"Grizzlies", "Grizzly",
	"Huskies", "Husky",
	"Badgers", "Badger",
	"Wolverines", "Wolverine",
	"Sharks", "Shark",
	"Dolphins", "Dolphin",
	"Gators", "Gator",
	"Cobras", "Cobra",
	"Vipers", "Viper",
	"Hornets", "Hornet",
	"Dragons", "Dragon",
	"Vikings", "Viking",
	"Titans", "Titan",
	"Spartans", "Spartan",
	"Trojans", "Trojan",
	"Warriors", "Warrior",
	"Knights", "Knight",
	"Gladiators", "Gladiator",
	"Pirates", "Pirate",
	"Buccaneers", "Buccaneer",
	"Raiders", "Raider",
	"Chargers", "Charger",
}

// pluralOf maps a lower-cased singular vocabulary word to its canonical plural.
var pluralOf = map[string]string{
	"tiger": "Tigers", "lion": "Lions", "bear": "Bears", "wolf": "Wolves",
	"fox": "Foxes", "eagle": "Eagles", "hawk": "Hawks", "falcon": "Falcons",
	"owl": "Owls", "cardinal": "Cardinals", "bull": "Bulls",
	"ram": "Rams", "bronco": "Broncos", "mustang": "Mustangs", "stallion": "Stallions",
	"colt": "Colts", "buffalo": "Buffaloes", "panther": "Panthers", "jaguar": "Jaguars",
	"cougar": "Cougars", "bobcat": "Bobcats", "wildcat": "Wildcats", "grizzly": "Grizzlies",
	"husky": "Huskies", "badger": "Badgers", "wolverine": "Wolverines", "shark": "Sharks",
	"dolphin": "Dolphins", "gator": "Gators", "cobra": "Cobras", "viper": "Vipers",
	"hornet": "Hornets", "dragon": "Dragons", "viking": "Vikings", "titan": "Titans",
	"spartan": "Spartans", "trojan": "Trojans", "warrior": "Warriors", "knight": "Knights",
	"gladiator": "Gladiators", "pirate": "Pirates", "buccaneer": "Buccaneers",
	"raider": "Raiders", "charger": "Chargers",
}

// mascotPool backs the hash fallback. Order is part of the output contract.
var mascotPool = []string{
	"Foxes",
	"Wolves",
	"Hawks",
	"Vipers",
	"Titans",
	"Knights",
	"Bulldogs",
	"Stallions",
	"Phantoms",
	"Raptors",
	"Cyclones",
	"Thunder",
	"Grizzlies",
	"Hornets",
	"Mavericks",
	"Outlaws",
}

const (
	hashOffset    uint32 = 2166136261
	fallbackInput        = "Team"
)

// DeriveMascot picks a mascot word for a team. A vocabulary word found in the
// team name wins (plural spelling preferred); otherwise the owner name, team
// name or the literal "Team" is hashed into the fallback pool.
func DeriveMascot(teamName, ownerName string) string {
	tokens := tokenize(teamName)
	if len(tokens) > 0 {
		present := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			present[tok] = struct{}{}
		}
		for _, word := range vocabulary {
			key := lower(word)
			if _, ok := present[key]; !ok {
				continue
			}
			if plural, ok := pluralOf[key]; ok {
				return plural
			}
			return word
		}
	}

	source := fallbackInput
	switch {
	case ownerName != "":
		source = ownerName
	case teamName != "":
		source = teamName
	}
	h := hashString(lower(source))
	return mascotPool[h%uint32(len(mascotPool))]
}

// tokenize lower-cases the letter/digit runs of a name.
func tokenize(name string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, name)

	fields := strings.Fields(cleaned)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tokens = append(tokens, lower(f))
	}
	return tokens
}

// hashString runs the 32-bit FNV-1a variant over UTF-16 code units.
func hashString(s string) uint32 {
	h := hashOffset
	for _, c := range utf16.Encode([]rune(s)) {
		h ^= uint32(c)
		h += (h << 1) + (h << 4) + (h << 7) + (h << 8) + (h << 24)
	}
	return h
}

// lower builds a fresh Caser per call; cases.Caser is not safe to share.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
