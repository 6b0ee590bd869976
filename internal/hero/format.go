package hero

import (
	"math"
	"strconv"
	"strings"
)

// FormatInfo renders a fetched character as one reply: a greeting naming
// the requester, then a bolded section per category in payload order.
// URL-valued attributes are rendered bare; everything else as
// "Title Cased Name: value".
func FormatInfo(info *CharacterInfo, mention string) string {
	var sb strings.Builder
	sb.WriteString("Here is the information you requested about " + info.Name + ", " + mention + ".\n\n")

	for cat := info.Categories.Oldest(); cat != nil; cat = cat.Next() {
		sb.WriteString("**" + strings.ToUpper(cat.Key) + "**\n")
		for attr := cat.Value.Oldest(); attr != nil; attr = attr.Next() {
			if attr.Key == "url" {
				sb.WriteString(attr.Value.String())
				continue
			}
			name := titleCase(strings.ReplaceAll(attr.Key, "-", " "))
			sb.WriteString(name + ": " + attr.Value.String() + "\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatSearchResults lists the ids matching a search term, or a "none
// found" message with a fallback web-search URL.
func FormatSearchResults(ids []string, searchTerm string) string {
	results := "Here are the possible IDs that match the search term \"" + searchTerm + "\": "
	if len(ids) == 0 {
		results += "None found.\n\n"
		results += "It appears as if no matching ID for this character was found in my database. "
		results += "It is possible that they are not a threat for a truly intelligent specimen such as myself. "
		results += "Perhaps you will have more luck searching through a measly human database.\n\n"
		results += "https://www.google.com/search?q=" + searchTerm
		return results
	}
	return results + strings.Join(ids, ", ")
}

// PredictOutcome weighs two characters' summed power stats into win
// percentages. The strictly stronger side gets its name and percentage
// bolded; equal scores (including the zero/zero case) split 50.0/50.0
// with no emphasis.
func PredictOutcome(a, b *CharacterInfo) string {
	scoreA := powerScore(a)
	scoreB := powerScore(b)

	nameA, nameB := a.Name, b.Name
	probA := formatPercent(winChance(scoreA, scoreB)) + "%"
	probB := formatPercent(winChance(scoreB, scoreA)) + "%"

	if scoreA > scoreB {
		nameA = "**" + nameA + "**"
		probA = "**" + probA + "**"
	} else if scoreB > scoreA {
		nameB = "**" + nameB + "**"
		probB = "**" + probB + "**"
	}

	result := "*Neural network is now simulating battle between " + a.Name + " and " + b.Name + ".*\n\n"
	result += "According to my calculations, " + nameA + " has a " + probA +
		" chance of winning the battle, while " + nameB + " has a " + probB +
		" chance of winning the battle."
	return result
}

// powerScore sums every numeric value under the powerstats category.
// The service reports missing stats as the literal "null"; those count
// as zero instead of failing the whole prediction.
func powerScore(info *CharacterInfo) int {
	stats, ok := info.Categories.Get("powerstats")
	if !ok {
		return 0
	}

	score := 0
	for stat := stats.Oldest(); stat != nil; stat = stat.Next() {
		if n, err := strconv.Atoi(strings.TrimSpace(stat.Value.String())); err == nil {
			score += n
		}
	}
	return score
}

func winChance(own, other int) float64 {
	total := own + other
	if total == 0 {
		return 50.0
	}
	return float64(own) / float64(total) * 100
}

// formatPercent rounds to two decimals and always keeps at least one,
// so whole numbers read "75.0" rather than "75".
func formatPercent(v float64) string {
	v = math.Round(v*100) / 100
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// titleCase uppercases each space-separated word's first letter and
// lowercases the rest, matching how attribute names are displayed.
func titleCase(s string) string {
	parts := strings.Split(s, " ")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + strings.ToLower(p[1:])
	}
	return strings.Join(parts, " ")
}
