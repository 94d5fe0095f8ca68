// Package ranking personalizes generated topic and course lists against the
// learner's stated interests.
package ranking

import (
	"fmt"
	"sort"
	"strings"

	"leembo/internal/domain"
)

const (
	// PreferenceBoost is added to the relevance score of a matching topic.
	PreferenceBoost = 3
	MaxRelevance    = 10

	InjectedTopicScore    = 8
	InjectedTopicCategory = "User Interest"
)

// AgeBand is an advisory audience hint derived from the learner's age.
type AgeBand string

const (
	AgeBandNone       AgeBand = ""
	AgeBandElementary AgeBand = "elementary"
	AgeBandTeen       AgeBand = "teen/high-school"
)

// BandForAge maps an age onto an AgeBand. Zero or negative ages mean unknown.
func BandForAge(age int) AgeBand {
	switch {
	case age <= 0:
		return AgeBandNone
	case age < 13:
		return AgeBandElementary
	case age < 18:
		return AgeBandTeen
	default:
		return AgeBandNone
	}
}

// Context returns the phrase used in search queries and prompts.
func (b AgeBand) Context() string {
	switch b {
	case AgeBandElementary:
		return "for elementary school students"
	case AgeBandTeen:
		return "for teenagers and high school students"
	default:
		return ""
	}
}

// Matches reports whether text overlaps any preference: either string
// contains the other (case-insensitively) or a word of the preference occurs
// in text. Blank preferences never match.
func Matches(text string, prefs []string) bool {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return false
	}
	for _, p := range prefs {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if strings.Contains(text, p) || strings.Contains(p, text) {
			return true
		}
		for _, word := range strings.Fields(p) {
			if strings.Contains(text, word) {
				return true
			}
		}
	}
	return false
}

// Rank boosts preference matches, sorts by relevance (stable) and truncates to
// limit. When preferences are given and nothing in the truncated list matches,
// the last entry is replaced by a topic built from the first preference.
// The input slice is not modified.
func Rank(items []domain.TrendingTopic, prefs []string, limit int) []domain.TrendingTopic {
	prefs = compact(prefs)
	ranked := make([]domain.TrendingTopic, len(items))
	copy(ranked, items)

	if len(prefs) > 0 {
		for i := range ranked {
			ranked[i].PreferenceMatch = Matches(ranked[i].Topic, prefs)
			if ranked[i].PreferenceMatch {
				ranked[i].RelevanceScore = min(MaxRelevance, ranked[i].RelevanceScore+PreferenceBoost)
			}
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RelevanceScore > ranked[j].RelevanceScore
	})
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	if len(prefs) > 0 && len(ranked) > 0 && !anyMatch(ranked) {
		ranked[len(ranked)-1] = domain.TrendingTopic{
			Topic:           fmt.Sprintf("Latest developments in %s", prefs[0]),
			Category:        InjectedTopicCategory,
			RelevanceScore:  InjectedTopicScore,
			PreferenceMatch: true,
		}
	}
	return ranked
}

// TopicNames reduces ranked topics to their names.
func TopicNames(items []domain.TrendingTopic) []string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Topic)
	}
	return names
}

// RankCourses moves courses whose title or tags match a preference ahead of
// the rest, keeping the generated order within each group, and truncates to
// limit.
func RankCourses(courses []domain.Course, prefs []string, limit int) []domain.Course {
	prefs = compact(prefs)
	ranked := make([]domain.Course, len(courses))
	copy(ranked, courses)

	if len(prefs) > 0 {
		matched := make([]bool, len(ranked))
		for i, c := range ranked {
			matched[i] = courseMatches(c, prefs)
		}
		idx := make([]int, len(ranked))
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool {
			return matched[idx[a]] && !matched[idx[b]]
		})
		ordered := make([]domain.Course, len(ranked))
		for i, j := range idx {
			ordered[i] = ranked[j]
		}
		ranked = ordered
	}

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func courseMatches(c domain.Course, prefs []string) bool {
	if Matches(c.Title, prefs) {
		return true
	}
	for _, tag := range c.Tags {
		if Matches(tag, prefs) {
			return true
		}
	}
	return false
}

func anyMatch(items []domain.TrendingTopic) bool {
	for _, it := range items {
		if it.PreferenceMatch {
			return true
		}
	}
	return false
}

func compact(prefs []string) []string {
	out := make([]string, 0, len(prefs))
	for _, p := range prefs {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
