// Package catalog holds the static content served when generation is
// unavailable.
package catalog

import (
	"fmt"
	"strings"

	"leembo/internal/domain"
)

const placeholderThumbnail = "/api/placeholder/400/220"

var trendingTopics = []string{
	"Latest developments in artificial intelligence",
	"Climate change mitigation strategies",
	"Quantum computing advancements",
	"Space exploration breakthroughs",
	"Biotechnology and genetic engineering",
	"Blockchain applications beyond cryptocurrency",
	"Sustainable energy technologies",
	"Cybersecurity best practices",
}

// errorTopics are served when the trending pipeline fails outright.
var errorTopics = []string{
	"Latest developments in technology",
	"Scientific discoveries of the year",
	"Historical events that shaped today",
	"Mathematical concepts explained simply",
	"Understanding world economics",
}

// maxPreferenceTopics bounds how many catalog topics are replaced by preferences.
const maxPreferenceTopics = 3

var courses = []domain.Course{
	{
		ID:         "1",
		Title:      "Complete Machine Learning & Data Science Bootcamp",
		Platform:   "YouTube",
		Instructor: "freeCodeCamp.org",
		Duration:   "11 hours",
		Rating:     4.8,
		Thumbnail:  "https://i.ytimg.com/vi/cBBTWcHkVVY/hqdefault.jpg",
		URL:        "https://www.youtube.com/watch?v=cBBTWcHkVVY",
		Tags:       []string{"Machine Learning", "Data Science", "Python"},
	},
	{
		ID:         "2",
		Title:      "JavaScript Crash Course for Beginners",
		Platform:   "YouTube",
		Instructor: "Traversy Media",
		Duration:   "1.5 hours",
		Rating:     4.9,
		Thumbnail:  "https://i.ytimg.com/vi/hdI2bqOjy3c/hqdefault.jpg",
		URL:        "https://www.youtube.com/watch?v=hdI2bqOjy3c",
		Tags:       []string{"JavaScript", "Web Development", "Programming"},
	},
	{
		ID:         "3",
		Title:      "Modern React with Redux",
		Platform:   "Udemy",
		Instructor: "Stephen Grider",
		Duration:   "52 hours",
		Rating:     4.7,
		Thumbnail:  placeholderThumbnail,
		URL:        "https://www.udemy.com/course/react-redux/",
		Tags:       []string{"React", "Redux", "Web Development"},
	},
	{
		ID:         "4",
		Title:      "Python for Everybody",
		Platform:   "Coursera",
		Instructor: "University of Michigan",
		Duration:   "8 weeks",
		Rating:     4.8,
		Thumbnail:  placeholderThumbnail,
		URL:        "https://www.coursera.org/specializations/python",
		Tags:       []string{"Python", "Programming", "Computer Science"},
	},
	{
		ID:         "5",
		Title:      "The Web Developer Bootcamp",
		Platform:   "Udemy",
		Instructor: "Colt Steele",
		Duration:   "63 hours",
		Rating:     4.7,
		Thumbnail:  placeholderThumbnail,
		URL:        "https://www.udemy.com/course/the-web-developer-bootcamp/",
		Tags:       []string{"Web Development", "HTML", "CSS", "JavaScript"},
	},
	{
		ID:         "6",
		Title:      "Introduction to Quantum Computing",
		Platform:   "edX",
		Instructor: "MIT",
		Duration:   "6 weeks",
		Rating:     4.6,
		Thumbnail:  placeholderThumbnail,
		URL:        "https://www.edx.org/course/quantum-computing",
		Tags:       []string{"Quantum Computing", "Physics", "Computer Science"},
	},
	{
		ID:         "7",
		Title:      "Complete Digital Marketing Course",
		Platform:   "YouTube",
		Instructor: "SimpliLearn",
		Duration:   "8 hours",
		Rating:     4.5,
		Thumbnail:  placeholderThumbnail,
		URL:        "https://www.youtube.com/watch?v=hD-SXLYgRZ0",
		Tags:       []string{"Digital Marketing", "SEO", "Social Media"},
	},
	{
		ID:         "8",
		Title:      "Introduction to Artificial Intelligence",
		Platform:   "Coursera",
		Instructor: "Stanford University",
		Duration:   "11 weeks",
		Rating:     4.8,
		Thumbnail:  placeholderThumbnail,
		URL:        "https://www.coursera.org/learn/introduction-to-ai",
		Tags:       []string{"AI", "Machine Learning", "Computer Science"},
	},
}

// SelectTopics returns up to limit catalog topics. The first entries are
// replaced by "Recent advances in {pref}" for up to three preferences.
func SelectTopics(prefs []string, limit int) []string {
	topics := append([]string(nil), trendingTopics...)
	n := 0
	for _, p := range prefs {
		if n == maxPreferenceTopics {
			break
		}
		if p = strings.TrimSpace(p); p == "" {
			continue
		}
		topics[n] = fmt.Sprintf("Recent advances in %s", p)
		n++
	}
	return head(topics, limit)
}

// ErrorTopics returns up to limit generic topics.
func ErrorTopics(limit int) []string {
	return head(append([]string(nil), errorTopics...), limit)
}

// SelectCourses returns catalog courses related to topic, else to the first
// preference with any related course, else the unfiltered head.
func SelectCourses(topic string, prefs []string, limit int) []domain.Course {
	if matched := filterCourses(topic); len(matched) > 0 {
		return head(matched, limit)
	}
	for _, p := range prefs {
		if matched := filterCourses(p); len(matched) > 0 {
			return head(matched, limit)
		}
	}
	return head(cloneCourses(courses), limit)
}

// Courses returns a copy of the whole course catalog.
func Courses() []domain.Course {
	return cloneCourses(courses)
}

func filterCourses(term string) []domain.Course {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	var out []domain.Course
	for _, c := range courses {
		if courseContains(c, term) {
			out = append(out, cloneCourse(c))
		}
	}
	return out
}

func courseContains(c domain.Course, term string) bool {
	if strings.Contains(strings.ToLower(c.Title), term) {
		return true
	}
	for _, tag := range c.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func cloneCourse(c domain.Course) domain.Course {
	c.Tags = append([]string(nil), c.Tags...)
	return c
}

func cloneCourses(in []domain.Course) []domain.Course {
	out := make([]domain.Course, len(in))
	for i, c := range in {
		out[i] = cloneCourse(c)
	}
	return out
}

func head[T any](items []T, limit int) []T {
	if limit < 0 || limit >= len(items) {
		return items
	}
	return items[:limit]
}
