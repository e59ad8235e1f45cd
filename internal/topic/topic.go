// Package topic detects well known technical topics in free text.
package topic

import (
	"regexp"
	"sort"
	"strings"
)

// topics maps a topic to the terms that reveal it. Terms are matched on whole
// words, multi-word terms on consecutive words.
var topics = map[string][]string{
	"golang":              {"go", "golang", "goroutine", "goroutines"},
	"rust":                {"rust", "rustlang", "cargo", "crate", "crates"},
	"python":              {"python", "django", "flask", "pytorch"},
	"javascript":          {"javascript", "typescript", "nodejs", "react", "vue"},
	"distributed-systems": {"distributed", "consensus", "raft", "paxos", "microservices"},
	"databases":           {"database", "databases", "sql", "postgresql", "mysql", "redis", "mongodb", "sqlite"},
	"kubernetes":          {"kubernetes", "k8s", "docker", "containers", "helm"},
	"performance":         {"performance", "optimization", "latency", "throughput", "benchmark"},
	"security":            {"security", "authentication", "encryption", "vulnerability"},
	"machine-learning":    {"machine learning", "ml", "neural", "tensorflow"},
	"devops":              {"devops", "ci", "jenkins", "github actions", "terraform"},
	"architecture":        {"architecture", "design patterns", "clean architecture"},
	"testing":             {"testing", "unit test", "unit tests", "integration test", "tdd"},
	"concurrency":         {"concurrency", "parallel", "async", "threads", "mutex"},
	"api":                 {"api", "rest", "graphql", "grpc", "openapi"},
	"cli":                 {"cli", "command line", "terminal", "shell"},
	"web":                 {"html", "css", "http", "browser"},
	"keyboard":            {"keyboard", "keyboards", "keycaps", "qmk"},
}

var wordRe = regexp.MustCompile(`[a-z0-9]+`)

// Extract returns the topics found in text, sorted by name.
func Extract(text string) []string {
	words := wordRe.FindAllString(strings.ToLower(text), -1)
	if len(words) == 0 {
		return nil
	}
	// Padding makes whole word matching a plain substring search.
	joined := " " + strings.Join(words, " ") + " "

	var found []string
	for name, terms := range topics {
		for _, term := range terms {
			if strings.Contains(joined, " "+term+" ") {
				found = append(found, name)
				break
			}
		}
	}
	sort.Strings(found)
	return found
}

// Missing returns the entries of candidates absent from have, keeping order.
func Missing(candidates, have []string) []string {
	known := make(map[string]bool, len(have))
	for _, h := range have {
		known[h] = true
	}
	var out []string
	for _, c := range candidates {
		if !known[c] {
			out = append(out, c)
		}
	}
	return out
}
