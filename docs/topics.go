// Package docs embeds the help topics shown by the topic subcommand.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.md
var topicsFS embed.FS

// GetTopic returns the markdown of one documentation topic. The special
// topic "*" expands to every topic concatenated.
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		all, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		return GetTopics(all...)
	}
	content, err := topicsFS.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics concatenates the markdown of several topics, in order.
func GetTopics(topics ...string) (string, error) {
	var b strings.Builder
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics lists every available topic, sorted. The readme is the table
// of contents, not a topic itself.
func GetAllTopics() ([]string, error) {
	entries, err := fs.Glob(topicsFS, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, name := range entries {
		base := strings.TrimSuffix(name, ".md")
		if base == "readme" {
			continue
		}
		topics = append(topics, base)
	}
	sort.Strings(topics)
	return topics, nil
}
