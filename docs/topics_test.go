package docs

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestGetAllTopics(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics returned error: %v", err)
	}
	if len(topics) == 0 {
		t.Fatal("no topics found")
	}
	for _, topic := range topics {
		if topic == "readme" {
			t.Error("readme must not be listed as a topic")
		}
	}
}

// every topic must be valid markdown opening with a level 1 heading.
func TestTopicsStructure(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics returned error: %v", err)
	}
	for _, topic := range topics {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatalf("GetTopic returned error: %v", err)
			}
			source := []byte(content)
			doc := goldmark.DefaultParser().Parse(text.NewReader(source))
			first := doc.FirstChild()
			if first == nil {
				t.Fatal("topic is empty")
			}
			h, ok := first.(*ast.Heading)
			if !ok || h.Level != 1 {
				t.Errorf("topic does not open with a level 1 heading")
			}
		})
	}
}

// the readme must mention every topic so users can discover them.
func TestReadmeListsTopics(t *testing.T) {
	readme, err := docs.ReadFile("readme.md")
	if err != nil {
		t.Fatalf("cannot read readme.md: %v", err)
	}
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics returned error: %v", err)
	}
	for _, topic := range topics {
		if !strings.Contains(string(readme), "* "+topic+":") {
			t.Errorf("readme.md does not list topic %q", topic)
		}
	}
}

func TestGetTopicUnknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("GetTopic of an unknown topic should fail")
	}
}

func TestGetTopicStar(t *testing.T) {
	all, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(*) returned error: %v", err)
	}
	if !strings.Contains(all, "# Settlement") || !strings.Contains(all, "# Backup") {
		t.Error("GetTopic(*) should concatenate every topic")
	}
}
