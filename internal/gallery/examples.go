// Package gallery holds the built-in example diagrams offered as starting
// points in the editor.
package gallery

import (
	"sort"
	"strings"
	"unicode"
)

// Example is one entry of the gallery.
type Example struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Code        string `json:"code"`
}

var examples = []Example{
	{
		Title:       "Flowchart",
		Description: "Standard process flow with decisions.",
		Category:    "Basic",
		Code: `graph TD
  A[Start] --> B{Decision?}
  B -- Yes --> C[Action OK]
  B -- No --> D[Action FAIL]
  C --> E[End]
  D --> E`,
	},
	{
		Title:       "Sequence Diagram",
		Description: "Interaction between participants over time.",
		Category:    "UML",
		Code: `sequenceDiagram
  participant Alice
  participant Bob
  Alice->>Bob: Hello Bob
  Bob-->>Alice: Hi Alice`,
	},
	{
		Title:       "Class Diagram",
		Description: "Structure of a system showing classes and relationships.",
		Category:    "UML",
		Code: `classDiagram
  class Person {
    +String name
    +int age
    +walk()
  }
  class Student {
    +int studentId
    +int marks
    +study()
  }
  Person <|-- Student`,
	},
	{
		Title:       "State Diagram",
		Description: "Finite state machine visualization.",
		Category:    "UML",
		Code: `stateDiagram-v2
  [*] --> Idle
  Idle --> Running : start
  Running --> Paused : pause
  Paused --> Running : resume
  Paused --> [*] : stop`,
	},
	{
		Title:       "Gantt Chart",
		Description: "Project schedule and timeline.",
		Category:    "Business",
		Code: `gantt
  title Project Timeline
  dateFormat  YYYY-MM-DD
  section Phase 1
    Task A       :a1, 2023-01-01, 10d
    Task B       :after a1, 7d
  section Phase 2
    Milestone    :milestone, 2023-01-25, 0d`,
	},
	{
		Title:       "Pie Chart",
		Description: "Simple distribution visualization.",
		Category:    "Business",
		Code: `pie
  title Browser Usage
  "Chrome"  : 60
  "Firefox" : 25
  "Edge"    : 15`,
	},
	{
		Title:       "ER Diagram",
		Description: "Entity Relationship diagram for database modeling.",
		Category:    "Database",
		Code: `erDiagram
  CUSTOMER ||--o{ ORDER : places
  ORDER ||--|{ LINE_ITEM : contains
  CUSTOMER {
    string name
    string address
  }`,
	},
	{
		Title:       "Mindmap",
		Description: "Hierarchical mind map for brainstorming.",
		Category:    "Creative",
		Code: `mindmap
  root((Life))
    Origins
      Earth
      Mars
    Journey
      Climb
      Ski`,
	},
	{
		Title:       "Timeline",
		Description: "Chronological event visualization with sections.",
		Category:    "Business",
		Code: `timeline
  title AI History
  section Early Days
    1956 : Dartmouth Workshop
    1965 : ELIZA
  section Modern Era
    2012 : AlexNet
    2022 : GPT-3.5`,
	},
	{
		Title:       "Git Graph",
		Description: "Visualization of git commits and branches.",
		Category:    "Developer",
		Code: `gitGraph
  commit
  branch develop
  commit
  checkout main
  merge develop
  commit`,
	},
	{
		Title:       "Quadrant Chart",
		Description: "XY matrix for prioritizing items.",
		Category:    "Business",
		Code: `quadrantChart
  title Risk vs Reward
  x-axis Low Risk --> High Risk
  y-axis Low Reward --> High Reward
  quadrant-1 We should expand
  quadrant-2 Need to promote
  quadrant-3 Re-evaluate
  quadrant-4 May be improved
  "Campaign A": [0.3, 0.6]
  "Campaign B": [0.45, 0.23]
  "Campaign C": [0.57, 0.69]
  "Campaign D": [0.78, 0.34]`,
	},
	{
		Title:       "Org Chart",
		Description: "Visualize hierarchical structures like company teams.",
		Category:    "Business",
		Code: `graph TD
    subgraph Company
        c(CEO)
        subgraph Tech
            cto(CTO)
            cto --> dev1(Developer)
            cto --> dev2(Developer)
        end
        subgraph HR
            h(HR Manager)
        end
        c --> cto
        c --> h
    end`,
	},
	{
		Title:       "User Journey",
		Description: "Map out the steps and experiences of a user.",
		Category:    "UX",
		Code: `journey
    title User Onboarding
    section Visit
      Landing Page: 5: User
      Signup Form: 3: User
    section Use
      Tutorial: 4: New User
      First Project: 2: New User`,
	},
	{
		Title:       "Requirement Diagram",
		Description: "Model system requirements and their relationships.",
		Category:    "Systems",
		Code: `requirementDiagram
  requirement req1 {
    id: 001
    text: System shall handle 10k req/s
  }
  requirement req2 {
    id: 002
    text: System shall encrypt all data
  }
  req1 --> req2`,
	},
	{
		Title:       "Flowchart with Subgraphs",
		Description: "Organize complex flowcharts into logical groups.",
		Category:    "Basic",
		Code: `graph LR
  subgraph API
    A[Request] --> B[Validate]
  end
  subgraph Worker
    C[Process] --> D[Save]
  end

  B --> C`,
	},
	{
		Title:       "C4 Diagram",
		Description: "A lightweight model for software architecture.",
		Category:    "Systems",
		Code: `C4Context
  title System Context for mermaidviz

  Person(user, "User")
  System(viz, "mermaidviz", "Generates and enhances diagrams using AI.")

  System_Ext(llm, "Language model provider", "Gemini, OpenAI, OpenRouter or Ollama")

  user -> viz: Uses
  viz -> llm: Completes prompts`,
	},
}

func init() {
	for i := range examples {
		examples[i].Slug = slugify(examples[i].Title)
	}
}

// slugify lowercases title and joins its alphanumeric runs with dashes.
func slugify(title string) string {
	fields := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(fields, "-")
}

// All returns every example in display order.
func All() []Example {
	return append([]Example(nil), examples...)
}

// Categories returns the distinct categories, sorted.
func Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range examples {
		if !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	sort.Strings(out)
	return out
}

// InCategory returns the examples of one category, matched case-insensitively.
func InCategory(category string) []Example {
	var out []Example
	for _, e := range examples {
		if strings.EqualFold(e.Category, category) {
			out = append(out, e)
		}
	}
	return out
}

// Find looks an example up by slug.
func Find(slug string) (Example, bool) {
	for _, e := range examples {
		if e.Slug == slug {
			return e, true
		}
	}
	return Example{}, false
}
