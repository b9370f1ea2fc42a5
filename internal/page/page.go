// Package page projects the content feed into the advisor page section tree.
//
// Build is a single synchronous pass with no side effects. Display sinks
// (HTML templates, static export, terminal preview) consume the tree.
package page

import "github.com/louisbranch/studypicks/internal/content"

// Page is the full section tree for the advisor page.
type Page struct {
	Lang         string
	Title        string
	Description  string
	Hero         Hero
	Primary      PrimaryPanel
	Subjects     SubjectGrid
	Contenders   ContenderGrid
	LaunchPlan   LaunchPlan
	CallToAction CallToAction
	Footer       string
}

// Hero is the static page header.
type Hero struct {
	Badge    string
	Headline string
	Tagline  string
}

// Field is a labeled value.
type Field struct {
	Label string
	Value string
}

// ListItem is one rendered row of an ordered list. Key is the item text, so
// identical strings share a key.
type ListItem struct {
	Key  string
	Text string
}

// Link is an outbound anchor. Href is the feed value verbatim.
type Link struct {
	Label  string
	Href   string
	NewTab bool
}

// ItemList is a titled ordered list.
type ItemList struct {
	Title string
	Items []ListItem
}

// PrimaryPanel presents the top recommendation.
type PrimaryPanel struct {
	Eyebrow    string
	Name       Field
	Headline   Field
	Pricing    Field
	BestFor    Field
	Strengths  ItemList
	AIFeatures ItemList
	Link       Link
}

// SubjectGrid holds one card per subject key, in enumeration order.
type SubjectGrid struct {
	Heading string
	Intro   string
	Cards   []SubjectCard
}

// SubjectCard shows how the recommendation supports one subject track.
type SubjectCard struct {
	Key   content.SubjectKey
	Label string
	Tone  string
	Body  string
}

// ContenderGrid holds one card per contender, in feed order.
type ContenderGrid struct {
	Heading string
	Intro   string
	Cards   []ContenderCard
}

// ContenderCard presents one alternative app.
type ContenderCard struct {
	Name      string
	Headline  string
	Pricing   string
	BestFor   string
	Strengths []ListItem
	Link      Link
}

// LaunchPlan is the fixed four-week study sequence.
type LaunchPlan struct {
	Heading string
	Intro   string
	Steps   []PlanStep
}

// PlanStep is one week of the launch plan.
type PlanStep struct {
	Title  string
	Detail string
}

// CallToAction is the closing banner.
type CallToAction struct {
	Heading string
	Body    string
	Link    Link
}
