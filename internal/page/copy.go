package page

import "github.com/louisbranch/studypicks/internal/content"

// Copy holds the static literals the page renders regardless of feed data.
type Copy struct {
	Lang        string
	Title       string
	Description string

	HeroBadge    string
	HeroHeadline string
	HeroTagline  string

	TopPickEyebrow  string
	NameLabel       string
	HeadlineLabel   string
	PricingLabel    string
	BestForLabel    string
	StrengthsTitle  string
	AIFeaturesTitle string
	ExploreLink     string

	SubjectsHeading string
	SubjectsIntro   string
	SubjectLabels   map[content.SubjectKey]string

	ContendersHeading string
	ContendersIntro   string
	VisitSiteLink     string

	PlanHeading string
	PlanIntro   string
	PlanSteps   [4]PlanStep

	CTAHeading string
	CTABody    string
	CTALink    string

	Footer string
}

var subjectTones = map[content.SubjectKey]string{
	content.SubjectComputerScience: "from-blue-500/10 to-cyan-500/10 border-blue-500/30",
	content.SubjectAccounting:      "from-emerald-500/10 to-lime-500/10 border-emerald-500/30",
	content.SubjectBusiness:        "from-amber-500/10 to-orange-500/10 border-amber-500/30",
}

var subjectLabels = map[content.SubjectKey]string{
	content.SubjectComputerScience: "Computer Science",
	content.SubjectAccounting:      "Accounting",
	content.SubjectBusiness:        "Business",
}

// SubjectTone returns the visual style token for a subject card.
func SubjectTone(key content.SubjectKey) string {
	return subjectTones[key]
}

// SubjectLabel returns the default display label for a subject.
func SubjectLabel(key content.SubjectKey) string {
	return subjectLabels[key]
}

// DefaultCopy returns the built-in English literals.
func DefaultCopy() Copy {
	labels := make(map[content.SubjectKey]string, len(subjectLabels))
	for key, label := range subjectLabels {
		labels[key] = label
	}
	return Copy{
		Lang:        "en-GB",
		Title:       "Best AI study app for Cambridge students | Cambridge Study Advisor",
		Description: "Our top AI study companion for Cambridge Tripos workloads, plus strong alternatives for every study style.",

		HeroBadge:    "Cambridge Study Advisor · AI Picks 2024",
		HeroHeadline: "The best AI study companion for Cambridge colleges & Tripos heavy workloads.",
		HeroTagline:  "We evaluated leading AI study platforms against Cambridge's supervision system, term pacing, and specialist tracks in Computer Science, Accounting, and Business. Here’s the top choice plus strong alternatives to fit different study styles.",

		TopPickEyebrow:  "Top Pick",
		NameLabel:       "Name",
		HeadlineLabel:   "Headline",
		PricingLabel:    "Pricing",
		BestForLabel:    "Best for",
		StrengthsTitle:  "Why it stands out",
		AIFeaturesTitle: "AI in action",
		ExploreLink:     "Explore the platform",

		SubjectsHeading: "Subject-specific support snapshots",
		SubjectsIntro:   "Each subject stream highlights how MagnaMind Cambridge adapts to the demands of Tripos content, supervision prep, and term-time assessments.",
		SubjectLabels:   labels,

		ContendersHeading: "Top contenders",
		ContendersIntro:   "Choose one of these if you need deeper workspace customisation, structured video content, or citation-grade research support.",
		VisitSiteLink:     "Visit site",

		PlanHeading: "4-week launch plan for Michaelmas term",
		PlanIntro:   "Use this sprint blueprint to embed MagnaMind Cambridge into your routine before supervisions intensify.",
		PlanSteps: [4]PlanStep{
			{Title: "Week 1 · Foundation", Detail: "Import lecture notes, Tripos past papers, and supervision feedback. Train MagnaMind’s knowledge graph with your college timetable."},
			{Title: "Week 2 · Subject deep dive", Detail: "Schedule alternating CS and Accounting AI drills. Use the supervision simulator to rehearse two sessions with peer feedback."},
			{Title: "Week 3 · Essay & project push", Detail: "Generate essay scaffolds for business case studies, let the AI critique your arguments, and export flashcards for key models."},
			{Title: "Week 4 · Exam rehearsal", Detail: "Run full-length mock exams with adaptive hints, log weak spots, and create a revision cadence for the rest of term."},
		},

		CTAHeading: "Need quick reference sheets?",
		CTABody:    "MagnaMind’s Flashburst mode builds 10-minute recap decks for supervisions. Pair it with your College library resources, then export to Anki for spaced repetition.",
		CTALink:    "Try Flashburst workflow",

		Footer: "Curated for Cambridge students · Updated July 2024",
	}
}
