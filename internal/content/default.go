package content

// defaultFeed is the built-in content feed. Read it through Default only.
var defaultFeed = Feed{
	Primary: Recommendation{
		Name:     "MagnaMind Cambridge",
		Headline: "An AI study workspace tuned for Tripos pacing, supervision prep, and college timetables.",
		URL:      "https://magnamind.ai/cambridge",
		Pricing:  "£9.99/month · student discount with a CRSid",
		BestFor:  "Best for students juggling supervisions across several papers",
		Strengths: []string{
			"Maps every lecture course to its Tripos paper and past exam questions.",
			"Supervision simulator rehearses tough questions with examiner-style feedback.",
			"Knowledge graph links notes, readings, and problem sheets across terms.",
			"Syncs with college timetables to plan revision around supervisions.",
		},
		AIFeatures: []string{
			"Adaptive drills that target weak spots from past supervision feedback.",
			"Essay scaffolds with argument critique for business case studies.",
			"Worked-solution walkthroughs for algorithms and accounting problem sheets.",
			"Flashburst mode builds 10-minute recap decks with Anki export.",
		},
		SubjectSupport: map[SubjectKey]string{
			SubjectComputerScience: "Step-through explanations for algorithms, discrete maths, and systems papers, with code review on supervision exercises.",
			SubjectAccounting:      "Guided practice on financial statements, IFRS treatments, and management accounting with instant error tracing.",
			SubjectBusiness:        "Case-study frameworks, strategy essay outlines, and data-backed market analysis prompts for Judge modules.",
		},
	},
	Contenders: []ContenderApp{
		{
			Name:     "Notion AI",
			Headline: "A flexible workspace with AI writing and summarising built in.",
			Pricing:  "Free plan · AI add-on from $10/month",
			BestFor:  "Best for students who want to design their own study system.",
			Strengths: []string{
				"Highly customisable databases for reading lists and problem sheets.",
				"AI summaries of long lecture notes.",
				"Shared pages for supervision partners.",
			},
			URL: "https://www.notion.so/product/ai",
		},
		{
			Name:     "Khanmigo",
			Headline: "A Socratic AI tutor paired with structured video lessons.",
			Pricing:  "$4/month for learners",
			BestFor:  "Best for building foundations through guided video content.",
			Strengths: []string{
				"Step-by-step hints instead of direct answers.",
				"Large library of maths and economics videos.",
				"Progress tracking across topics.",
			},
			URL: "https://www.khanmigo.ai",
		},
		{
			Name:     "Elicit",
			Headline: "An AI research assistant for finding and summarising papers.",
			Pricing:  "Free basic plan · Plus from $12/month",
			BestFor:  "Best for dissertations and citation-grade literature reviews.",
			Strengths: []string{
				"Searches academic literature by research question.",
				"Extracts key findings into comparison tables.",
				"Links every claim back to its source paper.",
			},
			URL: "https://elicit.com",
		},
	},
}

// Default returns a copy of the built-in content feed.
func Default() Feed {
	return defaultFeed.Clone()
}
