package page

import "github.com/louisbranch/studypicks/internal/content"

// Build projects feed into a page using the static literals in c.
//
// Lists keep source order with no filtering or deduplication. Subject cards
// follow content.SubjectKeys; a missing support entry yields an empty body.
// Link hrefs are copied from the feed unchanged.
func Build(feed content.Feed, c Copy) Page {
	primary := feed.Primary
	return Page{
		Lang:        c.Lang,
		Title:       c.Title,
		Description: c.Description,
		Hero: Hero{
			Badge:    c.HeroBadge,
			Headline: c.HeroHeadline,
			Tagline:  c.HeroTagline,
		},
		Primary: PrimaryPanel{
			Eyebrow:  c.TopPickEyebrow,
			Name:     Field{Label: c.NameLabel, Value: primary.Name},
			Headline: Field{Label: c.HeadlineLabel, Value: primary.Headline},
			Pricing:  Field{Label: c.PricingLabel, Value: primary.Pricing},
			BestFor:  Field{Label: c.BestForLabel, Value: primary.BestFor},
			Strengths: ItemList{
				Title: c.StrengthsTitle,
				Items: listItems(primary.Strengths),
			},
			AIFeatures: ItemList{
				Title: c.AIFeaturesTitle,
				Items: listItems(primary.AIFeatures),
			},
			Link: outbound(c.ExploreLink, primary.URL),
		},
		Subjects: SubjectGrid{
			Heading: c.SubjectsHeading,
			Intro:   c.SubjectsIntro,
			Cards:   subjectCards(primary.SubjectSupport, c.SubjectLabels),
		},
		Contenders: ContenderGrid{
			Heading: c.ContendersHeading,
			Intro:   c.ContendersIntro,
			Cards:   contenderCards(feed.Contenders, c.VisitSiteLink),
		},
		LaunchPlan: LaunchPlan{
			Heading: c.PlanHeading,
			Intro:   c.PlanIntro,
			Steps:   append([]PlanStep(nil), c.PlanSteps[:]...),
		},
		CallToAction: CallToAction{
			Heading: c.CTAHeading,
			Body:    c.CTABody,
			Link:    outbound(c.CTALink, primary.URL),
		},
		Footer: c.Footer,
	}
}

func listItems(values []string) []ListItem {
	items := make([]ListItem, 0, len(values))
	for _, value := range values {
		items = append(items, ListItem{Key: value, Text: value})
	}
	return items
}

func subjectCards(support map[content.SubjectKey]string, labels map[content.SubjectKey]string) []SubjectCard {
	keys := content.SubjectKeys()
	cards := make([]SubjectCard, 0, len(keys))
	for _, key := range keys {
		label := labels[key]
		if label == "" {
			label = SubjectLabel(key)
		}
		cards = append(cards, SubjectCard{
			Key:   key,
			Label: label,
			Tone:  SubjectTone(key),
			Body:  support[key],
		})
	}
	return cards
}

func contenderCards(apps []content.ContenderApp, linkLabel string) []ContenderCard {
	cards := make([]ContenderCard, 0, len(apps))
	for _, app := range apps {
		cards = append(cards, ContenderCard{
			Name:      app.Name,
			Headline:  app.Headline,
			Pricing:   app.Pricing,
			BestFor:   app.BestFor,
			Strengths: listItems(app.Strengths),
			Link:      outbound(linkLabel, app.URL),
		})
	}
	return cards
}

func outbound(label, href string) Link {
	return Link{Label: label, Href: href, NewTab: true}
}
