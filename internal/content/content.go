// Package content defines the read-only content feed behind the advisor page.
//
// A feed carries one primary recommendation and an ordered list of contender
// apps. Values are never mutated once loaded; renderers only read fields and
// iterate lists.
package content

// SubjectKey identifies a study subject track.
type SubjectKey string

// Subject tracks in declaration order. Renderers iterate SubjectKeys, never the
// support map, so this order is the display order.
const (
	SubjectComputerScience SubjectKey = "computerScience"
	SubjectAccounting      SubjectKey = "accounting"
	SubjectBusiness        SubjectKey = "business"
)

var subjectKeys = [...]SubjectKey{
	SubjectComputerScience,
	SubjectAccounting,
	SubjectBusiness,
}

// SubjectKeys returns every subject key in declaration order.
func SubjectKeys() []SubjectKey {
	keys := make([]SubjectKey, len(subjectKeys))
	copy(keys, subjectKeys[:])
	return keys
}

// Valid reports whether k belongs to the subject enumeration.
func (k SubjectKey) Valid() bool {
	for _, known := range subjectKeys {
		if k == known {
			return true
		}
	}
	return false
}

func (k SubjectKey) String() string {
	return string(k)
}

// Recommendation is the top-ranked study app.
type Recommendation struct {
	Name           string                `yaml:"name" validate:"required"`
	Headline       string                `yaml:"headline" validate:"required"`
	URL            string                `yaml:"url" validate:"required,url"`
	Pricing        string                `yaml:"pricing" validate:"required"`
	BestFor        string                `yaml:"bestFor" validate:"required"`
	Strengths      []string              `yaml:"strengths" validate:"dive,required"`
	AIFeatures     []string              `yaml:"aiFeatures" validate:"dive,required"`
	SubjectSupport map[SubjectKey]string `yaml:"subjectSupport"`
}

// ContenderApp is an alternative study app shown for comparison.
type ContenderApp struct {
	Name      string   `yaml:"name" validate:"required"`
	Headline  string   `yaml:"headline" validate:"required"`
	Pricing   string   `yaml:"pricing" validate:"required"`
	BestFor   string   `yaml:"bestFor" validate:"required"`
	Strengths []string `yaml:"strengths" validate:"dive,required"`
	URL       string   `yaml:"url" validate:"required,url"`
}

// Feed is the full content feed consumed by the page renderer.
type Feed struct {
	Primary    Recommendation `yaml:"primary"`
	Contenders []ContenderApp `yaml:"contenders" validate:"dive"`
}

// Clone returns a deep copy of the feed.
func (f Feed) Clone() Feed {
	out := Feed{Primary: f.Primary.clone()}
	if f.Contenders != nil {
		out.Contenders = make([]ContenderApp, len(f.Contenders))
		for i, app := range f.Contenders {
			out.Contenders[i] = app.clone()
		}
	}
	return out
}

func (r Recommendation) clone() Recommendation {
	out := r
	out.Strengths = cloneStrings(r.Strengths)
	out.AIFeatures = cloneStrings(r.AIFeatures)
	if r.SubjectSupport != nil {
		out.SubjectSupport = make(map[SubjectKey]string, len(r.SubjectSupport))
		for key, value := range r.SubjectSupport {
			out.SubjectSupport[key] = value
		}
	}
	return out
}

func (a ContenderApp) clone() ContenderApp {
	out := a
	out.Strengths = cloneStrings(a.Strengths)
	return out
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
