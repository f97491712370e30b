package campaign

import "time"

// Campaign is one persisted unit of generated marketing content plus its
// optional companion graphic. Input and content fields are fixed at creation;
// only the four graphic fields change afterwards, always together.
type Campaign struct {
	ID          string `json:"id"`
	Topic       string `json:"topic"`
	Audience    string `json:"audience"`
	ContentType string `json:"content_type"`
	Notes       string `json:"notes"`

	ArticleTitle    string     `json:"article_title"`
	ArticleContent  string     `json:"article_content"`
	MetaDescription string     `json:"meta_description"`
	SEOScore        int        `json:"seo_score"`
	SEOScorecard    *Scorecard `json:"seo_scorecard"`

	GraphicURL            *string `json:"graphic_url"`
	GraphicDescription    *string `json:"graphic_description"`
	GraphicDesignNotes    *string `json:"graphic_design_notes"`
	GraphicSuggestedUsage *string `json:"graphic_suggested_usage"`

	CreatedAt time.Time `json:"created_at"`
}

// Scorecard is the SEO evaluation attached to a campaign's content.
type Scorecard struct {
	SEOScore           int              `json:"seo_score"`
	PrimaryKeywords    []PrimaryKeyword `json:"primary_keywords"`
	SecondaryKeywords  []string         `json:"secondary_keywords"`
	Recommendations    []string         `json:"recommendations"`
	CompetitorInsights []string         `json:"competitor_insights"`
	SearchIntent       string           `json:"search_intent"`
}

// PrimaryKeyword is one ranked keyword with its search-volume and density
// labels. Order within the scorecard is presentation rank.
type PrimaryKeyword struct {
	Keyword string `json:"keyword"`
	Volume  string `json:"volume"`
	Density string `json:"density"`
}

// EmptyScorecard returns a scorecard with the given score and every
// sub-field set to an empty container, so consumers never need nil checks
// below the scorecard itself.
func EmptyScorecard(score int) *Scorecard {
	return &Scorecard{
		SEOScore:           score,
		PrimaryKeywords:    []PrimaryKeyword{},
		SecondaryKeywords:  []string{},
		Recommendations:    []string{},
		CompetitorInsights: []string{},
		SearchIntent:       "",
	}
}

// Normalize replaces nil sub-field slices with empty ones. Persisted
// scorecards and gateway payloads may omit any field.
func (s *Scorecard) Normalize() {
	if s.PrimaryKeywords == nil {
		s.PrimaryKeywords = []PrimaryKeyword{}
	}
	if s.SecondaryKeywords == nil {
		s.SecondaryKeywords = []string{}
	}
	if s.Recommendations == nil {
		s.Recommendations = []string{}
	}
	if s.CompetitorInsights == nil {
		s.CompetitorInsights = []string{}
	}
}

// ContentResult is the transient content-generation view: either the live
// result of a content-agent call or a selected campaign's stored fields.
type ContentResult struct {
	ArticleTitle    string     `json:"article_title"`
	ArticleContent  string     `json:"article_content"`
	MetaDescription string     `json:"meta_description"`
	ContentType     string     `json:"content_type"`
	SEOScorecard    *Scorecard `json:"seo_scorecard"`
}

// GraphicResult is the transient graphic-generation view.
type GraphicResult struct {
	ImageDescription string `json:"image_description"`
	DesignNotes      string `json:"design_notes"`
	SuggestedUsage   string `json:"suggested_usage"`
}

// GraphicPatch is the atomic group of graphic fields applied to a stored
// campaign after a successful graphic generation.
type GraphicPatch struct {
	URL            *string
	Description    *string
	DesignNotes    *string
	SuggestedUsage *string
}
