// Package generate owns the two generation workflows and the state they
// share: which operation is in flight, the most recent results and errors,
// and which campaign is selected for display. All mutable state lives in one
// struct behind a mutex; gateway calls run outside the lock and whichever
// call resolves last wins. Nothing here cancels an in-flight call.
package generate

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"mcc/internal/agent"
	"mcc/internal/campaign"
	"mcc/internal/store"
)

// Status and error literals surfaced to the user.
const (
	StatusGeneratingContent = "Generating content... This may take a moment."
	StatusContentDone       = "Content generated successfully!"
	StatusGeneratingGraphic = "Generating graphic..."
	StatusGraphicDone       = "Graphic generated successfully!"

	errContentFallback = "Failed to generate content. Please try again."
	errGraphicFallback = "Failed to generate graphic."
	errUnexpected      = "An unexpected error occurred. Please try again."
)

const defaultContentType = "Blog"

// Orchestrator sequences content and graphic generation against the campaign
// store and exposes a read-only view of the merged state.
type Orchestrator struct {
	gateway        agent.Invoker
	store          *store.Store
	contentAgentID string
	graphicAgentID string

	mu                sync.Mutex
	form              Form
	generatingContent bool
	generatingGraphic bool
	contentResult     *campaign.ContentResult
	contentError      string
	graphicResult     *campaign.GraphicResult
	graphicURL        *string
	graphicError      string
	selected          *campaign.Campaign
	activeAgentID     string
	statusMessage     string
}

// New creates an orchestrator over the given gateway and store.
func New(gateway agent.Invoker, st *store.Store, contentAgentID, graphicAgentID string) *Orchestrator {
	return &Orchestrator{
		gateway:        gateway,
		store:          st,
		contentAgentID: contentAgentID,
		graphicAgentID: graphicAgentID,
		form:           Form{ContentType: defaultContentType},
	}
}

// GenerateContent runs the content workflow for the given brief. A brief
// whose topic is empty after trimming is a no-op: no state change, no
// gateway call. On success exactly one new campaign exists, prepended to the
// store and selected; on failure exactly one error slot is set. Never both.
func (o *Orchestrator) GenerateContent(ctx context.Context, form Form) {
	if strings.TrimSpace(form.Topic) == "" {
		return
	}

	o.mu.Lock()
	o.form = form
	o.contentResult = nil
	o.contentError = ""
	o.graphicResult = nil
	o.graphicURL = nil
	o.graphicError = ""
	o.generatingContent = true
	o.activeAgentID = o.contentAgentID
	o.statusMessage = StatusGeneratingContent
	o.mu.Unlock()

	resp, err := o.gateway.Invoke(ctx, ContentInstruction(form), o.contentAgentID)

	o.mu.Lock()
	defer o.mu.Unlock()
	o.generatingContent = false
	o.activeAgentID = ""

	switch {
	case err != nil:
		o.contentError = errUnexpected
		o.statusMessage = ""
	case !resp.Success:
		o.contentError = resp.FailureMessage(errContentFallback)
		o.statusMessage = ""
	default:
		resolved := extractContent(resp, form.ContentType)
		c := newCampaign(form, resolved)
		if err := o.store.Prepend(c); err != nil {
			log.Printf("persisting campaign %s: %v", c.ID, err)
		}
		o.contentResult = resolved
		o.selected = &c
		o.statusMessage = StatusContentDone
	}
}

// GenerateGraphic runs the graphic workflow against the current context.
// Title, messaging, and content type are each resolved independently through
// live result -> selected campaign -> form input; with no resolvable title
// it is a no-op. Re-invoking after a prior result regenerates from scratch.
func (o *Orchestrator) GenerateGraphic(ctx context.Context) {
	o.mu.Lock()
	title := firstNonEmpty(o.liveTitle(), o.selectedTitle(), o.form.Topic)
	messaging := firstNonEmpty(o.liveDescription(), o.selectedDescription(), o.form.Topic)
	contentType := firstNonEmpty(o.liveContentType(), o.selectedContentType(), o.form.ContentType)
	if title == "" {
		o.mu.Unlock()
		return
	}

	selectedID := ""
	if o.selected != nil {
		selectedID = o.selected.ID
	}
	o.graphicResult = nil
	o.graphicURL = nil
	o.graphicError = ""
	o.generatingGraphic = true
	o.activeAgentID = o.graphicAgentID
	o.statusMessage = StatusGeneratingGraphic
	o.mu.Unlock()

	resp, err := o.gateway.Invoke(ctx, GraphicInstruction(title, messaging, contentType), o.graphicAgentID)

	o.mu.Lock()
	defer o.mu.Unlock()
	o.generatingGraphic = false
	o.activeAgentID = ""

	switch {
	case err != nil:
		o.graphicError = errUnexpected
		o.statusMessage = ""
	case !resp.Success:
		o.graphicError = resp.FailureMessage(errGraphicFallback)
		o.statusMessage = ""
	default:
		result, patch := extractGraphic(resp)
		o.graphicResult = result
		o.graphicURL = patch.URL

		if selectedID != "" {
			if err := o.store.PatchGraphic(selectedID, patch); err != nil {
				log.Printf("patching campaign %s: %v", selectedID, err)
			}
			if o.selected != nil && o.selected.ID == selectedID {
				o.selected.GraphicURL = patch.URL
				o.selected.GraphicDescription = patch.Description
				o.selected.GraphicDesignNotes = patch.DesignNotes
				o.selected.GraphicSuggestedUsage = patch.SuggestedUsage
			}
		}
		o.statusMessage = StatusGraphicDone
	}
}

// OpenCampaign rehydrates the transient views from a stored campaign: no
// remote call, both error slots cleared, the campaign's inputs mirrored back
// into the form so the user can regenerate from the same brief.
func (o *Orchestrator) OpenCampaign(c campaign.Campaign) {
	o.mu.Lock()
	defer o.mu.Unlock()

	scorecard := c.SEOScorecard
	if scorecard == nil {
		scorecard = campaign.EmptyScorecard(c.SEOScore)
	}

	o.selected = &c
	o.contentResult = &campaign.ContentResult{
		ArticleTitle:    c.ArticleTitle,
		ArticleContent:  c.ArticleContent,
		MetaDescription: c.MetaDescription,
		ContentType:     c.ContentType,
		SEOScorecard:    scorecard,
	}
	o.graphicURL = c.GraphicURL
	if c.GraphicDescription != nil {
		o.graphicResult = &campaign.GraphicResult{
			ImageDescription: *c.GraphicDescription,
			DesignNotes:      deref(c.GraphicDesignNotes),
			SuggestedUsage:   deref(c.GraphicSuggestedUsage),
		}
	} else {
		o.graphicResult = nil
	}
	o.contentError = ""
	o.graphicError = ""
	o.form = Form{
		Topic:       c.Topic,
		Audience:    c.Audience,
		ContentType: c.ContentType,
		Notes:       c.Notes,
	}
}

// Reset clears every transient field and the form. The store is untouched.
// Calling it twice has the same effect as once.
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.contentResult = nil
	o.contentError = ""
	o.graphicResult = nil
	o.graphicURL = nil
	o.graphicError = ""
	o.selected = nil
	o.statusMessage = ""
	o.form = Form{ContentType: defaultContentType}
}

// Busy reports whether either generation is in flight.
func (o *Orchestrator) Busy() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.generatingContent || o.generatingGraphic
}

// Resolution helpers. Callers must hold o.mu.

func (o *Orchestrator) liveTitle() string {
	if o.contentResult != nil {
		return o.contentResult.ArticleTitle
	}
	return ""
}

func (o *Orchestrator) liveDescription() string {
	if o.contentResult != nil {
		return o.contentResult.MetaDescription
	}
	return ""
}

func (o *Orchestrator) liveContentType() string {
	if o.contentResult != nil {
		return o.contentResult.ContentType
	}
	return ""
}

func (o *Orchestrator) selectedTitle() string {
	if o.selected != nil {
		return o.selected.ArticleTitle
	}
	return ""
}

func (o *Orchestrator) selectedDescription() string {
	if o.selected != nil {
		return o.selected.MetaDescription
	}
	return ""
}

func (o *Orchestrator) selectedContentType() string {
	if o.selected != nil {
		return o.selected.ContentType
	}
	return ""
}

// extractContent resolves the content agent's payload with per-field
// defaults; it never fails on missing fields.
func extractContent(resp *agent.Response, inputContentType string) *campaign.ContentResult {
	var data struct {
		ArticleTitle    *string             `json:"article_title"`
		ArticleContent  *string             `json:"article_content"`
		MetaDescription *string             `json:"meta_description"`
		ContentType     *string             `json:"content_type"`
		SEOScorecard    *campaign.Scorecard `json:"seo_scorecard"`
	}
	if err := resp.DecodeResult(&data); err != nil {
		log.Printf("content result payload not decodable, using defaults: %v", err)
	}

	scorecard := data.SEOScorecard
	if scorecard == nil {
		scorecard = campaign.EmptyScorecard(0)
	}
	scorecard.Normalize()

	return &campaign.ContentResult{
		ArticleTitle:    orString(data.ArticleTitle, "Untitled Article"),
		ArticleContent:  orString(data.ArticleContent, ""),
		MetaDescription: orString(data.MetaDescription, ""),
		ContentType:     orString(data.ContentType, inputContentType),
		SEOScorecard:    scorecard,
	}
}

// extractGraphic resolves the graphic agent's payload and the atomic patch
// group for the selected campaign.
func extractGraphic(resp *agent.Response) (*campaign.GraphicResult, campaign.GraphicPatch) {
	var data struct {
		ImageDescription *string `json:"image_description"`
		DesignNotes      *string `json:"design_notes"`
		SuggestedUsage   *string `json:"suggested_usage"`
	}
	if err := resp.DecodeResult(&data); err != nil {
		log.Printf("graphic result payload not decodable, using defaults: %v", err)
	}

	result := &campaign.GraphicResult{
		ImageDescription: orString(data.ImageDescription, ""),
		DesignNotes:      orString(data.DesignNotes, ""),
		SuggestedUsage:   orString(data.SuggestedUsage, ""),
	}
	patch := campaign.GraphicPatch{
		URL:            resp.FirstArtifactURL(),
		Description:    data.ImageDescription,
		DesignNotes:    data.DesignNotes,
		SuggestedUsage: data.SuggestedUsage,
	}
	return result, patch
}

func newCampaign(form Form, resolved *campaign.ContentResult) campaign.Campaign {
	return campaign.Campaign{
		ID:              uuid.New().String(),
		Topic:           form.Topic,
		Audience:        form.Audience,
		ContentType:     form.ContentType,
		Notes:           form.Notes,
		ArticleTitle:    resolved.ArticleTitle,
		ArticleContent:  resolved.ArticleContent,
		MetaDescription: resolved.MetaDescription,
		SEOScore:        resolved.SEOScorecard.SEOScore,
		SEOScorecard:    resolved.SEOScorecard,
		CreatedAt:       time.Now().UTC(),
	}
}

func orString(v *string, fallback string) string {
	if v != nil {
		return *v
	}
	return fallback
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
