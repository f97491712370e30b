package generate

import "mcc/internal/campaign"

// View is a read-only snapshot of everything the dashboard needs for one
// render: merged live state, selected campaign, campaign list, and form
// fields. Computing a View never mutates orchestrator or store state.
type View struct {
	Campaigns []campaign.Campaign

	Content      *campaign.ContentResult
	ContentError string

	GraphicURL   *string
	Graphic      *campaign.GraphicResult
	GraphicError string

	Selected *campaign.Campaign

	GeneratingContent bool
	GeneratingGraphic bool
	ActiveAgentID     string
	StatusMessage     string

	Form       Form
	SampleData bool
}

// Project derives the current view. With the sample toggle on, built-in
// sample data stands in wherever no real data exists yet: the sample list
// when the store is empty, the sample content payload on the output screen
// before any live result, and the sample brief in the form.
func (o *Orchestrator) Project(sampleData, onOutput bool) View {
	o.mu.Lock()
	defer o.mu.Unlock()

	v := View{
		ContentError:      o.contentError,
		GraphicError:      o.graphicError,
		GeneratingContent: o.generatingContent,
		GeneratingGraphic: o.generatingGraphic,
		ActiveAgentID:     o.activeAgentID,
		StatusMessage:     o.statusMessage,
		Form:              o.form,
		SampleData:        sampleData,
	}

	v.Campaigns = o.store.Campaigns()
	if sampleData && len(v.Campaigns) == 0 {
		v.Campaigns = campaign.SampleCampaigns()
	}

	v.Content = o.contentResult
	if sampleData && o.contentResult == nil && onOutput {
		v.Content = campaign.SampleContent()
	}

	v.GraphicURL = o.graphicURL
	v.Graphic = o.graphicResult
	if o.selected != nil {
		selected := *o.selected
		v.Selected = &selected
		if v.GraphicURL == nil {
			v.GraphicURL = selected.GraphicURL
		}
		if v.Graphic == nil && selected.GraphicDescription != nil {
			v.Graphic = &campaign.GraphicResult{
				ImageDescription: *selected.GraphicDescription,
				DesignNotes:      deref(selected.GraphicDesignNotes),
				SuggestedUsage:   deref(selected.GraphicSuggestedUsage),
			}
		}
	}

	if sampleData && o.contentResult == nil {
		v.Form = Form{
			Topic:       campaign.SampleBrief.Topic,
			Audience:    campaign.SampleBrief.Audience,
			ContentType: campaign.SampleBrief.ContentType,
			Notes:       campaign.SampleBrief.Notes,
		}
	}

	return v
}
