package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"mcc/internal/campaign"
	"mcc/internal/generate"
)

type pageData struct {
	Title  string
	View   generate.View
	Agents []AgentInfo

	// Dashboard grid
	Recent []campaign.Campaign

	// History search
	Query    string
	Filtered []campaign.Campaign
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	v := s.orch.Project(sampleData(r), false)

	recent := v.Campaigns
	if len(recent) > 6 {
		recent = recent[:6]
	}

	s.render(w, "dashboard.html", pageData{
		Title:  "Dashboard",
		View:   v,
		Agents: s.agents,
		Recent: recent,
	})
}

func (s *Server) handleOutput(w http.ResponseWriter, r *http.Request) {
	v := s.orch.Project(sampleData(r), true)
	s.render(w, "output.html", pageData{
		Title:  "Content Output",
		View:   v,
		Agents: s.agents,
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	v := s.orch.Project(sampleData(r), false)
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	s.render(w, "history.html", pageData{
		Title:    "Content History",
		View:     v,
		Agents:   s.agents,
		Query:    query,
		Filtered: filterCampaigns(v.Campaigns, query),
	})
}

// filterCampaigns matches the query against article title, topic, and
// content type, case-insensitively. An empty query matches everything.
func filterCampaigns(campaigns []campaign.Campaign, query string) []campaign.Campaign {
	if query == "" {
		return campaigns
	}
	q := strings.ToLower(query)
	var out []campaign.Campaign
	for _, c := range campaigns {
		if strings.Contains(strings.ToLower(c.ArticleTitle), q) ||
			strings.Contains(strings.ToLower(c.Topic), q) ||
			strings.Contains(strings.ToLower(c.ContentType), q) {
			out = append(out, c)
		}
	}
	return out
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	form := generate.Form{
		Topic:       r.FormValue("topic"),
		Audience:    r.FormValue("audience"),
		ContentType: r.FormValue("content_type"),
		Notes:       r.FormValue("notes"),
	}
	if strings.TrimSpace(form.Topic) == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	// The dashboard stays responsive while the agent works; the output page
	// polls until the call resolves. Background context: navigating away
	// does not cancel the call.
	go s.orch.GenerateContent(context.Background(), form)

	http.Redirect(w, r, "/output", http.StatusSeeOther)
}

func (s *Server) handleGraphic(w http.ResponseWriter, r *http.Request) {
	go s.orch.GenerateGraphic(context.Background())
	http.Redirect(w, r, "/output", http.StatusSeeOther)
}

func (s *Server) handleOpenCampaign(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	c := s.findCampaign(id, sampleData(r))
	if c == nil {
		http.NotFound(w, r)
		return
	}

	s.orch.OpenCampaign(*c)
	http.Redirect(w, r, "/output", http.StatusSeeOther)
}

// findCampaign looks the id up in the projected list, so sample campaigns
// are openable while the toggle is on.
func (s *Server) findCampaign(id string, sample bool) *campaign.Campaign {
	v := s.orch.Project(sample, false)
	for i := range v.Campaigns {
		if v.Campaigns[i].ID == id {
			c := v.Campaigns[i]
			return &c
		}
	}
	return nil
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.orch.Reset()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleSampleToggle(w http.ResponseWriter, r *http.Request) {
	value := "1"
	if sampleData(r) {
		value = "0"
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sampleCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
	})

	back := r.FormValue("back")
	if back == "" || !strings.HasPrefix(back, "/") {
		back = "/"
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}

func (s *Server) handleExportArticle(w http.ResponseWriter, r *http.Request) {
	v := s.orch.Project(sampleData(r), true)
	if v.Content == nil {
		http.NotFound(w, r)
		return
	}

	name := v.Content.ArticleTitle
	if name == "" {
		name = "article"
	}
	fullText := fmt.Sprintf("# %s\n\n%s\n\n%s",
		v.Content.ArticleTitle, v.Content.MetaDescription, v.Content.ArticleContent)

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".md"))
	w.Write([]byte(fullText))
}

func (s *Server) handleExportGraphic(w http.ResponseWriter, r *http.Request) {
	v := s.orch.Project(sampleData(r), true)
	if v.GraphicURL == nil {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, *v.GraphicURL, http.StatusFound)
}
