package controller

import (
	"fmt"
	"strings"
)

// Informational texts shown instead of missing data
const (
	TextUnrecognized = "Unknown"
	TextNoWorks      = "No movies found or actor not recognized."
	TextNoOverview   = "No overview available."
	TextNoCategory   = "unknown"
)

// WorkView is one entry of the works list as displayed
type WorkView struct {
	Title     string
	Category  string
	PosterURL string
	HasPoster bool
	Overview  string
}

// Presentation is a read-only projection of State for rendering.
// It holds no state of its own.
type Presentation struct {
	// The selection affordance is always available
	ShowDropZone bool
	Loading      bool

	ShowPreview bool
	PreviewName string
	PreviewURI  string
	Thumbnail   string

	// ShowResult is set whenever a RecognitionResult is current
	ShowResult     bool
	ActorName      string
	Unrecognized   bool
	ShowConfidence bool
	Confidence     string
	Works          []WorkView
	NoWorksText    string

	ShowError    bool
	ErrorMessage string
}

// Present derives the presentation for s
func Present(s State, posters PosterResolver) Presentation {
	p := Presentation{
		ShowDropZone: true,
		Loading:      s.InFlight(),
	}

	if s.Image != nil {
		p.ShowPreview = true
		p.PreviewName = s.Image.Name
		p.PreviewURI = s.Image.PreviewURI
		p.Thumbnail = s.Image.Thumbnail
	}

	if r := s.Result; r != nil {
		p.ShowResult = true
		if r.Recognized() {
			p.ActorName = strings.TrimSpace(r.Actor)
		} else {
			p.Unrecognized = true
		}
		if r.HasConfidence() {
			p.ShowConfidence = true
			p.Confidence = FormatConfidence(*r.Confidence)
		}
		if len(r.Movies) > 0 {
			p.Works = make([]WorkView, 0, len(r.Movies))
			for _, m := range r.Movies {
				w := WorkView{
					Title:    m.Title,
					Category: m.MediaType,
					Overview: strings.TrimSpace(m.Overview),
				}
				if w.Category == "" {
					w.Category = TextNoCategory
				}
				if w.Overview == "" {
					w.Overview = TextNoOverview
				}
				w.PosterURL, w.HasPoster = posters.Resolve(m.PosterPath)
				p.Works = append(p.Works, w)
			}
		} else {
			p.NoWorksText = TextNoWorks
		}
	}

	if s.Err != nil && s.Err.Message != "" {
		p.ShowError = true
		p.ErrorMessage = s.Err.Message
	}

	return p
}

// FormatConfidence renders a 0-100 score as a percentage with two decimals
func FormatConfidence(score float64) string {
	return fmt.Sprintf("%.2f%%", score)
}

// DisplayActor returns the actor line text, falling back to TextUnrecognized
func (p Presentation) DisplayActor() string {
	if p.Unrecognized || p.ActorName == "" {
		return TextUnrecognized
	}
	return p.ActorName
}
