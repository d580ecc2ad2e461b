package render

import (
	"fmt"
	"strings"

	"github.com/folioforge/folioforge/internal/domain/portfolio"
)

// The three layouts arrange the same logical sections: header/identity,
// summary, experience, education, skills, projects. Sections whose backing
// collection is empty are omitted entirely, no empty headings.

func writeHeader(b *strings.Builder, r *portfolio.Record) {
	b.WriteString(`<header class="preview-header">`)
	if r.ProfilePicture.Kind == portfolio.PictureHosted {
		fmt.Fprintf(b, `<img class="profile-pic" src="%s" alt="%s %s">`,
			attr(r.ProfilePicture.Value), attr(r.FirstName), attr(r.LastName))
	}
	fmt.Fprintf(b, `<h1>%s %s</h1>`, esc(r.FirstName), esc(r.LastName))
	title := r.PortfolioTitle
	if title == "" {
		title = "Portfolio"
	}
	fmt.Fprintf(b, `<h2>%s</h2>`, esc(title))
	if r.Email != "" {
		fmt.Fprintf(b, `<p>%s</p>`, esc(r.Email))
	}
	b.WriteString(`</header>`)
}

func writeSummary(b *strings.Builder, r *portfolio.Record) {
	if strings.TrimSpace(r.Summary) == "" {
		return
	}
	b.WriteString(`<section class="preview-summary"><h3>Summary</h3>`)
	b.WriteString(`<div>` + md(r.Summary) + `</div></section>`)
}

func writeExperience(b *strings.Builder, r *portfolio.Record) {
	if len(r.Experience) == 0 {
		return
	}
	b.WriteString(`<section class="preview-experience"><h3>Work Experience</h3>`)
	for _, exp := range r.Experience {
		b.WriteString(`<div class="item">`)
		fmt.Fprintf(b, `<h4>%s <span>at %s</span></h4>`, esc(exp.Title), esc(exp.Company))
		if exp.Dates != "" {
			fmt.Fprintf(b, `<p class="dates">%s</p>`, esc(exp.Dates))
		}
		if exp.Description != "" {
			b.WriteString(`<div>` + md(exp.Description) + `</div>`)
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</section>`)
}

func writeEducation(b *strings.Builder, r *portfolio.Record) {
	if len(r.Education) == 0 {
		return
	}
	b.WriteString(`<section class="preview-education"><h3>Education</h3>`)
	for _, edu := range r.Education {
		b.WriteString(`<div class="item">`)
		fmt.Fprintf(b, `<h4>%s</h4><p>%s - %s</p>`, esc(edu.Degree), esc(edu.Institution), esc(edu.Year))
		b.WriteString(`</div>`)
	}
	b.WriteString(`</section>`)
}

func writeSkills(b *strings.Builder, r *portfolio.Record, withLevel bool) {
	if len(r.Skills) == 0 {
		return
	}
	b.WriteString(`<section class="preview-skills"><h3>Skills</h3><ul>`)
	for _, s := range r.Skills {
		if withLevel {
			fmt.Fprintf(b, `<li>%s (%s)</li>`, esc(s.Name), esc(string(s.Level)))
		} else {
			fmt.Fprintf(b, `<li>%s</li>`, esc(s.Name))
		}
	}
	b.WriteString(`</ul></section>`)
}

func writeProjects(b *strings.Builder, r *portfolio.Record) {
	if len(r.Projects) == 0 {
		return
	}
	b.WriteString(`<section class="preview-projects"><h3>Projects</h3>`)
	for _, p := range r.Projects {
		b.WriteString(`<div class="project-item">`)
		fmt.Fprintf(b, `<h4>%s</h4>`, esc(p.Title))
		if p.Technologies != "" {
			fmt.Fprintf(b, `<p class="tech"><strong>Technologies:</strong> %s</p>`, esc(p.Technologies))
		}
		if p.Description != "" {
			b.WriteString(`<div>` + md(p.Description) + `</div>`)
		}
		if p.LiveURL != "" || p.RepoURL != "" {
			b.WriteString(`<div class="project-links">`)
			if p.LiveURL != "" {
				fmt.Fprintf(b, `<a href="%s" target="_blank" rel="noopener">Live Demo</a>`, attr(p.LiveURL))
			}
			if p.RepoURL != "" {
				fmt.Fprintf(b, `<a href="%s" target="_blank" rel="noopener">Source Code</a>`, attr(p.RepoURL))
			}
			b.WriteString(`</div>`)
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</section>`)
}

// renderModern is the single-column default layout.
func renderModern(b *strings.Builder, r *portfolio.Record) {
	fmt.Fprintf(b, `<div class="portfolio-template modern %s">`, attr(r.Theme))
	writeHeader(b, r)
	writeSummary(b, r)
	writeExperience(b, r)
	writeEducation(b, r)
	writeSkills(b, r, true)
	writeProjects(b, r)
	b.WriteString(`</div>`)
}

// renderClassic places identity, skills and education in a sidebar next to
// the main content.
func renderClassic(b *strings.Builder, r *portfolio.Record) {
	fmt.Fprintf(b, `<div class="portfolio-template classic %s">`, attr(r.Theme))
	b.WriteString(`<aside class="sidebar">`)
	writeHeader(b, r)
	writeSkills(b, r, true)
	writeEducation(b, r)
	b.WriteString(`</aside><main class="main-content">`)
	writeSummary(b, r)
	writeExperience(b, r)
	writeProjects(b, r)
	b.WriteString(`</main></div>`)
}

// renderBold leads with the summary and drops skill levels for a denser list.
func renderBold(b *strings.Builder, r *portfolio.Record) {
	fmt.Fprintf(b, `<div class="portfolio-template bold %s">`, attr(r.Theme))
	writeHeader(b, r)
	writeSummary(b, r)
	writeExperience(b, r)
	writeProjects(b, r)
	b.WriteString(`<div class="two-column-section">`)
	writeEducation(b, r)
	writeSkills(b, r, false)
	b.WriteString(`</div></div>`)
}
