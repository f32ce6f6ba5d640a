// Package view maps domain resumes into the flat models the presentation
// commands render. Each page gets its own named mapping function instead of
// one generically typed transform, so every mapping's contract stands alone.
package view

import (
	"fmt"
	"time"

	"github.com/antoinepurnelle/resume-companion/internal/resume"
)

const dateLayout = "Jan 2006"

// Pill is a compact labelled chip, used for skills.
type Pill struct {
	Label   string `json:"label"`
	IconURL string `json:"iconUrl,omitempty"`
}

// Card is a single section entry: an experience, a project, a diploma.
type Card struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
	PictureURL  string `json:"pictureUrl,omitempty"`
	Pills       []Pill `json:"pills,omitempty"`
}

// Section groups cards under a title.
type Section struct {
	Title string `json:"title"`
	Items []Card `json:"items"`
}

// MainPage is the landing page model.
type MainPage struct {
	Header      Header    `json:"header"`
	Experiences []Card    `json:"experiences"`
	Projects    []Card    `json:"projects"`
	Education   []Section `json:"education"`
	Other       []string  `json:"other,omitempty"`
}

// Header carries the identity block of the main page.
type Header struct {
	Name         string `json:"name"`
	Headline     string `json:"headline"`
	PictureURL   string `json:"pictureUrl,omitempty"`
	Location     string `json:"location,omitempty"`
	DateOfBirth  string `json:"dateOfBirth,omitempty"`
	PhoneNumber  string `json:"phoneNumber"`
	EmailAddress string `json:"emailAddress"`
	LinkedIn     string `json:"linkedIn,omitempty"`
	GitHub       string `json:"github,omitempty"`
	MainSkills   []Pill `json:"mainSkills,omitempty"`
}

// ExperiencePage is the per-experience detail model.
type ExperiencePage struct {
	Header    ExperienceHeader `json:"header"`
	Positions []Section        `json:"positions"`
}

type ExperienceHeader struct {
	Title      string `json:"title"`
	Company    string `json:"company"`
	PictureURL string `json:"pictureUrl,omitempty"`
	Date       string `json:"date"`
}

// NewMainPage maps a domain resume to the main page model.
func NewMainPage(model *resume.Resume) MainPage {
	info := model.MainInfo

	experiences := make([]Card, 0, len(model.Experiences))
	for _, experience := range model.Experiences {
		experiences = append(experiences, Card{
			Title:      experience.Title,
			Subtitle:   experience.Company,
			Date:       dateRange(experience.StartDate, experience.EndDate),
			PictureURL: deref(experience.PictureURL),
		})
	}

	projects := make([]Card, 0, len(model.Projects))
	for _, project := range model.Projects {
		projects = append(projects, Card{
			Title:       project.Name,
			Description: project.Description,
			PictureURL:  deref(project.PictureURL),
			Subtitle:    deref(project.ProjectURL),
			Pills:       pills(project.Skills),
		})
	}

	return MainPage{
		Header: Header{
			Name:         info.Name,
			Headline:     info.Headline,
			PictureURL:   deref(info.PictureURL),
			Location:     deref(info.Location),
			DateOfBirth:  formatOptionalDate(info.DateOfBirth),
			PhoneNumber:  info.PhoneNumber,
			EmailAddress: info.EmailAddress,
			LinkedIn:     deref(info.LinkedIn),
			GitHub:       deref(info.GitHub),
			MainSkills:   pills(info.MainSkills),
		},
		Experiences: experiences,
		Projects:    projects,
		Education:   educationSections(model.Education),
		Other:       model.Other,
	}
}

// NewExperiencePage maps a single experience to its detail page model, one
// section per position.
func NewExperiencePage(model *resume.Experience) ExperiencePage {
	positions := make([]Section, 0, len(model.Positions))
	for _, position := range model.Positions {
		positions = append(positions, Section{
			Title: position.Title,
			Items: []Card{{
				Title: position.Description,
				Pills: pills(position.Skills),
			}},
		})
	}

	return ExperiencePage{
		Header: ExperienceHeader{
			Title:      model.Title,
			Company:    model.Company,
			PictureURL: deref(model.PictureURL),
			Date:       dateRange(model.StartDate, model.EndDate),
		},
		Positions: positions,
	}
}

func educationSections(education resume.Education) []Section {
	diplomas := make([]Card, 0, len(education.Diplomas))
	for _, diploma := range education.Diplomas {
		diplomas = append(diplomas, Card{
			Title:       diploma.Name,
			Subtitle:    diploma.Establishment,
			Description: deref(diploma.Description),
			Date:        diploma.DateObtained,
			PictureURL:  deref(diploma.PictureURL),
		})
	}

	courses := make([]Card, 0, len(education.Courses))
	for _, course := range education.Courses {
		courses = append(courses, Card{
			Title:      course.Name,
			Subtitle:   course.Organization,
			Date:       course.DateCompleted,
			PictureURL: deref(course.PictureURL),
		})
	}

	conferences := make([]Card, 0, len(education.Conferences))
	for _, conference := range education.Conferences {
		conferences = append(conferences, Card{
			Title:      conference.Name,
			Date:       conference.DateAttended,
			PictureURL: deref(conference.PictureURL),
		})
	}

	return []Section{
		{Title: "Diplomas", Items: diplomas},
		{Title: "Courses", Items: courses},
		{Title: "Conferences", Items: conferences},
	}
}

func pills(skills []resume.Skill) []Pill {
	if len(skills) == 0 {
		return nil
	}

	result := make([]Pill, 0, len(skills))
	for _, skill := range skills {
		result = append(result, Pill{Label: skill.Name, IconURL: deref(skill.PictureURL)})
	}
	return result
}

// dateRange renders "Jan 2020 - Mar 2022", or "Since Jan 2020" while the
// experience is ongoing.
func dateRange(start time.Time, end *time.Time) string {
	if end == nil {
		return fmt.Sprintf("Since %s", start.Format(dateLayout))
	}
	return fmt.Sprintf("%s - %s", start.Format(dateLayout), end.Format(dateLayout))
}

func formatOptionalDate(date *time.Time) string {
	if date == nil {
		return ""
	}
	return date.Format(time.DateOnly)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
