package resume

import "time"

// Resume is the fully validated domain document. It is only ever constructed
// by Transform, so every non-pointer field is guaranteed to be present.
type Resume struct {
	MainInfo    MainInfo     `json:"mainInfo"`
	Experiences []Experience `json:"experiences"`
	Projects    []Project    `json:"projects"`
	Education   Education    `json:"education"`
	Other       []string     `json:"other"`
}

type MainInfo struct {
	Name         string     `json:"name"`
	Headline     string     `json:"headline"`
	PictureURL   *string    `json:"pictureUrl,omitempty"`
	Location     *string    `json:"location,omitempty"`
	DateOfBirth  *time.Time `json:"dateOfBirth,omitempty"`
	PhoneNumber  string     `json:"phoneNumber"`
	EmailAddress string     `json:"emailAddress"`
	LinkedIn     *string    `json:"linkedIn,omitempty"`
	GitHub       *string    `json:"github,omitempty"`
	MainSkills   []Skill    `json:"mainSkills,omitempty"`
}

// Experience keeps its source ordering. A nil EndDate means the experience
// is ongoing.
type Experience struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Company    string     `json:"company"`
	PictureURL *string    `json:"pictureUrl,omitempty"`
	StartDate  time.Time  `json:"startDate"`
	EndDate    *time.Time `json:"endDate,omitempty"`
	Positions  []Position `json:"positions,omitempty"`
}

type Position struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Skills      []Skill `json:"skills,omitempty"`
}

type Project struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PictureURL  *string `json:"pictureUrl,omitempty"`
	ProjectURL  *string `json:"url,omitempty"`
	Skills      []Skill `json:"skills,omitempty"`
}

type Education struct {
	Diplomas    []Diploma    `json:"diplomas,omitempty"`
	Courses     []Course     `json:"courses,omitempty"`
	Conferences []Conference `json:"conferences,omitempty"`
}

type Diploma struct {
	Name          string  `json:"name"`
	Description   *string `json:"description,omitempty"`
	DateObtained  string  `json:"dateObtained"`
	Establishment string  `json:"establishment"`
	PictureURL    *string `json:"pictureUrl,omitempty"`
}

type Course struct {
	Name          string  `json:"name"`
	DateCompleted string  `json:"dateCompleted"`
	Organization  string  `json:"organization"`
	PictureURL    *string `json:"pictureUrl,omitempty"`
}

type Conference struct {
	Name         string  `json:"name"`
	DateAttended string  `json:"dateAttended"`
	PictureURL   *string `json:"pictureUrl,omitempty"`
}

// Skill is a resolved reference into the document's skill catalog. When a
// referenced id has no catalog entry the name keeps the raw id.
type Skill struct {
	Name       string  `json:"name"`
	PictureURL *string `json:"pictureUrl,omitempty"`
}

// ExperienceByID returns the experience with the given id, or nil.
// Source ordering is preserved, so the first match wins.
func (r *Resume) ExperienceByID(id string) *Experience {
	for i := range r.Experiences {
		if r.Experiences[i].ID == id {
			return &r.Experiences[i]
		}
	}
	return nil
}
