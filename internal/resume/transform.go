package resume

import (
	"time"

	"github.com/antoinepurnelle/resume-companion/internal/failure"
)

// transform validates a wire document into a domain Resume.
//
// The top level is strict: a missing record, a missing mainInfo or any
// missing required mainInfo field fails the whole mapping. Sub-elements are
// lenient: an experience, position, project or education item missing a
// required field is dropped without failing the batch. The only error kind
// produced here is Transformation.
func transform(doc *document) (*Resume, error) {
	if doc == nil || doc.Record == nil {
		return nil, failure.New(failure.Transformation)
	}

	record := doc.Record

	info := record.MainInfo
	if info == nil || info.Name == nil || info.Headline == nil || info.PhoneNumber == nil || info.EmailAddress == nil {
		return nil, failure.New(failure.Transformation)
	}

	catalog := buildCatalog(record.Skills)

	return &Resume{
		MainInfo: MainInfo{
			Name:         *info.Name,
			Headline:     *info.Headline,
			PictureURL:   info.PictureURL,
			Location:     info.Location,
			DateOfBirth:  parseOptionalDate(info.DateOfBirth),
			PhoneNumber:  *info.PhoneNumber,
			EmailAddress: *info.EmailAddress,
			LinkedIn:     info.LinkedIn,
			GitHub:       info.GitHub,
			MainSkills:   resolveSkills(info.MainSkills, catalog),
		},
		Experiences: mapExperiences(record.Experiences, catalog),
		Projects:    mapProjects(record.Projects, catalog),
		Education:   mapEducation(record.Education),
		Other:       append([]string{}, record.Other...),
	}, nil
}

func mapExperiences(dtos []experienceDTO, catalog map[string]Skill) []Experience {
	experiences := make([]Experience, 0, len(dtos))

	for _, dto := range dtos {
		if dto.ID == nil || dto.Title == nil || dto.Company == nil {
			continue
		}

		start, ok := parseDate(dto.StartDate)
		if !ok {
			continue
		}

		experiences = append(experiences, Experience{
			ID:         *dto.ID,
			Title:      *dto.Title,
			Company:    *dto.Company,
			PictureURL: dto.PictureURL,
			StartDate:  start,
			EndDate:    parseOptionalDate(dto.EndDate),
			Positions:  mapPositions(dto.Positions, catalog),
		})
	}

	return experiences
}

func mapPositions(dtos []positionDTO, catalog map[string]Skill) []Position {
	positions := make([]Position, 0, len(dtos))

	for _, dto := range dtos {
		if dto.Title == nil || dto.Description == nil {
			continue
		}

		positions = append(positions, Position{
			Title:       *dto.Title,
			Description: *dto.Description,
			Skills:      resolveSkills(dto.Skills, catalog),
		})
	}

	return positions
}

func mapProjects(dtos []projectDTO, catalog map[string]Skill) []Project {
	projects := make([]Project, 0, len(dtos))

	for _, dto := range dtos {
		if dto.Name == nil || dto.Description == nil {
			continue
		}

		projects = append(projects, Project{
			Name:        *dto.Name,
			Description: *dto.Description,
			PictureURL:  dto.PictureURL,
			ProjectURL:  dto.ProjectURL,
			Skills:      resolveSkills(dto.Skills, catalog),
		})
	}

	return projects
}

func mapEducation(dto *educationDTO) Education {
	if dto == nil {
		return Education{}
	}

	education := Education{}

	for _, diploma := range dto.Diplomas {
		if diploma.Name == nil || diploma.Date == nil || diploma.Establishment == nil {
			continue
		}
		education.Diplomas = append(education.Diplomas, Diploma{
			Name:          *diploma.Name,
			Description:   diploma.Description,
			DateObtained:  *diploma.Date,
			Establishment: *diploma.Establishment,
			PictureURL:    diploma.PictureURL,
		})
	}

	for _, course := range dto.Courses {
		if course.Name == nil || course.Date == nil || course.Organization == nil {
			continue
		}
		education.Courses = append(education.Courses, Course{
			Name:          *course.Name,
			DateCompleted: *course.Date,
			Organization:  *course.Organization,
			PictureURL:    course.PictureURL,
		})
	}

	for _, conference := range dto.Conferences {
		if conference.Name == nil || conference.Date == nil {
			continue
		}
		education.Conferences = append(education.Conferences, Conference{
			Name:         *conference.Name,
			DateAttended: *conference.Date,
			PictureURL:   conference.PictureURL,
		})
	}

	return education
}

// buildCatalog indexes the document's flat skill list by id. Entries without
// an id or a name are unusable and left out, which makes references to them
// degrade to the raw-id fallback.
func buildCatalog(dtos []skillDTO) map[string]Skill {
	catalog := make(map[string]Skill, len(dtos))

	for _, dto := range dtos {
		if dto.ID == nil || dto.Name == nil {
			continue
		}
		catalog[*dto.ID] = Skill{Name: *dto.Name, PictureURL: dto.PictureURL}
	}

	return catalog
}

// resolveSkills resolves skill ids against the catalog, preserving the order
// of the id list. An unresolved id yields a Skill named after the id itself.
func resolveSkills(ids []string, catalog map[string]Skill) []Skill {
	if len(ids) == 0 {
		return nil
	}

	skills := make([]Skill, 0, len(ids))
	for _, id := range ids {
		if skill, ok := catalog[id]; ok {
			skills = append(skills, skill)
			continue
		}
		skills = append(skills, Skill{Name: id})
	}

	return skills
}

// parseDate parses a strict YYYY-MM-DD calendar date.
func parseDate(value *string) (time.Time, bool) {
	if value == nil {
		return time.Time{}, false
	}

	date, err := time.Parse(time.DateOnly, *value)
	if err != nil {
		return time.Time{}, false
	}

	return date, true
}

// parseOptionalDate maps an absent or unparseable date to nil.
func parseOptionalDate(value *string) *time.Time {
	date, ok := parseDate(value)
	if !ok {
		return nil
	}
	return &date
}
