package resume

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/antoinepurnelle/resume-companion/internal/failure"
)

func ptr(s string) *string {
	return &s
}

func validMainInfo() *mainInfoDTO {
	return &mainInfoDTO{
		Name:         ptr("A"),
		Headline:     ptr("B"),
		PhoneNumber:  ptr("1"),
		EmailAddress: ptr("a@b.c"),
	}
}

func assertTransformation(t *testing.T, err error) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected an error")
	}
	if kind, ok := failure.KindOf(err); !ok || kind != failure.Transformation {
		t.Fatalf("expected transformation failure, got %v", err)
	}
}

func TestTransformMinimalDocument(t *testing.T) {
	doc := &document{Record: &recordDTO{
		MainInfo:  validMainInfo(),
		Education: &educationDTO{},
	}}

	mapped, err := transform(doc)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	want := MainInfo{Name: "A", Headline: "B", PhoneNumber: "1", EmailAddress: "a@b.c"}
	if !reflect.DeepEqual(mapped.MainInfo, want) {
		t.Fatalf("unexpected main info: %+v", mapped.MainInfo)
	}

	if len(mapped.Experiences) != 0 || len(mapped.Projects) != 0 || len(mapped.Other) != 0 {
		t.Fatalf("expected empty lists, got %+v", mapped)
	}

	if !reflect.DeepEqual(mapped.Education, Education{}) {
		t.Fatalf("expected empty education, got %+v", mapped.Education)
	}
}

func TestTransformFailsWithoutRecord(t *testing.T) {
	_, err := transform(nil)
	assertTransformation(t, err)

	_, err = transform(&document{})
	assertTransformation(t, err)
}

func TestTransformFailsWithoutRequiredMainInfo(t *testing.T) {
	cases := map[string]func(*mainInfoDTO){
		"name":     func(info *mainInfoDTO) { info.Name = nil },
		"headline": func(info *mainInfoDTO) { info.Headline = nil },
		"phone":    func(info *mainInfoDTO) { info.PhoneNumber = nil },
		"email":    func(info *mainInfoDTO) { info.EmailAddress = nil },
	}

	for name, clear := range cases {
		info := validMainInfo()
		clear(info)

		_, err := transform(&document{Record: &recordDTO{MainInfo: info}})
		if err == nil {
			t.Fatalf("missing %s: expected an error", name)
		}
		assertTransformation(t, err)
	}

	_, err := transform(&document{Record: &recordDTO{}})
	assertTransformation(t, err)
}

func TestTransformFullRoundTrip(t *testing.T) {
	doc := &document{Record: &recordDTO{
		MainInfo: &mainInfoDTO{
			Name:         ptr("Jane Doe"),
			Headline:     ptr("Engineer"),
			PictureURL:   ptr("https://pics/jane.png"),
			Location:     ptr("Brussels"),
			DateOfBirth:  ptr("1990-04-02"),
			PhoneNumber:  ptr("+3212345678"),
			EmailAddress: ptr("jane@example.com"),
			LinkedIn:     ptr("https://linkedin.com/in/jane"),
			GitHub:       ptr("https://github.com/jane"),
			MainSkills:   []string{"go", "missing"},
		},
		Experiences: []experienceDTO{{
			ID:        ptr("exp-1"),
			Title:     ptr("Backend Engineer"),
			Company:   ptr("Acme"),
			StartDate: ptr("2020-01-15"),
			EndDate:   ptr("2022-03-01"),
			Positions: []positionDTO{{
				Title:       ptr("Services"),
				Description: ptr("Built services"),
				Skills:      []string{"go"},
			}},
		}},
		Projects: []projectDTO{{
			Name:        ptr("companion"),
			Description: ptr("cli"),
			ProjectURL:  ptr("https://example.com"),
			Skills:      []string{"go"},
		}},
		Education: &educationDTO{
			Diplomas: []diplomaDTO{{
				Name:          ptr("MSc"),
				Date:          ptr("2012-06-30"),
				Establishment: ptr("ULB"),
			}},
			Courses: []courseDTO{{
				Name:         ptr("K8s"),
				Date:         ptr("2021-01-01"),
				Organization: ptr("CNCF"),
			}},
			Conferences: []conferenceDTO{{
				Name: ptr("GopherCon"),
				Date: ptr("2023-09-26"),
			}},
		},
		Skills: []skillDTO{{
			ID:         ptr("go"),
			Name:       ptr("Go"),
			PictureURL: ptr("https://pics/go.png"),
		}},
		Other: []string{"chess", "running"},
	}}

	mapped, err := transform(doc)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if mapped.MainInfo.Name != "Jane Doe" || *mapped.MainInfo.Location != "Brussels" {
		t.Fatalf("unexpected main info: %+v", mapped.MainInfo)
	}

	if mapped.MainInfo.DateOfBirth == nil || !mapped.MainInfo.DateOfBirth.Equal(date(t, "1990-04-02")) {
		t.Fatalf("unexpected date of birth: %v", mapped.MainInfo.DateOfBirth)
	}

	goSkill := Skill{Name: "Go", PictureURL: ptr("https://pics/go.png")}
	wantSkills := []Skill{goSkill, {Name: "missing"}}
	if !reflect.DeepEqual(mapped.MainInfo.MainSkills, wantSkills) {
		t.Fatalf("unexpected main skills: %+v", mapped.MainInfo.MainSkills)
	}

	if len(mapped.Experiences) != 1 {
		t.Fatalf("expected 1 experience, got %d", len(mapped.Experiences))
	}

	exp := mapped.Experiences[0]
	if exp.ID != "exp-1" || exp.Title != "Backend Engineer" || exp.Company != "Acme" {
		t.Fatalf("unexpected experience: %+v", exp)
	}
	if !exp.StartDate.Equal(date(t, "2020-01-15")) {
		t.Fatalf("unexpected start date: %v", exp.StartDate)
	}
	if exp.EndDate == nil || !exp.EndDate.Equal(date(t, "2022-03-01")) {
		t.Fatalf("unexpected end date: %v", exp.EndDate)
	}
	if len(exp.Positions) != 1 || exp.Positions[0].Title != "Services" {
		t.Fatalf("unexpected positions: %+v", exp.Positions)
	}
	if !reflect.DeepEqual(exp.Positions[0].Skills, []Skill{goSkill}) {
		t.Fatalf("unexpected position skills: %+v", exp.Positions[0].Skills)
	}

	if len(mapped.Projects) != 1 || mapped.Projects[0].Name != "companion" {
		t.Fatalf("unexpected projects: %+v", mapped.Projects)
	}

	if len(mapped.Education.Diplomas) != 1 || mapped.Education.Diplomas[0].Establishment != "ULB" {
		t.Fatalf("unexpected diplomas: %+v", mapped.Education.Diplomas)
	}
	if len(mapped.Education.Courses) != 1 || mapped.Education.Courses[0].Organization != "CNCF" {
		t.Fatalf("unexpected courses: %+v", mapped.Education.Courses)
	}
	if len(mapped.Education.Conferences) != 1 || mapped.Education.Conferences[0].DateAttended != "2023-09-26" {
		t.Fatalf("unexpected conferences: %+v", mapped.Education.Conferences)
	}

	if !reflect.DeepEqual(mapped.Other, []string{"chess", "running"}) {
		t.Fatalf("unexpected other: %+v", mapped.Other)
	}
}

func TestTransformIsIdempotent(t *testing.T) {
	doc := &document{Record: &recordDTO{
		MainInfo: validMainInfo(),
		Experiences: []experienceDTO{{
			ID: ptr("exp-1"), Title: ptr("T"), Company: ptr("C"), StartDate: ptr("2020-01-01"),
		}},
	}}

	first, err := transform(doc)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	second, err := transform(doc)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %+v and %+v", first, second)
	}
}

func TestTransformDropsMalformedExperiences(t *testing.T) {
	valid := experienceDTO{
		ID: ptr("keep"), Title: ptr("T"), Company: ptr("C"), StartDate: ptr("2020-01-01"),
	}

	malformed := []experienceDTO{
		{Title: ptr("T"), Company: ptr("C"), StartDate: ptr("2020-01-01")},
		{ID: ptr("no-title"), Company: ptr("C"), StartDate: ptr("2020-01-01")},
		{ID: ptr("no-company"), Title: ptr("T"), StartDate: ptr("2020-01-01")},
		{ID: ptr("no-start"), Title: ptr("T"), Company: ptr("C")},
		{ID: ptr("bad-start"), Title: ptr("T"), Company: ptr("C"), StartDate: ptr("01/02/2020")},
	}

	doc := &document{Record: &recordDTO{
		MainInfo:    validMainInfo(),
		Experiences: append(malformed, valid),
	}}

	mapped, err := transform(doc)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if len(mapped.Experiences) != 1 || mapped.Experiences[0].ID != "keep" {
		t.Fatalf("expected only the valid experience, got %+v", mapped.Experiences)
	}
}

func TestTransformDropsMalformedSubElements(t *testing.T) {
	doc := &document{Record: &recordDTO{
		MainInfo: validMainInfo(),
		Experiences: []experienceDTO{{
			ID: ptr("exp-1"), Title: ptr("T"), Company: ptr("C"), StartDate: ptr("2020-01-01"),
			Positions: []positionDTO{
				{Title: ptr("kept"), Description: ptr("d")},
				{Title: ptr("no-description")},
				{Description: ptr("no-title")},
			},
		}},
		Projects: []projectDTO{
			{Name: ptr("kept"), Description: ptr("d")},
			{Name: ptr("no-description")},
			{Description: ptr("no-name")},
		},
		Education: &educationDTO{
			Diplomas: []diplomaDTO{
				{Name: ptr("kept"), Date: ptr("2012-06-30"), Establishment: ptr("ULB")},
				{Name: ptr("no-establishment"), Date: ptr("2012-06-30")},
			},
			Courses: []courseDTO{
				{Name: ptr("no-organization"), Date: ptr("2021-01-01")},
			},
			Conferences: []conferenceDTO{
				{Name: ptr("no-date")},
				{Name: ptr("kept"), Date: ptr("2023-09-26")},
			},
		},
	}}

	mapped, err := transform(doc)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if len(mapped.Experiences[0].Positions) != 1 || mapped.Experiences[0].Positions[0].Title != "kept" {
		t.Fatalf("unexpected positions: %+v", mapped.Experiences[0].Positions)
	}
	if len(mapped.Projects) != 1 || mapped.Projects[0].Name != "kept" {
		t.Fatalf("unexpected projects: %+v", mapped.Projects)
	}
	if len(mapped.Education.Diplomas) != 1 {
		t.Fatalf("unexpected diplomas: %+v", mapped.Education.Diplomas)
	}
	if len(mapped.Education.Courses) != 0 {
		t.Fatalf("unexpected courses: %+v", mapped.Education.Courses)
	}
	if len(mapped.Education.Conferences) != 1 || mapped.Education.Conferences[0].Name != "kept" {
		t.Fatalf("unexpected conferences: %+v", mapped.Education.Conferences)
	}
}

func TestTransformUnparseableOptionalDatesBecomeAbsent(t *testing.T) {
	info := validMainInfo()
	info.DateOfBirth = ptr("not a date")

	doc := &document{Record: &recordDTO{
		MainInfo: info,
		Experiences: []experienceDTO{{
			ID: ptr("exp-1"), Title: ptr("T"), Company: ptr("C"),
			StartDate: ptr("2020-01-01"), EndDate: ptr("soon"),
		}},
	}}

	mapped, err := transform(doc)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if mapped.MainInfo.DateOfBirth != nil {
		t.Fatalf("expected absent date of birth, got %v", mapped.MainInfo.DateOfBirth)
	}
	if mapped.Experiences[0].EndDate != nil {
		t.Fatalf("expected ongoing experience, got %v", mapped.Experiences[0].EndDate)
	}
}

func TestTransformErrorMatchesTaxonomy(t *testing.T) {
	_, err := transform(&document{})
	if !errors.Is(err, failure.New(failure.Transformation)) {
		t.Fatalf("expected transformation failure, got %v", err)
	}
}

func date(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		t.Fatalf("parsing test date %q: %v", value, err)
	}
	return parsed
}
