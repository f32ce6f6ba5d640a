package resume

// The wire document as served by the content backend. Every field is
// optional at this level; Transform decides which ones are mandatory.
// The structs carry mapstructure tags because the backend client hands the
// payload over as a loosely decoded document.
type document struct {
	Record *recordDTO `mapstructure:"record" json:"record"`
}

type recordDTO struct {
	MainInfo    *mainInfoDTO    `mapstructure:"mainInfo" json:"mainInfo"`
	Experiences []experienceDTO `mapstructure:"experiences" json:"experiences"`
	Projects    []projectDTO    `mapstructure:"projects" json:"projects"`
	Education   *educationDTO   `mapstructure:"education" json:"education"`
	Skills      []skillDTO      `mapstructure:"skills" json:"skills"`
	Other       []string        `mapstructure:"other" json:"other"`
}

type mainInfoDTO struct {
	Name         *string  `mapstructure:"name" json:"name"`
	Headline     *string  `mapstructure:"headline" json:"headline"`
	PictureURL   *string  `mapstructure:"pictureUrl" json:"pictureUrl"`
	Location     *string  `mapstructure:"location" json:"location"`
	DateOfBirth  *string  `mapstructure:"dateOfBirth" json:"dateOfBirth"`
	PhoneNumber  *string  `mapstructure:"phoneNumber" json:"phoneNumber"`
	EmailAddress *string  `mapstructure:"emailAddress" json:"emailAddress"`
	LinkedIn     *string  `mapstructure:"linkedIn" json:"linkedIn"`
	GitHub       *string  `mapstructure:"github" json:"github"`
	MainSkills   []string `mapstructure:"mainSkills" json:"mainSkills"`
}

type experienceDTO struct {
	ID         *string       `mapstructure:"id" json:"id"`
	Title      *string       `mapstructure:"title" json:"title"`
	Company    *string       `mapstructure:"company" json:"company"`
	PictureURL *string       `mapstructure:"pictureUrl" json:"pictureUrl"`
	StartDate  *string       `mapstructure:"startDate" json:"startDate"`
	EndDate    *string       `mapstructure:"endDate" json:"endDate"`
	Positions  []positionDTO `mapstructure:"positions" json:"positions"`
}

type positionDTO struct {
	Title       *string  `mapstructure:"title" json:"title"`
	Description *string  `mapstructure:"description" json:"description"`
	Skills      []string `mapstructure:"skills" json:"skills"`
}

type projectDTO struct {
	Name        *string  `mapstructure:"name" json:"name"`
	Description *string  `mapstructure:"description" json:"description"`
	PictureURL  *string  `mapstructure:"pictureUrl" json:"pictureUrl"`
	ProjectURL  *string  `mapstructure:"url" json:"url"`
	Skills      []string `mapstructure:"skills" json:"skills"`
}

type educationDTO struct {
	Diplomas    []diplomaDTO    `mapstructure:"diplomas" json:"diplomas"`
	Courses     []courseDTO     `mapstructure:"courses" json:"courses"`
	Conferences []conferenceDTO `mapstructure:"conferences" json:"conferences"`
}

type diplomaDTO struct {
	Name          *string `mapstructure:"name" json:"name"`
	Description   *string `mapstructure:"description" json:"description"`
	Date          *string `mapstructure:"date" json:"date"`
	Establishment *string `mapstructure:"establishment" json:"establishment"`
	PictureURL    *string `mapstructure:"pictureUrl" json:"pictureUrl"`
}

type courseDTO struct {
	Name         *string `mapstructure:"name" json:"name"`
	Date         *string `mapstructure:"date" json:"date"`
	Organization *string `mapstructure:"organization" json:"organization"`
	PictureURL   *string `mapstructure:"pictureUrl" json:"pictureUrl"`
}

type conferenceDTO struct {
	Name       *string `mapstructure:"name" json:"name"`
	Date       *string `mapstructure:"date" json:"date"`
	PictureURL *string `mapstructure:"pictureUrl" json:"pictureUrl"`
}

type skillDTO struct {
	ID         *string `mapstructure:"id" json:"id"`
	Name       *string `mapstructure:"name" json:"name"`
	PictureURL *string `mapstructure:"pictureUrl" json:"pictureUrl"`
}
