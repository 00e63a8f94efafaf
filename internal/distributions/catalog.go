package distributions

// Category is an (id, name) pair. The zero value is the "unknown" sentinel.
type Category struct {
	ID   uint8
	Name string
}

// Country is a location entry.
type Country struct {
	ID     uint16
	Code   string
	Region string
}

// Size is an image resolution.
type Size struct {
	Width, Height uint16
}

var (
	genderWoman = Category{ID: 1, Name: "woman"}
	genderMan   = Category{ID: 2, Name: "man"}

	genders = []Category{genderWoman, genderMan}

	ages = []Category{
		{ID: 6, Name: "adult"},
		{ID: 5, Name: "young"},
		{ID: 4, Name: "teenager"},
		{ID: 3, Name: "child"},
		{ID: 1, Name: "baby"},
		{ID: 7, Name: "old"},
	}
)

// Sites is the provider catalog. The first six carry explicit weights; the
// rest share the residual mass.
var Sites = []Category{
	{ID: 1, Name: "Getty"},
	{ID: 2, Name: "Shutterstock"},
	{ID: 3, Name: "Adobe"},
	{ID: 4, Name: "iStock"},
	{ID: 5, Name: "Pexels"},
	{ID: 6, Name: "Unsplash"},
	{ID: 7, Name: "Pond5"},
	{ID: 8, Name: "123rf"},
	{ID: 9, Name: "Alamy"},
	{ID: 10, Name: "VCG"},
	{ID: 11, Name: "Picxy"},
	{ID: 12, Name: "Pixerf"},
	{ID: 13, Name: "ImagesBazaar"},
	{ID: 14, Name: "IndiaPicture"},
	{ID: 15, Name: "Iwaria"},
	{ID: 16, Name: "Nappy"},
	{ID: 17, Name: "Picha"},
	{ID: 18, Name: "Afripics"},
}

// Countries is the location catalog used when a location is known.
var Countries = []Country{
	{ID: 1, Code: "US", Region: "North America"},
	{ID: 2, Code: "GB", Region: "Europe"},
	{ID: 3, Code: "CA", Region: "North America"},
	{ID: 4, Code: "AU", Region: "Oceania"},
	{ID: 5, Code: "DE", Region: "Europe"},
	{ID: 6, Code: "FR", Region: "Europe"},
	{ID: 7, Code: "IT", Region: "Europe"},
	{ID: 8, Code: "ES", Region: "Europe"},
	{ID: 9, Code: "JP", Region: "Asia"},
	{ID: 10, Code: "CN", Region: "Asia"},
	{ID: 11, Code: "IN", Region: "Asia"},
	{ID: 12, Code: "BR", Region: "South America"},
	{ID: 13, Code: "MX", Region: "North America"},
	{ID: 14, Code: "RU", Region: "Europe"},
	{ID: 15, Code: "UA", Region: "Europe"},
}

// Ethnicity ids, in ladder order.
const (
	EthnicityWhite uint8 = iota + 1
	EthnicityAsian
	EthnicityBlack
	EthnicityHispanic
	EthnicityMiddleEastern
	EthnicityNativeAmerican
	EthnicityPacificIslander
	EthnicityMixed
	EthnicityOther
)

var firstNames = []string{
	"John", "Jane", "Mike", "Sarah", "David", "Emily", "Chris", "Lisa",
	"Robert", "Maria", "James", "Anna", "Michael", "Emma", "William", "Olivia",
	"Richard", "Sophia", "Joseph", "Isabella", "Thomas", "Charlotte", "Charles", "Amelia",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Wilson", "Anderson", "Thomas", "Taylor",
	"Moore", "Jackson", "Martin", "Lee", "Thompson", "White", "Harris", "Sanchez",
}

// CommonSizes are typical stock photo resolutions.
var CommonSizes = []Size{
	{1920, 1080},
	{3840, 2160},
	{2560, 1440},
	{1600, 1200},
	{2048, 1536},
	{1920, 1280},
	{2400, 1600},
	{1200, 800},
	{1024, 768},
	{800, 600},
}
