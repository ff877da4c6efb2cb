package simulate

const (
	videoAnimal = "https://www.youtube.com/watch?v=X655B4ISakg"
	videoCosmic = "https://www.youtube.com/watch?v=U9Q6FKF12Qs"
)

// KidsProgram is a themed yoga session for one age group
type KidsProgram struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Duration     string   `json:"duration"`
	Features     []string `json:"features"`
	VideoURL     string   `json:"video_url"`
	CartoonVideo string   `json:"cartoon_video"`
}

// KidsAgeGroups is the display order of the age groups
var KidsAgeGroups = []string{"3-5", "6-8", "9-12", "13-17"}

var kidsPrograms = map[string][]KidsProgram{
	"3-5": {
		{Name: "Animal Yoga Adventure", Description: "Fun animal-themed poses that help kids develop strength, flexibility, and imagination.",
			Duration: "15 minutes", Features: []string{"Interactive", "Story-based", "Cartoon Characters"}, VideoURL: videoAnimal, CartoonVideo: videoAnimal},
		{Name: "Disney Yoga Fun", Description: "Yoga poses inspired by Disney characters for magical movement.",
			Duration: "12 minutes", Features: []string{"Disney Characters", "Magical Stories", "Fun Music"}, VideoURL: videoCosmic, CartoonVideo: videoCosmic},
	},
	"6-8": {
		{Name: "Superhero Yoga", Description: "Empowering poses that make kids feel like superheroes while building confidence.",
			Duration: "20 minutes", Features: []string{"Confidence Building", "Fun Games", "Superhero Theme"}, VideoURL: videoCosmic, CartoonVideo: videoCosmic},
		{Name: "Paw Patrol Yoga", Description: "Adventure-themed yoga with Paw Patrol characters.",
			Duration: "18 minutes", Features: []string{"Adventure Theme", "Team Building", "Problem Solving"}, VideoURL: videoAnimal, CartoonVideo: videoAnimal},
	},
	"9-12": {
		{Name: "Harry Potter Yoga", Description: "Magical yoga journey through Hogwarts with spells and poses.",
			Duration: "25 minutes", Features: []string{"Fantasy Theme", "Magic Spells", "Adventure"}, VideoURL: videoCosmic, CartoonVideo: videoCosmic},
		{Name: "Sports Yoga Challenge", Description: "Yoga poses inspired by different sports for active kids.",
			Duration: "22 minutes", Features: []string{"Sports Theme", "Competition", "Team Spirit"}, VideoURL: videoAnimal, CartoonVideo: videoAnimal},
	},
	"13-17": {
		{Name: "Teen Mindfulness", Description: "Stress-relief focused practice with breathing techniques and meditation.",
			Duration: "30 minutes", Features: []string{"Stress Relief", "Mindfulness", "Meditation"}, VideoURL: "https://www.youtube.com/watch?v=2MJGg-dUKh0", CartoonVideo: videoCosmic},
		{Name: "Anime Yoga Flow", Description: "Dynamic yoga inspired by anime characters and movements.",
			Duration: "28 minutes", Features: []string{"Anime Theme", "Dynamic Flow", "Cool Poses"}, VideoURL: "https://www.youtube.com/watch?v=DH7IjnXGfVY", CartoonVideo: videoCosmic},
	},
}

// KidsPrograms returns a copy of the programs for ageGroup
func KidsPrograms(ageGroup string) ([]KidsProgram, error) {
	programs, ok := kidsPrograms[ageGroup]
	if !ok {
		return nil, ErrUnknownAgeGroup
	}
	return append([]KidsProgram(nil), programs...), nil
}
