package simulate

// Pose is an entry of the static pose table
type Pose struct {
	Key            string   `json:"key"`
	Name           string   `json:"name"`
	Difficulty     string   `json:"difficulty"`
	Benefits       []string `json:"benefits"`
	Alignment      []string `json:"alignment"`
	CommonMistakes []string `json:"common_mistakes"`
	VideoURL       string   `json:"video_url"`
}

// PoseAnalysis is the result of a simulated pose detection
type PoseAnalysis struct {
	Pose     Pose `json:"pose"`
	Accuracy int  `json:"accuracy"`
}

// Poses is ordered so a picked index is stable across runs
var Poses = []Pose{
	{
		Key: "mountain", Name: "Mountain Pose (Tadasana)", Difficulty: "Beginner",
		Benefits:       []string{"Improves posture", "Strengthens legs", "Enhances focus", "Reduces stress"},
		Alignment:      []string{"Feet hip-width apart", "Weight evenly distributed", "Spine straight", "Shoulders relaxed"},
		CommonMistakes: []string{"Locking knees", "Arching back", "Tension in shoulders", "Uneven weight distribution"},
		VideoURL:       videoFoundation,
	},
	{
		Key: "downward-dog", Name: "Downward-Facing Dog (Adho Mukha Svanasana)", Difficulty: "Beginner",
		Benefits:       []string{"Strengthens arms and legs", "Stretches hamstrings", "Improves circulation", "Calms the mind"},
		Alignment:      []string{"Hands shoulder-width apart", "Feet hip-width apart", "Hips high", "Straight arms"},
		CommonMistakes: []string{"Bent knees", "Arched back", "Hands too close", "Looking up"},
		VideoURL:       videoFlexible,
	},
	{
		Key: "warrior1", Name: "Warrior I (Virabhadrasana I)", Difficulty: "Intermediate",
		Benefits:       []string{"Strengthens legs", "Opens chest", "Improves balance", "Builds confidence"},
		Alignment:      []string{"Front knee over ankle", "Back leg straight", "Hips square", "Arms reaching up"},
		CommonMistakes: []string{"Knee too far forward", "Hips not square", "Arching back", "Back foot not grounded"},
		VideoURL:       videoWarrior,
	},
	{
		Key: "warrior2", Name: "Warrior II (Virabhadrasana II)", Difficulty: "Intermediate",
		Benefits:       []string{"Strengthens legs", "Opens hips", "Improves stamina", "Builds focus"},
		Alignment:      []string{"Front knee over ankle", "Back leg straight", "Arms parallel to floor", "Gaze over front hand"},
		CommonMistakes: []string{"Knee collapsing inward", "Arms not parallel", "Hips not open", "Leaning forward"},
		VideoURL:       videoWarrior,
	},
	{
		Key: "tree", Name: "Tree Pose (Vrikshasana)", Difficulty: "Beginner",
		Benefits:       []string{"Improves balance", "Strengthens legs", "Opens hips", "Enhances focus"},
		Alignment:      []string{"Standing leg straight", "Foot on inner thigh", "Hips square", "Arms overhead"},
		CommonMistakes: []string{"Foot on knee", "Hips not square", "Standing leg bent", "Arms not aligned"},
		VideoURL:       videoFoundation,
	},
	{
		Key: "child", Name: "Child's Pose (Balasana)", Difficulty: "Beginner",
		Benefits:       []string{"Relaxes spine", "Reduces stress", "Stretches hips", "Calms nervous system"},
		Alignment:      []string{"Knees hip-width apart", "Toes together", "Arms extended", "Forehead on mat"},
		CommonMistakes: []string{"Knees too wide", "Arms not extended", "Tension in shoulders", "Not relaxing"},
		VideoURL:       videoCalm,
	},
	{
		Key: "cobra", Name: "Cobra Pose (Bhujangasana)", Difficulty: "Beginner",
		Benefits:       []string{"Strengthens back", "Opens chest", "Improves posture", "Stretches abdomen"},
		Alignment:      []string{"Hands under shoulders", "Elbows close to body", "Chest lifted", "Legs engaged"},
		CommonMistakes: []string{"Arching too much", "Hands too far forward", "Elbows flared", "Not engaging legs"},
		VideoURL:       videoBack,
	},
	{
		Key: "bridge", Name: "Bridge Pose (Setu Bandhasana)", Difficulty: "Beginner",
		Benefits:       []string{"Strengthens back", "Opens chest", "Stretches spine", "Calms mind"},
		Alignment:      []string{"Feet hip-width apart", "Knees over ankles", "Arms under body", "Chest lifted"},
		CommonMistakes: []string{"Knees too wide", "Feet too far from body", "Not lifting chest", "Tension in neck"},
		VideoURL:       videoFlexible,
	},
	{
		Key: "triangle", Name: "Triangle Pose (Trikonasana)", Difficulty: "Intermediate",
		Benefits:       []string{"Stretches sides", "Strengthens legs", "Improves balance", "Opens hips"},
		Alignment:      []string{"Wide stance", "Front foot forward", "Back foot parallel", "Hand on shin or floor"},
		CommonMistakes: []string{"Stance too narrow", "Back foot not parallel", "Collapsing into pose", "Not reaching"},
		VideoURL:       videoWarrior,
	},
	{
		Key: "plank", Name: "Plank Pose (Phalakasana)", Difficulty: "Intermediate",
		Benefits:       []string{"Strengthens core", "Builds arm strength", "Improves posture", "Enhances stability"},
		Alignment:      []string{"Body in straight line", "Hands under shoulders", "Core engaged", "Legs straight"},
		CommonMistakes: []string{"Hips too high", "Hips sagging", "Hands too wide", "Not engaging core"},
		VideoURL:       videoFlexible,
	},
}

// AnalyzePose "detects" a pose and scores it. The score is a fresh value on
// every call and is not written back into the table.
func AnalyzePose(m Metrics) PoseAnalysis {
	return PoseAnalysis{
		Pose:     Poses[m.PickPose(len(Poses))],
		Accuracy: m.PoseAccuracy(),
	}
}

// BlendAccuracy is the mean of the previous average and the new score, rounded half up
func BlendAccuracy(previous, score int) int {
	return (previous + score + 1) / 2
}
