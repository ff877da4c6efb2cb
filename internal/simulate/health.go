package simulate

import (
	"errors"  // Sentinel errors
	"strings" // Keyword matching
)

// ErrEmptyConcern is returned when no health concern was described
var ErrEmptyConcern = errors.New("please describe your health concern")

// HealthAdvice is the simulated recommendation for a described concern
type HealthAdvice struct {
	Concern         string   `json:"concern"`
	Recommendations []string `json:"recommendations"`
	Suggestion      string   `json:"suggestion"`
	VideoURL        string   `json:"video_url"`
}

type concernRule struct {
	keywords        []string
	recommendations []string
	suggestion      string
	video           string
}

const (
	videoCalm       = "https://www.youtube.com/watch?v=2MJGg-dUKh0"
	videoBack       = "https://www.youtube.com/watch?v=JDcdhTuycOI"
	videoFlexible   = "https://www.youtube.com/watch?v=DH7IjnXGfVY"
	videoFoundation = "https://www.youtube.com/watch?v=YlRZtr6DlBw"
	videoWarrior    = "https://www.youtube.com/watch?v=3V-2qkMzdWY"
)

// Rules are checked in order; the first rule with a matching keyword wins.
var concernRules = []concernRule{
	{
		keywords: []string{"stress", "anxiety"},
		recommendations: []string{
			"Practice diaphragmatic breathing: 4 seconds inhale, 4 seconds hold, 6 seconds exhale",
			"Engage in regular physical activity - aim for 150 minutes of moderate exercise per week",
			"Maintain consistent sleep schedule: 7-9 hours nightly for adults",
			"Limit caffeine intake to 400mg daily (about 4 cups of coffee)",
			"Consider mindfulness meditation: 10-20 minutes daily",
			"Maintain social connections and seek professional help if symptoms persist",
		},
		suggestion: "Try these calming poses: Child's Pose (Balasana), Legs-Up-the-Wall Pose (Viparita Karani), and Corpse Pose (Savasana) for relaxation.",
		video:      videoCalm,
	},
	{
		keywords: []string{"back", "spine"},
		recommendations: []string{
			"Practice gentle spinal mobility exercises daily",
			"Strengthen core muscles with planks and bird-dog exercises",
			"Maintain neutral spine alignment during daily activities",
			"Use ergonomic furniture and adjust workstation height",
			"Apply heat therapy for 15-20 minutes to reduce muscle tension",
			"Consult healthcare provider if pain persists beyond 2 weeks",
		},
		suggestion: "Focus on back-strengthening poses: Cat-Cow Pose, Cobra Pose (Bhujangasana), and Spinal Twist (Ardha Matsyendrasana).",
		video:      videoBack,
	},
	{
		keywords: []string{"flexibility", "stiff"},
		recommendations: []string{
			"Perform dynamic stretching before exercise and static stretching after",
			"Focus on hip-opening poses: pigeon pose, butterfly pose, lizard pose",
			"Warm up muscles for 5-10 minutes before stretching",
			"Stay hydrated: aim for 8-10 glasses of water daily",
			"Practice yoga regularly: 2-3 sessions per week minimum",
			"Consider foam rolling for myofascial release",
		},
		suggestion: "Practice flexibility poses: Downward Dog, Forward Fold (Uttanasana), and Butterfly Pose (Baddha Konasana).",
		video:      videoFlexible,
	},
	{
		keywords: []string{"sleep", "insomnia"},
		recommendations: []string{
			"Maintain consistent sleep schedule, even on weekends",
			"Create cool, dark, quiet sleep environment (65-68°F)",
			"Avoid screens 1 hour before bedtime",
			"Practice relaxation techniques: progressive muscle relaxation",
			"Limit daytime naps to 20-30 minutes",
			"Avoid large meals, caffeine, and alcohol 3 hours before bed",
		},
		suggestion: "Try bedtime yoga: Legs-Up-the-Wall Pose, Reclining Butterfly Pose, and Corpse Pose for better sleep.",
		video:      videoCalm,
	},
	{
		keywords: []string{"energy", "fatigue"},
		recommendations: []string{
			"Maintain balanced diet with complex carbohydrates and lean proteins",
			"Stay hydrated: drink water throughout the day",
			"Get regular exercise: 30 minutes daily improves energy levels",
			"Ensure adequate iron intake: leafy greens, lean meats, legumes",
			"Practice stress management techniques",
			"Consider B-vitamin supplementation if deficient",
		},
		// energy concerns share the general suggestion
		suggestion: defaultRule.suggestion,
		video:      defaultRule.video,
	},
}

var defaultRule = concernRule{
	recommendations: []string{
		"Maintain regular yoga practice: 3-4 sessions per week",
		"Focus on proper breathing techniques during practice",
		"Listen to your body and modify poses as needed",
		"Stay consistent with your wellness routine",
		"Combine yoga with cardiovascular exercise",
		"Maintain balanced nutrition and adequate hydration",
	},
	suggestion: "Start with foundational poses: Mountain Pose (Tadasana), Warrior I (Virabhadrasana I), and Tree Pose (Vrikshasana).",
	video:      videoFoundation,
}

// Advise matches the concern against the keyword table
func Advise(concern string) (HealthAdvice, error) {
	concern = strings.TrimSpace(concern)
	if concern == "" {
		return HealthAdvice{}, ErrEmptyConcern
	}
	lower := strings.ToLower(concern)
	rule := defaultRule
	for _, r := range concernRules {
		if containsAny(lower, r.keywords) {
			rule = r
			break
		}
	}
	return HealthAdvice{
		Concern:         concern,
		Recommendations: append([]string(nil), rule.recommendations...),
		Suggestion:      rule.suggestion,
		VideoURL:        rule.video,
	}, nil
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
