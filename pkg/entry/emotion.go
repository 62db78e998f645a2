package entry

import "strings"

// The fixed set of moods a user can log.
const (
	Happy    = "feliz"
	Sad      = "triste"
	Anxious  = "ansioso"
	Angry    = "enfadado"
	Tired    = "cansado"
	Excited  = "emocionado"
	Grateful = "agradecido"
)

const (
	// MaxIntensity is the number of slots on the intensity scale.
	MaxIntensity = 5
	// DefaultIntensity is used when the caller does not pick one.
	DefaultIntensity = 5

	filledStar = "★"
	emptyStar  = "☆"
)

// Emotions lists the mood labels in picker order.
func Emotions() []string {
	return []string{Happy, Sad, Anxious, Angry, Tired, Excited, Grateful}
}

var emojis = map[string]string{
	Happy:    "😊",
	Sad:      "😢",
	Anxious:  "😰",
	Angry:    "😠",
	Tired:    "😴",
	Excited:  "🤗",
	Grateful: "🙏",
}

var phrases = map[string]string{
	Happy:    "¡Hoy es un gran día!",
	Sad:      "Mañana será mejor",
	Anxious:  "Respira hondo, todo estará bien",
	Angry:    "Un momento de calma puede ayudar",
	Tired:    "Descansar es importante",
	Excited:  "¡La emoción es contagiosa!",
	Grateful: "La gratitud cambia todo",
}

// Emoji returns the emoji for a mood label, or "" when unmapped.
func Emoji(emotion string) string {
	return emojis[emotion]
}

// Phrase returns the encouragement shown for a mood label, or "" when unmapped.
func Phrase(emotion string) string {
	return phrases[emotion]
}

// Known reports whether emotion is one of the fixed labels.
func Known(emotion string) bool {
	_, ok := emojis[emotion]
	return ok
}

// Stars renders intensity on the fixed five slot scale. Values outside 0..5
// are clamped.
func Stars(intensity int) string {
	if intensity < 0 {
		intensity = 0
	}
	if intensity > MaxIntensity {
		intensity = MaxIntensity
	}
	return strings.Repeat(filledStar, intensity) + strings.Repeat(emptyStar, MaxIntensity-intensity)
}
