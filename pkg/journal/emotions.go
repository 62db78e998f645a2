package journal

import (
	"strings"

	"tableflip.dev/diario/pkg/entry"
	"tableflip.dev/diario/pkg/notify"
)

// AddEmotion logs a mood entry stamped with the current time.
func (s *Service) AddEmotion(emotion, note string, intensity int) bool {
	_, ok := s.CreateEmotion(EmotionInput{Emotion: emotion, Note: note, Intensity: intensity})
	return ok
}

// CreateEmotion validates in and appends the entry.
func (s *Service) CreateEmotion(in EmotionInput) (*entry.Emotion, bool) {
	if err := Validate.Struct(in); err != nil {
		if failedField(err) == "Intensity" {
			s.Notify(notify.Error, MsgBadIntensity)
		} else {
			s.Notify(notify.Error, MsgEmotionMissing)
		}
		return nil, false
	}

	// The label is a lookup key and is normalized; the note is kept as typed.
	e := &entry.Emotion{
		ID:        s.newID(),
		Emotion:   strings.TrimSpace(in.Emotion),
		Note:      in.Note,
		Intensity: in.Intensity,
		Date:      entry.Now(s.clock.Now()),
	}
	s.state.Emotions = append(s.state.Emotions, e)
	s.persisted("emotions", s.Persistence.SaveEmotions(s.state.Emotions))
	s.Notify(notify.Success, MsgEmotionAdded)
	s.render(RegionEmotions, RegionDashboard, RegionStatistics)
	return e, true
}
