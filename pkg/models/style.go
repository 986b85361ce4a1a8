package models

// StyleVector is the per-turn expression style, twelve dimensions in [0,1]
// plus two gates. It is recomputed every turn by a pure function of
// relationship, mood, personality and detection signals; prompt builders and
// the segmenter read it, nothing writes it back.
type StyleVector struct {
	SelfDisclosure   float64 `json:"self_disclosure"`
	TopicAdherence   float64 `json:"topic_adherence"`
	Initiative       float64 `json:"initiative"`
	AdviceStyle      float64 `json:"advice_style"`
	Subjectivity     float64 `json:"subjectivity"`
	MemoryHook       float64 `json:"memory_hook"`
	VerbalLength     float64 `json:"verbal_length"`
	SocialDistance   float64 `json:"social_distance"`
	ToneTemperature  float64 `json:"tone_temperature"`
	EmotionalDisplay float64 `json:"emotional_display"`
	WitAndHumor      float64 `json:"wit_and_humor"`
	NonVerbalCues    float64 `json:"non_verbal_cues"`

	// ColdnessGate suppresses warmth expression when raised; BoundaryGate
	// hardens refusals of overstepping asks. Both in [0,1].
	ColdnessGate float64 `json:"coldness_gate"`
	BoundaryGate float64 `json:"boundary_gate"`
}

// DefaultStyle is the fallback style used when the style stage cannot run.
// Mid-range on everything, gates closed.
func DefaultStyle() StyleVector {
	return StyleVector{
		SelfDisclosure:   0.4,
		TopicAdherence:   0.6,
		Initiative:       0.4,
		AdviceStyle:      0.3,
		Subjectivity:     0.5,
		MemoryHook:       0.3,
		VerbalLength:     0.5,
		SocialDistance:   0.5,
		ToneTemperature:  0.5,
		EmotionalDisplay: 0.4,
		WitAndHumor:      0.4,
		NonVerbalCues:    0.3,
	}
}

// Clamp bounds every dimension and gate to [0,1].
func (s *StyleVector) Clamp() {
	s.SelfDisclosure = Clamp01(s.SelfDisclosure)
	s.TopicAdherence = Clamp01(s.TopicAdherence)
	s.Initiative = Clamp01(s.Initiative)
	s.AdviceStyle = Clamp01(s.AdviceStyle)
	s.Subjectivity = Clamp01(s.Subjectivity)
	s.MemoryHook = Clamp01(s.MemoryHook)
	s.VerbalLength = Clamp01(s.VerbalLength)
	s.SocialDistance = Clamp01(s.SocialDistance)
	s.ToneTemperature = Clamp01(s.ToneTemperature)
	s.EmotionalDisplay = Clamp01(s.EmotionalDisplay)
	s.WitAndHumor = Clamp01(s.WitAndHumor)
	s.NonVerbalCues = Clamp01(s.NonVerbalCues)
	s.ColdnessGate = Clamp01(s.ColdnessGate)
	s.BoundaryGate = Clamp01(s.BoundaryGate)
}
