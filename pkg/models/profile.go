package models

// BotBasicInfo is the static identity layer of a bot. Read-only at runtime.
type BotBasicInfo struct {
	Name           string `json:"name"`
	Gender         string `json:"gender,omitempty"`
	Age            int    `json:"age,omitempty"`
	Region         string `json:"region,omitempty"`
	Occupation     string `json:"occupation,omitempty"`
	Education      string `json:"education,omitempty"`
	NativeLanguage string `json:"native_language,omitempty"`
	SpeakingStyle  string `json:"speaking_style,omitempty"`
}

// BotBigFive holds the five personality dimensions, each in [-1,1].
type BotBigFive struct {
	Openness          float64 `json:"openness"`
	Conscientiousness float64 `json:"conscientiousness"`
	Extraversion      float64 `json:"extraversion"`
	Agreeableness     float64 `json:"agreeableness"`
	Neuroticism       float64 `json:"neuroticism"`
}

// Clamp bounds every dimension to [-1,1].
func (b *BotBigFive) Clamp() {
	b.Openness = ClampSigned(b.Openness)
	b.Conscientiousness = ClampSigned(b.Conscientiousness)
	b.Extraversion = ClampSigned(b.Extraversion)
	b.Agreeableness = ClampSigned(b.Agreeableness)
	b.Neuroticism = ClampSigned(b.Neuroticism)
}

// BotPersona carries the free-form persona layers used by prompt builders.
type BotPersona struct {
	Attributes  map[string]string   `json:"attributes,omitempty"`
	Collections map[string][]string `json:"collections,omitempty"`
	Lore        map[string]string   `json:"lore,omitempty"`
}

// UserBasicInfo is the perceived-basics layer for a user. Fields are filled
// in once and never overwritten by inference (fill-missing-only).
type UserBasicInfo struct {
	Name       string `json:"name,omitempty"`
	Nickname   string `json:"nickname,omitempty"`
	Gender     string `json:"gender,omitempty"`
	AgeGroup   string `json:"age_group,omitempty"`
	Location   string `json:"location,omitempty"`
	Occupation string `json:"occupation,omitempty"`
}

// BasicInfoFields lists the analyzer-visible fields in probe priority order.
var BasicInfoFields = []string{"name", "age", "gender", "occupation", "location"}

// Field returns the named analyzer-visible field; ok is false for unknown
// names. "age" maps to the coarse age group.
func (u UserBasicInfo) Field(name string) (string, bool) {
	switch name {
	case "name":
		return u.Name, true
	case "age":
		return u.AgeGroup, true
	case "gender":
		return u.Gender, true
	case "occupation":
		return u.Occupation, true
	case "location":
		return u.Location, true
	default:
		return "", false
	}
}

// SetField assigns the named analyzer-visible field; false for unknown names.
func (u *UserBasicInfo) SetField(name, value string) bool {
	switch name {
	case "name":
		u.Name = value
	case "age":
		u.AgeGroup = value
	case "gender":
		u.Gender = value
	case "occupation":
		u.Occupation = value
	case "location":
		u.Location = value
	default:
		return false
	}
	return true
}

// RelationshipState holds the six relationship dimensions, each in [0,1].
// Power is the bot's perceived share of conversational power (0.5 balanced).
type RelationshipState struct {
	Closeness float64 `json:"closeness"`
	Trust     float64 `json:"trust"`
	Liking    float64 `json:"liking"`
	Respect   float64 `json:"respect"`
	Warmth    float64 `json:"warmth"`
	Power     float64 `json:"power"`
}

// DefaultRelationship returns the starting point for a new user.
func DefaultRelationship() RelationshipState {
	return RelationshipState{
		Closeness: 0.3,
		Trust:     0.3,
		Liking:    0.3,
		Respect:   0.3,
		Warmth:    0.3,
		Power:     0.5,
	}
}

// Clamp bounds every dimension to [0,1].
func (r *RelationshipState) Clamp() {
	r.Closeness = Clamp01(r.Closeness)
	r.Trust = Clamp01(r.Trust)
	r.Liking = Clamp01(r.Liking)
	r.Respect = Clamp01(r.Respect)
	r.Warmth = Clamp01(r.Warmth)
	r.Power = Clamp01(r.Power)
}

// Dimension returns the named dimension value; ok is false for unknown names.
func (r RelationshipState) Dimension(name string) (float64, bool) {
	switch name {
	case "closeness":
		return r.Closeness, true
	case "trust":
		return r.Trust, true
	case "liking":
		return r.Liking, true
	case "respect":
		return r.Respect, true
	case "warmth":
		return r.Warmth, true
	case "power":
		return r.Power, true
	default:
		return 0, false
	}
}

// SetDimension assigns the named dimension, clamped to [0,1].
func (r *RelationshipState) SetDimension(name string, v float64) bool {
	v = Clamp01(v)
	switch name {
	case "closeness":
		r.Closeness = v
	case "trust":
		r.Trust = v
	case "liking":
		r.Liking = v
	case "respect":
		r.Respect = v
	case "warmth":
		r.Warmth = v
	case "power":
		r.Power = v
	default:
		return false
	}
	return true
}

// RelationshipDimensions lists dimension names in canonical order.
var RelationshipDimensions = []string{"closeness", "trust", "liking", "respect", "warmth", "power"}

// MoodState is the bot-scoped PAD mood plus busyness. Pleasure, arousal and
// dominance live in [-1,1]; busyness in [0,1]. Shared across every user the
// bot talks to, which is why persist takes a row lock on the bot.
type MoodState struct {
	Pleasure  float64 `json:"pleasure"`
	Arousal   float64 `json:"arousal"`
	Dominance float64 `json:"dominance"`
	Busyness  float64 `json:"busyness"`
}

// Clamp bounds PAD to [-1,1] and busyness to [0,1].
func (m *MoodState) Clamp() {
	m.Pleasure = ClampSigned(m.Pleasure)
	m.Arousal = ClampSigned(m.Arousal)
	m.Dominance = ClampSigned(m.Dominance)
	m.Busyness = Clamp01(m.Busyness)
}

// Unit maps a PAD value from [-1,1] to [0,1] for style math.
func Unit(pad float64) float64 {
	return Clamp01((pad + 1) / 2)
}

// SPTInfo tracks social-penetration signals consumed by the stage manager.
type SPTInfo struct {
	Depth         int      `json:"depth"`
	Breadth       int      `json:"breadth"`
	DepthTrend    string   `json:"depth_trend,omitempty"` // "increasing" | "stable" | "decreasing"
	RecentSignals []string `json:"recent_signals,omitempty"`
}
